package mailer

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/Teknetic/templink/internal/config"

	"github.com/rs/zerolog/log"
)

// Mailer delivers account emails over SMTP. When disabled it logs the
// would-be delivery instead, which keeps development flows working without
// an SMTP server.
type Mailer struct {
	cfg     config.EmailConfig
	baseURL string
}

// NewMailer creates a new Mailer
func NewMailer(cfg config.EmailConfig, baseURL string) *Mailer {
	return &Mailer{cfg: cfg, baseURL: baseURL}
}

// SendVerification mails an email verification link
func (m *Mailer) SendVerification(ctx context.Context, email, name, secret string) error {
	link := fmt.Sprintf("%s/api/v1/auth/verify-email?token=%s", m.baseURL, secret)
	if !m.cfg.Enabled {
		log.Info().Str("email", email).Str("link", link).Msg("Email disabled - verification link not sent")
		return nil
	}

	subject := "Verify your email address"
	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <h2>Verify your email</h2>
        <p>Hello %s,</p>
        <p>Please confirm your email address by clicking the link below:</p>
        <p><a href="%s" style="background: #667eea; color: white; padding: 12px 30px; text-decoration: none; border-radius: 6px; display: inline-block;">Verify Email</a></p>
        <p>This link expires in <strong>24 hours</strong>.</p>
        <p>If you didn't create an account, please ignore this email.</p>
    </div>
</body>
</html>
`, displayName(name), link)

	return m.send(ctx, email, subject, body)
}

// SendPasswordReset mails a password reset link
func (m *Mailer) SendPasswordReset(ctx context.Context, email, name, secret string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s", m.baseURL, secret)
	if !m.cfg.Enabled {
		log.Info().Str("email", email).Str("link", link).Msg("Email disabled - reset link not sent")
		return nil
	}

	subject := "Reset your password"
	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <h2>Password reset</h2>
        <p>Hello %s,</p>
        <p>We received a request to reset your password. Click the link below to choose a new one:</p>
        <p><a href="%s" style="background: #667eea; color: white; padding: 12px 30px; text-decoration: none; border-radius: 6px; display: inline-block;">Reset Password</a></p>
        <p>This link expires in <strong>1 hour</strong>.</p>
        <p>If you didn't request a reset, your password is unchanged and you can ignore this email.</p>
    </div>
</body>
</html>
`, displayName(name), link)

	return m.send(ctx, email, subject, body)
}

// SendWelcome mails the post-verification welcome message
func (m *Mailer) SendWelcome(ctx context.Context, email, name string) error {
	if !m.cfg.Enabled {
		log.Info().Str("email", email).Msg("Email disabled - welcome email not sent")
		return nil
	}

	subject := "Welcome to TempLink!"
	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <h2>Welcome!</h2>
        <p>Hello %s,</p>
        <p>Your email has been verified. You can now:</p>
        <ul>
            <li>Create short links with custom slugs</li>
            <li>Password-protect your links</li>
            <li>Set expiration times and view caps</li>
            <li>Track visits from your dashboard</li>
        </ul>
    </div>
</body>
</html>
`, displayName(name))

	return m.send(ctx, email, subject, body)
}

func (m *Mailer) send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	from := fmt.Sprintf("%s <%s>", m.cfg.FromName, m.cfg.From)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s\r\n",
		from, to, subject, body,
	))

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	addr := fmt.Sprintf("%s:%s", m.cfg.Host, m.cfg.Port)

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, msg); err != nil {
		log.Error().Err(err).Str("to", to).Msg("Failed to send email")
		return err
	}

	log.Info().Str("to", to).Str("subject", subject).Msg("Email sent")
	return nil
}

func displayName(name string) string {
	if name == "" {
		return "there"
	}
	return name
}
