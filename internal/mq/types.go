package mq

import (
	"time"
)

// RedemptionMessage carries one granted redemption from the redirect path
// to the analytics writer
type RedemptionMessage struct {
	Slug       string    `json:"slug"`
	ClientIP   string    `json:"client_ip"`
	UserAgent  string    `json:"user_agent"`
	Referer    string    `json:"referer"`
	AccessedAt time.Time `json:"accessed_at"`
}
