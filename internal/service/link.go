package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/Teknetic/templink/internal/idgen"
	"github.com/Teknetic/templink/internal/model"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	// maxSlugAttempts bounds generation retries on store collisions
	maxSlugAttempts = 5
	// reportVisitLimit caps the recent visits returned in a report
	reportVisitLimit = 100
	// linkCacheTTL is how long resolved URLs stay cached
	linkCacheTTL = 24 * time.Hour
)

// LinkService handles the link lifecycle: creation, resolution, redemption
// and deactivation
type LinkService struct {
	gen     *idgen.Generator
	store   LinkStoreInterface
	cache   LinkCacheInterface
	bloom   SlugBloomInterface
	hasher  PasswordHasher
	sink    EventSink
	baseURL string
	now     func() time.Time
}

// NewLinkService creates a new LinkService
func NewLinkService(
	store LinkStoreInterface,
	cache LinkCacheInterface,
	bloom SlugBloomInterface,
	hasher PasswordHasher,
	sink EventSink,
	baseURL string,
) *LinkService {
	return &LinkService{
		gen:     idgen.NewGenerator(),
		store:   store,
		cache:   cache,
		bloom:   bloom,
		hasher:  hasher,
		sink:    sink,
		baseURL: baseURL,
		now:     time.Now,
	}
}

// Create validates the request and persists a new link
func (s *LinkService) Create(ctx context.Context, req *model.CreateLinkRequest, creatorIP, creatorID string) (*model.CreateLinkResponse, error) {
	u, err := url.Parse(req.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, ErrInvalidURL
	}

	slug, custom, err := s.pickSlug(ctx, req.CustomSlug)
	if err != nil {
		return nil, err
	}

	now := s.now()

	var expiresAt *time.Time
	if req.ExpiresIn != nil && *req.ExpiresIn > 0 {
		t := now.Add(time.Duration(*req.ExpiresIn) * time.Second)
		expiresAt = &t
	}

	var maxViews *int64
	if req.MaxViews != nil && *req.MaxViews > 0 {
		maxViews = req.MaxViews
	}

	var digest string
	if req.Password != "" {
		digest, err = s.hasher.Hash(req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash link password: %w", err)
		}
	}

	link := &model.Link{
		Slug:           slug,
		OriginalURL:    req.URL,
		CustomSlug:     custom,
		PasswordDigest: digest,
		CreatorIP:      creatorIP,
		CreatorID:      creatorID,
		MaxViews:       maxViews,
		CurrentViews:   0,
		CreatedAt:      now,
		ExpiresAt:      expiresAt,
		IsActive:       true,
	}

	if err := s.saveLink(ctx, link, custom); err != nil {
		return nil, err
	}

	// Warm the cache and the Bloom Filter, best-effort
	if err := s.cache.CacheLinkURL(ctx, link.Slug, link.OriginalURL, s.cacheTTL(link.ExpiresAt)); err != nil {
		log.Warn().Err(err).Str("slug", link.Slug).Msg("Failed to cache link")
	}
	if err := s.bloom.Add(ctx, link.Slug); err != nil {
		log.Warn().Err(err).Str("slug", link.Slug).Msg("Failed to add slug to Bloom Filter")
	}

	return s.buildCreateResponse(link), nil
}

// saveLink inserts the link, regenerating the slug when a concurrent
// creation claimed it between the uniqueness check and the insert. A custom
// slug is the caller's choice, so its conflict surfaces instead.
func (s *LinkService) saveLink(ctx context.Context, link *model.Link, custom bool) error {
	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		err := s.store.SaveLink(ctx, link)
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Error().Err(err).Str("slug", link.Slug).Msg("Failed to save link")
			return fmt.Errorf("failed to save link: %w", err)
		}
		if custom {
			return ErrSlugTaken
		}

		slug, genErr := s.gen.NewSlug()
		if genErr != nil {
			return fmt.Errorf("failed to generate slug: %w", genErr)
		}
		log.Debug().Str("slug", link.Slug).Msg("Slug collision on insert, regenerating")
		link.Slug = slug
	}
	return ErrSlugGeneration
}

// Resolve retrieves an active link by slug, answering from the URL cache
// when possible. Cache entries exist only for live links and are dropped on
// deactivation, so a hit stands in for the store row.
func (s *LinkService) Resolve(ctx context.Context, slug string) (*model.Link, error) {
	if cached, err := s.cache.GetCachedLinkURL(ctx, slug); err == nil && cached != "" {
		return &model.Link{Slug: slug, OriginalURL: cached, IsActive: true}, nil
	}

	link, err := s.store.GetLinkBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, fmt.Errorf("failed to look up link: %w", err)
	}

	if ttl := s.cacheTTL(link.ExpiresAt); ttl > 0 {
		if err := s.cache.CacheLinkURL(ctx, slug, link.OriginalURL, ttl); err != nil {
			log.Warn().Err(err).Str("slug", slug).Msg("Failed to cache link")
		}
	}
	return link, nil
}

// cacheTTL clamps the cache lifetime to the link's expiry so a dead link
// cannot outlive its row in cache
func (s *LinkService) cacheTTL(expiresAt *time.Time) time.Duration {
	ttl := linkCacheTTL
	if expiresAt != nil {
		if until := expiresAt.Sub(s.now()); until < ttl {
			ttl = until
		}
	}
	return ttl
}

// Redeem runs the central state transition. The view increment happens as a
// conditional update in the store, so concurrent redemptions cannot push a
// link past its cap, and only granted views record an analytics event.
func (s *LinkService) Redeem(ctx context.Context, slug, password string, visitor model.Visitor) (*model.RedeemResult, error) {
	link, err := s.store.GetLinkBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &model.RedeemResult{Status: model.RedeemNotFound}, nil
		}
		return nil, fmt.Errorf("failed to look up link: %w", err)
	}

	if !link.IsRedeemable(s.now()) {
		s.retire(ctx, slug)
		return &model.RedeemResult{Status: model.RedeemExpired}, nil
	}

	if link.HasPassword() {
		if password == "" {
			return &model.RedeemResult{Status: model.RedeemPasswordRequired}, nil
		}
		if !s.hasher.Verify(password, link.PasswordDigest) {
			// No state change and no analytics for failed attempts
			return &model.RedeemResult{Status: model.RedeemPasswordIncorrect}, nil
		}
	}

	granted, err := s.store.RedeemView(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to redeem view: %w", err)
	}
	if !granted {
		// A concurrent redemption took the last view
		s.retire(ctx, slug)
		return &model.RedeemResult{Status: model.RedeemExpired}, nil
	}

	event := &model.AnalyticsEvent{
		Slug:       slug,
		IPAddress:  visitor.IP,
		UserAgent:  visitor.UserAgent,
		Referer:    visitor.Referer,
		AccessedAt: s.now(),
	}
	if err := s.sink.Record(ctx, event); err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("Failed to record redemption event")
	}

	// The cap deactivates the link for subsequent attempts; this redemption
	// still completes.
	exhausted, err := s.store.DeactivateIfExhausted(ctx, slug)
	if err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("Failed to check view cap")
	} else if exhausted {
		if err := s.cache.InvalidateLink(ctx, slug); err != nil {
			log.Warn().Err(err).Str("slug", slug).Msg("Failed to invalidate cached link")
		}
	}

	return &model.RedeemResult{Status: model.RedeemSuccess, OriginalURL: link.OriginalURL}, nil
}

// Deactivate soft-deletes a link on behalf of its creator. Anonymous links
// carry no creator and can only lapse through expiry or the view cap.
func (s *LinkService) Deactivate(ctx context.Context, slug, requesterID string) error {
	link, err := s.store.GetLinkAnyStatus(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLinkNotFound
		}
		return fmt.Errorf("failed to look up link: %w", err)
	}
	if link.CreatorID == "" || link.CreatorID != requesterID {
		return ErrNotLinkOwner
	}

	if err := s.store.DeactivateLink(ctx, slug); err != nil {
		return fmt.Errorf("failed to deactivate link: %w", err)
	}
	if err := s.cache.InvalidateLink(ctx, slug); err != nil {
		log.Warn().Err(err).Str("slug", slug).Msg("Failed to invalidate cached link")
	}
	return nil
}

// Report builds the analytics summary for a link, inactive links included
func (s *LinkService) Report(ctx context.Context, slug string) (*model.LinkReport, error) {
	link, err := s.store.GetLinkAnyStatus(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, fmt.Errorf("failed to look up link: %w", err)
	}

	events, err := s.store.GetRecentEvents(ctx, slug, reportVisitLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent visits: %w", err)
	}

	visits := make([]model.VisitRecord, 0, len(events))
	for _, e := range events {
		visits = append(visits, model.VisitRecord{
			AccessedAt: e.AccessedAt,
			IPAddress:  e.IPAddress,
			UserAgent:  e.UserAgent,
			Referer:    e.Referer,
		})
	}

	report := &model.LinkReport{
		TotalViews:   link.CurrentViews,
		MaxViews:     link.MaxViews,
		CreatedAt:    link.CreatedAt,
		ExpiresAt:    link.ExpiresAt,
		IsActive:     link.IsActive,
		OriginalURL:  link.OriginalURL,
		RecentVisits: visits,
	}
	if link.MaxViews != nil {
		remaining := *link.MaxViews - link.CurrentViews
		if remaining < 0 {
			remaining = 0
		}
		report.RemainingViews = &remaining
	}

	return report, nil
}

// RecentLinks returns the newest links
func (s *LinkService) RecentLinks(ctx context.Context, limit int) ([]model.Link, error) {
	return s.store.RecentLinks(ctx, limit)
}

// pickSlug reserves the caller's custom slug or generates a fresh one
func (s *LinkService) pickSlug(ctx context.Context, customSlug string) (string, bool, error) {
	if customSlug != "" {
		if !idgen.IsValidSlug(customSlug) {
			return "", false, ErrInvalidSlug
		}
		exists, err := s.store.SlugExists(ctx, customSlug)
		if err != nil {
			return "", false, fmt.Errorf("failed to check slug: %w", err)
		}
		if exists {
			return "", false, ErrSlugTaken
		}
		return customSlug, true, nil
	}

	for i := 0; i < maxSlugAttempts; i++ {
		slug, err := s.gen.NewSlug()
		if err != nil {
			return "", false, fmt.Errorf("failed to generate slug: %w", err)
		}

		// Bloom Filter first, store check only on maybe-exists or filter error
		maybe, err := s.bloom.Exists(ctx, slug)
		if err == nil && !maybe {
			return slug, false, nil
		}

		exists, err := s.store.SlugExists(ctx, slug)
		if err != nil {
			return "", false, fmt.Errorf("failed to check slug: %w", err)
		}
		if !exists {
			return slug, false, nil
		}
	}

	return "", false, ErrSlugGeneration
}

// retire deactivates an expired link and drops it from cache
func (s *LinkService) retire(ctx context.Context, slug string) {
	if err := s.store.DeactivateLink(ctx, slug); err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("Failed to deactivate expired link")
		return
	}
	if err := s.cache.InvalidateLink(ctx, slug); err != nil {
		log.Warn().Err(err).Str("slug", slug).Msg("Failed to invalidate cached link")
	}
}

// buildCreateResponse builds a creation response from a link entity
func (s *LinkService) buildCreateResponse(link *model.Link) *model.CreateLinkResponse {
	return &model.CreateLinkResponse{
		Slug:        link.Slug,
		ShortURL:    fmt.Sprintf("%s/%s", s.baseURL, link.Slug),
		OriginalURL: link.OriginalURL,
		CreatedAt:   link.CreatedAt,
		ExpiresAt:   link.ExpiresAt,
		MaxViews:    link.MaxViews,
		HasPassword: link.HasPassword(),
	}
}
