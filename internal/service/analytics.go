package service

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/Teknetic/templink/internal/model"
	"github.com/Teknetic/templink/pkg/util"

	"github.com/rs/zerolog/log"
)

// AnalyticsService maintains the realtime Redis counters. The durable
// per-visit log is written by the EventSink on the redemption path.
type AnalyticsService struct {
	stats StatsStoreInterface
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(stats StatsStoreInterface) *AnalyticsService {
	return &AnalyticsService{stats: stats}
}

// RecordAccess updates the realtime counters for one redemption
func (as *AnalyticsService) RecordAccess(ctx context.Context, slug, clientIP, userAgent, referer string) error {
	if _, err := as.stats.IncrementPV(ctx, slug); err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("Failed to increment PV")
	}

	// Visitors are counted by a fingerprint of IP and user agent, not the raw IP
	visitorID := fmt.Sprintf("%x", util.Fingerprint(clientIP, userAgent))
	if _, err := as.stats.AddUV(ctx, slug, visitorID); err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("Failed to add UV")
	}

	source := extractSource(referer)
	if source != "" {
		if err := as.stats.AddSource(ctx, slug, source); err != nil {
			log.Error().Err(err).Str("slug", slug).Str("source", source).Msg("Failed to add source")
		}
	}

	return nil
}

// GetStats returns the realtime counters for a slug. Counter errors degrade
// to zero values rather than failing the whole report.
func (as *AnalyticsService) GetStats(ctx context.Context, slug string) (*model.LinkStats, error) {
	pv, err := as.stats.GetPV(ctx, slug)
	if err != nil {
		pv = 0
	}

	uv, err := as.stats.GetUV(ctx, slug)
	if err != nil {
		uv = 0
	}

	sources, err := as.stats.GetSources(ctx, slug)
	if err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("Failed to get sources")
		sources = make(map[string]int64)
	}

	return &model.LinkStats{
		Slug:       slug,
		PV:         pv,
		UV:         uv,
		TopSources: topSources(sources, 10),
	}, nil
}

// extractSource buckets a referer URL into a traffic source
func extractSource(referer string) string {
	if referer == "" {
		return "direct"
	}

	u, err := url.Parse(referer)
	if err != nil {
		return "unknown"
	}

	host := strings.TrimPrefix(u.Host, "www.")

	switch {
	case strings.Contains(host, "google"):
		return "google"
	case strings.Contains(host, "bing"):
		return "bing"
	case strings.Contains(host, "duckduckgo"):
		return "duckduckgo"
	case strings.Contains(host, "twitter") || strings.Contains(host, "t.co") || strings.Contains(host, "x.com"):
		return "twitter"
	case strings.Contains(host, "facebook") || strings.Contains(host, "fb.com"):
		return "facebook"
	case strings.Contains(host, "reddit"):
		return "reddit"
	case strings.Contains(host, "linkedin"):
		return "linkedin"
	default:
		// Use the second-level domain for everything else
		parts := strings.Split(host, ".")
		if len(parts) >= 2 {
			return parts[len(parts)-2]
		}
		return host
	}
}

// topSources returns the top N sources by count
func topSources(sources map[string]int64, limit int) []model.SourceStat {
	if len(sources) == 0 {
		return []model.SourceStat{}
	}

	stats := make([]model.SourceStat, 0, len(sources))
	for source, count := range sources {
		stats = append(stats, model.SourceStat{Source: source, Count: count})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Source < stats[j].Source
	})

	if len(stats) > limit {
		stats = stats[:limit]
	}

	return stats
}

// AnalyticsEventStore is the narrow store surface StoreEventSink needs
type AnalyticsEventStore interface {
	SaveAnalyticsEvent(ctx context.Context, event *model.AnalyticsEvent) error
}

// StoreEventSink writes redemption events straight to the store, used when
// no message queue is configured
type StoreEventSink struct {
	store AnalyticsEventStore
}

// NewStoreEventSink creates a StoreEventSink
func NewStoreEventSink(store AnalyticsEventStore) *StoreEventSink {
	return &StoreEventSink{store: store}
}

// Record persists the event synchronously
func (s *StoreEventSink) Record(ctx context.Context, event *model.AnalyticsEvent) error {
	return s.store.SaveAnalyticsEvent(ctx, event)
}
