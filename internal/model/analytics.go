package model

import (
	"time"
)

// AnalyticsEvent represents a single recorded redemption, append-only
type AnalyticsEvent struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Slug       string    `json:"slug" gorm:"type:varchar(64);index;not null"`
	IPAddress  string    `json:"ip_address" gorm:"type:varchar(64)"`
	UserAgent  string    `json:"user_agent" gorm:"type:varchar(512)"`
	Referer    string    `json:"referer" gorm:"type:varchar(512)"`
	AccessedAt time.Time `json:"accessed_at" gorm:"index"`
}

// TableName returns the table name for AnalyticsEvent
func (AnalyticsEvent) TableName() string {
	return "analytics_events"
}

// VisitRecord is the per-visit shape returned in a link report
type VisitRecord struct {
	AccessedAt time.Time `json:"accessed_at"`
	IPAddress  string    `json:"ip_address,omitempty"`
	UserAgent  string    `json:"user_agent,omitempty"`
	Referer    string    `json:"referer,omitempty"`
}

// LinkReport represents the analytics summary for a link
type LinkReport struct {
	TotalViews     int64         `json:"total_views"`
	MaxViews       *int64        `json:"max_views"`
	RemainingViews *int64        `json:"remaining_views"`
	CreatedAt      time.Time     `json:"created_at"`
	ExpiresAt      *time.Time    `json:"expires_at"`
	IsActive       bool          `json:"is_active"`
	OriginalURL    string        `json:"original_url"`
	RecentVisits   []VisitRecord `json:"recent_visits"`
}

// LinkStats represents the realtime counters kept in Redis
type LinkStats struct {
	Slug       string       `json:"slug"`
	PV         int64        `json:"pv"`
	UV         int64        `json:"uv"`
	TopSources []SourceStat `json:"top_sources"`
}

// SourceStat represents source statistics
type SourceStat struct {
	Source string `json:"source"`
	Count  int64  `json:"count"`
}
