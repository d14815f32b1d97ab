package usecase

import (
	"context"
	"time"

	"safetrack/internal/domain/entity"
)

// IngestLocationInput is one position report from a child's device
type IngestLocationInput struct {
	SubjectID  string     `json:"subject_id" validate:"required"`
	Latitude   *float64   `json:"latitude" validate:"required"`
	Longitude  *float64   `json:"longitude" validate:"required"`
	Accuracy   *float64   `json:"accuracy,omitempty"`
	ReportedAt *time.Time `json:"reported_at,omitempty"`
}

// IngestResult describes what happened to a position report
type IngestResult struct {
	InsideSafeZone  bool `json:"inside_safe_zone"`
	AlertSent       bool `json:"alert_sent"`
	AlertSkipped    bool `json:"alert_skipped"`
	RecipientsCount int  `json:"recipients_count"`
	SMSSentCount    int  `json:"sms_sent_count"`
	DispatchQueued  bool `json:"dispatch_queued"`
}

// LocationHistoryQuery selects stored positions for one child.
// When From and To are both set the range wins over Limit.
type LocationHistoryQuery struct {
	SubjectID string
	Limit     int
	From      *time.Time
	To        *time.Time
}

// IngestionUsecase defines the location ingestion pipeline
type IngestionUsecase interface {
	// Ingest validates, stores and classifies a position and raises a boundary-exit alert when due
	Ingest(ctx context.Context, input *IngestLocationInput) (*IngestResult, error)

	// LocationHistory returns stored positions for a child, newest first for limit queries
	LocationHistory(ctx context.Context, query *LocationHistoryQuery) ([]*entity.LocationRecord, error)
}
