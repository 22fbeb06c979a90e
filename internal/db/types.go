package db

import (
	"time"

	"github.com/google/uuid"
)

// Run represents an extraction run record
type Run struct {
	ID                uuid.UUID  `json:"id"`
	SourceFile        string     `json:"source_file"`
	Status            string     `json:"status"`
	OverallConfidence *float64   `json:"overall_confidence,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
}

// Run status values
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)
