package model

import (
	"time"

	"github.com/google/uuid"
)

// TranscriptRecord is the record shape the meeting-notes app persists
// for one saved transcript. Storage itself lives with the caller; this
// package only defines the value.
type TranscriptRecord struct {
	ID        int64           `json:"id"`
	RID       uuid.UUID       `json:"rid"`
	Text      string          `json:"text"`
	Analysis  *AnalysisResult `json:"analysis"`
	Summary   string          `json:"summary"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewTranscriptRecord assembles a record with a fresh RID and timestamp
func NewTranscriptRecord(text string, analysis *AnalysisResult, summary string) *TranscriptRecord {
	return &TranscriptRecord{
		RID:       uuid.New(),
		Text:      text,
		Analysis:  analysis,
		Summary:   summary,
		CreatedAt: time.Now(),
	}
}
