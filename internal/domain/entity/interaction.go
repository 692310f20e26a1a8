package entity

import (
	"time"

	"github.com/google/uuid"
)

// LLMInteraction is the audit record written after every generative call,
// successful or not.
type LLMInteraction struct {
	ID           uuid.UUID
	UserID       string
	ModelUsed    string
	PromptChars  int
	OutputChars  int
	LatencyMs    int64
	Success      bool
	ErrorDetail  string
	CreatedAt    time.Time
}

// NewLLMInteraction builds an interaction record with a fresh ID.
func NewLLMInteraction(userID, modelUsed string) *LLMInteraction {
	return &LLMInteraction{
		ID:        uuid.New(),
		UserID:    userID,
		ModelUsed: modelUsed,
		CreatedAt: time.Now(),
	}
}
