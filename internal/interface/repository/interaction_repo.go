package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripwise-service/internal/domain/entity"
	"tripwise-service/internal/domain/repository"
)

// GormInteractionRepository implements the InteractionRepository interface
type GormInteractionRepository struct {
	db *gorm.DB
}

// LLMInteractions GORM model for database mapping
type LLMInteractions struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	UserID      string    `gorm:"column:user_id;index"`
	ModelUsed   string    `gorm:"column:model_used"`
	PromptChars int       `gorm:"column:prompt_chars"`
	OutputChars int       `gorm:"column:output_chars"`
	LatencyMs   int64     `gorm:"column:latency_ms"`
	Success     bool      `gorm:"column:success"`
	ErrorDetail string    `gorm:"column:error_detail"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

// TableName overrides the default table name
func (LLMInteractions) TableName() string {
	return "llm_interactions"
}

// NewGormInteractionRepository creates a new GORM interaction repository
func NewGormInteractionRepository(db *gorm.DB) (repository.InteractionRepository, error) {
	if err := db.AutoMigrate(&LLMInteractions{}); err != nil {
		return nil, err
	}
	return &GormInteractionRepository{db: db}, nil
}

// Record persists one generative-call audit record
func (r *GormInteractionRepository) Record(ctx context.Context, interaction *entity.LLMInteraction) error {
	row := LLMInteractions{
		ID:          interaction.ID,
		UserID:      interaction.UserID,
		ModelUsed:   interaction.ModelUsed,
		PromptChars: interaction.PromptChars,
		OutputChars: interaction.OutputChars,
		LatencyMs:   interaction.LatencyMs,
		Success:     interaction.Success,
		ErrorDetail: interaction.ErrorDetail,
		CreatedAt:   interaction.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}
