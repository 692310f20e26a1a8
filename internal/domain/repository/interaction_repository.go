package repository

import (
	"context"

	"tripwise-service/internal/domain/entity"
)

// InteractionRepository stores the audit trail of generative calls. Writes
// are best-effort; the pipeline never fails because auditing failed.
type InteractionRepository interface {
	Record(ctx context.Context, interaction *entity.LLMInteraction) error
}
