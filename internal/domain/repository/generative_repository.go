package repository

import "context"

// GenerativeRepository is the opaque text-generation capability. Input is a
// prompt, output is raw text with no structural guarantee.
type GenerativeRepository interface {
	Generate(ctx context.Context, prompt string) (string, error)
	ModelName() string
}
