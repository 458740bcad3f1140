package ports

import (
	"context"

	"github.com/bnema/kiroku/internal/domain"
)

type SubmissionSource interface {
	Platform() domain.Platform
	Submissions(ctx context.Context, handle string) ([]domain.Submission, error)
}
