package atcoder

import (
	"context"
	"fmt"
	"net/url"

	"github.com/bnema/kiroku/internal/adapters/judge"
	"github.com/bnema/kiroku/internal/domain"
	"github.com/bnema/kiroku/internal/ports"
)

const (
	submissionsPath = "user/submissions"
	resultAccepted  = "AC"
)

// Client reads submissions from the AtCoder Problems aggregation API.
type Client struct {
	judge.Client
}

var _ ports.SubmissionSource = Client{}

type submissionRecord struct {
	Result    string `json:"result"`
	ProblemID string `json:"problem_id"`
	ContestID string `json:"contest_id"`
}

func (Client) Platform() domain.Platform {
	return domain.PlatformAtCoder
}

func (c Client) Submissions(ctx context.Context, handle string) ([]domain.Submission, error) {
	query := url.Values{}
	query.Set("user", handle)
	query.Set("from_second", "0")

	var records []submissionRecord
	if err := c.GetJSON(ctx, submissionsPath, query, &records); err != nil {
		return nil, fmt.Errorf("atcoder user/submissions: %w", err)
	}

	submissions := make([]domain.Submission, 0, len(records))
	for _, record := range records {
		submissions = append(submissions, domain.Submission{
			Platform:  domain.PlatformAtCoder,
			Accepted:  record.Result == resultAccepted,
			ContestID: record.ContestID,
			ProblemID: record.ProblemID,
		})
	}

	return submissions, nil
}
