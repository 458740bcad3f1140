package codeforces

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/bnema/kiroku/internal/adapters/judge"
	"github.com/bnema/kiroku/internal/domain"
	"github.com/bnema/kiroku/internal/ports"
)

const (
	userStatusPath   = "user.status"
	statusOK         = "OK"
	verdictAccepted  = "OK"
	submissionsCount = "10000"
)

type Client struct {
	judge.Client
}

var _ ports.SubmissionSource = Client{}

type userStatusResponse struct {
	Status  string             `json:"status"`
	Comment string             `json:"comment"`
	Result  []submissionRecord `json:"result"`
}

type submissionRecord struct {
	Verdict string        `json:"verdict"`
	Problem problemRecord `json:"problem"`
}

type problemRecord struct {
	ContestID int    `json:"contestId"`
	Index     string `json:"index"`
	Name      string `json:"name"`
}

func (Client) Platform() domain.Platform {
	return domain.PlatformCodeforces
}

// Submissions returns the full submission history of handle.
func (c Client) Submissions(ctx context.Context, handle string) ([]domain.Submission, error) {
	query := url.Values{}
	query.Set("handle", handle)
	query.Set("from", "1")
	query.Set("count", submissionsCount)

	var payload userStatusResponse
	if err := c.GetJSON(ctx, userStatusPath, query, &payload); err != nil {
		if failed, ok := failedPayload(err); ok {
			payload = failed
		} else {
			return nil, fmt.Errorf("codeforces user.status: %w", err)
		}
	}
	if payload.Status != statusOK {
		return nil, fmt.Errorf("codeforces user.status: %w: status %q: %s", domain.ErrRemoteStatus, payload.Status, payload.Comment)
	}

	submissions := make([]domain.Submission, 0, len(payload.Result))
	for _, record := range payload.Result {
		submissions = append(submissions, domain.Submission{
			Platform:  domain.PlatformCodeforces,
			Accepted:  record.Verdict == verdictAccepted,
			ContestID: strconv.Itoa(record.Problem.ContestID),
			Index:     record.Problem.Index,
			Name:      record.Problem.Name,
		})
	}

	return submissions, nil
}

// failedPayload recovers the API envelope Codeforces sends alongside 4xx
// statuses, e.g. an unknown handle.
func failedPayload(err error) (userStatusResponse, bool) {
	var statusErr *judge.StatusError
	if !errors.As(err, &statusErr) || len(statusErr.Body) == 0 {
		return userStatusResponse{}, false
	}

	var payload userStatusResponse
	if json.Unmarshal(statusErr.Body, &payload) != nil || payload.Status == "" {
		return userStatusResponse{}, false
	}

	return payload, true
}
