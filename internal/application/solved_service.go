package application

import (
	"context"
	"strings"

	"github.com/bnema/kiroku/internal/domain"
	"github.com/bnema/kiroku/internal/ports"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// PageSize is how many problems one "load more" step reveals.
const PageSize = 20

type SolvedService struct {
	sources []ports.SubmissionSource
	logger  zerolog.Logger
}

// NewSolvedService merges sources in the order given.
func NewSolvedService(logger zerolog.Logger, sources ...ports.SubmissionSource) *SolvedService {
	return &SolvedService{
		sources: sources,
		logger:  logger,
	}
}

// FetchForHandle queries every source in parallel. A failing source is logged
// and contributes nothing; it never affects the other sources.
func (s *SolvedService) FetchForHandle(ctx context.Context, handle string) []domain.SolvedProblem {
	perSource := make([][]domain.SolvedProblem, len(s.sources))

	var group errgroup.Group
	for i, source := range s.sources {
		group.Go(func() error {
			perSource[i] = s.fetchOne(ctx, source, handle)
			return nil
		})
	}
	_ = group.Wait()

	merged := make([]domain.SolvedProblem, 0)
	for _, problems := range perSource {
		merged = append(merged, problems...)
	}

	return merged
}

func (s *SolvedService) fetchOne(ctx context.Context, source ports.SubmissionSource, handle string) []domain.SolvedProblem {
	platform := source.Platform()

	submissions, err := source.Submissions(ctx, handle)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("platform", string(platform)).
			Str("handle", handle).
			Msg("fetch submissions failed")
		return []domain.SolvedProblem{}
	}

	problems := NormalizeSubmissions(submissions)
	s.logger.Debug().
		Str("platform", string(platform)).
		Str("handle", handle).
		Int("submissions", len(submissions)).
		Int("solved", len(problems)).
		Msg("fetched submissions")

	return problems
}

// NormalizeSubmissions keeps accepted submissions and the first occurrence of
// each problem, preserving order.
func NormalizeSubmissions(submissions []domain.Submission) []domain.SolvedProblem {
	problems := make([]domain.SolvedProblem, 0, len(submissions))
	seen := make(map[string]struct{}, len(submissions))

	for _, submission := range submissions {
		if !submission.Accepted {
			continue
		}

		problem := submission.Problem()
		key := problem.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		problems = append(problems, problem)
	}

	return problems
}

// Search filters problems by a case-insensitive substring. Problems from
// platforms other than Codeforces and AtCoder never match.
func Search(problems []domain.SolvedProblem, query string) []domain.SolvedProblem {
	needle := strings.ToLower(query)

	filtered := make([]domain.SolvedProblem, 0, len(problems))
	for _, problem := range problems {
		var haystack string
		switch problem.Platform {
		case domain.PlatformCodeforces:
			haystack = problem.Name
		case domain.PlatformAtCoder:
			haystack = problem.Title()
		default:
			continue
		}

		if strings.Contains(strings.ToLower(haystack), needle) {
			filtered = append(filtered, problem)
		}
	}

	return filtered
}

func Paginate(problems []domain.SolvedProblem, visible int) []domain.SolvedProblem {
	if visible < 0 {
		visible = 0
	}
	if visible > len(problems) {
		visible = len(problems)
	}

	return problems[:visible]
}

// NextVisible advances the visible count by one page, capped at total. It is
// inert once everything is shown.
func NextVisible(visible int, total int) int {
	if visible >= total {
		return visible
	}

	return min(visible+PageSize, total)
}
