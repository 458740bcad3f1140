package domain

import (
	"fmt"
	"strings"
)

type Platform string

const (
	PlatformCodeforces Platform = "Codeforces"
	PlatformAtCoder    Platform = "AtCoder"
)

const (
	codeforcesProblemURL = "https://codeforces.com/contest/%s/problem/%s"
	atcoderTaskURL       = "https://atcoder.jp/contests/%s/tasks/%s"
)

// Submission is one judged attempt as reported by a platform.
type Submission struct {
	Platform  Platform
	Accepted  bool
	ContestID string
	Index     string
	ProblemID string
	Name      string
}

type SolvedProblem struct {
	Platform  Platform `json:"platform"`
	Name      string   `json:"name,omitempty"`
	ContestID string   `json:"contestId"`
	Index     string   `json:"index,omitempty"`
	ProblemID string   `json:"problemId,omitempty"`
	URL       string   `json:"url"`
}

// Key returns the identity used to deduplicate problems of one platform.
func (p SolvedProblem) Key() string {
	switch p.Platform {
	case PlatformCodeforces:
		return p.ContestID + "-" + p.Index
	case PlatformAtCoder:
		return p.ProblemID
	default:
		return string(p.Platform) + ":" + p.ContestID + ":" + p.ProblemID + ":" + p.Index
	}
}

// Title is the text shown for a problem and matched by search.
func (p SolvedProblem) Title() string {
	if p.Name != "" {
		return p.Name
	}

	return strings.TrimSpace(p.ContestID + " " + p.ProblemID)
}

func (s Submission) Problem() SolvedProblem {
	problem := SolvedProblem{
		Platform:  s.Platform,
		Name:      s.Name,
		ContestID: s.ContestID,
		Index:     s.Index,
		ProblemID: s.ProblemID,
	}

	switch s.Platform {
	case PlatformCodeforces:
		problem.URL = fmt.Sprintf(codeforcesProblemURL, s.ContestID, s.Index)
	case PlatformAtCoder:
		problem.URL = fmt.Sprintf(atcoderTaskURL, s.ContestID, s.ProblemID)
	}

	return problem
}
