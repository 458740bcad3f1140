// Package solved renders solved problems as a plain-text table.
package solved

import (
	"fmt"
	"strings"

	"github.com/bnema/kiroku/internal/domain"
	"github.com/gosuri/uitable"
)

const maxColWidth = 80

// Table lists problems one per row. total is the size of the list the page
// was taken from.
func Table(problems []domain.SolvedProblem, total int) string {
	if len(problems) == 0 {
		return "No solved problems found.\n"
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = maxColWidth
	tbl.Wrap = false

	tbl.AddRow("PLATFORM", "PROBLEM", "URL")
	for _, problem := range problems {
		tbl.AddRow(string(problem.Platform), label(problem), problem.URL)
	}

	var b strings.Builder
	b.WriteString(tbl.String())
	b.WriteString("\n")
	fmt.Fprintf(&b, "showing %d of %d\n", len(problems), total)
	return b.String()
}

func label(problem domain.SolvedProblem) string {
	if problem.Platform == domain.PlatformCodeforces {
		return fmt.Sprintf("%s%s %s", problem.ContestID, problem.Index, problem.Title())
	}
	return problem.Title()
}

// Counts tallies problems per platform, Codeforces first.
func Counts(problems []domain.SolvedProblem) string {
	counts := map[domain.Platform]int{}
	for _, problem := range problems {
		counts[problem.Platform]++
	}
	return fmt.Sprintf("%s: %d  %s: %d",
		domain.PlatformCodeforces, counts[domain.PlatformCodeforces],
		domain.PlatformAtCoder, counts[domain.PlatformAtCoder])
}
