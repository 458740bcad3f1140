package domain

import (
	"sort"
	"strings"
	"time"
)

const (
	// DayLayout is the calendar-day label used for grouping and filtering.
	DayLayout  = "Monday, January 2, 2006"
	TimeLayout = "15:04"
)

type EntryID string

type JournalEntry struct {
	ID        EntryID
	Text      string
	CreatedAt time.Time
}

func (e JournalEntry) CalendarDay() string {
	return e.CreatedAt.Format(DayLayout)
}

func (e JournalEntry) DisplayTime() string {
	return e.CreatedAt.Format(TimeLayout)
}

// IndexedEntry is an entry tagged with its position in the owning sequence.
// The index is only valid until the sequence is mutated.
type IndexedEntry struct {
	Index int
	Entry JournalEntry
}

type DayGroup struct {
	Day     string
	Entries []IndexedEntry
}

// GroupByDay buckets entries by calendar day. Groups are ordered by the parsed
// day label, most recent first; entries inside a group keep insertion order.
func GroupByDay(entries []JournalEntry) []DayGroup {
	groups := make([]DayGroup, 0)
	positions := make(map[string]int)

	for i, entry := range entries {
		day := entry.CalendarDay()
		pos, ok := positions[day]
		if !ok {
			pos = len(groups)
			positions[day] = pos
			groups = append(groups, DayGroup{Day: day})
		}
		groups[pos].Entries = append(groups[pos].Entries, IndexedEntry{Index: i, Entry: entry})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return parseDay(groups[i].Day).After(parseDay(groups[j].Day))
	})

	return groups
}

// FilterDays keeps the groups whose day label contains query, ignoring case.
func FilterDays(groups []DayGroup, query string) []DayGroup {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return groups
	}

	filtered := make([]DayGroup, 0, len(groups))
	for _, group := range groups {
		if strings.Contains(strings.ToLower(group.Day), needle) {
			filtered = append(filtered, group)
		}
	}

	return filtered
}

func parseDay(label string) time.Time {
	parsed, err := time.Parse(DayLayout, label)
	if err != nil {
		return time.Time{}
	}

	return parsed
}
