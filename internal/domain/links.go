package domain

import "regexp"

var linkPattern = regexp.MustCompile(`https?://\S+`)

type Segment struct {
	Text string
	Link bool
}

// SplitLinks cuts text into plain and link segments. Joining the segment texts
// yields the original string.
func SplitLinks(text string) []Segment {
	matches := linkPattern.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		if text == "" {
			return nil
		}
		return []Segment{{Text: text}}
	}

	segments := make([]Segment, 0, len(matches)*2+1)
	cursor := 0
	for _, match := range matches {
		if match[0] > cursor {
			segments = append(segments, Segment{Text: text[cursor:match[0]]})
		}
		segments = append(segments, Segment{Text: text[match[0]:match[1]], Link: true})
		cursor = match[1]
	}
	if cursor < len(text) {
		segments = append(segments, Segment{Text: text[cursor:]})
	}

	return segments
}
