package transcript

import (
	"strings"
	"unicode/utf8"
)

// Splitter normalizes raw transcription segments into title-sized pieces:
// whitespace is trimmed, empty segments are dropped, and segments that run
// too long in text or time are split at word boundaries with the duration
// distributed proportionally.
type Splitter struct {
	MaxCharsPerLine  int
	MaxLinesPerTitle int
	MaxSeconds       float64
}

func NewSplitter() *Splitter {
	return &Splitter{
		MaxCharsPerLine:  42, // standard subtitle line length
		MaxLinesPerTitle: 2,
		MaxSeconds:       7,
	}
}

// Split normalizes a transcript into display-ready segments.
func (s *Splitter) Split(segments []Segment) []Segment {
	var out []Segment
	for _, seg := range segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}

		if s.needsSplit(text, seg.Duration()) {
			out = append(out, s.splitSegment(seg)...)
		} else {
			out = append(out, Segment{
				Start: seg.Start,
				End:   seg.End,
				Text:  s.wrapText(text),
			})
		}
	}
	return out
}

func (s *Splitter) needsSplit(text string, seconds float64) bool {
	if utf8.RuneCountInString(text) > s.MaxCharsPerLine*s.MaxLinesPerTitle {
		return true
	}
	return seconds > s.MaxSeconds
}

// splits a long segment into pieces, distributing words evenly and the
// duration proportionally; the last piece ends exactly at the original end
func (s *Splitter) splitSegment(seg Segment) []Segment {
	text := strings.TrimSpace(seg.Text)
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	maxChars := s.MaxCharsPerLine * s.MaxLinesPerTitle
	totalChars := utf8.RuneCountInString(text)

	numSplits := (totalChars + maxChars - 1) / maxChars
	if numSplits < 1 {
		numSplits = 1
	}
	if durationSplits := int(seg.Duration()/s.MaxSeconds) + 1; durationSplits > numSplits {
		numSplits = durationSplits
	}

	wordsPerSplit := (len(words) + numSplits - 1) / numSplits
	secondsPerSplit := seg.Duration() / float64(numSplits)

	var out []Segment
	currentStart := seg.Start

	for i := 0; i < numSplits && len(words) > 0; i++ {
		endIdx := wordsPerSplit
		if endIdx > len(words) {
			endIdx = len(words)
		}

		splitWords := words[:endIdx]
		words = words[endIdx:]

		currentEnd := currentStart + secondsPerSplit
		if len(words) == 0 {
			currentEnd = seg.End
		}

		out = append(out, Segment{
			Start: currentStart,
			End:   currentEnd,
			Text:  s.wrapText(strings.Join(splitWords, " ")),
		})

		currentStart = currentEnd
	}

	return out
}

// wrapText breaks text that exceeds one line into two lines at the word
// boundary closest to the middle
func (s *Splitter) wrapText(text string) string {
	text = strings.TrimSpace(text)
	runeCount := utf8.RuneCountInString(text)
	if runeCount <= s.MaxCharsPerLine {
		return text
	}

	words := strings.Fields(text)
	if len(words) < 2 {
		return text
	}

	middle := runeCount / 2
	bestSplit := 0
	bestDiff := runeCount

	currentLen := 0
	for i, word := range words[:len(words)-1] {
		currentLen += utf8.RuneCountInString(word)
		if i > 0 {
			currentLen++ // space
		}

		diff := abs(currentLen - middle)
		if diff < bestDiff {
			bestDiff = diff
			bestSplit = i + 1
		}
	}

	if bestSplit > 0 && bestSplit < len(words) {
		return strings.Join(words[:bestSplit], " ") + "\n" + strings.Join(words[bestSplit:], " ")
	}

	return text
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
