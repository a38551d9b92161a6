package transcript

import "sort"

// Segment is one transcribed utterance with times in seconds. Segments are
// produced in chronological order; text stays user-editable afterward but
// the times are fixed by the transcriber.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// duration in seconds
func (s Segment) Duration() float64 {
	return s.End - s.Start
}

// Shift returns a copy of the segments with both timestamps moved by offset
// seconds. Used to place chunk-local transcripts on the full media timeline.
func Shift(segments []Segment, offset float64) []Segment {
	shifted := make([]Segment, len(segments))
	for i, seg := range segments {
		shifted[i] = Segment{
			Start: seg.Start + offset,
			End:   seg.End + offset,
			Text:  seg.Text,
		}
	}
	return shifted
}

// SortByStart orders segments chronologically in place.
func SortByStart(segments []Segment) {
	sort.Slice(segments, func(i, j int) bool {
		return segments[i].Start < segments[j].Start
	})
}
