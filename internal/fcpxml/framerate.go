package fcpxml

import "fmt"

// supported project frame rate
type FrameRate string

const (
	FrameRate23_976 FrameRate = "23.976"
	FrameRate24     FrameRate = "24"
	FrameRate25     FrameRate = "25"
	FrameRate29_97  FrameRate = "29.97"
	FrameRate30     FrameRate = "30"
	FrameRate50     FrameRate = "50"
	FrameRate59_94  FrameRate = "59.94"
	FrameRate60     FrameRate = "60"
)

// fixed rational timebase for a frame rate. The numerator/denominator pairs
// are constants per rate and are never derived from the nominal fps, so the
// emitted timecodes stay exact for the NTSC fractional rates.
type timebase struct {
	numerator   int64
	denominator int64
	fps         float64
}

var timebases = map[FrameRate]timebase{
	FrameRate23_976: {1001, 24000, 23.976},
	FrameRate24:     {100, 2400, 24},
	FrameRate25:     {100, 2500, 25},
	FrameRate29_97:  {1001, 30000, 29.97},
	FrameRate30:     {100, 3000, 30},
	FrameRate50:     {100, 5000, 50},
	FrameRate59_94:  {1001, 60000, 59.94},
	FrameRate60:     {100, 6000, 60},
}

// all supported rates in ascending fps order
func FrameRates() []FrameRate {
	return []FrameRate{
		FrameRate23_976,
		FrameRate24,
		FrameRate25,
		FrameRate29_97,
		FrameRate30,
		FrameRate50,
		FrameRate59_94,
		FrameRate60,
	}
}

// parses a frame rate string like "29.97" or "30"
func ParseFrameRate(s string) (FrameRate, error) {
	rate := FrameRate(s)
	if _, ok := timebases[rate]; !ok {
		return "", fmt.Errorf(
			"unsupported frame rate %q: supported rates are 23.976, 24, 25, 29.97, 30, 50, 59.94, 60",
			s,
		)
	}
	return rate, nil
}

func (r FrameRate) timebase() timebase {
	tb, ok := timebases[r]
	if !ok {
		// unknown rates behave as 30fps rather than panicking mid-generation
		return timebases[FrameRate30]
	}
	return tb
}

// timebase numerator (ticks per frame)
func (r FrameRate) Numerator() int64 {
	return r.timebase().numerator
}

// timebase denominator (ticks per second)
func (r FrameRate) Denominator() int64 {
	return r.timebase().denominator
}

// nominal frames per second
func (r FrameRate) FPS() float64 {
	return r.timebase().fps
}

// duration of one frame as a rational string, e.g. "1001/30000s"
func (r FrameRate) FrameDuration() string {
	tb := r.timebase()
	return fmt.Sprintf("%d/%ds", tb.numerator, tb.denominator)
}
