package fcpxml

import (
	"fmt"
	"math"
)

// ToRational converts a time in seconds to the rational timecode string FCP
// expects, e.g. 5.0 at 30fps -> "15000/3000s".
//
// The value is snapped to the nearest frame boundary of the target rate
// (math.Round, ties away from zero): frameCount = round(seconds * D / N),
// ticks = frameCount * N. Emitting an arbitrary real-valued fraction instead
// would make FCP reject the clip timing.
func ToRational(seconds float64, rate FrameRate) string {
	tb := rate.timebase()
	frameCount := int64(math.Round(seconds * float64(tb.denominator) / float64(tb.numerator)))
	ticks := frameCount * tb.numerator
	return fmt.Sprintf("%d/%ds", ticks, tb.denominator)
}

// rate suffixes used in Apple's built-in format names
var formatRateSuffixes = map[FrameRate]string{
	FrameRate23_976: "2398",
	FrameRate24:     "24",
	FrameRate25:     "25",
	FrameRate29_97:  "2997",
	FrameRate30:     "30",
	FrameRate50:     "50",
	FrameRate59_94:  "5994",
	FrameRate60:     "60",
}

// vertical size labels for the standard resolutions
var formatSizeLabels = map[[2]int]string{
	{1920, 1080}: "1080p",
	{1280, 720}:  "720p",
	{3840, 2160}: "3840x2160p",
	{1080, 1920}: "1080x1920p",
}

// FormatName derives the FCP format resource name for a resolution and frame
// rate. Resolutions outside the fixed lookup fall back to
// "FFVideoFormatRateUndefined"; the explicit width/height attributes on the
// format element carry the real dimensions in that case.
func FormatName(width, height int, rate FrameRate) string {
	size, ok := formatSizeLabels[[2]int{width, height}]
	if !ok {
		return "FFVideoFormatRateUndefined"
	}
	return "FFVideoFormat" + size + formatRateSuffixes[rate]
}
