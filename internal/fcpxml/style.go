package fcpxml

import (
	"fmt"
	"strconv"
	"strings"
)

// text alignment keyword
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// SubtitleStyle holds the user-chosen appearance of generated titles. Colors
// are stored as "#RRGGBB" hex strings for persistence and converted to FCP's
// "r g b a" float form when serialized.
type SubtitleStyle struct {
	FontName         string    `yaml:"font_name"`
	FontSize         int       `yaml:"font_size"`
	FontColor        string    `yaml:"font_color"`
	Bold             bool      `yaml:"bold"`
	Italic           bool      `yaml:"italic"`
	Alignment        Alignment `yaml:"alignment"`
	StrokeColor      string    `yaml:"stroke_color"`
	StrokeWidth      float64   `yaml:"stroke_width"`
	VerticalPosition int       `yaml:"vertical_position"`
}

// DefaultStyle returns the built-in subtitle appearance: white centered
// Helvetica in the lower third, no stroke.
func DefaultStyle() SubtitleStyle {
	return SubtitleStyle{
		FontName:         "Helvetica Neue",
		FontSize:         72,
		FontColor:        "#FFFFFF",
		Alignment:        AlignCenter,
		StrokeColor:      "#000000",
		StrokeWidth:      0,
		VerticalPosition: -400,
	}
}

// FontFace derives the full face name from the font and the bold/italic
// flags, bold first when both are set, e.g. "Helvetica Neue Bold Italic".
func (s SubtitleStyle) FontFace() string {
	face := s.FontName
	switch {
	case s.Bold && s.Italic:
		face += " Bold Italic"
	case s.Bold:
		face += " Bold"
	case s.Italic:
		face += " Italic"
	}
	return face
}

// HexToRGBA converts a "#RRGGBB" hex color to FCP's "r g b a" representation
// with each channel as a 0-1 float and alpha fixed at 1. Unparseable input
// yields opaque white.
func HexToRGBA(hex string) string {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 {
		return "1 1 1 1"
	}

	channels := make([]float64, 3)
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return "1 1 1 1"
		}
		channels[i] = float64(v) / 255.0
	}

	return fmt.Sprintf(
		"%s %s %s 1",
		formatChannel(channels[0]),
		formatChannel(channels[1]),
		formatChannel(channels[2]),
	)
}

// trims trailing zeros so e.g. 1.000000 renders as 1
func formatChannel(v float64) string {
	s := strconv.FormatFloat(v, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s
}

// MergeTextStyleAttrs combines a template's text-style attribute bag with the
// user style into the final attribute set for a generated text-style element.
// The user style wins on font, fontSize, fontFace, fontColor and alignment.
// Stroke attributes are only overridden when the user stroke width is
// positive: a zero width means "no stroke chosen", and any stroke the
// template carries stays inherited rather than being blanked out.
//
// With a nil base the full field set, stroke included, is synthesized from
// the style alone; the zero-width suppression only exists to protect an
// inherited template stroke.
func MergeTextStyleAttrs(base *TemplateTextStyle, style SubtitleStyle) *Attributes {
	var attrs *Attributes
	if base != nil {
		attrs = base.Attrs.Clone()
	} else {
		attrs = NewAttributes()
	}

	attrs.Set("font", style.FontName)
	attrs.Set("fontSize", strconv.Itoa(style.FontSize))
	attrs.Set("fontFace", style.FontFace())
	attrs.Set("fontColor", HexToRGBA(style.FontColor))
	attrs.Set("alignment", string(style.Alignment))

	if base == nil || style.StrokeWidth > 0 {
		attrs.Set("strokeColor", HexToRGBA(style.StrokeColor))
		attrs.Set("strokeWidth", formatChannel(style.StrokeWidth))
	}

	return attrs
}
