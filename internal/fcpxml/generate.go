package fcpxml

import (
	"fmt"
	"strings"

	"github.com/patelnav/fcpsub/internal/transcript"
)

// identity of the built-in title effect used when no template is loaded
const (
	defaultEffectName = "Basic Title"
	defaultEffectUID  = ".../Titles.localized/Bumper:Opener.localized/Basic Title.localized/Basic Title.moti"

	// Position parameter of the standard Basic Title
	positionParamKey = "9999/999166631/999166633/1/100/101"

	// trailing seconds appended to the sequence so the last title is not
	// clipped by the sequence length
	sequenceTailSeconds = 2.0
)

// project resolution and frame rate
type Settings struct {
	Width     int
	Height    int
	FrameRate FrameRate
}

func DefaultSettings() Settings {
	return Settings{
		Width:     1920,
		Height:    1080,
		FrameRate: FrameRate30,
	}
}

// EscapeXML escapes the five XML special characters for use in attribute
// values and character data. The ampersand is substituted first so entities
// introduced by the other replacements are not escaped twice.
func EscapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	s = strings.ReplaceAll(s, "'", "&#39;")
	return s
}

// Generate builds a complete FCPXML project document with one title clip per
// transcription segment. It is a pure function of its inputs: identical
// inputs produce byte-identical output, and no input is mutated.
//
// With a nil template the titles use the built-in Basic Title effect and a
// text style synthesized from the user style alone. With a template, the
// template's effect identity is referenced, every template param is re-emitted
// verbatim from its preserved raw attribute string, and the text style is the
// template's attribute bag merged with the user style.
//
// An empty segment slice degrades to a well-formed document with an empty
// spine; generation itself never fails.
func Generate(
	segments []transcript.Segment,
	style SubtitleStyle,
	settings Settings,
	tmpl *Template,
	projectName string,
) string {
	rate := settings.FrameRate

	var totalSeconds float64
	if len(segments) > 0 {
		totalSeconds = segments[len(segments)-1].End
	}
	totalSeconds += sequenceTailSeconds
	totalDuration := ToRational(totalSeconds, rate)

	effectName := defaultEffectName
	effectUID := defaultEffectUID
	if tmpl != nil {
		effectName = tmpl.EffectName
		effectUID = tmpl.EffectUID
	}

	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	sb.WriteString("<!DOCTYPE fcpxml>\n\n")
	sb.WriteString(`<fcpxml version="1.11">` + "\n")

	sb.WriteString("    <resources>\n")
	sb.WriteString(fmt.Sprintf(
		`        <format id="r1" name="%s" frameDuration="%s" width="%d" height="%d"/>`+"\n",
		FormatName(settings.Width, settings.Height, rate),
		rate.FrameDuration(),
		settings.Width,
		settings.Height,
	))
	sb.WriteString(fmt.Sprintf(
		`        <effect id="r2" name="%s" uid="%s"/>`+"\n",
		EscapeXML(effectName),
		EscapeXML(effectUID),
	))
	sb.WriteString("    </resources>\n")

	sb.WriteString("    <library>\n")
	sb.WriteString(fmt.Sprintf(`        <event name="%s">`+"\n", EscapeXML(projectName)))
	sb.WriteString(fmt.Sprintf(`            <project name="%s">`+"\n", EscapeXML(projectName)))
	sb.WriteString(fmt.Sprintf(
		`                <sequence format="r1" duration="%s" tcStart="0s" tcFormat="NDF" audioLayout="stereo" audioRate="48k">`+"\n",
		totalDuration,
	))
	sb.WriteString("                    <spine>\n")

	for i, seg := range segments {
		writeTitle(&sb, i+1, seg, style, rate, tmpl)
	}

	sb.WriteString("                    </spine>\n")
	sb.WriteString("                </sequence>\n")
	sb.WriteString("            </project>\n")
	sb.WriteString("        </event>\n")
	sb.WriteString("    </library>\n")
	sb.WriteString("</fcpxml>\n")

	return sb.String()
}

// writeTitle emits one title clip. The title's placement in the spine is
// carried by offset/duration; start is a fixed "0s" into the title's own
// local timeline. Each title gets a document-unique text style id "ts{index}"
// from its 1-based index.
func writeTitle(
	sb *strings.Builder,
	index int,
	seg transcript.Segment,
	style SubtitleStyle,
	rate FrameRate,
	tmpl *Template,
) {
	offset := ToRational(seg.Start, rate)
	duration := ToRational(seg.End-seg.Start, rate)
	styleID := fmt.Sprintf("ts%d", index)
	text := EscapeXML(seg.Text)

	sb.WriteString(fmt.Sprintf(
		`                        <title ref="r2" offset="%s" name="%s" start="0s" duration="%s">`+"\n",
		offset,
		text,
		duration,
	))

	if tmpl != nil {
		for _, param := range tmpl.Params {
			sb.WriteString("                            <param ")
			sb.WriteString(param.RawAttrs)
			sb.WriteString("/>\n")
		}
	} else {
		sb.WriteString(fmt.Sprintf(
			`                            <param name="Position" key="%s" value="0 %d"/>`+"\n",
			positionParamKey,
			style.VerticalPosition,
		))
	}

	sb.WriteString("                            <text>\n")
	sb.WriteString(fmt.Sprintf(
		`                                <text-style ref="%s">%s</text-style>`+"\n",
		styleID,
		text,
	))
	sb.WriteString("                            </text>\n")

	var base *TemplateTextStyle
	if tmpl != nil {
		base = tmpl.TextStyle
	}
	attrs := MergeTextStyleAttrs(base, style)

	sb.WriteString(fmt.Sprintf(
		`                            <text-style-def id="%s">`+"\n",
		styleID,
	))
	sb.WriteString(fmt.Sprintf(
		"                                <text-style %s/>\n",
		attrs.String(),
	))
	sb.WriteString("                            </text-style-def>\n")
	sb.WriteString("                        </title>\n")
}
