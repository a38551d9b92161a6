package fcpxml

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/patelnav/fcpsub/internal/transcript"
)

func TestEscapeXML(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain", "plain"},
		{"A & B", "A &amp; B"},
		{"<tag>", "&lt;tag&gt;"},
		{`say "hi"`, "say &quot;hi&quot;"},
		{"it's", "it&#39;s"},
		{`&<>"'`, "&amp;&lt;&gt;&quot;&#39;"},

		// already-escaped input is escaped again, not passed through
		{"&amp;", "&amp;amp;"},
	}

	for _, tt := range tests {
		if got := EscapeXML(tt.input); got != tt.want {
			t.Errorf("EscapeXML(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestGenerate(t *testing.T) {
	segments := []transcript.Segment{
		{Start: 0, End: 1.5, Text: "Hello"},
		{Start: 1.5, End: 3.0, Text: "World"},
	}

	out := Generate(segments, DefaultStyle(), DefaultSettings(), nil, "My Project")

	if !strings.HasPrefix(out, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<!DOCTYPE fcpxml>\n\n<fcpxml version=\"1.11\">\n") {
		t.Errorf("unexpected document prologue:\n%s", out[:min(len(out), 120)])
	}

	if got := strings.Count(out, "<title "); got != 2 {
		t.Errorf("got %d title elements, want 2", got)
	}

	// sequence spans the last segment end plus the two second tail
	if !strings.Contains(out, `<sequence format="r1" duration="15000/3000s" tcStart="0s" tcFormat="NDF" audioLayout="stereo" audioRate="48k">`) {
		t.Errorf("sequence element missing or wrong duration:\n%s", out)
	}

	if !strings.Contains(out, `<format id="r1" name="FFVideoFormat1080p30" frameDuration="100/3000s" width="1920" height="1080"/>`) {
		t.Error("format resource missing or wrong")
	}
	if !strings.Contains(out, `<effect id="r2" name="Basic Title"`) {
		t.Error("default effect resource missing")
	}

	if !strings.Contains(out, `<title ref="r2" offset="0/3000s" name="Hello" start="0s" duration="4500/3000s">`) {
		t.Error("first title element missing or wrong timing")
	}
	if !strings.Contains(out, `<title ref="r2" offset="4500/3000s" name="World" start="0s" duration="4500/3000s">`) {
		t.Error("second title element missing or wrong timing")
	}

	// one document-unique text style per title
	if !strings.Contains(out, `<text-style-def id="ts1">`) ||
		!strings.Contains(out, `<text-style-def id="ts2">`) {
		t.Error("text style defs missing")
	}
	if !strings.Contains(out, `<text-style ref="ts1">Hello</text-style>`) {
		t.Error("first text element missing")
	}

	if !strings.Contains(out, `<param name="Position" key="9999/999166631/999166633/1/100/101" value="0 -400"/>`) {
		t.Error("position param missing")
	}
	// without a template, the full field set is synthesized even at zero
	// stroke width
	if !strings.Contains(out, `strokeColor="0 0 0 1"`) ||
		!strings.Contains(out, `strokeWidth="0"`) {
		t.Error("synthesized stroke attributes missing")
	}

	if !strings.Contains(out, `<event name="My Project">`) ||
		!strings.Contains(out, `<project name="My Project">`) {
		t.Error("event/project naming missing")
	}
}

func TestGenerateIsWellFormedXML(t *testing.T) {
	segments := []transcript.Segment{
		{Start: 0, End: 1.5, Text: `A & B <C> "D" 'E'`},
		{Start: 1.5, End: 3.0, Text: "plain"},
	}
	style := DefaultStyle()
	style.StrokeWidth = 2

	out := Generate(segments, style, DefaultSettings(), nil, `P & "Q"`)

	var doc struct{}
	if err := xml.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("generated document is not well-formed: %v\n%s", err, out)
	}
}

func TestGenerateEscapesSegmentText(t *testing.T) {
	segments := []transcript.Segment{
		{Start: 0, End: 1.0, Text: `A & B <C> "D" 'E'`},
	}

	out := Generate(segments, DefaultStyle(), DefaultSettings(), nil, "p")

	want := "A &amp; B &lt;C&gt; &quot;D&quot; &#39;E&#39;"
	if !strings.Contains(out, `name="`+want+`"`) {
		t.Error("title name not escaped")
	}
	if !strings.Contains(out, `>`+want+`</text-style>`) {
		t.Error("text content not escaped")
	}
}

func TestGenerateDeterministic(t *testing.T) {
	segments := []transcript.Segment{
		{Start: 0, End: 2.0, Text: "one"},
		{Start: 2.0, End: 4.5, Text: "two"},
	}
	style := DefaultStyle()
	style.StrokeWidth = 3

	first := Generate(segments, style, DefaultSettings(), nil, "p")
	for i := 0; i < 5; i++ {
		if got := Generate(segments, style, DefaultSettings(), nil, "p"); got != first {
			t.Fatal("repeated generation produced different output")
		}
	}
}

func TestGenerateEmptySegments(t *testing.T) {
	out := Generate(nil, DefaultStyle(), DefaultSettings(), nil, "empty")

	if strings.Contains(out, "<title ") {
		t.Error("empty input should produce no titles")
	}
	if !strings.Contains(out, "<spine>\n                    </spine>") {
		t.Error("spine should be present and empty")
	}
	// only the tail remains
	if !strings.Contains(out, `duration="6000/3000s"`) {
		t.Errorf("sequence duration should be the two second tail:\n%s", out)
	}

	var doc struct{}
	if err := xml.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("generated document is not well-formed: %v", err)
	}
}

func TestGenerateWithTemplate(t *testing.T) {
	tmpl, err := ParseTemplate([]byte(sampleTemplateXML))
	if err != nil {
		t.Fatalf("ParseTemplate returned error: %v", err)
	}

	segments := []transcript.Segment{
		{Start: 0, End: 1.0, Text: "Hello"},
	}
	out := Generate(segments, DefaultStyle(), DefaultSettings(), tmpl, "p")

	// the template's effect identity replaces the built-in one
	if !strings.Contains(out, `<effect id="r2" name="Graphic Text Block" uid="~/Movies/Motion Templates.localized/Titles.localized/Graphic Text Block.moti"/>`) {
		t.Error("template effect identity missing")
	}

	// every template param is re-emitted byte for byte
	if !strings.Contains(out, `<param name="Position" key="9999/999166631/999166633/1/100/101" value="0 -400"/>`) {
		t.Error("template position param not round-tripped")
	}
	if !strings.Contains(out, `<param name="Animation" key="9999/10003/2" value="1 (Custom)"/>`) {
		t.Error("template animation param not round-tripped")
	}

	// user style wins on font, the template stroke survives the default
	// zero stroke width
	if !strings.Contains(out, `font="Helvetica Neue"`) {
		t.Error("user font should win over template font")
	}
	if !strings.Contains(out, `strokeColor="0 0 0 1"`) ||
		!strings.Contains(out, `strokeWidth="4"`) {
		t.Error("template stroke should be inherited with zero user stroke width")
	}

	// template attributes the user style does not control stay in place
	if !strings.Contains(out, `bold="1"`) {
		t.Error("template bold attribute should survive the merge")
	}
}

func TestGenerateSettings(t *testing.T) {
	segments := []transcript.Segment{{Start: 0, End: 1.0, Text: "x"}}
	settings := Settings{Width: 1280, Height: 720, FrameRate: FrameRate59_94}

	out := Generate(segments, DefaultStyle(), settings, nil, "p")

	if !strings.Contains(out, `<format id="r1" name="FFVideoFormat720p5994" frameDuration="1001/60000s" width="1280" height="720"/>`) {
		t.Errorf("format resource wrong for 720p59.94:\n%s", out)
	}
	// 1.0s at 59.94 lands on a 1001-tick boundary
	if !strings.Contains(out, `duration="60060/60000s"`) {
		t.Error("title duration not snapped to the NTSC timebase")
	}
}
