package fcpxml

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleTemplateXML = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE fcpxml>
<fcpxml version="1.11">
    <resources>
        <format id="r1" name="FFVideoFormat1080p30" frameDuration="100/3000s" width="1920" height="1080"/>
        <effect id="r2" name="Graphic Text Block" uid="~/Movies/Motion Templates.localized/Titles.localized/Graphic Text Block.moti"/>
    </resources>
    <library>
        <event name="Event">
            <project name="Project">
                <sequence format="r1" duration="300/3000s" tcStart="0s" tcFormat="NDF">
                    <spine>
                        <title ref="r2" offset="0s" name="Sample" start="0s" duration="300/3000s">
                            <param name="Position" key="9999/999166631/999166633/1/100/101" value="0 -400"/>
                            <param name="Animation" key="9999/10003/2" value="1 (Custom)"/>
                            <text>
                                <text-style ref="ts1">Sample</text-style>
                            </text>
                            <text-style-def id="ts1">
                                <text-style font="Impact" fontSize="96" fontFace="Impact" fontColor="1 0.5 0 1" alignment="center" strokeColor="0 0 0 1" strokeWidth="4" bold="1"/>
                            </text-style-def>
                        </title>
                    </spine>
                </sequence>
            </project>
        </event>
    </library>
</fcpxml>`

func TestParseTemplate(t *testing.T) {
	tmpl, err := ParseTemplate([]byte(sampleTemplateXML))
	if err != nil {
		t.Fatalf("ParseTemplate returned error: %v", err)
	}

	if tmpl.EffectName != "Graphic Text Block" {
		t.Errorf("EffectName = %q", tmpl.EffectName)
	}
	wantUID := "~/Movies/Motion Templates.localized/Titles.localized/Graphic Text Block.moti"
	if tmpl.EffectUID != wantUID {
		t.Errorf("EffectUID = %q, want %q", tmpl.EffectUID, wantUID)
	}

	if len(tmpl.Params) != 2 {
		t.Fatalf("got %d params, want 2", len(tmpl.Params))
	}
	if tmpl.Params[0].Name != "Position" || tmpl.Params[1].Name != "Animation" {
		t.Errorf(
			"params out of document order: %q, %q",
			tmpl.Params[0].Name,
			tmpl.Params[1].Name,
		)
	}
	if tmpl.Params[0].Key != "9999/999166631/999166633/1/100/101" {
		t.Errorf("param key = %q", tmpl.Params[0].Key)
	}
	if tmpl.Params[1].Value != "1 (Custom)" {
		t.Errorf("param value = %q", tmpl.Params[1].Value)
	}

	// raw attribute strings keep the original attribute order
	wantRaw := `name="Animation" key="9999/10003/2" value="1 (Custom)"`
	if tmpl.Params[1].RawAttrs != wantRaw {
		t.Errorf("RawAttrs = %q, want %q", tmpl.Params[1].RawAttrs, wantRaw)
	}

	if tmpl.TextStyle == nil {
		t.Fatal("TextStyle is nil")
	}
	if got := tmpl.TextStyle.Font(); got != "Impact" {
		t.Errorf("Font() = %q", got)
	}
	if got := tmpl.TextStyle.FontSize(); got != "96" {
		t.Errorf("FontSize() = %q", got)
	}
	if got := tmpl.TextStyle.StrokeColor(); got != "0 0 0 1" {
		t.Errorf("StrokeColor() = %q", got)
	}
	if got := tmpl.TextStyle.StrokeWidth(); got != "4" {
		t.Errorf("StrokeWidth() = %q", got)
	}
	if !tmpl.TextStyle.Bold() {
		t.Error("Bold() = false, want true")
	}
	if tmpl.TextStyle.Italic() {
		t.Error("Italic() = true, want false")
	}

	if !strings.Contains(tmpl.RawTitleXML, `<title ref="r2"`) {
		t.Errorf("RawTitleXML missing title element:\n%s", tmpl.RawTitleXML)
	}
}

func TestParseTemplateWithoutTextStyle(t *testing.T) {
	src := `<fcpxml version="1.11">
		<resources>
			<effect id="r2" name="Basic Title" uid="uid"/>
		</resources>
		<library><event><project><sequence><spine>
			<title ref="r2" offset="0s" name="t" duration="100/3000s"/>
		</spine></sequence></project></event></library>
	</fcpxml>`

	tmpl, err := ParseTemplate([]byte(src))
	if err != nil {
		t.Fatalf("ParseTemplate returned error: %v", err)
	}
	if tmpl.TextStyle != nil {
		t.Error("expected nil TextStyle for a title without text-style-def")
	}
	if len(tmpl.Params) != 0 {
		t.Errorf("expected no params, got %d", len(tmpl.Params))
	}
}

func TestParseTemplateMalformed(t *testing.T) {
	_, err := ParseTemplate([]byte(`<fcpxml><resources><effect`))
	if err == nil {
		t.Fatal("expected error for malformed XML")
	}
	var malformed *MalformedError
	if !errors.As(err, &malformed) {
		t.Errorf("expected *MalformedError, got %T: %v", err, err)
	}
	if malformed.Detail == "" {
		t.Error("MalformedError.Detail should carry the parser diagnostic")
	}
}

func TestParseTemplateNoEffect(t *testing.T) {
	src := `<fcpxml version="1.11">
		<resources>
			<format id="r1" name="FFVideoFormat1080p30"/>
		</resources>
		<library><event><project><sequence><spine>
			<title ref="r2" name="t"/>
		</spine></sequence></project></event></library>
	</fcpxml>`

	_, err := ParseTemplate([]byte(src))
	if !errors.Is(err, ErrEffectNotFound) {
		t.Errorf("expected ErrEffectNotFound, got %v", err)
	}
}

func TestParseTemplateNoTitle(t *testing.T) {
	src := `<fcpxml version="1.11">
		<resources>
			<effect id="r2" name="Basic Title" uid="uid"/>
		</resources>
		<library><event><project><sequence><spine/></sequence></project></event></library>
	</fcpxml>`

	_, err := ParseTemplate([]byte(src))
	if !errors.Is(err, ErrTitleNotFound) {
		t.Errorf("expected ErrTitleNotFound, got %v", err)
	}
}

func TestExtractTemplate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "template.fcpxml")
	if err := os.WriteFile(path, []byte(sampleTemplateXML), 0o644); err != nil {
		t.Fatal(err)
	}

	tmpl, err := ExtractTemplate(path)
	if err != nil {
		t.Fatalf("ExtractTemplate returned error: %v", err)
	}
	if tmpl.EffectName != "Graphic Text Block" {
		t.Errorf("EffectName = %q", tmpl.EffectName)
	}
}

func TestExtractTemplateMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.fcpxml")
	_, err := ExtractTemplate(path)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "template file not found") {
		t.Errorf("error should name the missing file case: %v", err)
	}
}

func TestRawAttrStringEscapes(t *testing.T) {
	src := `<fcpxml>
		<resources><effect id="r2" name="T &amp; Co" uid="u"/></resources>
		<title name="t">
			<param name="Text" key="1/2" value="a &lt;b&gt; &quot;c&quot;"/>
		</title>
	</fcpxml>`

	tmpl, err := ParseTemplate([]byte(src))
	if err != nil {
		t.Fatalf("ParseTemplate returned error: %v", err)
	}
	if tmpl.EffectName != "T & Co" {
		t.Errorf("EffectName = %q, want decoded entity", tmpl.EffectName)
	}

	// decoded on parse, re-escaped in the raw string
	wantRaw := `name="Text" key="1/2" value="a &lt;b&gt; &quot;c&quot;"`
	if tmpl.Params[0].RawAttrs != wantRaw {
		t.Errorf("RawAttrs = %q, want %q", tmpl.Params[0].RawAttrs, wantRaw)
	}
}
