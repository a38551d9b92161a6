package fcpxml

import "testing"

func TestHexToRGBA(t *testing.T) {
	tests := []struct {
		hex  string
		want string
	}{
		{"#FFFFFF", "1 1 1 1"},
		{"#000000", "0 0 0 1"},
		{"#FF0000", "1 0 0 1"},
		{"#00FF00", "0 1 0 1"},
		{"#0000FF", "0 0 1 1"},
		{"#808080", "0.501961 0.501961 0.501961 1"},
		{"FFFFFF", "1 1 1 1"},
		{"  #000000  ", "0 0 0 1"},

		// unparseable input falls back to opaque white
		{"", "1 1 1 1"},
		{"#FFF", "1 1 1 1"},
		{"#GGGGGG", "1 1 1 1"},
		{"not a color", "1 1 1 1"},
	}

	for _, tt := range tests {
		if got := HexToRGBA(tt.hex); got != tt.want {
			t.Errorf("HexToRGBA(%q) = %q, want %q", tt.hex, got, tt.want)
		}
	}
}

func TestFontFace(t *testing.T) {
	tests := []struct {
		name   string
		bold   bool
		italic bool
		want   string
	}{
		{"plain", false, false, "Helvetica Neue"},
		{"bold", true, false, "Helvetica Neue Bold"},
		{"italic", false, true, "Helvetica Neue Italic"},
		{"bold italic", true, true, "Helvetica Neue Bold Italic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := SubtitleStyle{
				FontName: "Helvetica Neue",
				Bold:     tt.bold,
				Italic:   tt.italic,
			}
			if got := style.FontFace(); got != tt.want {
				t.Errorf("FontFace() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMergeTextStyleAttrsWithoutTemplate(t *testing.T) {
	style := DefaultStyle()

	attrs := MergeTextStyleAttrs(nil, style)

	// without a template, the full field set is synthesized, stroke
	// included even at zero width
	want := map[string]string{
		"font":        "Helvetica Neue",
		"fontSize":    "72",
		"fontFace":    "Helvetica Neue",
		"fontColor":   "1 1 1 1",
		"alignment":   "center",
		"strokeColor": "0 0 0 1",
		"strokeWidth": "0",
	}
	for key, value := range want {
		if got := attrs.Get(key); got != value {
			t.Errorf("attrs[%s] = %q, want %q", key, got, value)
		}
	}
	if attrs.Len() != len(want) {
		t.Errorf("got %d attributes, want %d", attrs.Len(), len(want))
	}
}

func TestMergeTextStyleAttrsUserWins(t *testing.T) {
	base := &TemplateTextStyle{Attrs: NewAttributes()}
	base.Attrs.Set("font", "Impact")
	base.Attrs.Set("fontSize", "96")
	base.Attrs.Set("fontColor", "1 0.5 0 1")
	base.Attrs.Set("alignment", "left")
	base.Attrs.Set("lineSpacing", "1.2")

	style := DefaultStyle()
	attrs := MergeTextStyleAttrs(base, style)

	if got := attrs.Get("font"); got != "Helvetica Neue" {
		t.Errorf("font = %q, want user value", got)
	}
	if got := attrs.Get("fontSize"); got != "72" {
		t.Errorf("fontSize = %q, want %q", got, "72")
	}
	if got := attrs.Get("fontColor"); got != "1 1 1 1" {
		t.Errorf("fontColor = %q, want user value", got)
	}
	if got := attrs.Get("alignment"); got != "center" {
		t.Errorf("alignment = %q, want user value", got)
	}

	// template attributes the user style does not touch survive the merge
	if got := attrs.Get("lineSpacing"); got != "1.2" {
		t.Errorf("lineSpacing = %q, want template value preserved", got)
	}
}

func TestMergeTextStyleAttrsStrokePrecedence(t *testing.T) {
	newBase := func() *TemplateTextStyle {
		base := &TemplateTextStyle{Attrs: NewAttributes()}
		base.Attrs.Set("font", "Impact")
		base.Attrs.Set("strokeColor", "0 0 0 1")
		base.Attrs.Set("strokeWidth", "4")
		return base
	}

	t.Run("zero width inherits template stroke", func(t *testing.T) {
		style := DefaultStyle()
		style.StrokeWidth = 0
		style.StrokeColor = "#FF0000"

		attrs := MergeTextStyleAttrs(newBase(), style)
		if got := attrs.Get("strokeColor"); got != "0 0 0 1" {
			t.Errorf("strokeColor = %q, want template stroke kept", got)
		}
		if got := attrs.Get("strokeWidth"); got != "4" {
			t.Errorf("strokeWidth = %q, want template stroke kept", got)
		}
	})

	t.Run("zero width without template still emits stroke", func(t *testing.T) {
		style := DefaultStyle()
		style.StrokeWidth = 0

		attrs := MergeTextStyleAttrs(nil, style)
		if !attrs.Has("strokeColor") || !attrs.Has("strokeWidth") {
			t.Fatal("stroke fields missing from the synthesized set")
		}
		if got := attrs.Get("strokeWidth"); got != "0" {
			t.Errorf("strokeWidth = %q, want %q", got, "0")
		}
	})

	t.Run("positive width overrides template stroke", func(t *testing.T) {
		style := DefaultStyle()
		style.StrokeWidth = 2
		style.StrokeColor = "#FF0000"

		attrs := MergeTextStyleAttrs(newBase(), style)
		if got := attrs.Get("strokeColor"); got != "1 0 0 1" {
			t.Errorf("strokeColor = %q, want user stroke", got)
		}
		if got := attrs.Get("strokeWidth"); got != "2" {
			t.Errorf("strokeWidth = %q, want user stroke", got)
		}
	})

	t.Run("merge does not mutate the template", func(t *testing.T) {
		base := newBase()
		style := DefaultStyle()
		style.StrokeWidth = 2

		MergeTextStyleAttrs(base, style)
		if got := base.Attrs.Get("strokeWidth"); got != "4" {
			t.Errorf("template strokeWidth changed to %q", got)
		}
		if got := base.Attrs.Get("font"); got != "Impact" {
			t.Errorf("template font changed to %q", got)
		}
	})
}

func TestAttributesStringSortedAndEscaped(t *testing.T) {
	attrs := NewAttributes()
	attrs.Set("fontFace", "Helvetica")
	attrs.Set("font", `A "B" & C`)
	attrs.Set("alignment", "center")

	want := `alignment="center" font="A &quot;B&quot; &amp; C" fontFace="Helvetica"`
	if got := attrs.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestAttributesKeysInsertionOrder(t *testing.T) {
	attrs := NewAttributes()
	attrs.Set("zeta", "1")
	attrs.Set("alpha", "2")
	attrs.Set("zeta", "3") // replace keeps original position

	keys := attrs.Keys()
	if len(keys) != 2 || keys[0] != "zeta" || keys[1] != "alpha" {
		t.Errorf("Keys() = %v, want [zeta alpha]", keys)
	}
	if got := attrs.Get("zeta"); got != "3" {
		t.Errorf("Get(zeta) = %q, want %q", got, "3")
	}
}
