package fcpxml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	// well-formed XML with no effect under resources
	ErrEffectNotFound = errors.New(
		"no effect found in the resources section: the file does not look like an FCP title export",
	)
	// well-formed XML with no title element anywhere
	ErrTitleNotFound = errors.New(
		"no title element found: the file contains no title clip to use as a template",
	)
)

// MalformedError reports a template source that could not be parsed as XML.
// The parser diagnostic is carried in Detail.
type MalformedError struct {
	Detail string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("template file is not well-formed XML: %s", e.Detail)
}

// one param element lifted from the template title. Name, Key and Value are
// for display; RawAttrs is the source of truth re-emitted verbatim when a
// document is generated from the template, so animation and position params
// survive byte for byte.
type TemplateParam struct {
	Name     string
	Key      string
	Value    string
	RawAttrs string
}

// TemplateTextStyle preserves every attribute of the template's text-style
// element. The accessors expose the commonly used fields out of that same
// bag; nothing is stored twice.
type TemplateTextStyle struct {
	Attrs *Attributes
}

func (t *TemplateTextStyle) Font() string        { return t.Attrs.Get("font") }
func (t *TemplateTextStyle) FontSize() string    { return t.Attrs.Get("fontSize") }
func (t *TemplateTextStyle) FontFace() string    { return t.Attrs.Get("fontFace") }
func (t *TemplateTextStyle) FontColor() string   { return t.Attrs.Get("fontColor") }
func (t *TemplateTextStyle) Alignment() string   { return t.Attrs.Get("alignment") }
func (t *TemplateTextStyle) StrokeColor() string { return t.Attrs.Get("strokeColor") }
func (t *TemplateTextStyle) StrokeWidth() string { return t.Attrs.Get("strokeWidth") }
func (t *TemplateTextStyle) Bold() bool          { return t.Attrs.Get("bold") == "1" }
func (t *TemplateTextStyle) Italic() bool        { return t.Attrs.Get("italic") == "1" }

// Template is a reusable title definition extracted from an FCP-exported
// project. It is created by one extraction call, held for the session and
// replaced wholesale on reload; nothing mutates it partially.
type Template struct {
	EffectUID  string
	EffectName string
	Params     []TemplateParam
	TextStyle  *TemplateTextStyle

	// pretty-printed copy of the source title element, kept for provenance
	// and debugging only; generation never re-parses it
	RawTitleXML string
}

// generic element tree; attribute order is preserved as it appears in the
// source document
type xmlNode struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Text     string     `xml:",chardata"`
	Children []xmlNode  `xml:",any"`
}

// first attribute with the given local name, "" when absent
func (n *xmlNode) attr(name string) string {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// depth-first, document-order search for the first element with the given
// local name, including the node itself
func (n *xmlNode) find(name string) *xmlNode {
	if n.XMLName.Local == name {
		return n
	}
	for i := range n.Children {
		if found := n.Children[i].find(name); found != nil {
			return found
		}
	}
	return nil
}

// direct children with the given local name
func (n *xmlNode) childrenNamed(name string) []*xmlNode {
	var out []*xmlNode
	for i := range n.Children {
		if n.Children[i].XMLName.Local == name {
			out = append(out, &n.Children[i])
		}
	}
	return out
}

// ExtractTemplate loads an FCP-exported XML file and lifts out its title
// template. A missing file is reported before any parse attempt.
func ExtractTemplate(path string) (*Template, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("template file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template file: %w", err)
	}

	return ParseTemplate(data)
}

// ParseTemplate extracts a title template from FCP-exported XML text.
//
// The first effect under the resources section supplies the effect identity
// (missing uid/name attributes are tolerated as empty strings). The first
// title element in document order supplies the params and text style. Only
// the absence of those structural elements is an error.
func ParseTemplate(data []byte) (*Template, error) {
	var root xmlNode
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, &MalformedError{Detail: err.Error()}
	}

	resources := root.find("resources")
	var effect *xmlNode
	if resources != nil {
		effect = resources.find("effect")
	}
	if effect == nil {
		return nil, ErrEffectNotFound
	}

	title := root.find("title")
	if title == nil {
		return nil, ErrTitleNotFound
	}

	tmpl := &Template{
		EffectUID:   effect.attr("uid"),
		EffectName:  effect.attr("name"),
		RawTitleXML: renderNode(title, 0),
	}

	for _, param := range title.childrenNamed("param") {
		tmpl.Params = append(tmpl.Params, TemplateParam{
			Name:     param.attr("name"),
			Key:      param.attr("key"),
			Value:    param.attr("value"),
			RawAttrs: rawAttrString(param),
		})
	}

	if def := title.find("text-style-def"); def != nil {
		if ts := def.find("text-style"); ts != nil {
			style := &TemplateTextStyle{Attrs: NewAttributes()}
			for _, a := range ts.Attrs {
				style.Attrs.Set(a.Name.Local, a.Value)
			}
			tmpl.TextStyle = style
		}
	}

	return tmpl, nil
}

// serializes an element's attributes as key="value" pairs space-joined in
// their original document order
func rawAttrString(n *xmlNode) string {
	var sb strings.Builder
	for i, a := range n.Attrs {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(a.Name.Local)
		sb.WriteString(`="`)
		sb.WriteString(EscapeXML(a.Value))
		sb.WriteString(`"`)
	}
	return sb.String()
}

// pretty-prints an element subtree with four-space indentation
func renderNode(n *xmlNode, depth int) string {
	indent := strings.Repeat("    ", depth)

	var sb strings.Builder
	sb.WriteString(indent)
	sb.WriteString("<")
	sb.WriteString(n.XMLName.Local)
	if attrs := rawAttrString(n); attrs != "" {
		sb.WriteString(" ")
		sb.WriteString(attrs)
	}

	text := strings.TrimSpace(n.Text)
	if len(n.Children) == 0 && text == "" {
		sb.WriteString("/>")
		return sb.String()
	}

	sb.WriteString(">")
	if text != "" {
		sb.WriteString(EscapeXML(text))
	}
	for i := range n.Children {
		sb.WriteString("\n")
		sb.WriteString(renderNode(&n.Children[i], depth+1))
	}
	if len(n.Children) > 0 {
		sb.WriteString("\n")
		sb.WriteString(indent)
	}
	sb.WriteString("</")
	sb.WriteString(n.XMLName.Local)
	sb.WriteString(">")
	return sb.String()
}
