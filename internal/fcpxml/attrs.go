package fcpxml

import (
	"fmt"
	"sort"
	"strings"
)

// Attributes is an ordered key -> value mapping used for the text-style
// attribute bags lifted from templates. Insertion order is preserved for
// inspection; serialization always sorts by key so generated documents are
// deterministic regardless of how the map was built.
type Attributes struct {
	keys   []string
	values map[string]string
}

func NewAttributes() *Attributes {
	return &Attributes{values: map[string]string{}}
}

// sets or replaces a key
func (a *Attributes) Set(key, value string) {
	if a.values == nil {
		a.values = map[string]string{}
	}
	if _, ok := a.values[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.values[key] = value
}

func (a *Attributes) Get(key string) string {
	if a == nil || a.values == nil {
		return ""
	}
	return a.values[key]
}

func (a *Attributes) Has(key string) bool {
	if a == nil || a.values == nil {
		return false
	}
	_, ok := a.values[key]
	return ok
}

func (a *Attributes) Len() int {
	if a == nil {
		return 0
	}
	return len(a.keys)
}

// keys in insertion order
func (a *Attributes) Keys() []string {
	if a == nil {
		return nil
	}
	out := make([]string, len(a.keys))
	copy(out, a.keys)
	return out
}

// independent copy
func (a *Attributes) Clone() *Attributes {
	clone := NewAttributes()
	if a == nil {
		return clone
	}
	for _, k := range a.keys {
		clone.Set(k, a.values[k])
	}
	return clone
}

// String renders the bag as XML attributes, sorted by key, values escaped.
func (a *Attributes) String() string {
	if a == nil || len(a.keys) == 0 {
		return ""
	}
	keys := make([]string, len(a.keys))
	copy(keys, a.keys)
	sort.Strings(keys)

	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(fmt.Sprintf(`%s="%s"`, k, EscapeXML(a.values[k])))
	}
	return sb.String()
}
