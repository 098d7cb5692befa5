package style

import "strings"

// StyleMap is an insertion-ordered CSS property map. Re-resolving the
// same input always replays the same insertions, so serialization is
// byte-identical across runs.
type StyleMap struct {
	keys   []string
	values map[string]string
}

func NewStyleMap() *StyleMap {
	return &StyleMap{values: make(map[string]string)}
}

// Set adds or replaces a property. Replacement keeps the original
// position so overrides never reorder the output.
func (m *StyleMap) Set(property, value string) {
	if _, exists := m.values[property]; !exists {
		m.keys = append(m.keys, property)
	}
	m.values[property] = value
}

func (m *StyleMap) Get(property string) (string, bool) {
	v, ok := m.values[property]
	return v, ok
}

func (m *StyleMap) Has(property string) bool {
	_, ok := m.values[property]
	return ok
}

func (m *StyleMap) Delete(property string) {
	if _, ok := m.values[property]; !ok {
		return
	}
	delete(m.values, property)
	for i, k := range m.keys {
		if k == property {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

func (m *StyleMap) Len() int { return len(m.keys) }

func (m *StyleMap) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Inline serializes the map as an inline style attribute value.
func (m *StyleMap) Inline() string {
	var b strings.Builder
	for i, k := range m.keys {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(m.values[k])
	}
	return b.String()
}
