package emit

import (
	"github.com/ohler55/ojg/oj"
	"github.com/tidwall/gjson"

	"github.com/mainul35/dynamic-site-builder-sub000/internal/core"
)

// ContextStack resolves template paths against the page data context and
// any list item scopes pushed during emission. Lookups search innermost
// scope first.
type ContextStack struct {
	docs []string
}

func NewContextStack(page *core.PageDefinition) *ContextStack {
	stack := &ContextStack{}
	if page != nil && len(page.DataContext) > 0 {
		ctx := make(map[string]any, len(page.DataContext))
		for k, v := range page.DataContext {
			ctx[k] = v.ToAny()
		}
		stack.docs = append(stack.docs, oj.JSON(ctx))
	}
	return stack
}

// PushItem scopes a list item under the conventional "item" name.
func (s *ContextStack) PushItem(item core.Value) {
	s.docs = append(s.docs, oj.JSON(map[string]any{"item": item.ToAny()}))
}

func (s *ContextStack) Pop() {
	if len(s.docs) > 0 {
		s.docs = s.docs[:len(s.docs)-1]
	}
}

// Lookup resolves a dot path, innermost scope first.
func (s *ContextStack) Lookup(path string) (string, bool) {
	for i := len(s.docs) - 1; i >= 0; i-- {
		result := gjson.Get(s.docs[i], path)
		if result.Exists() {
			return result.String(), true
		}
	}
	return "", false
}
