package formschema

import (
	"strings"

	"github.com/miguelsm/formschema/i18n"
)

// Resolve walks the schema tree along path and returns the node describing
// that position in a document. Mapping steps must name a registered child;
// list steps accept any index. An empty path returns the root.
func Resolve(root Node, path ...string) (Node, error) {
	cur := root
	for i, key := range path {
		c, ok := cur.(Composite)
		if !ok {
			return nil, Issues{{
				Path:    renderPath(path[:i]),
				Code:    CodeNotTraversable,
				Message: i18n.T(CodeNotTraversable, nil),
				Hint:    "cannot descend through a scalar leaf",
				Params:  map[string]any{"key": key},
			}}
		}
		child, ok := c.Get(key)
		if !ok {
			return nil, Issues{{
				Path:    renderPath(path[:i+1]),
				Code:    CodeUnknownKey,
				Message: i18n.T(CodeUnknownKey, nil),
			}}
		}
		cur = child
	}
	return cur, nil
}

// renderPath renders steps as a slash-separated pointer, "/" for the root.
func renderPath(steps []string) string {
	if len(steps) == 0 {
		return "/"
	}
	return "/" + strings.Join(steps, "/")
}
