package formschema

import "fmt"

// invariant panics with a formatted message when cond is false. Schema
// definition mistakes surface while the tree is being built, never against
// untrusted runtime data.
func invariant(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
