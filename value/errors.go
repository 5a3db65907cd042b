package value

import (
	"fmt"
	"strings"
)

// NotRepresentableError reports a value that has no representation in the
// requested form. Conversions raise it by panic when the failure is a
// contract violation (a declared default that cannot convert, a host value
// with no literal form); expected failures report ok=false instead.
type NotRepresentableError struct {
	Path    []string
	Value   any
	Type    string
	Message string
}

func (e *NotRepresentableError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "not representable"
	}
	var b strings.Builder
	b.WriteString("value: ")
	if len(e.Path) > 0 {
		fmt.Fprintf(&b, "at %s: ", strings.Join(e.Path, "."))
	}
	fmt.Fprintf(&b, "%s: %v", msg, e.Value)
	if e.Type != "" {
		fmt.Fprintf(&b, " (type %s)", e.Type)
	}
	return b.String()
}
