package render

import (
	"bytes"
	"go/format"

	"github.com/diesi/aienum/internal/enumdesc"
	"github.com/diesi/aienum/internal/errors"
)

// Go renders a named type plus a const block. Members are prefixed with the
// type name; the underlying type is string if any value is a string token.
func Go(e enumdesc.Enum) (string, error) {
	underlying := "int"
	for _, entry := range e.Entries {
		if entry.Value.IsString() {
			underlying = "string"
			break
		}
	}

	var b bytes.Buffer
	b.WriteString("// " + e.Name + " " + commentText(e.Label) + "\n")
	b.WriteString("type " + e.Name + " " + underlying + "\n\n")
	b.WriteString("const (\n")
	for _, entry := range e.Entries {
		lit := entry.Value.Literal()
		if underlying == "string" && !entry.Value.IsString() {
			lit = `"` + entry.Value.String() + `"`
		}
		b.WriteString("\t// " + e.Name + entry.Identifier + " " + commentText(entry.Label) + "\n")
		b.WriteString("\t" + e.Name + entry.Identifier + " " + e.Name + " = " + lit + "\n")
	}
	b.WriteString(")\n")

	out, err := format.Source(b.Bytes())
	if err != nil {
		return "", errors.WithDetail(errors.Wrap(err, "format generated go"), b.String())
	}
	return string(out), nil
}
