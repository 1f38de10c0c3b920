package render

import (
	"strings"

	"github.com/diesi/aienum/internal/enumdesc"
)

// TypeScript renders an exported TS enum. The enum and every member carry a
// JSDoc comment with their label; string values are quoted, numbers bare.
func TypeScript(e enumdesc.Enum) string {
	members := make([]string, 0, len(e.Entries))
	for _, entry := range e.Entries {
		members = append(members,
			"  /** "+commentText(entry.Label)+" */\n  "+entry.Identifier+" = "+entry.Value.Literal())
	}

	var b strings.Builder
	b.WriteString("/** " + commentText(e.Label) + " */\n")
	b.WriteString("export enum " + e.Name + " {\n")
	if len(members) > 0 {
		b.WriteString(strings.Join(members, ",\n"))
		b.WriteString("\n")
	}
	b.WriteString("}\n")
	return b.String()
}
