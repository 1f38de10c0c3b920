// Package render turns an enumdesc.Enum into source text.
package render

import (
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/diesi/aienum/internal/enumdesc"
	"github.com/diesi/aienum/internal/errors"
)

// Format names an output flavor.
type Format string

const (
	FormatTypeScript Format = "ts"
	FormatGo         Format = "go"
	FormatJSON       Format = "json"
	FormatYAML       Format = "yaml"
)

// Formats lists every supported format in help order.
var Formats = []Format{FormatTypeScript, FormatGo, FormatJSON, FormatYAML}

// ParseFormat accepts a format name or a common alias (typescript, golang, yml).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ts", "typescript", "":
		return FormatTypeScript, nil
	case "go", "golang":
		return FormatGo, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return "", errors.WithHintf(
		errors.Wrapf(errors.ErrUnknownFormat, "format %q", s),
		"use one of: %s", strings.Join(names, ", "))
}

// Render writes e in the requested format.
func Render(format Format, e enumdesc.Enum) (string, error) {
	switch format {
	case FormatTypeScript:
		return TypeScript(e), nil
	case FormatGo:
		return Go(e)
	case FormatJSON:
		b, err := json.MarshalIndent(e, "", "  ")
		if err != nil {
			return "", errors.Wrap(err, "encode json")
		}
		return string(b) + "\n", nil
	case FormatYAML:
		b, err := yaml.Marshal(e)
		if err != nil {
			return "", errors.Wrap(err, "encode yaml")
		}
		return string(b), nil
	default:
		return "", errors.Wrapf(errors.ErrUnknownFormat, "format %q", format)
	}
}

// commentText keeps a label from closing or breaking the comment it sits in.
func commentText(s string) string {
	s = strings.ReplaceAll(s, "*/", "* /")
	return strings.Join(strings.Fields(s), " ")
}
