package enumdesc

import (
	"encoding/json"
	"strconv"

	"github.com/diesi/aienum/internal/errors"
	"gopkg.in/yaml.v3"
)

// Value is an enum member value: an integer or a literal string token.
type Value struct {
	num    int
	str    string
	isText bool
}

// IntValue returns a numeric value.
func IntValue(n int) Value { return Value{num: n} }

// StringValue returns a string value; renderers quote it.
func StringValue(s string) Value { return Value{str: s, isText: true} }

// IsString reports whether v carries a string token.
func (v Value) IsString() bool { return v.isText }

// String returns the raw token without quoting.
func (v Value) String() string {
	if v.isText {
		return v.str
	}
	return strconv.Itoa(v.num)
}

// Literal returns the value as source text: quoted for strings, bare for numbers.
func (v Value) Literal() string {
	if v.isText {
		return strconv.Quote(v.str)
	}
	return strconv.Itoa(v.num)
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.isText {
		return json.Marshal(v.str)
	}
	return json.Marshal(v.num)
}

func (v *Value) UnmarshalJSON(b []byte) error {
	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		*v = IntValue(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return errors.Newf("enum value must be a number or a string, got %s", string(b))
	}
	*v = StringValue(s)
	return nil
}

func (v Value) MarshalYAML() (interface{}, error) {
	if v.isText {
		return v.str, nil
	}
	return v.num, nil
}

func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return errors.Newf("enum value must be a scalar (line %d)", node.Line)
	}
	if node.ShortTag() == "!!int" {
		var n int
		if err := node.Decode(&n); err != nil {
			return errors.Wrapf(err, "enum value on line %d", node.Line)
		}
		*v = IntValue(n)
		return nil
	}
	*v = StringValue(node.Value)
	return nil
}

// Entry is one parsed enum member.
type Entry struct {
	// Label is the sanitized natural-language text of the item.
	Label string `json:"label" yaml:"label"`
	// Value is the marker found in the description.
	Value Value `json:"value" yaml:"value"`
	// Identifier is the resolved programmatic name.
	Identifier string `json:"identifier" yaml:"identifier"`
}

// Enum is a complete enumeration ready for rendering.
type Enum struct {
	// Label describes the whole enum, usually the full description text.
	Label   string  `json:"label" yaml:"label"`
	Name    string  `json:"name" yaml:"name"`
	Entries []Entry `json:"entries" yaml:"entries"`
}
