package render

import (
	"encoding/json"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/diesi/aienum/internal/enumdesc"
	"github.com/diesi/aienum/internal/errors"
)

func colors() enumdesc.Enum {
	return enumdesc.Enum{
		Label: "颜色",
		Name:  "Color",
		Entries: []enumdesc.Entry{
			{Label: "红色", Value: enumdesc.IntValue(1), Identifier: "Red"},
			{Label: "绿色", Value: enumdesc.IntValue(2), Identifier: "Green"},
		},
	}
}

func TestTypeScript(t *testing.T) {
	want := "/** 颜色 */\n" +
		"export enum Color {\n" +
		"  /** 红色 */\n" +
		"  Red = 1,\n" +
		"  /** 绿色 */\n" +
		"  Green = 2\n" +
		"}\n"
	assert.Equal(t, want, TypeScript(colors()))
}

func TestTypeScriptQuotesStringValues(t *testing.T) {
	e := enumdesc.Enum{Label: "开关", Name: "Switch", Entries: []enumdesc.Entry{
		{Label: "开", Value: enumdesc.StringValue("on"), Identifier: "On"},
		{Label: "关", Value: enumdesc.IntValue(0), Identifier: "Off"},
	}}
	out := TypeScript(e)
	assert.Contains(t, out, `On = "on",`)
	assert.Contains(t, out, "Off = 0\n")
}

func TestTypeScriptSanitizesComments(t *testing.T) {
	e := enumdesc.Enum{Label: "bad */ label\nsecond line", Name: "X"}
	assert.Equal(t, "/** bad * / label second line */\nexport enum X {\n}\n", TypeScript(e))
}

func TestGoParses(t *testing.T) {
	out, err := Go(colors())
	require.NoError(t, err)
	assert.Contains(t, out, "// Color 颜色\ntype Color int\n")
	assert.Contains(t, out, "// ColorRed 红色")
	assert.Contains(t, out, "// ColorGreen 绿色")

	_, err = parser.ParseFile(token.NewFileSet(), "enum.go", "package gen\n\n"+out, parser.ParseComments)
	require.NoError(t, err)
}

func TestGoStringUnderlyingType(t *testing.T) {
	e := enumdesc.Enum{Label: "开关", Name: "Switch", Entries: []enumdesc.Entry{
		{Label: "开", Value: enumdesc.StringValue("on"), Identifier: "On"},
		{Label: "关", Value: enumdesc.IntValue(0), Identifier: "Off"},
	}}
	out, err := Go(e)
	require.NoError(t, err)
	assert.Contains(t, out, "type Switch string")
	assert.Contains(t, out, `"on"`)
	assert.Contains(t, out, `"0"`)
}

func TestGoRejectsInvalidIdentifiers(t *testing.T) {
	e := colors()
	e.Entries[0].Identifier = "Light Red"
	_, err := Go(e)
	assert.Error(t, err)
}

func TestRenderJSONAndYAML(t *testing.T) {
	out, err := Render(FormatJSON, colors())
	require.NoError(t, err)
	var back enumdesc.Enum
	require.NoError(t, json.Unmarshal([]byte(out), &back))
	assert.Equal(t, colors(), back)

	out, err = Render(FormatYAML, colors())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "label: 颜色\nname: Color\n"), out)
	back = enumdesc.Enum{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &back))
	assert.Equal(t, colors(), back)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"": FormatTypeScript, "TypeScript": FormatTypeScript, "golang": FormatGo, "yml": FormatYAML, "json": FormatJSON,
	} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFormat("rust")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnknownFormat))
	assert.Contains(t, errors.FlattenHints(err), "ts, go, json, yaml")

	_, err = Render(Format("rust"), colors())
	assert.True(t, errors.Is(err, errors.ErrUnknownFormat))
}
