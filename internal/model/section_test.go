package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const sampleContent = `
- type: heading
  text: Default level
- type: heading
  level: 4
  text: Deeper
- type: paragraph
  text: Plain text.
- type: code
  code:
    language: python
    code: print("hi")
    explanation: prints
    output: hi
- type: callout
  callout:
    variant: best-practice
    text: Validate input.
- type: visual
  visual:
    type: table
    description: A table of things
    alt: things
- type: list
  items: [a, b]
- type: interactive
  text: not supported
- type: code
- type: callout
  text: payload in the wrong field
`

func decodeSample(t *testing.T) Content {
	t.Helper()
	var c Content
	require.NoError(t, yaml.Unmarshal([]byte(sampleContent), &c))
	return c
}

func TestContent_UnmarshalYAML(t *testing.T) {
	c := decodeSample(t)
	require.Len(t, c, 10)

	h, ok := c[0].(HeadingSection)
	require.True(t, ok)
	assert.Equal(t, 0, h.Level)
	assert.Equal(t, 2, h.EffectiveLevel())

	h, ok = c[1].(HeadingSection)
	require.True(t, ok)
	assert.Equal(t, 4, h.EffectiveLevel())

	assert.Equal(t, ParagraphSection{Text: "Plain text."}, c[2])

	code, ok := c[3].(CodeSection)
	require.True(t, ok)
	assert.Equal(t, "python", code.Code.Language)
	assert.True(t, code.Code.HasOutput())

	callout, ok := c[4].(CalloutSection)
	require.True(t, ok)
	assert.Equal(t, CalloutBestPractice, callout.Callout.Variant)

	visual, ok := c[5].(VisualSection)
	require.True(t, ok)
	assert.Equal(t, VisualTable, visual.Visual.Type)

	assert.Equal(t, ListSection{Items: []string{"a", "b"}}, c[6])

	for _, i := range []int{7, 8, 9} {
		inv, ok := c[i].(InvalidSection)
		require.Truef(t, ok, "section %d should be invalid, got %T", i, c[i])
		assert.NotEmpty(t, inv.Reason)
	}
	assert.Equal(t, SectionType("interactive"), c[7].Type())
}

func TestContent_UnmarshalYAMLRejectsNonSequence(t *testing.T) {
	var c Content
	err := yaml.Unmarshal([]byte("type: heading\ntext: nope\n"), &c)
	assert.Error(t, err)
}

func TestContent_UnknownSectionFieldIsInvalid(t *testing.T) {
	var fromYAML Content
	require.NoError(t, yaml.Unmarshal([]byte("- type: heading\n  text: Deep\n  levle: 4\n- type: paragraph\n  text: ok\n"), &fromYAML))
	require.Len(t, fromYAML, 2)
	inv, ok := fromYAML[0].(InvalidSection)
	require.True(t, ok)
	assert.Equal(t, "heading", inv.Kind)
	assert.Contains(t, inv.Reason, "levle")
	assert.Equal(t, ParagraphSection{Text: "ok"}, fromYAML[1])

	var fromJSON Content
	require.NoError(t, json.Unmarshal([]byte(`[{"type":"code","code":{"code":"x","langauge":"go"}}]`), &fromJSON))
	require.Len(t, fromJSON, 1)
	inv, ok = fromJSON[0].(InvalidSection)
	require.True(t, ok)
	assert.Equal(t, "code", inv.Kind)
	assert.Contains(t, inv.Reason, "langauge")
}

func TestContent_JSONWireFormat(t *testing.T) {
	c := decodeSample(t)

	data, err := json.Marshal(c)
	require.NoError(t, err)

	var wires []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &wires))
	require.Len(t, wires, len(c))

	assert.Equal(t, "heading", wires[0]["type"])
	assert.NotContains(t, wires[0], "level")
	assert.EqualValues(t, 4, wires[1]["level"])
	assert.Contains(t, wires[3], "code")
	assert.Contains(t, wires[4], "callout")
	assert.Contains(t, wires[5], "visual")
	assert.Contains(t, wires[6], "items")
	assert.Equal(t, map[string]interface{}{"type": "interactive"}, wires[7])

	var back Content
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, c[:7], back[:7])
}

func TestHeadingSection_EffectiveLevel(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{0, 2},
		{1, 2},
		{2, 2},
		{3, 3},
		{6, 6},
		{9, 6},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HeadingSection{Level: tt.level, Text: "x"}.EffectiveLevel(), "level %d", tt.level)
	}
}

func TestContent_Headings(t *testing.T) {
	c := decodeSample(t)
	headings := c.Headings()
	require.Len(t, headings, 2)
	assert.Equal(t, "Default level", headings[0].Text)
	assert.Equal(t, "Deeper", headings[1].Text)
}
