package render

import (
	"bytes"
	"encoding/json"
	"skillerset/internal/content"
	"skillerset/internal/model"
	"skillerset/internal/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() model.Content {
	return model.Content{
		model.HeadingSection{Text: "What is Python?"},
		model.ParagraphSection{Text: "Python is a language."},
		model.CodeSection{Code: model.CodeExample{Code: "print('hi')", Language: "python", Output: "hi"}},
		model.CodeSection{Code: model.CodeExample{Code: "x = 1", Language: "python"}},
		model.InvalidSection{Kind: "interactive"},
		model.CalloutSection{Callout: model.Callout{Variant: model.CalloutBestPractice, Text: "Use 4 spaces"}},
		model.VisualSection{Visual: model.VisualAid{Type: model.VisualTable, Description: "Types", Alt: "table"}},
		model.ListSection{Items: []string{"a", "b"}},
		model.HeadingSection{Level: 4, Text: "Sub  Topic"},
	}
}

func TestRender_LengthAndOrder(t *testing.T) {
	nodes := Render(sample(), nil)
	require.Len(t, nodes, 9)

	assert.IsType(t, HeadingNode{}, nodes[0])
	assert.IsType(t, ParagraphNode{}, nodes[1])
	assert.IsType(t, CodeNode{}, nodes[2])
	assert.IsType(t, CodeNode{}, nodes[3])
	assert.Nil(t, nodes[4])
	assert.IsType(t, CalloutNode{}, nodes[5])
	assert.IsType(t, VisualNode{}, nodes[6])
	assert.IsType(t, ListNode{}, nodes[7])
	assert.IsType(t, HeadingNode{}, nodes[8])
}

func TestRender_EmbeddedTutorials(t *testing.T) {
	tutorials := repository.NewTutorialRepository()
	_, err := content.Load(content.Embedded(), tutorials, repository.NewPracticeProblemRepository())
	require.NoError(t, err)

	for _, tu := range tutorials.FindAll() {
		nodes := Render(tu.Content, nil)
		require.Len(t, nodes, len(tu.Content), tu.ID)
		for i, s := range tu.Content {
			require.NotNil(t, nodes[i], "%s[%d]", tu.ID, i)
			assert.Equal(t, s.Type(), nodes[i].Kind(), "%s[%d]", tu.ID, i)
		}
	}
}

func TestRender_Heading(t *testing.T) {
	tests := []struct {
		name  string
		level int
		tag   string
		size  string
	}{
		{"absent defaults to 2", 0, "h2", "text-3xl"},
		{"level 3", 3, "h3", "text-2xl"},
		{"level 4", 4, "h4", "text-xl"},
		{"level 6", 6, "h6", "text-lg"},
		{"above range", 9, "h6", "text-lg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := Render(model.Content{model.HeadingSection{Level: tt.level, Text: "Hello World"}}, nil)[0].(HeadingNode)
			assert.Equal(t, tt.tag, n.Tag)
			assert.Equal(t, tt.size, n.SizeClass)
			assert.Equal(t, "hello-world", n.Anchor)
		})
	}
}

func TestRender_OutputToggle(t *testing.T) {
	nodes := Render(sample(), OutputToggles{2: true, 3: true})

	withOutput := nodes[2].(CodeNode)
	assert.True(t, withOutput.Toggleable)
	assert.True(t, withOutput.OutputVisible)
	assert.Equal(t, "hi", withOutput.Output)
	assert.Equal(t, "PYTHON", withOutput.LanguageLabel)

	withoutOutput := nodes[3].(CodeNode)
	assert.False(t, withoutOutput.Toggleable)
	assert.False(t, withoutOutput.OutputVisible, "toggle on a code section without output reveals nothing")
	assert.Empty(t, withoutOutput.Output)

	hidden := Render(sample(), nil)[2].(CodeNode)
	assert.True(t, hidden.Toggleable)
	assert.False(t, hidden.OutputVisible)
	assert.Empty(t, hidden.Output)
}

func TestRender_Callout(t *testing.T) {
	c := Render(sample(), nil)[5].(CalloutNode)
	assert.Equal(t, "Best practice", c.Label)
	assert.Equal(t, "✅", c.Icon)
	assert.Equal(t, "callout-best-practice", c.StyleClass)

	unknown := Render(model.Content{model.CalloutSection{Callout: model.Callout{Variant: "fun-fact", Text: "x"}}}, nil)[0].(CalloutNode)
	assert.Equal(t, "Fun fact", unknown.Label)
	assert.Equal(t, "callout-note", unknown.StyleClass)
}

func TestRender_Visual(t *testing.T) {
	v := Render(sample(), nil)[6].(VisualNode)
	assert.Equal(t, "Table", v.Label)
	assert.Equal(t, "📋", v.Icon)

	unknown := Render(model.Content{model.VisualSection{Visual: model.VisualAid{Type: "chart", Description: "d"}}}, nil)[0].(VisualNode)
	assert.Equal(t, "Chart", unknown.Label)
	assert.Equal(t, genericVisualIcon, unknown.Icon)
}

func TestRender_JSON(t *testing.T) {
	data, err := json.Marshal(Render(sample()[3:5], nil))
	require.NoError(t, err)
	assert.JSONEq(t, `[{"kind":"code","index":0,"language":"python","languageLabel":"PYTHON","code":"x = 1","toggleable":false,"outputVisible":false},null]`, string(data))
}

func TestTableOfContents(t *testing.T) {
	toc := TableOfContents(sample())
	assert.Equal(t, []TOCEntry{
		{Text: "What is Python?", Anchor: "what-is-python?", Level: 2, Indent: 0},
		{Text: "Sub  Topic", Anchor: "sub-topic", Level: 4, Indent: 2},
	}, toc)

	assert.Empty(t, TableOfContents(nil))
}

func TestTopicLabel(t *testing.T) {
	assert.Equal(t, "Python Control Flow", TopicLabel("python-control-flow"))
	assert.Equal(t, "Css", TopicLabel("css"))
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, Render(sample(), OutputToggles{2: true})))

	out := buf.String()
	assert.Contains(t, out, "## What is Python?")
	assert.Contains(t, out, "Output:\nhi")
	assert.Contains(t, out, "<section 4 skipped>")
	assert.Contains(t, out, "✅ Best practice: Use 4 spaces")
	assert.Contains(t, out, "#### Sub  Topic")
}
