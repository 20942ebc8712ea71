package render

import (
	"skillerset/internal/model"
	"strings"

	"github.com/samber/lo"
)

type TOCEntry struct {
	Text   string `json:"text"`
	Anchor string `json:"anchor"`
	Level  int    `json:"level"`
	Indent int    `json:"indent"`
}

// TableOfContents 独立遍历正文中的标题片段，与 Render 互不依赖
func TableOfContents(content model.Content) []TOCEntry {
	return lo.Map(content.Headings(), func(h model.HeadingSection, _ int) TOCEntry {
		level := h.EffectiveLevel()
		return TOCEntry{
			Text:   h.Text,
			Anchor: Anchor(h.Text),
			Level:  level,
			Indent: level - model.MinHeadingLevel,
		}
	})
}

// Anchor 小写化并将连续空白替换为 "-"
func Anchor(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), "-")
}

// TopicLabel "python-control-flow" -> "Python Control Flow"
func TopicLabel(id string) string {
	words := strings.Split(id, "-")
	return strings.Join(lo.Map(words, func(w string, _ int) string { return Capitalize(w) }), " ")
}
