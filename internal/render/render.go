package render

import (
	"skillerset/internal/model"
	"strconv"
	"strings"
)

// OutputToggles 以片段下标为键的输出展开状态
type OutputToggles map[int]bool

var headingSizes = map[int]string{
	2: "text-3xl",
	3: "text-2xl",
	4: "text-xl",
}

var callouts = map[model.CalloutVariant]struct {
	icon  string
	label string
}{
	model.CalloutTip:          {"💡", "Tip"},
	model.CalloutWarning:      {"⚠️", "Warning"},
	model.CalloutNote:         {"📝", "Note"},
	model.CalloutBestPractice: {"✅", "Best practice"},
	model.CalloutExample:      {"🔍", "Example"},
}

var visualIcons = map[model.VisualType]string{
	model.VisualDiagram:    "📊",
	model.VisualTable:      "📋",
	model.VisualFlowchart:  "🔀",
	model.VisualComparison: "⚖️",
}

const genericVisualIcon = "🖼️"

// Render 逐个片段生成节点，结果长度与输入相同，顺序不变；无效片段对应 nil
func Render(content model.Content, outputs OutputToggles) []Node {
	nodes := make([]Node, len(content))
	for i, s := range content {
		nodes[i] = renderSection(i, s, outputs[i])
	}
	return nodes
}

func renderSection(index int, s model.Section, showOutput bool) Node {
	switch v := s.(type) {
	case model.HeadingSection:
		return heading(v)
	case model.ParagraphSection:
		return ParagraphNode{NodeKind: model.SectionParagraph, Text: v.Text}
	case model.CodeSection:
		return code(index, v.Code, showOutput)
	case model.CalloutSection:
		return callout(v.Callout)
	case model.VisualSection:
		return visual(v.Visual)
	case model.ListSection:
		return ListNode{NodeKind: model.SectionList, Items: v.Items}
	case model.InvalidSection:
		return nil
	}
	return nil
}

func heading(h model.HeadingSection) HeadingNode {
	level := h.EffectiveLevel()
	return HeadingNode{
		NodeKind:  model.SectionHeading,
		Level:     level,
		Tag:       "h" + strconv.Itoa(level),
		SizeClass: HeadingSizeClass(level),
		Anchor:    Anchor(h.Text),
		Text:      h.Text,
	}
}

// HeadingSizeClass 级别越大字号越小，5 级及以下共用最小字号
func HeadingSizeClass(level int) string {
	if class, ok := headingSizes[level]; ok {
		return class
	}
	return "text-lg"
}

func code(index int, c model.CodeExample, showOutput bool) CodeNode {
	n := CodeNode{
		NodeKind:      model.SectionCode,
		Index:         index,
		Language:      c.Language,
		LanguageLabel: strings.ToUpper(c.Language),
		Code:          c.Code,
		Explanation:   c.Explanation,
		Editable:      c.Editable,
		Toggleable:    c.HasOutput(),
	}
	if n.Toggleable && showOutput {
		n.OutputVisible = true
		n.Output = c.Output
	}
	return n
}

func callout(c model.Callout) CalloutNode {
	n := CalloutNode{
		NodeKind:   model.SectionCallout,
		Variant:    c.Variant,
		StyleClass: "callout-" + string(c.Variant),
		Text:       c.Text,
	}
	if meta, ok := callouts[c.Variant]; ok {
		n.Icon, n.Label = meta.icon, meta.label
		return n
	}

	// 未知变体按 note 样式展示，保留原始标签
	note := callouts[model.CalloutNote]
	n.Icon = note.icon
	n.Label = Capitalize(strings.Replace(string(c.Variant), "-", " ", 1))
	n.StyleClass = "callout-" + string(model.CalloutNote)
	return n
}

func visual(v model.VisualAid) VisualNode {
	icon, ok := visualIcons[v.Type]
	if !ok {
		icon = genericVisualIcon
	}
	return VisualNode{
		NodeKind:    model.SectionVisual,
		Type:        v.Type,
		Icon:        icon,
		Label:       Capitalize(string(v.Type)),
		Description: v.Description,
		Alt:         v.Alt,
	}
}

// Capitalize 首字母大写
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
