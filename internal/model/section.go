package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

type SectionType string

const (
	SectionHeading   SectionType = "heading"
	SectionParagraph SectionType = "paragraph"
	SectionCode      SectionType = "code"
	SectionCallout   SectionType = "callout"
	SectionVisual    SectionType = "visual"
	SectionList      SectionType = "list"
)

const (
	MinHeadingLevel     = 2
	MaxHeadingLevel     = 6
	DefaultHeadingLevel = MinHeadingLevel
)

// Section 教程正文中的一个片段，实现类型是封闭集合（未导出方法 section 限制外部实现）
type Section interface {
	Type() SectionType
	section()
}

type HeadingSection struct {
	// 0 表示未指定
	Level int
	Text  string
}

// EffectiveLevel 未指定时为 2，超出 [2,6] 时截断
func (s HeadingSection) EffectiveLevel() int {
	switch {
	case s.Level == 0:
		return DefaultHeadingLevel
	case s.Level < MinHeadingLevel:
		return MinHeadingLevel
	case s.Level > MaxHeadingLevel:
		return MaxHeadingLevel
	}
	return s.Level
}

type ParagraphSection struct {
	Text string
}

type CodeSection struct {
	Code CodeExample
}

type CalloutSection struct {
	Callout Callout
}

type VisualSection struct {
	Visual VisualAid
}

type ListSection struct {
	Items []string
}

// InvalidSection 未知类型或缺少必需负载的片段，保留位置但渲染为空
type InvalidSection struct {
	Kind   string
	Reason string
}

func (HeadingSection) Type() SectionType   { return SectionHeading }
func (ParagraphSection) Type() SectionType { return SectionParagraph }
func (CodeSection) Type() SectionType      { return SectionCode }
func (CalloutSection) Type() SectionType   { return SectionCallout }
func (VisualSection) Type() SectionType    { return SectionVisual }
func (ListSection) Type() SectionType      { return SectionList }
func (s InvalidSection) Type() SectionType { return SectionType(s.Kind) }

func (HeadingSection) section()   {}
func (ParagraphSection) section() {}
func (CodeSection) section()      {}
func (CalloutSection) section()   {}
func (VisualSection) section()    {}
func (ListSection) section()      {}
func (InvalidSection) section()   {}

// sectionWire 内容作者使用的数据格式
type sectionWire struct {
	Type    string       `json:"type" yaml:"type"`
	Level   int          `json:"level,omitempty" yaml:"level,omitempty"`
	Text    string       `json:"text,omitempty" yaml:"text,omitempty"`
	Code    *CodeExample `json:"code,omitempty" yaml:"code,omitempty"`
	Callout *Callout     `json:"callout,omitempty" yaml:"callout,omitempty"`
	Visual  *VisualAid   `json:"visual,omitempty" yaml:"visual,omitempty"`
	Items   []string     `json:"items,omitempty" yaml:"items,omitempty"`
}

func invalid(kind, reason string) Section {
	return InvalidSection{Kind: kind, Reason: reason}
}

func (w sectionWire) section() Section {
	switch SectionType(w.Type) {
	case SectionHeading:
		if w.Text == "" {
			return invalid(w.Type, "heading without text")
		}
		return HeadingSection{Level: w.Level, Text: w.Text}
	case SectionParagraph:
		if w.Text == "" {
			return invalid(w.Type, "paragraph without text")
		}
		return ParagraphSection{Text: w.Text}
	case SectionCode:
		if w.Code == nil || w.Code.Code == "" {
			return invalid(w.Type, "code section without code payload")
		}
		return CodeSection{Code: *w.Code}
	case SectionCallout:
		if w.Callout == nil || w.Callout.Text == "" {
			return invalid(w.Type, "callout section without callout payload")
		}
		return CalloutSection{Callout: *w.Callout}
	case SectionVisual:
		if w.Visual == nil || w.Visual.Description == "" {
			return invalid(w.Type, "visual section without visual payload")
		}
		return VisualSection{Visual: *w.Visual}
	case SectionList:
		if len(w.Items) == 0 {
			return invalid(w.Type, "list section without items")
		}
		return ListSection{Items: w.Items}
	}
	return invalid(w.Type, fmt.Sprintf("unknown section type %q", w.Type))
}

func wireOf(s Section) sectionWire {
	switch v := s.(type) {
	case HeadingSection:
		return sectionWire{Type: string(SectionHeading), Level: v.Level, Text: v.Text}
	case ParagraphSection:
		return sectionWire{Type: string(SectionParagraph), Text: v.Text}
	case CodeSection:
		code := v.Code
		return sectionWire{Type: string(SectionCode), Code: &code}
	case CalloutSection:
		callout := v.Callout
		return sectionWire{Type: string(SectionCallout), Callout: &callout}
	case VisualSection:
		visual := v.Visual
		return sectionWire{Type: string(SectionVisual), Visual: &visual}
	case ListSection:
		return sectionWire{Type: string(SectionList), Items: v.Items}
	case InvalidSection:
		return sectionWire{Type: v.Kind}
	}
	return sectionWire{}
}

// Content 有序的正文片段列表。解码时不会因单个片段出错而失败
type Content []Section

func (c *Content) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("content: expected a sequence, got yaml kind %d at line %d", value.Kind, value.Line)
	}

	out := make(Content, 0, len(value.Content))
	for _, item := range value.Content {
		w, err := decodeSectionYAML(item)
		if err != nil {
			out = append(out, invalid(w.Type, err.Error()))
			continue
		}
		out = append(out, w.section())
	}
	*c = out
	return nil
}

// decodeSectionYAML 片段内未知字段（通常是拼写错误）使该片段无效
// Node.Decode 不继承外层 decoder 的 KnownFields，所以重新编码后严格解码
func decodeSectionYAML(node *yaml.Node) (sectionWire, error) {
	var w sectionWire
	if err := node.Decode(&w); err != nil {
		return w, err
	}

	data, err := yaml.Marshal(node)
	if err != nil {
		return w, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var strict sectionWire
	if err := dec.Decode(&strict); err != nil {
		return w, fmt.Errorf("line %d: %w", node.Line, err)
	}
	return strict, nil
}

func (c Content) MarshalYAML() (interface{}, error) {
	wires := make([]sectionWire, len(c))
	for i, s := range c {
		wires[i] = wireOf(s)
	}
	return wires, nil
}

func (c *Content) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("content: %w", err)
	}

	out := make(Content, 0, len(raw))
	for _, item := range raw {
		w, err := decodeSectionJSON(item)
		if err != nil {
			out = append(out, invalid(w.Type, err.Error()))
			continue
		}
		out = append(out, w.section())
	}
	*c = out
	return nil
}

func decodeSectionJSON(data []byte) (sectionWire, error) {
	var w sectionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return w, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var strict sectionWire
	if err := dec.Decode(&strict); err != nil {
		return w, err
	}
	return strict, nil
}

func (c Content) MarshalJSON() ([]byte, error) {
	wires := make([]sectionWire, len(c))
	for i, s := range c {
		wires[i] = wireOf(s)
	}
	return json.Marshal(wires)
}

// Headings 按顺序返回有效的标题片段
func (c Content) Headings() []HeadingSection {
	var out []HeadingSection
	for _, s := range c {
		if h, ok := s.(HeadingSection); ok {
			out = append(out, h)
		}
	}
	return out
}
