package render

import "skillerset/internal/model"

// Node 渲染结果。实现类型与 model.Section 的有效变体一一对应
type Node interface {
	Kind() model.SectionType
	node()
}

type HeadingNode struct {
	NodeKind  model.SectionType `json:"kind"`
	Level     int               `json:"level"`
	Tag       string            `json:"tag"`
	SizeClass string            `json:"sizeClass"`
	Anchor    string            `json:"anchor"`
	Text      string            `json:"text"`
}

type ParagraphNode struct {
	NodeKind model.SectionType `json:"kind"`
	Text     string            `json:"text"`
}

type CodeNode struct {
	NodeKind      model.SectionType `json:"kind"`
	Index         int               `json:"index"`
	Language      string            `json:"language"`
	LanguageLabel string            `json:"languageLabel"`
	Code          string            `json:"code"`
	Explanation   string            `json:"explanation,omitempty"`
	Editable      bool              `json:"editable,omitempty"`
	// Toggleable 为 false 时不提供输出切换
	Toggleable    bool   `json:"toggleable"`
	OutputVisible bool   `json:"outputVisible"`
	Output        string `json:"output,omitempty"`
}

type CalloutNode struct {
	NodeKind   model.SectionType    `json:"kind"`
	Variant    model.CalloutVariant `json:"variant"`
	Icon       string               `json:"icon"`
	Label      string               `json:"label"`
	StyleClass string               `json:"styleClass"`
	Text       string               `json:"text"`
}

type VisualNode struct {
	NodeKind    model.SectionType `json:"kind"`
	Type        model.VisualType  `json:"type"`
	Icon        string            `json:"icon"`
	Label       string            `json:"label"`
	Description string            `json:"description"`
	Alt         string            `json:"alt"`
}

type ListNode struct {
	NodeKind model.SectionType `json:"kind"`
	Items    []string          `json:"items"`
}

func (n HeadingNode) Kind() model.SectionType   { return n.NodeKind }
func (n ParagraphNode) Kind() model.SectionType { return n.NodeKind }
func (n CodeNode) Kind() model.SectionType      { return n.NodeKind }
func (n CalloutNode) Kind() model.SectionType   { return n.NodeKind }
func (n VisualNode) Kind() model.SectionType    { return n.NodeKind }
func (n ListNode) Kind() model.SectionType      { return n.NodeKind }

func (HeadingNode) node()   {}
func (ParagraphNode) node() {}
func (CodeNode) node()      {}
func (CalloutNode) node()   {}
func (VisualNode) node()    {}
func (ListNode) node()      {}
