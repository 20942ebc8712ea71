package model

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

type Difficulty string

const (
	Beginner     Difficulty = "Beginner"
	Intermediate Difficulty = "Intermediate"
	Advanced     Difficulty = "Advanced"
)

func (d Difficulty) Valid() bool {
	switch d {
	case Beginner, Intermediate, Advanced:
		return true
	}
	return false
}

type CodeExample struct {
	Code        string `json:"code" yaml:"code"`
	Language    string `json:"language" yaml:"language"`
	Explanation string `json:"explanation" yaml:"explanation"`
	Output      string `json:"output,omitempty" yaml:"output,omitempty"`
	Editable    bool   `json:"editable,omitempty" yaml:"editable,omitempty"`
}

func (c CodeExample) HasOutput() bool {
	return c.Output != ""
}

type CalloutVariant string

const (
	CalloutTip          CalloutVariant = "tip"
	CalloutWarning      CalloutVariant = "warning"
	CalloutNote         CalloutVariant = "note"
	CalloutBestPractice CalloutVariant = "best-practice"
	CalloutExample      CalloutVariant = "example"
)

type Callout struct {
	Variant CalloutVariant `json:"variant" yaml:"variant"`
	Text    string         `json:"text" yaml:"text"`
}

type VisualType string

const (
	VisualDiagram    VisualType = "diagram"
	VisualTable      VisualType = "table"
	VisualFlowchart  VisualType = "flowchart"
	VisualComparison VisualType = "comparison"
)

// VisualAid 只作为文字占位说明展示，不生成图片
type VisualAid struct {
	Type        VisualType `json:"type" yaml:"type"`
	Description string     `json:"description" yaml:"description"`
	Alt         string     `json:"alt" yaml:"alt"`
}

type Introduction struct {
	WhatYouLearn          []string `json:"whatYouLearn" yaml:"whatYouLearn"`
	WhyImportant          string   `json:"whyImportant" yaml:"whyImportant"`
	RealWorldApplications []string `json:"realWorldApplications" yaml:"realWorldApplications"`
	LearningObjectives    []string `json:"learningObjectives" yaml:"learningObjectives"`
}

type Example struct {
	Title       string `json:"title" yaml:"title"`
	Code        string `json:"code" yaml:"code"`
	Language    string `json:"language" yaml:"language"`
	Explanation string `json:"explanation" yaml:"explanation"`
	Output      string `json:"output,omitempty" yaml:"output,omitempty"`
}

// QuizQuestion Correct 是 Options 的 0 基下标
type QuizQuestion struct {
	Question    string   `json:"question" yaml:"question"`
	Options     []string `json:"options" yaml:"options"`
	Correct     int      `json:"correct" yaml:"correct"`
	Explanation string   `json:"explanation" yaml:"explanation"`
}

type Exercise struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Hints       []string `json:"hints" yaml:"hints"`
	Solution    string   `json:"solution,omitempty" yaml:"solution,omitempty"`
}

func (e Exercise) HasSolution() bool {
	return strings.TrimSpace(e.Solution) != ""
}

type Tutorial struct {
	ID              string         `json:"id" yaml:"id"`
	Title           string         `json:"title" yaml:"title"`
	Category        string         `json:"category" yaml:"category"`
	Subcategory     string         `json:"subcategory" yaml:"subcategory"`
	Difficulty      Difficulty     `json:"difficulty" yaml:"difficulty"`
	ReadTime        string         `json:"readTime" yaml:"readTime"`
	Prerequisites   []string       `json:"prerequisites" yaml:"prerequisites"`
	Description     string         `json:"description" yaml:"description"`
	Keywords        []string       `json:"keywords" yaml:"keywords"`
	MetaDescription string         `json:"metaDescription" yaml:"metaDescription"`
	Introduction    Introduction   `json:"introduction" yaml:"introduction"`
	Content         Content        `json:"content" yaml:"content"`
	Examples        []Example      `json:"examples" yaml:"examples"`
	Quiz            []QuizQuestion `json:"quiz" yaml:"quiz"`
	Exercises       []Exercise     `json:"exercises" yaml:"exercises"`
	// 不校验是否存在，允许悬空引用
	RelatedTopics []string `json:"relatedTopics" yaml:"relatedTopics"`
	NextTopic     string   `json:"nextTopic,omitempty" yaml:"nextTopic,omitempty"`
}

// Validate 注册前的内容校验，返回全部问题
func (t *Tutorial) Validate() error {
	var err error
	if t.ID == "" {
		err = multierr.Append(err, fmt.Errorf("tutorial id is empty"))
	}
	if t.Title == "" {
		err = multierr.Append(err, fmt.Errorf("tutorial %q: title is empty", t.ID))
	}
	if t.Category == "" {
		err = multierr.Append(err, fmt.Errorf("tutorial %q: category is empty", t.ID))
	}
	if !t.Difficulty.Valid() {
		err = multierr.Append(err, fmt.Errorf("tutorial %q: invalid difficulty %q", t.ID, t.Difficulty))
	}
	for i, q := range t.Quiz {
		if len(q.Options) < 2 {
			err = multierr.Append(err, fmt.Errorf("tutorial %q: quiz[%d] has %d options, need at least 2", t.ID, i, len(q.Options)))
			continue
		}
		if q.Correct < 0 || q.Correct >= len(q.Options) {
			err = multierr.Append(err, fmt.Errorf("tutorial %q: quiz[%d].correct=%d out of range [0,%d)", t.ID, i, q.Correct, len(q.Options)))
		}
	}
	return err
}
