package quiz

import (
	"fmt"
	"skillerset/internal/model"
	"skillerset/internal/util"
)

type Mode string

const (
	Answering Mode = "answering"
	Graded    Mode = "graded"
)

// OptionState 选项的展示状态，由是否选中、是否正确答案、是否已评分共同决定
type OptionState string

const (
	OptionNeutral   OptionState = "neutral"
	OptionSelected  OptionState = "selected"
	OptionCorrect   OptionState = "correct"
	OptionIncorrect OptionState = "incorrect"
)

type Score struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// State 可序列化的答题状态，按会话保存
type State struct {
	Selections map[int]int `json:"selections,omitempty"`
	Graded     bool        `json:"graded,omitempty"`
}

type Widget struct {
	questions  []model.QuizQuestion
	selections map[int]int
	mode       Mode
}

func New(questions []model.QuizQuestion) *Widget {
	return &Widget{
		questions:  questions,
		selections: make(map[int]int),
		mode:       Answering,
	}
}

// Restore 从保存的状态恢复，越界的选择会被丢弃
func Restore(questions []model.QuizQuestion, st State) *Widget {
	w := New(questions)
	for q, o := range st.Selections {
		if w.valid(q, o) {
			w.selections[q] = o
		}
	}
	if st.Graded {
		w.mode = Graded
	}
	return w
}

func (w *Widget) State() State {
	st := State{Graded: w.mode == Graded}
	if len(w.selections) > 0 {
		st.Selections = make(map[int]int, len(w.selections))
		for q, o := range w.selections {
			st.Selections[q] = o
		}
	}
	return st
}

func (w *Widget) Mode() Mode {
	return w.mode
}

func (w *Widget) Questions() []model.QuizQuestion {
	return w.questions
}

func (w *Widget) valid(q, o int) bool {
	return q >= 0 && q < len(w.questions) && o >= 0 && o < len(w.questions[q].Options)
}

// SelectOption 记录或覆盖某题的选择。评分状态下不做任何修改，返回 false
func (w *Widget) SelectOption(q, o int) (bool, error) {
	if !w.valid(q, o) {
		return false, fmt.Errorf("question %d option %d: %w", q, o, util.ErrInvalidIndex)
	}
	if w.mode == Graded {
		return false, nil
	}
	w.selections[q] = o
	return true, nil
}

func (w *Widget) Selection(q int) (int, bool) {
	o, ok := w.selections[q]
	return o, ok
}

// ToggleGrading 在作答与评分之间切换，选择保持不变
func (w *Widget) ToggleGrading() Mode {
	if w.mode == Graded {
		w.mode = Answering
	} else {
		w.mode = Graded
	}
	return w.mode
}

func (w *Widget) Reset() {
	w.selections = make(map[int]int)
	w.mode = Answering
}

// Score 每次重新计算，未作答的题目不计为正确
func (w *Widget) Score() Score {
	return ScoreSelections(w.questions, w.selections)
}

// Result 仅在评分状态下返回得分
func (w *Widget) Result() (Score, bool) {
	if w.mode != Graded {
		return Score{}, false
	}
	return w.Score(), true
}

func (w *Widget) OptionState(q, o int) OptionState {
	if !w.valid(q, o) {
		return OptionNeutral
	}
	selected, answered := w.selections[q]
	isSelected := answered && selected == o
	isCorrect := w.questions[q].Correct == o

	if w.mode == Graded {
		switch {
		case isCorrect:
			return OptionCorrect
		case isSelected:
			return OptionIncorrect
		}
		return OptionNeutral
	}
	if isSelected {
		return OptionSelected
	}
	return OptionNeutral
}

// ScoreSelections 无状态计分
func ScoreSelections(questions []model.QuizQuestion, selections map[int]int) Score {
	score := Score{Total: len(questions)}
	for i, q := range questions {
		if o, ok := selections[i]; ok && o == q.Correct {
			score.Correct++
		}
	}
	return score
}
