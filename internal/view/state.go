package view

import (
	"fmt"
	"skillerset/internal/model"
	"skillerset/internal/quiz"
	"skillerset/internal/render"
	"skillerset/internal/util"
)

// PanelState 提示与答案面板的展开状态
type PanelState struct {
	HintsOpen    bool `json:"hintsOpen,omitempty"`
	SolutionOpen bool `json:"solutionOpen,omitempty"`
}

// PageState 单个会话在单个页面上的界面状态，不属于内容模型
type PageState struct {
	Outputs   render.OutputToggles `json:"outputs,omitempty"`
	Quiz      quiz.State           `json:"quiz"`
	Exercises map[int]PanelState   `json:"exercises,omitempty"`
	// 练习题页面只有一组面板
	Problem PanelState `json:"problem"`
}

// IsEmpty 所有面板收起且测验未作答
func (s PageState) IsEmpty() bool {
	return len(s.Outputs) == 0 &&
		len(s.Quiz.Selections) == 0 && !s.Quiz.Graded &&
		len(s.Exercises) == 0 &&
		s.Problem == PanelState{}
}

// ToggleOutput 只允许切换带输出的代码片段
func (s *PageState) ToggleOutput(content model.Content, index int) (bool, error) {
	if index < 0 || index >= len(content) {
		return false, fmt.Errorf("section %d: %w", index, util.ErrInvalidIndex)
	}
	code, ok := content[index].(model.CodeSection)
	if !ok || !code.Code.HasOutput() {
		return false, fmt.Errorf("section %d: %w", index, util.ErrNotToggleable)
	}
	if s.Outputs == nil {
		s.Outputs = make(render.OutputToggles)
	}
	s.Outputs[index] = !s.Outputs[index]
	if !s.Outputs[index] {
		delete(s.Outputs, index)
	}
	return s.Outputs[index], nil
}

func (s *PageState) exercise(exercises []model.Exercise, index int) (PanelState, error) {
	if index < 0 || index >= len(exercises) {
		return PanelState{}, fmt.Errorf("exercise %d: %w", index, util.ErrInvalidIndex)
	}
	return s.Exercises[index], nil
}

func (s *PageState) setExercise(index int, p PanelState) {
	if s.Exercises == nil {
		s.Exercises = make(map[int]PanelState)
	}
	if p == (PanelState{}) {
		delete(s.Exercises, index)
		return
	}
	s.Exercises[index] = p
}

// ToggleExerciseHints 没有提示时不做修改
func (s *PageState) ToggleExerciseHints(exercises []model.Exercise, index int) (bool, error) {
	p, err := s.exercise(exercises, index)
	if err != nil {
		return false, err
	}
	if len(exercises[index].Hints) == 0 {
		return false, nil
	}
	p.HintsOpen = !p.HintsOpen
	s.setExercise(index, p)
	return p.HintsOpen, nil
}

// ToggleExerciseSolution 没有答案时不做修改
func (s *PageState) ToggleExerciseSolution(exercises []model.Exercise, index int) (bool, error) {
	p, err := s.exercise(exercises, index)
	if err != nil {
		return false, err
	}
	if !exercises[index].HasSolution() {
		return false, nil
	}
	p.SolutionOpen = !p.SolutionOpen
	s.setExercise(index, p)
	return p.SolutionOpen, nil
}

func (s *PageState) ToggleProblemHints(p *model.PracticeProblem) bool {
	if len(p.Hints) > 0 {
		s.Problem.HintsOpen = !s.Problem.HintsOpen
	}
	return s.Problem.HintsOpen
}

func (s *PageState) ToggleProblemSolution(p *model.PracticeProblem) bool {
	if p.Solution != "" {
		s.Problem.SolutionOpen = !s.Problem.SolutionOpen
	}
	return s.Problem.SolutionOpen
}
