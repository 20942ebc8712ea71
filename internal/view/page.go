package view

import (
	"skillerset/internal/model"
	"skillerset/internal/quiz"
	"skillerset/internal/render"
	"strings"

	"github.com/samber/lo"
)

type TopicLink struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type ExampleView struct {
	Number int `json:"number"`
	model.Example
}

type OptionView struct {
	Index  int              `json:"index"`
	Letter string           `json:"letter"`
	Text   string           `json:"text"`
	State  quiz.OptionState `json:"state"`
	Answer bool             `json:"answer"`
}

type QuestionView struct {
	Index       int          `json:"index"`
	Number      int          `json:"number"`
	Question    string       `json:"question"`
	Options     []OptionView `json:"options"`
	Explanation string       `json:"explanation,omitempty"`
}

type QuizView struct {
	Questions []QuestionView `json:"questions"`
	Graded    bool           `json:"graded"`
	Score     *quiz.Score    `json:"score,omitempty"`
}

type ExerciseView struct {
	Index  int `json:"index"`
	Number int `json:"number"`
	model.Exercise
	HintsOpen    bool `json:"hintsOpen"`
	SolutionOpen bool `json:"solutionOpen"`
}

type TutorialPage struct {
	Tutorial  *model.Tutorial   `json:"tutorial"`
	Nodes     []render.Node     `json:"nodes"`
	TOC       []render.TOCEntry `json:"toc"`
	Examples  []ExampleView     `json:"examples"`
	Quiz      QuizView          `json:"quiz"`
	Exercises []ExerciseView    `json:"exercises"`
	Related   []TopicLink       `json:"related"`
	Next      *TopicLink        `json:"next,omitempty"`
}

type ProblemPage struct {
	Problem      *model.PracticeProblem `json:"problem"`
	Stars        string                 `json:"stars"`
	HintsOpen    bool                   `json:"hintsOpen"`
	SolutionOpen bool                   `json:"solutionOpen"`
	Related      []TopicLink            `json:"related"`
}

func Topic(id string) TopicLink {
	return TopicLink{ID: id, Label: render.TopicLabel(id)}
}

// OptionLetter 0 -> "A"
func OptionLetter(i int) string {
	return string(rune('A' + i))
}

func BuildTutorialPage(t *model.Tutorial, st PageState) *TutorialPage {
	page := &TutorialPage{
		Tutorial: t,
		Nodes:    render.Render(t.Content, st.Outputs),
		TOC:      render.TableOfContents(t.Content),
		Examples: lo.Map(t.Examples, func(e model.Example, i int) ExampleView {
			return ExampleView{Number: i + 1, Example: e}
		}),
		Quiz: BuildQuiz(quiz.Restore(t.Quiz, st.Quiz)),
		Exercises: lo.Map(t.Exercises, func(e model.Exercise, i int) ExerciseView {
			p := st.Exercises[i]
			return ExerciseView{
				Index:        i,
				Number:       i + 1,
				Exercise:     e,
				HintsOpen:    p.HintsOpen && len(e.Hints) > 0,
				SolutionOpen: p.SolutionOpen && e.HasSolution(),
			}
		}),
		Related: lo.Map(t.RelatedTopics, func(id string, _ int) TopicLink { return Topic(id) }),
	}
	if t.NextTopic != "" {
		next := Topic(t.NextTopic)
		page.Next = &next
	}
	return page
}

func BuildQuiz(w *quiz.Widget) QuizView {
	v := QuizView{Graded: w.Mode() == quiz.Graded}
	for qi, q := range w.Questions() {
		qv := QuestionView{Index: qi, Number: qi + 1, Question: q.Question}
		for oi, o := range q.Options {
			qv.Options = append(qv.Options, OptionView{
				Index:  oi,
				Letter: OptionLetter(oi),
				Text:   o,
				State:  w.OptionState(qi, oi),
				Answer: v.Graded && oi == q.Correct,
			})
		}
		if v.Graded {
			qv.Explanation = q.Explanation
		}
		v.Questions = append(v.Questions, qv)
	}
	if score, ok := w.Result(); ok {
		v.Score = &score
	}
	return v
}

func BuildProblemPage(p *model.PracticeProblem, st PageState) *ProblemPage {
	return &ProblemPage{
		Problem:      p,
		Stars:        strings.Repeat("★", p.DifficultyStars),
		HintsOpen:    st.Problem.HintsOpen && len(p.Hints) > 0,
		SolutionOpen: st.Problem.SolutionOpen && p.Solution != "",
		Related:      lo.Map(p.RelatedProblems, func(id string, _ int) TopicLink { return TopicLink{ID: id, Label: id} }),
	}
}
