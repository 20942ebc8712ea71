package service

import (
	"context"
	"skillerset/internal/model"
	"skillerset/internal/quiz"
	"skillerset/internal/render"
	"skillerset/internal/util"
	"skillerset/internal/view"
	"skillerset/pkg/logger"
	"skillerset/pkg/monitoring"

	"go.uber.org/zap"
)

// InteractionService 页面渲染与各类切换操作，状态按会话隔离
type InteractionService struct {
	Tutorials *TutorialService
	Practice  *PracticeService
	States    *PageStateService
	Attempts  QuizAttemptRecorder
}

func NewInteractionService(
	tutorials *TutorialService,
	practice *PracticeService,
	states *PageStateService,
	attempts QuizAttemptRecorder,
) *InteractionService {
	return &InteractionService{
		Tutorials: tutorials,
		Practice:  practice,
		States:    states,
		Attempts:  attempts,
	}
}

func (s *InteractionService) TutorialPage(ctx context.Context, sessionID, id string) (*view.TutorialPage, error) {
	t, err := s.Tutorials.Get(id)
	if err != nil {
		return nil, err
	}
	st := s.States.Load(ctx, sessionID, util.StatePageTutorial, id)
	monitoring.TutorialViews.WithLabelValues(id).Inc()
	return view.BuildTutorialPage(t, st), nil
}

// RenderNodes 按当前会话的输出展开状态渲染正文，不计入浏览量
func (s *InteractionService) RenderNodes(ctx context.Context, sessionID, id string) ([]render.Node, error) {
	t, err := s.Tutorials.Get(id)
	if err != nil {
		return nil, err
	}
	st := s.States.Load(ctx, sessionID, util.StatePageTutorial, id)
	return render.Render(t.Content, st.Outputs), nil
}

func (s *InteractionService) ProblemPage(ctx context.Context, sessionID, id string) (*view.ProblemPage, error) {
	p, err := s.Practice.Get(id)
	if err != nil {
		return nil, err
	}
	st := s.States.Load(ctx, sessionID, util.StatePagePractice, id)
	return view.BuildProblemPage(p, st), nil
}

func (s *InteractionService) updateTutorial(ctx context.Context, sessionID, id string, fn func(t *model.Tutorial, st *view.PageState) error) (view.PageState, error) {
	t, err := s.Tutorials.Get(id)
	if err != nil {
		return view.PageState{}, err
	}
	return s.States.Update(ctx, sessionID, util.StatePageTutorial, id, func(st *view.PageState) error {
		return fn(t, st)
	})
}

func (s *InteractionService) ToggleOutput(ctx context.Context, sessionID, id string, index int) (view.PageState, error) {
	return s.updateTutorial(ctx, sessionID, id, func(t *model.Tutorial, st *view.PageState) error {
		_, err := st.ToggleOutput(t.Content, index)
		return err
	})
}

// SelectOption 评分状态下不改变选择
func (s *InteractionService) SelectOption(ctx context.Context, sessionID, id string, question, option int) (view.PageState, error) {
	return s.updateTutorial(ctx, sessionID, id, func(t *model.Tutorial, st *view.PageState) error {
		w := quiz.Restore(t.Quiz, st.Quiz)
		if _, err := w.SelectOption(question, option); err != nil {
			return err
		}
		st.Quiz = w.State()
		return nil
	})
}

// ToggleGrading 每次进入评分状态记录一次答题
func (s *InteractionService) ToggleGrading(ctx context.Context, sessionID, id string) (view.PageState, error) {
	var graded *quiz.Widget
	st, err := s.updateTutorial(ctx, sessionID, id, func(t *model.Tutorial, st *view.PageState) error {
		w := quiz.Restore(t.Quiz, st.Quiz)
		if w.ToggleGrading() == quiz.Graded {
			graded = w
		}
		st.Quiz = w.State()
		return nil
	})
	if err != nil || graded == nil {
		return st, err
	}

	score := graded.Score()
	monitoring.QuizGradings.WithLabelValues(id).Inc()
	logger.Log.Info("Quiz graded",
		zap.String("tutorial", id),
		zap.Int("correct", score.Correct),
		zap.Int("total", score.Total),
	)
	if s.Attempts != nil {
		if err := s.Attempts.Record(ctx, sessionID, id, score, graded.State().Selections); err != nil {
			logger.Log.Error("Failed to record quiz attempt", zap.String("tutorial", id), zap.Error(err))
		}
	}
	return st, nil
}

func (s *InteractionService) ResetQuiz(ctx context.Context, sessionID, id string) (view.PageState, error) {
	return s.updateTutorial(ctx, sessionID, id, func(t *model.Tutorial, st *view.PageState) error {
		st.Quiz = quiz.State{}
		return nil
	})
}

func (s *InteractionService) ToggleExerciseHints(ctx context.Context, sessionID, id string, index int) (view.PageState, error) {
	return s.updateTutorial(ctx, sessionID, id, func(t *model.Tutorial, st *view.PageState) error {
		_, err := st.ToggleExerciseHints(t.Exercises, index)
		return err
	})
}

func (s *InteractionService) ToggleExerciseSolution(ctx context.Context, sessionID, id string, index int) (view.PageState, error) {
	return s.updateTutorial(ctx, sessionID, id, func(t *model.Tutorial, st *view.PageState) error {
		_, err := st.ToggleExerciseSolution(t.Exercises, index)
		return err
	})
}

func (s *InteractionService) updateProblem(ctx context.Context, sessionID, id string, fn func(p *model.PracticeProblem, st *view.PageState)) (view.PageState, error) {
	p, err := s.Practice.Get(id)
	if err != nil {
		return view.PageState{}, err
	}
	return s.States.Update(ctx, sessionID, util.StatePagePractice, id, func(st *view.PageState) error {
		fn(p, st)
		return nil
	})
}

func (s *InteractionService) ToggleProblemHints(ctx context.Context, sessionID, id string) (view.PageState, error) {
	return s.updateProblem(ctx, sessionID, id, func(p *model.PracticeProblem, st *view.PageState) {
		st.ToggleProblemHints(p)
	})
}

func (s *InteractionService) ToggleProblemSolution(ctx context.Context, sessionID, id string) (view.PageState, error) {
	return s.updateProblem(ctx, sessionID, id, func(p *model.PracticeProblem, st *view.PageState) {
		st.ToggleProblemSolution(p)
	})
}
