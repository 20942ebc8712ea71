package service

import (
	"context"
	"errors"
	"skillerset/internal/model"
	"skillerset/internal/quiz"
	"skillerset/internal/render"
	"skillerset/internal/repository"
	"skillerset/internal/util"
	"skillerset/internal/view"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedAttempt struct {
	sessionID  string
	tutorialID string
	score      quiz.Score
	selections map[int]int
}

type fakeRecorder struct {
	attempts []recordedAttempt
	err      error
}

func (f *fakeRecorder) Record(_ context.Context, sessionID, tutorialID string, score quiz.Score, selections map[int]int) error {
	f.attempts = append(f.attempts, recordedAttempt{sessionID, tutorialID, score, selections})
	return f.err
}

func fixtures() (*repository.TutorialRepository, *repository.PracticeProblemRepository) {
	tutorials := repository.NewTutorialRepository()
	tutorials.Register(&model.Tutorial{
		ID: "python-basics", Title: "Python Basics", Category: "Programming Languages", Difficulty: model.Beginner,
		Content: model.Content{
			model.HeadingSection{Text: "Intro"},
			model.CodeSection{Code: model.CodeExample{Code: "print(1)", Language: "python", Output: "1"}},
		},
		Quiz: []model.QuizQuestion{
			{Question: "Q1", Options: []string{"a", "b", "c"}, Correct: 0},
			{Question: "Q2", Options: []string{"a", "b", "c"}, Correct: 2},
		},
		Exercises: []model.Exercise{{Title: "E1", Hints: []string{"h"}, Solution: "s"}},
	})
	tutorials.Register(&model.Tutorial{ID: "css-flexbox", Title: "CSS Flexbox", Category: "Web Development", Difficulty: model.Intermediate})
	tutorials.Register(&model.Tutorial{ID: "html-introduction", Title: "HTML", Category: "Web Development", Difficulty: model.Beginner})

	problems := repository.NewPracticeProblemRepository()
	problems.Register(&model.PracticeProblem{ProblemID: "py-001", Title: "One", Category: "Python Basics", Difficulty: model.Easy, DifficultyStars: 1, Hints: []string{"h"}, Solution: "s"})
	problems.Register(&model.PracticeProblem{ProblemID: "py-002", Title: "Two", Category: "Python Basics", Difficulty: model.Medium, DifficultyStars: 2})
	problems.Register(&model.PracticeProblem{ProblemID: "algo-001", Title: "Three", Category: "Algorithms", Difficulty: model.Medium, DifficultyStars: 2})
	return tutorials, problems
}

func newInteraction(t *testing.T) (*InteractionService, *fakeRecorder) {
	t.Helper()
	tutorials, problems := fixtures()
	recorder := &fakeRecorder{}
	return NewInteractionService(
		NewTutorialService(tutorials),
		NewPracticeService(problems),
		NewPageStateService(repository.NewMemoryStateRepository(), time.Hour),
		recorder,
	), recorder
}

func TestTutorialService(t *testing.T) {
	tutorials, _ := fixtures()
	svc := NewTutorialService(tutorials)

	_, err := svc.Get("nonexistent")
	assert.ErrorIs(t, err, util.ErrTutorialNotFound)

	assert.Len(t, svc.List(""), 3)
	assert.Len(t, svc.List("Web Development"), 2)
	assert.Empty(t, svc.List("Mobile Development"))

	assert.Equal(t, []CategorySummary{
		{Name: "Programming Languages", Count: 1},
		{Name: "Web Development", Count: 2},
	}, svc.Categories())

	assert.Len(t, svc.Featured(), 3)

	score, err := svc.Score("python-basics", map[int]int{0: 0, 1: 1, 9: 9})
	require.NoError(t, err)
	assert.Equal(t, quiz.Score{Correct: 1, Total: 2}, score)

	toc, err := svc.TableOfContents("python-basics")
	require.NoError(t, err)
	require.Len(t, toc, 1)
	assert.Equal(t, "intro", toc[0].Anchor)
}

func TestPracticeService_List(t *testing.T) {
	_, problems := fixtures()
	svc := NewPracticeService(problems)

	tests := []struct {
		name   string
		filter ProblemFilter
		want   []string
		err    error
	}{
		{"all", ProblemFilter{}, []string{"py-001", "py-002", "algo-001"}, nil},
		{"by difficulty", ProblemFilter{Difficulty: "Medium"}, []string{"py-002", "algo-001"}, nil},
		{"by category", ProblemFilter{Category: "Python Basics"}, []string{"py-001", "py-002"}, nil},
		{"both", ProblemFilter{Category: "Algorithms", Difficulty: "Medium"}, []string{"algo-001"}, nil},
		{"no match", ProblemFilter{Difficulty: "Hard"}, nil, nil},
		{"lowercase difficulty is invalid", ProblemFilter{Difficulty: "medium"}, nil, util.ErrInvalidDifficulty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ListSummaries(tt.filter)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			ids := make([]string, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ProblemID)
			}
			if tt.want == nil {
				assert.Empty(t, ids)
				return
			}
			assert.Equal(t, tt.want, ids)
		})
	}

	_, err := svc.Get("py-999")
	assert.ErrorIs(t, err, util.ErrProblemNotFound)
}

func TestInteraction_QuizFlow(t *testing.T) {
	ctx := context.Background()
	svc, recorder := newInteraction(t)

	_, err := svc.SelectOption(ctx, "s1", "python-basics", 0, 0)
	require.NoError(t, err)
	_, err = svc.SelectOption(ctx, "s1", "python-basics", 1, 1)
	require.NoError(t, err)

	_, err = svc.SelectOption(ctx, "s1", "python-basics", 1, 5)
	assert.ErrorIs(t, err, util.ErrInvalidIndex)

	st, err := svc.ToggleGrading(ctx, "s1", "python-basics")
	require.NoError(t, err)
	assert.True(t, st.Quiz.Graded)
	require.Len(t, recorder.attempts, 1)
	assert.Equal(t, quiz.Score{Correct: 1, Total: 2}, recorder.attempts[0].score)
	assert.Equal(t, map[int]int{0: 0, 1: 1}, recorder.attempts[0].selections)

	// 评分状态下选择无效
	st, err = svc.SelectOption(ctx, "s1", "python-basics", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, st.Quiz.Selections[1])

	page, err := svc.TutorialPage(ctx, "s1", "python-basics")
	require.NoError(t, err)
	require.NotNil(t, page.Quiz.Score)
	assert.Equal(t, 1, page.Quiz.Score.Correct)

	st, err = svc.ToggleGrading(ctx, "s1", "python-basics")
	require.NoError(t, err)
	assert.False(t, st.Quiz.Graded)
	assert.Len(t, recorder.attempts, 1, "leaving graded mode records nothing")

	st, err = svc.ResetQuiz(ctx, "s1", "python-basics")
	require.NoError(t, err)
	assert.Empty(t, st.Quiz.Selections)

	other, err := svc.TutorialPage(ctx, "s2", "python-basics")
	require.NoError(t, err)
	assert.False(t, other.Quiz.Graded, "state is per session")
}

func TestInteraction_RecorderFailureDoesNotFailGrading(t *testing.T) {
	svc, recorder := newInteraction(t)
	recorder.err = errors.New("db down")

	st, err := svc.ToggleGrading(context.Background(), "s1", "python-basics")
	require.NoError(t, err)
	assert.True(t, st.Quiz.Graded)
}

func TestInteraction_Toggles(t *testing.T) {
	ctx := context.Background()
	svc, _ := newInteraction(t)

	st, err := svc.ToggleOutput(ctx, "s1", "python-basics", 1)
	require.NoError(t, err)
	assert.True(t, st.Outputs[1])

	_, err = svc.ToggleOutput(ctx, "s1", "python-basics", 0)
	assert.ErrorIs(t, err, util.ErrNotToggleable)

	page, err := svc.TutorialPage(ctx, "s1", "python-basics")
	require.NoError(t, err)
	require.IsType(t, render.CodeNode{}, page.Nodes[1])
	assert.True(t, page.Nodes[1].(render.CodeNode).OutputVisible)

	st, err = svc.ToggleExerciseSolution(ctx, "s1", "python-basics", 0)
	require.NoError(t, err)
	assert.True(t, st.Exercises[0].SolutionOpen)

	_, err = svc.ToggleExerciseHints(ctx, "s1", "python-basics", 3)
	assert.ErrorIs(t, err, util.ErrInvalidIndex)

	_, err = svc.ToggleOutput(ctx, "s1", "nonexistent", 0)
	assert.ErrorIs(t, err, util.ErrTutorialNotFound)

	_, err = svc.ToggleOutput(ctx, "", "python-basics", 1)
	assert.ErrorIs(t, err, util.ErrNoSession)

	st, err = svc.ToggleProblemSolution(ctx, "s1", "py-001")
	require.NoError(t, err)
	assert.True(t, st.Problem.SolutionOpen)

	problem, err := svc.ProblemPage(ctx, "s1", "py-001")
	require.NoError(t, err)
	assert.True(t, problem.SolutionOpen)
	assert.False(t, problem.HintsOpen)

	st, err = svc.ToggleProblemHints(ctx, "s1", "py-002")
	require.NoError(t, err)
	assert.False(t, st.Problem.HintsOpen, "no hints to reveal")

	_, err = svc.ProblemPage(ctx, "s1", "py-999")
	assert.ErrorIs(t, err, util.ErrProblemNotFound)
}

type failingStore struct {
	repository.MemoryStateRepository
}

func (*failingStore) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("connection refused")
}

func TestPageStateService_LoadFailsSoft(t *testing.T) {
	svc := NewPageStateService(&failingStore{}, time.Hour)
	st := svc.Load(context.Background(), "s1", util.StatePageTutorial, "python-basics")
	assert.Empty(t, st.Outputs)

	mem := repository.NewMemoryStateRepository()
	require.NoError(t, mem.Set(context.Background(), stateKey("s1", "tutorial", "x"), []byte("{not json"), time.Hour))
	st = NewPageStateService(mem, time.Hour).Load(context.Background(), "s1", "tutorial", "x")
	assert.Empty(t, st.Outputs)
}

// slowStore 放大读写之间的窗口
type slowStore struct {
	*repository.MemoryStateRepository
}

func (s slowStore) Get(ctx context.Context, key string) ([]byte, error) {
	time.Sleep(time.Millisecond)
	return s.MemoryStateRepository.Get(ctx, key)
}

func TestPageStateService_ConcurrentUpdatesKeepEveryChange(t *testing.T) {
	ctx := context.Background()
	svc := NewPageStateService(slowStore{repository.NewMemoryStateRepository()}, time.Hour)

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(q int) {
			defer wg.Done()
			_, err := svc.Update(ctx, "s1", util.StatePageTutorial, "python-basics", func(st *view.PageState) error {
				if st.Quiz.Selections == nil {
					st.Quiz.Selections = make(map[int]int)
				}
				st.Quiz.Selections[q] = q % 3
				return nil
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	st := svc.Load(ctx, "s1", util.StatePageTutorial, "python-basics")
	assert.Len(t, st.Quiz.Selections, n)

	svc.mu.Lock()
	assert.Empty(t, svc.locks, "locks are released once idle")
	svc.mu.Unlock()
}

func TestPageStateService_EmptyStateIsDeleted(t *testing.T) {
	ctx := context.Background()
	tutorials, problems := fixtures()
	store := repository.NewMemoryStateRepository()
	svc := NewInteractionService(
		NewTutorialService(tutorials),
		NewPracticeService(problems),
		NewPageStateService(store, time.Hour),
		&fakeRecorder{},
	)
	key := stateKey("s1", util.StatePageTutorial, "python-basics")

	_, err := svc.SelectOption(ctx, "s1", "python-basics", 0, 1)
	require.NoError(t, err)
	_, err = store.Get(ctx, key)
	require.NoError(t, err)

	_, err = svc.ResetQuiz(ctx, "s1", "python-basics")
	require.NoError(t, err)
	_, err = store.Get(ctx, key)
	assert.ErrorIs(t, err, util.ErrStateNotFound)

	_, err = svc.ToggleOutput(ctx, "s1", "python-basics", 1)
	require.NoError(t, err)
	_, err = svc.ToggleOutput(ctx, "s1", "python-basics", 1)
	require.NoError(t, err)
	_, err = store.Get(ctx, key)
	assert.ErrorIs(t, err, util.ErrStateNotFound, "collapsing the last output clears the key")
}
