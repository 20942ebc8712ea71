package service

import (
	"context"
	"skillerset/internal/model"
	"skillerset/internal/quiz"
	"skillerset/internal/repository"

	"gorm.io/datatypes"
)

const DefaultAttemptLimit = 20

// QuizAttemptRecorder 评分时写入答题记录
type QuizAttemptRecorder interface {
	Record(ctx context.Context, sessionID, tutorialID string, score quiz.Score, selections map[int]int) error
}

type QuizAttemptService struct {
	AttemptRepo *repository.QuizAttemptRepository
}

func NewQuizAttemptService(attemptRepo *repository.QuizAttemptRepository) *QuizAttemptService {
	return &QuizAttemptService{AttemptRepo: attemptRepo}
}

func (s *QuizAttemptService) Record(ctx context.Context, sessionID, tutorialID string, score quiz.Score, selections map[int]int) error {
	if selections == nil {
		selections = map[int]int{}
	}
	return s.AttemptRepo.Create(ctx, &model.QuizAttempt{
		SessionID:  sessionID,
		TutorialID: tutorialID,
		Correct:    score.Correct,
		Total:      score.Total,
		Selections: datatypes.NewJSONType(selections),
	})
}

func (s *QuizAttemptService) History(ctx context.Context, sessionID, tutorialID string, limit int) ([]model.QuizAttempt, error) {
	if limit <= 0 || limit > 100 {
		limit = DefaultAttemptLimit
	}
	return s.AttemptRepo.FindBySessionAndTutorial(ctx, sessionID, tutorialID, limit)
}

func (s *QuizAttemptService) Stats(ctx context.Context, tutorialID string) (*repository.TutorialAttemptStats, error) {
	return s.AttemptRepo.StatsByTutorial(ctx, tutorialID)
}
