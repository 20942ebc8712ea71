package repository

import (
	"context"
	"skillerset/internal/model"

	"gorm.io/gorm"
)

type QuizAttemptRepository struct {
	DB *gorm.DB
}

func NewQuizAttemptRepository(db *gorm.DB) *QuizAttemptRepository {
	return &QuizAttemptRepository{DB: db}
}

func (r *QuizAttemptRepository) Create(ctx context.Context, attempt *model.QuizAttempt) error {
	return r.DB.WithContext(ctx).Create(attempt).Error
}

// FindBySessionAndTutorial 最新的在前
func (r *QuizAttemptRepository) FindBySessionAndTutorial(ctx context.Context, sessionID, tutorialID string, limit int) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	q := r.DB.WithContext(ctx).
		Where("session_id = ? AND tutorial_id = ?", sessionID, tutorialID).
		Order("created_at desc, id desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&attempts).Error
	return attempts, err
}

type TutorialAttemptStats struct {
	TutorialID   string  `json:"tutorialId"`
	Attempts     int64   `json:"attempts"`
	AverageScore float64 `json:"averageScore"`
}

// StatsByTutorial 所有会话的汇总，AverageScore 为 correct/total 的平均值
func (r *QuizAttemptRepository) StatsByTutorial(ctx context.Context, tutorialID string) (*TutorialAttemptStats, error) {
	stats := &TutorialAttemptStats{TutorialID: tutorialID}
	err := r.DB.WithContext(ctx).
		Model(&model.QuizAttempt{}).
		Select("COUNT(*) AS attempts, COALESCE(AVG(CASE WHEN total > 0 THEN correct * 1.0 / total ELSE 0 END), 0) AS average_score").
		Where("tutorial_id = ?", tutorialID).
		Scan(stats).Error
	return stats, err
}
