package service

import (
	"fmt"
	"skillerset/internal/model"
	"skillerset/internal/repository"
	"skillerset/internal/util"

	"github.com/samber/lo"
)

type PracticeService struct {
	ProblemRepo *repository.PracticeProblemRepository
}

func NewPracticeService(problemRepo *repository.PracticeProblemRepository) *PracticeService {
	return &PracticeService{ProblemRepo: problemRepo}
}

type ProblemFilter struct {
	Category   string `form:"category"`
	Difficulty string `form:"difficulty" binding:"omitempty,oneof=Easy Medium Hard"`
}

type ProblemSummary struct {
	ProblemID       string                  `json:"problemId"`
	Title           string                  `json:"title"`
	Difficulty      model.ProblemDifficulty `json:"difficulty"`
	DifficultyStars int                     `json:"difficultyStars"`
	Category        string                  `json:"category"`
	Subcategory     string                  `json:"subcategory,omitempty"`
	Tags            []string                `json:"tags"`
	EstimatedTime   string                  `json:"estimatedTime,omitempty"`
}

func SummarizeProblem(p *model.PracticeProblem) ProblemSummary {
	return ProblemSummary{
		ProblemID:       p.ProblemID,
		Title:           p.Title,
		Difficulty:      p.Difficulty,
		DifficultyStars: p.DifficultyStars,
		Category:        p.Category,
		Subcategory:     p.Subcategory,
		Tags:            p.Tags,
		EstimatedTime:   p.EstimatedTime,
	}
}

func (s *PracticeService) Get(id string) (*model.PracticeProblem, error) {
	p, ok := s.ProblemRepo.FindByID(id)
	if !ok {
		return nil, util.ErrProblemNotFound
	}
	return p, nil
}

// List 两个条件同时给出时取交集
func (s *PracticeService) List(filter ProblemFilter) ([]*model.PracticeProblem, error) {
	var problems []*model.PracticeProblem
	if filter.Difficulty != "" {
		d, ok := model.ParseProblemDifficulty(filter.Difficulty)
		if !ok {
			return nil, fmt.Errorf("%q: %w", filter.Difficulty, util.ErrInvalidDifficulty)
		}
		problems = s.ProblemRepo.FindByDifficulty(d)
	} else {
		problems = s.ProblemRepo.FindAll()
	}

	if filter.Category != "" {
		problems = lo.Filter(problems, func(p *model.PracticeProblem, _ int) bool { return p.Category == filter.Category })
	}
	return problems, nil
}

func (s *PracticeService) ListSummaries(filter ProblemFilter) ([]ProblemSummary, error) {
	problems, err := s.List(filter)
	if err != nil {
		return nil, err
	}
	return lo.Map(problems, func(p *model.PracticeProblem, _ int) ProblemSummary { return SummarizeProblem(p) }), nil
}

func (s *PracticeService) Categories() []string {
	return s.ProblemRepo.Categories()
}
