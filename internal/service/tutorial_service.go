package service

import (
	"skillerset/internal/model"
	"skillerset/internal/quiz"
	"skillerset/internal/render"
	"skillerset/internal/repository"
	"skillerset/internal/util"

	"github.com/samber/lo"
)

const FeaturedCount = 4

type TutorialService struct {
	TutorialRepo *repository.TutorialRepository
}

func NewTutorialService(tutorialRepo *repository.TutorialRepository) *TutorialService {
	return &TutorialService{TutorialRepo: tutorialRepo}
}

// TutorialSummary 列表卡片所需字段
type TutorialSummary struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Category    string           `json:"category"`
	Subcategory string           `json:"subcategory"`
	Difficulty  model.Difficulty `json:"difficulty"`
	ReadTime    string           `json:"readTime"`
	Description string           `json:"description"`
}

type CategorySummary struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func Summarize(t *model.Tutorial) TutorialSummary {
	return TutorialSummary{
		ID:          t.ID,
		Title:       t.Title,
		Category:    t.Category,
		Subcategory: t.Subcategory,
		Difficulty:  t.Difficulty,
		ReadTime:    t.ReadTime,
		Description: t.Description,
	}
}

func (s *TutorialService) Get(id string) (*model.Tutorial, error) {
	t, ok := s.TutorialRepo.FindByID(id)
	if !ok {
		return nil, util.ErrTutorialNotFound
	}
	return t, nil
}

// List category 为空时返回全部
func (s *TutorialService) List(category string) []*model.Tutorial {
	if category == "" {
		return s.TutorialRepo.FindAll()
	}
	return s.TutorialRepo.FindByCategory(category)
}

func (s *TutorialService) ListSummaries(category string) []TutorialSummary {
	return lo.Map(s.List(category), func(t *model.Tutorial, _ int) TutorialSummary { return Summarize(t) })
}

// Featured 首页展示前几个注册的教程
func (s *TutorialService) Featured() []*model.Tutorial {
	all := s.TutorialRepo.FindAll()
	if len(all) > FeaturedCount {
		return all[:FeaturedCount]
	}
	return all
}

func (s *TutorialService) Categories() []CategorySummary {
	all := s.TutorialRepo.FindAll()
	return lo.Map(s.TutorialRepo.Categories(), func(name string, _ int) CategorySummary {
		return CategorySummary{Name: name, Count: lo.CountBy(all, func(t *model.Tutorial) bool { return t.Category == name })}
	})
}

func (s *TutorialService) TableOfContents(id string) ([]render.TOCEntry, error) {
	t, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	return render.TableOfContents(t.Content), nil
}

// Score 无状态计分，不影响会话中的答题状态
func (s *TutorialService) Score(id string, selections map[int]int) (quiz.Score, error) {
	t, err := s.Get(id)
	if err != nil {
		return quiz.Score{}, err
	}
	return quiz.ScoreSelections(t.Quiz, selections), nil
}
