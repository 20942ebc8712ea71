package repository

import (
	"skillerset/internal/model"

	"github.com/samber/lo"
)

// PracticeProblemRepository 练习题注册表，与教程注册表相互独立
type PracticeProblemRepository struct {
	store registry[*model.PracticeProblem]
}

func NewPracticeProblemRepository() *PracticeProblemRepository {
	return &PracticeProblemRepository{store: newRegistry[*model.PracticeProblem]()}
}

func (r *PracticeProblemRepository) Register(p *model.PracticeProblem) {
	if p == nil {
		return
	}
	r.store.put(p.ProblemID, p)
}

func (r *PracticeProblemRepository) FindByID(id string) (*model.PracticeProblem, bool) {
	return r.store.get(id)
}

func (r *PracticeProblemRepository) FindAll() []*model.PracticeProblem {
	return r.store.all()
}

func (r *PracticeProblemRepository) FindByCategory(category string) []*model.PracticeProblem {
	return lo.Filter(r.store.all(), func(p *model.PracticeProblem, _ int) bool {
		return p.Category == category
	})
}

func (r *PracticeProblemRepository) FindByDifficulty(level model.ProblemDifficulty) []*model.PracticeProblem {
	return lo.Filter(r.store.all(), func(p *model.PracticeProblem, _ int) bool {
		return p.Difficulty == level
	})
}

func (r *PracticeProblemRepository) Categories() []string {
	return lo.Uniq(lo.Map(r.store.all(), func(p *model.PracticeProblem, _ int) string {
		return p.Category
	}))
}

func (r *PracticeProblemRepository) Count() int {
	return r.store.count()
}
