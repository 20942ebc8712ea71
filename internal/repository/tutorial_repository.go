package repository

import (
	"skillerset/internal/model"

	"github.com/samber/lo"
)

// TutorialRepository 教程注册表，启动时一次性注册，之后只读
type TutorialRepository struct {
	store registry[*model.Tutorial]
}

func NewTutorialRepository() *TutorialRepository {
	return &TutorialRepository{store: newRegistry[*model.Tutorial]()}
}

// Register 按 id 插入或覆盖，总是成功
func (r *TutorialRepository) Register(t *model.Tutorial) {
	if t == nil {
		return
	}
	r.store.put(t.ID, t)
}

func (r *TutorialRepository) FindByID(id string) (*model.Tutorial, bool) {
	return r.store.get(id)
}

// FindAll 按插入顺序返回，仅用于稳定展示
func (r *TutorialRepository) FindAll() []*model.Tutorial {
	return r.store.all()
}

func (r *TutorialRepository) FindByCategory(category string) []*model.Tutorial {
	return lo.Filter(r.store.all(), func(t *model.Tutorial, _ int) bool {
		return t.Category == category
	})
}

// Categories 按首次出现顺序去重
func (r *TutorialRepository) Categories() []string {
	return lo.Uniq(lo.Map(r.store.all(), func(t *model.Tutorial, _ int) string {
		return t.Category
	}))
}

func (r *TutorialRepository) Count() int {
	return r.store.count()
}
