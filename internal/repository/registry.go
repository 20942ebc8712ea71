package repository

import "sync"

// registry 按 id 存放内容记录，保留首次插入顺序。重复注册覆盖旧值但位置不变
type registry[T any] struct {
	mu    sync.RWMutex
	byID  map[string]T
	order []string
}

func newRegistry[T any]() registry[T] {
	return registry[T]{byID: make(map[string]T)}
}

func (r *registry[T]) put(id string, v T) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		r.order = append(r.order, id)
	}
	r.byID[id] = v
}

func (r *registry[T]) get(id string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.byID[id]
	return v, ok
}

func (r *registry[T]) all() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

func (r *registry[T]) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}
