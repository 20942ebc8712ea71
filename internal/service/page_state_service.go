package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"skillerset/internal/repository"
	"skillerset/internal/util"
	"skillerset/internal/view"
	"skillerset/pkg/logger"
	"skillerset/pkg/tracing"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// PageStateService 按会话和页面保存界面状态
// 同一进程内对同一个键的 Update 串行执行；多实例部署时仍是后写覆盖
type PageStateService struct {
	Store repository.StateRepository
	TTL   time.Duration

	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	sync.Mutex
	refs int
}

func NewPageStateService(store repository.StateRepository, ttl time.Duration) *PageStateService {
	return &PageStateService{Store: store, TTL: ttl, locks: make(map[string]*keyLock)}
}

// lock 返回的函数释放锁，最后一个持有者负责从 map 中移除
func (s *PageStateService) lock(key string) func() {
	s.mu.Lock()
	l, ok := s.locks[key]
	if !ok {
		l = &keyLock{}
		s.locks[key] = l
	}
	l.refs++
	s.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, key)
		}
		s.mu.Unlock()
	}
}

func stateKey(sessionID, page, id string) string {
	return fmt.Sprintf("%s:%s:%s", sessionID, page, id)
}

// Load 状态丢失只影响展开状态，读取失败时记录日志并返回空状态
func (s *PageStateService) Load(ctx context.Context, sessionID, page, id string) view.PageState {
	var st view.PageState
	if sessionID == "" {
		return st
	}

	ctx, span := tracing.Start(ctx, "PageState.Load", attribute.String("page", page), attribute.String("id", id))
	defer span.End()

	data, err := s.Store.Get(ctx, stateKey(sessionID, page, id))
	if err != nil {
		if !errors.Is(err, util.ErrStateNotFound) {
			logger.Log.Warn("Failed to load page state", zap.String("page", page), zap.String("id", id), zap.Error(err))
		}
		return st
	}
	if err := json.Unmarshal(data, &st); err != nil {
		logger.Log.Warn("Discarding corrupt page state", zap.String("page", page), zap.String("id", id), zap.Error(err))
		return view.PageState{}
	}
	return st
}

// Save 空状态与不存在等价，直接删除键
func (s *PageStateService) Save(ctx context.Context, sessionID, page, id string, st view.PageState) error {
	if sessionID == "" {
		return util.ErrNoSession
	}

	ctx, span := tracing.Start(ctx, "PageState.Save", attribute.String("page", page), attribute.String("id", id))
	defer span.End()

	key := stateKey(sessionID, page, id)
	if st.IsEmpty() {
		if err := s.Store.Delete(ctx, key); err != nil {
			return fmt.Errorf("delete page state: %w", err)
		}
		return nil
	}

	data, err := json.Marshal(st)
	if err != nil {
		return err
	}
	if err := s.Store.Set(ctx, key, data, s.TTL); err != nil {
		return fmt.Errorf("save page state: %w", err)
	}
	return nil
}

// Update 读取、修改并写回。fn 返回错误时不写回
func (s *PageStateService) Update(ctx context.Context, sessionID, page, id string, fn func(st *view.PageState) error) (view.PageState, error) {
	if sessionID == "" {
		return view.PageState{}, util.ErrNoSession
	}
	unlock := s.lock(stateKey(sessionID, page, id))
	defer unlock()

	st := s.Load(ctx, sessionID, page, id)
	if err := fn(&st); err != nil {
		return st, err
	}
	return st, s.Save(ctx, sessionID, page, id, st)
}
