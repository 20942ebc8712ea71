package configwatcher

import (
	"context"
	"path/filepath"
	"skillerset/internal/config"
	"skillerset/pkg/logger"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

type Reloader func(cfg *config.Config)

// Watcher 监听配置文件变更，防抖后重新加载
type Watcher struct {
	file     string
	debounce time.Duration
	reload   Reloader
}

func New(configFile string, reload Reloader) *Watcher {
	return &Watcher{file: configFile, debounce: time.Second, reload: reload}
}

// Run 阻塞直到 ctx 结束；监听目录以兼容编辑器的原子替换写法
func (w *Watcher) Run(ctx context.Context) error {
	absPath, err := filepath.Abs(w.file)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		return err
	}

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != absPath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				// 防抖处理
				timer.Reset(w.debounce)
			}
		case <-timer.C:
			cfg, err := config.LoadConfig(filepath.Dir(absPath))
			if err != nil {
				logger.Log.Error("Failed to reload config", zap.Error(err))
				continue
			}
			logger.Log.Info("Config reloaded", zap.String("file", absPath))
			w.reload(cfg)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Log.Error("Config watcher error", zap.Error(err))
		}
	}
}
