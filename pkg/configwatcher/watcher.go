package configwatcher

import (
	"context"
	"path/filepath"
	"time"

	"exam_client/internal/config"
	"exam_client/pkg/logger"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const debounce = time.Second

// Reloader 收到重新加载后的配置，不能阻塞
type Reloader func(cfg *config.Config)

// Watch 监听配置目录中的 config.yaml，写入后防抖 1s 重新加载并依次调用 reloaders。
// 监听目录而不是文件，编辑器替换文件后仍然有效。ctx 取消时返回
func Watch(ctx context.Context, configDir string, reloaders ...Reloader) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create config watcher")
	}
	defer watcher.Close()

	absDir, err := filepath.Abs(configDir)
	if err != nil {
		return errors.Wrap(err, "resolve config dir")
	}
	if err := watcher.Add(absDir); err != nil {
		return errors.Wrap(err, "watch config dir")
	}
	target := filepath.Join(absDir, "config.yaml")

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				timer.Reset(debounce)
			}
		case <-timer.C:
			newCfg, err := config.LoadConfig(configDir)
			if err != nil {
				logger.Log.Error("Failed to reload config", zap.Error(err))
				continue
			}
			logger.Log.Info("config reloaded", zap.String("path", target))
			for _, r := range reloaders {
				r(newCfg)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Log.Error("Config watcher error", zap.Error(err))
		}
	}
}
