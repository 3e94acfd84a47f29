package app

import (
	"sync"

	"drag-threshold/internal/config"
	"drag-threshold/internal/logger"
	"drag-threshold/internal/shutdown"
)

type Lifecycle struct {
	manager *shutdown.Manager
	logger  logger.Logger
	wg      sync.WaitGroup
	once    sync.Once
}

func NewLifecycle(manager *shutdown.Manager, log logger.Logger) *Lifecycle {
	l := &Lifecycle{
		manager: manager,
		logger:  log,
	}
	manager.Register(shutdown.Func(l.wg.Wait))
	return l
}

// StartWatcher runs w until shutdown.
func (l *Lifecycle) StartWatcher(w *config.Watcher) {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		if err := w.Run(l.manager.Context()); err != nil {
			l.logger.Error("Lifecycle", err, nil)
		}
	}()
}

// Listen forwards SIGINT/SIGTERM to onSignal after shutting down.
func (l *Lifecycle) Listen(onSignal func()) {
	l.manager.Listen(onSignal)
}

func (l *Lifecycle) Shutdown() {
	l.once.Do(func() {
		l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)
		l.manager.Shutdown()
		l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
	})
}
