package service

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

type Manager struct {
	ctx       context.Context
	cancel    context.CancelFunc
	wg        *sync.WaitGroup
	mu        sync.Mutex
	teardowns []func()
}

var manager *Manager
var once sync.Once

func GetTeardownManager() *Manager {
	once.Do(func() {
		ctx, cancel := context.WithCancel(context.Background())
		manager = &Manager{
			ctx:    ctx,
			cancel: cancel,
			wg:     &sync.WaitGroup{},
		}
		go manager.listen()
	})
	return manager
}

func (m *Manager) listen() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigs:
		m.cancel()
	case <-m.ctx.Done():
	}
}

func (m *Manager) Context() context.Context {
	return m.ctx
}

func (m *Manager) WaitGroup() *sync.WaitGroup {
	return m.wg
}

func (m *Manager) TeardownFunc(f func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.teardowns = append(m.teardowns, f)
}

// Wait blocks until shutdown is requested and every registered worker has returned, then runs teardown functions in
// reverse registration order.
func (m *Manager) Wait() {
	<-m.ctx.Done()
	m.wg.Wait()

	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.teardowns) - 1; i >= 0; i-- {
		m.teardowns[i]()
	}
}
