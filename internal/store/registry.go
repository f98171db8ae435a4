// groop-admin/internal/store/registry.go
package store

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zafarich/groop-admin/internal/groupform"
)

// Registry держит живые черновики формы в памяти. Черновик существует ровно
// одну сессию заполнения: создаётся при открытии формы, удаляется при отмене,
// закрытии диалога подключения или по TTL, если пользователь просто ушёл.
// Никакого долговременного хранилища у черновиков нет.
type Registry struct {
	mu     sync.RWMutex
	drafts map[string]*entry
	ttl    time.Duration
	stop   chan struct{}
}

type entry struct {
	form    *groupform.Form
	touched time.Time
}

// NewRegistry создаёт реестр и запускает фоновую уборку протухших черновиков.
func NewRegistry(ttl time.Duration) *Registry {
	r := &Registry{
		drafts: make(map[string]*entry),
		ttl:    ttl,
		stop:   make(chan struct{}),
	}
	go r.sweepLoop()
	return r
}

// Close останавливает фоновую уборку. Повторный вызов паникует.
func (r *Registry) Close() {
	close(r.stop)
}

// Create регистрирует свежий черновик и возвращает его идентификатор.
func (r *Registry) Create() (string, *groupform.Form) {
	id := uuid.NewString()
	f := groupform.New()

	r.mu.Lock()
	r.drafts[id] = &entry{form: f, touched: time.Now()}
	r.mu.Unlock()
	return id, f
}

// Get возвращает черновик по идентификатору, продлевая его жизнь.
func (r *Registry) Get(id string) (*groupform.Form, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.drafts[id]
	if !ok {
		return nil, false
	}
	e.touched = time.Now()
	return e.form, true
}

// Delete выбрасывает черновик.
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	delete(r.drafts, id)
	r.mu.Unlock()
}

func (r *Registry) sweepLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if n := r.evictExpired(time.Now()); n > 0 {
				slog.Info("Удалены брошенные черновики групп", "count", n)
			}
		case <-r.stop:
			return
		}
	}
}

func (r *Registry) evictExpired(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	evicted := 0
	for id, e := range r.drafts {
		if now.Sub(e.touched) > r.ttl {
			delete(r.drafts, id)
			evicted++
		}
	}
	return evicted
}
