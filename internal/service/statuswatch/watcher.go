// Package statuswatch detects externally-applied booking changes for
// signed-in owners by periodically re-reading their stored lists.
//
// Это polling-цикл, а не подписка: изменение гарантированно замечается не
// быстрее интервала опроса, а изменение с откатом внутри одного интервала
// невидимо.
package statuswatch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/WashE-BookingService/internal/domain"
)

// maxQueuedNotifications предел очереди уведомлений на владельца;
// при переполнении выбрасываются самые старые
const maxQueuedNotifications = 64

// BookingLoader интерфейс чтения списка бронирований владельца
type BookingLoader interface {
	Load(ctx context.Context, ownerID string) ([]domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Watcher опрашивает хранилище и копит уведомления о смене статусов
type Watcher struct {
	loader   BookingLoader
	interval time.Duration
	logger   Logger

	// onEmit вызывается для каждого эмитированного уведомления (метрики)
	onEmit func(domain.StatusNotification)

	mu        sync.Mutex
	snapshots map[string][]domain.Booking
	queues    map[string][]domain.StatusNotification
}

// New создает новый watcher с заданным интервалом опроса
func New(loader BookingLoader, interval time.Duration, logger Logger) *Watcher {
	return &Watcher{
		loader:    loader,
		interval:  interval,
		logger:    logger,
		snapshots: make(map[string][]domain.Booking),
		queues:    make(map[string][]domain.StatusNotification),
	}
}

// OnEmit устанавливает hook, вызываемый на каждое уведомление
func (w *Watcher) OnEmit(fn func(domain.StatusNotification)) {
	w.onEmit = fn
}

// Start запускает цикл опроса до отмены контекста
func (w *Watcher) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info("statuswatch: started, interval=%s", w.interval)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("statuswatch: stopped")
			return
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

// Watch регистрирует владельца для опроса и снимает начальный снапшот.
// Повторная регистрация уже наблюдаемого владельца является no-op.
func (w *Watcher) Watch(ctx context.Context, ownerID string) error {
	w.mu.Lock()
	_, watched := w.snapshots[ownerID]
	w.mu.Unlock()
	if watched {
		return nil
	}

	list, err := w.loader.Load(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("statuswatch: initial snapshot for owner=%s: %w", ownerID, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if _, watched := w.snapshots[ownerID]; !watched {
		w.snapshots[ownerID] = list
		w.logger.Info("statuswatch: watching owner=%s, %d bookings", ownerID, len(list))
	}
	return nil
}

// Unwatch снимает владельца с опроса и выбрасывает его очередь
func (w *Watcher) Unwatch(ownerID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.snapshots, ownerID)
	delete(w.queues, ownerID)
}

// Drain возвращает накопленные уведомления владельца и очищает очередь
func (w *Watcher) Drain(ownerID string) []domain.StatusNotification {
	w.mu.Lock()
	defer w.mu.Unlock()

	queued := w.queues[ownerID]
	delete(w.queues, ownerID)
	if queued == nil {
		return []domain.StatusNotification{}
	}
	return queued
}

// tick перечитывает список каждого наблюдаемого владельца и сверяет его
// с последним снапшотом
func (w *Watcher) tick(ctx context.Context) {
	w.mu.Lock()
	owners := make([]string, 0, len(w.snapshots))
	for owner := range w.snapshots {
		owners = append(owners, owner)
	}
	w.mu.Unlock()

	for _, owner := range owners {
		current, err := w.loader.Load(ctx, owner)
		if err != nil {
			w.logger.Error("statuswatch: failed to load bookings for owner=%s: %v", owner, err)
			continue
		}
		w.reconcile(owner, current)
	}
}

// reconcile сравнивает снапшоты и эмитирует по одному уведомлению на каждое
// бронирование, сменившее статус. Порядок эмиссии - порядок нового списка.
func (w *Watcher) reconcile(ownerID string, current []domain.Booking) {
	w.mu.Lock()
	defer w.mu.Unlock()

	previous, watched := w.snapshots[ownerID]
	if !watched {
		// Владелец снят с опроса конкурентным Unwatch
		return
	}

	if bookingListsEqual(previous, current) {
		return
	}

	byID := make(map[string]domain.BookingStatus, len(previous))
	for i := range previous {
		byID[previous[i].ID] = previous[i].Status
	}

	for i := range current {
		b := &current[i]
		oldStatus, existed := byID[b.ID]
		if !existed || oldStatus == b.Status {
			continue
		}

		n := domain.StatusNotification{
			OwnerID:  ownerID,
			Building: b.Building,
			Day:      b.Day,
			Time:     b.Time,
			Status:   b.Status,
			Label:    b.Status.Label(),
			Message:  fmt.Sprintf("%s, %s, %s is now %s", b.Building, b.Day, b.Time, b.Status.Label()),
		}

		queue := append(w.queues[ownerID], n)
		if len(queue) > maxQueuedNotifications {
			queue = queue[len(queue)-maxQueuedNotifications:]
		}
		w.queues[ownerID] = queue

		w.logger.Info("statuswatch: owner=%s booking=%s status %s -> %s", ownerID, b.ID, oldStatus, b.Status)
		if w.onEmit != nil {
			w.onEmit(n)
		}
	}

	w.snapshots[ownerID] = current
}

// bookingListsEqual структурное сравнение двух списков бронирований
func bookingListsEqual(a, b []domain.Booking) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !bookingsEqual(&a[i], &b[i]) {
			return false
		}
	}
	return true
}

func bookingsEqual(a, b *domain.Booking) bool {
	return a.ID == b.ID &&
		a.Building == b.Building &&
		a.Day == b.Day &&
		a.Time == b.Time &&
		a.Machines == b.Machines &&
		a.Status == b.Status &&
		strPtrEqual(a.Weight, b.Weight) &&
		strPtrEqual(a.Comment, b.Comment) &&
		strPtrEqual(a.AdminComment, b.AdminComment) &&
		a.CreatedAt.Equal(b.CreatedAt)
}

func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
