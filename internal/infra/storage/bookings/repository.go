package bookings

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/WashE-BookingService/internal/domain"
)

// Repository репозиторий списков бронирований.
//
// Каждый владелец хранится под отдельным ключом bookings_<ownerId> в виде
// JSON-массива. Любая мутация перечитывает и перезаписывает список целиком,
// частичных обновлений нет. Конкурентные писатели (пользователь и админ в
// разных сессиях) не координируются: последняя запись побеждает.
type Repository struct {
	store KVStore
	log   Logger
	now   func() time.Time
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(store KVStore, log Logger) *Repository {
	return &Repository{
		store: store,
		log:   log,
		now:   time.Now,
	}
}

// Load возвращает список бронирований владельца.
// Повреждённые данные не являются ошибкой: список считается пустым,
// аномалия логируется.
func (r *Repository) Load(ctx context.Context, ownerID string) ([]domain.Booking, error) {
	raw, ok, err := r.store.Get(ctx, domain.BookingsKey(ownerID))
	if err != nil {
		return nil, fmt.Errorf("%w: Load - get key: %v", ErrStorage, err)
	}
	if !ok {
		return []domain.Booking{}, nil
	}

	var list []domain.Booking
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		r.log.Warn("Load: corrupt booking list for owner=%s, treating as empty: %v", ownerID, err)
		return []domain.Booking{}, nil
	}
	if list == nil {
		list = []domain.Booking{}
	}

	return list, nil
}

// Save сериализует и перезаписывает весь список бронирований владельца
func (r *Repository) Save(ctx context.Context, ownerID string, list []domain.Booking) error {
	if list == nil {
		list = []domain.Booking{}
	}

	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("%w: Save - marshal list: %v", ErrEncode, err)
	}

	if err := r.store.Set(ctx, domain.BookingsKey(ownerID), string(raw)); err != nil {
		return fmt.Errorf("%w: Save - set key: %v", ErrStorage, err)
	}
	return nil
}

// Create добавляет бронирование в список владельца.
// Тройка (корпус, день, время) проверяется на уникальность только здесь,
// при создании; правки существующих бронирований её не перепроверяют.
func (r *Repository) Create(ctx context.Context, ownerID string, candidate *domain.Booking) (*domain.Booking, error) {
	list, err := r.Load(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	for i := range list {
		if list[i].SameSlot(candidate) {
			return nil, fmt.Errorf("%w: %s, %s, %s", ErrSlotTaken, candidate.Building, candidate.Day, candidate.Time)
		}
	}

	stored := *candidate
	stored.ID = uuid.NewString()
	stored.Status = domain.StatusPending
	stored.CreatedAt = r.now().UTC()
	if stored.Machines == 0 {
		stored.Machines = domain.DefaultMachines
	}

	list = append(list, stored)
	if err := r.Save(ctx, ownerID, list); err != nil {
		return nil, err
	}

	return &stored, nil
}

// Remove удаляет бронирование из списка владельца.
// Удаление отсутствующего id является no-op, список при этом переписывается.
func (r *Repository) Remove(ctx context.Context, ownerID string, bookingID string) error {
	list, err := r.Load(ctx, ownerID)
	if err != nil {
		return err
	}

	filtered := make([]domain.Booking, 0, len(list))
	for _, b := range list {
		if b.ID != bookingID {
			filtered = append(filtered, b)
		}
	}

	return r.Save(ctx, ownerID, filtered)
}

// SetStatus заменяет статус бронирования.
// Если id не найден, возвращает ErrBookingNotFound; вызывающая сторона
// логирует и не транслирует это в UI как ошибку.
func (r *Repository) SetStatus(ctx context.Context, ownerID string, bookingID string, status domain.BookingStatus) error {
	return r.update(ctx, ownerID, bookingID, func(b *domain.Booking) {
		b.Status = status
	})
}

// SetAdminComment заменяет комментарий администратора у бронирования
func (r *Repository) SetAdminComment(ctx context.Context, ownerID string, bookingID string, comment string) error {
	return r.update(ctx, ownerID, bookingID, func(b *domain.Booking) {
		if comment == "" {
			b.AdminComment = nil
			return
		}
		b.AdminComment = &comment
	})
}

// update находит бронирование по id, применяет мутацию и переписывает список
func (r *Repository) update(ctx context.Context, ownerID string, bookingID string, mutate func(*domain.Booking)) error {
	list, err := r.Load(ctx, ownerID)
	if err != nil {
		return err
	}

	found := false
	for i := range list {
		if list[i].ID == bookingID {
			mutate(&list[i])
			found = true
			break
		}
	}

	if !found {
		return ErrBookingNotFound
	}

	return r.Save(ctx, ownerID, list)
}
