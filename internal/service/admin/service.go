package admin

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/WashE-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/WashE-BookingService/internal/infra/storage/bookings"
	"github.com/m04kA/WashE-BookingService/internal/service/admin/models"
)

// Service агрегатор бронирований по всем владельцам.
//
// Собственной копии данных у агрегатора нет: каждое чтение перечисляет ключи
// bookings_* и собирает списки владельцев заново, каждая мутация делегируется
// репозиторию конкретного владельца и завершается полной пересборкой
// агрегата, инкрементального пути нет.
type Service struct {
	bookingRepo BookingRepository
	keys        KeyEnumerator
	logger      Logger
}

// NewService создает новый экземпляр сервиса агрегатора
func NewService(bookingRepo BookingRepository, keys KeyEnumerator, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		keys:        keys,
		logger:      logger,
	}
}

// LoadAll возвращает бронирования всех владельцев, новые сверху,
// опционально отфильтрованные по статусу и корпусу.
// Нечитаемый список отдельного владельца пропускается (репозиторий
// логирует аномалию и возвращает пустой список), агрегация продолжается.
func (s *Service) LoadAll(ctx context.Context, req *models.ListAllRequest) (*models.AggregateListResponse, error) {
	filter, err := toDomainFilter(req)
	if err != nil {
		s.logger.Warn("LoadAll: invalid filter: %v", err)
		return nil, err
	}

	all, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	// Фильтрация чистая: порядок исходной последовательности сохраняется
	filtered := make([]domain.OwnedBooking, 0, len(all))
	for _, b := range all {
		if filter.Matches(&b.Booking) {
			filtered = append(filtered, b)
		}
	}

	return models.FromOwnedBookingList(filtered), nil
}

// SetStatus устанавливает статус бронирования владельца напрямую
// (администратору доступен любой переход) и возвращает пересобранный агрегат.
// Отсутствующий id не является ошибкой для UI: логируется и пропускается.
func (s *Service) SetStatus(ctx context.Context, ownerID, bookingID, status string) (*models.AggregateListResponse, error) {
	newStatus := domain.BookingStatus(status)
	if !newStatus.IsValid() {
		s.logger.Warn("SetStatus: invalid status=%s for owner=%s booking=%s", status, ownerID, bookingID)
		return nil, ErrInvalidStatus
	}

	s.logger.Info("SetStatus: owner=%s booking=%s -> %s", ownerID, bookingID, newStatus)

	if err := s.bookingRepo.SetStatus(ctx, ownerID, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("SetStatus: booking id=%s not found for owner=%s, no-op", bookingID, ownerID)
		} else {
			s.logger.Error("SetStatus: repository error for owner=%s: %v", ownerID, err)
			return nil, fmt.Errorf("%w: SetStatus - repository error: %v", ErrInternal, err)
		}
	}

	return s.reload(ctx)
}

// SetAdminComment устанавливает комментарий администратора и возвращает
// пересобранный агрегат. Отсутствующий id логируется и пропускается.
func (s *Service) SetAdminComment(ctx context.Context, ownerID, bookingID, comment string) (*models.AggregateListResponse, error) {
	s.logger.Info("SetAdminComment: owner=%s booking=%s", ownerID, bookingID)

	if err := s.bookingRepo.SetAdminComment(ctx, ownerID, bookingID, comment); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("SetAdminComment: booking id=%s not found for owner=%s, no-op", bookingID, ownerID)
		} else {
			s.logger.Error("SetAdminComment: repository error for owner=%s: %v", ownerID, err)
			return nil, fmt.Errorf("%w: SetAdminComment - repository error: %v", ErrInternal, err)
		}
	}

	return s.reload(ctx)
}

// Remove удаляет бронирование владельца и возвращает пересобранный агрегат.
// Удаление отсутствующего id идемпотентно.
func (s *Service) Remove(ctx context.Context, ownerID, bookingID string) (*models.AggregateListResponse, error) {
	s.logger.Info("Remove: owner=%s booking=%s", ownerID, bookingID)

	if err := s.bookingRepo.Remove(ctx, ownerID, bookingID); err != nil {
		s.logger.Error("Remove: repository error for owner=%s: %v", ownerID, err)
		return nil, fmt.Errorf("%w: Remove - repository error: %v", ErrInternal, err)
	}

	return s.reload(ctx)
}

// loadAll перечисляет все ключи списков бронирований, помечает каждую запись
// владельцем и сортирует результат по createdAt по убыванию
func (s *Service) loadAll(ctx context.Context) ([]domain.OwnedBooking, error) {
	keys, err := s.keys.Keys(ctx, domain.BookingsKeyPrefix)
	if err != nil {
		s.logger.Error("loadAll: failed to enumerate booking keys: %v", err)
		return nil, fmt.Errorf("%w: loadAll - enumerate keys: %v", ErrInternal, err)
	}

	all := make([]domain.OwnedBooking, 0)
	for _, key := range keys {
		ownerID := domain.OwnerFromKey(key)

		list, err := s.bookingRepo.Load(ctx, ownerID)
		if err != nil {
			s.logger.Warn("loadAll: skipping owner=%s: %v", ownerID, err)
			continue
		}

		for i := range list {
			all = append(all, domain.OwnedBooking{Booking: list[i], OwnerID: ownerID})
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	return all, nil
}

// reload пересобирает нефильтрованный агрегат после мутации
func (s *Service) reload(ctx context.Context) (*models.AggregateListResponse, error) {
	all, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	return models.FromOwnedBookingList(all), nil
}

// toDomainFilter валидирует и конвертирует параметры фильтра
func toDomainFilter(req *models.ListAllRequest) (domain.AggregateFilter, error) {
	var filter domain.AggregateFilter
	if req == nil {
		return filter, nil
	}

	if req.Status != nil {
		status := domain.BookingStatus(*req.Status)
		if !status.IsValid() {
			return filter, fmt.Errorf("%w: status=%s", ErrInvalidFilter, *req.Status)
		}
		filter.Status = &status
	}

	if req.Building != nil {
		if !domain.IsValidBuilding(*req.Building) {
			return filter, fmt.Errorf("%w: building=%s", ErrInvalidFilter, *req.Building)
		}
		filter.Building = req.Building
	}

	return filter, nil
}
