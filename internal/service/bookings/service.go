package bookings

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/WashE-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/WashE-BookingService/internal/infra/storage/bookings"
	"github.com/m04kA/WashE-BookingService/internal/service/bookings/models"
)

// Service сервис операций владельца над собственными бронированиями
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// List возвращает бронирования владельца, новые сверху
func (s *Service) List(ctx context.Context, ownerID string) (*models.BookingListResponse, error) {
	list, err := s.bookingRepo.Load(ctx, ownerID)
	if err != nil {
		s.logger.Error("List: repository error for owner=%s: %v", ownerID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})

	return models.FromDomainBookingList(list), nil
}

// Delete удаляет бронирование владельца.
// Удаление отсутствующего id является no-op: повторный вызов идемпотентен.
func (s *Service) Delete(ctx context.Context, ownerID string, bookingID string) error {
	s.logger.Info("Delete: removing booking id=%s for owner=%s", bookingID, ownerID)

	if err := s.bookingRepo.Remove(ctx, ownerID, bookingID); err != nil {
		s.logger.Error("Delete: repository error for owner=%s: %v", ownerID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}
	return nil
}

// AdvanceStatus переводит бронирование на следующий шаг цикла самообслуживания:
// pending -> in-progress -> completed -> pending.
// Прямые правки статуса администратором не координируются с этим путем:
// оба переписывают одно поле без проверки версий.
func (s *Service) AdvanceStatus(ctx context.Context, ownerID string, bookingID string) (*models.BookingResponse, error) {
	list, err := s.bookingRepo.Load(ctx, ownerID)
	if err != nil {
		s.logger.Error("AdvanceStatus: repository error for owner=%s: %v", ownerID, err)
		return nil, fmt.Errorf("%w: AdvanceStatus - repository error: %v", ErrInternal, err)
	}

	var current *domain.Booking
	for i := range list {
		if list[i].ID == bookingID {
			current = &list[i]
			break
		}
	}
	if current == nil {
		s.logger.Warn("AdvanceStatus: booking id=%s not found for owner=%s", bookingID, ownerID)
		return nil, ErrBookingNotFound
	}

	next := current.Status.Next()
	if err := s.bookingRepo.SetStatus(ctx, ownerID, bookingID, next); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("AdvanceStatus: booking id=%s disappeared during update for owner=%s", bookingID, ownerID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("AdvanceStatus: repository error for owner=%s: %v", ownerID, err)
		return nil, fmt.Errorf("%w: AdvanceStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AdvanceStatus: booking id=%s for owner=%s moved %s -> %s",
		bookingID, ownerID, current.Status, next)

	updated := *current
	updated.Status = next
	return models.FromDomainBooking(&updated), nil
}
