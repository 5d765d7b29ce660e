package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/WashE-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/WashE-BookingService/internal/infra/storage/bookings"
)

// UseCase use case создания бронирования
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет создание бронирования.
// Проверка занятости слота выполняется репозиторием при создании;
// конкурирующая запись между проверкой и сохранением не детектируется,
// побеждает последняя запись.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: owner=%s, building=%s, day=%s, time=%s, machines=%d",
		req.OwnerID, req.Building, req.Day, req.Time, req.Machines)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed for owner=%s: %v", req.OwnerID, err)
		return nil, err
	}

	// 2. Собираем кандидата
	candidate := &domain.Booking{
		Building: req.Building,
		Day:      req.Day,
		Time:     req.Time,
		Machines: req.Machines,
		Weight:   normalizeOptional(req.Weight),
		Comment:  normalizeOptional(req.Comment),
	}

	// 3. Создаем через репозиторий (конфликт слота проверяется там)
	created, err := uc.bookingRepo.Create(ctx, req.OwnerID, candidate)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			uc.logger.Warn("CreateBooking: slot taken for owner=%s: %s / %s / %s",
				req.OwnerID, req.Building, req.Day, req.Time)
			return nil, fmt.Errorf("%w: %s, %s, %s", ErrSlotTaken, req.Building, req.Day, req.Time)
		}
		uc.logger.Error("CreateBooking: repository error for owner=%s: %v", req.OwnerID, err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s for owner=%s", created.ID, req.OwnerID)
	return fromDomain(created), nil
}
