package create_booking

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WashE-BookingService/internal/domain"
	"github.com/m04kA/WashE-BookingService/internal/infra/kvstore/memory"
	bookingsRepo "github.com/m04kA/WashE-BookingService/internal/infra/storage/bookings"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase() *UseCase {
	repo := bookingsRepo.NewRepository(memory.NewStore(), nopLogger{})
	return NewUseCase(repo, nopLogger{})
}

func validRequest() *Request {
	return &Request{
		OwnerID:  "alice@example.com",
		Building: "Building 36",
		Day:      "Monday",
		Time:     "10:00 AM",
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	uc := newTestUseCase()

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Building 36", resp.Building)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, "Pending", resp.StatusLabel)
	assert.Equal(t, domain.DefaultMachines, resp.Machines)
	assert.False(t, resp.CreatedAt.IsZero())
}

func TestUseCase_Execute_SlotTaken(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	_, err := uc.Execute(ctx, validRequest())
	require.NoError(t, err)

	_, err = uc.Execute(ctx, validRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestUseCase_Execute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{"unknown building", func(r *Request) { r.Building = "Building 1" }, ErrInvalidBuilding},
		{"empty building", func(r *Request) { r.Building = "" }, ErrInvalidBuilding},
		{"unknown day", func(r *Request) { r.Day = "Someday" }, ErrInvalidDay},
		{"unknown time", func(r *Request) { r.Time = "25:00 PM" }, ErrInvalidTime},
		{"machines too many", func(r *Request) { r.Machines = 4 }, ErrInvalidMachines},
		{"machines negative", func(r *Request) { r.Machines = -1 }, ErrInvalidMachines},
		{
			"comment too long",
			func(r *Request) {
				long := strings.Repeat("x", domain.MaxCommentLength+1)
				r.Comment = &long
			},
			ErrCommentTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(ctx, req)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUseCase_Execute_MachinesBounds(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	req := validRequest()
	req.Machines = domain.MaxMachines
	resp, err := uc.Execute(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, domain.MaxMachines, resp.Machines)

	req = validRequest()
	req.Time = "11:00 AM"
	req.Machines = domain.MinMachines
	resp, err = uc.Execute(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, domain.MinMachines, resp.Machines)
}

func TestUseCase_Execute_TrimsOptionalFields(t *testing.T) {
	uc := newTestUseCase()

	req := validRequest()
	req.Weight = ptrStr("  5 kg  ")
	req.Comment = ptrStr("   ")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, resp.Weight)
	assert.Equal(t, "5 kg", *resp.Weight)
	// Пустой после trim комментарий не сохраняется
	assert.Nil(t, resp.Comment)
}

func ptrStr(s string) *string { return &s }
