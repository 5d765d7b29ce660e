package admin

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WashE-BookingService/internal/domain"
	"github.com/m04kA/WashE-BookingService/internal/infra/kvstore/memory"
	bookingsRepo "github.com/m04kA/WashE-BookingService/internal/infra/storage/bookings"
	"github.com/m04kA/WashE-BookingService/internal/service/admin/models"
	"github.com/m04kA/WashE-BookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(t *testing.T) (*Service, *bookingsRepo.Repository) {
	t.Helper()
	store := memory.NewStore()
	repo := bookingsRepo.NewRepository(store, nopLogger{})
	return NewService(repo, store, nopLogger{}), repo
}

func seedTwoOwners(t *testing.T, repo *bookingsRepo.Repository) {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, "alice@example.com", []domain.Booking{
		{ID: "a1", Building: "Building 36", Day: "Monday", Time: "10:00 AM",
			Status: domain.StatusPending, CreatedAt: base},
		{ID: "a2", Building: "Building 39", Day: "Tuesday", Time: "11:00 AM",
			Status: domain.StatusCompleted, CreatedAt: base.Add(2 * time.Hour)},
	}))
	require.NoError(t, repo.Save(ctx, "bob@example.com", []domain.Booking{
		{ID: "b1", Building: "Building 36", Day: "Monday", Time: "12:00 PM",
			Status: domain.StatusPending, CreatedAt: base.Add(time.Hour)},
	}))
}

func TestService_LoadAll_TagsOwnersAndSortsNewestFirst(t *testing.T) {
	svc, repo := newTestService(t)
	seedTwoOwners(t, repo)

	resp, err := svc.LoadAll(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 3)

	assert.Equal(t, "a2", resp.Bookings[0].ID)
	assert.Equal(t, "alice@example.com", resp.Bookings[0].OwnerID)
	assert.Equal(t, "b1", resp.Bookings[1].ID)
	assert.Equal(t, "bob@example.com", resp.Bookings[1].OwnerID)
	assert.Equal(t, "a1", resp.Bookings[2].ID)
}

func TestService_LoadAll_FilterIsConjunction(t *testing.T) {
	svc, repo := newTestService(t)
	seedTwoOwners(t, repo)
	ctx := context.Background()

	resp, err := svc.LoadAll(ctx, &models.ListAllRequest{Status: ptr.Ptr("pending")})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, "b1", resp.Bookings[0].ID)
	assert.Equal(t, "a1", resp.Bookings[1].ID)

	resp, err = svc.LoadAll(ctx, &models.ListAllRequest{
		Status:   ptr.Ptr("pending"),
		Building: ptr.Ptr("Building 36"),
	})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 2)

	resp, err = svc.LoadAll(ctx, &models.ListAllRequest{
		Status:   ptr.Ptr("completed"),
		Building: ptr.Ptr("Building 36"),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Bookings)
}

func TestService_LoadAll_InvalidFilter(t *testing.T) {
	svc, repo := newTestService(t)
	seedTwoOwners(t, repo)
	ctx := context.Background()

	_, err := svc.LoadAll(ctx, &models.ListAllRequest{Status: ptr.Ptr("done")})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidFilter)

	_, err = svc.LoadAll(ctx, &models.ListAllRequest{Building: ptr.Ptr("Building 1")})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestService_SetStatus_ReturnsReloadedAggregate(t *testing.T) {
	svc, repo := newTestService(t)
	seedTwoOwners(t, repo)

	resp, err := svc.SetStatus(context.Background(), "alice@example.com", "a1", "in-progress")
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 3)

	for _, b := range resp.Bookings {
		if b.ID == "a1" {
			assert.Equal(t, "in-progress", b.Status)
			assert.Equal(t, "In Progress", b.StatusLabel)
		}
	}
}

func TestService_SetStatus_InvalidStatus(t *testing.T) {
	svc, repo := newTestService(t)
	seedTwoOwners(t, repo)

	_, err := svc.SetStatus(context.Background(), "alice@example.com", "a1", "done")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestService_SetStatus_MissingBookingIsNoOp(t *testing.T) {
	svc, repo := newTestService(t)
	seedTwoOwners(t, repo)

	resp, err := svc.SetStatus(context.Background(), "alice@example.com", "no-such-id", "completed")
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 3)
}

func TestService_SetAdminComment(t *testing.T) {
	svc, repo := newTestService(t)
	seedTwoOwners(t, repo)

	resp, err := svc.SetAdminComment(context.Background(), "bob@example.com", "b1", "bring your own detergent")
	require.NoError(t, err)

	for _, b := range resp.Bookings {
		if b.ID == "b1" {
			require.NotNil(t, b.AdminComment)
			assert.Equal(t, "bring your own detergent", *b.AdminComment)
		}
	}
}

func TestService_Remove_ReturnsReloadedAggregate(t *testing.T) {
	svc, repo := newTestService(t)
	seedTwoOwners(t, repo)

	resp, err := svc.Remove(context.Background(), "alice@example.com", "a1")
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 2)
	for _, b := range resp.Bookings {
		assert.NotEqual(t, "a1", b.ID)
	}

	// Повторное удаление идемпотентно
	resp, err = svc.Remove(context.Background(), "alice@example.com", "a1")
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)
}
