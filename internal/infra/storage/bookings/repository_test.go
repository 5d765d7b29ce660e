package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WashE-BookingService/internal/domain"
	"github.com/m04kA/WashE-BookingService/internal/infra/kvstore/memory"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestRepository() (*Repository, *memory.Store) {
	store := memory.NewStore()
	return NewRepository(store, nopLogger{}), store
}

func candidate(building, day, slot string) *domain.Booking {
	return &domain.Booking{Building: building, Day: day, Time: slot}
}

func TestRepository_Create_AssignsDefaults(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository()

	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return fixed }

	created, err := repo.Create(ctx, "alice@example.com", candidate("Building 36", "Monday", "10:00 AM"))
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, domain.StatusPending, created.Status)
	assert.Equal(t, domain.DefaultMachines, created.Machines)
	assert.Equal(t, fixed, created.CreatedAt)

	list, err := repo.Load(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
}

func TestRepository_Create_SlotConflict(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository()

	_, err := repo.Create(ctx, "alice@example.com", candidate("Building 36", "Monday", "10:00 AM"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, "alice@example.com", candidate("Building 36", "Monday", "10:00 AM"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotTaken)

	// Список не изменился
	list, err := repo.Load(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestRepository_Create_DifferentSlotsCoexist(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository()

	_, err := repo.Create(ctx, "alice@example.com", candidate("Building 36", "Monday", "10:00 AM"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, "alice@example.com", candidate("Building 36", "Monday", "11:00 AM"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, "alice@example.com", candidate("Building 39", "Monday", "10:00 AM"))
	require.NoError(t, err)

	list, err := repo.Load(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestRepository_Create_SameSlotDifferentOwners(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository()

	_, err := repo.Create(ctx, "alice@example.com", candidate("Building 36", "Monday", "10:00 AM"))
	require.NoError(t, err)

	// Конфликт проверяется только внутри списка одного владельца
	_, err = repo.Create(ctx, "bob@example.com", candidate("Building 36", "Monday", "10:00 AM"))
	require.NoError(t, err)
}

func TestRepository_Load_MissingKey(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository()

	list, err := repo.Load(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestRepository_Load_CorruptDataTreatedAsEmpty(t *testing.T) {
	ctx := context.Background()
	repo, store := newTestRepository()

	require.NoError(t, store.Set(ctx, domain.BookingsKey("alice@example.com"), "{not json"))

	list, err := repo.Load(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRepository_Remove_Idempotent(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository()

	created, err := repo.Create(ctx, "alice@example.com", candidate("Building 36", "Monday", "10:00 AM"))
	require.NoError(t, err)

	require.NoError(t, repo.Remove(ctx, "alice@example.com", created.ID))
	require.NoError(t, repo.Remove(ctx, "alice@example.com", created.ID))
	require.NoError(t, repo.Remove(ctx, "alice@example.com", "no-such-id"))

	list, err := repo.Load(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRepository_SetStatus(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository()

	created, err := repo.Create(ctx, "alice@example.com", candidate("Building 36", "Monday", "10:00 AM"))
	require.NoError(t, err)

	require.NoError(t, repo.SetStatus(ctx, "alice@example.com", created.ID, domain.StatusCompleted))

	list, err := repo.Load(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, domain.StatusCompleted, list[0].Status)
}

func TestRepository_SetStatus_NotFound(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository()

	err := repo.SetStatus(ctx, "alice@example.com", "no-such-id", domain.StatusCompleted)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_SetAdminComment(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository()

	created, err := repo.Create(ctx, "alice@example.com", candidate("Building 36", "Monday", "10:00 AM"))
	require.NoError(t, err)

	require.NoError(t, repo.SetAdminComment(ctx, "alice@example.com", created.ID, "machine 2 is broken"))

	list, err := repo.Load(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].AdminComment)
	assert.Equal(t, "machine 2 is broken", *list[0].AdminComment)

	// Пустая строка очищает комментарий
	require.NoError(t, repo.SetAdminComment(ctx, "alice@example.com", created.ID, ""))
	list, err = repo.Load(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Nil(t, list[0].AdminComment)
}

func TestRepository_Save_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository()

	weight := "5 kg"
	in := []domain.Booking{
		{
			ID:        "b1",
			Building:  "Building 39",
			Day:       "Friday",
			Time:      "06:00 PM",
			Machines:  2,
			Weight:    &weight,
			Status:    domain.StatusInProgress,
			CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		},
	}

	require.NoError(t, repo.Save(ctx, "alice@example.com", in))

	out, err := repo.Load(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
