package repository_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kohtao/scuba-reservation/internal/clock"
	"github.com/kohtao/scuba-reservation/internal/model"
	"github.com/kohtao/scuba-reservation/internal/repository"
)

var fixedClock = clock.Fixed{T: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)}

func newReservation(id, date string, total, paid int) model.Reservation {
	return model.Reservation{
		ID:           id,
		CustomerName: "Test Diver",
		Date:         date,
		TimeSlot:     "10:00",
		DiverCount:   1,
		CourseID:     "try-scuba",
		CourseName:   "Basic Diver",
		TotalPrice:   total,
		PaidAmount:   paid,
		Status:       model.StatusPending,
	}
}

func TestAdd_Success(t *testing.T) {
	repo := repository.NewReservationRepo()

	err := repo.Add(newReservation("res-a", "2026-03-14", 3250, 0))

	assert.NoError(t, err)
	got, ok := repo.Get("res-a")
	assert.True(t, ok)
	assert.Equal(t, "Test Diver", got.CustomerName)
}

func TestAdd_Fail_DuplicateID(t *testing.T) {
	repo := repository.NewReservationRepo()
	assert.NoError(t, repo.Add(newReservation("res-a", "2026-03-14", 3250, 0)))

	err := repo.Add(newReservation("res-a", "2026-03-15", 9500, 0))

	assert.ErrorIs(t, err, repository.ErrDuplicateID)
	assert.Len(t, repo.List(), 1)
}

func TestGet_Fail_UnknownID(t *testing.T) {
	repo := repository.NewReservationRepo()

	_, ok := repo.Get("res-missing")

	assert.False(t, ok)
}

func TestUpdate_ReplacesWholesale(t *testing.T) {
	repo := repository.NewReservationRepo()
	assert.NoError(t, repo.Add(newReservation("res-a", "2026-03-14", 3250, 0)))

	updated := newReservation("res-a", "2026-03-15", 9500, 9500)
	updated.Note = "moved to tomorrow"

	assert.True(t, repo.Update("res-a", updated))
	got, _ := repo.Get("res-a")
	assert.Equal(t, "2026-03-15", got.Date)
	assert.Equal(t, 9500, got.PaidAmount)
	assert.Equal(t, "moved to tomorrow", got.Note)
}

func TestUpdate_Fail_UnknownIDLeavesStoreUntouched(t *testing.T) {
	repo := repository.NewReservationRepo()
	assert.NoError(t, repo.Add(newReservation("res-a", "2026-03-14", 3250, 0)))

	assert.False(t, repo.Update("res-b", newReservation("res-b", "2026-03-14", 1500, 0)))
	assert.Len(t, repo.List(), 1)
}

func TestRemove_Success(t *testing.T) {
	repo := repository.NewReservationRepo()
	assert.NoError(t, repo.Add(newReservation("res-a", "2026-03-14", 3250, 0)))

	assert.True(t, repo.Remove("res-a"))
	_, ok := repo.Get("res-a")
	assert.False(t, ok)
}

func TestRemove_AbsentIDIsNoOp(t *testing.T) {
	repo := repository.NewReservationRepo()
	assert.NoError(t, repo.Add(newReservation("res-a", "2026-03-14", 3250, 0)))

	assert.False(t, repo.Remove("res-missing"))
	assert.Len(t, repo.List(), 1)
}

func TestAddPayment_Success(t *testing.T) {
	repo := repository.NewReservationRepo()
	assert.NoError(t, repo.Add(newReservation("res-a", "2026-03-14", 19000, 10000)))

	got, ok := repo.AddPayment("res-a", 9000)

	assert.True(t, ok)
	assert.Equal(t, 19000, got.PaidAmount)
	stored, _ := repo.Get("res-a")
	assert.Equal(t, 19000, stored.PaidAmount)
}

func TestAddPayment_Fail_UnknownIDLeavesStoreUntouched(t *testing.T) {
	repo := repository.NewReservationRepo()
	assert.NoError(t, repo.Add(newReservation("res-a", "2026-03-14", 19000, 10000)))

	_, ok := repo.AddPayment("res-missing", 9000)

	assert.False(t, ok)
	stored, _ := repo.Get("res-a")
	assert.Equal(t, 10000, stored.PaidAmount)
}

func TestAddPayment_ConcurrentPaymentsAllLand(t *testing.T) {
	repo := repository.NewReservationRepo()
	assert.NoError(t, repo.Add(newReservation("res-a", "2026-03-14", 19000, 0)))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			repo.AddPayment("res-a", 100)
		}()
	}
	wg.Wait()

	stored, _ := repo.Get("res-a")
	assert.Equal(t, 5000, stored.PaidAmount)
}

func TestByDate_KeepsInsertionOrder(t *testing.T) {
	repo := repository.NewReservationRepo()
	assert.NoError(t, repo.Add(newReservation("res-b", "2026-03-14", 3250, 0)))
	assert.NoError(t, repo.Add(newReservation("res-c", "2026-03-15", 3250, 0)))
	assert.NoError(t, repo.Add(newReservation("res-a", "2026-03-14", 3250, 0)))

	day := repo.ByDate("2026-03-14")

	assert.Len(t, day, 2)
	assert.Equal(t, "res-b", day[0].ID)
	assert.Equal(t, "res-a", day[1].ID)
	assert.Empty(t, repo.ByDate("2026-04-01"))
}

func TestStatsForDate_ExactPaymentDoesNotCount(t *testing.T) {
	repo := repository.NewReservationRepo()
	assert.NoError(t, repo.Add(newReservation("res-a", "2026-03-14", 19000, 10000)))
	assert.NoError(t, repo.Add(newReservation("res-b", "2026-03-14", 13000, 13000)))
	assert.NoError(t, repo.Add(newReservation("res-c", "2026-03-14", 1500, 2000)))
	assert.NoError(t, repo.Add(newReservation("res-d", "2026-03-15", 1500, 0)))

	stats := repo.StatsForDate("2026-03-14")

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.NeedPayment)
}

func TestUpcoming_ResolvesDayThroughClock(t *testing.T) {
	repo := repository.NewReservationRepo()
	assert.NoError(t, repo.Add(newReservation("res-today", "2026-03-14", 3250, 0)))
	assert.NoError(t, repo.Add(newReservation("res-tomorrow", "2026-03-15", 3250, 0)))

	today := repo.Upcoming(fixedClock, "today")
	tomorrow := repo.Upcoming(fixedClock, "tomorrow")

	assert.Len(t, today, 1)
	assert.Equal(t, "res-today", today[0].ID)
	assert.Len(t, tomorrow, 1)
	assert.Equal(t, "res-tomorrow", tomorrow[0].ID)
	// Anything that is not "tomorrow" is treated as today.
	assert.Equal(t, today, repo.Upcoming(fixedClock, "yesterday"))
}

func TestSeed_SplitsAcrossTodayAndTomorrow(t *testing.T) {
	repo := repository.NewReservationRepo()

	assert.NoError(t, repository.Seed(repo, fixedClock))

	assert.Len(t, repo.List(), 5)
	assert.Len(t, repo.ByDate(clock.Today(fixedClock)), 3)
	assert.Len(t, repo.ByDate(clock.Tomorrow(fixedClock)), 2)

	stats := repo.StatsForDate(clock.Today(fixedClock))
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.NeedPayment)
}

func TestSeed_Fail_AlreadySeeded(t *testing.T) {
	repo := repository.NewReservationRepo()
	assert.NoError(t, repository.Seed(repo, fixedClock))

	assert.ErrorIs(t, repository.Seed(repo, fixedClock), repository.ErrDuplicateID)
}
