package usecase_test

import (
	"errors"
	"testing"
	"time"

	"cinema-reservation/internal/data/entity"
	"cinema-reservation/internal/data/repository"
	"cinema-reservation/internal/dto/request"
	"cinema-reservation/internal/usecase"
	"cinema-reservation/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type holdFixture struct {
	svc      usecase.HoldService
	m        *repoMocks
	clock    *utils.FixedClock
	showtime *entity.Showtime
}

func newHoldFixture(t *testing.T) *holdFixture {
	repo, m := newRepo(t)
	clock := &utils.FixedClock{T: baseTime}
	return &holdFixture{
		svc:      usecase.NewHoldService(repo, bookingConfig(), clock, nopLogger()),
		m:        m,
		clock:    clock,
		showtime: newShowtime(2 * time.Hour),
	}
}

// expectClean stubs the purge and displacement steps with empty results.
func (f *holdFixture) expectClean(seatIDs []uuid.UUID) {
	f.m.hold.On("ReleaseExpiredForSeats", mock.Anything, seatIDs, baseTime).Return(int64(0), nil)
	f.m.seatSale.On("CloseForCancelledBookings", mock.Anything, seatIDs, baseTime).Return(int64(0), nil)
	f.m.hold.On("LockActiveBySeats", mock.Anything, seatIDs, baseTime).Return(nil, nil)
	f.m.seatSale.On("LockActiveBySeats", mock.Anything, seatIDs).Return(nil, nil)
}

func TestHold_Success(t *testing.T) {
	f := newHoldFixture(t)
	holder := uuid.New()
	seat := newSeatRow(f.showtime.ID, "A", 1, entity.SeatTypeStandard)
	seatIDs := idsOf(seat)

	f.m.showtime.On("FindByID", mock.Anything, f.showtime.ID).Return(f.showtime, nil)
	f.m.showtimeSeat.On("FindByIDs", mock.Anything, seatIDs).Return([]*entity.ShowtimeSeat{seat}, nil)
	f.m.showtimeSeat.On("LockByIDs", mock.Anything, seatIDs).Return([]*entity.ShowtimeSeat{seat}, nil)
	f.expectClean(seatIDs)
	f.m.hold.On("CreateBatch", mock.Anything, mock.MatchedBy(func(holds []*entity.Hold) bool {
		return len(holds) == 1 &&
			holds[0].ShowtimeSeatID == seat.ID &&
			holds[0].Status == entity.HoldStatusHeld &&
			*holds[0].HolderID == holder &&
			holds[0].ExpiresAt.Equal(baseTime.Add(10*time.Minute))
	})).Return(nil)

	resp, err := f.svc.Hold(ctx(), f.showtime.ID.String(), &holder, &request.CreateHoldRequest{
		SeatIDs: []string{seat.ID.String()},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.HoldToken)
	assert.Equal(t, []string{seat.ID.String()}, resp.SeatIDs)
	assert.True(t, resp.ExpiresAt.Equal(baseTime.Add(10*time.Minute)))
}

func TestHold_ExpandsCouplePartner(t *testing.T) {
	f := newHoldFixture(t)
	left := newSeatRow(f.showtime.ID, "H", 3, entity.SeatTypeCouple)
	right := newSeatRow(f.showtime.ID, "H", 4, entity.SeatTypeCouple)
	pair := idsOf(left, right)

	f.m.showtime.On("FindByID", mock.Anything, f.showtime.ID).Return(f.showtime, nil)
	f.m.showtimeSeat.On("FindByIDs", mock.Anything, []uuid.UUID{right.ID}).Return([]*entity.ShowtimeSeat{right}, nil)
	f.m.showtimeSeat.On("FindByPositions", mock.Anything, f.showtime.ID, []repository.SeatPosition{
		{RowLabel: "H", SeatNumber: 3},
	}).Return([]*entity.ShowtimeSeat{left}, nil)
	f.m.showtimeSeat.On("LockByIDs", mock.Anything, pair).Return([]*entity.ShowtimeSeat{left, right}, nil)
	f.expectClean(pair)
	f.m.hold.On("CreateBatch", mock.Anything, mock.MatchedBy(func(holds []*entity.Hold) bool {
		return len(holds) == 2 && holds[0].Token == holds[1].Token && holds[0].HolderID == nil
	})).Return(nil)

	resp, err := f.svc.Hold(ctx(), f.showtime.ID.String(), nil, &request.CreateHoldRequest{
		SeatIDs: []string{right.ID.String()},
	})

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{left.ID.String(), right.ID.String()}, resp.SeatIDs)
}

func TestHold_Validation(t *testing.T) {
	f := newHoldFixture(t)

	tests := []struct {
		name     string
		showtime string
		req      *request.CreateHoldRequest
	}{
		{"no seats", f.showtime.ID.String(), &request.CreateHoldRequest{}},
		{"bad seat id", f.showtime.ID.String(), &request.CreateHoldRequest{SeatIDs: []string{"A1"}}},
		{"bad showtime id", "not-a-uuid", &request.CreateHoldRequest{SeatIDs: []string{uuid.NewString()}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Hold(ctx(), tt.showtime, nil, tt.req)
			assert.ErrorIs(t, err, entity.ErrValidation)
		})
	}
}

func TestHold_InactiveShowtime(t *testing.T) {
	f := newHoldFixture(t)
	f.showtime.IsActive = false
	f.m.showtime.On("FindByID", mock.Anything, f.showtime.ID).Return(f.showtime, nil)

	_, err := f.svc.Hold(ctx(), f.showtime.ID.String(), nil, &request.CreateHoldRequest{
		SeatIDs: []string{uuid.NewString()},
	})

	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestHold_StartedShowtime(t *testing.T) {
	f := newHoldFixture(t)
	f.showtime.StartsAt = baseTime
	seat := newSeatRow(f.showtime.ID, "A", 1, entity.SeatTypeStandard)
	seatIDs := idsOf(seat)

	f.m.showtime.On("FindByID", mock.Anything, f.showtime.ID).Return(f.showtime, nil)
	f.m.showtimeSeat.On("FindByIDs", mock.Anything, seatIDs).Return([]*entity.ShowtimeSeat{seat}, nil)
	f.m.showtimeSeat.On("LockByIDs", mock.Anything, seatIDs).Return([]*entity.ShowtimeSeat{seat}, nil)

	_, err := f.svc.Hold(ctx(), f.showtime.ID.String(), nil, &request.CreateHoldRequest{
		SeatIDs: []string{seat.ID.String()},
	})

	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestHold_SeatOfOtherShowtime(t *testing.T) {
	f := newHoldFixture(t)
	seat := newSeatRow(uuid.New(), "A", 1, entity.SeatTypeStandard)
	seatIDs := idsOf(seat)

	f.m.showtime.On("FindByID", mock.Anything, f.showtime.ID).Return(f.showtime, nil)
	f.m.showtimeSeat.On("FindByIDs", mock.Anything, seatIDs).Return([]*entity.ShowtimeSeat{seat}, nil)
	f.m.showtimeSeat.On("LockByIDs", mock.Anything, seatIDs).Return([]*entity.ShowtimeSeat{seat}, nil)

	_, err := f.svc.Hold(ctx(), f.showtime.ID.String(), nil, &request.CreateHoldRequest{
		SeatIDs: []string{seat.ID.String()},
	})

	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestHold_DisabledSeat(t *testing.T) {
	f := newHoldFixture(t)
	seat := newSeatRow(f.showtime.ID, "A", 1, entity.SeatTypeStandard)
	seat.IsDisabled = true
	seatIDs := idsOf(seat)

	f.m.showtime.On("FindByID", mock.Anything, f.showtime.ID).Return(f.showtime, nil)
	f.m.showtimeSeat.On("FindByIDs", mock.Anything, seatIDs).Return([]*entity.ShowtimeSeat{seat}, nil)
	f.m.showtimeSeat.On("LockByIDs", mock.Anything, seatIDs).Return([]*entity.ShowtimeSeat{seat}, nil)

	_, err := f.svc.Hold(ctx(), f.showtime.ID.String(), nil, &request.CreateHoldRequest{
		SeatIDs: []string{seat.ID.String()},
	})

	assert.ErrorIs(t, err, entity.ErrConflict)
}

func TestHold_HeldByAnotherCustomer(t *testing.T) {
	f := newHoldFixture(t)
	seat := newSeatRow(f.showtime.ID, "A", 1, entity.SeatTypeStandard)
	seatIDs := idsOf(seat)
	other := uuid.New()

	f.m.showtime.On("FindByID", mock.Anything, f.showtime.ID).Return(f.showtime, nil)
	f.m.showtimeSeat.On("FindByIDs", mock.Anything, seatIDs).Return([]*entity.ShowtimeSeat{seat}, nil)
	f.m.showtimeSeat.On("LockByIDs", mock.Anything, seatIDs).Return([]*entity.ShowtimeSeat{seat}, nil)
	f.m.hold.On("ReleaseExpiredForSeats", mock.Anything, seatIDs, baseTime).Return(int64(1), nil)
	f.m.seatSale.On("CloseForCancelledBookings", mock.Anything, seatIDs, baseTime).Return(int64(0), nil)
	f.m.hold.On("LockActiveBySeats", mock.Anything, seatIDs, baseTime).Return([]*entity.Hold{{
		Token:          "other-token",
		ShowtimeSeatID: seat.ID,
		HolderID:       &other,
		Status:         entity.HoldStatusHeld,
		ExpiresAt:      baseTime.Add(time.Minute),
	}}, nil)

	holder := uuid.New()
	_, err := f.svc.Hold(ctx(), f.showtime.ID.String(), &holder, &request.CreateHoldRequest{
		SeatIDs: []string{seat.ID.String()},
	})

	assert.ErrorIs(t, err, entity.ErrConflict)
	f.m.hold.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
}

func TestHold_AnonymousNeverDisplaces(t *testing.T) {
	f := newHoldFixture(t)
	seat := newSeatRow(f.showtime.ID, "A", 1, entity.SeatTypeStandard)
	seatIDs := idsOf(seat)

	f.m.showtime.On("FindByID", mock.Anything, f.showtime.ID).Return(f.showtime, nil)
	f.m.showtimeSeat.On("FindByIDs", mock.Anything, seatIDs).Return([]*entity.ShowtimeSeat{seat}, nil)
	f.m.showtimeSeat.On("LockByIDs", mock.Anything, seatIDs).Return([]*entity.ShowtimeSeat{seat}, nil)
	f.m.hold.On("ReleaseExpiredForSeats", mock.Anything, seatIDs, baseTime).Return(int64(0), nil)
	f.m.seatSale.On("CloseForCancelledBookings", mock.Anything, seatIDs, baseTime).Return(int64(0), nil)
	f.m.hold.On("LockActiveBySeats", mock.Anything, seatIDs, baseTime).Return([]*entity.Hold{{
		Token:          "anon-token",
		ShowtimeSeatID: seat.ID,
		Status:         entity.HoldStatusHeld,
		ExpiresAt:      baseTime.Add(time.Minute),
	}}, nil)

	_, err := f.svc.Hold(ctx(), f.showtime.ID.String(), nil, &request.CreateHoldRequest{
		SeatIDs: []string{seat.ID.String()},
	})

	assert.ErrorIs(t, err, entity.ErrConflict)
}

func TestHold_ReplacesOwnHoldAndPendingBooking(t *testing.T) {
	f := newHoldFixture(t)
	holder := uuid.New()
	seat := newSeatRow(f.showtime.ID, "B", 2, entity.SeatTypeVIP)
	seatIDs := idsOf(seat)
	bookingID := uuid.New()

	f.m.showtime.On("FindByID", mock.Anything, f.showtime.ID).Return(f.showtime, nil)
	f.m.showtimeSeat.On("FindByIDs", mock.Anything, seatIDs).Return([]*entity.ShowtimeSeat{seat}, nil)
	f.m.showtimeSeat.On("LockByIDs", mock.Anything, seatIDs).Return([]*entity.ShowtimeSeat{seat}, nil)
	f.m.hold.On("ReleaseByToken", mock.Anything, "previous-token", &holder, baseTime).Return(int64(2), nil)
	f.m.hold.On("ReleaseExpiredForSeats", mock.Anything, seatIDs, baseTime).Return(int64(0), nil)
	f.m.seatSale.On("CloseForCancelledBookings", mock.Anything, seatIDs, baseTime).Return(int64(0), nil)
	f.m.hold.On("LockActiveBySeats", mock.Anything, seatIDs, baseTime).Return([]*entity.Hold{{
		Token:          "own-token",
		ShowtimeSeatID: seat.ID,
		HolderID:       ptr(holder),
		Status:         entity.HoldStatusHeld,
		ExpiresAt:      baseTime.Add(time.Minute),
	}}, nil)
	f.m.hold.On("ReleaseTokens", mock.Anything, []string{"own-token"}, baseTime).Return(int64(1), nil)
	f.m.seatSale.On("LockActiveBySeats", mock.Anything, seatIDs).Return([]*entity.ActiveSale{{
		SeatSale:             entity.SeatSale{BookingID: bookingID, ShowtimeSeatID: seat.ID},
		BookingHolderID:      ptr(holder),
		BookingStatus:        entity.BookingStatusPending,
		BookingPaymentStatus: entity.PaymentStatusUnpaid,
	}}, nil)
	f.m.booking.On("LockByID", mock.Anything, bookingID).Return(&entity.Booking{
		Base:          entity.Base{ID: bookingID},
		Code:          "BKAAAA2222",
		HolderID:      ptr(holder),
		Status:        entity.BookingStatusPending,
		PaymentStatus: entity.PaymentStatusUnpaid,
	}, nil)
	f.m.booking.On("Cancel", mock.Anything, bookingID, baseTime).Return(true, nil)
	f.m.seatSale.On("CloseByBooking", mock.Anything, bookingID, baseTime).Return(int64(1), nil)
	f.m.hold.On("CreateBatch", mock.Anything, mock.Anything).Return(nil)

	resp, err := f.svc.Hold(ctx(), f.showtime.ID.String(), &holder, &request.CreateHoldRequest{
		SeatIDs:           []string{seat.ID.String()},
		PreviousHoldToken: "previous-token",
	})

	require.NoError(t, err)
	assert.NotEqual(t, "own-token", resp.HoldToken)
}

func TestHold_SoldSeat(t *testing.T) {
	f := newHoldFixture(t)
	holder := uuid.New()
	seat := newSeatRow(f.showtime.ID, "A", 1, entity.SeatTypeStandard)
	seatIDs := idsOf(seat)

	f.m.showtime.On("FindByID", mock.Anything, f.showtime.ID).Return(f.showtime, nil)
	f.m.showtimeSeat.On("FindByIDs", mock.Anything, seatIDs).Return([]*entity.ShowtimeSeat{seat}, nil)
	f.m.showtimeSeat.On("LockByIDs", mock.Anything, seatIDs).Return([]*entity.ShowtimeSeat{seat}, nil)
	f.m.hold.On("ReleaseExpiredForSeats", mock.Anything, seatIDs, baseTime).Return(int64(0), nil)
	f.m.seatSale.On("CloseForCancelledBookings", mock.Anything, seatIDs, baseTime).Return(int64(0), nil)
	f.m.hold.On("LockActiveBySeats", mock.Anything, seatIDs, baseTime).Return(nil, nil)
	f.m.seatSale.On("LockActiveBySeats", mock.Anything, seatIDs).Return([]*entity.ActiveSale{{
		SeatSale:             entity.SeatSale{BookingID: uuid.New(), ShowtimeSeatID: seat.ID},
		BookingHolderID:      ptr(holder),
		BookingStatus:        entity.BookingStatusConfirmed,
		BookingPaymentStatus: entity.PaymentStatusPaid,
	}}, nil)

	_, err := f.svc.Hold(ctx(), f.showtime.ID.String(), &holder, &request.CreateHoldRequest{
		SeatIDs: []string{seat.ID.String()},
	})

	assert.ErrorIs(t, err, entity.ErrConflict)
}

func TestHold_LockTimeoutIsConflict(t *testing.T) {
	f := newHoldFixture(t)
	seat := newSeatRow(f.showtime.ID, "A", 1, entity.SeatTypeStandard)
	seatIDs := idsOf(seat)

	f.m.showtime.On("FindByID", mock.Anything, f.showtime.ID).Return(f.showtime, nil)
	f.m.showtimeSeat.On("FindByIDs", mock.Anything, seatIDs).Return([]*entity.ShowtimeSeat{seat}, nil)
	f.m.showtimeSeat.On("LockByIDs", mock.Anything, seatIDs).
		Return(nil, errors.Join(entity.ErrConflict, errors.New("lock timeout")))

	_, err := f.svc.Hold(ctx(), f.showtime.ID.String(), nil, &request.CreateHoldRequest{
		SeatIDs: []string{seat.ID.String()},
	})

	assert.ErrorIs(t, err, entity.ErrConflict)
}

func TestRelease(t *testing.T) {
	f := newHoldFixture(t)
	holder := uuid.New()

	f.m.hold.On("FindByToken", mock.Anything, "token-1").Return([]*entity.Hold{{
		Token:      "token-1",
		ShowtimeID: f.showtime.ID,
		HolderID:   &holder,
	}}, nil)
	f.m.hold.On("ReleaseByToken", mock.Anything, "token-1", &holder, baseTime).Return(int64(1), nil)

	require.NoError(t, f.svc.Release(ctx(), f.showtime.ID.String(), "token-1", &holder))
}

func TestRelease_UnknownTokenIsNoop(t *testing.T) {
	f := newHoldFixture(t)
	f.m.hold.On("FindByToken", mock.Anything, "missing").Return(nil, nil)

	require.NoError(t, f.svc.Release(ctx(), f.showtime.ID.String(), "missing", nil))
	f.m.hold.AssertNotCalled(t, "ReleaseByToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRelease_OtherShowtimeIsNoop(t *testing.T) {
	f := newHoldFixture(t)
	f.m.hold.On("FindByToken", mock.Anything, "token-1").Return([]*entity.Hold{{
		Token:      "token-1",
		ShowtimeID: uuid.New(),
	}}, nil)

	require.NoError(t, f.svc.Release(ctx(), f.showtime.ID.String(), "token-1", nil))
}
