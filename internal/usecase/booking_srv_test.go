package usecase_test

import (
	"testing"
	"time"

	"cinema-reservation/internal/data/entity"
	"cinema-reservation/internal/dto/request"
	"cinema-reservation/internal/event"
	"cinema-reservation/internal/usecase"
	brokermocks "cinema-reservation/pkg/broker/mocks"
	"cinema-reservation/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const paidQueue = "booking.paid"

type bookingFixture struct {
	svc       usecase.BookingService
	m         *repoMocks
	publisher *brokermocks.Publisher
	showtime  *entity.Showtime
	holder    uuid.UUID
	clock     *utils.FixedClock
}

func newBookingFixture(t *testing.T) *bookingFixture {
	repo, m := newRepo(t)
	publisher := brokermocks.NewPublisher(t)
	clock := &utils.FixedClock{T: baseTime}
	return &bookingFixture{
		svc: usecase.NewBookingService(repo, bookingConfig(), utils.BrokerConfig{Queue: paidQueue},
			clock, publisher, nopLogger()),
		m:         m,
		publisher: publisher,
		showtime:  newShowtime(2 * time.Hour),
		holder:    uuid.New(),
		clock:     clock,
	}
}

// heldSeats stubs a live two-seat hold of the fixture holder.
func (f *bookingFixture) heldSeats(token string) ([]*entity.ShowtimeSeat, []*entity.Hold) {
	rows := []*entity.ShowtimeSeat{
		newSeatRow(f.showtime.ID, "A", 1, entity.SeatTypeStandard),
		newSeatRow(f.showtime.ID, "A", 2, entity.SeatTypeVIP),
	}
	holds := make([]*entity.Hold, len(rows))
	for i, row := range rows {
		holds[i] = &entity.Hold{
			BaseSimple:     entity.BaseSimple{ID: uuid.New()},
			Token:          token,
			ShowtimeID:     f.showtime.ID,
			ShowtimeSeatID: row.ID,
			HolderID:       ptr(f.holder),
			Status:         entity.HoldStatusHeld,
			ExpiresAt:      baseTime.Add(5 * time.Minute),
		}
	}

	f.m.hold.On("FindByToken", mock.Anything, token).Return(holds, nil)
	f.m.showtimeSeat.On("LockByIDs", mock.Anything, idsOf(rows...)).Return(rows, nil)
	return rows, holds
}

func paymentMethod(code string, cash bool) *entity.PaymentMethod {
	return &entity.PaymentMethod{Code: code, Name: code, IsCash: cash, IsActive: true}
}

func TestBook_TransferStaysPending(t *testing.T) {
	f := newBookingFixture(t)
	_, holds := f.heldSeats("tok")

	f.m.paymentMethod.On("FindByCode", mock.Anything, "qr_transfer").Return(paymentMethod("qr_transfer", false), nil)
	f.m.hold.On("LockActiveByToken", mock.Anything, "tok", baseTime).Return(holds, nil)
	f.m.showtime.On("FindByID", mock.Anything, f.showtime.ID).Return(f.showtime, nil)
	f.m.booking.On("ExistsByCode", mock.Anything, mock.AnythingOfType("string")).Return(false, nil)
	f.m.booking.On("Create", mock.Anything, mock.MatchedBy(func(b *entity.Booking) bool {
		return b.Status == entity.BookingStatusPending &&
			b.PaymentStatus == entity.PaymentStatusUnpaid &&
			b.TotalAmount == 125000 && b.FinalAmount == 125000 && b.DiscountAmount == 0
	})).Return(nil)
	f.m.seatSale.On("CreateBatch", mock.Anything, mock.MatchedBy(func(sales []*entity.SeatSale) bool {
		return len(sales) == 2 && sales[0].BookingID != uuid.Nil && sales[0].BookingID == sales[1].BookingID
	})).Return(nil)
	f.m.hold.On("MarkConsumed", mock.Anything, []uuid.UUID{holds[0].ID, holds[1].ID}, baseTime).Return(nil)

	resp, err := f.svc.Book(ctx(), &f.holder, &request.CreateBookingRequest{
		HoldToken:     "tok",
		PaymentMethod: "qr_transfer",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusPending, resp.Status)
	assert.Len(t, resp.SeatIDs, 2)
	assert.Regexp(t, `^BK[A-Z2-9]{8}$`, resp.Code)
	f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestBook_CashIsPaidImmediately(t *testing.T) {
	f := newBookingFixture(t)
	_, holds := f.heldSeats("tok")

	f.m.paymentMethod.On("FindByCode", mock.Anything, "cash").Return(paymentMethod("cash", true), nil)
	f.m.hold.On("LockActiveByToken", mock.Anything, "tok", baseTime).Return(holds, nil)
	f.m.showtime.On("FindByID", mock.Anything, f.showtime.ID).Return(f.showtime, nil)
	f.m.booking.On("ExistsByCode", mock.Anything, mock.Anything).Return(false, nil)
	f.m.booking.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.m.seatSale.On("CreateBatch", mock.Anything, mock.Anything).Return(nil)
	f.m.hold.On("MarkConsumed", mock.Anything, mock.Anything, baseTime).Return(nil)
	f.m.settlement.On("Create", mock.Anything, mock.MatchedBy(func(l *entity.SettlementLog) bool {
		return l.Provider == entity.ProviderCash && l.Status == entity.SettlementStatusPaid && l.Amount == 125000
	})).Return(nil)
	f.publisher.On("Publish", mock.Anything, paidQueue, mock.MatchedBy(func(e event.BookingPaid) bool {
		return e.Provider == entity.ProviderCash && e.Amount == 125000 && e.PaidAt.Equal(baseTime)
	})).Return(nil).Once()

	resp, err := f.svc.Book(ctx(), &f.holder, &request.CreateBookingRequest{
		HoldToken:     "tok",
		PaymentMethod: "cash",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, resp.Status)
	assert.Equal(t, entity.PaymentStatusPaid, resp.PaymentStatus)
}

func TestBook_RetriesCodeCollision(t *testing.T) {
	f := newBookingFixture(t)
	_, holds := f.heldSeats("tok")

	f.m.paymentMethod.On("FindByCode", mock.Anything, "qr_transfer").Return(paymentMethod("qr_transfer", false), nil)
	f.m.hold.On("LockActiveByToken", mock.Anything, "tok", baseTime).Return(holds, nil)
	f.m.showtime.On("FindByID", mock.Anything, f.showtime.ID).Return(f.showtime, nil)
	f.m.booking.On("ExistsByCode", mock.Anything, mock.Anything).Return(true, nil).Twice()
	f.m.booking.On("ExistsByCode", mock.Anything, mock.Anything).Return(false, nil).Once()
	f.m.booking.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.m.seatSale.On("CreateBatch", mock.Anything, mock.Anything).Return(nil)
	f.m.hold.On("MarkConsumed", mock.Anything, mock.Anything, baseTime).Return(nil)

	_, err := f.svc.Book(ctx(), &f.holder, &request.CreateBookingRequest{HoldToken: "tok", PaymentMethod: "qr_transfer"})

	require.NoError(t, err)
	f.m.booking.AssertNumberOfCalls(t, "ExistsByCode", 3)
}

func TestBook_CodeSpaceExhausted(t *testing.T) {
	f := newBookingFixture(t)
	_, holds := f.heldSeats("tok")

	f.m.paymentMethod.On("FindByCode", mock.Anything, "qr_transfer").Return(paymentMethod("qr_transfer", false), nil)
	f.m.hold.On("LockActiveByToken", mock.Anything, "tok", baseTime).Return(holds, nil)
	f.m.showtime.On("FindByID", mock.Anything, f.showtime.ID).Return(f.showtime, nil)
	f.m.booking.On("ExistsByCode", mock.Anything, mock.Anything).Return(true, nil)

	_, err := f.svc.Book(ctx(), &f.holder, &request.CreateBookingRequest{HoldToken: "tok", PaymentMethod: "qr_transfer"})

	assert.ErrorIs(t, err, entity.ErrConflict)
	f.m.booking.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBook_ShowtimeStartedSinceHold(t *testing.T) {
	f := newBookingFixture(t)
	_, holds := f.heldSeats("tok")
	f.clock.Advance(2*time.Hour + time.Minute)

	f.m.paymentMethod.On("FindByCode", mock.Anything, "cash").Return(paymentMethod("cash", true), nil)
	f.m.hold.On("LockActiveByToken", mock.Anything, "tok", f.clock.Now()).Return(holds, nil)
	f.m.showtime.On("FindByID", mock.Anything, f.showtime.ID).Return(f.showtime, nil)

	_, err := f.svc.Book(ctx(), &f.holder, &request.CreateBookingRequest{HoldToken: "tok", PaymentMethod: "cash"})

	assert.ErrorIs(t, err, entity.ErrValidation)
	f.m.booking.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.m.hold.AssertNotCalled(t, "MarkConsumed", mock.Anything, mock.Anything, mock.Anything)
}

func TestBook_UnknownToken(t *testing.T) {
	f := newBookingFixture(t)
	f.m.paymentMethod.On("FindByCode", mock.Anything, "cash").Return(paymentMethod("cash", true), nil)
	f.m.hold.On("FindByToken", mock.Anything, "nope").Return(nil, nil)

	_, err := f.svc.Book(ctx(), &f.holder, &request.CreateBookingRequest{HoldToken: "nope", PaymentMethod: "cash"})

	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestBook_ExpiredHold(t *testing.T) {
	f := newBookingFixture(t)
	f.heldSeats("tok")
	f.m.paymentMethod.On("FindByCode", mock.Anything, "cash").Return(paymentMethod("cash", true), nil)
	f.m.hold.On("LockActiveByToken", mock.Anything, "tok", baseTime).Return(nil, nil)

	_, err := f.svc.Book(ctx(), &f.holder, &request.CreateBookingRequest{HoldToken: "tok", PaymentMethod: "cash"})

	assert.ErrorIs(t, err, entity.ErrExpired)
	f.m.booking.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBook_HoldOfAnotherCustomer(t *testing.T) {
	f := newBookingFixture(t)
	_, holds := f.heldSeats("tok")
	f.m.paymentMethod.On("FindByCode", mock.Anything, "cash").Return(paymentMethod("cash", true), nil)
	f.m.hold.On("LockActiveByToken", mock.Anything, "tok", baseTime).Return(holds, nil)

	stranger := uuid.New()
	_, err := f.svc.Book(ctx(), &stranger, &request.CreateBookingRequest{HoldToken: "tok", PaymentMethod: "cash"})

	assert.ErrorIs(t, err, entity.ErrConflict)
}

func TestBook_DisabledSinceHold(t *testing.T) {
	f := newBookingFixture(t)
	rows, holds := f.heldSeats("tok")
	rows[1].IsDisabled = true
	f.m.paymentMethod.On("FindByCode", mock.Anything, "cash").Return(paymentMethod("cash", true), nil)
	f.m.hold.On("LockActiveByToken", mock.Anything, "tok", baseTime).Return(holds, nil)
	f.m.showtime.On("FindByID", mock.Anything, f.showtime.ID).Return(f.showtime, nil)

	_, err := f.svc.Book(ctx(), &f.holder, &request.CreateBookingRequest{HoldToken: "tok", PaymentMethod: "cash"})

	assert.ErrorIs(t, err, entity.ErrConflict)
}

func TestBook_UnknownPaymentMethod(t *testing.T) {
	f := newBookingFixture(t)
	f.m.paymentMethod.On("FindByCode", mock.Anything, "crypto").Return(nil, nil)

	_, err := f.svc.Book(ctx(), &f.holder, &request.CreateBookingRequest{HoldToken: "tok", PaymentMethod: "crypto"})

	assert.ErrorIs(t, err, entity.ErrValidation)
}

func pendingBooking(showtimeID uuid.UUID, holder *uuid.UUID) *entity.Booking {
	return &entity.Booking{
		Base:          entity.Base{ID: uuid.New()},
		Code:          "BKQWERTY23",
		HolderID:      holder,
		ShowtimeID:    showtimeID,
		PaymentMethod: "qr_transfer",
		Status:        entity.BookingStatusPending,
		PaymentStatus: entity.PaymentStatusUnpaid,
		TotalAmount:   50000,
		FinalAmount:   50000,
	}
}

func (f *bookingFixture) expectCancelLocks(booking *entity.Booking) {
	seatID := uuid.New()
	f.m.booking.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)
	f.m.seatSale.On("FindByBookingID", mock.Anything, booking.ID).Return([]*entity.SeatSale{{
		BookingID:      booking.ID,
		ShowtimeSeatID: seatID,
		FinalPrice:     booking.FinalAmount,
	}}, nil)
	f.m.showtimeSeat.On("LockByIDs", mock.Anything, []uuid.UUID{seatID}).Return(nil, nil)
	f.m.seatSale.On("LockActiveBySeats", mock.Anything, []uuid.UUID{seatID}).Return(nil, nil)
	f.m.booking.On("LockByID", mock.Anything, booking.ID).Return(booking, nil)
}

func TestCancel_Owner(t *testing.T) {
	f := newBookingFixture(t)
	booking := pendingBooking(f.showtime.ID, &f.holder)
	f.expectCancelLocks(booking)
	f.m.showtime.On("FindByID", mock.Anything, f.showtime.ID).Return(f.showtime, nil)
	f.m.booking.On("Cancel", mock.Anything, booking.ID, baseTime).Return(true, nil)
	f.m.seatSale.On("CloseByBooking", mock.Anything, booking.ID, baseTime).Return(int64(1), nil)

	require.NoError(t, f.svc.Cancel(ctx(), booking.ID.String(), &f.holder, false))
}

func TestCancel_StaffOverridesOwnership(t *testing.T) {
	f := newBookingFixture(t)
	booking := pendingBooking(f.showtime.ID, &f.holder)
	f.expectCancelLocks(booking)
	f.m.showtime.On("FindByID", mock.Anything, f.showtime.ID).Return(f.showtime, nil)
	f.m.booking.On("Cancel", mock.Anything, booking.ID, baseTime).Return(true, nil)
	f.m.seatSale.On("CloseByBooking", mock.Anything, booking.ID, baseTime).Return(int64(1), nil)

	require.NoError(t, f.svc.Cancel(ctx(), booking.ID.String(), nil, true))
}

func TestCancel_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(b *entity.Booking)
		setup  func(f *bookingFixture)
		caller func(f *bookingFixture) *uuid.UUID
		want   error
	}{
		{
			name:   "not the owner",
			mutate: func(b *entity.Booking) {},
			caller: func(f *bookingFixture) *uuid.UUID { return ptr(uuid.New()) },
			want:   entity.ErrConflict,
		},
		{
			name: "already paid",
			mutate: func(b *entity.Booking) {
				b.Status = entity.BookingStatusConfirmed
				b.PaymentStatus = entity.PaymentStatusPaid
			},
			caller: func(f *bookingFixture) *uuid.UUID { return &f.holder },
			want:   entity.ErrValidation,
		},
		{
			name:   "already cancelled",
			mutate: func(b *entity.Booking) { b.Status = entity.BookingStatusCancelled },
			caller: func(f *bookingFixture) *uuid.UUID { return &f.holder },
			want:   entity.ErrValidation,
		},
		{
			name:   "showtime started",
			mutate: func(b *entity.Booking) {},
			setup: func(f *bookingFixture) {
				f.clock.Advance(3 * time.Hour)
				f.m.showtime.On("FindByID", mock.Anything, f.showtime.ID).Return(f.showtime, nil)
			},
			caller: func(f *bookingFixture) *uuid.UUID { return &f.holder },
			want:   entity.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBookingFixture(t)
			booking := pendingBooking(f.showtime.ID, &f.holder)
			tt.mutate(booking)
			f.expectCancelLocks(booking)
			if tt.setup != nil {
				tt.setup(f)
			}

			err := f.svc.Cancel(ctx(), booking.ID.String(), tt.caller(f), false)

			assert.ErrorIs(t, err, tt.want)
			f.m.booking.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCancel_NotFound(t *testing.T) {
	f := newBookingFixture(t)
	id := uuid.New()
	f.m.booking.On("FindByID", mock.Anything, id).Return(nil, nil)

	assert.ErrorIs(t, f.svc.Cancel(ctx(), id.String(), &f.holder, false), entity.ErrNotFound)
}

func TestGetBooking(t *testing.T) {
	f := newBookingFixture(t)
	booking := pendingBooking(f.showtime.ID, &f.holder)
	f.m.booking.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)
	f.m.seatSale.On("FindByBookingID", mock.Anything, booking.ID).Return(nil, nil).Maybe()
	f.m.settlement.On("FindByBookingID", mock.Anything, booking.ID).Return([]*entity.SettlementLog{{
		Provider:    entity.ProviderPayOS,
		ProviderRef: "1700000000123",
		Amount:      50000,
		Status:      entity.SettlementStatusPending,
	}}, nil).Maybe()

	t.Run("owner sees settlements", func(t *testing.T) {
		resp, err := f.svc.GetBooking(ctx(), booking.ID.String(), &f.holder, false)
		require.NoError(t, err)
		assert.Equal(t, booking.Code, resp.Code)
		require.Len(t, resp.Settlements, 1)
		assert.Equal(t, entity.SettlementStatusPending, resp.Settlements[0].Status)
	})

	t.Run("stranger gets not found", func(t *testing.T) {
		_, err := f.svc.GetBooking(ctx(), booking.ID.String(), ptr(uuid.New()), false)
		assert.ErrorIs(t, err, entity.ErrNotFound)
	})

	t.Run("staff sees any booking", func(t *testing.T) {
		_, err := f.svc.GetBooking(ctx(), booking.ID.String(), nil, true)
		assert.NoError(t, err)
	})
}

func TestListByHolder(t *testing.T) {
	f := newBookingFixture(t)
	booking := pendingBooking(f.showtime.ID, &f.holder)
	f.m.booking.On("FindByHolderID", mock.Anything, f.holder, 10, 10).Return([]*entity.Booking{booking}, nil)
	f.m.booking.On("CountByHolderID", mock.Anything, f.holder).Return(int64(11), nil)
	f.m.seatSale.On("FindByBookingID", mock.Anything, booking.ID).Return(nil, nil)

	resp, err := f.svc.ListByHolder(ctx(), f.holder, &request.PaginatedRequest{Page: 2, PerPage: 10})

	require.NoError(t, err)
	assert.Len(t, resp.Data, 1)
}

func TestGetPaymentMethods(t *testing.T) {
	f := newBookingFixture(t)
	f.m.paymentMethod.On("FindAllActive", mock.Anything).Return([]*entity.PaymentMethod{
		paymentMethod("cash", true),
		paymentMethod("qr_transfer", false),
	}, nil)

	methods, err := f.svc.GetPaymentMethods(ctx())

	require.NoError(t, err)
	require.Len(t, methods, 2)
	assert.True(t, methods[0].IsCash)
}
