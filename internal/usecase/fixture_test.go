package usecase_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"cinema-reservation/internal/data/entity"
	"cinema-reservation/internal/data/repository"
	"cinema-reservation/internal/data/repository/mocks"
	"cinema-reservation/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

var baseTime = time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)

type repoMocks struct {
	tx            *mocks.Transactor
	hall          *mocks.HallRepository
	seat          *mocks.SeatRepository
	showtime      *mocks.ShowtimeRepository
	showtimeSeat  *mocks.ShowtimeSeatRepository
	hold          *mocks.HoldRepository
	booking       *mocks.BookingRepository
	seatSale      *mocks.SeatSaleRepository
	settlement    *mocks.SettlementRepository
	paymentMethod *mocks.PaymentMethodRepository
}

// newRepo returns a Repository of mocks whose transactor runs fn inline.
func newRepo(t *testing.T) (*repository.Repository, *repoMocks) {
	m := &repoMocks{
		tx:            mocks.NewTransactor(t),
		hall:          mocks.NewHallRepository(t),
		seat:          mocks.NewSeatRepository(t),
		showtime:      mocks.NewShowtimeRepository(t),
		showtimeSeat:  mocks.NewShowtimeSeatRepository(t),
		hold:          mocks.NewHoldRepository(t),
		booking:       mocks.NewBookingRepository(t),
		seatSale:      mocks.NewSeatSaleRepository(t),
		settlement:    mocks.NewSettlementRepository(t),
		paymentMethod: mocks.NewPaymentMethodRepository(t),
	}

	m.tx.On("WithinTx", mock.Anything, mock.Anything).
		Return(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).Maybe()

	return &repository.Repository{
		Tx:            m.tx,
		Hall:          m.hall,
		Seat:          m.seat,
		Showtime:      m.showtime,
		ShowtimeSeat:  m.showtimeSeat,
		Hold:          m.hold,
		Booking:       m.booking,
		SeatSale:      m.seatSale,
		Settlement:    m.settlement,
		PaymentMethod: m.paymentMethod,
	}, m
}

func bookingConfig() utils.BookingConfig {
	return utils.BookingConfig{
		HoldTTL:        10 * time.Minute,
		SweepInterval:  time.Minute,
		HoldRetention:  24 * time.Hour,
		CodeMaxRetries: 3,
	}
}

func newShowtime(startsIn time.Duration) *entity.Showtime {
	return &entity.Showtime{
		Base:      entity.Base{ID: uuid.New()},
		HallID:    uuid.New(),
		StartsAt:  baseTime.Add(startsIn),
		EndsAt:    baseTime.Add(startsIn + 2*time.Hour),
		BasePrice: 50000,
		IsActive:  true,
	}
}

func newSeatRow(showtimeID uuid.UUID, row string, number int, seatType entity.SeatType) *entity.ShowtimeSeat {
	return &entity.ShowtimeSeat{
		Base:       entity.Base{ID: uuid.New()},
		ShowtimeID: showtimeID,
		SeatID:     uuid.New(),
		Price:      entity.SeatPrice(50000, seatType),
		RowLabel:   row,
		SeatNumber: number,
		SeatType:   seatType,
	}
}

func idsOf(rows ...*entity.ShowtimeSeat) []uuid.UUID {
	set := make(map[uuid.UUID]struct{}, len(rows))
	for _, r := range rows {
		set[r.ID] = struct{}{}
	}
	ids := make([]uuid.UUID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sortIDs(ids)
	return ids
}

func sortIDs(ids []uuid.UUID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
}

func ptr[T any](v T) *T { return &v }

func nopLogger() *zap.Logger { return zap.NewNop() }

func ctx() context.Context { return context.Background() }
