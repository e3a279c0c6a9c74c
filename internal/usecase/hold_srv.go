package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"cinema-reservation/internal/data/entity"
	"cinema-reservation/internal/data/repository"
	"cinema-reservation/internal/dto/request"
	"cinema-reservation/internal/dto/response"
	"cinema-reservation/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type HoldService interface {
	Hold(ctx context.Context, showtimeID string, holderID *uuid.UUID, req *request.CreateHoldRequest) (*response.HoldResponse, error)
	Release(ctx context.Context, showtimeID, token string, holderID *uuid.UUID) error
}

type holdService struct {
	repo   *repository.Repository
	config utils.BookingConfig
	clock  utils.Clock
	log    *zap.Logger
}

func NewHoldService(repo *repository.Repository, config utils.BookingConfig, clock utils.Clock, log *zap.Logger) HoldService {
	return &holdService{
		repo:   repo,
		config: config,
		clock:  clock,
		log:    log.With(zap.String("service", "hold")),
	}
}

func (s *holdService) Hold(ctx context.Context, showtimeID string, holderID *uuid.UUID, req *request.CreateHoldRequest) (*response.HoldResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Hold validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	showtimeUUID, err := parseID("showtime ID", showtimeID)
	if err != nil {
		return nil, err
	}

	requested, err := dedupeIDs(req.SeatIDs)
	if err != nil {
		return nil, err
	}

	showtime, err := s.repo.Showtime.FindByID(ctx, showtimeUUID)
	if err != nil {
		return nil, fmt.Errorf("find showtime: %w", err)
	}
	if showtime == nil || !showtime.IsActive {
		return nil, fmt.Errorf("%w: showtime %s", entity.ErrNotFound, showtimeID)
	}

	token := utils.GenerateHoldToken()
	var (
		seatIDs   []uuid.UUID
		expiresAt time.Time
	)

	err = s.repo.Tx.WithinTx(ctx, func(ctx context.Context) error {
		now := s.clock.Now()
		expiresAt = now.Add(s.config.HoldTTL)

		expanded, err := s.expandCouples(ctx, showtime.ID, requested)
		if err != nil {
			return err
		}
		seatIDs = expanded

		rows, err := s.repo.ShowtimeSeat.LockByIDs(ctx, seatIDs)
		if err != nil {
			return fmt.Errorf("lock seats: %w", err)
		}

		if err := checkInventory(showtime, rows, seatIDs, now); err != nil {
			return err
		}

		if req.PreviousHoldToken != "" {
			if _, err := s.repo.Hold.ReleaseByToken(ctx, req.PreviousHoldToken, holderID, now); err != nil {
				return fmt.Errorf("release previous hold: %w", err)
			}
		}

		if err := s.purgeStale(ctx, seatIDs); err != nil {
			return err
		}

		if err := s.displaceOwnHolds(ctx, seatIDs, holderID); err != nil {
			return err
		}

		if err := s.displaceOwnBookings(ctx, seatIDs, holderID); err != nil {
			return err
		}

		holds := make([]*entity.Hold, len(seatIDs))
		for i, seatID := range seatIDs {
			holds[i] = &entity.Hold{
				BaseSimple: entity.BaseSimple{
					ID:        uuid.New(),
					CreatedAt: now,
				},
				Token:          token,
				ShowtimeID:     showtime.ID,
				ShowtimeSeatID: seatID,
				HolderID:       holderID,
				Status:         entity.HoldStatusHeld,
				ExpiresAt:      expiresAt,
			}
		}

		return s.repo.Hold.CreateBatch(ctx, holds)
	})
	if err != nil {
		s.log.Warn("Hold failed",
			zap.Error(err),
			zap.String("showtime_id", showtimeID),
			zap.Int("seat_count", len(requested)),
		)
		return nil, err
	}

	s.log.Info("Seats held",
		zap.String("showtime_id", showtimeID),
		zap.String("token", utils.MaskToken(token)),
		zap.Int("seat_count", len(seatIDs)),
		zap.Time("expires_at", expiresAt),
	)

	resp := &response.HoldResponse{
		HoldToken: token,
		ExpiresAt: expiresAt,
		SeatIDs:   make([]string, len(seatIDs)),
	}
	for i, id := range seatIDs {
		resp.SeatIDs[i] = id.String()
	}

	return resp, nil
}

func (s *holdService) Release(ctx context.Context, showtimeID, token string, holderID *uuid.UUID) error {
	showtimeUUID, err := parseID("showtime ID", showtimeID)
	if err != nil {
		return err
	}

	holds, err := s.repo.Hold.FindByToken(ctx, token)
	if err != nil {
		return fmt.Errorf("find holds: %w", err)
	}
	if len(holds) == 0 || holds[0].ShowtimeID != showtimeUUID {
		return nil
	}

	released, err := s.repo.Hold.ReleaseByToken(ctx, token, holderID, s.clock.Now())
	if err != nil {
		return fmt.Errorf("release hold: %w", err)
	}

	s.log.Info("Hold released",
		zap.String("showtime_id", showtimeID),
		zap.String("token", utils.MaskToken(token)),
		zap.Int64("released", released),
	)

	return nil
}

// expandCouples adds the partner of every requested couple seat and returns
// the set sorted by id, the order in which rows are locked.
func (s *holdService) expandCouples(ctx context.Context, showtimeID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error) {
	rows, err := s.repo.ShowtimeSeat.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("find seats: %w", err)
	}

	var partners []repository.SeatPosition
	for _, row := range rows {
		if row.ShowtimeID == showtimeID && row.SeatType == entity.SeatTypeCouple {
			partners = append(partners, repository.SeatPosition{
				RowLabel:   row.RowLabel,
				SeatNumber: couplePartner(row.SeatNumber),
			})
		}
	}

	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	if len(partners) > 0 {
		partnerRows, err := s.repo.ShowtimeSeat.FindByPositions(ctx, showtimeID, partners)
		if err != nil {
			return nil, fmt.Errorf("find couple partners: %w", err)
		}
		for _, row := range partnerRows {
			if row.SeatType == entity.SeatTypeCouple {
				set[row.ID] = struct{}{}
			}
		}
	}

	return sortedIDs(set), nil
}

// checkInventory verifies the locked rows in order: they belong to the
// showtime, the showtime has not started, and none is disabled.
func checkInventory(showtime *entity.Showtime, rows []*entity.ShowtimeSeat, seatIDs []uuid.UUID, now time.Time) error {
	if len(rows) != len(seatIDs) {
		return fmt.Errorf("%w: unknown seat for showtime %s", entity.ErrValidation, showtime.ID.String())
	}
	for _, row := range rows {
		if row.ShowtimeID != showtime.ID {
			return fmt.Errorf("%w: seat %s does not belong to showtime %s",
				entity.ErrValidation, row.ID.String(), showtime.ID.String())
		}
	}

	if showtime.HasStarted(now) {
		return fmt.Errorf("%w: showtime %s has already started", entity.ErrValidation, showtime.ID.String())
	}

	for _, row := range rows {
		if row.IsDisabled {
			return fmt.Errorf("%w: seat %s%d is disabled", entity.ErrConflict, row.RowLabel, row.SeatNumber)
		}
	}

	return nil
}

// purgeStale releases expired holds and closes sales of cancelled bookings
// on the seats so they do not block the checks below.
func (s *holdService) purgeStale(ctx context.Context, seatIDs []uuid.UUID) error {
	now := s.clock.Now()

	expired, err := s.repo.Hold.ReleaseExpiredForSeats(ctx, seatIDs, now)
	if err != nil {
		return fmt.Errorf("release expired holds: %w", err)
	}

	closed, err := s.repo.SeatSale.CloseForCancelledBookings(ctx, seatIDs, now)
	if err != nil {
		return fmt.Errorf("close cancelled sales: %w", err)
	}

	if expired > 0 || closed > 0 {
		s.log.Debug("Purged stale seat state",
			zap.Int64("expired_holds", expired),
			zap.Int64("closed_sales", closed),
		)
	}

	return nil
}

// displaceOwnHolds releases every active token of holderID that touches the
// seats. A hold of anyone else is a conflict.
func (s *holdService) displaceOwnHolds(ctx context.Context, seatIDs []uuid.UUID, holderID *uuid.UUID) error {
	now := s.clock.Now()

	active, err := s.repo.Hold.LockActiveBySeats(ctx, seatIDs, now)
	if err != nil {
		return fmt.Errorf("lock active holds: %w", err)
	}

	tokens := make(map[string]struct{})
	for _, h := range active {
		if !sameHolder(h.HolderID, holderID) {
			return fmt.Errorf("%w: seat is held by another customer", entity.ErrConflict)
		}
		tokens[h.Token] = struct{}{}
	}
	if len(tokens) == 0 {
		return nil
	}

	list := make([]string, 0, len(tokens))
	for token := range tokens {
		list = append(list, token)
	}
	sort.Strings(list)

	if _, err := s.repo.Hold.ReleaseTokens(ctx, list, now); err != nil {
		return fmt.Errorf("replace own holds: %w", err)
	}

	s.log.Info("Replaced own holds", zap.Int("tokens", len(list)))
	return nil
}

// displaceOwnBookings cancels the caller's unpaid bookings on the seats so
// they can reselect. Any other live sale is a conflict.
func (s *holdService) displaceOwnBookings(ctx context.Context, seatIDs []uuid.UUID, holderID *uuid.UUID) error {
	sales, err := s.repo.SeatSale.LockActiveBySeats(ctx, seatIDs)
	if err != nil {
		return fmt.Errorf("lock active sales: %w", err)
	}

	bookings := make(map[uuid.UUID]struct{})
	for _, sale := range sales {
		pending := sale.BookingStatus == entity.BookingStatusPending &&
			sale.BookingPaymentStatus == entity.PaymentStatusUnpaid
		if !pending || !sameHolder(sale.BookingHolderID, holderID) {
			return fmt.Errorf("%w: seat is already sold", entity.ErrConflict)
		}
		bookings[sale.BookingID] = struct{}{}
	}

	now := s.clock.Now()
	for _, bookingID := range sortedIDs(bookings) {
		booking, err := s.repo.Booking.LockByID(ctx, bookingID)
		if err != nil {
			return fmt.Errorf("lock booking: %w", err)
		}
		if booking == nil || !booking.IsAwaitingPayment() {
			return fmt.Errorf("%w: seat is already sold", entity.ErrConflict)
		}

		if _, err := s.repo.Booking.Cancel(ctx, bookingID, now); err != nil {
			return fmt.Errorf("cancel own booking: %w", err)
		}
		if _, err := s.repo.SeatSale.CloseByBooking(ctx, bookingID, now); err != nil {
			return fmt.Errorf("release own booking seats: %w", err)
		}

		s.log.Info("Cancelled unpaid booking replaced by new hold",
			zap.String("booking_id", bookingID.String()),
			zap.String("booking_code", booking.Code),
		)
	}

	return nil
}

func dedupeIDs(values []string) ([]uuid.UUID, error) {
	set := make(map[uuid.UUID]struct{}, len(values))
	for _, v := range values {
		id, err := parseID("seat ID", v)
		if err != nil {
			return nil, err
		}
		set[id] = struct{}{}
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("%w: no seats selected", entity.ErrValidation)
	}
	return sortedIDs(set), nil
}

func sortedIDs(set map[uuid.UUID]struct{}) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})
	return ids
}
