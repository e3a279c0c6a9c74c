package usecase

import (
	"context"
	"fmt"

	"cinema-reservation/internal/data/entity"
	"cinema-reservation/internal/data/repository"
	"cinema-reservation/internal/dto/request"
	"cinema-reservation/internal/dto/response"
	"cinema-reservation/internal/event"
	"cinema-reservation/pkg/broker"
	"cinema-reservation/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	Book(ctx context.Context, holderID *uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	Cancel(ctx context.Context, bookingID string, holderID *uuid.UUID, staff bool) error
	GetBooking(ctx context.Context, bookingID string, holderID *uuid.UUID, staff bool) (*response.BookingDetailResponse, error)
	ListByHolder(ctx context.Context, holderID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetPaymentMethods(ctx context.Context) ([]*response.PaymentMethodResponse, error)
}

type bookingService struct {
	repo      *repository.Repository
	config    utils.BookingConfig
	queue     string
	clock     utils.Clock
	publisher broker.Publisher
	log       *zap.Logger
}

func NewBookingService(
	repo *repository.Repository,
	config utils.BookingConfig,
	brokerConfig utils.BrokerConfig,
	clock utils.Clock,
	publisher broker.Publisher,
	log *zap.Logger,
) BookingService {
	return &bookingService{
		repo:      repo,
		config:    config,
		queue:     brokerConfig.Queue,
		clock:     clock,
		publisher: publisher,
		log:       log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) Book(ctx context.Context, holderID *uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	paymentMethod, err := s.repo.PaymentMethod.FindByCode(ctx, req.PaymentMethod)
	if err != nil {
		return nil, fmt.Errorf("find payment method: %w", err)
	}
	if paymentMethod == nil || !paymentMethod.IsActive {
		return nil, fmt.Errorf("%w: unknown payment method %s", entity.ErrValidation, req.PaymentMethod)
	}

	var (
		booking *entity.Booking
		sales   []*entity.SeatSale
	)

	err = s.repo.Tx.WithinTx(ctx, func(ctx context.Context) error {
		all, err := s.repo.Hold.FindByToken(ctx, req.HoldToken)
		if err != nil {
			return fmt.Errorf("find holds: %w", err)
		}
		if len(all) == 0 {
			return fmt.Errorf("%w: hold %s", entity.ErrNotFound, utils.MaskToken(req.HoldToken))
		}

		seatSet := make(map[uuid.UUID]struct{}, len(all))
		for _, h := range all {
			seatSet[h.ShowtimeSeatID] = struct{}{}
		}

		rows, err := s.repo.ShowtimeSeat.LockByIDs(ctx, sortedIDs(seatSet))
		if err != nil {
			return fmt.Errorf("lock seats: %w", err)
		}

		now := s.clock.Now()
		active, err := s.repo.Hold.LockActiveByToken(ctx, req.HoldToken, now)
		if err != nil {
			return fmt.Errorf("lock holds: %w", err)
		}
		if len(active) == 0 {
			return fmt.Errorf("%w: hold is no longer active, select seats again", entity.ErrExpired)
		}

		for _, h := range active {
			if !h.OwnedBy(holderID) {
				return fmt.Errorf("%w: hold belongs to another customer", entity.ErrConflict)
			}
		}

		showtime, err := s.repo.Showtime.FindByID(ctx, active[0].ShowtimeID)
		if err != nil {
			return fmt.Errorf("find showtime: %w", err)
		}
		if showtime == nil {
			return fmt.Errorf("%w: showtime %s", entity.ErrNotFound, active[0].ShowtimeID.String())
		}
		if showtime.HasStarted(now) {
			return fmt.Errorf("%w: showtime has already started", entity.ErrValidation)
		}

		rowByID := make(map[uuid.UUID]*entity.ShowtimeSeat, len(rows))
		for _, row := range rows {
			rowByID[row.ID] = row
		}

		var total int64
		holdIDs := make([]uuid.UUID, len(active))
		sales = make([]*entity.SeatSale, len(active))
		for i, h := range active {
			row, ok := rowByID[h.ShowtimeSeatID]
			if !ok {
				return fmt.Errorf("%w: seat %s no longer exists", entity.ErrConflict, h.ShowtimeSeatID.String())
			}
			if row.IsDisabled {
				return fmt.Errorf("%w: seat %s%d is disabled", entity.ErrConflict, row.RowLabel, row.SeatNumber)
			}

			total += row.Price
			holdIDs[i] = h.ID
			sales[i] = &entity.SeatSale{
				BaseSimple: entity.BaseSimple{
					ID:        uuid.New(),
					CreatedAt: now,
				},
				ShowtimeID:     showtime.ID,
				ShowtimeSeatID: row.ID,
				UnitPrice:      row.Price,
				FinalPrice:     row.Price,
			}
		}
		if total <= 0 {
			return fmt.Errorf("booking total %d for hold %s must be positive", total, utils.MaskToken(req.HoldToken))
		}

		code, err := s.newBookingCode(ctx)
		if err != nil {
			return err
		}

		booking = &entity.Booking{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			Code:          code,
			HolderID:      holderID,
			ShowtimeID:    showtime.ID,
			PaymentMethod: paymentMethod.Code,
			Status:        entity.BookingStatusPending,
			PaymentStatus: entity.PaymentStatusUnpaid,
			TotalAmount:   total,
			FinalAmount:   total,
		}
		if paymentMethod.IsCash {
			booking.Status = entity.BookingStatusConfirmed
			booking.PaymentStatus = entity.PaymentStatusPaid
			booking.PaidAt = &now
		}

		if err := s.repo.Booking.Create(ctx, booking); err != nil {
			return err
		}

		for _, sale := range sales {
			sale.BookingID = booking.ID
		}
		if err := s.repo.SeatSale.CreateBatch(ctx, sales); err != nil {
			return err
		}

		if err := s.repo.Hold.MarkConsumed(ctx, holdIDs, now); err != nil {
			return err
		}

		if paymentMethod.IsCash {
			return s.repo.Settlement.Create(ctx, &entity.SettlementLog{
				Base: entity.Base{
					ID:        uuid.New(),
					CreatedAt: now,
					UpdatedAt: now,
				},
				BookingID:   booking.ID,
				Provider:    entity.ProviderCash,
				ProviderRef: entity.ProviderCash + "-" + booking.Code,
				Amount:      booking.FinalAmount,
				Status:      entity.SettlementStatusPaid,
			})
		}

		return nil
	})
	if err != nil {
		s.log.Warn("Create booking failed",
			zap.Error(err),
			zap.String("token", utils.MaskToken(req.HoldToken)),
			zap.String("payment_method", req.PaymentMethod),
		)
		return nil, err
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("booking_code", booking.Code),
		zap.String("payment_method", booking.PaymentMethod),
		zap.Int("seat_count", len(sales)),
		zap.Int64("final_amount", booking.FinalAmount),
	)

	if booking.PaymentStatus == entity.PaymentStatusPaid {
		s.publishPaid(ctx, booking, entity.ProviderCash)
	}

	resp := response.BookingToResponse(booking, sales)
	return &resp, nil
}

// newBookingCode retries random codes until one is free.
func (s *bookingService) newBookingCode(ctx context.Context) (string, error) {
	retries := s.config.CodeMaxRetries
	if retries <= 0 {
		retries = 5
	}

	for attempt := 1; attempt <= retries; attempt++ {
		code, err := utils.GenerateBookingCode()
		if err != nil {
			return "", fmt.Errorf("generate booking code: %w", err)
		}

		exists, err := s.repo.Booking.ExistsByCode(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}

		s.log.Warn("Booking code collision", zap.String("code", code), zap.Int("attempt", attempt))
	}

	return "", fmt.Errorf("%w: could not allocate a unique booking code after %d attempts", entity.ErrConflict, retries)
}

func (s *bookingService) publishPaid(ctx context.Context, booking *entity.Booking, provider string) {
	msg := event.BookingPaid{
		BookingID:   booking.ID,
		BookingCode: booking.Code,
		HolderID:    booking.HolderID,
		ShowtimeID:  booking.ShowtimeID,
		Amount:      booking.FinalAmount,
		Provider:    provider,
		PaidAt:      *booking.PaidAt,
	}
	if err := s.publisher.Publish(context.WithoutCancel(ctx), s.queue, msg); err != nil {
		s.log.Error("Failed to publish booking paid event",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
	}
}

func (s *bookingService) Cancel(ctx context.Context, bookingID string, holderID *uuid.UUID, staff bool) error {
	bookingUUID, err := parseID("booking ID", bookingID)
	if err != nil {
		return err
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingUUID)
	if err != nil {
		return fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return fmt.Errorf("%w: booking %s", entity.ErrNotFound, bookingID)
	}

	sales, err := s.repo.SeatSale.FindByBookingID(ctx, bookingUUID)
	if err != nil {
		return fmt.Errorf("find booking seats: %w", err)
	}
	seatSet := make(map[uuid.UUID]struct{}, len(sales))
	for _, sale := range sales {
		seatSet[sale.ShowtimeSeatID] = struct{}{}
	}
	seatIDs := sortedIDs(seatSet)

	err = s.repo.Tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.repo.ShowtimeSeat.LockByIDs(ctx, seatIDs); err != nil {
			return fmt.Errorf("lock seats: %w", err)
		}
		if _, err := s.repo.SeatSale.LockActiveBySeats(ctx, seatIDs); err != nil {
			return fmt.Errorf("lock seat sales: %w", err)
		}

		locked, err := s.repo.Booking.LockByID(ctx, bookingUUID)
		if err != nil {
			return fmt.Errorf("lock booking: %w", err)
		}
		if locked == nil {
			return fmt.Errorf("%w: booking %s", entity.ErrNotFound, bookingID)
		}

		if !staff && !locked.OwnedBy(holderID) {
			return fmt.Errorf("%w: booking belongs to another customer", entity.ErrConflict)
		}
		switch {
		case locked.Status == entity.BookingStatusCancelled:
			return fmt.Errorf("%w: booking is already cancelled", entity.ErrValidation)
		case locked.PaymentStatus == entity.PaymentStatusPaid:
			return fmt.Errorf("%w: paid bookings cannot be cancelled", entity.ErrValidation)
		case !locked.IsAwaitingPayment():
			return fmt.Errorf("%w: booking is %s", entity.ErrValidation, locked.Status)
		}

		showtime, err := s.repo.Showtime.FindByID(ctx, locked.ShowtimeID)
		if err != nil {
			return fmt.Errorf("find showtime: %w", err)
		}
		now := s.clock.Now()
		if showtime != nil && showtime.HasStarted(now) {
			return fmt.Errorf("%w: showtime has already started", entity.ErrValidation)
		}

		if _, err := s.repo.Booking.Cancel(ctx, bookingUUID, now); err != nil {
			return err
		}
		_, err = s.repo.SeatSale.CloseByBooking(ctx, bookingUUID, now)
		return err
	})
	if err != nil {
		s.log.Warn("Cancel booking failed",
			zap.Error(err),
			zap.String("booking_id", bookingID),
			zap.Bool("staff", staff),
		)
		return err
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID),
		zap.String("booking_code", booking.Code),
		zap.Bool("staff", staff),
	)

	return nil
}

func (s *bookingService) GetBooking(ctx context.Context, bookingID string, holderID *uuid.UUID, staff bool) (*response.BookingDetailResponse, error) {
	bookingUUID, err := parseID("booking ID", bookingID)
	if err != nil {
		return nil, err
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingUUID)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil || (!staff && !booking.OwnedBy(holderID)) {
		return nil, fmt.Errorf("%w: booking %s", entity.ErrNotFound, bookingID)
	}

	sales, err := s.repo.SeatSale.FindByBookingID(ctx, bookingUUID)
	if err != nil {
		return nil, fmt.Errorf("find booking seats: %w", err)
	}

	settlements, err := s.repo.Settlement.FindByBookingID(ctx, bookingUUID)
	if err != nil {
		return nil, fmt.Errorf("find settlements: %w", err)
	}

	resp := &response.BookingDetailResponse{
		BookingResponse: response.BookingToResponse(booking, sales),
		Settlements:     make([]response.SettlementResponse, len(settlements)),
	}
	for i, settlement := range settlements {
		resp.Settlements[i] = response.SettlementToResponse(settlement)
	}

	return resp, nil
}

func (s *bookingService) ListByHolder(ctx context.Context, holderID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	bookings, err := s.repo.Booking.FindByHolderID(ctx, holderID, limit, offset)
	if err != nil {
		s.log.Error("Failed to get holder bookings",
			zap.Error(err),
			zap.String("holder_id", holderID.String()),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("get holder bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByHolderID(ctx, holderID)
	if err != nil {
		s.log.Error("Failed to count holder bookings", zap.Error(err))
		return nil, fmt.Errorf("count holder bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		sales, err := s.repo.SeatSale.FindByBookingID(ctx, booking.ID)
		if err != nil {
			return nil, fmt.Errorf("find booking seats: %w", err)
		}
		bookingResponses[i] = response.BookingToResponse(booking, sales)
	}

	return response.NewPaginatedResponse(bookingResponses, req.Page, limit, total), nil
}

func (s *bookingService) GetPaymentMethods(ctx context.Context) ([]*response.PaymentMethodResponse, error) {
	paymentMethods, err := s.repo.PaymentMethod.FindAllActive(ctx)
	if err != nil {
		s.log.Error("Failed to get payment methods", zap.Error(err))
		return nil, fmt.Errorf("get payment methods: %w", err)
	}

	responses := make([]*response.PaymentMethodResponse, len(paymentMethods))
	for i, pm := range paymentMethods {
		resp := response.PaymentMethodToResponse(pm)
		responses[i] = &resp
	}

	return responses, nil
}
