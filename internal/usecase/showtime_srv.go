package usecase

import (
	"context"
	"fmt"

	"cinema-reservation/internal/data/entity"
	"cinema-reservation/internal/data/repository"
	"cinema-reservation/internal/dto/request"
	"cinema-reservation/internal/dto/response"
	"cinema-reservation/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ShowtimeService interface {
	// Public endpoints
	GetSeatMap(ctx context.Context, showtimeID string) (*response.SeatMapResponse, error)

	// Admin endpoints
	Schedule(ctx context.Context, req *request.ScheduleShowtimeRequest) (*response.ShowtimeResponse, error)
	SetActive(ctx context.Context, showtimeID string, req *request.SetShowtimeActiveRequest) error
	SetSeatDisabled(ctx context.Context, showtimeID, seatID string, req *request.SetSeatDisabledRequest) error
}

type showtimeService struct {
	repo  *repository.Repository
	clock utils.Clock
	log   *zap.Logger
}

func NewShowtimeService(repo *repository.Repository, clock utils.Clock, log *zap.Logger) ShowtimeService {
	return &showtimeService{
		repo:  repo,
		clock: clock,
		log:   log.With(zap.String("service", "showtime")),
	}
}

func (s *showtimeService) GetSeatMap(ctx context.Context, showtimeID string) (*response.SeatMapResponse, error) {
	showtimeUUID, err := parseID("showtime ID", showtimeID)
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

	entries, err := s.repo.ShowtimeSeat.ListSeatMap(ctx, showtimeUUID, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("list seat map: %w", err)
	}

	resp := &response.SeatMapResponse{
		ShowtimeID: showtime.ID.String(),
		StartsAt:   showtime.StartsAt,
		Seats:      make([]response.SeatMapSeat, len(entries)),
	}
	for i, e := range entries {
		resp.Seats[i] = response.SeatMapSeat{
			ID:     e.ID.String(),
			Row:    e.RowLabel,
			Number: e.SeatNumber,
			Type:   e.SeatType,
			Status: e.Status(),
			Price:  e.Price,
			PairID: PairID(e.SeatType, e.RowLabel, e.SeatNumber),
		}
	}

	return resp, nil
}

// Schedule creates a showtime and one inventory row per hall seat.
func (s *showtimeService) Schedule(ctx context.Context, req *request.ScheduleShowtimeRequest) (*response.ShowtimeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Schedule showtime validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	hallID, err := parseID("hall ID", req.HallID)
	if err != nil {
		return nil, err
	}

	var movieID *uuid.UUID
	if req.MovieID != nil {
		id, err := parseID("movie ID", *req.MovieID)
		if err != nil {
			return nil, err
		}
		movieID = &id
	}

	now := s.clock.Now()
	if !req.StartsAt.After(now) {
		return nil, fmt.Errorf("%w: showtime must start in the future", entity.ErrValidation)
	}

	hall, err := s.repo.Hall.FindByID(ctx, hallID)
	if err != nil {
		return nil, fmt.Errorf("find hall: %w", err)
	}
	if hall == nil {
		return nil, fmt.Errorf("%w: hall %s", entity.ErrNotFound, req.HallID)
	}

	seats, err := s.repo.Seat.FindByHallID(ctx, hallID)
	if err != nil {
		return nil, fmt.Errorf("find hall seats: %w", err)
	}
	if len(seats) == 0 {
		return nil, fmt.Errorf("%w: hall %s has no seats", entity.ErrValidation, req.HallID)
	}

	showtime := &entity.Showtime{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		HallID:    hallID,
		MovieID:   movieID,
		StartsAt:  req.StartsAt.UTC(),
		EndsAt:    req.EndsAt.UTC(),
		BasePrice: req.BasePrice,
		IsActive:  true,
	}

	rows := make([]*entity.ShowtimeSeat, len(seats))
	for i, seat := range seats {
		rows[i] = &entity.ShowtimeSeat{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			ShowtimeID: showtime.ID,
			SeatID:     seat.ID,
			Price:      entity.SeatPrice(req.BasePrice, seat.SeatType),
		}
	}

	err = s.repo.Tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repo.Showtime.Create(ctx, showtime); err != nil {
			return err
		}
		return s.repo.ShowtimeSeat.CreateBatch(ctx, rows)
	})
	if err != nil {
		return nil, fmt.Errorf("schedule showtime: %w", err)
	}

	s.log.Info("Showtime scheduled",
		zap.String("showtime_id", showtime.ID.String()),
		zap.String("hall_id", req.HallID),
		zap.Time("starts_at", showtime.StartsAt),
		zap.Int("seat_count", len(rows)),
	)

	resp := response.ShowtimeToResponse(showtime)
	resp.SeatCount = len(rows)
	return &resp, nil
}

func (s *showtimeService) SetActive(ctx context.Context, showtimeID string, req *request.SetShowtimeActiveRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return validationError(errs)
	}

	showtimeUUID, err := parseID("showtime ID", showtimeID)
	if err != nil {
		return err
	}

	if err := s.repo.Showtime.SetActive(ctx, showtimeUUID, *req.IsActive, s.clock.Now()); err != nil {
		return err
	}

	s.log.Info("Showtime active flag changed",
		zap.String("showtime_id", showtimeID),
		zap.Bool("active", *req.IsActive),
	)
	return nil
}

// SetSeatDisabled toggles the administrative flag; existing holds and sales
// are kept and the seat is refused at the next hold or booking.
func (s *showtimeService) SetSeatDisabled(ctx context.Context, showtimeID, seatID string, req *request.SetSeatDisabledRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return validationError(errs)
	}

	showtimeUUID, err := parseID("showtime ID", showtimeID)
	if err != nil {
		return err
	}
	seatUUID, err := parseID("seat ID", seatID)
	if err != nil {
		return err
	}

	err = s.repo.Tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.repo.ShowtimeSeat.LockByIDs(ctx, []uuid.UUID{seatUUID}); err != nil {
			return err
		}
		return s.repo.ShowtimeSeat.SetDisabled(ctx, showtimeUUID, seatUUID, *req.IsDisabled, s.clock.Now())
	})
	if err != nil {
		return err
	}

	s.log.Info("Seat disabled flag changed",
		zap.String("showtime_id", showtimeID),
		zap.String("showtime_seat_id", seatID),
		zap.Bool("disabled", *req.IsDisabled),
	)
	return nil
}
