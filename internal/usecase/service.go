package usecase

import (
	"cinema-reservation/internal/data/repository"
	"cinema-reservation/pkg/broker"
	"cinema-reservation/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Showtime   ShowtimeService
	Hold       HoldService
	Booking    BookingService
	Settlement SettlementService
}

// Dependencies are the collaborators shared by the services.
type Dependencies struct {
	Clock     utils.Clock
	Provider  PaymentProvider
	Publisher broker.Publisher
}

func NewService(repo *repository.Repository, config *utils.Config, deps Dependencies, log *zap.Logger) *Service {
	if deps.Clock == nil {
		deps.Clock = utils.SystemClock()
	}
	if deps.Publisher == nil {
		deps.Publisher = broker.NewLogPublisher(log)
	}

	return &Service{
		Showtime:   NewShowtimeService(repo, deps.Clock, log),
		Hold:       NewHoldService(repo, config.Booking, deps.Clock, log),
		Booking:    NewBookingService(repo, config.Booking, config.Broker, deps.Clock, deps.Publisher, log),
		Settlement: NewSettlementService(repo, config.Payment, config.Broker, deps.Clock, deps.Provider, deps.Publisher, log),
	}
}
