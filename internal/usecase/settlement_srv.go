package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"cinema-reservation/internal/data/entity"
	"cinema-reservation/internal/data/repository"
	"cinema-reservation/internal/dto/request"
	"cinema-reservation/internal/dto/response"
	"cinema-reservation/internal/event"
	"cinema-reservation/pkg/broker"
	"cinema-reservation/pkg/payment"
	"cinema-reservation/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const referenceRetries = 5

// PaymentProvider is the part of the payment gateway the bridge needs.
type PaymentProvider interface {
	CreatePaymentLink(ctx context.Context, req payment.LinkRequest) (*payment.Link, error)
	GetPaymentStatus(ctx context.Context, orderCode int64) (*payment.Status, error)
}

// WebhookHeaders carries the authentication headers of a notification.
type WebhookHeaders struct {
	ClientID string
	APIKey   string
}

type SettlementService interface {
	Initiate(ctx context.Context, bookingID string, holderID *uuid.UUID, req *request.InitiatePaymentRequest) (*response.PaymentInitiationResponse, error)
	Settle(ctx context.Context, raw []byte, headers WebhookHeaders) error
}

type settlementService struct {
	repo      *repository.Repository
	config    utils.PaymentConfig
	queue     string
	clock     utils.Clock
	provider  PaymentProvider
	publisher broker.Publisher
	log       *zap.Logger
}

func NewSettlementService(
	repo *repository.Repository,
	config utils.PaymentConfig,
	brokerConfig utils.BrokerConfig,
	clock utils.Clock,
	provider PaymentProvider,
	publisher broker.Publisher,
	log *zap.Logger,
) SettlementService {
	return &settlementService{
		repo:      repo,
		config:    config,
		queue:     brokerConfig.Queue,
		clock:     clock,
		provider:  provider,
		publisher: publisher,
		log:       log.With(zap.String("service", "settlement")),
	}
}

// transferReference is the text the payer's transfer description must carry.
func (s *settlementService) transferReference(bookingCode string) string {
	return strings.ToUpper(s.config.TransferPrefix + bookingCode)
}

func (s *settlementService) Initiate(ctx context.Context, bookingID string, holderID *uuid.UUID, req *request.InitiatePaymentRequest) (*response.PaymentInitiationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Initiate payment validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	bookingUUID, err := parseID("booking ID", bookingID)
	if err != nil {
		return nil, err
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingUUID)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: booking %s", entity.ErrNotFound, bookingID)
	}
	if !booking.OwnedBy(holderID) {
		return nil, fmt.Errorf("%w: booking belongs to another customer", entity.ErrConflict)
	}
	if !booking.IsAwaitingPayment() {
		return nil, fmt.Errorf("%w: booking is %s/%s", entity.ErrValidation, booking.Status, booking.PaymentStatus)
	}

	sales, err := s.repo.SeatSale.FindByBookingID(ctx, bookingUUID)
	if err != nil {
		return nil, fmt.Errorf("find booking seats: %w", err)
	}
	var amount int64
	for _, sale := range sales {
		if sale.CancelledAt == nil {
			amount += sale.FinalPrice
		}
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: booking has nothing to pay", entity.ErrValidation)
	}

	now := s.clock.Now()
	orderCode, err := s.newReference(ctx)
	if err != nil {
		return nil, err
	}

	transferRef := s.transferReference(booking.Code)
	expiresAt := now.Add(s.config.Expiry)

	link, err := s.provider.CreatePaymentLink(ctx, payment.LinkRequest{
		OrderCode:   orderCode,
		Amount:      amount,
		Description: transferRef,
		BuyerEmail:  req.PayerEmail,
		ExpiresAt:   expiresAt,
	})
	if err != nil {
		s.log.Error("Failed to create payment link",
			zap.Error(err),
			zap.String("booking_id", bookingID),
			zap.Int64("order_code", orderCode),
		)
		return nil, fmt.Errorf("%w: %w", entity.ErrProvider, err)
	}

	settlement := &entity.SettlementLog{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingID:         booking.ID,
		Provider:          entity.ProviderPayOS,
		ProviderRef:       strconv.FormatInt(orderCode, 10),
		Amount:            amount,
		Status:            entity.SettlementStatusPending,
		TransferReference: transferRef,
	}
	if err := s.repo.Settlement.Create(ctx, settlement); err != nil {
		return nil, err
	}

	s.log.Info("Payment initiated",
		zap.String("booking_id", bookingID),
		zap.Int64("order_code", orderCode),
		zap.Int64("amount", amount),
	)

	return &response.PaymentInitiationResponse{
		BookingID:         booking.ID.String(),
		Amount:            amount,
		OrderCode:         orderCode,
		QRPayload:         link.QRCode,
		TransferReference: transferRef,
		CheckoutURL:       link.CheckoutURL,
		ExpiresAt:         expiresAt,
	}, nil
}

func (s *settlementService) newReference(ctx context.Context) (int64, error) {
	for attempt := 1; attempt <= referenceRetries; attempt++ {
		ref, err := utils.GeneratePaymentReference(s.clock.Now())
		if err != nil {
			return 0, fmt.Errorf("generate payment reference: %w", err)
		}

		existing, err := s.repo.Settlement.FindByProviderRef(ctx, strconv.FormatInt(ref, 10))
		if err != nil {
			return 0, err
		}
		if existing == nil {
			return ref, nil
		}
	}

	return 0, fmt.Errorf("%w: could not allocate a payment reference", entity.ErrConflict)
}

type settleOutcome int

const (
	outcomeNoop settleOutcome = iota
	outcomePaid
	outcomeFailed
	outcomeRejected
)

func (s *settlementService) Settle(ctx context.Context, raw []byte, headers WebhookHeaders) error {
	if err := s.checkHeaders(headers); err != nil {
		s.log.Warn("Webhook rejected", zap.Error(err))
		return err
	}

	notification, data, err := payment.ParseNotification(raw)
	if err != nil {
		s.log.Warn("Malformed webhook", zap.Error(err))
		return fmt.Errorf("%w: %w", entity.ErrValidation, err)
	}

	providerRef := strconv.FormatInt(data.OrderCode, 10)
	signatureOK := payment.Verify(s.config.ChecksumKey, notification.Data, notification.Signature)

	existing, err := s.repo.Settlement.FindByProviderRef(ctx, providerRef)
	if err != nil {
		return fmt.Errorf("find settlement: %w", err)
	}
	if existing == nil {
		s.log.Warn("Webhook for unknown reference", zap.String("provider_ref", providerRef))
		return fmt.Errorf("%w: unknown reference %s", entity.ErrSettlement, providerRef)
	}

	if !signatureOK {
		if err := s.confirmWithProvider(ctx, data.OrderCode, existing.Amount); err != nil {
			s.log.Warn("Webhook signature invalid and provider did not confirm",
				zap.Error(err),
				zap.String("provider_ref", providerRef),
			)
			return err
		}
		s.log.Info("Webhook signature invalid, accepted after status check",
			zap.String("provider_ref", providerRef))
	}

	var (
		outcome settleOutcome
		reason  string
		booking *entity.Booking
	)

	err = s.repo.Tx.WithinTx(ctx, func(ctx context.Context) error {
		settlement, err := s.repo.Settlement.LockByProviderRef(ctx, providerRef)
		if err != nil {
			return fmt.Errorf("lock settlement: %w", err)
		}
		if settlement == nil {
			return fmt.Errorf("%w: unknown reference %s", entity.ErrSettlement, providerRef)
		}

		booking, err = s.repo.Booking.LockByID(ctx, settlement.BookingID)
		if err != nil {
			return fmt.Errorf("lock booking: %w", err)
		}
		if booking == nil {
			return fmt.Errorf("%w: booking of reference %s is gone", entity.ErrSettlement, providerRef)
		}

		if booking.PaymentStatus == entity.PaymentStatusPaid {
			outcome = outcomeNoop
			return nil
		}

		now := s.clock.Now()
		switch {
		case booking.Status == entity.BookingStatusCancelled:
			outcome, reason = outcomeRejected, "booking is cancelled"
		case data.Amount != booking.FinalAmount:
			outcome, reason = outcomeRejected,
				fmt.Sprintf("amount %d does not match booking amount %d", data.Amount, booking.FinalAmount)
		case !containsReference(data.Description, settlement.TransferReference):
			outcome, reason = outcomeRejected, "description does not carry the transfer reference"
		case notification.Failed(data):
			outcome = outcomeFailed
		default:
			paid, err := s.repo.Booking.MarkPaid(ctx, booking.ID, now)
			if err != nil {
				return err
			}
			if !paid {
				outcome = outcomeNoop
				return nil
			}
			booking.Status = entity.BookingStatusConfirmed
			booking.PaymentStatus = entity.PaymentStatusPaid
			booking.PaidAt = &now
			outcome = outcomePaid
		}

		return s.repo.Settlement.UpdateStatus(ctx, settlement.ID, outcome.status(), json.RawMessage(raw), now)
	})
	if err != nil {
		s.log.Error("Settlement failed",
			zap.Error(err),
			zap.String("provider_ref", providerRef),
		)
		return err
	}

	switch outcome {
	case outcomeNoop:
		s.log.Info("Duplicate notification ignored", zap.String("provider_ref", providerRef))
	case outcomeFailed:
		s.log.Warn("Provider reported failed payment",
			zap.String("provider_ref", providerRef),
			zap.String("code", notification.Code),
			zap.String("desc", notification.Desc),
		)
	case outcomeRejected:
		s.log.Warn("Notification rejected",
			zap.String("provider_ref", providerRef),
			zap.String("reason", reason),
		)
		return fmt.Errorf("%w: %s", entity.ErrSettlement, reason)
	case outcomePaid:
		s.log.Info("Booking paid",
			zap.String("booking_id", booking.ID.String()),
			zap.String("booking_code", booking.Code),
			zap.String("provider_ref", providerRef),
		)
		s.publishPaid(ctx, booking)
	}

	return nil
}

func (o settleOutcome) status() entity.SettlementStatus {
	switch o {
	case outcomePaid:
		return entity.SettlementStatusPaid
	case outcomeFailed:
		return entity.SettlementStatusFailed
	default:
		return entity.SettlementStatusRejected
	}
}

func (s *settlementService) checkHeaders(headers WebhookHeaders) error {
	if s.config.ClientID != "" && headers.ClientID != s.config.ClientID {
		return fmt.Errorf("%w: unexpected client id", entity.ErrSettlement)
	}
	if s.config.WebhookKeyHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(s.config.WebhookKeyHash), []byte(headers.APIKey)); err != nil {
			return fmt.Errorf("%w: invalid api key", entity.ErrSettlement)
		}
	}
	return nil
}

// confirmWithProvider accepts an unsigned notification only when the
// provider itself reports the order paid in full.
func (s *settlementService) confirmWithProvider(ctx context.Context, orderCode, expected int64) error {
	if s.provider == nil {
		return fmt.Errorf("%w: invalid signature", entity.ErrSettlement)
	}

	status, err := s.provider.GetPaymentStatus(ctx, orderCode)
	if err != nil {
		return fmt.Errorf("%w: invalid signature, status check failed: %w", entity.ErrProvider, err)
	}
	if status.Status != payment.StatusPaid || status.AmountPaid < expected {
		return fmt.Errorf("%w: invalid signature, provider reports %s with %d paid",
			entity.ErrSettlement, status.Status, status.AmountPaid)
	}
	return nil
}

func (s *settlementService) publishPaid(ctx context.Context, booking *entity.Booking) {
	msg := event.BookingPaid{
		BookingID:   booking.ID,
		BookingCode: booking.Code,
		HolderID:    booking.HolderID,
		ShowtimeID:  booking.ShowtimeID,
		Amount:      booking.FinalAmount,
		Provider:    entity.ProviderPayOS,
		PaidAt:      *booking.PaidAt,
	}
	if err := s.publisher.Publish(context.WithoutCancel(ctx), s.queue, msg); err != nil {
		s.log.Error("Failed to publish booking paid event",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
	}
}

// containsReference matches ignoring case and the spaces banks insert.
func containsReference(description, reference string) bool {
	if reference == "" {
		return false
	}
	normalize := func(v string) string {
		return strings.ToUpper(strings.ReplaceAll(v, " ", ""))
	}
	return strings.Contains(normalize(description), normalize(reference))
}
