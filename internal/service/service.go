package service

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/spfbase/payments/internal/entity"
	"github.com/spfbase/payments/pkg/config"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type Repository interface {
	CreateService(ctx context.Context, s entity.Service) error
	Service(ctx context.Context, id string) (entity.Service, error)
	Services(ctx context.Context) ([]entity.Service, error)
	UpdateService(ctx context.Context, s entity.Service) error
	DeleteService(ctx context.Context, id string) error
	DecrementStock(ctx context.Context, id string, qty int, updatedAt time.Time) (bool, error)
	IncrementStock(ctx context.Context, id string, qty int, updatedAt time.Time) error

	CreatePayment(ctx context.Context, p entity.Payment) error
	Payment(ctx context.Context, id string) (entity.Payment, error)
	Payments(ctx context.Context, f entity.PaymentFilter) ([]entity.Payment, int, error)
	UpdatePayment(ctx context.Context, p entity.Payment) error
	DeletePayment(ctx context.Context, id string) error

	EnqueueReceipt(ctx context.Context, paymentID string, lines []entity.FiscalLine, createdAt time.Time) error
	DequeueReceipt(ctx context.Context, paymentID string) error
	PendingReceipts(ctx context.Context) ([]entity.FiscalQueueEntry, error)
}

type TaxService interface {
	RegisterIncome(ctx context.Context, lines []entity.FiscalLine) (string, error)
	CancelReceipt(ctx context.Context, receiptID string, reason entity.ReceiptCancelReason) error
	ReceiptPNG(ctx context.Context, receiptID string) ([]byte, error)
}

type Producer interface {
	SendPaymentCompleted(ctx context.Context, paymentID, buyerID string, amount decimal.Decimal)
}

type Service struct {
	repo     Repository
	tax      TaxService
	producer Producer
	gateway  config.Gateway
}

func New(repo Repository, tax TaxService, producer Producer, gateway config.Gateway) *Service {
	return &Service{
		repo:     repo,
		tax:      tax,
		producer: producer,
		gateway:  gateway,
	}
}

func (s *Service) CreateService(ctx context.Context, svc entity.Service) (entity.Service, error) {
	now := time.Now()

	if svc.ID == "" {
		svc.ID = newToken()
	}

	if svc.CreationDate.IsZero() {
		svc.CreationDate = now
	}

	if svc.Status == "" {
		svc.Status = entity.ServiceStatusOn
	}

	svc.CreatedAt = now
	svc.UpdatedAt = now

	err := svc.Validate()
	if err != nil {
		return entity.Service{}, err
	}

	err = s.repo.CreateService(ctx, svc)
	if err != nil {
		return entity.Service{}, fmt.Errorf("create service: %w", err)
	}

	slog.InfoContext(ctx, fmt.Sprintf("Создана услуга %q (%s) по цене %s", svc.Name, svc.ID, svc.PriceMain))

	return svc, nil
}

func (s *Service) Service(ctx context.Context, id string) (entity.Service, error) {
	svc, err := s.repo.Service(ctx, id)
	if err != nil {
		return entity.Service{}, fmt.Errorf("get service %q: %w", id, err)
	}

	return svc, nil
}

func (s *Service) Services(ctx context.Context) ([]entity.Service, error) {
	services, err := s.repo.Services(ctx)
	if err != nil {
		return nil, fmt.Errorf("get services: %w", err)
	}

	return services, nil
}

func (s *Service) EditService(ctx context.Context, id string, patch entity.ServicePatch) (entity.Service, error) {
	svc, err := s.repo.Service(ctx, id)
	if err != nil {
		return entity.Service{}, fmt.Errorf("get service %q: %w", id, err)
	}

	svc, err = patch.Apply(svc)
	if err != nil {
		return entity.Service{}, err
	}

	svc.UpdatedAt = time.Now()

	err = s.repo.UpdateService(ctx, svc)
	if err != nil {
		return entity.Service{}, fmt.Errorf("update service %q: %w", id, err)
	}

	slog.InfoContext(ctx, fmt.Sprintf("Изменена услуга %q (%s)", svc.Name, svc.ID))

	return svc, nil
}

func (s *Service) DeleteService(ctx context.Context, id string) error {
	err := s.repo.DeleteService(ctx, id)
	if err != nil {
		return fmt.Errorf("delete service %q: %w", id, err)
	}

	slog.InfoContext(ctx, fmt.Sprintf("Удалена услуга %s", id))

	return nil
}

// newToken returns a 32 character hex identifier, the format both services
// and payments use. Payment IDs double as gateway transfer labels, which must
// stay URL-safe.
func newToken() string {
	return hex.EncodeToString(uuid.Must(uuid.NewV4()).Bytes())
}
