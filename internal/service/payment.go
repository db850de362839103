package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spfbase/payments/internal/entity"
)

const (
	createPaymentAttempts = 10
	defaultPageLimit      = 20
)

// gatewayPaymentType maps a commission key to the gateway form code.
var gatewayPaymentType = map[entity.CommissionKey]string{
	entity.CommissionKeyWallet: "PC",
	entity.CommissionKeyCard:   "AC",
}

func (s *Service) CreatePayment(
	ctx context.Context,
	buyerID string,
	items []entity.ReservationItem,
	key entity.CommissionKey,
	status entity.PaymentStatus,
) (entity.Payment, error) {
	if buyerID == "" {
		return entity.Payment{}, fmt.Errorf("%w: empty buyer id", entity.ErrInvalidArgument)
	}

	err := key.Validate()
	if err != nil {
		return entity.Payment{}, err
	}

	if status == "" {
		status = entity.PaymentStatusPending
	}

	err = status.Validate()
	if err != nil {
		return entity.Payment{}, err
	}

	snapshot, err := s.Reserve(ctx, items)
	if err != nil {
		return entity.Payment{}, err
	}

	now := time.Now()

	p := entity.Payment{
		Status:         status,
		BuyerID:        buyerID,
		Snapshot:       snapshot,
		CommissionKey:  key,
		ReceivedAmount: decimal.Zero,
		PayerAmount:    decimal.Zero,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	for attempt := 0; attempt < createPaymentAttempts; attempt++ {
		p.ID = newToken()

		err = s.repo.CreatePayment(ctx, p)
		if errors.Is(err, entity.ErrAlreadyExists) {
			continue
		}

		if err != nil {
			s.restoreSnapshotStock(ctx, p.Snapshot)

			return entity.Payment{}, fmt.Errorf("create payment: %w", err)
		}

		slog.InfoContext(ctx, fmt.Sprintf("Создан платёж %s покупателя %s на сумму %s", p.ID, p.BuyerID, p.Total()))

		return p, nil
	}

	s.restoreSnapshotStock(ctx, p.Snapshot)

	return entity.Payment{}, fmt.Errorf("create payment: id collisions exhausted %d attempts", createPaymentAttempts)
}

func (s *Service) Payment(ctx context.Context, id string) (entity.Payment, error) {
	p, err := s.repo.Payment(ctx, id)
	if err != nil {
		return entity.Payment{}, fmt.Errorf("get payment %q: %w", id, err)
	}

	return p, nil
}

func (s *Service) Payments(ctx context.Context, f entity.PaymentFilter) ([]entity.Payment, int, error) {
	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit == 0 {
		f.Limit = defaultPageLimit
	}

	payments, total, err := s.repo.Payments(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("get payments: %w", err)
	}

	return payments, total, nil
}

func (s *Service) EditPayment(ctx context.Context, id string, patch entity.PaymentPatch) (entity.Payment, error) {
	p, err := s.repo.Payment(ctx, id)
	if err != nil {
		return entity.Payment{}, fmt.Errorf("get payment %q: %w", id, err)
	}

	if patch.Status != nil && *patch.Status != p.Status {
		p, err = s.transition(ctx, p, *patch.Status)
		if err != nil {
			return entity.Payment{}, err
		}
	}

	if patch.BuyerID != nil {
		if *patch.BuyerID == "" {
			return entity.Payment{}, fmt.Errorf("%w: empty buyer id", entity.ErrInvalidArgument)
		}

		p.BuyerID = *patch.BuyerID
	}

	if patch.CommissionKey != nil {
		err = patch.CommissionKey.Validate()
		if err != nil {
			return entity.Payment{}, err
		}

		p.CommissionKey = *patch.CommissionKey
	}

	p.UpdatedAt = time.Now()

	err = s.repo.UpdatePayment(ctx, p)
	if err != nil {
		return entity.Payment{}, fmt.Errorf("update payment %q: %w", id, err)
	}

	return p, nil
}

// transition applies a status change with its side effects: a pending payment
// that is called off gets its stock back, a completed one that is refunded
// gets its receipt voided. The change is not persisted here.
func (s *Service) transition(ctx context.Context, p entity.Payment, next entity.PaymentStatus) (entity.Payment, error) {
	err := next.Validate()
	if err != nil {
		return entity.Payment{}, err
	}

	if !p.Status.CanTransition(next) {
		return entity.Payment{}, fmt.Errorf("%w: payment %s is %q", entity.ErrStatusLocked, p.ID, p.Status)
	}

	switch {
	case p.Status == entity.PaymentStatusPending &&
		(next == entity.PaymentStatusCancelled || next == entity.PaymentStatusDeclined):
		s.restoreSnapshotStock(ctx, p.Snapshot)

	case p.Status == entity.PaymentStatusPending && next == entity.PaymentStatusDone:
		// A completed payment owes a fiscal receipt no matter how it got
		// completed, by the gateway or by hand.
		err = s.repo.EnqueueReceipt(ctx, p.ID, p.FiscalLines(), time.Now())
		if err != nil {
			return entity.Payment{}, fmt.Errorf("enqueue receipt of %s: %w", p.ID, err)
		}

	case p.Status == entity.PaymentStatusDone && next == entity.PaymentStatusCancelled:
		if p.TaxReceiptID != "" {
			err = s.tax.CancelReceipt(ctx, p.TaxReceiptID, entity.ReceiptCancelRefund)
			if err != nil {
				return entity.Payment{}, fmt.Errorf("cancel receipt %q: %w", p.TaxReceiptID, err)
			}

			p.TaxReceiptID = ""
		}

		err = s.repo.DequeueReceipt(ctx, p.ID)
		if err != nil {
			return entity.Payment{}, fmt.Errorf("dequeue receipt of %s: %w", p.ID, err)
		}
	}

	slog.InfoContext(ctx, fmt.Sprintf("Платёж %s переведён из статуса %q в %q", p.ID, p.Status, next))

	p.Status = next

	return p, nil
}

func (s *Service) DeletePayment(ctx context.Context, id string) error {
	p, err := s.repo.Payment(ctx, id)
	if err != nil {
		return fmt.Errorf("get payment %q: %w", id, err)
	}

	// Only a pending payment still holds its reservation.
	if p.Status == entity.PaymentStatusPending {
		s.restoreSnapshotStock(ctx, p.Snapshot)
	}

	// A deleted record must not leave registered income behind. A receipt
	// still waiting in the queue needs no voiding: the issue tick drops
	// entries whose payment is gone.
	if p.TaxReceiptID != "" {
		err = s.tax.CancelReceipt(ctx, p.TaxReceiptID, entity.ReceiptCancelErroneous)
		if err != nil {
			return fmt.Errorf("cancel receipt %q: %w", p.TaxReceiptID, err)
		}
	}

	err = s.repo.DeletePayment(ctx, id)
	if err != nil {
		return fmt.Errorf("delete payment %q: %w", id, err)
	}

	slog.InfoContext(ctx, fmt.Sprintf("Удалён платёж %s в статусе %q", id, p.Status))

	return nil
}

// CheckoutURL builds the gateway quickpay form link for a pending payment.
// The payment ID travels as the transfer label, which is how the webhook
// finds the payment later.
func (s *Service) CheckoutURL(ctx context.Context, id string) (string, error) {
	p, err := s.repo.Payment(ctx, id)
	if err != nil {
		return "", fmt.Errorf("get payment %q: %w", id, err)
	}

	if p.Status != entity.PaymentStatusPending {
		return "", fmt.Errorf("%w: payment %s is %q", entity.ErrStatusLocked, id, p.Status)
	}

	sum, err := entity.GrossUp(p.Total(), p.CommissionKey, s.gateway.BuyerPaysFee)
	if err != nil {
		return "", err
	}

	v := url.Values{}
	v.Set("receiver", s.gateway.Receiver)
	v.Set("quickpay-form", "button")
	v.Set("paymentType", gatewayPaymentType[p.CommissionKey])
	v.Set("sum", sum.StringFixed(2))
	v.Set("label", p.ID)
	v.Set("successURL", fmt.Sprintf("%s/%s/status", s.gateway.SuccessURL, p.ID))

	return s.gateway.CheckoutURL + "?" + v.Encode(), nil
}

func (s *Service) ReceiptPNG(ctx context.Context, paymentID string) ([]byte, error) {
	p, err := s.repo.Payment(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("get payment %q: %w", paymentID, err)
	}

	if p.TaxReceiptID == "" {
		return nil, fmt.Errorf("%w: payment %s has no receipt", entity.ErrNotFound, paymentID)
	}

	png, err := s.tax.ReceiptPNG(ctx, p.TaxReceiptID)
	if err != nil {
		return nil, fmt.Errorf("get receipt %q image: %w", p.TaxReceiptID, err)
	}

	return png, nil
}
