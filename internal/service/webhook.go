package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spfbase/payments/internal/entity"
)

// amountEpsilon absorbs the gateway's own cent rounding when comparing
// accumulated transfers against the expected totals.
var amountEpsilon = decimal.RequireFromString("0.01")

// HandleGatewayNotification processes one signed transfer notification.
// Amounts accumulate across notifications, so a payment may be settled by
// several partial transfers. The decision whether the payment is now paid is
// taken against the commission-adjusted expected amounts.
func (s *Service) HandleGatewayNotification(ctx context.Context, n entity.GatewayNotification) error {
	if !n.VerifySignature(s.gateway.Secret) {
		return fmt.Errorf("%w: operation %q", entity.ErrInvalidSignature, n.OpID)
	}

	if n.Label == "" {
		slog.InfoContext(ctx, fmt.Sprintf("Перевод %s без метки платежа на сумму %s", n.OpID, n.Amount))

		return nil
	}

	p, err := s.repo.Payment(ctx, n.Label)
	if err != nil {
		return fmt.Errorf("get payment %q: %w", n.Label, err)
	}

	amount, err := parseAmount(n.Amount)
	if err != nil {
		return err
	}

	p.ReceivedAmount = p.ReceivedAmount.Add(amount).Round(2)

	if n.WithdrawAmount != "" {
		withdraw, err := parseAmount(n.WithdrawAmount)
		if err != nil {
			return err
		}

		p.PayerAmount = p.PayerAmount.Add(withdraw).Round(2)
	}

	p.UpdatedAt = time.Now()

	switch {
	case p.Status == entity.PaymentStatusDone:
		// A repeated notification must not re-complete the payment; only
		// make sure the receipt obligation is on record.
		err = s.repo.UpdatePayment(ctx, p)
		if err != nil {
			return fmt.Errorf("update payment %q: %w", p.ID, err)
		}

		if p.TaxReceiptID == "" {
			err = s.repo.EnqueueReceipt(ctx, p.ID, p.FiscalLines(), p.UpdatedAt)
			if err != nil {
				return fmt.Errorf("enqueue receipt of %s: %w", p.ID, err)
			}
		}

		return nil

	case p.Status == entity.PaymentStatusCancelled || p.Status == entity.PaymentStatusDeclined:
		slog.WarnContext(ctx, fmt.Sprintf("Перевод %s по платежу %s в статусе %q", n.OpID, p.ID, p.Status))

		err = s.repo.UpdatePayment(ctx, p)
		if err != nil {
			return fmt.Errorf("update payment %q: %w", p.ID, err)
		}

		return nil

	case n.Held():
		// Funds are held by the gateway, not yet credited.
		err = s.repo.UpdatePayment(ctx, p)
		if err != nil {
			return fmt.Errorf("update payment %q: %w", p.ID, err)
		}

		return nil
	}

	return s.completeIfPaid(ctx, p)
}

func (s *Service) completeIfPaid(ctx context.Context, p entity.Payment) error {
	expectedReceived, expectedPayer, err := p.ExpectedAmounts(s.gateway.BuyerPaysFee)
	if err != nil {
		return err
	}

	paid := withinEpsilon(p.ReceivedAmount, expectedReceived)
	if paid && !p.PayerAmount.IsZero() {
		paid = withinEpsilon(p.PayerAmount, expectedPayer)
	}

	if !paid {
		err = s.repo.UpdatePayment(ctx, p)
		if err != nil {
			return fmt.Errorf("update payment %q: %w", p.ID, err)
		}

		slog.InfoContext(ctx, fmt.Sprintf("Платёж %s: получено %s из %s, ожидаем остаток",
			p.ID, p.ReceivedAmount, expectedReceived))

		return nil
	}

	p.Status = entity.PaymentStatusDone

	err = s.repo.UpdatePayment(ctx, p)
	if err != nil {
		return fmt.Errorf("update payment %q: %w", p.ID, err)
	}

	err = s.repo.EnqueueReceipt(ctx, p.ID, p.FiscalLines(), p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("enqueue receipt of %s: %w", p.ID, err)
	}

	s.producer.SendPaymentCompleted(ctx, p.ID, p.BuyerID, p.ReceivedAmount)

	slog.InfoContext(ctx, fmt.Sprintf("Платёж %s оплачен, получено %s", p.ID, p.ReceivedAmount))

	return nil
}

func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: malformed amount %q", entity.ErrInvalidArgument, raw)
	}

	return amount.Round(2), nil
}

func withinEpsilon(got, want decimal.Decimal) bool {
	return got.Sub(want).Abs().Cmp(amountEpsilon) <= 0
}
