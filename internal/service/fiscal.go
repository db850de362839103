package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spfbase/payments/internal/entity"
)

// IssuePendingReceipts drains the fiscal queue once. Entries that fail stay
// queued for the next tick; one bad entry does not block the rest.
func (s *Service) IssuePendingReceipts(ctx context.Context) error {
	entries, err := s.repo.PendingReceipts(ctx)
	if err != nil {
		return fmt.Errorf("get pending receipts: %w", err)
	}

	var errs []error

	for _, entry := range entries {
		err = s.issueReceipt(ctx, entry)
		if err != nil {
			errs = append(errs, fmt.Errorf("payment %s: %w", entry.PaymentID, err))
		}
	}

	return errors.Join(errs...)
}

func (s *Service) issueReceipt(ctx context.Context, entry entity.FiscalQueueEntry) error {
	p, err := s.repo.Payment(ctx, entry.PaymentID)
	if errors.Is(err, entity.ErrNotFound) {
		// The payment is gone, nothing to fiscalize.
		return s.repo.DequeueReceipt(ctx, entry.PaymentID)
	}

	if err != nil {
		return fmt.Errorf("get payment: %w", err)
	}

	if p.TaxReceiptID == "" {
		receiptID, err := s.tax.RegisterIncome(ctx, entry.Lines)
		if err != nil {
			return fmt.Errorf("register income: %w", err)
		}

		p.TaxReceiptID = receiptID
		p.UpdatedAt = time.Now()

		// The receipt id must land on the payment before the entry leaves
		// the queue, otherwise a crash in between loses the receipt.
		err = s.repo.UpdatePayment(ctx, p)
		if err != nil {
			return fmt.Errorf("save receipt id %q: %w", receiptID, err)
		}

		slog.InfoContext(ctx, fmt.Sprintf("Выдан чек %s по платежу %s", receiptID, p.ID))
	}

	return s.repo.DequeueReceipt(ctx, entry.PaymentID)
}
