package entity

import (
	"fmt"
)

// FiscalQueueEntry is a completed payment waiting for receipt issuance. It
// exists while the payment lacks a tax receipt and is removed once the tax
// authority accepts the income report.
type FiscalQueueEntry struct {
	PaymentID string
	Lines     []FiscalLine
}

// ReceiptCancelReason is the reason submitted when voiding an issued receipt.
type ReceiptCancelReason string

const (
	ReceiptCancelErroneous ReceiptCancelReason = "erroneous"
	ReceiptCancelRefund    ReceiptCancelReason = "refund"
)

func (r ReceiptCancelReason) Validate() error {
	switch r {
	case ReceiptCancelErroneous, ReceiptCancelRefund:
		return nil
	default:
		return fmt.Errorf("%w: unknown receipt cancel reason %q", ErrInvalidArgument, string(r))
	}
}

// Comment is the fixed free-text reason the tax authority API expects.
func (r ReceiptCancelReason) Comment() string {
	if r == ReceiptCancelRefund {
		return "Возврат средств"
	}

	return "Чек сформирован ошибочно"
}
