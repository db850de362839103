package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusDone      PaymentStatus = "done"
	PaymentStatusCancelled PaymentStatus = "cancelled"
	PaymentStatusDeclined  PaymentStatus = "declined"
)

func (p PaymentStatus) String() string {
	return string(p)
}

func (p PaymentStatus) Validate() error {
	switch p {
	case PaymentStatusPending, PaymentStatusDone, PaymentStatusCancelled, PaymentStatusDeclined:
		return nil
	default:
		return fmt.Errorf("%w: unknown payment status %q", ErrInvalidArgument, string(p))
	}
}

// CanTransition reports whether moving from p to next is a legal status
// change. Pending may move anywhere; a completed payment may only be
// cancelled (refund); cancelled and declined are terminal.
func (p PaymentStatus) CanTransition(next PaymentStatus) bool {
	if p == next {
		return true
	}

	switch p {
	case PaymentStatusPending:
		return true
	case PaymentStatusDone:
		return next == PaymentStatusCancelled
	default:
		return false
	}
}

// Payment is a ledger record of one checkout. Snapshot lines carry the prices
// frozen at reservation time; money observed from the gateway accumulates in
// ReceivedAmount and PayerAmount.
type Payment struct {
	ID             string
	Status         PaymentStatus
	BuyerID        string
	Snapshot       []ServiceSnapshot
	CommissionKey  CommissionKey
	TaxReceiptID   string
	ReceivedAmount decimal.Decimal
	PayerAmount    decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Total is the amount owed, computed only from the frozen snapshot.
func (p Payment) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range p.Snapshot {
		total = total.Add(line.Price())
	}

	return total.Round(2)
}

// FiscalLine is one income position reported to the tax authority.
type FiscalLine struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// FiscalLines renders snapshot lines for fiscal receipt submission. The line
// name carries the service creation date so receipts for same-named services
// stay distinguishable.
func (p Payment) FiscalLines() []FiscalLine {
	lines := make([]FiscalLine, 0, len(p.Snapshot))
	for _, s := range p.Snapshot {
		lines = append(lines, FiscalLine{
			Name:   fmt.Sprintf("%s (от %s)", s.Name, s.CreationDate.Format("02.01.2006")),
			Amount: s.Price(),
		})
	}

	return lines
}

// ReservationItem is one requested catalog position in a new payment.
type ReservationItem struct {
	ServiceID string
	Quantity  int
}

// PaymentPatch is a partial ledger edit. Nil fields are untouched.
type PaymentPatch struct {
	Status        *PaymentStatus
	BuyerID       *string
	CommissionKey *CommissionKey
}

type PaymentFilter struct {
	Status  *PaymentStatus
	BuyerID *string
	Page    uint64
	Limit   uint64
}
