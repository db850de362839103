package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CommissionKey selects which gateway fee schedule applies to a payment.
type CommissionKey string

const (
	CommissionKeyWallet CommissionKey = "wallet"
	CommissionKeyCard   CommissionKey = "card"
)

func (k CommissionKey) String() string {
	return string(k)
}

func (k CommissionKey) Validate() error {
	switch k {
	case CommissionKeyWallet, CommissionKeyCard:
		return nil
	default:
		return fmt.Errorf("%w: unknown commission key %q", ErrInvalidArgument, string(k))
	}
}

var commissionRates = map[CommissionKey]decimal.Decimal{
	CommissionKeyWallet: decimal.RequireFromString("0.01"),
	CommissionKeyCard:   decimal.RequireFromString("0.03"),
}

// CommissionRate returns the gateway fee rate for the key. An unknown key is
// a configuration error, not user input.
func CommissionRate(key CommissionKey) (decimal.Decimal, error) {
	rate, ok := commissionRates[key]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: no commission rate for key %q", ErrInvalidArgument, string(key))
	}

	return rate, nil
}

// GrossUp returns the amount the buyer must send so that net reaches the
// merchant after the gateway takes its fee. When the merchant absorbs the fee
// the net amount is returned unchanged. Result is rounded half-up to cents.
//
// The wallet fee is charged on top of the transferred amount, the card fee is
// taken out of it, hence the two formulas.
func GrossUp(net decimal.Decimal, key CommissionKey, buyerPaysFee bool) (decimal.Decimal, error) {
	if !buyerPaysFee {
		return net.Round(2), nil
	}

	rate, err := CommissionRate(key)
	if err != nil {
		return decimal.Decimal{}, err
	}

	one := decimal.New(1, 0)

	switch key {
	case CommissionKeyWallet:
		return net.Div(one.Sub(rate.Div(one.Add(rate)))).Round(2), nil
	case CommissionKeyCard:
		return net.Div(one.Sub(rate)).Round(2), nil
	default:
		return decimal.Decimal{}, fmt.Errorf("%w: unknown commission key %q", ErrInvalidArgument, string(key))
	}
}

// ExpectedAmounts returns the credited and charged amounts the gateway should
// report for this payment: expectedReceived is what lands on the merchant
// account, expectedPayer is what the buyer is charged. The payer side comes
// from the same gross-up formula that builds the checkout sum, so a buyer who
// paid exactly the advertised amount always reconciles.
func (p Payment) ExpectedAmounts(buyerPaysFee bool) (expectedReceived, expectedPayer decimal.Decimal, err error) {
	total := p.Total()

	if buyerPaysFee {
		payer, err := GrossUp(total, p.CommissionKey, true)
		if err != nil {
			return decimal.Decimal{}, decimal.Decimal{}, err
		}

		return total, payer, nil
	}

	rate, err := CommissionRate(p.CommissionKey)
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, err
	}

	one := decimal.New(1, 0)

	return total.Mul(one.Sub(rate)).Round(2), total, nil
}
