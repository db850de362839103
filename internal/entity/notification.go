package entity

import (
	"crypto/sha1"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// GatewayNotification is one inbound money-movement callback from the payment
// gateway, fields exactly as delivered in the form body. Label references a
// payment ID and may be empty for movements unrelated to any payment.
type GatewayNotification struct {
	OpType         string
	OpID           string
	Amount         string
	Currency       string
	Datetime       string
	Sender         string
	HeldFlag       string
	Signature      string
	Label          string
	WithdrawAmount string
	UnacceptedFlag string
}

// Digest computes the keyed SHA-1 the gateway signs notifications with: the
// hex digest of the ordered, "&"-joined fields with the shared secret
// substituted at the fixed position.
func (n GatewayNotification) Digest(secret string) string {
	checkString := strings.Join([]string{
		n.OpType,
		n.OpID,
		n.Amount,
		n.Currency,
		n.Datetime,
		n.Sender,
		n.HeldFlag,
		secret,
		n.Label,
	}, "&")

	sum := sha1.Sum([]byte(checkString))

	return hex.EncodeToString(sum[:])
}

// VerifySignature checks the notification signature in constant time.
func (n GatewayNotification) VerifySignature(secret string) bool {
	want := n.Digest(secret)

	return subtle.ConstantTimeCompare([]byte(want), []byte(n.Signature)) == 1
}

// Held reports whether the gateway still holds the funds (protected deal or
// an unaccepted incoming transfer): the money is not final yet.
func (n GatewayNotification) Held() bool {
	return n.HeldFlag == "true" || n.UnacceptedFlag == "true"
}
