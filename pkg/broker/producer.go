package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

type Producer struct {
	l     *slog.Logger
	w     *kafka.Writer
	topic string
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  "",
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Compression:            0,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:     l,
		w:     w,
		topic: topic,
	}
}

type PaymentCompletedEvent struct {
	Type      string          `json:"type"`
	PaymentID string          `json:"paymentId"`
	BuyerID   string          `json:"buyerId"`
	Amount    decimal.Decimal `json:"amount"`
}

// SendPaymentCompleted publishes the settlement event other services react
// to (access grants, buyer notifications). Fire and forget: delivery errors
// are logged, the payment itself is already settled.
func (p *Producer) SendPaymentCompleted(ctx context.Context, paymentID, buyerID string, amount decimal.Decimal) {
	event := PaymentCompletedEvent{
		Type:      "payment_completed",
		PaymentID: paymentID,
		BuyerID:   buyerID,
		Amount:    amount,
	}

	b, err := json.Marshal(event)
	if err != nil {
		p.l.Error(fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(paymentID),
		Value: b,
		Topic: p.topic,
	})
	if err != nil {
		p.l.Error(fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}

type infoLogger struct {
	l *slog.Logger
}

func (il *infoLogger) Printf(format string, args ...any) {
	il.l.Debug(fmt.Sprintf(format, args...))
}

type errorLogger struct {
	l *slog.Logger
}

func (el *errorLogger) Printf(format string, args ...any) {
	el.l.Error(fmt.Sprintf(format, args...))
}
