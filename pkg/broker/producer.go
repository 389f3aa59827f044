package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"
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

type ItemReportedEvent struct {
	ItemID       uuid.UUID `json:"item_id"`
	Name         string    `json:"name"`
	FlightNumber string    `json:"flight_number"`
	FoundByID    uuid.UUID `json:"found_by_id"`
	ReportedAt   time.Time `json:"reported_at"`
}

func (p *Producer) SendItemReported(ctx context.Context, event ItemReportedEvent) {
	p.send(ctx, "item.reported", event.ItemID, event)
}

type ItemDeliveredEvent struct {
	ItemID        uuid.UUID `json:"item_id"`
	Name          string    `json:"name"`
	FlightNumber  string    `json:"flight_number"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	DeliveredByID uuid.UUID `json:"delivered_by_id"`
	DeliveredAt   time.Time `json:"delivered_at"`
}

func (p *Producer) SendItemDelivered(ctx context.Context, event ItemDeliveredEvent) {
	p.send(ctx, "item.delivered", event.ItemID, event)
}

func (p *Producer) send(ctx context.Context, eventType string, key uuid.UUID, event any) {
	b, err := json.Marshal(event)
	if err != nil {
		p.l.Error(fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key.String()),
		Value: b,
		Topic: p.topic,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventType)},
		},
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

func (l *infoLogger) Printf(format string, v ...any) {
	l.l.Info(fmt.Sprintf(format, v...))
}

type errorLogger struct {
	l *slog.Logger
}

func (l *errorLogger) Printf(format string, v ...any) {
	l.l.Error(fmt.Sprintf(format, v...))
}
