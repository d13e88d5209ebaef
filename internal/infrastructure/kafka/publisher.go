package publisher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

// SettlementPublisher writes payment and batch settlement events to one
// Kafka topic, keyed by employee so per-employee ordering is preserved.
type SettlementPublisher struct {
	writer *kafka.Writer
}

func NewSettlementPublisher(brokers []string, topic string) *SettlementPublisher {
	return &SettlementPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *SettlementPublisher) PublishPayment(event PaymentEvent) error {
	return p.publish(event.EmployeeID, event)
}

func (p *SettlementPublisher) PublishBatchSettled(event BatchSettledEvent) error {
	return p.publish(event.EmployeeID, event)
}

func (p *SettlementPublisher) publish(key string, event any) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(context.Background(), kafka.Message{
		Key:   []byte(key),
		Value: value,
		Time:  time.Now(),
	})
}

func (p *SettlementPublisher) Close() error {
	return p.writer.Close()
}
