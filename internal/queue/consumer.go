package queue

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/banquetpro/banquetpro-api/internal/logger"
)

// StartStatusConsumer connects to RabbitMQ, declares the durable event.status
// queue and starts consuming messages. Each message is appended to
// logs/events.log in a single-line, human-friendly format. The function runs
// a reconnect loop: processing errors are logged and the offending message is
// rejected without requeue so the server keeps operating.
func StartStatusConsumer() {
	log := logger.Get()
	url := brokerURL()
	for {
		conn, err := amqp.Dial(url)
		if err != nil {
			log.Warn("status-consumer: failed to dial broker", zap.Error(err))
			time.Sleep(5 * time.Second)
			continue
		}
		if err := consumeLoop(conn); err != nil {
			log.Warn("status-consumer: consume loop ended", zap.Error(err))
		}
		_ = conn.Close()
		time.Sleep(2 * time.Second)
	}
}

func consumeLoop(conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(statusQueueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	msgs, err := ch.Consume(statusQueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for d := range msgs {
		if err := handleMessage(d.Body); err != nil {
			logger.Get().Warn("status-consumer: handle message failed", zap.Error(err))
			_ = d.Nack(false, false) // reject, no requeue, to avoid tight loops
			continue
		}
		_ = d.Ack(false)
	}
	return errors.New("deliveries channel closed")
}

func handleMessage(body []byte) error {
	var msg StatusChangedMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if err := os.MkdirAll("logs", 0o755); err != nil {
		return fmt.Errorf("mkdir logs: %w", err)
	}
	f, err := os.OpenFile(filepath.Join("logs", "events.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	line := fmt.Sprintf("[%s] Event %s -> %s | event_id=%d | name=%q | type=%s | venue=%q | date=%s | budget=%d cents\n",
		msg.ChangedAt, msg.OldStatus, msg.NewStatus, msg.EventID, msg.Name, msg.EventType, msg.Venue, msg.Date, msg.BudgetCents)
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}
