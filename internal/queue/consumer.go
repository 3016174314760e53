package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

const auditFile = "booking.log"

// Consumer reads booking.confirmed and appends one line per event to
// <LogDir>/booking.log.
type Consumer struct {
	URL    string
	LogDir string
}

// Run consumes until ctx is cancelled, redialing with exponential backoff
// (capped at 30s) whenever the broker connection drops.  It returns nil on
// cancellation.
func (c *Consumer) Run(ctx context.Context) error {
	log := logrus.WithField("component", "booking-consumer")
	backoff := time.Second
	for {
		conn, err := amqp.Dial(c.URL)
		if err == nil {
			backoff = time.Second
			err = c.consume(ctx, conn)
			_ = conn.Close()
			if ctx.Err() != nil {
				return nil
			}
		}
		log.WithError(err).Warnf("consumer stopped, retrying in %s", backoff)

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(backoff):
		}
		if backoff < 30*time.Second {
			backoff *= 2
		}
	}
}

func (c *Consumer) consume(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		return fmt.Errorf("set qos: %w", err)
	}
	if _, err := ch.QueueDeclare(BookingConfirmedQueue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}
	msgs, err := ch.ConsumeWithContext(ctx, BookingConfirmedQueue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			if err := c.handleMessage(d.Body); err != nil {
				logrus.WithError(err).Error("booking-consumer: handle message")
				_ = d.Nack(false, false)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func (c *Consumer) handleMessage(body []byte) error {
	var ev BookingConfirmedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if ev.BookingID == "" {
		return errors.New("event has no bookingId")
	}
	if err := os.MkdirAll(c.LogDir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", c.LogDir, err)
	}
	f, err := os.OpenFile(filepath.Join(c.LogDir, auditFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(formatAuditLine(ev)); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}

func formatAuditLine(ev BookingConfirmedEvent) string {
	promo := "-"
	if ev.PromoCode != nil {
		promo = *ev.PromoCode
	}
	return fmt.Sprintf("[%s] Booking confirmed | booking_id=%s | user_id=%s | experience=%q | slot=%s %s-%s | total=%s | promo=%s\n",
		ev.ConfirmedAt, ev.BookingID, ev.UserID, ev.ExperienceTitle, ev.SlotDate, ev.StartTime, ev.EndTime, ev.TotalPrice, promo)
}
