// Package amqp connects the analytics runner to a RabbitMQ broker: analysis
// requests in, report-ready announcements out. Publishing is guarded by a
// small circuit breaker so a dead broker cannot stall analysis runs.
package amqp

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

// Circuit breaker states.
const (
	StateClosed int32 = iota
	StateHalfOpen
	StateOpen
)

const (
	maxFailures = 5
	openTimeout = 30 * time.Second
)

type Client struct {
	conn         *amqp091.Connection
	channel      *amqp091.Channel
	url          string
	exchangeName string
	queueName    string

	failureCount int64
	lastFailure  time.Time
	state        int32
}

func NewClient(url, exchangeName, queueName string) (*Client, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	client := &Client{
		conn:         conn,
		channel:      channel,
		url:          url,
		exchangeName: exchangeName,
		queueName:    queueName,
	}

	if err := client.setup(); err != nil {
		client.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}

	return client, nil
}

func (c *Client) setup() error {
	err := c.channel.ExchangeDeclare(
		c.exchangeName, // name
		"direct",       // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	_, err = c.channel.QueueDeclare(
		c.queueName, // name
		true,        // durable
		false,       // delete when unused
		false,       // exclusive
		false,       // no-wait
		nil,         // arguments
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	err = c.channel.QueueBind(
		c.queueName,    // queue name
		c.queueName,    // routing key (same as queue name for direct exchange)
		c.exchangeName, // exchange
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	return nil
}

// PublishAnalysisRequest enqueues one analysis run request.
func (c *Client) PublishAnalysisRequest(ctx context.Context, runID string) error {
	msg := NewAnalysisRequestMessage(runID)
	body, err := msg.ToJSON()
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}
	if err := c.publish(ctx, body); err != nil {
		return err
	}
	slog.InfoContext(ctx, "Published analysis request",
		"run_id", runID,
		"exchange", c.exchangeName,
		"queue", c.queueName)
	return nil
}

// PublishReportReady implements analysis.ReportPublisher.
func (c *Client) PublishReportReady(ctx context.Context, runID string, recordCount int, totalRevenueCents int64) error {
	msg := NewReportReadyMessage(runID, recordCount, totalRevenueCents)
	body, err := msg.ToJSON()
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}
	if err := c.publish(ctx, body); err != nil {
		return err
	}
	slog.InfoContext(ctx, "Published report-ready message",
		"run_id", runID,
		"record_count", recordCount,
		"exchange", c.exchangeName,
		"queue", c.queueName)
	return nil
}

func (c *Client) publish(ctx context.Context, body []byte) error {
	if c.isCircuitOpen() {
		return fmt.Errorf("circuit breaker is open, broker unavailable")
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := c.channel.PublishWithContext(
		ctx,
		c.exchangeName, // exchange
		c.queueName,    // routing key
		false,          // mandatory
		false,          // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		c.recordFailure()
		return fmt.Errorf("publish message: %w", err)
	}

	c.recordSuccess()
	return nil
}

// ConsumeAnalysisRequests delivers analysis requests to handler until ctx is
// done. A handler error nacks and requeues; a malformed body is dropped.
func (c *Client) ConsumeAnalysisRequests(ctx context.Context, handler func(*AnalysisRequestMessage) error) error {
	msgs, err := c.channel.Consume(
		c.queueName, // queue
		"",          // consumer
		false,       // auto-ack (we want manual ack)
		false,       // exclusive
		false,       // no-local
		false,       // no-wait
		nil,         // args
	)
	if err != nil {
		return fmt.Errorf("start consuming: %w", err)
	}

	slog.InfoContext(ctx, "Started consuming analysis requests", "queue", c.queueName)

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Stopping message consumption", "reason", ctx.Err())
			return ctx.Err()
		case delivery, ok := <-msgs:
			if !ok {
				return fmt.Errorf("message channel closed")
			}

			msg, err := AnalysisRequestMessageFromJSON(delivery.Body)
			if err != nil {
				slog.ErrorContext(ctx, "Failed to unmarshal message", "error", err)
				delivery.Nack(false, false) // reject and don't requeue
				continue
			}

			if err := handler(msg); err != nil {
				slog.ErrorContext(ctx, "Failed to handle analysis request",
					"error", err,
					"run_id", msg.RunID)
				delivery.Nack(false, true) // reject and requeue
				continue
			}

			delivery.Ack(false)
			slog.InfoContext(ctx, "Processed analysis request", "run_id", msg.RunID)
		}
	}
}

func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

func (c *Client) isCircuitOpen() bool {
	switch atomic.LoadInt32(&c.state) {
	case StateOpen:
		if time.Since(c.lastFailure) > openTimeout {
			atomic.StoreInt32(&c.state, StateHalfOpen)
			return false
		}
		return true
	default:
		return false
	}
}

func (c *Client) recordFailure() {
	c.lastFailure = time.Now()
	if atomic.AddInt64(&c.failureCount, 1) >= maxFailures {
		atomic.StoreInt32(&c.state, StateOpen)
	}
}

func (c *Client) recordSuccess() {
	atomic.StoreInt64(&c.failureCount, 0)
	atomic.StoreInt32(&c.state, StateClosed)
}

// exponentialBackoff returns the wait before reconnect attempt n, capped at
// openTimeout.
func exponentialBackoff(attempt int) time.Duration {
	d := time.Second << uint(attempt)
	if d > openTimeout || d <= 0 {
		return openTimeout
	}
	return d
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, fragment := range []string{
		"connection refused",
		"connection closed",
		"unexpected EOF",
		"broken pipe",
		"use of closed network connection",
	} {
		if strings.Contains(msg, fragment) {
			return true
		}
	}
	return false
}

// Reconnect redials the broker with exponential backoff, for consumers that
// outlive a broker restart. Gives up when ctx is done.
func (c *Client) Reconnect(ctx context.Context) error {
	for attempt := 0; ; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(exponentialBackoff(attempt)):
		}

		conn, err := amqp091.Dial(c.url)
		if err != nil {
			if isConnectionError(err) {
				slog.WarnContext(ctx, "Reconnect attempt failed", "attempt", attempt, "error", err)
				continue
			}
			return fmt.Errorf("redial AMQP: %w", err)
		}
		channel, err := conn.Channel()
		if err != nil {
			conn.Close()
			continue
		}

		c.conn = conn
		c.channel = channel
		if err := c.setup(); err != nil {
			c.Close()
			return fmt.Errorf("setup after reconnect: %w", err)
		}
		c.recordSuccess()
		slog.InfoContext(ctx, "Reconnected to broker", "attempts", attempt+1)
		return nil
	}
}
