// Package events provides NATS JetStream publishing for storefront events.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/sirupsen/logrus"

	"storefront-service/internal/models"
)

const (
	streamName     = "STOREFRONT"
	subjectPrefix  = "storefront."
	publishTimeout = 5 * time.Second
)

// Publisher emits storefront events (orders, newsletter signups) to NATS.
// It is optional: callers hold a nil *Publisher when NATS_URL is unset and
// every method is nil-safe.
type Publisher struct {
	nc     *nats.Conn
	js     jetstream.JetStream
	logger *logrus.Entry
}

// NewPublisher connects to NATS and ensures the storefront stream exists.
func NewPublisher(logger *logrus.Logger) (*Publisher, error) {
	natsURL := os.Getenv("NATS_URL")
	if natsURL == "" {
		natsURL = nats.DefaultURL
	}

	nc, err := nats.Connect(natsURL,
		nats.Name("storefront-service"),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.WithError(err).Warn("NATS disconnected")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.WithField("url", nc.ConnectedUrl()).Info("NATS reconnected")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     streamName,
		Subjects: []string{subjectPrefix + ">"},
	})
	if err != nil {
		logger.WithError(err).Warn("Failed to ensure storefront stream (may already exist)")
	}

	return &Publisher{
		nc:     nc,
		js:     js,
		logger: logger.WithField("component", "storefront-events"),
	}, nil
}

// Close drains the NATS connection.
func (p *Publisher) Close() {
	if p != nil && p.nc != nil {
		p.nc.Close()
	}
}

// Event is the common envelope for storefront events.
type Event struct {
	EventID   string      `json:"eventId"`
	EventType string      `json:"eventType"`
	Timestamp time.Time   `json:"timestamp"`
	SessionID string      `json:"sessionId,omitempty"`
	Data      interface{} `json:"data"`
}

// PublishOrderCreated emits storefront.order.created.
func (p *Publisher) PublishOrderCreated(ctx context.Context, order *models.Order, sessionID string) error {
	return p.publish(ctx, "order.created", sessionID, order)
}

// PublishNewsletterSubscribed emits storefront.newsletter.subscribed.
func (p *Publisher) PublishNewsletterSubscribed(ctx context.Context, email string) error {
	return p.publish(ctx, "newsletter.subscribed", "", map[string]string{"email": email})
}

func (p *Publisher) publish(ctx context.Context, eventType, sessionID string, data interface{}) error {
	if p == nil || p.js == nil {
		return nil
	}

	event := Event{
		EventID:   uuid.New().String(),
		EventType: eventType,
		Timestamp: time.Now().UTC(),
		SessionID: sessionID,
		Data:      data,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if _, err := p.js.Publish(ctx, subjectPrefix+eventType, payload); err != nil {
		p.logger.WithError(err).WithField("eventType", eventType).Warn("Failed to publish event")
		return err
	}

	p.logger.WithField("eventType", eventType).Debug("Event published")
	return nil
}
