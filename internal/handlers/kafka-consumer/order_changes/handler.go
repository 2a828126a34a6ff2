package order_changes

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

// Handler turns orders row updates from the change feed into dispatch events.
// Offsets are marked only after the event was handed over.
type Handler struct {
	publisher                Publisher
	clock                    Clock
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, publisher Publisher, clock Clock, timeout time.Duration) *Handler {
	handlerLog := log.With(logger.NewField("handler", "order_changes"))

	return &Handler{
		publisher:                publisher,
		clock:                    clock,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("order changes: claim closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance or consumer group shutdown
			h.log.Info("order changes: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing handles one message. It returns true when ConsumeClaim
// must stop; the message is then left unmarked and will be redelivered.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	events, err := h.decode(message.Value)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("order changes handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	for _, event := range events {
		if err := h.publisher.Publish(ctx, event); err != nil {
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("offset", message.Offset),
			).Warn("order changes handler could not publish, message will be reprocessed")
			return true
		}
	}

	if len(events) > 0 {
		h.log.With(
			logger.NewField("events", len(events)),
			logger.NewField("offset", message.Offset),
		).Debug("order changes: processed")
	}

	sess.MarkMessage(message, "")
	return false
}

// decode returns the events carried by one change. Anything other than an
// update of an orders row yields none.
func (h *Handler) decode(value []byte) ([]entities.OrderEvent, error) {
	var change changeEvent
	if err := json.Unmarshal(value, &change); err != nil {
		return nil, fmt.Errorf("unmarshal change: %w", err)
	}

	if change.Type != changeTypeUpdate || change.Table != ordersTable {
		return nil, nil
	}

	var record orderRecord
	if err := json.Unmarshal(change.Record, &record); err != nil {
		return nil, fmt.Errorf("unmarshal order record: %w", err)
	}

	order, err := record.toEntity()
	if err != nil {
		return nil, err
	}

	receivedAt := h.clock.Now()
	events := make([]entities.OrderEvent, 0, 2)
	if order.CookStatus == entities.CookReady {
		events = append(events, entities.OrderReady{Order: order, ReceivedAt: receivedAt})
	}
	events = append(events, entities.OrderUpdated{Order: order, ReceivedAt: receivedAt})

	return events, nil
}
