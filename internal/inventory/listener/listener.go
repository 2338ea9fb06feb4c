package listener

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fekuna/omnipos-commerce/internal/inventory"
	"github.com/fekuna/omnipos-commerce/internal/model"
	"github.com/fekuna/omnipos-commerce/pkg/logger"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is satisfied by *broker.KafkaConsumer.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type InventoryListener struct {
	consumer MessageReader
	uc       inventory.UseCase
	logger   logger.ZapLogger
	backoff  time.Duration
}

func NewInventoryListener(consumer MessageReader, uc inventory.UseCase, logger logger.ZapLogger) *InventoryListener {
	return &InventoryListener{
		consumer: consumer,
		uc:       uc,
		logger:   logger,
		backoff:  time.Second,
	}
}

// Start consumes order events until ctx is cancelled.
func (l *InventoryListener) Start(ctx context.Context) {
	l.logger.Info("Starting Inventory Kafka Listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping Inventory Kafka Listener")
			return
		default:
			msg, err := l.consumer.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("Failed to read kafka message", zap.Error(err))
				select {
				case <-ctx.Done():
					return
				case <-time.After(l.backoff):
				}
				continue
			}
			l.processMessage(ctx, msg.Value)
		}
	}
}

func (l *InventoryListener) processMessage(ctx context.Context, value []byte) {
	var event model.OrderCreatedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Error("Failed to unmarshal event", zap.Error(err))
		return
	}

	if event.EventType != model.EventOrderCreated {
		return
	}

	l.logger.Info("Processing OrderCreated event",
		zap.String("order_id", event.Payload.ID),
		zap.String("order_number", event.Payload.OrderNumber),
	)

	if err := l.uc.ApplyOrder(ctx, &event); err != nil {
		l.logger.Error("Order event only partly applied",
			zap.String("order_id", event.Payload.ID),
			zap.Error(err),
		)
	}
}
