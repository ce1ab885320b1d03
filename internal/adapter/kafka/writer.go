package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/couchcryptid/forecast-strip-service/internal/config"
	"github.com/couchcryptid/forecast-strip-service/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// messageWriter is the subset of *kafkago.Writer the sink needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Writer produces composed views to a Kafka topic.
// It implements pipeline.Sink.
type Writer struct {
	writer messageWriter
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured view topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:                   kafkago.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.KafkaTopic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: true,
	}
	return &Writer{writer: w, logger: logger}
}

// Name identifies the sink in logs and metrics.
func (w *Writer) Name() string { return "kafka" }

// Publish serializes the view and writes it as a single message keyed by view ID.
func (w *Writer) Publish(ctx context.Context, view domain.View) error {
	msg, err := serializeToMessage(view)
	if err != nil {
		return err
	}
	if err := w.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write view %s: %w", view.ID, err)
	}
	w.logger.Debug("view published", "view_id", view.ID, "rows", len(view.Rows()))
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a View into a Kafka message.
func serializeToMessage(view domain.View) (kafkago.Message, error) {
	data, err := json.Marshal(view)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize view: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(view.ID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "generated_at", Value: []byte(view.GeneratedAt.Format(time.RFC3339))},
			{Key: "row_count", Value: []byte(strconv.Itoa(len(view.Rows())))},
		},
	}, nil
}
