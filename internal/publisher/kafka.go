// Package publisher fans recorded block summaries out to Kafka.
package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/IBM/sarama"

	"github.com/goodnatureofminers/blockpulse-backend/internal/model"
)

// Kafka publishes block summaries to a single topic keyed by block timestamp.
type Kafka struct {
	topic    string
	producer sarama.SyncProducer
	metrics  Metrics
}

// NewKafka connects a synchronous producer to brokers.
func NewKafka(brokers []string, topic string, metrics Metrics) (*Kafka, error) {
	if len(brokers) == 0 {
		return nil, errors.New("kafka brokers are required")
	}
	if topic == "" {
		return nil, errors.New("kafka topic is required")
	}

	cfg := sarama.NewConfig()
	cfg.ClientID = "blockpulse"
	cfg.Producer.RequiredAcks = sarama.WaitForLocal
	cfg.Producer.Retry.Max = 5
	cfg.Producer.Retry.Backoff = 200 * time.Millisecond
	cfg.Producer.Return.Successes = true
	cfg.Producer.Return.Errors = true

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}
	return NewKafkaWithProducer(producer, topic, metrics), nil
}

// NewKafkaWithProducer wraps an existing producer.
func NewKafkaWithProducer(producer sarama.SyncProducer, topic string, metrics Metrics) *Kafka {
	return &Kafka{topic: topic, producer: producer, metrics: metrics}
}

// Publish sends one block summary. It returns ctx.Err() once ctx ends even if
// the producer is still retrying; the send itself is left to finish.
func (k *Kafka) Publish(ctx context.Context, block model.StatBlock) (err error) {
	started := time.Now()
	defer func() {
		k.metrics.Observe(err, started)
	}()

	if err = ctx.Err(); err != nil {
		return err
	}

	value, err := json.Marshal(block)
	if err != nil {
		return fmt.Errorf("marshal block summary: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: k.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(block.Timestamp, 10)),
		Value: sarama.ByteEncoder(value),
	}
	sent := make(chan error, 1)
	go func() {
		_, _, err := k.producer.SendMessage(msg)
		sent <- err
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("publish to %s: %w", k.topic, ctx.Err())
	case err = <-sent:
		if err != nil {
			return fmt.Errorf("publish to %s: %w", k.topic, err)
		}
		return nil
	}
}

// Close flushes and closes the producer.
func (k *Kafka) Close() error {
	if k.producer == nil {
		return nil
	}
	return k.producer.Close()
}
