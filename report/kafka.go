package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"
)

// ErrPublish wraps every failure to hand a Report to Kafka.
var ErrPublish = errors.New("report: publish failed")

const (
	kafkaClientID = "noisegen"
	kafkaTimeout  = 10 * time.Second
)

// KafkaPublisher sends each Report as one JSON message. The message key is
// the binning strategy name.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewKafkaConfig returns the producer configuration used by
// NewKafkaPublisher. Return.Successes is set as SyncProducer requires.
func NewKafkaConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.ClientID = kafkaClientID
	config.Net.WriteTimeout = kafkaTimeout
	config.Net.ReadTimeout = kafkaTimeout
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Return.Successes = true

	return config
}

// NewKafkaPublisher connects a synchronous producer to brokers.
func NewKafkaPublisher(brokers []string, topic string) (*KafkaPublisher, error) {
	if len(brokers) == 0 || topic == "" {
		return nil, fmt.Errorf("NewKafkaPublisher: brokers=%v topic=%q: %w", brokers, topic, ErrPublish)
	}

	producer, err := sarama.NewSyncProducer(brokers, NewKafkaConfig())
	if err != nil {
		return nil, fmt.Errorf("NewKafkaPublisher: %w: %w", ErrPublish, err)
	}

	return NewPublisherFromProducer(producer, topic), nil
}

// NewPublisherFromProducer wraps an existing producer. The publisher takes
// ownership and closes it on Close.
func NewPublisherFromProducer(producer sarama.SyncProducer, topic string) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, topic: topic}
}

// Publish encodes r and sends it synchronously.
func (k *KafkaPublisher) Publish(r *Report) error {
	if r == nil {
		return fmt.Errorf("Publish: nil report: %w", ErrPublish)
	}

	payload, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("Publish: encode: %w: %w", ErrPublish, err)
	}

	msg := &sarama.ProducerMessage{
		Topic: k.topic,
		Key:   sarama.StringEncoder(r.Strategy.String()),
		Value: sarama.ByteEncoder(payload),
	}
	if _, _, err = k.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("Publish: topic %q: %w: %w", k.topic, ErrPublish, err)
	}

	return nil
}

// Close releases the underlying producer.
func (k *KafkaPublisher) Close() error {
	return k.producer.Close()
}
