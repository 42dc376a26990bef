// Package events publishes interview lifecycle events to Kafka. Events
// are queued on a buffered channel and written asynchronously; delivery
// is best-effort and never blocks or fails the originating command.
package events

import (
	"context"
	"encoding/json"

	"github.com/cenkalti/backoff/v4"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/nkove/interviewd/internal/interview/models"
)

var (
	jsonMarshal = json.Marshal
	newBackOff  = func() backoff.BackOff {
		return backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3)
	}
)

// EventType names an interview lifecycle event.
type EventType string

const (
	InterviewCreated   EventType = "interview_created"
	InterviewStarted   EventType = "interview_started"
	InterviewMessage   EventType = "interview_message"
	InterviewCompleted EventType = "interview_completed"
	InterviewCancelled EventType = "interview_cancelled"
)

// Event is the payload written to the topic, keyed by interview id.
type Event struct {
	Type      EventType
	Interview *models.Interview
}

// KafkaWriter abstracts the kafka-go writer for testing.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer queues and writes interview events.
type Producer struct {
	writer    KafkaWriter
	events    chan Event
	logger    *zap.Logger
	closeChan chan struct{}
}

// NewProducer creates the topic if needed and starts the event loop.
func NewProducer(brokers []string, logger *zap.Logger, topic string) (*Producer, error) {
	conn, err := kafka.Dial("tcp", brokers[0])
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	topicConfigs := []kafka.TopicConfig{
		{
			Topic:             topic,
			NumPartitions:     3,
			ReplicationFactor: 1,
		},
	}
	if err := conn.CreateTopics(topicConfigs...); err != nil {
		logger.Warn("failed to create topic (may already exist)", zap.Error(err))
	}

	p := &Producer{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
			Topic:    topic,
		},
		events:    make(chan Event, 1000),
		logger:    logger.Named("kafka_producer"),
		closeChan: make(chan struct{}),
	}

	go p.eventLoop()
	return p, nil
}

// Produce enqueues an event, dropping it with a warning when the queue
// is full.
func (p *Producer) Produce(eventType EventType, interview *models.Interview) {
	select {
	case p.events <- Event{Type: eventType, Interview: interview}:
	default:
		p.logger.Warn("Kafka producer queue full, dropping event",
			zap.String("event_type", string(eventType)),
			zap.String("interview_id", interview.ID.String()),
		)
	}
}

func (p *Producer) eventLoop() {
	for {
		select {
		case event := <-p.events:
			p.sendEvent(context.Background(), event)
		case <-p.closeChan:
			return
		}
	}
}

func (p *Producer) sendEvent(ctx context.Context, event Event) {
	value, err := jsonMarshal(event)
	if err != nil {
		p.logger.Error("Failed to serialize event",
			zap.Error(err),
			zap.String("interview_id", event.Interview.ID.String()),
		)
		return
	}

	err = backoff.Retry(func() error {
		return p.writer.WriteMessages(ctx, kafka.Message{
			Key:   []byte(event.Interview.ID.String()),
			Value: value,
		})
	}, newBackOff())
	if err != nil {
		p.logger.Error("Failed to produce event",
			zap.Error(err),
			zap.String("event_type", string(event.Type)),
			zap.String("interview_id", event.Interview.ID.String()),
		)
	}
}

// Close stops the event loop and closes the writer.
func (p *Producer) Close() {
	close(p.closeChan)
	if err := p.writer.Close(); err != nil {
		p.logger.Error("Failed to close Kafka writer", zap.Error(err))
	}
}

// NopProducer discards all events. Used when no brokers are configured.
type NopProducer struct{}

func (NopProducer) Produce(EventType, *models.Interview) {}
