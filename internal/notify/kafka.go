package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
)

// KafkaSink mirrors every fan-out event onto a Kafka topic so external
// consumers (kitchen displays, analytics) can tail the order stream. Writes
// happen off the request path and failures only log.
type KafkaSink struct {
	w *kafka.Writer
}

func NewKafkaSink(brokers []string, topic string) *KafkaSink {
	return &KafkaSink{w: &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}}
}

func (s *KafkaSink) Publish(a Audience, event string, data any) {
	frame, err := json.Marshal(Event{Event: event, Data: data})
	if err != nil {
		log.WithError(err).Error("kafka marshal event")
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		err := s.w.WriteMessages(ctx, kafka.Message{
			Key:   []byte(event),
			Value: frame,
		})
		if err != nil {
			log.WithError(err).WithField("event", event).Warn("kafka publish failed")
		}
	}()
}

func (s *KafkaSink) Close() error { return s.w.Close() }
