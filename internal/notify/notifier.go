// Package notify implements the real-time order event fan-out: a websocket
// hub with an admin audience, plus an optional Kafka mirror of the same
// events. Delivery is best effort and at most once; a failed or slow
// subscriber never fails the write that produced the event.
package notify

// Audience names a subscriber group for one event.
type Audience string

const (
	// AudienceAdmin is the dashboard room clients join on demand.
	AudienceAdmin Audience = "admin"
	// AudienceAll is every currently connected subscriber.
	AudienceAll Audience = "all"
)

const (
	EventNewOrder          = "new_order"
	EventOrderStatusUpdate = "order_status_update"
	EventOrderDeleted      = "order_deleted"
)

// Event is the wire frame sent to subscribers.
type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// DeletedPayload is the body of an order_deleted event.
type DeletedPayload struct {
	ID int64 `json:"id"`
}

// Sink delivers one event to an audience.
type Sink interface {
	Publish(a Audience, event string, data any)
}

// Multi fans one event out to several sinks.
type Multi []Sink

func (m Multi) Publish(a Audience, event string, data any) {
	for _, s := range m {
		s.Publish(a, event, data)
	}
}
