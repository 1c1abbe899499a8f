package services

// Change feed event types, "<entity>.<action>".
const (
	EventCreated = "created"
	EventUpdated = "updated"
	EventDeleted = "deleted"
)

// Publisher fans change events out to subscribers. Publish must not block on slow clients.
type Publisher interface {
	Publish(eventType string, data interface{})
}

type noopPublisher struct{}

func (noopPublisher) Publish(string, interface{}) {}

func publisherOrNoop(p Publisher) Publisher {
	if p == nil {
		return noopPublisher{}
	}
	return p
}

type DeletedEvent struct {
	ID int64 `json:"id"`
}

func eventType(entity, action string) string {
	return entity + "." + action
}
