package core

import (
	"github.com/surveyorhq/surveyor/core/felt"
)

// EventData is a single data element emitted by a transaction event.
type EventData felt.Felt

func (d *EventData) AsFelt() *felt.Felt {
	return (*felt.Felt)(d)
}

func (d *EventData) String() string {
	return (*felt.Felt)(d).String()
}

func (d *EventData) Equal(other *EventData) bool {
	return (*felt.Felt)(d).Equal((*felt.Felt)(other))
}

// EventKey is a single key of a transaction event. The first key of an event
// is conventionally the selector of the event's name.
type EventKey felt.Felt

func (k *EventKey) AsFelt() *felt.Felt {
	return (*felt.Felt)(k)
}

func (k *EventKey) String() string {
	return (*felt.Felt)(k).String()
}

func (k *EventKey) Equal(other *EventKey) bool {
	return (*felt.Felt)(k).Equal((*felt.Felt)(other))
}
