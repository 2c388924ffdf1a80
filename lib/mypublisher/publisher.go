package mypublisher

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/grocerly/shopcore/lib/myevents"
	"github.com/grocerly/shopcore/lib/mypubsub"
	"github.com/grocerly/shopcore/lib/mytime"
	"github.com/grocerly/shopcore/lib/myuuid"
)

type publisher struct {
	pubsub mypubsub.PubSub
	nower  mytime.Nower
	uuider myuuid.UUIDer
}

func New(pubsub mypubsub.PubSub, nower mytime.Nower, uuider myuuid.UUIDer) Publisher {
	return &publisher{
		pubsub: pubsub,
		nower:  nower,
		uuider: uuider,
	}
}

func (p *publisher) CreateTopic(c context.Context, topic string) error {
	return p.pubsub.CreateTopic(c, topic)
}

func (p *publisher) Publish(c context.Context, topic string, event myevents.Event) error {
	jsonPayload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("error marshalling event-payload: %s", err)
	}

	envelope := myevents.EventEnvelope{
		UID:           p.uuider.Create(),
		CreatedAt:     p.nower.Now(),
		Topic:         topic,
		AggregateUID:  event.GetAggregateName(),
		EventTypeName: event.GetEventTypeName(),
		EventPayload:  string(jsonPayload),
	}

	envelopeBytes, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("error marshalling envelope: %s", err)
	}

	return p.pubsub.Publish(c, topic, string(envelopeBytes))
}
