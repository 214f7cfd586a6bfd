package events

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
	sse "github.com/r3labs/sse/v2"
	"github.com/wheelibin/light-driver/internal/constants"
	"github.com/wheelibin/light-driver/internal/models"
)

const EventTypeEntityChange = "entity_change"
const EventTypeDeviceState = "device_state"

// Publisher streams entity changes and device state changes to the host over server-sent events.
// Clients pick a stream with the "stream" query parameter.
type Publisher struct {
	logger *log.Logger
	server *sse.Server
}

// NewPublisher creates the event streams. With replay set, new clients first receive every
// event published so far.
func NewPublisher(logger *log.Logger, replay bool) *Publisher {
	server := sse.New()
	server.AutoReplay = replay
	server.CreateStream(constants.StreamEntities)
	server.CreateStream(constants.StreamDevice)

	return &Publisher{logger: logger, server: server}
}

func (p *Publisher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p.server.ServeHTTP(w, r)
}

// PublishChange streams one applied entity change on the entities stream
func (p *Publisher) PublishChange(change models.EntityChange) {
	p.publish(constants.StreamEntities, EventTypeEntityChange, change)
}

func (p *Publisher) PublishDeviceState(state models.DeviceState) {
	p.publish(constants.StreamDevice, EventTypeDeviceState, struct {
		State models.DeviceState `json:"state"`
	}{state})
}

func (p *Publisher) publish(stream, eventType string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		p.logger.Error("error encoding event", "stream", stream, "err", err)
		return
	}
	p.server.Publish(stream, &sse.Event{Event: []byte(eventType), Data: data})
}

func (p *Publisher) Close() {
	p.server.Close()
}
