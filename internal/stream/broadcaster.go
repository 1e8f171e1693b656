package stream

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
	sse "github.com/r3labs/sse/v2"
	"github.com/wheelibin/ringlight/internal/constants"
	"github.com/wheelibin/ringlight/internal/models"
)

// Broadcaster publishes entity states to every connected sse client.
type Broadcaster struct {
	logger *log.Logger
	server *sse.Server
}

func NewBroadcaster(logger *log.Logger) *Broadcaster {
	server := sse.New()
	// late subscribers fetch the current states over the api instead
	server.AutoReplay = false
	server.CreateStream(constants.StateStreamName)

	return &Broadcaster{logger: logger, server: server}
}

func (b *Broadcaster) Publish(state models.EntityState) {
	data, err := json.Marshal(state)
	if err != nil {
		b.logger.Error("error encoding entity state", "id", state.UniqueID, "err", err)
		return
	}
	b.server.Publish(constants.StateStreamName, &sse.Event{Data: data})
}

// ServeHTTP serves the state stream, clients subscribe with ?stream=states.
func (b *Broadcaster) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.server.ServeHTTP(w, r)
}

func (b *Broadcaster) Close() {
	b.server.Close()
}
