package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	sse "github.com/r3labs/sse/v2"
	"gopkg.in/cenkalti/backoff.v1"
	"github.com/wheelibin/ringlight/internal/constants"
	"github.com/wheelibin/ringlight/internal/models"
)

// Consumer subscribes to the state stream of a running daemon.
type Consumer struct {
	logger  *log.Logger
	baseURL string

	client       *sse.Client
	eventChannel chan *sse.Event
}

func NewConsumer(logger *log.Logger, baseURL string) *Consumer {
	return &Consumer{logger: logger, baseURL: strings.TrimSuffix(baseURL, "/")}
}

// Subscribe decodes every published state onto states until ctx is done.
func (c *Consumer) Subscribe(ctx context.Context, states chan<- models.EntityState) error {
	c.eventChannel = make(chan *sse.Event)
	c.client = sse.NewClient(fmt.Sprintf("%s/events", c.baseURL))

	// keep retrying while the daemon restarts, until ctx is done
	reconnect := backoff.NewExponentialBackOff()
	reconnect.MaxInterval = 30 * time.Second
	reconnect.MaxElapsedTime = 0
	c.client.ReconnectStrategy = backoff.WithContext(reconnect, ctx)

	c.client.OnConnect(func(_ *sse.Client) {
		c.logger.Info("Connected to ringlightd, listening for state changes...")
	})
	c.client.OnDisconnect(func(_ *sse.Client) {
		c.logger.Info("Disconnected from ringlightd")
	})

	if err := c.client.SubscribeChanWithContext(ctx, constants.StateStreamName, c.eventChannel); err != nil {
		return fmt.Errorf("error subscribing to state changes: %w", err)
	}

	go func() {
		defer c.client.Unsubscribe(c.eventChannel)
		for {
			select {
			case <-ctx.Done():
				return
			case event := <-c.eventChannel:
				if event == nil {
					continue
				}
				state, err := Decode(event.Data)
				if err != nil {
					c.logger.Error(err)
					continue
				}
				select {
				case states <- state:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return nil
}

// Snapshot fetches the current state of every light, the stream only carries changes.
func (c *Consumer) Snapshot(ctx context.Context) ([]models.EntityState, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/api/lights", c.baseURL), nil)
	if err != nil {
		return nil, err
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching light states: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error fetching light states: %s", res.Status)
	}

	var states []models.EntityState
	if err := json.NewDecoder(res.Body).Decode(&states); err != nil {
		return nil, fmt.Errorf("error parsing light states: %w", err)
	}
	return states, nil
}

func Decode(data []byte) (models.EntityState, error) {
	var state models.EntityState
	if err := json.Unmarshal(data, &state); err != nil {
		return models.EntityState{}, fmt.Errorf("error parsing state event: %w", err)
	}
	return state, nil
}
