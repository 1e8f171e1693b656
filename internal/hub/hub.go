package hub

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/wheelibin/ringlight/internal/constants"
	"github.com/wheelibin/ringlight/internal/healthTracker"
	"github.com/wheelibin/ringlight/internal/models"
	"github.com/wheelibin/ringlight/internal/platform"
	"github.com/wheelibin/ringlight/internal/ring"
	"github.com/wheelibin/ringlight/internal/ringLight"
)

var ErrUnknownEntity = errors.New("unknown entity")
var ErrUnknownAction = errors.New("unknown action")

type EntityPlatform interface {
	SessionID() string
	AddEntities(ctx context.Context, entities []platform.Entity) error
	Entity(id string) (platform.Entity, bool)
	RemoveEntity(id string) error
	DetachAll()
	PollEntities(ctx context.Context) error
	WriteState(state models.EntityState)
}

type HealthTracker interface {
	Track(resource healthtracker.Resource, listener healthtracker.Listener)
	Untrack(resourceID string, listener healthtracker.Listener)
	Run(ctx context.Context, out chan<- healthtracker.Observation)
	Dispatch(obs healthtracker.Observation)
}

type switchable interface {
	TurnOn(ctx context.Context) error
	TurnOff(ctx context.Context) error
}

type command struct {
	entityID string
	action   string
	result   chan error
}

// Hub owns the light entities, every call into an entity happens on the
// goroutine running Run.
type Hub struct {
	logger        *log.Logger
	platform      EntityPlatform
	healthTracker HealthTracker
	scanInterval  time.Duration
	writeTimeout  time.Duration

	commands chan command
}

func NewHub(
	logger *log.Logger,
	entityPlatform EntityPlatform,
	healthTracker HealthTracker,
	scanInterval time.Duration,
	writeTimeout time.Duration,
) *Hub {
	if scanInterval <= 0 {
		scanInterval = constants.DefaultEntityScanInterval
	}
	if writeTimeout <= 0 {
		writeTimeout = constants.DefaultRemoteWriteTimeout
	}

	return &Hub{
		logger:        logger,
		platform:      entityPlatform,
		healthTracker: healthTracker,
		scanInterval:  scanInterval,
		writeTimeout:  writeTimeout,
		commands:      make(chan command),
	}
}

// Initialise creates a light for every stickup cam with a light and for every
// light group. It must be called before Run.
func (h *Hub) Initialise(ctx context.Context, inventory ring.Inventory) error {
	h.logger.Debug("Hub.Initialise")

	sessionID := h.platform.SessionID()

	lights := lo.FilterMap(inventory.StickupCams, func(device ring.Device, _ int) (platform.Entity, bool) {
		if !device.HasCapability(constants.CapabilityLight) {
			return nil, false
		}
		return ringlight.NewDeviceLight(h.logger, sessionID, device, h.healthTracker, h.platform), true
	})

	groupIDs := lo.Keys(inventory.Groups)
	sort.Strings(groupIDs)
	for _, id := range groupIDs {
		lights = append(lights, ringlight.NewGroupLight(h.logger, sessionID, inventory.Groups[id], h.healthTracker, h.platform))
	}

	h.logger.Info("Found ring lights", "devices", len(lights)-len(groupIDs), "groups", len(groupIDs))
	return h.platform.AddEntities(ctx, lights)
}

func (h *Hub) Run(ctx context.Context) {
	h.logger.Debug("Hub.Run")

	// start refreshing the tracked groups
	observations := make(chan healthtracker.Observation)
	go h.healthTracker.Run(ctx, observations)

	scanTimer := time.NewTicker(h.scanInterval)
	defer scanTimer.Stop()
	defer h.platform.DetachAll()

	// start the main application loop
	for {
		select {
		case <-ctx.Done():
			h.logger.Info("Hub.Run: stop signal received")
			return

		case obs := <-observations:
			h.logger.Debug("Hub.Run: received health data", "id", obs.ResourceID)
			h.healthTracker.Dispatch(obs)

		case cmd := <-h.commands:
			cmd.result <- h.execute(ctx, cmd)

		case t := <-scanTimer.C:
			h.logger.Debug("Hub.Run: polling entities...", "t", t)
			if err := h.platform.PollEntities(ctx); err != nil {
				h.logger.Error(err)
			}
		}
	}
}

// Submit runs an action against an entity on the hub loop and waits for the result.
func (h *Hub) Submit(ctx context.Context, entityID string, action string) error {
	cmd := command{entityID: entityID, action: action, result: make(chan error, 1)}

	select {
	case h.commands <- cmd:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-cmd.result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (h *Hub) execute(ctx context.Context, cmd command) error {
	entity, found := h.platform.Entity(cmd.entityID)
	if !found {
		return fmt.Errorf("%w: %s", ErrUnknownEntity, cmd.entityID)
	}

	h.logger.Debug("executing command", "entity", cmd.entityID, "action", cmd.action)

	switch cmd.action {
	case constants.ActionTurnOn, constants.ActionTurnOff:
		light, ok := entity.(switchable)
		if !ok {
			return fmt.Errorf("%w: %s does not support %s", ErrUnknownAction, cmd.entityID, cmd.action)
		}
		writeCtx, cancel := context.WithTimeout(ctx, h.writeTimeout)
		defer cancel()
		if cmd.action == constants.ActionTurnOn {
			return light.TurnOn(writeCtx)
		}
		return light.TurnOff(writeCtx)

	case constants.ActionUpdate:
		if err := entity.Update(ctx); err != nil {
			return err
		}
		h.platform.WriteState(entity.State())
		return nil

	case constants.ActionRemove:
		return h.platform.RemoveEntity(cmd.entityID)
	}

	return fmt.Errorf("%w: %s", ErrUnknownAction, cmd.action)
}
