package ringlight

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/wheelibin/ringlight/internal/constants"
	"github.com/wheelibin/ringlight/internal/healthTracker"
	"github.com/wheelibin/ringlight/internal/models"
	"github.com/wheelibin/ringlight/internal/ring"
)

var ErrInvalidState = errors.New("invalid light state")

type stateWriter interface {
	WriteState(state models.EntityState)
}

type healthTracker interface {
	Track(resource healthtracker.Resource, listener healthtracker.Listener)
	Untrack(resourceID string, listener healthtracker.Listener)
}

type Option func(*RingLight)

// WithClock replaces the clock used for the update suppression window.
func WithClock(now func() time.Time) Option {
	return func(r *RingLight) {
		r.now = now
	}
}

// RingLight exposes the light of a ring device, or a ring light group, as an
// on/off light entity.
//
// After a successful write the new state is assumed straight away and updates
// from the health tracker are ignored until noUpdatesUntil, the api takes a
// few seconds to report the change and an earlier update would revert it.
type RingLight struct {
	logger    *log.Logger
	sessionID string
	resource  lightResource
	tracker   healthTracker
	writer    stateWriter
	now       func() time.Time

	lightOn        bool
	noUpdatesUntil time.Time
}

func NewDeviceLight(logger *log.Logger, sessionID string, device ring.Device, tracker healthTracker, writer stateWriter, opts ...Option) *RingLight {
	return newRingLight(logger, sessionID, deviceLight{device: device}, tracker, writer, opts)
}

func NewGroupLight(logger *log.Logger, sessionID string, group ring.Group, tracker healthTracker, writer stateWriter, opts ...Option) *RingLight {
	return newRingLight(logger, sessionID, groupLight{group: group}, tracker, writer, opts)
}

func newRingLight(logger *log.Logger, sessionID string, resource lightResource, tracker healthTracker, writer stateWriter, opts []Option) *RingLight {
	r := &RingLight{
		logger:    logger,
		sessionID: sessionID,
		resource:  resource,
		tracker:   tracker,
		writer:    writer,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.updateLightState()
	r.noUpdatesUntil = r.now()
	return r
}

func (r *RingLight) UniqueID() string { return r.resource.id() }
func (r *RingLight) Name() string     { return r.resource.name() }
func (r *RingLight) Kind() string     { return r.resource.kind() }
func (r *RingLight) SessionID() string {
	return r.sessionID
}

func (r *RingLight) IsOn() bool {
	return r.lightOn
}

// ShouldPoll is true for device lights, they are not refreshed by the health
// tracker and rely on the host's periodic entity scan.
func (r *RingLight) ShouldPoll() bool {
	_, tracked := r.resource.healthResource()
	return !tracked
}

// NoUpdatesUntil returns the end of the current update suppression window.
func (r *RingLight) NoUpdatesUntil() time.Time {
	return r.noUpdatesUntil
}

func (r *RingLight) State() models.EntityState {
	return models.EntityState{
		UniqueID: r.UniqueID(),
		Name:     r.Name(),
		Kind:     r.Kind(),
		On:       r.lightOn,
	}
}

func (r *RingLight) AddedToHost(ctx context.Context) {
	if res, tracked := r.resource.healthResource(); tracked {
		r.tracker.Track(res, r)
	}
}

func (r *RingLight) WillRemoveFromHost() {
	if _, tracked := r.resource.healthResource(); tracked {
		r.tracker.Untrack(r.UniqueID(), r)
	}
}

// OnHealthData is called by the health tracker when it has fresh data for the
// group, the data itself is not used, the state is read back from the group.
func (r *RingLight) OnHealthData(_ healthtracker.Observation) {
	if r.now().Before(r.noUpdatesUntil) {
		r.logger.Debug("ignoring update inside the skip window", "id", r.UniqueID(), "until", r.noUpdatesUntil)
		return
	}

	r.updateLightState()
	r.writer.WriteState(r.State())
}

// Update re-reads the light state from the remote resource.
func (r *RingLight) Update(ctx context.Context) error {
	r.updateLightState()
	return nil
}

func (r *RingLight) TurnOn(ctx context.Context) error {
	return r.SetLight(ctx, constants.OnState)
}

func (r *RingLight) TurnOff(ctx context.Context) error {
	return r.SetLight(ctx, constants.OffState)
}

// SetLight sets the light to "on" or "off".
//
// An invalid state or a remote timeout is logged and leaves the entity
// untouched, any other remote error is returned.
func (r *RingLight) SetLight(ctx context.Context, newState string) error {
	if newState != constants.OnState && newState != constants.OffState {
		r.logger.Error("invalid state passed to SetLight", "id", r.UniqueID(), "state", newState, "err", ErrInvalidState)
		return nil
	}

	if err := r.resource.setLights(ctx, newState); err != nil {
		if ring.IsTimeout(err) {
			r.logger.Errorf("time out setting %s light to %s", r.Name(), newState)
			return nil
		}
		return fmt.Errorf("error setting %s light to %s: %w", r.Name(), newState, err)
	}

	r.lightOn = newState == constants.OnState
	r.noUpdatesUntil = r.now().Add(constants.SkipUpdatesDelay)
	r.writer.WriteState(r.State())
	return nil
}

func (r *RingLight) updateLightState() {
	r.lightOn = r.resource.isOn()
}
