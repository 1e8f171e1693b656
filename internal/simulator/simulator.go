package simulator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/wheelibin/ringlight/internal/constants"
	"github.com/wheelibin/ringlight/internal/models"
	"github.com/wheelibin/ringlight/internal/ring"
)

type Options struct {
	// how long a write takes to complete
	WriteLatency time.Duration
	// writes taking longer than this fail with ring.ErrTimeout, 0 disables the timeout
	WriteTimeout time.Duration
	// how long after a write the api keeps reporting the previous value
	PropagationDelay time.Duration
	// defaults to time.Now
	Clock func() time.Time
}

// the value reported for a light, lagging behind the last write
type lightValue[T any] struct {
	current   T
	previous  T
	changedAt time.Time
}

// Backend is an in-memory stand-in for the ring api used for development.
type Backend struct {
	logger *log.Logger
	opts   Options
	now    func() time.Time

	mu           sync.Mutex
	deviceLights map[string]*lightValue[string]
	groupLights  map[string]*lightValue[bool]
}

func NewBackend(logger *log.Logger, opts Options) *Backend {
	now := opts.Clock
	if now == nil {
		now = time.Now
	}
	return &Backend{
		logger:       logger,
		opts:         opts,
		now:          now,
		deviceLights: map[string]*lightValue[string]{},
		groupLights:  map[string]*lightValue[bool]{},
	}
}

// Inventory builds the devices and groups served by the backend.
func (b *Backend) Inventory(devices []models.SimulatedDevice, groups []models.SimulatedGroup) ring.Inventory {
	b.mu.Lock()
	defer b.mu.Unlock()

	inv := ring.Inventory{Groups: map[string]ring.Group{}}

	for _, d := range devices {
		lights := d.Lights
		if lights == "" {
			lights = constants.OffState
		}
		b.deviceLights[d.ID] = &lightValue[string]{current: lights, previous: lights}
		inv.StickupCams = append(inv.StickupCams, &Device{backend: b, id: d.ID, name: d.Name, capabilities: d.Capabilities})
	}

	for _, g := range groups {
		b.groupLights[g.ID] = &lightValue[bool]{current: g.Lights, previous: g.Lights}
		inv.Groups[g.ID] = &Group{backend: b, id: g.ID, name: g.Name, lights: g.Lights}
	}

	return inv
}

// SetExternally changes a light as if it had been switched outside of ringlight.
func (b *Backend) SetExternally(id string, on bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	if v, found := b.deviceLights[id]; found {
		setValue(v, lo.Ternary(on, constants.OnState, constants.OffState), now)
		return nil
	}
	if v, found := b.groupLights[id]; found {
		setValue(v, on, now)
		return nil
	}
	return fmt.Errorf("unknown simulated resource %s", id)
}

func setValue[T any](v *lightValue[T], value T, at time.Time) {
	v.previous = v.current
	v.current = value
	v.changedAt = at
}

func reported[T any](v *lightValue[T], now time.Time, delay time.Duration) T {
	if now.Sub(v.changedAt) < delay {
		return v.previous
	}
	return v.current
}

// write waits for the simulated latency, failing with ring.ErrTimeout if it
// exceeds the write timeout or ctx expires first.
func (b *Backend) write(ctx context.Context, apply func(now time.Time)) error {
	if b.opts.WriteTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.opts.WriteTimeout)
		defer cancel()
	}

	select {
	case <-time.After(b.opts.WriteLatency):
	case <-ctx.Done():
		return fmt.Errorf("simulated write: %w: %w", ring.ErrTimeout, ctx.Err())
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	apply(b.now())
	return nil
}

type Device struct {
	backend      *Backend
	id           string
	name         string
	capabilities []string
}

func (d *Device) ID() string   { return d.id }
func (d *Device) Name() string { return d.name }

func (d *Device) HasCapability(capability string) bool {
	return lo.Contains(d.capabilities, capability)
}

func (d *Device) Lights() string {
	b := d.backend
	b.mu.Lock()
	defer b.mu.Unlock()
	return reported(b.deviceLights[d.id], b.now(), b.opts.PropagationDelay)
}

func (d *Device) SetLights(ctx context.Context, state string) error {
	b := d.backend
	b.logger.Debug("simulated device light write", "id", d.id, "state", state)
	return b.write(ctx, func(now time.Time) {
		setValue(b.deviceLights[d.id], state, now)
	})
}

// Group caches the reported light state, it is refreshed by Update.
type Group struct {
	backend *Backend
	id      string
	name    string

	mu     sync.Mutex
	lights bool
}

func (g *Group) ID() string   { return g.id }
func (g *Group) Name() string { return g.name }

func (g *Group) Lights() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lights
}

func (g *Group) SetLights(ctx context.Context, on bool) error {
	b := g.backend
	b.logger.Debug("simulated group light write", "id", g.id, "on", on)
	err := b.write(ctx, func(now time.Time) {
		setValue(b.groupLights[g.id], on, now)
	})
	if err != nil {
		return err
	}

	g.mu.Lock()
	g.lights = on
	g.mu.Unlock()
	return nil
}

// Update fetches the group's reported state, which may still be stale after a write.
func (g *Group) Update(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b := g.backend
	b.mu.Lock()
	lights := reported(b.groupLights[g.id], b.now(), b.opts.PropagationDelay)
	b.mu.Unlock()

	g.mu.Lock()
	g.lights = lights
	g.mu.Unlock()
	return nil
}
