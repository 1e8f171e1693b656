package ringlight

import (
	"context"
	"fmt"

	"github.com/wheelibin/ringlight/internal/constants"
	"github.com/wheelibin/ringlight/internal/healthTracker"
	"github.com/wheelibin/ringlight/internal/ring"
)

// the kind specific part of a ring light, devices and groups encode their light
// state differently
type lightResource interface {
	id() string
	name() string
	kind() string
	isOn() bool
	setLights(ctx context.Context, desired string) error
	// the resource to register with the shared health tracker, devices are
	// refreshed by the host's entity scan instead
	healthResource() (healthtracker.Resource, bool)
}

type deviceLight struct {
	device ring.Device
}

func (d deviceLight) id() string   { return d.device.ID() }
func (d deviceLight) kind() string { return constants.KindDevice }
func (d deviceLight) healthResource() (healthtracker.Resource, bool) {
	return nil, false
}

func (d deviceLight) name() string {
	return fmt.Sprintf("%s %s", d.device.Name(), constants.DeviceLightSuffix)
}

// devices report "on", anything else is treated as off
func (d deviceLight) isOn() bool {
	return d.device.Lights() == constants.OnState
}

func (d deviceLight) setLights(ctx context.Context, desired string) error {
	return d.device.SetLights(ctx, desired)
}

type groupLight struct {
	group ring.Group
}

func (g groupLight) id() string    { return g.group.ID() }
func (g groupLight) name() string  { return g.group.Name() }
func (g groupLight) kind() string  { return constants.KindGroup }
func (g groupLight) isOn() bool    { return g.group.Lights() }
func (g groupLight) healthResource() (healthtracker.Resource, bool) {
	return g.group, true
}

func (g groupLight) setLights(ctx context.Context, desired string) error {
	return g.group.SetLights(ctx, desired == constants.OnState)
}
