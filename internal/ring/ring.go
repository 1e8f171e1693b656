package ring

import (
	"context"
	"errors"
	"net"
)

var ErrTimeout = errors.New("ring: request timed out")

// a ring device (doorbell, stickup cam, chime...)
type Device interface {
	ID() string
	Name() string
	HasCapability(capability string) bool
	// the light state reported by the api, "on" or "off" for devices with lights
	Lights() string
	SetLights(ctx context.Context, state string) error
}

// a ring light group, its state is refreshed by Update
type Group interface {
	ID() string
	Name() string
	Lights() bool
	SetLights(ctx context.Context, on bool) error
	Update(ctx context.Context) error
}

// everything discovered for a ring account
type Inventory struct {
	StickupCams []Device
	Groups      map[string]Group
}

// IsTimeout reports whether err was caused by the remote call timing out.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrTimeout) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
