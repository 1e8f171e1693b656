package hub_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wheelibin/ringlight/internal/constants"
	"github.com/wheelibin/ringlight/internal/healthTracker"
	"github.com/wheelibin/ringlight/internal/hub"
	"github.com/wheelibin/ringlight/internal/models"
	"github.com/wheelibin/ringlight/internal/platform"
	"github.com/wheelibin/ringlight/internal/simulator"
	"github.com/wheelibin/ringlight/mocks"
)

var devices = []models.SimulatedDevice{
	{ID: "d1", Name: "Driveway", Capabilities: []string{"light", "siren"}, Lights: "off"},
	{ID: "d2", Name: "Doorbell", Capabilities: []string{"chime"}},
}

var groups = []models.SimulatedGroup{
	{ID: "g2", Name: "Side path", Lights: false},
	{ID: "g1", Name: "Garden", Lights: true},
}

type fixture struct {
	hub      *hub.Hub
	platform *platform.Platform
	backend  *simulator.Backend
}

func newFixture(t *testing.T) fixture {
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})

	repo := mocks.NewMockPlatformStateRepo(t)
	repo.On("RegisterEntity", "s1", mock.Anything).Return(nil).Maybe()
	repo.On("RecordState", mock.Anything).Return(models.StateRecord{}, nil).Maybe()
	repo.On("RemoveEntity", mock.Anything).Return(nil).Maybe()
	pub := mocks.NewMockPlatformPublisher(t)
	pub.On("Publish", mock.Anything).Maybe()

	backend := simulator.NewBackend(logger, simulator.Options{})
	p := platform.NewPlatform(logger, "s1", repo, pub, 1000)
	tracker := healthtracker.NewTracker(logger, time.Hour)
	h := hub.NewHub(logger, p, tracker, time.Hour, time.Second)

	require.NoError(t, h.Initialise(context.Background(), backend.Inventory(devices, groups)))

	return fixture{hub: h, platform: p, backend: backend}
}

func run(t *testing.T, h *hub.Hub) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
}

func Test_Initialise(t *testing.T) {

	t.Run("should add devices with lights and every group", func(t *testing.T) {
		// arrange
		f := newFixture(t)

		// act
		states := f.platform.States()

		// assert
		ids := []string{}
		for _, s := range states {
			ids = append(ids, s.EntityID)
		}
		assert.Equal(t, []string{"light.driveway_light", "light.garden", "light.side_path"}, ids)

		garden, found := f.platform.State("light.garden")
		require.True(t, found)
		assert.True(t, garden.On)
		assert.Equal(t, constants.KindGroup, garden.Kind)
	})
}

func Test_Submit(t *testing.T) {

	t.Run("should switch a light on through the loop", func(t *testing.T) {
		// arrange
		f := newFixture(t)
		run(t, f.hub)

		// act
		err := f.hub.Submit(context.Background(), "light.driveway_light", constants.ActionTurnOn)

		// assert
		require.NoError(t, err)
		state, _ := f.platform.State("d1")
		assert.True(t, state.On)
	})

	t.Run("update should pick up a change made elsewhere", func(t *testing.T) {
		// arrange
		f := newFixture(t)
		run(t, f.hub)
		require.NoError(t, f.backend.SetExternally("d1", true))

		// act
		err := f.hub.Submit(context.Background(), "d1", constants.ActionUpdate)

		// assert
		require.NoError(t, err)
		state, _ := f.platform.State("d1")
		assert.True(t, state.On)
	})

	t.Run("remove should drop the entity", func(t *testing.T) {
		// arrange
		f := newFixture(t)
		run(t, f.hub)

		// act
		err := f.hub.Submit(context.Background(), "light.side_path", constants.ActionRemove)

		// assert
		require.NoError(t, err)
		_, found := f.platform.Entity("g2")
		assert.False(t, found)
	})

	t.Run("should fail for an unknown entity", func(t *testing.T) {
		// arrange
		f := newFixture(t)
		run(t, f.hub)

		// act
		err := f.hub.Submit(context.Background(), "light.nope", constants.ActionTurnOn)

		// assert
		assert.ErrorIs(t, err, hub.ErrUnknownEntity)
	})

	t.Run("should fail for an unknown action", func(t *testing.T) {
		// arrange
		f := newFixture(t)
		run(t, f.hub)

		// act
		err := f.hub.Submit(context.Background(), "light.garden", "toggle")

		// assert
		assert.ErrorIs(t, err, hub.ErrUnknownAction)
	})

	t.Run("should give up when the context ends before the loop picks it up", func(t *testing.T) {
		// arrange
		f := newFixture(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// act
		err := f.hub.Submit(ctx, "light.garden", constants.ActionTurnOff)

		// assert
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func Test_Run(t *testing.T) {

	t.Run("should deliver group health data to the group light", func(t *testing.T) {
		// arrange
		f := newFixture(t)
		require.NoError(t, f.backend.SetExternally("g2", true))

		// act
		// the tracker fetches newly tracked groups as soon as it starts
		run(t, f.hub)

		// assert
		assert.Eventually(t, func() bool {
			state, _ := f.platform.State("g2")
			return state.On
		}, time.Second, 10*time.Millisecond)
	})
}
