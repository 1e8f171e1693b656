package ringlight_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wheelibin/ringlight/internal/constants"
	"github.com/wheelibin/ringlight/internal/healthTracker"
	"github.com/wheelibin/ringlight/internal/models"
	"github.com/wheelibin/ringlight/internal/ring"
	"github.com/wheelibin/ringlight/internal/ringLight"
	"github.com/wheelibin/ringlight/mocks"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func quietLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})
}

func mockGroup(t *testing.T, lights bool) *mocks.MockRingGroup {
	group := mocks.NewMockRingGroup(t)
	group.On("ID").Return("g1").Maybe()
	group.On("Name").Return("Garden").Maybe()
	group.On("Lights").Return(lights).Maybe()
	return group
}

func mockDevice(t *testing.T, lights string) *mocks.MockRingDevice {
	device := mocks.NewMockRingDevice(t)
	device.On("ID").Return("d1").Maybe()
	device.On("Name").Return("Driveway").Maybe()
	device.On("Lights").Return(lights).Maybe()
	return device
}

func Test_Refresh_Device(t *testing.T) {

	t.Run("should be on when the device reports on", func(t *testing.T) {
		// arrange
		device := mockDevice(t, "on")
		tracker := mocks.NewMockRinglightHealthTracker(t)
		writer := mocks.NewMockRinglightStateWriter(t)

		// act
		light := ringlight.NewDeviceLight(quietLogger(), "s1", device, tracker, writer)
		err := light.Update(context.Background())

		// assert
		assert.NoError(t, err)
		assert.True(t, light.IsOn())
	})

	t.Run("should be off for any other reported value", func(t *testing.T) {
		// arrange
		device := mockDevice(t, "foo")
		tracker := mocks.NewMockRinglightHealthTracker(t)
		writer := mocks.NewMockRinglightStateWriter(t)

		// act
		light := ringlight.NewDeviceLight(quietLogger(), "s1", device, tracker, writer)
		err := light.Update(context.Background())

		// assert
		assert.NoError(t, err)
		assert.False(t, light.IsOn())
	})

	t.Run("should append the light suffix to the device name", func(t *testing.T) {
		// arrange
		device := mockDevice(t, "off")
		tracker := mocks.NewMockRinglightHealthTracker(t)
		writer := mocks.NewMockRinglightStateWriter(t)

		// act
		light := ringlight.NewDeviceLight(quietLogger(), "s1", device, tracker, writer)

		// assert
		assert.Equal(t, "Driveway light", light.Name())
		assert.Equal(t, constants.KindDevice, light.Kind())
		assert.True(t, light.ShouldPoll())
	})
}

func Test_Refresh_Group(t *testing.T) {

	t.Run("should use the group name and reported bool as is", func(t *testing.T) {
		// arrange
		group := mockGroup(t, true)
		tracker := mocks.NewMockRinglightHealthTracker(t)
		writer := mocks.NewMockRinglightStateWriter(t)

		// act
		light := ringlight.NewGroupLight(quietLogger(), "s1", group, tracker, writer)

		// assert
		assert.Equal(t, "Garden", light.Name())
		assert.Equal(t, constants.KindGroup, light.Kind())
		assert.True(t, light.IsOn())
		assert.False(t, light.ShouldPoll())
	})
}

func Test_SetLight(t *testing.T) {

	t.Run("group on: should write true, assume on, open the skip window and publish", func(t *testing.T) {
		// arrange
		clock := newClock()
		group := mockGroup(t, false)
		tracker := mocks.NewMockRinglightHealthTracker(t)
		writer := mocks.NewMockRinglightStateWriter(t)

		group.On("SetLights", mock.Anything, true).Return(nil).Once()
		writer.On("WriteState", models.EntityState{UniqueID: "g1", Name: "Garden", Kind: constants.KindGroup, On: true}).Once()

		light := ringlight.NewGroupLight(quietLogger(), "s1", group, tracker, writer, ringlight.WithClock(clock.Now))

		// act
		err := light.SetLight(context.Background(), constants.OnState)

		// assert
		assert.NoError(t, err)
		assert.True(t, light.IsOn())
		assert.Equal(t, clock.Now().Add(5*time.Second), light.NoUpdatesUntil())
	})

	t.Run("device off: should write the state string through", func(t *testing.T) {
		// arrange
		clock := newClock()
		device := mockDevice(t, "on")
		tracker := mocks.NewMockRinglightHealthTracker(t)
		writer := mocks.NewMockRinglightStateWriter(t)

		device.On("SetLights", mock.Anything, "off").Return(nil).Once()
		writer.On("WriteState", mock.MatchedBy(func(s models.EntityState) bool { return !s.On })).Once()

		light := ringlight.NewDeviceLight(quietLogger(), "s1", device, tracker, writer, ringlight.WithClock(clock.Now))

		// act
		err := light.TurnOff(context.Background())

		// assert
		assert.NoError(t, err)
		assert.False(t, light.IsOn())
		assert.Equal(t, clock.Now().Add(constants.SkipUpdatesDelay), light.NoUpdatesUntil())
	})

	t.Run("invalid state: should not call the remote, state and window untouched", func(t *testing.T) {
		// arrange
		clock := newClock()
		group := mockGroup(t, false)
		tracker := mocks.NewMockRinglightHealthTracker(t)
		writer := mocks.NewMockRinglightStateWriter(t)

		light := ringlight.NewGroupLight(quietLogger(), "s1", group, tracker, writer, ringlight.WithClock(clock.Now))
		windowBefore := light.NoUpdatesUntil()

		// act
		err := light.SetLight(context.Background(), "purple")

		// assert
		assert.NoError(t, err)
		assert.False(t, light.IsOn())
		assert.Equal(t, windowBefore, light.NoUpdatesUntil())
		group.AssertNotCalled(t, "SetLights", mock.Anything, mock.Anything)
		writer.AssertNotCalled(t, "WriteState", mock.Anything)
	})

	t.Run("invalid state on a device: should not call the remote either", func(t *testing.T) {
		// arrange
		device := mockDevice(t, "off")
		tracker := mocks.NewMockRinglightHealthTracker(t)
		writer := mocks.NewMockRinglightStateWriter(t)

		light := ringlight.NewDeviceLight(quietLogger(), "s1", device, tracker, writer)

		// act
		err := light.SetLight(context.Background(), "purple")

		// assert
		assert.NoError(t, err)
		device.AssertNotCalled(t, "SetLights", mock.Anything, mock.Anything)
	})

	t.Run("timeout: should leave state and window unchanged and not publish", func(t *testing.T) {
		// arrange
		clock := newClock()
		group := mockGroup(t, false)
		tracker := mocks.NewMockRinglightHealthTracker(t)
		writer := mocks.NewMockRinglightStateWriter(t)

		group.On("SetLights", mock.Anything, true).Return(ring.ErrTimeout).Once()

		light := ringlight.NewGroupLight(quietLogger(), "s1", group, tracker, writer, ringlight.WithClock(clock.Now))
		windowBefore := light.NoUpdatesUntil()
		clock.Advance(time.Second)

		// act
		err := light.SetLight(context.Background(), constants.OnState)

		// assert
		assert.NoError(t, err)
		assert.False(t, light.IsOn())
		assert.Equal(t, windowBefore, light.NoUpdatesUntil())
		writer.AssertNotCalled(t, "WriteState", mock.Anything)
	})

	t.Run("deadline exceeded counts as a timeout", func(t *testing.T) {
		// arrange
		device := mockDevice(t, "off")
		tracker := mocks.NewMockRinglightHealthTracker(t)
		writer := mocks.NewMockRinglightStateWriter(t)

		device.On("SetLights", mock.Anything, "on").Return(context.DeadlineExceeded).Once()

		light := ringlight.NewDeviceLight(quietLogger(), "s1", device, tracker, writer)

		// act
		err := light.TurnOn(context.Background())

		// assert
		assert.NoError(t, err)
		assert.False(t, light.IsOn())
	})

	t.Run("other remote errors are returned", func(t *testing.T) {
		// arrange
		device := mockDevice(t, "off")
		tracker := mocks.NewMockRinglightHealthTracker(t)
		writer := mocks.NewMockRinglightStateWriter(t)
		remoteErr := errors.New("unauthorised")

		device.On("SetLights", mock.Anything, "on").Return(remoteErr).Once()

		light := ringlight.NewDeviceLight(quietLogger(), "s1", device, tracker, writer)

		// act
		err := light.TurnOn(context.Background())

		// assert
		assert.ErrorIs(t, err, remoteErr)
		assert.False(t, light.IsOn())
		writer.AssertNotCalled(t, "WriteState", mock.Anything)
	})

	t.Run("setting the same state twice re-arms the window each time", func(t *testing.T) {
		// arrange
		clock := newClock()
		group := mockGroup(t, false)
		tracker := mocks.NewMockRinglightHealthTracker(t)
		writer := mocks.NewMockRinglightStateWriter(t)

		group.On("SetLights", mock.Anything, true).Return(nil).Twice()
		writer.On("WriteState", mock.Anything).Twice()

		light := ringlight.NewGroupLight(quietLogger(), "s1", group, tracker, writer, ringlight.WithClock(clock.Now))

		// act
		_ = light.TurnOn(context.Background())
		firstWindow := light.NoUpdatesUntil()
		clock.Advance(2 * time.Second)
		_ = light.TurnOn(context.Background())

		// assert
		assert.True(t, light.IsOn())
		assert.Equal(t, firstWindow.Add(2*time.Second), light.NoUpdatesUntil())
	})
}

func Test_OnHealthData(t *testing.T) {

	t.Run("should drop notifications inside the skip window", func(t *testing.T) {
		// arrange
		clock := newClock()
		group := mocks.NewMockRingGroup(t)
		group.On("ID").Return("g1").Maybe()
		group.On("Name").Return("Garden").Maybe()
		// stale value still reported after the write
		group.On("Lights").Return(false).Maybe()
		group.On("SetLights", mock.Anything, true).Return(nil).Once()

		tracker := mocks.NewMockRinglightHealthTracker(t)
		writer := mocks.NewMockRinglightStateWriter(t)
		writer.On("WriteState", mock.Anything).Once()

		light := ringlight.NewGroupLight(quietLogger(), "s1", group, tracker, writer, ringlight.WithClock(clock.Now))
		_ = light.TurnOn(context.Background())

		// act
		clock.Advance(4*time.Second + 999*time.Millisecond)
		light.OnHealthData(healthtracker.Observation{ResourceID: "g1", FetchedAt: clock.Now()})

		// assert
		assert.True(t, light.IsOn())
		writer.AssertNumberOfCalls(t, "WriteState", 1)
	})

	t.Run("should refresh from the group once the window has passed", func(t *testing.T) {
		// arrange
		clock := newClock()
		group := mocks.NewMockRingGroup(t)
		group.On("ID").Return("g1").Maybe()
		group.On("Name").Return("Garden").Maybe()
		group.On("Lights").Return(false).Maybe()
		group.On("SetLights", mock.Anything, true).Return(nil).Once()

		tracker := mocks.NewMockRinglightHealthTracker(t)
		writer := mocks.NewMockRinglightStateWriter(t)
		writer.On("WriteState", mock.Anything).Twice()

		light := ringlight.NewGroupLight(quietLogger(), "s1", group, tracker, writer, ringlight.WithClock(clock.Now))
		_ = light.TurnOn(context.Background())

		// act
		clock.Advance(constants.SkipUpdatesDelay)
		light.OnHealthData(healthtracker.Observation{ResourceID: "g1"})

		// assert
		// the group was switched off elsewhere, the observation payload is not used
		assert.False(t, light.IsOn())
		writer.AssertNumberOfCalls(t, "WriteState", 2)
	})

	t.Run("should refresh straight away when no write has been made", func(t *testing.T) {
		// arrange
		clock := newClock()
		lights := false
		group := mocks.NewMockRingGroup(t)
		group.On("ID").Return("g1").Maybe()
		group.On("Name").Return("Garden").Maybe()
		group.On("Lights").Return(func() bool { return lights }).Maybe()

		tracker := mocks.NewMockRinglightHealthTracker(t)
		writer := mocks.NewMockRinglightStateWriter(t)
		writer.On("WriteState", models.EntityState{UniqueID: "g1", Name: "Garden", Kind: constants.KindGroup, On: true}).Once()

		light := ringlight.NewGroupLight(quietLogger(), "s1", group, tracker, writer, ringlight.WithClock(clock.Now))

		// act
		lights = true
		light.OnHealthData(healthtracker.Observation{ResourceID: "g1"})

		// assert
		assert.True(t, light.IsOn())
	})
}

func Test_AttachDetach(t *testing.T) {

	t.Run("group: should track and untrack exactly itself", func(t *testing.T) {
		// arrange
		group := mockGroup(t, false)
		tracker := mocks.NewMockRinglightHealthTracker(t)
		writer := mocks.NewMockRinglightStateWriter(t)

		light := ringlight.NewGroupLight(quietLogger(), "s1", group, tracker, writer)

		tracker.On("Track", group, light).Once()
		tracker.On("Untrack", "g1", light).Once()

		// act
		light.AddedToHost(context.Background())
		light.WillRemoveFromHost()

		// assert
		tracker.AssertNumberOfCalls(t, "Track", 1)
		tracker.AssertNumberOfCalls(t, "Untrack", 1)
	})

	t.Run("device: should never register with the tracker", func(t *testing.T) {
		// arrange
		device := mockDevice(t, "off")
		tracker := mocks.NewMockRinglightHealthTracker(t)
		writer := mocks.NewMockRinglightStateWriter(t)

		light := ringlight.NewDeviceLight(quietLogger(), "s1", device, tracker, writer)

		// act
		light.AddedToHost(context.Background())
		light.WillRemoveFromHost()

		// assert
		tracker.AssertNotCalled(t, "Track", mock.Anything, mock.Anything)
		tracker.AssertNotCalled(t, "Untrack", mock.Anything, mock.Anything)
	})
}
