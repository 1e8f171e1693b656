package constants

import "time"

// the ring api takes a few seconds to report a change we have made, so after
// a successful write any incoming updates are ignored for this long
const SkipUpdatesDelay = 5 * time.Second

// light states as understood by the ring api
const OnState = "on"
const OffState = "off"

const CapabilityLight = "light"

// suffix appended to a device name to name its light
const DeviceLightSuffix = "light"

const EntityDomain = "light"

const DefaultHealthPollInterval = time.Minute
const DefaultEntityScanInterval = 30 * time.Second
const DefaultEntityRefreshRate = 10.0

// timeout applied to each remote write issued from the hub loop
const DefaultRemoteWriteTimeout = 10 * time.Second

// entity actions
const ActionTurnOn = "turn_on"
const ActionTurnOff = "turn_off"
const ActionUpdate = "update"
const ActionRemove = "remove"

// resource kinds
const KindDevice = "device"
const KindGroup = "group"

// name of the sse stream that entity states are published on
const StateStreamName = "states"

const DefaultHistoryLimit = 20
