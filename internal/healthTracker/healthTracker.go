package healthtracker

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
)

// something the tracker can refresh from the remote api
type Resource interface {
	ID() string
	Update(ctx context.Context) error
}

// receives a notification whenever fresh data for a tracked resource is available
type Listener interface {
	OnHealthData(obs Observation)
}

// sent after a tracked resource has been refreshed successfully
type Observation struct {
	ResourceID string
	FetchedAt  time.Time
}

type trackedResource struct {
	resource  Resource
	listeners []Listener
}

// Tracker periodically refreshes the resources registered with it and fans out
// an Observation to the listeners of each resource.
//
// Track, Untrack and Dispatch are expected to be called from the same goroutine
// that receives the observations, Run fetches on its own goroutine.
type Tracker struct {
	logger       *log.Logger
	pollInterval time.Duration

	mu      sync.Mutex
	tracked map[string]*trackedResource

	refreshNow chan string
}

func NewTracker(logger *log.Logger, pollInterval time.Duration) *Tracker {
	return &Tracker{
		logger:       logger,
		pollInterval: pollInterval,
		tracked:      map[string]*trackedResource{},
		refreshNow:   make(chan string, 16),
	}
}

func (t *Tracker) Track(resource Resource, listener Listener) {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := resource.ID()
	tr, found := t.tracked[id]
	if !found {
		tr = &trackedResource{resource: resource}
		t.tracked[id] = tr
	}
	tr.listeners = append(tr.listeners, listener)
	t.logger.Debug("tracking resource", "id", id, "listeners", len(tr.listeners))

	if !found {
		// first listener for this resource, fetch straight away rather than
		// waiting for the next poll
		select {
		case t.refreshNow <- id:
		default:
			t.logger.Debug("refresh queue full, resource will be fetched on the next poll", "id", id)
		}
	}
}

func (t *Tracker) Untrack(resourceID string, listener Listener) {
	t.mu.Lock()
	defer t.mu.Unlock()

	tr, found := t.tracked[resourceID]
	if !found {
		return
	}

	idx := lo.IndexOf(tr.listeners, listener)
	if idx < 0 {
		return
	}
	tr.listeners = append(tr.listeners[:idx], tr.listeners[idx+1:]...)

	if len(tr.listeners) == 0 {
		delete(t.tracked, resourceID)
		t.logger.Debug("stopped tracking resource", "id", resourceID)
	}
}

// Listeners returns the listeners currently registered for the resource.
func (t *Tracker) Listeners(resourceID string) []Listener {
	t.mu.Lock()
	defer t.mu.Unlock()

	tr, found := t.tracked[resourceID]
	if !found {
		return nil
	}
	return append([]Listener(nil), tr.listeners...)
}

func (t *Tracker) TrackedIDs() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return lo.Keys(t.tracked)
}

// Dispatch delivers an observation to every listener of its resource.
func (t *Tracker) Dispatch(obs Observation) {
	for _, l := range t.Listeners(obs.ResourceID) {
		l.OnHealthData(obs)
	}
}

// Run polls the tracked resources until ctx is done, sending an observation to
// out for every successful refresh.
func (t *Tracker) Run(ctx context.Context, out chan<- Observation) {
	ticker := time.NewTicker(t.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			t.logger.Debug("health tracker stopping")
			return

		case id := <-t.refreshNow:
			t.refresh(ctx, id, out)

		case <-ticker.C:
			t.RefreshAll(ctx, out)
		}
	}
}

func (t *Tracker) RefreshAll(ctx context.Context, out chan<- Observation) {
	for _, id := range t.TrackedIDs() {
		t.refresh(ctx, id, out)
	}
}

func (t *Tracker) refresh(ctx context.Context, id string, out chan<- Observation) {
	t.mu.Lock()
	tr, found := t.tracked[id]
	t.mu.Unlock()
	if !found {
		return
	}

	if err := tr.resource.Update(ctx); err != nil {
		t.logger.Error("error refreshing health data", "id", id, "err", err)
		return
	}

	select {
	case out <- Observation{ResourceID: id, FetchedAt: time.Now()}:
	case <-ctx.Done():
	}
}
