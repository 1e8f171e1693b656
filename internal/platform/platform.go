package platform

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/wheelibin/ringlight/internal/concurrency"
	"github.com/wheelibin/ringlight/internal/constants"
	"github.com/wheelibin/ringlight/internal/models"
)

// an entity managed by the platform
type Entity interface {
	UniqueID() string
	Name() string
	IsOn() bool
	// entities that are not pushed updates are refreshed by PollEntities
	ShouldPoll() bool
	State() models.EntityState
	Update(ctx context.Context) error
	AddedToHost(ctx context.Context)
	WillRemoveFromHost()
}

type stateRepo interface {
	RegisterEntity(sessionID string, state models.EntityState) error
	RecordState(state models.EntityState) (models.StateRecord, error)
	RemoveEntity(uniqueID string) error
}

type publisher interface {
	Publish(state models.EntityState)
}

type registeredEntity struct {
	entity    Entity
	entityID  string
	last      models.EntityState
	published bool
}

// Platform registers entities, persists and publishes their state and
// periodically refreshes the entities that ask to be polled.
//
// Entities themselves are only touched from the caller's goroutine, the state
// cache read by States and State is safe to use from anywhere.
type Platform struct {
	logger      *log.Logger
	sessionID   string
	repo        stateRepo
	publisher   publisher
	refreshRate float64
	now         func() time.Time

	mu        sync.RWMutex
	entities  map[string]*registeredEntity
	order     []string
	entityIDs map[string]string
}

func NewPlatform(logger *log.Logger, sessionID string, repo stateRepo, publisher publisher, refreshRate float64) *Platform {
	if refreshRate <= 0 {
		refreshRate = constants.DefaultEntityRefreshRate
	}
	return &Platform{
		logger:      logger,
		sessionID:   sessionID,
		repo:        repo,
		publisher:   publisher,
		refreshRate: refreshRate,
		now:         time.Now,
		entities:    map[string]*registeredEntity{},
		entityIDs:   map[string]string{},
	}
}

func (p *Platform) SessionID() string {
	return p.sessionID
}

// AddEntities registers the entities, attaches them and publishes their
// initial state.
func (p *Platform) AddEntities(ctx context.Context, entities []Entity) error {
	for _, e := range entities {
		re, err := p.register(e)
		if err != nil {
			return err
		}

		state := e.State()
		state.EntityID = re.entityID
		state.UpdatedAt = p.now()
		if err := p.repo.RegisterEntity(p.sessionID, state); err != nil {
			p.forget(e.UniqueID())
			return err
		}

		p.logger.Info("Added entity", "entity", re.entityID, "name", e.Name())
		e.AddedToHost(ctx)
		p.WriteState(e.State())
	}
	return nil
}

func (p *Platform) register(e Entity) (*registeredEntity, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	uniqueID := e.UniqueID()
	if _, found := p.entities[uniqueID]; found {
		return nil, fmt.Errorf("entity with unique id %s already added", uniqueID)
	}

	re := &registeredEntity{entity: e, entityID: p.generateEntityID(e.Name())}
	p.entities[uniqueID] = re
	p.entityIDs[re.entityID] = uniqueID
	p.order = append(p.order, uniqueID)
	return re, nil
}

func (p *Platform) forget(uniqueID string) *registeredEntity {
	p.mu.Lock()
	defer p.mu.Unlock()

	re, found := p.entities[uniqueID]
	if !found {
		return nil
	}
	delete(p.entities, uniqueID)
	delete(p.entityIDs, re.entityID)
	p.order = lo.Without(p.order, uniqueID)
	return re
}

// RemoveEntity detaches the entity and deletes its stored state.
func (p *Platform) RemoveEntity(id string) error {
	uniqueID, found := p.resolve(id)
	if !found {
		return fmt.Errorf("entity %s not found", id)
	}

	re := p.forget(uniqueID)
	re.entity.WillRemoveFromHost()
	p.logger.Info("Removed entity", "entity", re.entityID)
	return p.repo.RemoveEntity(uniqueID)
}

// DetachAll detaches every entity, their stored state is kept for the next session.
func (p *Platform) DetachAll() {
	p.mu.RLock()
	ids := append([]string(nil), p.order...)
	p.mu.RUnlock()

	for _, id := range ids {
		if re := p.forget(id); re != nil {
			re.entity.WillRemoveFromHost()
		}
	}
}

// WriteState persists and publishes the state of an entity.
func (p *Platform) WriteState(state models.EntityState) {
	p.mu.RLock()
	re, found := p.entities[state.UniqueID]
	p.mu.RUnlock()
	if !found {
		p.logger.Warn("state written for unknown entity", "id", state.UniqueID)
		return
	}

	state.EntityID = re.entityID
	state.UpdatedAt = p.now()

	if _, err := p.repo.RecordState(state); err != nil {
		p.logger.Error(err)
	}

	p.mu.Lock()
	re.last = state
	re.published = true
	p.mu.Unlock()

	p.logger.Debug("state written", "entity", state.EntityID, "on", state.On)
	p.publisher.Publish(state)
}

// PollEntities refreshes every entity that should be polled, publishing the
// state of those that changed.
func (p *Platform) PollEntities(ctx context.Context) error {
	p.mu.RLock()
	polled := lo.FilterMap(p.order, func(id string, _ int) (*registeredEntity, bool) {
		re := p.entities[id]
		return re, re.entity.ShouldPoll()
	})
	p.mu.RUnlock()

	tw := concurrency.NewThrottledWorker(p.refreshRate, func(ctx context.Context, re *registeredEntity) error {
		if err := re.entity.Update(ctx); err != nil {
			return fmt.Errorf("error updating %s: %w", re.entityID, err)
		}

		state := re.entity.State()
		p.mu.RLock()
		changed := !re.published || re.last.On != state.On
		p.mu.RUnlock()
		if changed {
			p.WriteState(state)
		}
		return nil
	})
	return tw.Run(ctx, polled)
}

// Entity finds an entity by unique id or entity id.
func (p *Platform) Entity(id string) (Entity, bool) {
	uniqueID, found := p.resolve(id)
	if !found {
		return nil, false
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.entities[uniqueID].entity, true
}

// State returns the last published state of an entity, by unique id or entity id.
func (p *Platform) State(id string) (models.EntityState, bool) {
	uniqueID, found := p.resolve(id)
	if !found {
		return models.EntityState{}, false
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	re := p.entities[uniqueID]
	return re.last, re.published
}

// States returns the last published state of every entity, in the order they were added.
func (p *Platform) States() []models.EntityState {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return lo.FilterMap(p.order, func(id string, _ int) (models.EntityState, bool) {
		re := p.entities[id]
		return re.last, re.published
	})
}

func (p *Platform) resolve(id string) (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if _, found := p.entities[id]; found {
		return id, true
	}
	uniqueID, found := p.entityIDs[id]
	return uniqueID, found
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

func Slugify(name string) string {
	slug := strings.Trim(nonSlugChars.ReplaceAllString(strings.ToLower(name), "_"), "_")
	if slug == "" {
		return "unnamed"
	}
	return slug
}

// must be called with p.mu held
func (p *Platform) generateEntityID(name string) string {
	base := fmt.Sprintf("%s.%s", constants.EntityDomain, Slugify(name))
	entityID := base
	for i := 2; ; i++ {
		if _, taken := p.entityIDs[entityID]; !taken {
			return entityID
		}
		entityID = fmt.Sprintf("%s_%d", base, i)
	}
}
