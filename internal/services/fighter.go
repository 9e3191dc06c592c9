package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/temmu/temmu-api/internal/logger"
	"github.com/temmu/temmu-api/internal/mappers"
	"github.com/temmu/temmu-api/internal/models"
)

//go:generate mockgen -source=fighter.go -destination=mock_fighter.go -package=services

var (
	// ErrFighterNotFound is returned when the referenced fighter id does not exist.
	ErrFighterNotFound = errors.New("fighter not found")
)

// FighterRepository stages fighter writes and commits them with SaveChanges.
type FighterRepository interface {
	GetAll(ctx context.Context) ([]models.FighterDB, error)           // Returns all fighters ordered by id
	GetByID(ctx context.Context, id int64) (*models.FighterDB, error) // Returns nil when absent
	Add(ctx context.Context, f *models.FighterDB) error               // Stages an insert and assigns f.ID
	Update(ctx context.Context, f *models.FighterDB) error            // Stages an overwrite keyed by f.ID
	Delete(ctx context.Context, id int64) error                       // Stages a delete
	SaveChanges(ctx context.Context) (bool, error)                    // Commits; false when nothing changed
}

// FighterCache caches fighters by id. Set only stores f while the fighter is still at
// version, so a row loaded before an Invalidate is never cached after it.
type FighterCache interface {
	Get(ctx context.Context, id int64) (*models.FighterDB, error)      // Returns an error on miss
	Version(ctx context.Context, id int64) (int64, error)              // Read before loading the row
	Set(ctx context.Context, f *models.FighterDB, version int64) error // Fails once the version moved on
	Invalidate(ctx context.Context, id int64) error                    // Bumps the version and evicts
}

// EventPublisher publishes fighter lifecycle events.
type EventPublisher interface {
	Publish(ctx context.Context, event models.FighterEvent) error
}

// FighterService implements fighter CRUD on top of the repository.
// cache and events are optional and may be nil.
type FighterService struct {
	repo   FighterRepository
	cache  FighterCache
	events EventPublisher
	now    func() time.Time
}

// NewFighterService creates a new FighterService.
func NewFighterService(repo FighterRepository, cache FighterCache, events EventPublisher) *FighterService {
	return &FighterService{
		repo:   repo,
		cache:  cache,
		events: events,
		now:    time.Now,
	}
}

// List returns every fighter in read shape. An empty store yields an empty slice.
func (s *FighterService) List(ctx context.Context) ([]models.FighterRead, error) {
	fighters, err := s.repo.GetAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list fighters", "err", err)
		return nil, err
	}
	return mappers.ToFighterReadList(fighters), nil
}

// Get returns the fighter id, reading through the cache when one is configured.
func (s *FighterService) Get(ctx context.Context, id int64) (*models.FighterRead, error) {
	log := logger.FromContext(ctx)

	var (
		version   int64
		cacheable bool
	)
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		if err == nil {
			read := mappers.ToFighterRead(cached)
			return &read, nil
		}
		log.Debugw("fighter cache miss", "fighter_id", id, "err", err)

		version, err = s.cache.Version(ctx, id)
		if err != nil {
			log.Warnw("failed to read fighter cache version", "fighter_id", id, "err", err)
		}
		cacheable = err == nil
	}

	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Errorw("failed to get fighter", "fighter_id", id, "err", err)
		return nil, err
	}
	if f == nil {
		log.Infow("fighter not found", "fighter_id", id)
		return nil, ErrFighterNotFound
	}

	if cacheable {
		if err := s.cache.Set(ctx, f, version); err != nil {
			log.Debugw("fighter not cached", "fighter_id", id, "version", version, "err", err)
		}
	}

	read := mappers.ToFighterRead(f)
	return &read, nil
}

// Create stores a new fighter and returns it with its store-assigned id.
func (s *FighterService) Create(ctx context.Context, req models.FighterWriteRequest) (*models.FighterRead, error) {
	log := logger.FromContext(ctx)

	f := mappers.ToFighter(req)
	if err := s.repo.Add(ctx, f); err != nil {
		log.Errorw("failed to add fighter", "err", err)
		return nil, err
	}
	if err := s.saveChanges(ctx, f.ID); err != nil {
		return nil, err
	}

	read := mappers.ToFighterRead(f)
	s.publish(ctx, models.FighterCreated, f.ID, &read)
	return &read, nil
}

// Update overwrites the provided fields of fighter id. The id in the route wins over
// anything carried by the body.
func (s *FighterService) Update(ctx context.Context, id int64, req models.FighterWriteRequest) error {
	log := logger.FromContext(ctx)

	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Errorw("failed to get fighter", "fighter_id", id, "err", err)
		return err
	}
	if f == nil {
		log.Infow("fighter not found", "fighter_id", id)
		return ErrFighterNotFound
	}

	mappers.ApplyUpdate(req, f)
	f.ID = id

	if err := s.repo.Update(ctx, f); err != nil {
		log.Errorw("failed to update fighter", "fighter_id", id, "err", err)
		return err
	}
	if err := s.saveChanges(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, id)
	read := mappers.ToFighterRead(f)
	s.publish(ctx, models.FighterUpdated, id, &read)
	return nil
}

// Delete removes fighter id.
func (s *FighterService) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Errorw("failed to get fighter", "fighter_id", id, "err", err)
		return err
	}
	if f == nil {
		log.Infow("fighter not found", "fighter_id", id)
		return ErrFighterNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Errorw("failed to delete fighter", "fighter_id", id, "err", err)
		return err
	}
	if err := s.saveChanges(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, id)
	s.publish(ctx, models.FighterDeleted, id, nil)
	return nil
}

// saveChanges commits the staged writes. Committing nothing is logged, not returned.
func (s *FighterService) saveChanges(ctx context.Context, id int64) error {
	saved, err := s.repo.SaveChanges(ctx)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to save changes", "fighter_id", id, "err", err)
		return err
	}
	if !saved {
		logger.FromContext(ctx).Warnw("no rows changed", "fighter_id", id)
	}
	return nil
}

func (s *FighterService) invalidate(ctx context.Context, id int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		logger.FromContext(ctx).Warnw("failed to invalidate cached fighter", "fighter_id", id, "err", err)
	}
}

func (s *FighterService) publish(ctx context.Context, operation string, id int64, fighter *models.FighterRead) {
	if s.events == nil {
		return
	}

	event := models.FighterEvent{
		EventID:   uuid.New().String(),
		FighterID: id,
		Operation: operation,
		Timestamp: s.now().Unix(),
		Fighter:   fighter,
	}
	if err := s.events.Publish(ctx, event); err != nil {
		logger.FromContext(ctx).Errorw("failed to publish fighter event", "fighter_id", id, "operation", operation, "err", err)
	}
}
