// Package cache keeps process-local read caches in front of repositories.
package cache

import (
	"context"
	"log/slog"
	"sync"

	"beerhaus/config"
	"beerhaus/internal/domain/entity"
	"beerhaus/internal/domain/repository"
	"beerhaus/internal/errors"

	"github.com/dgraph-io/ristretto/v2"
	"go.uber.org/fx"
)

// CachedUserRepository serves FindByID from memory. Writes through this
// repository drop the cached entry, so a profile is never served stale
// after its owner saves it.
//
// Every write bumps a per-user generation before and after it reaches the
// store. A read only fills the cache when the generation it started with is
// still current, so a read that overlapped a write cannot cache the old
// document after the write dropped it.
type CachedUserRepository struct {
	repository.UserRepository

	cache  *ristretto.Cache[string, *entity.User]
	logger *slog.Logger

	mu          sync.Mutex
	generations map[string]uint64
}

// Params holds dependencies for the cached repository, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// DecorateUserRepository wraps next with a ristretto cache sized from config.
func DecorateUserRepository(params Params, next repository.UserRepository) (repository.UserRepository, error) {
	repo, err := NewCachedUserRepository(next, params.Config.Profile.CacheCounters, params.Config.Profile.CacheMaxCost, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			repo.cache.Close()

			return nil
		},
	})

	return repo, nil
}

// NewCachedUserRepository builds the cache. Every entry costs 1, so maxCost
// is the number of cached profiles.
func NewCachedUserRepository(next repository.UserRepository, numCounters, maxCost int64, logger *slog.Logger) (*CachedUserRepository, error) {
	c, err := ristretto.NewCache(&ristretto.Config[string, *entity.User]{
		NumCounters: numCounters,
		MaxCost:     maxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create profile cache")
	}

	return &CachedUserRepository{
		UserRepository: next,
		cache:          c,
		logger:         logger,
		generations:    make(map[string]uint64),
	}, nil
}

func (r *CachedUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	if user, ok := r.cache.Get(id); ok {
		return cloneUser(user), nil
	}

	generation := r.generation(id)

	user, err := r.UserRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	r.fill(id, generation, user)

	return user, nil
}

func (r *CachedUserRepository) Create(ctx context.Context, user *entity.User) error {
	r.invalidate(user.ID)
	err := r.UserRepository.Create(ctx, user)
	r.invalidate(user.ID)

	return err
}

func (r *CachedUserRepository) Merge(ctx context.Context, id string, patch *entity.UserPatch) error {
	r.invalidate(id)
	err := r.UserRepository.Merge(ctx, id, patch)
	r.invalidate(id)

	return err
}

func (r *CachedUserRepository) generation(id string) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.generations[id]
}

// fill caches user unless a write to id started since generation was read.
func (r *CachedUserRepository) fill(id string, generation uint64, user *entity.User) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.generations[id] != generation {
		r.logger.Debug("Profile cache skipped fill after concurrent write", slog.String("user_id", id))

		return
	}
	if !r.cache.Set(id, cloneUser(user), 1) {
		r.logger.Debug("Profile cache dropped entry", slog.String("user_id", id))
	}
}

// invalidate bumps the generation of id and drops its cached entry.
func (r *CachedUserRepository) invalidate(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.generations[id]++
	r.cache.Del(id)
}

// Wait blocks until pending cache writes are applied.
func (r *CachedUserRepository) Wait() {
	r.cache.Wait()
}

// cloneUser copies the mutable parts so callers cannot alter cached entries.
func cloneUser(user *entity.User) *entity.User {
	if user == nil {
		return nil
	}

	clone := *user
	if user.Skills != nil {
		clone.Skills = append([]string(nil), user.Skills...)
	}
	if user.ProfilePicURL != nil {
		pic := *user.ProfilePicURL
		clone.ProfilePicURL = &pic
	}

	return &clone
}
