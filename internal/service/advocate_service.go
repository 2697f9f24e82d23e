// internal/service/advocate_service.go
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	appErrors "github.com/unclebandit/advocates-backend/internal/errors"
	"github.com/unclebandit/advocates-backend/internal/model"
	"github.com/unclebandit/advocates-backend/internal/queue"
	"github.com/unclebandit/advocates-backend/internal/repository"
	"github.com/unclebandit/advocates-backend/internal/seed"
)

// AdvocateService is the data provider behind GET /api/advocates.
type AdvocateService struct {
	Repo        repository.AdvocateRepositoryInterface
	UseDatabase bool
	Log         *zap.Logger
}

// ListAdvocates returns the complete advocate list. It never fails: when the
// store is disabled or unavailable the bundled seed list is returned instead.
func (s *AdvocateService) ListAdvocates(ctx context.Context) (advocates []model.Advocate) {
	if !s.UseDatabase || s.Repo == nil {
		return seed.Advocates()
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger().Error("panic while fetching advocates, serving seed data", zap.Any("panic", r))
			advocates = seed.Advocates()
		}
	}()

	advocates, err := s.Repo.ListAll(ctx)
	if err != nil {
		s.logger().Warn("⚠️ Error fetching advocates, serving seed data",
			zap.Stringer("kind", appErrors.KindOf(err)), zap.Error(err))
		return seed.Advocates()
	}
	if advocates == nil {
		advocates = []model.Advocate{}
	}
	return advocates
}

func (s *AdvocateService) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}

// SeedStore writes advocates straight into the store and returns how many were written.
func SeedStore(ctx context.Context, repo repository.AdvocateRepositoryInterface, advocates []model.Advocate) (int, error) {
	for i := range advocates {
		if err := repo.Upsert(ctx, &advocates[i]); err != nil {
			return i, fmt.Errorf("seed %s %s: %w", advocates[i].FirstName, advocates[i].LastName, err)
		}
	}
	return len(advocates), nil
}

// PublishSeed queues advocates for the import worker and returns how many were published.
func PublishSeed(ctx context.Context, pub queue.Publisher, advocates []model.Advocate) (int, error) {
	for i, a := range advocates {
		if err := pub.Publish(ctx, queue.AdvocateUpserts, a); err != nil {
			return i, fmt.Errorf("publish %s %s: %w", a.FirstName, a.LastName, err)
		}
	}
	return len(advocates), nil
}
