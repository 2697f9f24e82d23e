package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/unclebandit/advocates-backend/internal/model"
	"github.com/unclebandit/advocates-backend/internal/queue"
	"github.com/unclebandit/advocates-backend/internal/service"
)

// importInProcess runs the import worker on an in-memory queue inside the
// seeder and returns once every published record has been handled.
func importInProcess(ctx context.Context, writer service.AdvocateWriter, advocates []model.Advocate, log *zap.Logger) (int, error) {
	q := queue.NewInMemoryQueue(log)
	if err := q.Subscribe(queue.AdvocateUpserts, service.NewImportWorker(writer, log).Handle); err != nil {
		return 0, err
	}

	n, err := service.PublishSeed(ctx, q, advocates)
	q.Wait()
	return n, err
}
