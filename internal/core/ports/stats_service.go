package ports

import (
	"context"

	"github.com/taskmanager/task-api/internal/core/domain"
)

// StatsService builds the server-wide statistics snapshot.
type StatsService interface {
	Snapshot(ctx context.Context) (*domain.Stats, error)
}

// StatsCache stores a recent snapshot so repeated admin dashboard polls do
// not re-run the aggregation pipeline. A cache miss returns (nil, nil).
type StatsCache interface {
	Get(ctx context.Context) (*domain.Stats, error)
	Set(ctx context.Context, stats *domain.Stats) error
}
