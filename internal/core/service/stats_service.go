package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskmanager/task-api/internal/core/domain"
	"github.com/taskmanager/task-api/internal/core/ports"
)

const recentLimit = 10

// StatsService aggregates server-wide counters for the admin dashboard.
// Snapshots are cached briefly; cache faults degrade to a live aggregation.
type StatsService struct {
	users    ports.UserRepository
	tasks    ports.TaskRepository
	projects ports.ProjectRepository
	cache    ports.StatsCache
	logger   zerolog.Logger
}

func NewStatsService(users ports.UserRepository, tasks ports.TaskRepository, projects ports.ProjectRepository, cache ports.StatsCache, logger zerolog.Logger) *StatsService {
	return &StatsService{users: users, tasks: tasks, projects: projects, cache: cache, logger: logger}
}

// Snapshot returns the current statistics, preferring a cached copy.
func (s *StatsService) Snapshot(ctx context.Context) (*domain.Stats, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("stats cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	stats, err := s.aggregate(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, stats); err != nil {
			s.logger.Warn().Err(err).Msg("stats cache write failed")
		}
	}
	return stats, nil
}

func (s *StatsService) aggregate(ctx context.Context) (*domain.Stats, error) {
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalTasks, err := s.tasks.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalProjects, err := s.projects.Count(ctx)
	if err != nil {
		return nil, err
	}
	byStatus, err := s.tasks.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	byPriority, err := s.tasks.CountByPriority(ctx)
	if err != nil {
		return nil, err
	}
	recentTasks, err := s.tasks.ListRecent(ctx, recentLimit)
	if err != nil {
		return nil, err
	}
	recentUsers, err := s.users.ListRecent(ctx, recentLimit)
	if err != nil {
		return nil, err
	}

	return &domain.Stats{
		TotalUsers:      totalUsers,
		TotalTasks:      totalTasks,
		TotalProjects:   totalProjects,
		TasksByStatus:   byStatus,
		TasksByPriority: byPriority,
		RecentTasks:     recentTasks,
		RecentUsers:     recentUsers,
		Timestamp:       time.Now().UTC(),
	}, nil
}
