package domain

import "time"

// StatusCount is one bucket of a grouped task aggregation.
type StatusCount struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

// Stats is the server-wide snapshot served to administrators.
type Stats struct {
	TotalUsers      int64         `json:"total_users"`
	TotalTasks      int64         `json:"total_tasks"`
	TotalProjects   int64         `json:"total_projects"`
	TasksByStatus   []StatusCount `json:"tasks_by_status"`
	TasksByPriority []StatusCount `json:"tasks_by_priority"`
	RecentTasks     []Task        `json:"recent_tasks"`
	RecentUsers     []User        `json:"recent_users"`
	Timestamp       time.Time     `json:"timestamp"`
}
