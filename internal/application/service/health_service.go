package service

import (
	"context"
	"time"
)

// Database states reported by the health probe
const (
	DatabaseConnected    = "Connected"
	DatabaseDisconnected = "Disconnected"
)

// Pinger checks that the store answers
type Pinger func(ctx context.Context) error

// HealthService reports liveness and store connectivity
type HealthService struct {
	ping Pinger
	now  Clock
}

// NewHealthService creates a new health service
func NewHealthService(ping Pinger, now Clock) *HealthService {
	return &HealthService{ping: ping, now: now}
}

// HealthStatus is the liveness probe body
type HealthStatus struct {
	Message   string    `json:"message"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

// Check pings the store with a short deadline
func (s *HealthService) Check(ctx context.Context) *HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	state := DatabaseConnected
	if err := s.ping(ctx); err != nil {
		state = DatabaseDisconnected
	}
	return &HealthStatus{
		Message:   "ERP API is running",
		Database:  state,
		Timestamp: s.now(),
	}
}
