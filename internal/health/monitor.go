// Package health probes the backend liveness endpoint.
package health

import (
	"context"
	"log"
)

type Status int

const (
	Unknown Status = iota
	Healthy
	Unhealthy
)

func (s Status) String() string {
	switch s {
	case Healthy:
		return "healthy"
	case Unhealthy:
		return "unhealthy"
	default:
		return "unknown"
	}
}

// Prober is the part of the API client the monitor needs.
type Prober interface {
	Health(ctx context.Context) (any, error)
}

type Monitor struct {
	probe  Prober
	logger *log.Logger
}

func NewMonitor(p Prober, logger *log.Logger) *Monitor {
	if logger == nil {
		logger = log.Default()
	}
	return &Monitor{probe: p, logger: logger}
}

// Check runs one probe. Failures are logged and folded into Unhealthy; it
// never returns an error.
func (m *Monitor) Check(ctx context.Context) Status {
	payload, err := m.probe.Health(ctx)
	if err != nil {
		m.logger.Printf("backend health check failed: %v", err)
		return Unhealthy
	}
	m.logger.Printf("backend is healthy: %v", payload)
	return Healthy
}
