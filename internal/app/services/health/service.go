// Package health reports process liveness.
package health

import (
	"runtime"
	"time"
)

// Status is the body of the root health check.
type Status struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
}

// Details extends Status with runtime statistics for operators.
type Details struct {
	Status
	UptimeSeconds  float64 `json:"uptimeSeconds"`
	Goroutines     int     `json:"goroutines"`
	HeapAllocBytes uint64  `json:"heapAllocBytes"`
}

// Service answers health probes. It has no dependencies on purpose: the
// health check must succeed even when the store or upstream is down.
type Service struct {
	startedAt time.Time
	message   string
}

// NewService constructs a health service.
func NewService(message string) *Service {
	if message == "" {
		message = "items API is running"
	}
	return &Service{startedAt: time.Now(), message: message}
}

// Check returns the basic health response.
func (s *Service) Check() Status {
	return Status{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Message:   s.message,
	}
}

// CheckDetailed returns health plus process runtime statistics.
func (s *Service) CheckDetailed() Details {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return Details{
		Status:         s.Check(),
		UptimeSeconds:  time.Since(s.startedAt).Seconds(),
		Goroutines:     runtime.NumGoroutine(),
		HeapAllocBytes: mem.HeapAlloc,
	}
}
