package slot

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"dispatch/internal/entities"
)

// RecomputeInterval is how often slot windows are reloaded and re-evaluated.
const RecomputeInterval = 60 * time.Second

// Service caches the ordering windows of active slots between recomputes.
type Service struct {
	repository Repository
	calculator Calculator
	clock      Clock

	mu         sync.RWMutex
	windows    []entities.SlotWindow
	computedAt time.Time
}

func New(repository Repository, calculator Calculator, clock Clock) *Service {
	return &Service{
		repository: repository,
		calculator: calculator,
		clock:      clock,
	}
}

// Refresh reloads active slots and evaluates their windows. On failure the
// previous windows stay in place.
func (s *Service) Refresh(ctx context.Context) error {
	slots, err := s.repository.ListActiveSlots(ctx)
	if err != nil {
		return fmt.Errorf("list active slots: %w", err)
	}

	now := s.clock.Now()
	windows := make([]entities.SlotWindow, 0, len(slots))
	for _, slot := range slots {
		windows = append(windows, entities.SlotWindow{
			Slot:  slot,
			State: s.calculator.ComputeWindow(slot, now),
		})
	}

	s.mu.Lock()
	s.windows = windows
	s.computedAt = now
	s.mu.Unlock()

	return nil
}

// Windows returns the windows of the last successful Refresh and when they were computed.
func (s *Service) Windows() ([]entities.SlotWindow, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.windows), s.computedAt
}
