package staff

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

// Service keeps the session's delivery staff profile current and hands every
// reload to the subscriber.
type Service struct {
	log        serviceLogger
	repository ProfileRepository
	subscriber Subscriber
	userID     string

	mu      sync.RWMutex
	profile *entities.DeliveryStaffProfile
}

func New(log serviceLogger, repository ProfileRepository, subscriber Subscriber, userID string) *Service {
	return &Service{
		log:        log.With(logger.NewField("user", userID)),
		repository: repository,
		subscriber: subscriber,
		userID:     userID,
	}
}

// Refresh reloads the profile. A missing profile ends the subscription; any
// other failure keeps the current one.
func (s *Service) Refresh(ctx context.Context) error {
	profile, err := s.repository.GetDeliveryProfile(ctx, s.userID)
	if err != nil {
		if !errors.Is(err, ErrProfileNotFound) {
			return fmt.Errorf("load delivery profile: %w", err)
		}
		s.log.Warn("delivery staff profile not found")
		profile = nil
	}

	s.mu.Lock()
	s.profile = profile
	s.mu.Unlock()

	s.subscriber.SetProfile(profile)
	return nil
}

func (s *Service) Profile() *entities.DeliveryStaffProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.profile
}
