package audit

import (
	"context"
	"time"

	"github.com/avoronov/newshub/internal/common"
)

// Service records and lists login events.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Record appends a login event for the given identity. An empty ip defaults
// to the loopback sentinel, since no real client address may be observable.
func (s *Service) Record(ctx context.Context, userID, email, ip string) error {
	if ip == "" {
		ip = common.DefaultLoginIP
	}

	rec := &LoginRecord{
		UserID:    userID,
		Email:     email,
		Timestamp: time.Now().UTC(),
		IPAddress: ip,
	}

	return s.repo.Append(ctx, rec)
}

// List returns the full history in append order.
func (s *Service) List(ctx context.Context) ([]LoginRecord, error) {
	return s.repo.List(ctx)
}
