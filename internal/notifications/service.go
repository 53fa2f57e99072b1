package notifications

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/grociko/grociko-backend/pkg/enums"
	pkgerrors "github.com/grociko/grociko-backend/pkg/errors"
)

// Notification is one feed entry. Read state is per session.
type Notification struct {
	ID        string                 `json:"id"`
	Type      enums.NotificationType `json:"type"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Read      bool                   `json:"read"`
	CreatedAt time.Time              `json:"created_at"`
}

// ListParams filters the feed.
type ListParams struct {
	SessionToken string
	Type         enums.NotificationType
	UnreadOnly   bool
}

// Service defines notification list/read operations.
type Service interface {
	List(ctx context.Context, params ListParams) ([]Notification, error)
	MarkRead(ctx context.Context, sessionToken, notificationID string) error
	MarkAllRead(ctx context.Context, sessionToken string) (int, error)
}

type service struct {
	mu        sync.Mutex
	seed      []Notification
	bySession map[string][]Notification
}

// NewService builds the in-memory feed seeded with the sample notifications.
func NewService() (Service, error) {
	return &service{
		seed:      sampleNotifications(),
		bySession: map[string][]Notification{},
	}, nil
}

func (s *service) List(ctx context.Context, params ListParams) ([]Notification, error) {
	if params.Type != "" && !params.Type.Valid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown notification type").
			WithDetails(map[string]any{"type": string(params.Type)})
	}

	feed, err := s.sessionFeed(params.SessionToken)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]Notification, 0, len(feed))
	for _, n := range feed {
		if params.Type != "" && n.Type != params.Type {
			continue
		}
		if params.UnreadOnly && n.Read {
			continue
		}
		result = append(result, n)
	}
	return result, nil
}

func (s *service) MarkRead(ctx context.Context, sessionToken, notificationID string) error {
	feed, err := s.sessionFeed(sessionToken)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range feed {
		if feed[i].ID == strings.TrimSpace(notificationID) {
			feed[i].Read = true
			return nil
		}
	}
	return pkgerrors.New(pkgerrors.CodeNotFound, "notification not found")
}

func (s *service) MarkAllRead(ctx context.Context, sessionToken string) (int, error) {
	feed, err := s.sessionFeed(sessionToken)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	marked := 0
	for i := range feed {
		if !feed[i].Read {
			feed[i].Read = true
			marked++
		}
	}
	return marked, nil
}

// sessionFeed clones the seed on first access so read state stays private to
// the session.
func (s *service) sessionFeed(sessionToken string) ([]Notification, error) {
	token := strings.TrimSpace(sessionToken)
	if token == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session token is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if feed, ok := s.bySession[token]; ok {
		return feed, nil
	}
	feed := make([]Notification, len(s.seed))
	copy(feed, s.seed)
	s.bySession[token] = feed
	return feed, nil
}
