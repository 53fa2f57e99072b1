package notifications

import (
	"context"
	"testing"

	"github.com/grociko/grociko-backend/pkg/enums"
	pkgerrors "github.com/grociko/grociko-backend/pkg/errors"
)

func TestListFullFeed(t *testing.T) {
	t.Parallel()

	svc, err := NewService()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	feed, err := svc.List(context.Background(), ListParams{SessionToken: "s1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(feed) != 6 {
		t.Fatalf("expected 6 seeded notifications, got %d", len(feed))
	}
}

func TestListFilters(t *testing.T) {
	t.Parallel()

	svc, _ := NewService()

	orders, err := svc.List(context.Background(), ListParams{SessionToken: "s1", Type: enums.NotificationTypeOrder})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 order notifications, got %d", len(orders))
	}

	unread, err := svc.List(context.Background(), ListParams{SessionToken: "s1", UnreadOnly: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(unread) != 5 {
		t.Fatalf("expected 5 unread notifications, got %d", len(unread))
	}

	_, err = svc.List(context.Background(), ListParams{SessionToken: "s1", Type: "bogus"})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestMarkReadIsPerSession(t *testing.T) {
	t.Parallel()

	svc, _ := NewService()

	if err := svc.MarkRead(context.Background(), "s1", "n-001"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	unreadS1, _ := svc.List(context.Background(), ListParams{SessionToken: "s1", UnreadOnly: true})
	if len(unreadS1) != 4 {
		t.Fatalf("expected 4 unread for s1, got %d", len(unreadS1))
	}

	unreadS2, _ := svc.List(context.Background(), ListParams{SessionToken: "s2", UnreadOnly: true})
	if len(unreadS2) != 5 {
		t.Fatalf("read state leaked between sessions: %d", len(unreadS2))
	}

	if err := svc.MarkRead(context.Background(), "s1", "missing"); pkgerrors.As(err) == nil {
		t.Fatal("expected not-found error")
	}
}

func TestMarkAllRead(t *testing.T) {
	t.Parallel()

	svc, _ := NewService()

	marked, err := svc.MarkAllRead(context.Background(), "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if marked != 5 {
		t.Fatalf("expected 5 marked, got %d", marked)
	}

	again, _ := svc.MarkAllRead(context.Background(), "s1")
	if again != 0 {
		t.Fatalf("second pass should mark nothing, got %d", again)
	}
}
