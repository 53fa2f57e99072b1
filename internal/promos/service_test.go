package promos

import (
	"context"
	"testing"

	pkgerrors "github.com/grociko/grociko-backend/pkg/errors"
)

func TestResolveKnownCodes(t *testing.T) {
	t.Parallel()

	svc, err := NewService()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := map[string]int{
		"SAVE10":    10,
		"welcome20": 20,
		" fresh15 ": 15,
	}
	for input, want := range cases {
		code, pct, err := svc.Resolve(context.Background(), input)
		if err != nil {
			t.Fatalf("resolve %q: %v", input, err)
		}
		if pct != want {
			t.Fatalf("resolve %q: got %d, want %d", input, pct, want)
		}
		if code != "SAVE10" && code != "WELCOME20" && code != "FRESH15" {
			t.Fatalf("resolve %q: non-canonical code %q", input, code)
		}
	}
}

func TestResolveUnknownCode(t *testing.T) {
	t.Parallel()

	svc, _ := NewService()

	_, _, err := svc.Resolve(context.Background(), "NOPE99")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found, got %v", err)
	}

	_, _, err = svc.Resolve(context.Background(), "   ")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestNewServiceRejectsBadTable(t *testing.T) {
	t.Parallel()

	if _, err := newServiceWith(map[string]int{"OVER": 120}); pkgerrors.As(err) == nil {
		t.Fatal("expected validation error for out-of-range percentage")
	}
	if _, err := newServiceWith(map[string]int{"  ": 10}); pkgerrors.As(err) == nil {
		t.Fatal("expected validation error for blank code")
	}
}
