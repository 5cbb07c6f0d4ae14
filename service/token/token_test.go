package token

import (
	"errors"
	"testing"
	"time"

	"github.com/pandodao/safe-ledger/core"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	svc := New([]byte("super-secret"))
	userID := "user-123"

	tok, err := svc.Issue(userID, time.Hour)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	gotUserID, err := svc.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if gotUserID != userID {
		t.Fatalf("userID mismatch: got %q want %q", gotUserID, userID)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	svc := New([]byte("secret"))

	tok, err := svc.Issue("u1", -1*time.Second)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = svc.Verify(tok)
	if !errors.Is(err, core.ErrTokenExpired) {
		t.Fatalf("expected core.ErrTokenExpired, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := New([]byte("right-secret")).Issue("u2", time.Hour)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = New([]byte("wrong-secret")).Verify(tok)
	if !errors.Is(err, core.ErrTokenInvalid) {
		t.Fatalf("expected core.ErrTokenInvalid, got %v", err)
	}
}

func TestVerify_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := New([]byte("k")).Verify("not.a.jwt")
	if !errors.Is(err, core.ErrTokenInvalid) {
		t.Fatalf("expected core.ErrTokenInvalid, got %v", err)
	}
}

func TestVerify_Empty(t *testing.T) {
	t.Parallel()

	_, err := New([]byte("k")).Verify("")
	if !errors.Is(err, core.ErrTokenInvalid) {
		t.Fatalf("expected core.ErrTokenInvalid, got %v", err)
	}
}
