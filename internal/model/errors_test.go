package model

import (
	"fmt"
	"strings"
	"testing"
)

func TestErrorConstructors_Kinds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		kind ErrorKind
	}{
		{"validation", NewValidationError(nil), KindValidation},
		{"conflict", NewConflictError("duplicate"), KindConflict},
		{"not found", NewNotFoundError("book"), KindNotFound},
		{"invalid state", NewInvalidStateError("already returned"), KindInvalidState},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if !IsKind(tc.err, tc.kind) {
				t.Errorf("expected kind %v, got %v", tc.kind, KindOf(tc.err))
			}
		})
	}
}

func TestNewValidationError_DetailSummarizesFields(t *testing.T) {
	t.Parallel()

	err := NewValidationError([]FieldError{
		{Field: "isbn", Message: "ISBN cannot be empty"},
		{Field: "title", Message: "title cannot be empty"},
		{Field: "author", Message: "author cannot be empty"},
	})

	msg := err.Error()
	if !strings.Contains(msg, "isbn") {
		t.Errorf("expected first field in message, got %q", msg)
	}
	if !strings.Contains(msg, "2 more errors") {
		t.Errorf("expected remaining-error count in message, got %q", msg)
	}
}

func TestNewNotFoundError_Message(t *testing.T) {
	t.Parallel()

	err := NewNotFoundError("book with ISBN 978-1")
	if got := err.Error(); got != "not found: book with ISBN 978-1 not found" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestKindOf_WrappedError(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("checkout failed: %w", NewInvalidStateError("book unavailable"))
	if !IsKind(wrapped, KindInvalidState) {
		t.Errorf("expected wrapped error to keep its kind, got %v", KindOf(wrapped))
	}
}

func TestKindOf_ForeignError(t *testing.T) {
	t.Parallel()

	if kind := KindOf(fmt.Errorf("plain error")); kind != 0 {
		t.Errorf("expected zero kind for foreign error, got %v", kind)
	}
	if IsKind(nil, KindNotFound) {
		t.Error("nil must not match any kind")
	}
}
