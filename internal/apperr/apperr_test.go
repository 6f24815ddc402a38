package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestKindOf(t *testing.T) {
	err := New(NotFound, "product not found")
	if KindOf(err) != NotFound {
		t.Errorf("expected NotFound, got %v", KindOf(err))
	}

	if KindOf(errors.New("plain")) != Unknown {
		t.Error("plain errors should map to Unknown")
	}

	// Kind survives wrapping with fmt.Errorf.
	wrapped := fmt.Errorf("handler: %w", err)
	if KindOf(wrapped) != NotFound {
		t.Error("kind should survive %w wrapping")
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(Storage, "failed to fetch product", cause)

	if !errors.Is(err, cause) {
		t.Error("wrapped cause should be reachable via errors.Is")
	}
	if err.Error() != "failed to fetch product" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		kind   Kind
		status int
	}{
		{Validation, http.StatusBadRequest},
		{InsufficientStock, http.StatusBadRequest},
		{Auth, http.StatusUnauthorized},
		{NotFound, http.StatusNotFound},
		{Conflict, http.StatusConflict},
		{Storage, http.StatusInternalServerError},
	}
	for _, tc := range tests {
		if got := HTTPStatus(New(tc.kind, "x")); got != tc.status {
			t.Errorf("kind %v: expected %d, got %d", tc.kind, tc.status, got)
		}
	}
	if HTTPStatus(errors.New("plain")) != http.StatusInternalServerError {
		t.Error("unclassified errors should map to 500")
	}
}

func TestMessage_MasksInternals(t *testing.T) {
	err := Wrap(Storage, "failed to fetch product: dsn=postgres://admin:hunter2@db", errors.New("boom"))
	if Message(err) != "internal server error" {
		t.Errorf("storage details must not leak, got %q", Message(err))
	}

	err = Newf(InsufficientStock, "insufficient stock: current quantity is %d, cannot remove %d", 2, 10)
	if Message(err) != "insufficient stock: current quantity is 2, cannot remove 10" {
		t.Errorf("client-safe messages should pass through, got %q", Message(err))
	}
}
