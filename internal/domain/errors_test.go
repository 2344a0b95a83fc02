package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_ErrorString_NoCause(t *testing.T) {
	err := New(KindAuth, "invalid_credentials", "Invalid credentials")

	if err.Error() == "" {
		t.Fatal("expected non-empty error string")
	}
}

func TestError_ErrorString_WithCause(t *testing.T) {
	root := errors.New("root cause")
	err := Wrap(KindInternal, "hash_failed", "hash failed", root)

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}
}

func TestError_Unwrap(t *testing.T) {
	root := errors.New("root")
	err := Wrap(KindInternal, "internal_error", "internal", root)

	if errors.Unwrap(err) != root {
		t.Fatalf("unwrap did not return cause")
	}
}

func TestMissingField_NamesField(t *testing.T) {
	err := ErrMissingField("email")

	if err.Meta["field"] != "email" {
		t.Fatalf("unexpected meta value: %+v", err.Meta)
	}
	if err.Message != "email is required" {
		t.Fatalf("unexpected message: %q", err.Message)
	}
	if err.Kind != KindValidation {
		t.Fatalf("expected validation kind, got %s", err.Kind)
	}
}

func TestIs_MatchesCode(t *testing.T) {
	err := ErrInvalidCredentials()

	if !Is(err, "invalid_credentials") {
		t.Fatalf("expected code match")
	}
	if Is(err, "something_else") {
		t.Fatalf("unexpected code match")
	}
}

func TestIs_WrappedDomainError(t *testing.T) {
	err := fmt.Errorf("repo: %w", ErrLeadNotFound())

	if !Is(err, "lead_not_found") {
		t.Fatalf("expected wrapped code match")
	}
}

func TestIs_NonDomainError(t *testing.T) {
	if Is(errors.New("plain error"), "invalid_credentials") {
		t.Fatalf("should not match non-domain error")
	}
}

func TestKindOf(t *testing.T) {
	if KindOf(ErrTokenExpired()) != KindAuth {
		t.Fatalf("expected auth kind")
	}
	if KindOf(errors.New("x")) != KindInternal {
		t.Fatalf("expected internal kind for plain errors")
	}
}

func TestUploadErrors_AreValidation(t *testing.T) {
	for _, err := range []*Error{ErrFileMissing(), ErrInvalidEncoding(), ErrInsufficientRows(), ErrFileTooLarge(10)} {
		if err.Kind != KindValidation {
			t.Fatalf("%s: expected validation kind, got %s", err.Code, err.Kind)
		}
	}
}
