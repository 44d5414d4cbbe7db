package inventory

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
)

func TestErrorTypeString(t *testing.T) {
	tests := []struct {
		et   ErrorType
		want string
	}{
		{ErrTypeSourceNotFound, "Source Not Found"},
		{ErrTypeSourceUnreadable, "Source Unreadable"},
		{ErrorType(42), "ErrorType(42)"},
	}

	for _, tt := range tests {
		if got := tt.et.String(); got != tt.want {
			t.Errorf("ErrorType(%d).String() = %q, want %q", int(tt.et), got, tt.want)
		}
	}
}

func TestLoadError_Unwrap(t *testing.T) {
	err := &LoadError{Type: ErrTypeSourceNotFound, Path: "devices.csv", Err: fs.ErrNotExist}

	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("errors.Is should see the wrapped fs.ErrNotExist")
	}

	wrapped := fmt.Errorf("startup: %w", err)
	if !IsSourceNotFound(wrapped) {
		t.Error("IsSourceNotFound should look through wrapping")
	}
}

func TestLoadError_Message(t *testing.T) {
	err := &LoadError{Type: ErrTypeSourceUnreadable, Path: "devices.csv", Err: errors.New("permission denied")}

	msg := err.Error()
	if !strings.Contains(msg, "devices.csv") || !strings.Contains(msg, "permission denied") {
		t.Errorf("Error() = %q", msg)
	}
}

func TestIsHelpers_OtherErrors(t *testing.T) {
	err := errors.New("boom")
	if IsSourceNotFound(err) || IsSourceUnreadable(err) {
		t.Error("plain errors should not be classified as load errors")
	}
	if IsSourceNotFound(nil) {
		t.Error("nil should not be classified")
	}
}
