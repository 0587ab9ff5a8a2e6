package apperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundMessageAndDetection(t *testing.T) {
	err := NotFound("Doctor", 42)
	if err.Error() != "Doctor not found with id: 42" {
		t.Errorf("unexpected message: %q", err.Error())
	}
	if !IsNotFound(err) {
		t.Error("IsNotFound should detect a NotFoundError")
	}
	if IsConflict(err) || IsInvalidInput(err) || IsStorage(err) {
		t.Error("NotFoundError misclassified")
	}
}

func TestWrappedErrorsAreStillDetected(t *testing.T) {
	err := fmt.Errorf("while booking: %w", Conflict("slot taken"))
	if !IsConflict(err) {
		t.Error("IsConflict should see through fmt.Errorf wrapping")
	}

	storageErr := Storage(errors.New("connection reset"))
	wrapped := fmt.Errorf("upload failed: %w", storageErr)
	if !IsStorage(wrapped) {
		t.Error("IsStorage should see through fmt.Errorf wrapping")
	}
	if !errors.Is(wrapped, storageErr) {
		t.Error("wrapped storage error should match with errors.Is")
	}
}

func TestInvalidInputFormatting(t *testing.T) {
	err := InvalidInput("available_beds (%d) must not exceed total_beds (%d)", 12, 10)
	if !IsInvalidInput(err) {
		t.Error("IsInvalidInput should detect an InvalidInputError")
	}
	want := "available_beds (12) must not exceed total_beds (10)"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}
