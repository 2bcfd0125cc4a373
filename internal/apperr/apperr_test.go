package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindPredicates(t *testing.T) {
	v := Validationf("title is required")
	n := NotFoundf("task %s not found", "t1")
	p := Persistencef(errors.New("disk full"), "save task")

	if !IsValidation(v) || IsNotFound(v) || IsPersistence(v) {
		t.Errorf("validation error misclassified")
	}
	if !IsNotFound(n) || IsValidation(n) {
		t.Errorf("not-found error misclassified")
	}
	if !IsPersistence(p) || IsNotFound(p) {
		t.Errorf("persistence error misclassified")
	}
}

func TestPredicatesSeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("complete task: %w", NotFoundf("task t1 not found"))
	if !IsNotFound(wrapped) {
		t.Error("predicate must see through fmt.Errorf wrapping")
	}
}

func TestPersistenceUnwraps(t *testing.T) {
	cause := errors.New("connection reset")
	err := Persistencef(cause, "list tasks")

	if !errors.Is(err, cause) {
		t.Error("persistence error must unwrap to its cause")
	}
	if got := err.Error(); got != "list tasks: connection reset" {
		t.Errorf("unexpected message: %q", got)
	}
}

func TestPlainErrorsMatchNoKind(t *testing.T) {
	err := errors.New("something else")
	if IsValidation(err) || IsNotFound(err) || IsPersistence(err) {
		t.Error("plain errors must not match any kind")
	}
}
