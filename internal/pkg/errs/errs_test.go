package errs

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorStringIncludesKindAndCause(t *testing.T) {
	err := Storage("write failed", errors.New("connection refused"))
	want := "storage_error: write failed: connection refused"
	if err.Error() != want {
		t.Fatalf("error string: want=%q got=%q", want, err.Error())
	}

	bare := DataCollection("no sources", nil)
	if bare.Error() != "data_collection_error: no sources" {
		t.Fatalf("error string without cause: got=%q", bare.Error())
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := Analysis("scoring failed", cause)
	if !errors.Is(err, cause) {
		t.Fatal("wrapped cause must survive errors.Is")
	}
}

func TestKindOf(t *testing.T) {
	if got := KindOf(Configuration("missing file", nil)); got != KindConfiguration {
		t.Fatalf("kind: want=%s got=%s", KindConfiguration, got)
	}

	wrapped := fmt.Errorf("outer: %w", Storage("inner", nil))
	if got := KindOf(wrapped); got != KindStorage {
		t.Fatalf("kind through wrapping: want=%s got=%s", KindStorage, got)
	}

	if got := KindOf(errors.New("plain")); got != "" {
		t.Fatalf("plain error kind: want empty got=%s", got)
	}
}
