package errors_test

import (
	"errors"
	"strings"
	"testing"

	xerrors "github.com/shopfab/shopfab/pkg/errors"
)

func TestWrap(t *testing.T) {
	t.Run("when it wraps an error, the wrapped one unwraps to the original", func(t *testing.T) {
		base := errors.New("root cause")
		wrapped := xerrors.Wrap(base)

		if !errors.Is(wrapped, base) {
			t.Errorf("wrapped error does not unwrap to the base one: %+v", wrapped)
		}
	})

	t.Run("when it wraps an error, the message contains the caller and the cause", func(t *testing.T) {
		base := errors.New("root cause")
		wrapped := xerrors.Wrap(base)

		msg := wrapped.Error()
		if !strings.Contains(msg, "root cause") {
			t.Errorf("message does not contain the cause: %s", msg)
		}
		if !strings.Contains(msg, "errors_test.go") {
			t.Errorf("message does not contain the caller file: %s", msg)
		}
	})
}

func TestWrapWithNote(t *testing.T) {
	t.Run("when it wraps with a note, the message contains the note", func(t *testing.T) {
		base := errors.New("root cause")
		wrapped := xerrors.WrapWithNote("while testing", base)

		if msg := wrapped.Error(); !strings.Contains(msg, "while testing") {
			t.Errorf("message does not contain the note: %s", msg)
		}
	})
}
