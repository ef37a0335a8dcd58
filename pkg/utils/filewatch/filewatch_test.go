package filewatch_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopfab/shopfab/pkg/utils/filewatch"
)

func TestUntilModifyContext(t *testing.T) {
	t.Run("when a watched file is written, it cancels the context", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "config.yaml")
		if err := os.WriteFile(target, []byte("port: 8080\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		ctx, cancel, err := filewatch.UntilModifyContext(context.Background(), target)
		if err != nil {
			t.Fatal(err)
		}
		defer cancel()

		if err := os.WriteFile(target, []byte("port: 8081\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		select {
		case <-ctx.Done():
			// ok
		case <-time.After(3 * time.Second):
			t.Error("context is not canceled by file modification")
		}
	})

	t.Run("when the target does not exist, it returns error", func(t *testing.T) {
		dir := t.TempDir()
		_, _, err := filewatch.UntilModifyContext(
			context.Background(), filepath.Join(dir, "no-such-file"),
		)
		if err == nil {
			t.Error("error is expected, but not")
		}
	})
}
