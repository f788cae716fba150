//go:build !nogpu

package gpu

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/gogpu/thickline"
)

func TestSloggerFollowsSetLogger(t *testing.T) {
	orig := thickline.Logger()
	t.Cleanup(func() { thickline.SetLogger(orig) })

	if slogger() == nil {
		t.Fatal("package logger not initialized")
	}

	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	thickline.SetLogger(custom)
	if slogger() != custom {
		t.Fatal("SetLogger did not reach internal/gpu")
	}
	slogger().Debug("line pipeline created")
	if !strings.Contains(buf.String(), "line pipeline created") {
		t.Errorf("log output = %q", buf.String())
	}

	thickline.SetLogger(nil)
	if l := slogger(); l == nil || l.Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should leave internal/gpu silent")
	}
}
