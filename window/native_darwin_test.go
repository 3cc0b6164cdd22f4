//go:build cgo && darwin

package window

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/gogpu/gpuboot/internal/logging"
)

func TestNativeHandlesDarwinWarns(t *testing.T) {
	orig := logging.Get()
	t.Cleanup(func() { logging.Set(orig) })

	var buf bytes.Buffer
	logging.Set(slog.New(slog.NewTextHandler(&buf, nil)))

	if d, w := nativeHandles(nil); d != 0 || w != 0 {
		t.Errorf("nativeHandles() = %d, %d, want zero", d, w)
	}
	if !strings.Contains(buf.String(), "CAMetalLayer") {
		t.Errorf("missing warning naming the reason:\n%s", buf.String())
	}
	if err := checkSession(); err != nil {
		t.Errorf("checkSession() = %v, want nil", err)
	}
}
