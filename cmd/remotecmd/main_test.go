package main

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/kapu/appsflyer-remote-command-go/internal/app"
)

type countingInvoker struct {
	calls atomic.Int32
}

func (c *countingInvoker) InvokeJSON([]byte) error {
	c.calls.Add(1)
	return nil
}

func TestOpenSourcesDefaultsToStdin(t *testing.T) {
	sources, closeAll, err := openSources(nil, false)
	if err != nil {
		t.Fatalf("openSources returned error: %v", err)
	}
	defer closeAll()

	if len(sources) != 1 || sources[0].Name != "stdin" {
		t.Fatalf("expected stdin source, got %+v", sources)
	}
}

func TestOpenSourcesListenWithoutArgs(t *testing.T) {
	sources, closeAll, err := openSources(nil, true)
	if err != nil {
		t.Fatalf("openSources returned error: %v", err)
	}
	defer closeAll()

	if len(sources) != 0 {
		t.Fatalf("expected no sources in listen mode, got %d", len(sources))
	}
}

func TestOpenSourcesOpensFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payloads.json")
	if err := os.WriteFile(path, []byte(`{"command_name":"log_session"}`), 0o600); err != nil {
		t.Fatalf("failed to write payload file: %v", err)
	}

	sources, closeAll, err := openSources([]string{path, "-"}, false)
	if err != nil {
		t.Fatalf("openSources returned error: %v", err)
	}
	defer closeAll()

	if len(sources) != 2 || sources[0].Name != path || sources[1].Name != "stdin" {
		t.Fatalf("unexpected sources: %+v", sources)
	}
}

func TestOpenSourcesMissingFile(t *testing.T) {
	if _, _, err := openSources([]string{filepath.Join(t.TempDir(), "missing.json")}, false); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestRunSourcesProcessesPayloads(t *testing.T) {
	invoker := &countingInvoker{}
	runner := app.NewRunner(invoker, 1, nil)

	err := runSources(context.Background(), runner, []app.Source{
		{Name: "inline", Reader: strings.NewReader(`{"command_name":"launch"} {"command_name":"logsession"}`)},
	})
	if err != nil {
		t.Fatalf("runSources returned error: %v", err)
	}
	if got := invoker.calls.Load(); got != 2 {
		t.Fatalf("expected 2 payloads, got %d", got)
	}
}

func TestRunSourcesStopsOnCancelDuringBlockedRead(t *testing.T) {
	reader, writer := io.Pipe()
	defer writer.Close()

	runner := app.NewRunner(&countingInvoker{}, 1, nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- runSources(ctx, runner, []app.Source{{Name: "stdin", Reader: reader}})
	}()

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("runSources did not return after cancellation")
	}
}
