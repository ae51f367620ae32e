package app

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/kapu/appsflyer-remote-command-go/internal/bridge"
	"github.com/kapu/appsflyer-remote-command-go/internal/config"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"
)

func newTestConfig(t *testing.T, mr *miniredis.Miniredis) *config.Config {
	t.Helper()

	port, err := strconv.Atoi(mr.Port())
	if err != nil {
		t.Fatalf("invalid miniredis port: %v", err)
	}
	return &config.Config{
		Command: config.CommandConfig{ID: "appsflyer", Description: "test"},
		AppsFlyer: config.AppsFlyerConfig{
			DevKey: "fallback-key",
		},
		Redis: config.RedisConfig{Host: mr.Host(), Port: port},
		Bridge: config.BridgeConfig{
			OperationsQueue:     "af:operations",
			CallbacksQueue:      "af:callbacks",
			HostEventsQueue:     "af:host_events",
			CommandsQueue:       "af:commands",
			PublishTimeout:      time.Second,
			PollTimeout:         time.Second,
			BreakerThreshold:    5,
			BreakerResetTimeout: time.Second,
		},
		Worker: config.WorkerConfig{Concurrency: 2},
	}
}

func popOperation(t *testing.T, mr *miniredis.Miniredis, queue string) bridge.Operation {
	t.Helper()

	raw, err := mr.Lpop(queue)
	if err != nil {
		t.Fatalf("failed to pop from %s: %v", queue, err)
	}
	var op bridge.Operation
	if err := msgpack.Unmarshal([]byte(raw), &op); err != nil {
		t.Fatalf("failed to decode operation: %v", err)
	}
	return op
}

func TestBuildFailsWithoutRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := newTestConfig(t, mr)
	mr.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := Build(ctx, cfg, zap.NewNop()); err == nil {
		t.Fatalf("expected build to fail when redis is unreachable")
	}
}

func TestBuildRejectsMissingDependencies(t *testing.T) {
	if _, err := Build(context.Background(), nil, zap.NewNop()); err == nil {
		t.Fatalf("expected error for nil config")
	}
	mr := miniredis.RunT(t)
	if _, err := Build(context.Background(), newTestConfig(t, mr), nil); err == nil {
		t.Fatalf("expected error for nil logger")
	}
}

func TestContainerForwardsSourcesToOperationsQueue(t *testing.T) {
	mr := miniredis.RunT(t)
	container, err := Build(context.Background(), newTestConfig(t, mr), zap.NewNop())
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	defer container.Close()

	if container.RemoteCommand.ID() != "appsflyer" {
		t.Fatalf("unexpected command id: %q", container.RemoteCommand.ID())
	}

	runner, err := container.NewRunner()
	if err != nil {
		t.Fatalf("NewRunner returned error: %v", err)
	}

	input := `{"command_name":"initialize","settings":{"debug":true}}
{"command_name":"af_purchase","event":{"af_revenue":"9.99"}}`
	stats, err := runner.RunSources(context.Background(), Source{Name: "test", Reader: strings.NewReader(input)})
	if err != nil {
		t.Fatalf("RunSources returned error: %v", err)
	}
	if stats.Processed != 2 || stats.Failed != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	if op := popOperation(t, mr, "af:operations"); op.Operation != "set_debug_log" {
		t.Fatalf("expected set_debug_log first, got %q", op.Operation)
	}
	initOp := popOperation(t, mr, "af:operations")
	if initOp.Operation != "initialize" || initOp.Args["dev_key"] != "fallback-key" {
		t.Fatalf("unexpected initialize operation: %+v", initOp)
	}
	event := popOperation(t, mr, "af:operations")
	if event.Operation != "track_event" || event.Args["event_type"] != "af_purchase" {
		t.Fatalf("unexpected event operation: %+v", event)
	}
}

func TestContainerListensOnCommandAndCallbackQueues(t *testing.T) {
	mr := miniredis.RunT(t)
	container, err := Build(context.Background(), newTestConfig(t, mr), zap.NewNop())
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	defer container.Close()

	runner, err := container.NewRunner()
	if err != nil {
		t.Fatalf("NewRunner returned error: %v", err)
	}

	callback, err := msgpack.Marshal(&bridge.Callback{Type: bridge.CallbackAttributionFailure, Message: "timeout"})
	if err != nil {
		t.Fatalf("failed to encode callback: %v", err)
	}
	if _, err := mr.Push("af:callbacks", string(callback)); err != nil {
		t.Fatalf("failed to seed callbacks: %v", err)
	}
	if _, err := mr.Push("af:commands", `{"command_name":"log_session"}`); err != nil {
		t.Fatalf("failed to seed commands: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- runner.Listen(ctx)
	}()

	deadline := time.Now().Add(5 * time.Second)
	for {
		ops, _ := mr.List("af:operations")
		events, _ := mr.List("af:host_events")
		if len(ops) == 1 && len(events) == 1 {
			break
		}
		if time.Now().After(deadline) {
			cancel()
			t.Fatalf("queues not drained: operations=%d host_events=%d", len(ops), len(events))
		}
		time.Sleep(10 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Listen returned error: %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatalf("Listen did not stop after cancellation")
	}

	if op := popOperation(t, mr, "af:operations"); op.Operation != "log_session" {
		t.Fatalf("unexpected operation: %q", op.Operation)
	}

	raw, err := mr.Lpop("af:host_events")
	if err != nil {
		t.Fatalf("failed to pop host event: %v", err)
	}
	var event bridge.HostEvent
	if err := msgpack.Unmarshal([]byte(raw), &event); err != nil {
		t.Fatalf("failed to decode host event: %v", err)
	}
	if event.Event != "appsflyer_error" || event.Data["error_message"] != "timeout" {
		t.Fatalf("unexpected host event: %+v", event)
	}
}
