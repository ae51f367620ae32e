package command

import (
	"reflect"
	"testing"

	"go.uber.org/zap"
)

type hostEvent struct {
	event string
	data  map[string]any
}

type fakeHost struct {
	events []hostEvent
}

func (f *fakeHost) Track(event string, data map[string]any) {
	f.events = append(f.events, hostEvent{event: event, data: data})
}

func TestConversionDataOnlyOnFirstLaunch(t *testing.T) {
	host := &fakeHost{}
	listener := NewConversionListener(host, zap.NewNop())

	listener.OnConversionDataSuccess(map[string]any{"is_first_launch": false, "media_source": "x"})
	if len(host.events) != 0 {
		t.Fatalf("expected repeat launch to be dropped, got %v", host.events)
	}

	data := map[string]any{"is_first_launch": true, "media_source": "x"}
	listener.OnConversionDataSuccess(data)
	if len(host.events) != 1 || host.events[0].event != "conversion_data_received" {
		t.Fatalf("unexpected events: %v", host.events)
	}
	if !reflect.DeepEqual(host.events[0].data, data) {
		t.Fatalf("expected conversion data to be forwarded, got %v", host.events[0].data)
	}
}

func TestConversionFailuresBecomeErrorEvents(t *testing.T) {
	host := &fakeHost{}
	listener := NewConversionListener(host, nil)

	listener.OnConversionDataFail("timeout")
	listener.OnAttributionFailure("bad link")

	want := []hostEvent{
		{event: "appsflyer_error", data: map[string]any{"error_name": "conversion_data_request_failure", "error_message": "timeout"}},
		{event: "appsflyer_error", data: map[string]any{"error_name": "app_open_attribution_failure", "error_message": "bad link"}},
	}
	if !reflect.DeepEqual(host.events, want) {
		t.Fatalf("unexpected events:\n got %v\nwant %v", host.events, want)
	}
}

func TestAppOpenAttribution(t *testing.T) {
	host := &fakeHost{}
	listener := NewConversionListener(host, zap.NewNop())

	listener.OnAppOpenAttribution(map[string]string{"link": "https://example.onelink.me/abc"})

	if len(host.events) != 1 || host.events[0].event != "app_open_attribution" {
		t.Fatalf("unexpected events: %v", host.events)
	}
	if host.events[0].data["link"] != "https://example.onelink.me/abc" {
		t.Fatalf("unexpected data: %v", host.events[0].data)
	}
}

func TestConversionListenerWithoutHost(t *testing.T) {
	listener := NewConversionListener(nil, zap.NewNop())
	listener.OnConversionDataFail("ignored")
}
