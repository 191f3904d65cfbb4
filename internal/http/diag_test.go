package handlers_test

import (
	"net/http"
	"testing"
)

func TestDiagErrorCodes(t *testing.T) {
	app := newTestApp(t)

	code, body := doJSON(t, app, "GET", "/api/test/error/404", nil)
	if code != http.StatusNotFound || body["error"] != "Not Found - Resource does not exist" {
		t.Fatalf("bad 404 echo: %d %+v", code, body)
	}
	if body["code"] != float64(404) {
		t.Fatalf("code not echoed: %+v", body)
	}

	code, body = doJSON(t, app, "GET", "/api/test/error/418", nil)
	if code != 418 || body["error"] != "Unknown error" {
		t.Fatalf("bad unknown code: %d %+v", code, body)
	}

	if code, _ = doJSON(t, app, "GET", "/api/test/error/999", nil); code != http.StatusBadRequest {
		t.Fatalf("out-of-range code accepted: %d", code)
	}
}

func TestDiagEcho(t *testing.T) {
	app := newTestApp(t)

	code, body := doJSON(t, app, "POST", "/api/test/echo", map[string]any{"a": 1, "nested": map[string]any{"b": true}})
	if code != http.StatusOK || body["method"] != "POST" {
		t.Fatalf("bad echo: %d %+v", code, body)
	}
	received := body["received"].(map[string]any)
	if received["a"] != float64(1) || received["nested"].(map[string]any)["b"] != true {
		t.Fatalf("body not echoed: %+v", received)
	}
	headers := body["headers"].(map[string]any)
	if _, ok := headers["Content-Type"]; !ok {
		t.Fatalf("headers not echoed: %+v", headers)
	}
}

func TestDiagRandom(t *testing.T) {
	app := newTestApp(t)

	code, body := doJSON(t, app, "GET", "/api/test/random", nil)
	if code != http.StatusOK || body["type"] != "number" {
		t.Fatalf("bad default: %d %+v", code, body)
	}
	if _, ok := body["result"].(float64); !ok {
		t.Fatalf("want numeric result: %+v", body)
	}

	_, body = doJSON(t, app, "GET", "/api/test/random?type=string", nil)
	if s, ok := body["result"].(string); !ok || s == "" {
		t.Fatalf("want string result: %+v", body)
	}

	_, body = doJSON(t, app, "GET", "/api/test/random?type=array", nil)
	if arr, ok := body["result"].([]any); !ok || len(arr) != 5 {
		t.Fatalf("want 5-element array: %+v", body)
	}

	_, body = doJSON(t, app, "GET", "/api/test/random?type=object", nil)
	obj, ok := body["result"].(map[string]any)
	if !ok || obj["name"] == nil {
		t.Fatalf("want object result: %+v", body)
	}
}

func TestDiagLargeData(t *testing.T) {
	app := newTestApp(t)

	code, body := doJSON(t, app, "GET", "/api/test/large-data?count=9", nil)
	if code != http.StatusOK || body["count"] != float64(9) {
		t.Fatalf("bad count: %d %+v", code, body)
	}
	data := body["data"].([]any)
	if len(data) != 9 {
		t.Fatalf("want 9 items, got %d", len(data))
	}
	first := data[0].(map[string]any)
	if first["id"] != float64(1) || first["name"] != "Item 1" {
		t.Fatalf("bad item: %+v", first)
	}
	meta := first["metadata"].(map[string]any)
	if meta["category"] != "A" || meta["priority"] != "low" {
		t.Fatalf("bad metadata cycle: %+v", meta)
	}
}

func TestDiagSlow(t *testing.T) {
	app := newTestApp(t)

	code, body := doJSON(t, app, "GET", "/api/test/slow?delay=100", nil)
	if code != http.StatusOK || body["message"] != "Response after 100ms delay" {
		t.Fatalf("bad slow response: %d %+v", code, body)
	}
}
