package logging

import (
	"log/slog"
	"testing"
)

func TestAttrsToMapFlattensGroups(t *testing.T) {
	got := attrsToMap([]slog.Attr{
		slog.Int("level", 30),
		slog.Group("band", slog.String("from", "critical"), slog.String("to", "moderate")),
		slog.Group("", slog.Int("inline", 1)),
		slog.Any("", "dropped"),
	})
	want := map[string]any{
		"level":     int64(30),
		"band.from": "critical",
		"band.to":   "moderate",
		"inline":    int64(1),
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d fields, got %v", len(want), got)
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("field %q: expected %v, got %v", k, v, got[k])
		}
	}
}

func TestAttrsToMapEmpty(t *testing.T) {
	if attrsToMap(nil) != nil {
		t.Fatalf("expected nil map for no attrs")
	}
	if attrsToMap([]slog.Attr{slog.Any("", 1)}) != nil {
		t.Fatalf("expected nil map when every attr is dropped")
	}
}
