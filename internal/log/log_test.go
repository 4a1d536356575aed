package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestAppendCtx(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})

	ctx := AppendCtx(context.Background(), slog.String("log_id", "abc"))
	ctx = AppendCtx(ctx, slog.String("recipe_id", "r1"))
	logger.InfoContext(ctx, "hello")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("failed to decode log record: %v", err)
	}
	if record["log_id"] != "abc" {
		t.Errorf("log_id = %v, want %q", record["log_id"], "abc")
	}
	if record["recipe_id"] != "r1" {
		t.Errorf("recipe_id = %v, want %q", record["recipe_id"], "r1")
	}
}

func TestAppendCtx_SiblingsDoNotShareAttrs(t *testing.T) {
	base := AppendCtx(context.Background(), slog.String("a", "1"))
	left := AppendCtx(base, slog.String("b", "2"))
	right := AppendCtx(base, slog.String("c", "3"))

	leftAttrs := left.Value(slogFields).([]slog.Attr)
	rightAttrs := right.Value(slogFields).([]slog.Attr)

	if len(leftAttrs) != 2 || leftAttrs[1].Key != "b" {
		t.Errorf("left attrs = %v", leftAttrs)
	}
	if len(rightAttrs) != 2 || rightAttrs[1].Key != "c" {
		t.Errorf("right attrs = %v", rightAttrs)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "", want: slog.LevelDebug},
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
