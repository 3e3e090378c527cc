package usecase

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/aalvaropc/rectcalc/internal/domain"
)

func TestMeasureRectangle_Demo(t *testing.T) {
	uc := NewMeasureRectangle()
	m, err := uc.Execute(context.Background(), 7.00, 8.00)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := domain.Measurement{Length: 7, Width: 8, Area: 56, Perimeter: 30}
	if m != want {
		t.Fatalf("got %+v, want %+v", m, want)
	}
}

func TestMeasureRectangle_NoValidation(t *testing.T) {
	uc := NewMeasureRectangle()

	m, err := uc.Execute(context.Background(), -2, 3)
	if err != nil {
		t.Fatalf("expected negative dimensions to be accepted, got %v", err)
	}
	if m.Area != -6 || m.Perimeter != 2 {
		t.Fatalf("expected -6/2, got %v/%v", m.Area, m.Perimeter)
	}

	m, err = uc.Execute(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Area != 0 || m.Perimeter != 0 {
		t.Fatalf("expected 0/0, got %v/%v", m.Area, m.Perimeter)
	}
}

func TestMeasureRectangle_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMeasureRectangle().Execute(ctx, 7, 8)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestMeasureRectangle_WithLogger(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	uc := NewMeasureRectangle(WithLogger(l))
	if _, err := uc.Execute(context.Background(), 7, 8); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "measure.completed") {
		t.Fatalf("expected measure.completed event, got %q", out)
	}
	if !strings.Contains(out, `"area":"56.0"`) {
		t.Fatalf("expected formatted area in log, got %q", out)
	}
}

func TestWithLogger_NilKeepsDefault(t *testing.T) {
	uc := NewMeasureRectangle(WithLogger(nil))
	if uc.log == nil {
		t.Fatal("expected default logger to be kept")
	}
}
