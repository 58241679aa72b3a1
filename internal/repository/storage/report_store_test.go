package storage

import (
	"context"
	"os"
	"strings"
	"testing"
)

func TestLocalReportStore_Store(t *testing.T) {
	store, err := NewLocalReportStore(t.TempDir())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	path, err := store.Store(context.Background(), "schedule.xlsx", strings.NewReader("workbook-bytes"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read stored report: %v", err)
	}
	if string(data) != "workbook-bytes" {
		t.Errorf("Expected stored bytes to round-trip, got %q", string(data))
	}
	if !strings.HasSuffix(path, "_schedule.xlsx") {
		t.Errorf("Expected key to keep the report filename, got %s", path)
	}
}

func TestLocalReportStore_UniqueKeys(t *testing.T) {
	store, err := NewLocalReportStore(t.TempDir())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	first, err := store.Store(context.Background(), "schedule.xlsx", strings.NewReader("a"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	second, err := store.Store(context.Background(), "schedule.xlsx", strings.NewReader("b"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if first == second {
		t.Errorf("Expected distinct object keys for repeated filenames, got %s twice", first)
	}
}

func TestNewLocalReportStore_CreatesDirectory(t *testing.T) {
	dir := t.TempDir() + "/nested/reports"
	if _, err := NewLocalReportStore(dir); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("Expected report directory to exist: %v", err)
	}
	if !info.IsDir() {
		t.Error("Expected a directory")
	}
}

func TestGenerateObjectKey_Unique(t *testing.T) {
	a := GenerateObjectKey("schedule.xlsx")
	b := GenerateObjectKey("schedule.xlsx")
	if a == b {
		t.Errorf("Expected unique keys, got %s twice", a)
	}
}
