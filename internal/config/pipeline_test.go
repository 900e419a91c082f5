package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoadPipeline_MissingFileUsesDefaults(t *testing.T) {
	got, err := LoadPipeline(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadPipeline failed: %v", err)
	}
	if diff := cmp.Diff(DefaultPipeline(), got); diff != "" {
		t.Errorf("pipeline mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadPipeline_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	body := "max_cards: 25\nsummary_per_section: 2\npage_timeout: 3s\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadPipeline(path)
	if err != nil {
		t.Fatalf("LoadPipeline failed: %v", err)
	}
	want := DefaultPipeline()
	want.MaxCards = 25
	want.SummaryPerSection = 2
	want.PageTimeout = 3 * time.Second
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("pipeline mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadPipeline_CardCapIsClamped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	if err := os.WriteFile(path, []byte("max_cards: 500\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadPipeline(path)
	if err != nil {
		t.Fatalf("LoadPipeline failed: %v", err)
	}
	if got.MaxCards != DefaultMaxCards {
		t.Errorf("MaxCards = %d; want %d", got.MaxCards, DefaultMaxCards)
	}
}

func TestLoadPipeline_BadYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	if err := os.WriteFile(path, []byte("max_cards: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPipeline(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}
