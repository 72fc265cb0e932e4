package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/blockfall/internal/storage"
)

func TestSessionSummary(t *testing.T) {
	store, err := storage.OpenSession()
	if err != nil {
		t.Fatalf("OpenSession() failed: %v", err)
	}
	defer store.Close()

	out, err := SessionSummary(store, "tetris")
	if err != nil {
		t.Fatalf("SessionSummary() failed: %v", err)
	}
	if !strings.Contains(out, "No finished rounds") {
		t.Errorf("Expected empty-session message, got %q", out)
	}

	store.RecordRound("tetris", 400, 2)
	store.RecordRound("tetris", 1600, 4)

	out, err = SessionSummary(store, "tetris")
	if err != nil {
		t.Fatalf("SessionSummary() failed: %v", err)
	}
	for _, want := range []string{"SESSION SCORES", "Rank", "1600", "400"} {
		if !strings.Contains(out, want) {
			t.Errorf("Summary missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "1600") > strings.Index(out, "400") {
		t.Error("Best round should be listed first")
	}
}
