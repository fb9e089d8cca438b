package corpus

import (
	"testing"
	"time"

	"trainingcopilot/models"
)

// setupTestStore creates an in-memory SQLite corpus for testing
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store := &Store{path: ":memory:"}
	var err error
	store.db, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := store.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return store
}

func TestAppendAndAll(t *testing.T) {
	store := setupTestStore(t)
	defer store.Close()

	pages := []models.TrainingPage{
		{URL: "https://example.com/a", Title: "Page A", Content: "alpha", Lang: "EN"},
		{URL: "https://example.com/b", Title: "Page B", Content: "beta"},
	}
	for _, p := range pages {
		if err := store.Append(p); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
	}

	got, err := store.All()
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("All() returned %d pages, want 2", len(got))
	}

	// Insertion order is preserved
	if got[0].URL != pages[0].URL || got[1].URL != pages[1].URL {
		t.Errorf("All() order = [%s, %s], want [%s, %s]",
			got[0].URL, got[1].URL, pages[0].URL, pages[1].URL)
	}
	if got[0].Lang != "EN" {
		t.Errorf("got[0].Lang = %q, want %q", got[0].Lang, "EN")
	}
	if got[0].CapturedAt.IsZero() {
		t.Error("got[0].CapturedAt is zero, want a capture timestamp")
	}
}

func TestAppendIncrementsCount(t *testing.T) {
	store := setupTestStore(t)
	defer store.Close()

	before, err := store.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}

	// Capturing the same page twice appends two entries; no dedup.
	page := models.TrainingPage{URL: "https://example.com", Title: "Quiz", Content: "content"}
	if err := store.Append(page); err != nil {
		t.Fatalf("Append() first error = %v", err)
	}
	if err := store.Append(page); err != nil {
		t.Fatalf("Append() second error = %v", err)
	}

	after, err := store.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if after-before != 2 {
		t.Errorf("Count() delta = %d, want 2", after-before)
	}
}

func TestAppendClampsContent(t *testing.T) {
	store := setupTestStore(t)
	defer store.Close()

	long := make([]byte, models.MaxPageContent+500)
	for i := range long {
		long[i] = 'x'
	}
	err := store.Append(models.TrainingPage{
		URL:        "https://example.com",
		Title:      "Long",
		Content:    string(long),
		CapturedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	pages, err := store.All()
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if n := len(pages[0].Content); n != models.MaxPageContent {
		t.Errorf("stored content length = %d, want %d", n, models.MaxPageContent)
	}
}
