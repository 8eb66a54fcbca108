package content

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedSeed(t *testing.T) {
	store, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := []string{
		"GameClientConfig", "WarInfo", "GalacticWarEffects", "NewsTicker",
		"WarAssignment", "WarStatus", "Operation", "ItemPackages",
		"ProgressionPackages", "ProgressionItems", "LevelSpec",
		"Progression", "ProgressionInventory", "RewardEntries",
		"SeasonPass", "NewsFeed",
	}
	for _, name := range want {
		doc, ok := store.Get(name)
		if !ok {
			t.Fatalf("expected seed document %q", name)
		}
		if !json.Valid(doc) {
			t.Fatalf("seed document %q is not valid JSON", name)
		}
	}
	if got := len(store.Names()); got != len(want) {
		t.Fatalf("got %d documents, want %d", got, len(want))
	}
}

func TestGetUnknownDocument(t *testing.T) {
	store, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, ok := store.Get("NoSuchDocument"); ok {
		t.Fatal("expected unknown document to be absent")
	}
}

func TestDirectoryOverride(t *testing.T) {
	dir := t.TempDir()
	override := []byte(`{"warId": 999, "custom": true}`)
	if err := os.WriteFile(filepath.Join(dir, "WarInfo.json"), override, 0o600); err != nil {
		t.Fatal(err)
	}

	store, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	doc, ok := store.Get("WarInfo")
	if !ok {
		t.Fatal("expected WarInfo document")
	}
	if string(doc) != string(override) {
		t.Fatalf("override not served verbatim: got %s", doc)
	}

	// Non-overridden documents still come from the seed set.
	if _, ok := store.Get("GameClientConfig"); !ok {
		t.Fatal("expected seed GameClientConfig to survive an override load")
	}
}

func TestMalformedOverrideFailsFast(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "WarInfo.json"), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatal("expected error for malformed override document")
	}
}

func TestMissingDirectoryFailsFast(t *testing.T) {
	if _, err := Load("/no/such/dir"); err == nil {
		t.Fatal("expected error for missing content directory")
	}
}
