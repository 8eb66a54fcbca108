package pairing

import "testing"

// sessionStoreTests runs the common suite against any SessionStore
// implementation.
func sessionStoreTests(t *testing.T, store SessionStore) {
	t.Helper()

	t.Run("CreateAndGet", func(t *testing.T) {
		id := store.Create("PK-abc")
		if id == "" {
			t.Fatal("expected non-empty session id")
		}
		got, ok := store.Get(id)
		if !ok {
			t.Fatal("expected to find session")
		}
		if got.ID != id {
			t.Fatalf("got ID %q, want %q", got.ID, id)
		}
		if got.PublicKey != "PK-abc" {
			t.Fatalf("got PublicKey %q, want %q", got.PublicKey, "PK-abc")
		}
		if got.LobbyProcessed {
			t.Fatal("new session must start unprocessed")
		}
		if got.AccountID != "" {
			t.Fatalf("new session must have no account id, got %q", got.AccountID)
		}
	})

	t.Run("CreateWithoutKey", func(t *testing.T) {
		id := store.Create("")
		got, ok := store.Get(id)
		if !ok {
			t.Fatal("expected to find session")
		}
		if got.PublicKey != "" {
			t.Fatalf("got PublicKey %q, want empty", got.PublicKey)
		}
	})

	t.Run("GetMissing", func(t *testing.T) {
		_, ok := store.Get("no-such-token")
		if ok {
			t.Fatal("expected not found for missing token")
		}
	})

	t.Run("MarkPaired", func(t *testing.T) {
		id := store.Create("PK-1")
		if !store.MarkPaired(id, "42") {
			t.Fatal("expected first MarkPaired to succeed")
		}
		got, _ := store.Get(id)
		if got.AccountID != "42" {
			t.Fatalf("got AccountID %q, want %q", got.AccountID, "42")
		}
		if !got.LobbyProcessed {
			t.Fatal("expected session to be marked processed")
		}
	})

	t.Run("MarkPairedOnlyOnce", func(t *testing.T) {
		id := store.Create("PK-2")
		if !store.MarkPaired(id, "first") {
			t.Fatal("expected first MarkPaired to succeed")
		}
		if store.MarkPaired(id, "second") {
			t.Fatal("expected second MarkPaired to be rejected")
		}
		got, _ := store.Get(id)
		if got.AccountID != "first" {
			t.Fatalf("got AccountID %q, want %q", got.AccountID, "first")
		}
	})

	t.Run("MarkPairedMissing", func(t *testing.T) {
		if store.MarkPaired("never-existed", "7") {
			t.Fatal("expected MarkPaired on unknown token to fail")
		}
	})
}

func TestMemorySessionStore(t *testing.T) {
	sessionStoreTests(t, NewMemorySessionStore())

	t.Run("TokenUniqueness", func(t *testing.T) {
		store := NewMemorySessionStore()
		seen := make(map[string]bool, 10000)
		for i := 0; i < 10000; i++ {
			id := store.Create("")
			if seen[id] {
				t.Fatalf("duplicate session token issued: %q", id)
			}
			seen[id] = true
		}
	})

	t.Run("GetReturnsCopy", func(t *testing.T) {
		store := NewMemorySessionStore()
		id := store.Create("PK")
		got, _ := store.Get(id)
		got.AccountID = "tampered"
		got.LobbyProcessed = true

		fresh, _ := store.Get(id)
		if fresh.AccountID != "" || fresh.LobbyProcessed {
			t.Fatal("mutating a returned session must not affect the store")
		}
	})
}

func TestMemoryKeyStore(t *testing.T) {
	store := NewMemoryKeyStore()

	t.Run("GetMissing", func(t *testing.T) {
		_, ok := store.GetKey("unknown")
		if ok {
			t.Fatal("expected not found for unpaired account")
		}
	})

	t.Run("SetAndGet", func(t *testing.T) {
		store.SetKey("42", "PK1")
		key, ok := store.GetKey("42")
		if !ok {
			t.Fatal("expected key for account 42")
		}
		if key != "PK1" {
			t.Fatalf("got key %q, want %q", key, "PK1")
		}
	})

	t.Run("Overwrite", func(t *testing.T) {
		store.SetKey("7", "old")
		store.SetKey("7", "new")
		key, _ := store.GetKey("7")
		if key != "new" {
			t.Fatalf("got key %q, want %q", key, "new")
		}
	})
}
