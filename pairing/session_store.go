// Package pairing implements the login → lobby-update → key-pairing
// workflow: an anonymous session is created at login, enriched with a
// resolved account identity once lobby membership data arrives, and the
// account's public key is durably associated with that identity.
package pairing

// SessionStore abstracts session creation and retrieval so that sessions
// can be stored in-memory (default) or in alternative backing storage.
type SessionStore interface {
	// Create inserts a new unpaired session and returns its generated
	// token. publicKey may be empty; it is immutable after creation.
	Create(publicKey string) string
	// Get retrieves a copy of a session by token. Returns false if the
	// token is unknown.
	Get(id string) (Session, bool)
	// MarkPaired sets the session's account ID and marks it processed.
	// It reports false without modifying anything if the token is unknown
	// or the session is already paired, so concurrent lobby updates for
	// the same session resolve to exactly one winner.
	MarkPaired(id, accountID string) bool
}

// Session holds the server-side state for one client login lifecycle.
type Session struct {
	ID        string
	PublicKey string
	AccountID string
	// LobbyProcessed flips false→true at most once; after that the
	// session's AccountID never changes again.
	LobbyProcessed bool
}
