package pairing

import (
	"log/slog"
	"strings"
)

// Player is one roster entry of a lobby update.
type Player struct {
	IsHost          bool   `json:"isHost"`
	MemberAccountID string `json:"memberAccountId"`
}

// Outcome names which branch a lobby update took. It exists for logs and
// anomaly detection only; every outcome is acknowledged identically on the
// wire.
type Outcome string

const (
	// OutcomePaired is the success path: host account resolved and the
	// session's public key written to the account key store.
	OutcomePaired Outcome = "paired"
	// OutcomePairedNoKey means the identity paired but the session was
	// created without a public key, so none could be written.
	OutcomePairedNoKey    Outcome = "paired_no_key"
	OutcomeNoCredential   Outcome = "no_credential"
	OutcomeUnknownSession Outcome = "unknown_session"
	OutcomeAlreadyPaired  Outcome = "already_paired"
	OutcomeNoHost         Outcome = "no_host"
	OutcomeInvalidAccount Outcome = "invalid_account"
)

func (o Outcome) String() string { return string(o) }

// Paired reports whether the outcome left the session in the paired state
// for the first time.
func (o Outcome) Paired() bool {
	return o == OutcomePaired || o == OutcomePairedNoKey
}

// Workflow orchestrates session creation, lobby-derived identity
// resolution, and the one-time write into the account key store. Both
// stores are injected so the workflow can be exercised without a network
// listener.
type Workflow struct {
	sessions SessionStore
	keys     AccountKeyStore
	logger   *slog.Logger
}

// Option configures a Workflow.
type Option func(*Workflow)

// WithLogger sets the structured logger for workflow events.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Workflow) {
		w.logger = logger
	}
}

// NewWorkflow creates a Workflow over the given stores.
func NewWorkflow(sessions SessionStore, keys AccountKeyStore, opts ...Option) *Workflow {
	w := &Workflow{sessions: sessions, keys: keys}
	for _, opt := range opts {
		opt(w)
	}
	if w.logger == nil {
		w.logger = slog.Default()
	}
	return w
}

// Login creates a new anonymous session, optionally capturing the
// client's public key, and returns the session token. It never fails;
// a missing public key only limits what a later lobby update can pair.
func (w *Workflow) Login(publicKey string) string {
	id := w.sessions.Create(publicKey)
	if publicKey != "" {
		w.logger.Info("login: new session created",
			"session_id", id, "public_key", publicKey)
	} else {
		w.logger.Warn("login: new session created without publicKey",
			"session_id", id)
	}
	return id
}

// ParseSessionCredential extracts the session token from a caller
// credential of the form "session <token>". The scheme is matched
// case-insensitively; the token is returned verbatim. Returns false for
// anything else, including an empty credential.
func ParseSessionCredential(credential string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(credential), " ")
	if !ok || !strings.EqualFold(scheme, "session") {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}

// ProcessLobbyUpdate resolves the host player's account identifier from
// the roster and pairs it with the session identified by credential.
// Every branch is a valid acknowledgment: rejections leave the session
// unpaired and retryable, a repeat update after pairing is an idempotent
// no-op, and no branch is distinguishable to the caller.
func (w *Workflow) ProcessLobbyUpdate(credential string, roster []Player) Outcome {
	id, ok := ParseSessionCredential(credential)
	if !ok {
		w.logger.Warn("lobby: no parseable session token in credential")
		return OutcomeNoCredential
	}

	sess, ok := w.sessions.Get(id)
	if !ok {
		w.logger.Warn("lobby: unrecognised session", "session_id", id)
		return OutcomeUnknownSession
	}
	if sess.LobbyProcessed {
		return OutcomeAlreadyPaired
	}

	var host *Player
	for i := range roster {
		if roster[i].IsHost {
			host = &roster[i]
			break
		}
	}
	if host == nil {
		w.logger.Warn("lobby: no host player in roster", "session_id", id)
		return OutcomeNoHost
	}

	accountID := host.MemberAccountID
	if accountID == "" || accountID == "0" {
		w.logger.Warn("lobby: host memberAccountId missing or zero",
			"session_id", id)
		return OutcomeInvalidAccount
	}

	// MarkPaired is the serialization point: of two concurrent updates
	// for the same session, only one passes and writes a key.
	if !w.sessions.MarkPaired(id, accountID) {
		return OutcomeAlreadyPaired
	}

	if sess.PublicKey == "" {
		w.logger.Warn("lobby: host resolved but session has no publicKey",
			"session_id", id, "account_id", accountID)
		return OutcomePairedNoKey
	}

	w.keys.SetKey(accountID, sess.PublicKey)
	w.logger.Info("lobby: paired account to public key",
		"session_id", id, "account_id", accountID, "public_key", sess.PublicKey)
	return OutcomePaired
}

// LookupAccountKeys returns the public key paired with accountID. An
// account that never paired a key yields ("", false); that is an empty
// result, not an error.
func (w *Workflow) LookupAccountKeys(accountID string) (string, bool) {
	return w.keys.GetKey(accountID)
}
