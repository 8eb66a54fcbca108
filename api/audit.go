package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/darkfluid/darkfluid/pairing"
)

// AuditEvent identifies the type of request-level action being logged.
type AuditEvent string

const (
	AuditSessionCreated      AuditEvent = "session_created"
	AuditSessionCreatedNoKey AuditEvent = "session_created_no_key"
	AuditLobbyPaired         AuditEvent = "lobby_paired"
	AuditLobbyPairedNoKey    AuditEvent = "lobby_paired_no_key"
	AuditLobbyNoCredential   AuditEvent = "lobby_no_credential"
	AuditLobbyUnknownSession AuditEvent = "lobby_unknown_session"
	AuditLobbyAlreadyPaired  AuditEvent = "lobby_already_paired"
	AuditLobbyNoHost         AuditEvent = "lobby_no_host"
	AuditLobbyInvalidAccount AuditEvent = "lobby_invalid_account"
	AuditKeysLookup          AuditEvent = "keys_lookup"
	AuditKeysLookupEmpty     AuditEvent = "keys_lookup_empty"
	AuditKeysLookupMissingID AuditEvent = "keys_lookup_missing_id"
)

// auditLogger wraps slog.Logger for structured request logging. Lobby
// no-ops surface here and nowhere else: the wire response is identical
// for every outcome.
type auditLogger struct {
	logger  *slog.Logger
	metrics *metricsCollector
}

func newAuditLogger(logger *slog.Logger) *auditLogger {
	return &auditLogger{
		logger: logger.With("component", "audit"),
	}
}

func (al *auditLogger) logEvent(event AuditEvent, r *http.Request, attrs ...slog.Attr) {
	baseAttrs := []slog.Attr{
		slog.String("event", string(event)),
		slog.String("remote_addr", r.RemoteAddr),
		slog.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
	}
	baseAttrs = append(baseAttrs, attrs...)

	al.logger.LogAttrs(r.Context(), slog.LevelInfo, "audit", baseAttrs...)
	if al.metrics != nil {
		al.metrics.recordEvent(event)
	}
}

// logOutcome records a lobby update outcome as its audit event.
func (al *auditLogger) logOutcome(outcome pairing.Outcome, r *http.Request) {
	event, ok := outcomeEvents[outcome]
	if !ok {
		event = AuditEvent("lobby_" + outcome.String())
	}
	al.logEvent(event, r, slog.String("outcome", outcome.String()))
}
