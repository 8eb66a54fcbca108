package api

import (
	"log/slog"
	"net/http"

	"github.com/darkfluid/darkfluid/pairing"
)

// AccountLogin handles POST /Account/Login.
// Creates a new anonymous session, optionally capturing the client's
// public key, and returns the session token. Never fails.
func (a *API) AccountLogin(w http.ResponseWriter, r *http.Request) {
	req := decodeLenientJSON[LoginRequest](r)

	sessionID := a.workflow.Login(req.PublicKey)

	event := AuditSessionCreated
	if req.PublicKey == "" {
		event = AuditSessionCreatedNoKey
	}
	a.audit.logEvent(event, r, slog.String("session_id", sessionID))

	writeJSON(w, http.StatusOK, LoginResponse{SessionID: sessionID})
}

// PutLobby handles PUT /lobby.
// Every outcome — malformed credential, unknown session, already paired,
// no host, invalid account id, successful pairing — is acknowledged with
// the same empty 202. The distinguishing detail goes only to the
// structured log and the spike detector.
func (a *API) PutLobby(w http.ResponseWriter, r *http.Request) {
	req := decodeLenientJSON[LobbyUpdateRequest](r)

	outcome := a.workflow.ProcessLobbyUpdate(r.Header.Get("Authorization"), req.Players)
	a.audit.logOutcome(outcome, r)

	w.WriteHeader(http.StatusAccepted)
}

// GetAccountKeys handles GET /Account/Keys.
// A missing id parameter is the only caller error in the system. An
// unknown but well-formed identifier returns an explicit empty list.
func (a *API) GetAccountKeys(w http.ResponseWriter, r *http.Request) {
	accountID := r.URL.Query().Get("id")
	if accountID == "" {
		a.audit.logEvent(AuditKeysLookupMissingID, r)
		writeError(w, http.StatusBadRequest, "missing id parameter")
		return
	}

	key, ok := a.workflow.LookupAccountKeys(accountID)
	if !ok {
		a.audit.logEvent(AuditKeysLookupEmpty, r, slog.String("account_id", accountID))
		writeJSON(w, http.StatusOK, AccountKeysResponse{AccountKeys: []AccountKeyEntry{}})
		return
	}

	a.audit.logEvent(AuditKeysLookup, r, slog.String("account_id", accountID))
	writeJSON(w, http.StatusOK, AccountKeysResponse{
		AccountKeys: []AccountKeyEntry{
			{PlatformAccountID: accountID, Key: key},
		},
	})
}

// Root handles GET /. It lives outside the /api mount so load balancer
// probes and curious browsers get a plain liveness message.
func (a *API) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, RootResponse{Message: "darkfluid-api running on this host"})
}

// outcomeEvents maps workflow outcomes to their audit events.
var outcomeEvents = map[pairing.Outcome]AuditEvent{
	pairing.OutcomePaired:         AuditLobbyPaired,
	pairing.OutcomePairedNoKey:    AuditLobbyPairedNoKey,
	pairing.OutcomeNoCredential:   AuditLobbyNoCredential,
	pairing.OutcomeUnknownSession: AuditLobbyUnknownSession,
	pairing.OutcomeAlreadyPaired:  AuditLobbyAlreadyPaired,
	pairing.OutcomeNoHost:         AuditLobbyNoHost,
	pairing.OutcomeInvalidAccount: AuditLobbyInvalidAccount,
}
