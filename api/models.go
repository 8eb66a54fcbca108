package api

import "github.com/darkfluid/darkfluid/pairing"

// LoginRequest is the JSON body for POST /Account/Login.
type LoginRequest struct {
	PublicKey string `json:"publicKey,omitempty"`
}

// LoginResponse is returned from POST /Account/Login.
type LoginResponse struct {
	SessionID string `json:"sessionId"`
}

// LobbyUpdateRequest is the JSON body for PUT /lobby.
type LobbyUpdateRequest struct {
	Players []pairing.Player `json:"players"`
}

// AccountKeyEntry is one element of an account keys lookup result.
type AccountKeyEntry struct {
	PlatformAccountID string `json:"platformAccountId"`
	Key               string `json:"key"`
}

// AccountKeysResponse is returned from GET /Account/Keys.
type AccountKeysResponse struct {
	AccountKeys []AccountKeyEntry `json:"accountKeys"`
}

// WarIDResponse is returned from GET /WarSeason/current/WarId.
type WarIDResponse struct {
	ID int `json:"id"`
}

// TimeSinceStartResponse is returned from GET /WarSeason/{warID}/timeSinceStart.
type TimeSinceStartResponse struct {
	SecondsSinceStart int64 `json:"secondsSinceStart"`
}

// RootResponse is returned from GET /.
type RootResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is returned for all error cases.
type ErrorResponse struct {
	Error string `json:"error"`
}
