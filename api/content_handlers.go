package api

import (
	"fmt"
	"net/http"
)

// document returns a handler serving the named content document verbatim.
// Documents are validated at startup, so a missing name here is a wiring
// bug rather than a caller error.
func (a *API) document(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, ok := a.content.Get(name)
		if !ok {
			writeInternalError(w, "content document not registered",
				fmt.Errorf("no document named %q", name))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(doc)
	}
}

// GetWarID handles GET /WarSeason/current/WarId.
func (a *API) GetWarID(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, WarIDResponse{ID: a.warID})
}

// GetTimeSinceWarStart handles GET /WarSeason/{warID}/timeSinceStart.
// The value is computed from the configured war start instant rather than
// read from static content.
func (a *API) GetTimeSinceWarStart(w http.ResponseWriter, r *http.Request) {
	elapsed := int64(a.now().UTC().Sub(a.warStart).Seconds())
	writeJSON(w, http.StatusOK, TimeSinceStartResponse{SecondsSinceStart: elapsed})
}

// GetProgressionCustomization handles GET /Progression/customization.
func (a *API) GetProgressionCustomization(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct{}{})
}

// GetItemDiscounts handles GET /Progression/items/discounts/{warID}.
func (a *API) GetItemDiscounts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, []struct{}{})
}
