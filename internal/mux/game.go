package mux

import (
	"net/http"

	"teenpatti-server/pkg/token"

	gmux "github.com/gorilla/mux"
)

const gameIDLength = 8

type createGameResponse struct {
	ID string `json:"id"`
}

func (m *Mux) postGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := token.Generate(gameIDLength)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		m.registry.GetOrCreate(id)
		writeJSON(w, http.StatusCreated, createGameResponse{ID: id})
	}
}

// getGameID returns a snapshot of the game. Hands are redacted the same way
// they are over the websocket: pass playerId to see your own seen hand.
func (m *Mux) getGameID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dealer, ok := m.registry.Get(gmux.Vars(r)["id"])
		if !ok {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		// the dealer may have shut down between the lookup and the snapshot
		snapshot := dealer.Snapshot(r.FormValue("playerId"))
		if snapshot == nil {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		writeJSON(w, http.StatusOK, snapshot)
	}
}
