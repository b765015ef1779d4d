package mux

import (
	"net/http"

	"teenpatti-server/pkg/room"

	gmux "github.com/gorilla/mux"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version  string
	registry *room.Registry
}

// NewMux returns a new HTTP mux serving the game API on top of the
// supplied registry
func NewMux(version string, registry *room.Registry) *Mux {
	this := &Mux{
		Router:   gmux.NewRouter(),
		version:  version,
		registry: registry,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/game").Handler(this.postGame())

	gr := r.PathPrefix("/game/{id:[A-Za-z0-9_-]+}").Subrouter()
	gr.Methods(http.MethodGet).Path("").Handler(this.getGameID())
	gr.Methods(http.MethodGet).Path("/ws").Handler(this.getGameIDWS())

	return this
}
