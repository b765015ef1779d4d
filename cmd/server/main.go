package main

import (
	"flag"
	"net/http"
	"os"
	"strings"
	"time"

	"teenpatti-server/internal/config"
	"teenpatti-server/internal/mux"
	"teenpatti-server/pkg/db"
	"teenpatti-server/pkg/room"
	"teenpatti-server/pkg/stats"
	"teenpatti-server/pkg/teenpatti"

	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10

// Version is the server version
var Version = "v0.0.0-dev"

var addr = flag.String("addr", ":5000", "the listen address")

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()

	registry := room.NewRegistry(room.Options{
		GameOptions: teenpatti.Options{
			MinBet:        cfg.Game.MinBet,
			StartingChips: cfg.Game.StartingChips,
		},
		StartGameDelay: time.Second * time.Duration(cfg.StartGameDelay),
		TurnTimeout:    time.Second * time.Duration(cfg.TurnTimeout),
		Recorder:       newRecorder(cfg),
	})

	c := cors.New(cors.Options{
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With", "Authorization"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
	})

	srv := &http.Server{
		Addr:         *addr,
		Handler:      loggingHandler(c.Handler(mux.NewMux(Version, registry))),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logrus.WithField("addr", srv.Addr).Info("listening")
	logrus.Fatal(srv.ListenAndServe())
}

// newRecorder returns the round-result recorder. Without a configured DSN
// the server runs standalone and results are not persisted.
func newRecorder(cfg config.Config) stats.Recorder {
	if cfg.PGDSN == "" {
		logrus.Info("no pgDsn configured, round results will not be recorded")
		return stats.NullRecorder{}
	}

	// run the db migrations
	db.Migrate()

	return stats.NewPostgresRecorder(db.Instance())
}

func loggingHandler(next http.Handler) http.Handler {
	if config.Instance().Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
