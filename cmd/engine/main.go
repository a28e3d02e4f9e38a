package main

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/gofrs/flock"
	"github.com/sirupsen/logrus"

	"talentbridge-engine/internal/aggregate"
	"talentbridge-engine/internal/board"
	"talentbridge-engine/internal/config"
	"talentbridge-engine/internal/directory"
	"talentbridge-engine/internal/events"
	"talentbridge-engine/internal/gateway"
	"talentbridge-engine/internal/httpapi"
	"talentbridge-engine/internal/invite"
	"talentbridge-engine/internal/netutil"
	"talentbridge-engine/internal/secrets"
	"talentbridge-engine/internal/store"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log := logger.WithField("component", "engine")

	// Engine data dir: use env if provided (the desktop shell passes one),
	// else a local folder.
	dataDir := os.Getenv("TALENTBRIDGE_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.WithError(err).Fatal("create data dir")
	}

	// One engine per data dir; a second instance would fight over the
	// sqlite file and the user config.
	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.WithError(err).Fatal("acquire data dir lock")
	}
	if !locked {
		log.Fatal("another engine instance is already running for this data dir")
	}
	defer lock.Unlock()

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.WithError(err).Fatal("config bootstrap failed")
	}

	sessionPath := filepath.Join(dataDir, "session.yml")

	// Load config and keep it reloadable
	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		cfg, err := config.Load(userCfgPath)
		if err != nil {
			return cfg, err
		}
		if err := config.OverlaySession(&cfg, sessionPath); err != nil {
			return cfg, err
		}
		cfg, _ = config.NormalizeAndValidate(cfg)
		return cfg, nil
	}
	cfg, err := loadCfg()
	if err != nil {
		log.WithError(err).WithField("path", userCfgPath).Fatal("config load failed")
	}
	if _, vr := config.NormalizeAndValidate(cfg); !vr.OK() {
		log.WithField("errors", vr.Errors).Fatal("config invalid")
	}
	cfgVal.Store(cfg)

	db, err := store.Open(filepath.Join(dataDir, "talentbridge.db"))
	if err != nil {
		log.WithError(err).Fatal("open store")
	}
	defer db.Close()

	limiter := netutil.NewHostLimiter(cfg.Backend.RatePerSec, cfg.Backend.Burst)

	tokenAccount := secrets.BackendTokenAccount(cfg.Backend.BaseURL, cfg.Session.CompanyID)
	gw, err := gateway.New(gateway.Config{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: time.Duration(cfg.Backend.TimeoutSeconds) * time.Second,
		Token: func() (string, error) {
			return secrets.GetBackendToken(tokenAccount)
		},
	}, limiter)
	if err != nil {
		log.WithError(err).Fatal("gateway init")
	}

	hub := events.NewHub()
	tracker := invite.NewTracker()
	agg := aggregate.New(gw, logger.WithField("component", "aggregate"))

	reqBoard := board.New(board.Deps{
		CompanyID:  cfg.Session.CompanyID,
		Gateway:    gw,
		Aggregator: agg,
		Tracker:    tracker,
		Audit:      db,
		Hub:        hub,
		Log:        logger.WithField("component", "board"),
	})

	dir := directory.New(cfg.Registration.DirectoryURL, limiter)

	mux := httpapi.NewMux(httpapi.Deps{
		Board:       reqBoard,
		Store:       db,
		Hub:         hub,
		Registrar:   gw,
		Directory:   dir,
		CfgVal:      &cfgVal,
		UserCfgPath: userCfgPath,
		LoadCfg:     loadCfg,
		Log:         logger.WithField("component", "httpapi"),
	})

	handler := httpapi.Chain(mux,
		httpapi.RequestID,
		httpapi.Recover(logger.WithField("component", "httpapi")),
		httpapi.AccessLog(logger.WithField("component", "httpapi")),
		httpapi.Cors,
	)

	// Bind to a predictable local port so the UI knows where to find us.
	addr := fmt.Sprintf("127.0.0.1:%d", cfg.App.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.WithError(err).Fatal("listen")
	}
	log.WithFields(logrus.Fields{"addr": addr, "data_dir": dataDir}).Info("engine listening")

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Fatal(srv.Serve(ln))
}
