package httpapi

import "net/http"

// NewMux wires every route. main() wraps the result in the middleware chain.
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	hh := HealthHandler{}
	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.Health,
	}))

	// Request board + offer flow
	bh := BoardHandler{Board: d.Board}
	mux.HandleFunc("/requests", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: bh.Requests,
	}))
	mux.HandleFunc("/requests/offer/open", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: bh.OpenOffer,
	}))
	mux.HandleFunc("/requests/offer/cancel", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: bh.CancelOffer,
	}))
	mux.HandleFunc("/requests/offer/submit", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: bh.SubmitOffer,
	}))

	// Invite audit log
	ih := InvitesHandler{Store: d.Store}
	mux.HandleFunc("/invites", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ih.List,
	}))

	// Registration boundary
	rh := RegisterHandler{Gateway: d.Registrar, Directory: d.Directory, Log: d.Log}
	mux.HandleFunc("/register", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: rh.Register,
	}))
	mux.HandleFunc("/universities", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: rh.Universities,
	}))

	// Config
	ch := ConfigHandler{
		CfgVal:      d.CfgVal,
		UserCfgPath: d.UserCfgPath,
		LoadCfg:     d.LoadCfg,
	}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
		http.MethodPut: ch.Put,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Path,
	}))
	mux.HandleFunc("/config/validate", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Validate,
	}))

	// Secrets (use cfgVal, NOT a snapshot cfg)
	sh := SecretsHandler{CfgVal: d.CfgVal}
	mux.HandleFunc("/secrets/backend-token", methodMux(map[string]http.HandlerFunc{
		http.MethodPost:   sh.SetBackendToken,
		http.MethodDelete: sh.DeleteBackendToken,
	}))

	// SSE events
	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	// Local maintenance
	dbh := DBHandler{Store: d.Store}
	mux.HandleFunc("/db/checkpoint", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: dbh.Checkpoint,
	}))

	return mux
}
