package api

import (
	"context"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/sskmsk/creditbot/internal/config"
	"github.com/sskmsk/creditbot/internal/db"
	"golang.org/x/oauth2"
)

// ScoreReader is the read-only view of the score store the API serves.
type ScoreReader interface {
	ListGuildScores(ctx context.Context, guildID string) ([]db.Score, error)
	GetScore(ctx context.Context, guildID, userID string) (*db.Score, error)
	GetRegisteredGuildIDs(ctx context.Context) ([]string, error)
}

type API struct {
	router      *mux.Router
	db          ScoreReader
	config      *config.Config
	oauthConfig *oauth2.Config
	jwtSecret   []byte
}

func New(cfg *config.Config, store ScoreReader) *API {
	api := &API{
		router:    mux.NewRouter(),
		db:        store,
		config:    cfg,
		jwtSecret: []byte(cfg.JWTSecret),
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.DiscordClientID,
			ClientSecret: cfg.DiscordClientSecret,
			RedirectURL:  cfg.DiscordRedirectURI,
			Scopes:       []string{"identify", "guilds"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  "https://discord.com/api/oauth2/authorize",
				TokenURL: "https://discord.com/api/oauth2/token",
			},
		},
	}

	api.setupRoutes()
	return api
}

func (a *API) setupRoutes() {
	// Auth endpoints
	a.router.HandleFunc("/api/auth/login", a.handleLogin).Methods("GET")
	a.router.HandleFunc("/api/auth/callback", a.handleCallback).Methods("GET")
	a.router.HandleFunc("/api/auth/logout", a.handleLogout).Methods("POST")

	// Public read-only endpoints
	a.router.HandleFunc("/api/guilds/{guild_id}/scores", a.handleListScores).Methods("GET")
	a.router.HandleFunc("/api/guilds/{guild_id}/scores/{user_id}", a.handleGetScore).Methods("GET")

	// Protected endpoints
	protected := a.router.PathPrefix("/api").Subrouter()
	protected.Use(a.authMiddleware)

	protected.HandleFunc("/user/guilds", a.handleUserGuilds).Methods("GET")
}

func (a *API) Start() error {
	// Setup CORS - allow all origins for development, restrict in production
	// Note: When AllowedOrigins is "*", AllowCredentials must be false for security
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	}

	handler := cors.New(corsOptions).Handler(a.router)

	log.Printf("API server listening on http://%s", a.config.WebBind)
	return http.ListenAndServe(a.config.WebBind, handler)
}
