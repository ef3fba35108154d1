package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/sportarena/api/internal/config"
	"github.com/sportarena/api/internal/domain/auction"
	"github.com/sportarena/api/internal/domain/fantasy"
	"github.com/sportarena/api/internal/domain/match"
	"github.com/sportarena/api/internal/domain/player"
	"github.com/sportarena/api/internal/domain/prediction"
	"github.com/sportarena/api/internal/domain/sport"
	"github.com/sportarena/api/internal/domain/team"
	"github.com/sportarena/api/internal/infrastructure/account"
	"github.com/sportarena/api/internal/infrastructure/repository/memory"
	"github.com/sportarena/api/internal/infrastructure/repository/postgres"
	"github.com/sportarena/api/internal/interfaces/httpapi"
	"github.com/sportarena/api/internal/platform/cache"
	idgen "github.com/sportarena/api/internal/platform/id"
	"github.com/sportarena/api/internal/platform/logging"
	"github.com/sportarena/api/internal/usecase"
)

type repositories struct {
	teams       team.Repository
	players     player.Repository
	sports      sport.Repository
	matches     match.Repository
	predictions prediction.Repository
	entries     fantasy.Repository
	ledger      auction.Ledger
	close       func() error
}

// NewHTTPServer wires repositories, services and the router into a ready
// http.Server. The returned cleanup releases worker pools and the DB handle.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func(), error) {
	repos, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	idGen := idgen.NewRandomGenerator()
	store := cache.NewStore(cfg.CacheTTL)

	auctionSvc := usecase.NewAuctionService(repos.players, repos.teams, repos.ledger, logger)
	teamSvc := usecase.NewTeamService(repos.teams, idGen, logger)
	playerSvc := usecase.NewPlayerService(repos.players, idGen, logger)
	sportSvc := usecase.NewSportService(repos.sports, idGen, logger)
	predictionSvc, err := usecase.NewPredictionService(repos.predictions, repos.matches, idGen, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("build prediction service: %w", err)
	}
	matchSvc := usecase.NewMatchService(repos.matches, repos.teams, repos.sports, predictionSvc, idGen, logger)
	fantasySvc := usecase.NewFantasyService(repos.entries, repos.players, repos.sports, idGen, logger)
	leaderboardSvc := usecase.NewLeaderboardService(
		repos.predictions, repos.entries, repos.matches, repos.teams, store, logger)

	verifier := buildTokenVerifier(cfg, logger)

	handler := httpapi.NewHandler(
		auctionSvc,
		teamSvc,
		playerSvc,
		sportSvc,
		matchSvc,
		predictionSvc,
		fantasySvc,
		leaderboardSvc,
		memory.SeedSports(),
		logger,
	)
	router := httpapi.NewRouter(handler, verifier, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		ReadHeaderTimeout: 5 * time.Second,
	}
	if server.Addr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	cleanup := func() {
		predictionSvc.Close()
		if repos.close != nil {
			if err := repos.close(); err != nil {
				logger.Warn("close repositories", "error", err)
			}
		}
	}

	return server, cleanup, nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, error) {
	if cfg.DBURL == "" {
		logger.Info("storage backend selected", "backend", "memory")
		return buildMemoryRepositories(), nil
	}

	db, err := otelsqlx.Connect("postgres", cfg.DBURL,
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
	)
	if err != nil {
		return repositories{}, fmt.Errorf("connect postgres: %w", err)
	}
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	logger.Info("storage backend selected", "backend", "postgres", "db", dbNameFromURL(cfg.DBURL))

	return buildPostgresRepositories(db), nil
}

func buildMemoryRepositories() repositories {
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	sportRepo := memory.NewSportRepository(memory.SeedSports())

	return repositories{
		teams:       teamRepo,
		players:     playerRepo,
		sports:      sportRepo,
		matches:     memory.NewMatchRepository(),
		predictions: memory.NewPredictionRepository(),
		entries:     memory.NewFantasyRepository(),
		ledger:      memory.NewLedger(playerRepo, teamRepo),
	}
}

func buildPostgresRepositories(db *sqlx.DB) repositories {
	return repositories{
		teams:       postgres.NewTeamRepository(db),
		players:     postgres.NewPlayerRepository(db),
		sports:      postgres.NewSportRepository(db),
		matches:     postgres.NewMatchRepository(db),
		predictions: postgres.NewPredictionRepository(db),
		entries:     postgres.NewFantasyRepository(db),
		ledger:      postgres.NewLedger(db),
		close:       db.Close,
	}
}

func buildTokenVerifier(cfg config.Config, logger *logging.Logger) httpapi.TokenVerifier {
	if cfg.AccountBaseURL == "" {
		logger.Info("auth backend selected", "backend", "static")
		return account.NewStaticVerifier(cfg.AdminToken, cfg.UserToken)
	}

	logger.Info("auth backend selected", "backend", "account", "base_url", cfg.AccountBaseURL)
	return account.NewClient(cfg.AccountBaseURL, cfg.AccountIntrospectPath, logger)
}
