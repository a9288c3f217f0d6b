package router

import (
	"context"
	"database/sql"
	"net/http"
	"os"

	"tarantula-husbandry/internal/adapters/blobstore"
	mem "tarantula-husbandry/internal/adapters/storage/memory"
	pg "tarantula-husbandry/internal/adapters/storage/postgres"
	"tarantula-husbandry/internal/domain/accounts"
	"tarantula-husbandry/internal/domain/breeding"
	"tarantula-husbandry/internal/domain/entries"
	"tarantula-husbandry/internal/domain/health"
	"tarantula-husbandry/internal/domain/research"
	"tarantula-husbandry/internal/domain/transfer"
	"tarantula-husbandry/internal/domain/uploads"
	"tarantula-husbandry/internal/middleware"
	"tarantula-husbandry/internal/platform/httpclient"
	"tarantula-husbandry/internal/platform/logger"
	"tarantula-husbandry/internal/platform/ratelimit"
	"tarantula-husbandry/internal/ports/auth"
	"tarantula-husbandry/internal/ports/blob"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "tarantula-husbandry/docs"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, intenta DB_DSN y cae a in-memory.
	DB *sql.DB

	// Opcional: backend de binarios. Si no viene, se abre desde env.
	Blobs blob.Store

	// Opcional: notificador de molts. Si no viene, no se notifica.
	Syncer entries.Syncer

	// Opcional: limitador de intentos de contraseña (tests inyectan el suyo).
	Attempts ratelimit.AttemptStore

	Log logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var (
		entriesRepo  entries.Repository
		healthRepo   health.Repository
		breedingRepo breeding.Repository
		researchRepo research.Repository
		usersRepo    accounts.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("postgres no disponible, usando in-memory", map[string]any{"error": err.Error()})
			}
		}
	}

	if db != nil {
		entriesRepo = pg.NewEntriesRepo(db)
		healthRepo = pg.NewHealthRepo(db)
		breedingRepo = pg.NewBreedingRepo(db)
		researchRepo = pg.NewResearchRepo(db)
		usersRepo = pg.NewUsersRepo(db)
	} else {
		entriesRepo = mem.NewEntriesRepo()
		healthRepo = mem.NewHealthRepo()
		breedingRepo = mem.NewBreedingRepo()
		researchRepo = mem.NewResearchRepo()
		usersRepo = mem.NewUsersRepo()
	}

	blobs := opts.Blobs
	if blobs == nil {
		opened, err := blobstore.OpenFromEnv(context.Background(), log)
		if err != nil {
			log.Error("no se pudo abrir blob store", map[string]any{"error": err.Error()})
		} else {
			blobs = opened
		}
	}

	attempts := opts.Attempts
	if attempts == nil {
		attempts = ratelimit.NewMemoryStore()
	}

	// Services por módulo
	entriesSvc := entries.NewService(entriesRepo, opts.Syncer)
	healthSvc := health.NewService(healthRepo)
	breedingSvc := breeding.NewService(breedingRepo)
	researchSvc := research.NewService(researchRepo)
	accountsSvc := accounts.NewService(usersRepo, attempts,
		entriesRepo, healthRepo, breedingRepo, researchRepo)
	transferSvc := transfer.NewService(
		entriesSvc, researchSvc, healthSvc, breedingSvc,
		blobs, httpclient.New(httpclient.DefaultTimeout), log,
	)

	// Rutas por módulo, todas bajo /api
	r.Route("/api", func(api chi.Router) {
		entries.RegisterRoutes(api, entriesSvc)
		health.RegisterRoutes(api, healthSvc)
		breeding.RegisterRoutes(api, breedingSvc)
		research.RegisterRoutes(api, researchSvc)
		accounts.RegisterRoutes(api, accountsSvc)
		uploads.RegisterRoutes(api, blobs, log)
		transfer.RegisterRoutes(api, transferSvc)
	})

	// Backend fs: servir los binarios directo del disco
	if root, ok := blobstore.FSRoot(blobs); ok {
		fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(root)))
		r.Get("/uploads/*", func(w http.ResponseWriter, req *http.Request) {
			fileServer.ServeHTTP(w, req)
		})
	}

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return r
}
