package router

import (
	"database/sql"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"pet-cry-monitor/internal/adapters/auth/hmacjwt"
	"pet-cry-monitor/internal/adapters/classifier/aiserver"
	"pet-cry-monitor/internal/adapters/storage/fsassets"
	"pet-cry-monitor/internal/adapters/storage/fscache"
	mem "pet-cry-monitor/internal/adapters/storage/memory"
	pg "pet-cry-monitor/internal/adapters/storage/postgres"
	"pet-cry-monitor/internal/domain/cries"
	"pet-cry-monitor/internal/domain/pets"
	"pet-cry-monitor/internal/domain/users"
	"pet-cry-monitor/internal/middleware"
	"pet-cry-monitor/internal/platform/logger"
	"pet-cry-monitor/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "pet-cry-monitor/docs" // registro del spec swagger generado
)

const tokenTTL = 72 * time.Hour

type Options struct {
	Verifier auth.Verifier // puede ser nil (modo dev con X-Debug-User-ID)
	Issuer   auth.Issuer   // puede ser nil (la respuesta sale sin token)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Raíz para cache de reportes, wavs e imágenes de perfil.
	DataDir string

	// URL del clasificador externo. Vacía => predict responde 500.
	ClassifierURL string

	Log logger.Logger
}

func NewRouter(opts Options) (http.Handler, error) {
	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	// Si no te pasan verifier explícito, intenta por env (para dev/handoff)
	verifier := opts.Verifier
	issuer := opts.Issuer
	if verifier == nil {
		if secret := os.Getenv("JWT_SECRET"); secret != "" {
			authority := hmacjwt.New(secret, tokenTTL)
			verifier = authority
			if issuer == nil {
				issuer = authority
			}
		}
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(verifier))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(`{"message":"울음소리 모니터링 서버에 오신 것을 환영합니다"}`))
	})
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler())

	var (
		userRepo users.Repository
		petRepo  pets.Repository
		cryRepo  cries.Repository
	)

	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("postgres unavailable, falling back to memory", map[string]any{"error": err.Error()})
			}
		}
	}

	if db != nil {
		if err := pg.Migrate(db); err != nil {
			return nil, err
		}
		userRepo = pg.NewUsersRepo(db)
		petRepo = pg.NewPetsRepo(db)
		cryRepo = pg.NewCriesRepo(db)
	} else {
		store := mem.NewStore()
		userRepo = store.Users()
		petRepo = store.Pets()
		cryRepo = store.Cries()
	}

	dataDir := opts.DataDir
	if dataDir == "" {
		dataDir = os.Getenv("DATA_DIR")
	}
	if dataDir == "" {
		dataDir = "./data"
	}

	reports, err := fscache.NewReportStore(filepath.Join(dataDir, "cry_inspect_logs"))
	if err != nil {
		return nil, err
	}
	audio, err := fsassets.NewAudioStore(filepath.Join(dataDir, "cry_dataset"))
	if err != nil {
		return nil, err
	}
	profileDir := filepath.Join(dataDir, "pet_profiles")
	images, err := fsassets.NewImageStore(profileDir, filepath.Join(profileDir, "default.jpeg"))
	if err != nil {
		return nil, err
	}

	classifierURL := opts.ClassifierURL
	if classifierURL == "" {
		classifierURL = os.Getenv("AI_SERVER_API")
	}
	classifier := aiserver.New(classifierURL, 30*time.Second)

	// Services por módulo
	usersSvc := users.NewService(userRepo)
	petsSvc := pets.NewService(petRepo, images)
	criesSvc := cries.NewService(cryRepo, petsSvc, reports, classifier, audio, log)

	// Rutas por módulo
	users.RegisterRoutes(r, usersSvc, issuer)
	pets.RegisterRoutes(r, petsSvc)
	cries.RegisterRoutes(r, criesSvc)

	return r, nil
}
