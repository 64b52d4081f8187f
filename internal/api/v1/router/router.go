package router

import (
	"database/sql"
	"net/http"
	"strings"
	"time"

	"coursecatalog/internal/api/v1/handler"
	"coursecatalog/internal/config"
	"coursecatalog/internal/middleware"
	"coursecatalog/internal/repository"
	"coursecatalog/internal/service"

	"github.com/go-playground/validator/v10"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// New wires the whole request path: DB connection, repositories, services,
// handlers, auth gate, CORS and request logging. The returned *sql.DB is
// owned by the caller.
func New(cfg *config.Config, logger zerolog.Logger) (http.Handler, *sql.DB, error) {
	// 1. Open DB connection (connection pooling)
	dsn := cfg.DatabaseURL
	// Local Postgres usually runs without TLS; hosted connection strings
	// must carry their own sslmode.
	if cfg.Environment == "development" && !strings.Contains(dsn, "sslmode") {
		separator := "?"
		if strings.Contains(dsn, "?") {
			separator = "&"
		}
		dsn += separator + "sslmode=disable"
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, nil, err
	}
	logger.Info().Msg("Database connection successful")

	// Set reasonable connection pool limits
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxIdleTime(5 * time.Minute)

	// 2. Initialize validator
	validate := validator.New(validator.WithRequiredStructEnabled())

	// 3. Initialize repositories & services & handlers
	courseRepo := repository.NewCourseRepo(db)
	profileRepo := repository.NewProfileRepo(db)

	courseSvc := service.NewCourseService(courseRepo, profileRepo)
	profileSvc := service.NewProfileService(profileRepo)

	courseHandler := handler.NewCourseHandler(courseSvc, validate)
	profileHandler := handler.NewProfileHandler(profileSvc, validate)

	// 4. Initialize middleware
	authMiddleware := middleware.Auth(cfg.JWTKeyMaterial, logger)

	// 5. Create ServeMux router
	mux := http.NewServeMux()

	apiV1Mux := http.NewServeMux()
	courseHandler.RegisterRoutes(apiV1Mux, authMiddleware)
	profileHandler.RegisterRoutes(apiV1Mux, authMiddleware)
	apiV1Mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			http.Error(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Mount the API v1 routes under /v1
	mux.Handle("/v1/", http.StripPrefix("/v1", apiV1Mux))

	// 6. Apply CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return middleware.Logger(logger)(c.Handler(mux)), db, nil
}
