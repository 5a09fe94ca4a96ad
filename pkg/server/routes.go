package server

import (
	"fmt"
	"net/http"
	"slices"
	"time"

	httpLogger "github.com/chi-middleware/logrus-logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/riandyrn/otelchi"

	"github.com/getzep/animalfacts/internal"
	"github.com/getzep/animalfacts/pkg/models"
	"github.com/getzep/animalfacts/pkg/server/apihandlers"
	"github.com/getzep/animalfacts/pkg/web"
)

var log = internal.GetLogger()

const (
	ReadHeaderTimeout = 5 * time.Second
	RouterName        = "animalfacts"
)

// Create creates a new HTTP server with the given app state
func Create(appState *models.AppState) *http.Server {
	router := setupRouter(appState)
	return &http.Server{
		Addr: fmt.Sprintf(
			"%s:%d",
			appState.Config.Server.Host,
			appState.Config.Server.Port,
		),
		Handler:           router,
		ReadHeaderTimeout: ReadHeaderTimeout,
	}
}

func setupRouter(appState *models.AppState) *chi.Mux {
	router := chi.NewRouter()
	router.Use(httpLogger.Logger("router", log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(cors.Handler(corsOptions(appState.Config.CORS.AllowedOrigins)))
	router.Use(SendVersion)
	if len(appState.Config.Server.CustomHeaders) > 0 {
		router.Use(ApplyCustomHeaders(appState.Config.Server.CustomHeaders))
	}
	router.Use(middleware.Heartbeat("/healthz"))
	router.Use(otelchi.Middleware(
		RouterName,
		otelchi.WithChiRoutes(router),
		otelchi.WithRequestMethodInSpanName(true),
	))

	router.Get("/", web.IndexHandler(appState.Config.Static.IndexFile))
	router.Handle(web.ImagesPathPrefix+"/*", web.ImagesHandler(appState.Config.Static.ImagesDir))

	router.Get("/health", apihandlers.HealthHandler(appState))
	router.Get("/test", apihandlers.TestHandler(appState))
	router.Get("/animal/{name}", apihandlers.GetAnimalImageHandler(appState))
	router.Get("/animal-facts/{name}", apihandlers.GetAnimalFactsHandler(appState))
	router.Post("/upload", apihandlers.UploadHandler(appState))

	return router
}

// corsOptions allows every method and header with credentials. A "*" origin reflects the
// caller's origin, since browsers reject a literal * alongside credentials.
func corsOptions(allowedOrigins []string) cors.Options {
	opts := cors.Options{
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodHead,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}

	if slices.Contains(allowedOrigins, "*") {
		opts.AllowOriginFunc = func(_ *http.Request, _ string) bool { return true }
	} else {
		opts.AllowedOrigins = allowedOrigins
	}

	return opts
}
