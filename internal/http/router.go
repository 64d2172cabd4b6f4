package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"golang.org/x/time/rate"
)

// NewRouter registers HTTP routes and returns the handler with middleware.
func NewRouter(app *App) http.Handler {
	metrics := withMetrics(app.Service.Name)

	r := mux.NewRouter()
	r.Use(metrics)
	r.HandleFunc("/", app.rootHandler).Methods(http.MethodGet)
	r.HandleFunc("/health", app.healthHandler).Methods(http.MethodGet)
	if app.Store != nil {
		r.HandleFunc("/products", app.listProductsHandler).Methods(http.MethodGet)
		r.HandleFunc("/products/{product_id}", app.getProductHandler).Methods(http.MethodGet)
	}
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/openapi.yaml", app.openapiHandler).Methods(http.MethodGet)
	r.HandleFunc("/docs", app.docsHandler).Methods(http.MethodGet)
	r.NotFoundHandler = metrics(http.HandlerFunc(app.notFoundHandler))
	r.MethodNotAllowedHandler = metrics(http.HandlerFunc(app.methodNotAllowedHandler))

	var limiter *rate.Limiter
	if app.Cfg.RateLimitRPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(app.Cfg.RateLimitRPS), max(app.Cfg.RateLimitBurst, 1))
	}
	var h http.Handler = withRateLimit(limiter)(r)
	if len(app.Cfg.CORSAllowedOrigins) > 0 {
		h = cors.New(cors.Options{
			AllowedOrigins: app.Cfg.CORSAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type", "X-Request-Id"},
			ExposedHeaders: []string{"X-Request-Id"},
			MaxAge:         86400,
		}).Handler(h)
	}
	return WithRequestID(WithLogging(WithRecover(h)))
}
