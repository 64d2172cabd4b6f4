package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/fairyhunter13/sri-rajeswari-provisions/internal/config"
	httpopenapi "github.com/fairyhunter13/sri-rajeswari-provisions/internal/http/openapi"
	"github.com/fairyhunter13/sri-rajeswari-provisions/internal/service"
	"github.com/fairyhunter13/sri-rajeswari-provisions/internal/store"
	"github.com/gorilla/mux"
)

type App struct {
	Cfg     config.Config
	Service service.Service
	Store   *store.Store
	openapi []byte
}

type messageResp struct {
	Message string `json:"message"`
}

type healthResp struct {
	Status string `json:"status"`
}

// NewApp wires a service with its catalog. st must be non-nil exactly when
// the service serves products.
func NewApp(cfg config.Config, svc service.Service, st *store.Store) (*App, error) {
	if svc.HasCatalog() && st == nil {
		return nil, fmt.Errorf("%s: catalog store is required", svc.Name)
	}
	if !svc.HasCatalog() && st != nil {
		return nil, fmt.Errorf("%s: service has no catalog", svc.Name)
	}
	doc, err := httpopenapi.Render(svc.Title, svc.HasCatalog())
	if err != nil {
		return nil, fmt.Errorf("render openapi: %w", err)
	}
	return &App{Cfg: cfg, Service: svc, Store: st, openapi: doc}, nil
}

func (a *App) rootHandler(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, messageResp{Message: a.Service.Message()})
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, healthResp{Status: "healthy"})
}

func (a *App) listProductsHandler(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, a.Store.List())
}

func (a *App) getProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["product_id"])
	if err != nil {
		WriteJSONError(w, http.StatusUnprocessableEntity, detailBadProductID)
		return
	}
	p, err := a.Store.Get(id)
	if errors.Is(err, store.ErrProductNotFound) {
		WriteJSONError(w, http.StatusNotFound, detailProductNotFound)
		return
	}
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, detailInternal)
		return
	}
	WriteJSON(w, http.StatusOK, p)
}

func (a *App) notFoundHandler(w http.ResponseWriter, r *http.Request) {
	WriteJSONError(w, http.StatusNotFound, detailNotFound)
}

func (a *App) methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	WriteJSONError(w, http.StatusMethodNotAllowed, detailMethodNotAllowed)
}

func (a *App) openapiHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(a.openapi)
}

func (a *App) docsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	html := `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>` + a.Service.Title + ` - Docs</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui'
      });
    </script>
  </body>
</html>`
	_, _ = w.Write([]byte(html))
}
