package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/juscode/lawsuit-api/api"
	"github.com/juscode/lawsuit-api/config"
	"github.com/juscode/lawsuit-api/databases"
	"github.com/juscode/lawsuit-api/lawsuits"
	"github.com/juscode/lawsuit-api/models"
)

// App stores the router and the loaded dataset, so it can be reused
type App struct {
	Router *mux.Router
	Store  *databases.Store
	Config config.Config
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	r := mux.NewRouter()

	metrics := api.NewHTTPMetrics()
	r.Use(api.LoggingMiddleware)
	r.Use(api.MetricsMiddleware(metrics))
	r.Use(api.TimeoutMiddleware)

	l := Lawsuit{Service: lawsuits.NewService(a.Store)}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)
	r.Handle("/metrics", metrics.Handler()).Methods("GET")

	apiCreate := r.PathPrefix("/api/v1").Subrouter()

	apiCreate.Handle("/lawsuits", http.HandlerFunc(l.ListLawsuitsHandler)).Methods("GET")
	apiCreate.Handle("/lawsuits/{case_number}", http.HandlerFunc(l.LawsuitByCaseNumberHandler)).Methods("GET")

	return r
}

// Initialize is invoked by main to load the dataset and create a router.
// A dataset that cannot be loaded keeps the service from becoming ready.
func (a *App) Initialize() error {
	var records []models.Lawsuit
	var err error

	switch a.Config.DataSource {
	case "mongo":
		records, err = databases.LoadFromMongo(&a.Config)
	case "file", "":
		records, err = databases.LoadFromFile(a.Config.DataFile)
	default:
		err = fmt.Errorf("unknown data source %q", a.Config.DataSource)
	}
	if err != nil {
		// if we fail to load the dataset, then kill the pod
		zap.S().With("error", err).Error("failed to load lawsuit dataset")
		return err
	}

	a.Store = databases.NewStore(records)
	a.initializeRoutes()
	return nil
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
