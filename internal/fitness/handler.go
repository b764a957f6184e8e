package fitness

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/coocood/freecache"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/views"
	"github.com/2beens/fittrack/pkg"
)

const (
	// dashboards are small, a few hundred cached (version, window) pairs are plenty
	dashboardCacheSize = 2 * 1024 * 1024
	dashboardCacheTTL  = 10 * 60 // seconds

	MsgWorkoutSaved = "Training gespeichert!"
)

type HandlerParams struct {
	Workouts       workoutsStore
	Catalog        catalogStore
	BodyWeight     bodyWeightStore
	Goals          goalsStore
	MetricsManager *metrics.Manager
	// Now defaults to time.Now.
	Now func() time.Time
}

type Handler struct {
	workouts       workoutsStore
	catalog        catalogStore
	bodyWeight     bodyWeightStore
	goals          goalsStore
	metricsManager *metrics.Manager
	now            func() time.Time

	dashboardCache *freecache.Cache
	// bumped on catalog, body weight and goals mutations; the workouts store has its own version
	generation atomic.Uint64
}

func NewHandler(params HandlerParams) *Handler {
	now := params.Now
	if now == nil {
		now = time.Now
	}
	metricsManager := params.MetricsManager
	if metricsManager == nil {
		metricsManager = metrics.NewManager("fittrack", "fitness", prometheus.NewRegistry())
	}

	h := &Handler{
		workouts:       params.Workouts,
		catalog:        params.Catalog,
		bodyWeight:     params.BodyWeight,
		goals:          params.Goals,
		metricsManager: metricsManager,
		now:            now,
		dashboardCache: freecache.NewCache(dashboardCacheSize),
	}
	h.metricsManager.GaugeStoredWorkouts.Set(float64(h.workouts.Len()))

	return h
}

// SetupRoutes registers the fitness API on the given router.
func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/workouts", handler.HandleListWorkouts).Methods("GET", "OPTIONS")
	r.HandleFunc("/workouts", handler.HandleSaveWorkout).Methods("POST", "OPTIONS")
	r.HandleFunc("/workouts/history", handler.HandleHistory).Methods("GET", "OPTIONS")
	r.HandleFunc("/workouts/export.csv", handler.HandleExportCSV).Methods("GET", "OPTIONS")
	r.HandleFunc("/workouts/{id:[0-9]+}", handler.HandleReplaceWorkout).Methods("PUT", "OPTIONS")
	r.HandleFunc("/workouts/{id:[0-9]+}", handler.HandleDeleteWorkout).Methods("DELETE", "OPTIONS")

	r.HandleFunc("/exercises", handler.HandleListExercises).Methods("GET", "OPTIONS")
	r.HandleFunc("/exercises", handler.HandleAddExercise).Methods("POST", "OPTIONS")

	r.HandleFunc("/bodyweight", handler.HandleListBodyWeight).Methods("GET", "OPTIONS")
	r.HandleFunc("/bodyweight", handler.HandleAddBodyWeight).Methods("POST", "OPTIONS")

	r.HandleFunc("/goals", handler.HandleGetGoals).Methods("GET", "OPTIONS")
	r.HandleFunc("/goals", handler.HandleSetGoals).Methods("PUT", "OPTIONS")

	r.HandleFunc("/stats/dashboard", handler.HandleDashboard).Methods("GET", "OPTIONS")
	r.HandleFunc("/stats/progress/{exercise}", handler.HandleProgress).Methods("GET", "OPTIONS")
	r.HandleFunc("/stats/records", handler.HandleRecords).Methods("GET", "OPTIONS")
}

func (handler *Handler) today() pkg.Date {
	return pkg.Today(handler.now())
}

func (handler *Handler) snapshot() views.Snapshot {
	return views.Snapshot{
		Entries:    handler.workouts.List(),
		Catalog:    handler.catalog.Merged(),
		BodyWeight: handler.bodyWeight.List(),
		Goals:      handler.goals.Get(),
	}
}

func (handler *Handler) observeStats(view string, begin time.Time) {
	handler.metricsManager.HistogramStatsDuration.
		WithLabelValues(view).
		Observe(time.Since(begin).Seconds())
}

// validation errors are answered with the message only, never with the wrapped chain
func writeValidationError(w http.ResponseWriter, msg string) {
	pkg.WriteJSON(w, ErrorResponse{Error: msg}, http.StatusBadRequest)
}

type ErrorResponse struct {
	Error string `json:"error"`
}
