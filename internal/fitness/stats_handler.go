package fitness

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/coocood/freecache"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/stats"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/views"
	"github.com/2beens/fittrack/pkg"
)

func (handler *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.dashboard")
	defer span.End()

	window, err := stats.ParseWindow(r.URL.Query().Get("window"))
	if err != nil {
		if errors.Is(err, stats.ErrUnknownWindow) {
			writeValidationError(w, err.Error())
			return
		}
		http.Error(w, "bad window", http.StatusBadRequest)
		return
	}

	payload, err := handler.dashboardJSON(window)
	if err != nil {
		log.Errorf("dashboard [%s]: %s", window, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, payload, http.StatusOK)
}

// dashboardJSON serves the dashboard from the cache as long as nothing was
// mutated and the day did not change.
func (handler *Handler) dashboardJSON(window stats.Window) ([]byte, error) {
	today := handler.today()
	key := []byte(fmt.Sprintf(
		"%d:%d:%s:%s",
		handler.workouts.Version(), handler.generation.Load(), window, today,
	))

	cached, err := handler.dashboardCache.Get(key)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, freecache.ErrNotFound) {
		log.Warnf("dashboard cache get: %s", err)
	}

	begin := time.Now()
	dashboard := views.BuildDashboard(handler.snapshot(), window, today)
	handler.observeStats("dashboard", begin)

	payload, err := json.Marshal(dashboard)
	if err != nil {
		return nil, fmt.Errorf("marshal dashboard: %w", err)
	}
	if err := handler.dashboardCache.Set(key, payload, dashboardCacheTTL); err != nil {
		log.Warnf("dashboard cache set: %s", err)
	}

	return payload, nil
}

func (handler *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.progress")
	defer span.End()

	exercise := mux.Vars(r)["exercise"]
	if exercise == "" {
		http.Error(w, "error, exercise empty", http.StatusBadRequest)
		return
	}

	begin := time.Now()
	progress := views.BuildProgress(handler.snapshot(), exercise)
	handler.observeStats("progress", begin)

	pkg.WriteJSON(w, progress, http.StatusOK)
}

func (handler *Handler) HandleRecords(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.records")
	defer span.End()

	begin := time.Now()
	records := stats.SortedRecords(stats.PersonalRecords(handler.workouts.List()))
	handler.observeStats("records", begin)

	pkg.WriteJSON(w, records, http.StatusOK)
}
