package fitness

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/catalog"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

type AddExerciseRequest struct {
	Category string `json:"category"`
	Name     string `json:"name"`
}

type AddExerciseResponse struct {
	Added   bool            `json:"added"`
	Catalog catalog.Catalog `json:"catalog"`
}

func (handler *Handler) HandleListExercises(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	pkg.WriteJSON(w, handler.catalog.Merged(), http.StatusOK)
}

func (handler *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.add")
	defer span.End()

	var req AddExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debugf("add exercise, unmarshal json: %s", err)
		http.Error(w, "invalid exercise json", http.StatusBadRequest)
		return
	}

	added, err := handler.catalog.Add(ctx, req.Category, req.Name)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidExercise) {
			handler.metricsManager.CounterValidationFailures.Inc()
			writeValidationError(w, err.Error())
			return
		}
		log.Errorf("add exercise [%s] [%s]: %s", req.Category, req.Name, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	if added {
		handler.generation.Add(1)
		status = http.StatusCreated
		log.Debugf("custom exercise added: [%s] [%s]", req.Category, req.Name)
	}

	pkg.WriteJSON(w, AddExerciseResponse{
		Added:   added,
		Catalog: handler.catalog.Merged(),
	}, status)
}
