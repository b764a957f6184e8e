package fitness

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/goals"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

func (handler *Handler) HandleGetGoals(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.get")
	defer span.End()

	pkg.WriteJSON(w, handler.goals.Get(), http.StatusOK)
}

func (handler *Handler) HandleSetGoals(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.set")
	defer span.End()

	var g goals.Goals
	if err := json.NewDecoder(r.Body).Decode(&g); err != nil {
		log.Debugf("set goals, unmarshal json: %s", err)
		http.Error(w, "invalid goals json", http.StatusBadRequest)
		return
	}

	if err := handler.goals.Set(ctx, g); err != nil {
		if errors.Is(err, goals.ErrInvalidGoals) {
			handler.metricsManager.CounterValidationFailures.Inc()
			writeValidationError(w, err.Error())
			return
		}
		log.Errorf("set goals: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	handler.generation.Add(1)

	pkg.WriteJSON(w, g, http.StatusOK)
}
