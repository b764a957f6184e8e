package fitness

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/bodyweight"
	"github.com/2beens/fittrack/internal/stats"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

type BodyWeightResponse struct {
	Entries []bodyweight.Entry    `json:"entries"`
	Trend   stats.BodyWeightTrend `json:"trend"`
}

func (handler *Handler) HandleListBodyWeight(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.bodyweight.list")
	defer span.End()

	entries := handler.bodyWeight.List()
	pkg.WriteJSON(w, BodyWeightResponse{
		Entries: entries,
		Trend:   stats.BodyWeight(entries),
	}, http.StatusOK)
}

func (handler *Handler) HandleAddBodyWeight(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bodyweight.add")
	defer span.End()

	var entry bodyweight.Entry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Debugf("add body weight, unmarshal json: %s", err)
		http.Error(w, "invalid body weight json", http.StatusBadRequest)
		return
	}

	added, err := handler.bodyWeight.Add(ctx, entry)
	if err != nil {
		if errors.Is(err, bodyweight.ErrInvalidWeight) {
			handler.metricsManager.CounterValidationFailures.Inc()
			writeValidationError(w, err.Error())
			return
		}
		log.Errorf("add body weight: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	handler.generation.Add(1)

	pkg.WriteJSON(w, added, http.StatusCreated)
}
