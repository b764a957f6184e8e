package fitness

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/export"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/views"
	"github.com/2beens/fittrack/internal/workouts"
	"github.com/2beens/fittrack/pkg"
)

type SaveWorkoutResponse struct {
	Message string         `json:"message"`
	Entry   workouts.Entry `json:"entry"`
}

type DeleteWorkoutResponse struct {
	DeletedID int64 `json:"deletedId"`
}

type WorkoutsListResponse struct {
	Workouts []workouts.Entry `json:"workouts"`
	Total    int              `json:"total"`
}

func (handler *Handler) HandleListWorkouts(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	entries := handler.workouts.List()
	pkg.WriteJSON(w, WorkoutsListResponse{
		Workouts: entries,
		Total:    len(entries),
	}, http.StatusOK)
}

func (handler *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.history")
	defer span.End()

	history := views.History(handler.workouts.List(), handler.catalog.Merged())
	pkg.WriteJSON(w, history, http.StatusOK)
}

func (handler *Handler) HandleSaveWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.save")
	defer span.End()

	input, ok := decodeNewEntry(w, r)
	if !ok {
		return
	}

	entry, err := handler.workouts.Save(ctx, input)
	if err != nil {
		handler.writeStoreError(w, "save workout", err)
		return
	}

	handler.metricsManager.CounterWorkoutsSaved.Inc()
	handler.metricsManager.GaugeStoredWorkouts.Set(float64(handler.workouts.Len()))
	log.Debugf("workout saved: [%d] [%s] %d sets", entry.ID, entry.Exercise, len(entry.Sets))

	pkg.WriteJSON(w, SaveWorkoutResponse{
		Message: MsgWorkoutSaved,
		Entry:   entry,
	}, http.StatusCreated)
}

func (handler *Handler) HandleReplaceWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.replace")
	defer span.End()

	id, ok := idFromVars(w, r)
	if !ok {
		return
	}

	input, ok := decodeNewEntry(w, r)
	if !ok {
		return
	}

	entry, err := handler.workouts.Replace(ctx, id, input)
	if err != nil {
		handler.writeStoreError(w, fmt.Sprintf("replace workout %d", id), err)
		return
	}

	handler.metricsManager.CounterWorkoutsSaved.Inc()
	log.Debugf("workout replaced: [%d] [%s]", entry.ID, entry.Exercise)

	pkg.WriteJSON(w, SaveWorkoutResponse{
		Message: MsgWorkoutSaved,
		Entry:   entry,
	}, http.StatusOK)
}

func (handler *Handler) HandleDeleteWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	id, ok := idFromVars(w, r)
	if !ok {
		return
	}

	confirmed, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))
	if err := handler.workouts.Delete(ctx, id, confirmed); err != nil {
		handler.writeStoreError(w, fmt.Sprintf("delete workout %d", id), err)
		return
	}

	handler.metricsManager.CounterWorkoutsDeleted.Inc()
	handler.metricsManager.GaugeStoredWorkouts.Set(float64(handler.workouts.Len()))
	log.Debugf("workout deleted: [%d]", id)

	pkg.WriteJSON(w, DeleteWorkoutResponse{DeletedID: id}, http.StatusOK)
}

func (handler *Handler) HandleExportCSV(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.export")
	defer span.End()

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, handler.workouts.List(), handler.catalog.Merged()); err != nil {
		log.Errorf("export csv: %s", err)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set(
		"Content-Disposition",
		fmt.Sprintf("attachment; filename=%s", export.FileName(handler.today())),
	)
	pkg.WriteResponseBytes(w, pkg.ContentType.CSV, buf.Bytes(), http.StatusOK)
}

func (handler *Handler) writeStoreError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, workouts.ErrValidation):
		handler.metricsManager.CounterValidationFailures.Inc()
		log.Debugf("%s: %s", op, err)
		writeValidationError(w, validationMessage(err))
	case errors.Is(err, workouts.ErrEntryNotFound):
		http.Error(w, "workout entry not found", http.StatusNotFound)
	case errors.Is(err, workouts.ErrNotConfirmed):
		http.Error(w, "delete not confirmed, repeat with confirm=true", http.StatusConflict)
	default:
		log.Errorf("%s: %s", op, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// validationMessage strips the generic sentinel prefix so the user only sees
// the actionable part of the message.
func validationMessage(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, workouts.ErrValidation.Error()+": "); i >= 0 {
		return msg[i+len(workouts.ErrValidation.Error())+2:]
	}
	return msg
}

func decodeNewEntry(w http.ResponseWriter, r *http.Request) (workouts.NewEntry, bool) {
	var input workouts.NewEntry
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Debugf("workout input, unmarshal json: %s", err)
		http.Error(w, "invalid workout json", http.StatusBadRequest)
		return workouts.NewEntry{}, false
	}
	return input, true
}

func idFromVars(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := mux.Vars(r)["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return 0, false
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
