package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Spok95/supply-ledger/internal/domain/apperr"
)

const dateLayout = "2006-01-02"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError переводит доменные ошибки в коды ответа;
// всё неизвестное остаётся пятисоткой без деталей наружу.
func writeError(w http.ResponseWriter, log *slog.Logger, err error) {
	var e *apperr.Error
	if errors.As(err, &e) {
		status := http.StatusInternalServerError
		switch e.Code {
		case apperr.CodeValidation:
			status = http.StatusBadRequest
		case apperr.CodeNotFound:
			status = http.StatusNotFound
		case apperr.CodeConflict:
			status = http.StatusConflict
		}
		writeJSON(w, status, map[string]string{"error": e.Message})
		return
	}
	log.Error("request failed", "err", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperr.Validationf("invalid request body")
	}
	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.Validationf("invalid %s", name)
	}
	return id, nil
}

func parseDate(s, field string) (time.Time, error) {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, apperr.Validationf("invalid %s, expected YYYY-MM-DD", field)
	}
	return d, nil
}

// dateRange читает start_date/end_date из query, границы включительно.
func dateRange(r *http.Request) (time.Time, time.Time, error) {
	from, err := parseDate(r.URL.Query().Get("start_date"), "start_date")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := parseDate(r.URL.Query().Get("end_date"), "end_date")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, apperr.Validationf("end_date is before start_date")
	}
	return from, to, nil
}
