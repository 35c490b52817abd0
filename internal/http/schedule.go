package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"rqsim/internal/job"
	"rqsim/internal/sched"
)

// maxBodyBytes bounds the request body of POST /schedule.
const maxBodyBytes = 1 << 20

// schedule handles POST /schedule
func (s *Server) schedule(w http.ResponseWriter, r *http.Request) {
	log := s.logger.With().
		Str("request_id", middleware.GetReqID(r.Context())).
		Str("run_id", uuid.NewString()).
		Logger()

	var req ScheduleRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request: %w", err))
		return
	}

	alg := s.defaultAlgorithm
	if req.Algorithm != "" {
		a, err := sched.ParseAlgorithm(req.Algorithm)
		if err != nil {
			log.Warn().Err(err).Msg("rejected algorithm")
			writeError(w, http.StatusBadRequest, err)
			return
		}
		alg = a
	}

	if err := job.Validate(req.Tasks); err != nil {
		log.Warn().Err(err).Int("tasks", len(req.Tasks)).Msg("rejected task set")
		writeError(w, http.StatusBadRequest, err)
		return
	}

	res, err := sched.Schedule(req.Tasks, alg)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, sched.ErrInvalidInput) || errors.Is(err, sched.ErrUnknownAlgorithm) {
			status = http.StatusBadRequest
		}
		log.Error().Err(err).Msg("schedule failed")
		writeError(w, status, err)
		return
	}

	log.Debug().
		Str("algorithm", alg.String()).
		Int("tasks", len(req.Tasks)).
		Int("segments", len(res.Segments)).
		Int("makespan", res.Makespan()).
		Msg("scheduled")

	writeJSON(w, http.StatusOK, NewScheduleResponse(res))
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
