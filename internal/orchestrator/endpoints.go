package orchestrator

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"parallel-pi/internal/auth"
	"parallel-pi/internal/integrator"
	"parallel-pi/internal/logger"

	"github.com/gorilla/mux"
)

type EstimateRequest struct {
	N       uint64 `json:"n"`
	Workers int    `json:"workers"`
}

type EstimateResponse struct {
	Pi             float64 `json:"pi"`
	Integral       float64 `json:"integral"`
	N              uint64  `json:"n"`
	Workers        int     `json:"workers"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
	Warning        string  `json:"warning,omitempty"`
}

// NewRouter wires the public auth endpoints and the protected estimation API.
func NewRouter() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/v1/register", auth.Register).Methods("POST")
	r.HandleFunc("/api/v1/login", auth.Login).Methods("POST")

	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(auth.AuthMiddleware)
	protected.HandleFunc("/pi", HandleEstimate).Methods("POST")
	protected.HandleFunc("/partition", HandlePartition).Methods("GET")

	return r
}

func HandleEstimate(w http.ResponseWriter, r *http.Request) {
	var request EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	result, err := Compute(r.Context(), request.N, request.Workers)
	if err != nil {
		if errors.Is(err, integrator.ErrInvalidArgument) || errors.Is(err, ErrRequestTooLarge) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		logger.LogERROR(fmt.Sprintf("Estimation failed: %v", err))
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	response := EstimateResponse{
		Pi:             result.Pi,
		Integral:       result.Integral,
		N:              result.N,
		Workers:        result.Workers,
		ElapsedSeconds: result.Elapsed.Seconds(),
	}
	if err := result.Err(); err != nil {
		// encoding/json rejects NaN
		logger.LogERROR(err.Error())
		response.Pi = 0
		response.Integral = 0
		response.Warning = err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.LogERROR(fmt.Sprintf("Failed to encode response: %v", err))
	}
}

func HandlePartition(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	n, err := strconv.ParseUint(query.Get("n"), 10, 64)
	if err != nil {
		http.Error(w, "invalid n: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}
	workers, err := strconv.Atoi(query.Get("workers"))
	if err != nil {
		http.Error(w, "invalid workers: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	if err := CheckLimits(n, workers); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	tasks, err := integrator.Partition(n, workers)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(tasks); err != nil {
		logger.LogERROR(fmt.Sprintf("Failed to encode response: %v", err))
	}
}
