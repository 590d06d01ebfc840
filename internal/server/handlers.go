package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/limaJavier/scheduling/pkg/export"
	"github.com/limaJavier/scheduling/pkg/model"
	log "github.com/sirupsen/logrus"
)

type scheduleResponse struct {
	Scenarios []model.Scenario `json:"scenarios"`
	Count     int              `json:"count"`
}

type electivesRequest struct {
	Electives []model.Elective     `json:"electives"`
	Occupied  []model.TimeInterval `json:"occupied"`
}

// schedule answers with every scenario for the input in the body, as JSON or, with ?format=csv, as CSV rows
func (server *Server) schedule(w http.ResponseWriter, r *http.Request) {
	logger := log.WithFields(log.Fields{"route": "schedule"})

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	input, err := model.InputFromBytes(body)
	if err != nil {
		logger.Debugf("Rejected input: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	scenarios, err := server.scheduler.Build(input)
	if err != nil {
		logger.Errorf("Could not build scenarios: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		w.Header().Set("Content-Type", "text/csv")
		if err := export.WriteScenarios(w, scenarios, input.Courses); err != nil {
			logger.Errorf("Could not write scenarios: %v", err)
		}
		return
	}

	writeJson(w, logger, scheduleResponse{Scenarios: scenarios, Count: len(scenarios)})
}

func (server *Server) electives(w http.ResponseWriter, r *http.Request) {
	logger := log.WithFields(log.Fields{"route": "electives"})

	var request electivesRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	available := model.FilterAvailableElectives(request.Electives, request.Occupied)
	if available == nil {
		available = []model.Elective{}
	}
	writeJson(w, logger, available)
}

func writeJson(w http.ResponseWriter, logger *log.Entry, value any) {
	bytes, err := json.Marshal(value)
	if err != nil {
		logger.Errorf("Could not marshal response: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(bytes)
}
