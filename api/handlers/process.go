// Package handlers provides HTTP handlers for the Genome Cleaner API.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/noomesk/genome-cleaner/pkg/genomecleaner"
)

// ProcessRequest carries raw sequence content plus processing options.
// MinLength defaults to 20 when omitted.
type ProcessRequest struct {
	Content   string `json:"content"`
	Sanitize  bool   `json:"sanitize"`
	MinLength *int   `json:"min_length,omitempty"`
}

func (req *ProcessRequest) config() genomecleaner.Config {
	cfg := genomecleaner.DefaultConfig()
	cfg.Sanitize = req.Sanitize
	if req.MinLength != nil {
		cfg.MinLength = *req.MinLength
	}
	return cfg
}

func decodeProcessRequest(w http.ResponseWriter, r *http.Request) (*ProcessRequest, bool) {
	var req ProcessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	return &req, true
}

func runPipeline(w http.ResponseWriter, req *ProcessRequest) (*genomecleaner.Report, bool) {
	rep, err := genomecleaner.Process(req.Content, req.config())
	if err != nil {
		var formatErr *genomecleaner.FormatError
		if errors.As(err, &formatErr) {
			writeError(w, http.StatusBadRequest,
				"unrecognized format: first line must start with '>' (FASTA) or '@' (FASTQ)")
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return nil, false
	}
	return rep, true
}

// ProcessHandler runs the full pipeline and returns the complete report.
func ProcessHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeProcessRequest(w, r)
	if !ok {
		return
	}

	rep, ok := runPipeline(w, req)
	if !ok {
		return
	}

	writeJSON(w, rep)
}

// ValidateHandler returns only the per-record validation table.
func ValidateHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeProcessRequest(w, r)
	if !ok {
		return
	}

	rep, ok := runPipeline(w, req)
	if !ok {
		return
	}

	writeJSON(w, map[string]interface{}{
		"records": rep.Records,
	})
}

// SummaryHandler returns only the dataset summary.
func SummaryHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeProcessRequest(w, r)
	if !ok {
		return
	}

	rep, ok := runPipeline(w, req)
	if !ok {
		return
	}

	writeJSON(w, map[string]interface{}{
		"summary": rep.Summary,
	})
}

// CleanHandler returns cleaned FASTA text built from the final sequences.
func CleanHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeProcessRequest(w, r)
	if !ok {
		return
	}

	// Cleaning always sanitizes.
	req.Sanitize = true

	rep, ok := runPipeline(w, req)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := genomecleaner.WriteCleaned(w, rep.Records); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// FormatRequest carries raw content for format detection.
type FormatRequest struct {
	Content string `json:"content"`
}

// FormatResponse names the detected format.
type FormatResponse struct {
	Format string `json:"format"`
}

// FormatHandler detects whether content is FASTA or FASTQ.
func FormatHandler(w http.ResponseWriter, r *http.Request) {
	var req FormatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	writeJSON(w, FormatResponse{
		Format: genomecleaner.DetectFormat(req.Content).String(),
	})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.Encode(map[string]string{"error": message})
}
