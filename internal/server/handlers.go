package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/jobradar/internal/db"
	"github.com/jonathan/jobradar/internal/ingestion"
	"github.com/jonathan/jobradar/internal/types"
)

var validate = validator.New()

// CaptureJobRequest is the body of POST /jobs.
type CaptureJobRequest struct {
	Source   string `json:"source" validate:"max=100"`
	URL      string `json:"url" validate:"omitempty,url"`
	Title    string `json:"title" validate:"required,max=300"`
	Company  string `json:"company" validate:"max=300"`
	Location string `json:"location" validate:"max=300"`
	JDText   string `json:"jd_text" validate:"required"`
}

// ExtractRequest is the body of POST /extract (ad-hoc, nothing persisted).
type ExtractRequest struct {
	Title  string `json:"title" validate:"max=300"`
	JDText string `json:"jd_text" validate:"required"`
}

// validationMessage flattens validator output into a readable message.
func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if errs, ok := err.(validator.ValidationErrors); ok {
		fieldErrs = errs
	} else {
		return err.Error()
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		parts = append(parts, strings.ToLower(fe.Field())+" failed on '"+fe.Tag()+"'")
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (s *Server) handleCaptureJob(w http.ResponseWriter, r *http.Request) {
	var req CaptureJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	job := &types.Job{
		Source:   req.Source,
		URL:      req.URL,
		Title:    req.Title,
		Company:  req.Company,
		Location: req.Location,
		JDText:   ingestion.Prepare(req.JDText),
	}
	if job.JDText == "" {
		s.errorResponse(w, http.StatusBadRequest, "jd_text is empty after cleanup")
		return
	}

	created, err := s.db.CreateJob(r.Context(), job)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, created)
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	job, err := s.db.GetJob(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, job)
}

func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	filter := db.JobFilter{
		Source:     r.URL.Query().Get("source"),
		RoleFamily: r.URL.Query().Get("role_family"),
		Limit:      queryInt(r, "limit", 50),
		Offset:     queryInt(r, "offset", 0),
	}

	jobs, total, err := s.db.ListJobs(r.Context(), filter)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if jobs == nil {
		jobs = []*types.Job{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"jobs":  jobs,
		"total": total,
	})
}

func (s *Server) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	if err := s.db.DeleteJob(r.Context(), jobID); err != nil {
		if strings.Contains(err.Error(), "not found") {
			s.errorResponse(w, http.StatusNotFound, "Job not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleExtractJob runs the engine over a stored job and replaces its
// extraction atomically.
func (s *Server) handleExtractJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	job, err := s.db.GetJob(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	result := s.engine.ExtractJob(r.Context(), job)

	stored, err := s.db.ReplaceExtraction(r.Context(), job.ID, result)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	if result.RoleFamily != "" {
		family := types.RoleFamily(result.RoleFamily)
		seniority := types.Seniority(result.Seniority)
		if types.ValidRoleFamily(family) && types.ValidSeniority(seniority) {
			if err := s.db.UpdateJobRole(r.Context(), job.ID, family, seniority); err != nil {
				// Extraction is already stored; role denorm failing is not fatal.
				s.jsonResponse(w, http.StatusOK, stored)
				return
			}
		}
	}

	s.jsonResponse(w, http.StatusOK, stored)
}

func (s *Server) handleGetExtraction(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	extraction, err := s.db.GetExtraction(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if extraction == nil {
		s.errorResponse(w, http.StatusNotFound, "No extraction for job")
		return
	}

	s.jsonResponse(w, http.StatusOK, extraction)
}

// handleAdhocExtract extracts from request-supplied text without persistence.
func (s *Server) handleAdhocExtract(w http.ResponseWriter, r *http.Request) {
	var req ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	result := s.engine.Extract(r.Context(), req.Title, ingestion.Prepare(req.JDText))
	s.jsonResponse(w, http.StatusOK, result)
}

// queryInt parses an integer query parameter with a default.
func queryInt(r *http.Request, key string, defaultValue int) int {
	if value := r.URL.Query().Get(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n >= 0 {
			return n
		}
	}
	return defaultValue
}
