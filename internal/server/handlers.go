package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/cv-profiler/internal/db"
	"github.com/jonathan/cv-profiler/internal/ingestion"
	"github.com/jonathan/cv-profiler/internal/profile"
	"github.com/jonathan/cv-profiler/internal/types"
)

// maxUploadBytes bounds multipart résumé uploads.
const maxUploadBytes = 10 << 20 // 10 MB

// extractResponse wraps the profile with the persisted run ID when the
// snapshot was saved.
type extractResponse struct {
	RunID   *uuid.UUID               `json:"run_id,omitempty"`
	Profile *types.CompetencyProfile `json:"profile"`
}

// handleExtract runs the extraction pipeline over a submitted résumé.
// Accepts either a JSON body (types.ExtractRequest) or a multipart
// form with a "file" part.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	req, err := decodeExtractRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	text := ingestion.CleanText(req.Text)
	doc := ingestion.NewDocument(req.SourceFile, text, nil, nil)

	result, err := s.builder.Build(r.Context(), doc, profile.Options{
		Section: req.Section,
		Enrich:  req.Enrich,
	})
	if err != nil {
		var emptyErr *profile.EmptyDocumentError
		var sectionErr *profile.UnknownSectionError
		switch {
		case errors.As(err, &emptyErr):
			s.errorResponse(w, http.StatusUnprocessableEntity, (&ErrEmptyDocument{}).Error())
		case errors.As(err, &sectionErr):
			s.errorResponse(w, http.StatusBadRequest, err.Error())
		default:
			log.Printf("Extraction failed: %v", err)
			s.errorResponse(w, http.StatusInternalServerError, "extraction failed")
		}
		return
	}

	if err := result.Validate(); err != nil {
		log.Printf("Profile failed invariant validation: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "profile validation failed")
		return
	}

	resp := extractResponse{Profile: result}
	if req.Save {
		if s.db == nil {
			s.errorResponse(w, http.StatusServiceUnavailable, "snapshot storage is not configured")
			return
		}
		runID, err := s.db.CreateRun(r.Context(), result.SourceFile)
		if err != nil {
			log.Printf("Failed to create run: %v", err)
			s.errorResponse(w, http.StatusInternalServerError, "failed to persist run")
			return
		}
		if err := s.db.SaveProfile(r.Context(), runID, result); err != nil {
			log.Printf("Failed to save profile: %v", err)
			s.errorResponse(w, http.StatusInternalServerError, "failed to persist profile")
			return
		}
		confidence := result.OverallConfidence
		if err := s.db.CompleteRun(r.Context(), runID, db.StatusCompleted, &confidence); err != nil {
			log.Printf("Failed to complete run: %v", err)
		}
		resp.RunID = &runID
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// decodeExtractRequest reads either request encoding into an ExtractRequest.
func decodeExtractRequest(r *http.Request) (*types.ExtractRequest, error) {
	var req types.ExtractRequest

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return nil, &ErrValidation{Field: "file", Message: "invalid multipart form"}
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			return nil, &ErrValidation{Field: "file", Message: "missing file part"}
		}
		defer file.Close()

		content, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
		if err != nil {
			return nil, &ErrValidation{Field: "file", Message: "failed to read file"}
		}

		req.Text = string(content)
		req.SourceFile = header.Filename
		req.Section = r.FormValue("section")
		req.Save, _ = strconv.ParseBool(r.FormValue("save"))
		req.Enrich, _ = strconv.ParseBool(r.FormValue("enrich"))
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, &ErrValidation{Field: "body", Message: "invalid JSON body"}
		}
	}

	if section := r.URL.Query().Get("section"); section != "" {
		req.Section = section
	}

	if err := req.Validate(); err != nil {
		return nil, &ErrValidation{Field: "request", Message: err.Error()}
	}
	return &req, nil
}

// handleGetProfile returns a saved profile snapshot by run ID.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "snapshot storage is not configured")
		return
	}

	runID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid run ID")
		return
	}

	run, err := s.db.GetRun(r.Context(), runID)
	if err != nil {
		log.Printf("Failed to get run: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to load run")
		return
	}
	if run == nil {
		notFound := &ErrRunNotFound{RunID: runID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	snapshot, err := s.db.GetProfile(r.Context(), runID)
	if err != nil {
		log.Printf("Failed to get profile: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to load profile")
		return
	}
	if snapshot == nil {
		notFound := &ErrProfileNotFound{RunID: runID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, snapshot)
}

// handleListRuns returns recent extraction runs, optionally filtered by
// source file substring and status.
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "snapshot storage is not configured")
		return
	}

	filters := db.RunFilters{
		SourceFile: r.URL.Query().Get("source_file"),
		Status:     r.URL.Query().Get("status"),
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			s.errorResponse(w, http.StatusBadRequest, "invalid limit")
			return
		}
		filters.Limit = limit
	}

	runs, err := s.db.ListRuns(r.Context(), filters)
	if err != nil {
		log.Printf("Failed to list runs: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to list runs")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"runs": runs})
}

// handleToken exchanges the operator password for a bearer token.
func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	var req types.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		validationErr := &ErrValidation{Field: "password", Message: err.Error()}
		s.errorResponse(w, HTTPStatus(validationErr), validationErr.Error())
		return
	}

	if !s.passwordConfig.VerifyOperator(req.Password) {
		invalid := &ErrInvalidCredentials{}
		s.errorResponse(w, HTTPStatus(invalid), invalid.Error())
		return
	}

	token, err := s.jwtService.GenerateToken(uuid.New())
	if err != nil {
		log.Printf("Failed to generate token: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	s.jsonResponse(w, http.StatusOK, types.TokenResponse{Token: token})
}
