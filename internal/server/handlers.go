package server

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/fetch"
	"github.com/jonathan/resume-analyzer/internal/keywords"
	"github.com/jonathan/resume-analyzer/internal/matching"
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// maxUploadBytes caps resume uploads at 10 MB.
const maxUploadBytes = 10 << 20

// handleAnalyze accepts a multipart form with a resume document and a job
// description, runs the full pipeline, and returns the combined analysis.
//
// Form fields: resume_file (required), job_text or job_url (one required),
// max_k (optional, default 10), custom_keywords (optional, comma-separated).
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("resume_file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "resume_file is required")
		return
	}
	defer func() { _ = file.Close() }()

	jobText := r.FormValue("job_text")
	jobURL := r.FormValue("job_url")
	if jobText == "" && jobURL == "" {
		s.errorResponse(w, http.StatusBadRequest, "Either job_text or job_url is required")
		return
	}

	opts := s.defaults
	// Copy so per-request keywords never alias the shared defaults slice.
	opts.CustomKeywords = append([]string(nil), s.defaults.CustomKeywords...)
	if raw := r.FormValue("max_k"); raw != "" {
		maxK, err := strconv.Atoi(raw)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "max_k must be an integer")
			return
		}
		opts.MaxKeywords = maxK
	}
	if raw := r.FormValue("custom_keywords"); raw != "" {
		opts.CustomKeywords = append(opts.CustomKeywords, splitKeywordList(raw)...)
	}
	if err := opts.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid analysis options: "+err.Error())
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read resume upload: "+err.Error())
		return
	}
	contentType := resumeContentType(header.Header.Get("Content-Type"), header.Filename, data)

	if jobText == "" {
		jobText, err = fetch.JobText(r.Context(), jobURL, nil)
		if err != nil {
			s.log.Warn("job fetch failed", zap.String("url", jobURL), zap.Error(err))
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
	}

	analysisID := uuid.New().String()

	// The structurer and the keyword extractor are independent; run them
	// in parallel.
	var (
		profile *types.ResumeProfile
		kws     []string
	)
	g, _ := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		profile, err = parsing.ParseResume(data, header.Filename, contentType)
		return err
	})
	g.Go(func() error {
		kws = keywords.Extract(jobText, opts.MaxKeywords, opts.CustomKeywords)
		return nil
	})
	if err := g.Wait(); err != nil {
		s.log.Warn("analysis failed",
			zap.String("analysis_id", analysisID),
			zap.String("filename", header.Filename),
			zap.Error(err),
		)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result := matching.ClassifyAndScore(kws, profile.Skills, profile.Text)

	s.log.Info("analysis complete",
		zap.String("analysis_id", analysisID),
		zap.String("filename", header.Filename),
		zap.Int("keywords", len(kws)),
		zap.Float64("coverage", result.Scores.Coverage),
	)

	s.jsonResponse(w, http.StatusOK, types.AnalyzeResponse{
		AnalysisID:  analysisID,
		Contact:     profile.Contact,
		Keywords:    kws,
		MatchResult: result,
	})
}

// resumeContentType resolves the MIME type of an upload: the declared part
// header wins, then the filename extension, then content sniffing.
func resumeContentType(declared, filename string, data []byte) string {
	declared = strings.TrimSpace(declared)
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	if byExt := mime.TypeByExtension(filepath.Ext(filename)); byExt != "" {
		return byExt
	}
	return http.DetectContentType(data)
}

// splitKeywordList parses a comma-separated keyword list, dropping blanks.
func splitKeywordList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
