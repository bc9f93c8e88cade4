package optimize

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-optimizer/internal/extract"
	"resume-optimizer/internal/llm"
	"resume-optimizer/internal/section"
	"resume-optimizer/internal/shared/server/respond"
)

const outputFileName = "optimized_resume.pdf"

// Handler exposes the optimization pipeline over HTTP.
type Handler struct {
	svc            *Service
	maxUploadBytes int64
}

// NewHandler constructs the HTTP handler for the pipeline.
func NewHandler(svc *Service, maxUploadBytes int64) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = 5 << 20
	}
	return &Handler{svc: svc, maxUploadBytes: maxUploadBytes}
}

// RegisterRoutes mounts the optimize endpoint.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/optimize", h.optimize)
}

// optimize handles POST /api/optimize: multipart form with a "resume" file
// and a "jobDescription" text field, answered with a rendered PDF attachment.
func (h *Handler) optimize(c *gin.Context) {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume file is required", nil)
		return
	}
	if fileHeader.Size > h.maxUploadBytes {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume file exceeds size limit", nil)
		return
	}

	jobDescription := strings.TrimSpace(c.PostForm("jobDescription"))
	if jobDescription == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "jobDescription is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to read upload", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxUploadBytes+1))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to read upload", nil)
		return
	}
	if int64(len(data)) > h.maxUploadBytes {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume file exceeds size limit", nil)
		return
	}

	out, err := h.svc.Optimize(c.Request.Context(), Request{
		Document:       data,
		ContentType:    fileHeader.Header.Get("Content-Type"),
		FileName:       fileHeader.Filename,
		JobDescription: jobDescription,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond.PDF(c, outputFileName, out)
}

// respondError maps pipeline errors onto the HTTP error taxonomy.
func (h *Handler) respondError(c *gin.Context, err error) {
	var extErr *extract.ExtractionError
	if errors.As(err, &extErr) {
		respond.Error(c, http.StatusInternalServerError, "extraction_error", extErr.Error(), nil)
		return
	}
	if errors.Is(err, section.ErrSectionNotFound) {
		respond.Error(c, http.StatusUnprocessableEntity, "section_not_found", err.Error(), nil)
		return
	}
	if errors.Is(err, section.ErrSpanNotFound) {
		respond.Error(c, http.StatusUnprocessableEntity, "section_not_found", err.Error(), nil)
		return
	}
	var upErr *llm.UpstreamError
	if errors.As(err, &upErr) {
		respond.Error(c, http.StatusInternalServerError, "upstream_error", upErr.Error(), nil)
		return
	}
	respond.Error(c, http.StatusInternalServerError, "internal", err.Error(), nil)
}
