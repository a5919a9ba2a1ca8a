package server

import (
	"context"
	"html/template"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/assessgen/internal/assessment"
	"github.com/abhisek/assessgen/internal/logger"
	"github.com/abhisek/assessgen/internal/reference"
)

// maxBodyBytes bounds API request bodies.
const maxBodyBytes = 1 << 20

// Generator produces assessments.
type Generator interface {
	Generate(ctx context.Context, req assessment.Request) (*assessment.Assessment, error)
}

// AssessmentHandler serves the form page and the JSON API.
type AssessmentHandler struct {
	gen Generator
	log *logger.Logger
}

func NewAssessmentHandler(gen Generator, log *logger.Logger) *AssessmentHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &AssessmentHandler{gen: gen, log: log}
}

// pageData feeds templates/index.tmpl.
type pageData struct {
	Grades  []reference.GradeLevel
	Request assessment.Request
	Warning string
	Error   string
	Notice  string
	Result  *assessment.Assessment
	Blocks  template.HTML
}

func newPageData(req assessment.Request) pageData {
	if req.Grade == "" {
		req.Grade = reference.Kindergarten
	}
	return pageData{Grades: reference.AllGrades(), Request: req}
}

// Form renders the empty form.
func (h *AssessmentHandler) Form(c *gin.Context) {
	c.HTML(http.StatusOK, "index.tmpl", newPageData(assessment.Request{}))
}

// Submit handles the form post and renders the results on the same page.
func (h *AssessmentHandler) Submit(c *gin.Context) {
	req := assessment.Request{
		Grade:     reference.GradeLevel(c.PostForm("grade")),
		Narrative: c.PostForm("narrative"),
		Goals:     c.PostForm("goals"),
		Standards: c.PostForm("standards"),
		Lessons:   c.PostForm("lessons"),
	}
	data := newPageData(req)

	if err := req.Validate(); err != nil {
		data.Warning = err.Error()
		c.HTML(http.StatusUnprocessableEntity, "index.tmpl", data)
		return
	}

	a, err := h.gen.Generate(c.Request.Context(), req)
	if err != nil {
		h.log.Error("assessment generation failed", "grade", string(req.Grade), "error", err.Error())
		status, _ := classify(err)
		data.Error = "An error occurred: " + err.Error()
		c.HTML(status, "index.tmpl", data)
		return
	}

	data.Result = a
	data.Blocks = assessment.RenderHTML(a.Blocks)
	if a.Reference.Status == reference.StatusNotMapped {
		data.Notice = "No reference material mapping found for " + string(req.Grade)
	}
	c.HTML(http.StatusOK, "index.tmpl", data)
}

// Grades lists the supported grade levels with their reference documents.
func (h *AssessmentHandler) Grades(c *gin.Context) {
	type gradeJSON struct {
		Grade    string `json:"grade"`
		Document string `json:"document,omitempty"`
	}
	out := make([]gradeJSON, 0, len(reference.AllGrades()))
	for _, g := range reference.AllGrades() {
		id, _ := reference.Resolve(g)
		out = append(out, gradeJSON{Grade: string(g), Document: string(id)})
	}
	c.JSON(http.StatusOK, gin.H{"grades": out})
}

// Create generates an assessment from a JSON request body.
func (h *AssessmentHandler) Create(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	req, err := assessment.DecodeJSON(body)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	a, err := h.gen.Generate(c.Request.Context(), req)
	if err != nil {
		status, code := classify(err)
		if status >= http.StatusInternalServerError {
			h.log.Error("assessment generation failed", "grade", string(req.Grade), "error", err.Error())
		}
		RespondError(c, status, code, err)
		return
	}

	c.JSON(http.StatusOK, assessment.NewExport(a))
}

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
