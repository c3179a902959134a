package api

import (
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"student-form/pkg/middleware"
	"student-form/pkg/models"
	"student-form/pkg/services"
	"student-form/pkg/validation"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page templates
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

// Handlers contains all HTTP handlers for the form
type Handlers struct {
	studentService services.StudentService
	logger         *zap.Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(studentService services.StudentService, logger *zap.Logger) *Handlers {
	return &Handlers{
		studentService: studentService,
		logger:         logger,
	}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

type formInput struct {
	Name     string
	Label    string
	Type     string
	Pattern  string
	Required bool
	Value    string
	Error    string
}

type formPage struct {
	Inputs  []formInput
	Records []models.Record
	Query   string
	Alert   string
}

var fieldLabels = map[models.Field]string{
	models.FieldID:       "Mã sinh viên",
	models.FieldFullName: "Họ và tên",
	models.FieldPhone:    "Số điện thoại",
	models.FieldEmail:    "Email",
}

func (h *Handlers) renderForm(c *gin.Context, status int, sess *services.Session, draft models.FormDraft, alert string) {
	query := c.Query("q")
	page := formPage{
		Records: h.studentService.Search(sess, query),
		Query:   query,
		Alert:   alert,
	}
	for _, f := range models.Fields {
		inputType := "text"
		if f == models.FieldEmail {
			inputType = "email"
		}
		page.Inputs = append(page.Inputs, formInput{
			Name:     string(f),
			Label:    fieldLabels[f],
			Type:     inputType,
			Pattern:  validation.Pattern(f),
			Required: validation.Required(f),
			Value:    draft.Values.Get(f),
			Error:    draft.Errors.Get(f),
		})
	}
	c.HTML(status, "form.html", page)
}

// ShowForm renders the form, the session's draft and the filtered table
func (h *Handlers) ShowForm(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	h.renderForm(c, http.StatusOK, sess, sess.Draft(), "")
}

// SubmitForm handles the classic HTML form post
func (h *Handlers) SubmitForm(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	var values models.FormValues
	if err := c.ShouldBind(&values); err != nil {
		h.logger.Warn("Error binding form", zap.Error(err))
		c.String(http.StatusBadRequest, "invalid form")
		return
	}

	_, draft, err := h.studentService.Submit(sess, &values)
	switch {
	case err == nil:
		c.Redirect(http.StatusSeeOther, "/")
	case errors.Is(err, services.ErrInvalidDraft):
		h.renderForm(c, http.StatusUnprocessableEntity, sess, draft, "")
	case errors.Is(err, services.ErrDuplicateRecord), errors.Is(err, services.ErrStoreFull):
		h.renderForm(c, http.StatusConflict, sess, draft, services.AlertMessage(err))
	default:
		c.String(http.StatusInternalServerError, "internal error")
	}
}

type validateRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// ValidateField records a keystroke and returns the field's error
func (h *Handlers) ValidateField(c *gin.Context) {
	var req validateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
		return
	}
	field, err := models.ParseField(req.Field)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft := h.studentService.UpdateField(middleware.CurrentSession(c), field, req.Value)
	c.JSON(http.StatusOK, gin.H{
		"field":  field,
		"error":  draft.Errors.Get(field),
		"errors": draft.Errors,
	})
}

// CreateStudent is the JSON counterpart of SubmitForm
func (h *Handlers) CreateStudent(c *gin.Context) {
	var values models.FormValues
	if err := c.ShouldBindJSON(&values); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
		return
	}

	rec, draft, err := h.studentService.Submit(middleware.CurrentSession(c), &values)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, rec)
	case errors.Is(err, services.ErrInvalidDraft):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "errors": draft.Errors})
	case errors.Is(err, services.ErrDuplicateRecord), errors.Is(err, services.ErrStoreFull):
		c.JSON(http.StatusConflict, gin.H{"error": services.AlertMessage(err)})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// SearchStudents returns the records matching ?q=
func (h *Handlers) SearchStudents(c *gin.Context) {
	query := c.Query("q")
	records := h.studentService.Search(middleware.CurrentSession(c), query)
	c.JSON(http.StatusOK, gin.H{
		"query":   query,
		"count":   len(records),
		"records": records,
	})
}
