package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/tutor-classes-api/internal/dto"
	"github.com/noah-isme/tutor-classes-api/internal/models"
	"github.com/noah-isme/tutor-classes-api/internal/service"
	appErrors "github.com/noah-isme/tutor-classes-api/pkg/errors"
	"github.com/noah-isme/tutor-classes-api/pkg/response"
)

type classSearchService interface {
	Search(ctx context.Context, filter models.SearchFilter) ([]models.TutorWithClass, error)
	Subjects(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int, error)
}

type classRegistrationService interface {
	Register(ctx context.Context, req dto.RegisterClassRequest) (string, error)
}

type classExportService interface {
	Export(ctx context.Context, filter models.SearchFilter, format string) (*service.ExportFile, error)
}

// ClassHandler wires class search and registration to HTTP routes.
type ClassHandler struct {
	search   classSearchService
	register classRegistrationService
	export   classExportService
}

// NewClassHandler constructs a ClassHandler.
func NewClassHandler(search classSearchService, register classRegistrationService, export classExportService) *ClassHandler {
	return &ClassHandler{search: search, register: register, export: export}
}

func searchFilterFromQuery(c *gin.Context) models.SearchFilter {
	return models.SearchFilter{
		Subject: c.Query("subject"),
		WeekDay: c.Query("week_day"),
		Time:    c.Query("time"),
	}
}

// Search godoc
// @Summary Search classes
// @Tags Classes
// @Produce json
// @Param subject query string true "Subject"
// @Param week_day query int true "Weekday, 0 = Sunday"
// @Param time query string true "Time of day as HH:MM"
// @Success 200 {array} models.TutorWithClass
// @Failure 400 {object} response.ErrorBody
// @Router /classes [get]
func (h *ClassHandler) Search(c *gin.Context) {
	items, err := h.search.Search(c.Request.Context(), searchFilterFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// Create godoc
// @Summary Register a tutor with a class and weekly schedule
// @Tags Classes
// @Accept json
// @Param payload body dto.RegisterClassRequest true "Registration payload"
// @Success 201
// @Failure 400 {object} response.ErrorBody
// @Router /classes [post]
func (h *ClassHandler) Create(c *gin.Context) {
	var req dto.RegisterClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid class payload"))
		return
	}
	if _, err := h.register.Register(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c)
}

// Export godoc
// @Summary Download search results
// @Tags Classes
// @Produce text/csv
// @Produce application/pdf
// @Param subject query string true "Subject"
// @Param week_day query int true "Weekday, 0 = Sunday"
// @Param time query string true "Time of day as HH:MM"
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Failure 400 {object} response.ErrorBody
// @Router /classes/export [get]
func (h *ClassHandler) Export(c *gin.Context) {
	file, err := h.export.Export(c.Request.Context(), searchFilterFromQuery(c), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Body)
}

// Count godoc
// @Summary Count registered classes
// @Tags Classes
// @Produce json
// @Success 200 {object} dto.ClassCount
// @Router /classes/count [get]
func (h *ClassHandler) Count(c *gin.Context) {
	total, err := h.search.Count(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.ClassCount{Total: total})
}

// Subjects godoc
// @Summary List subjects on offer
// @Tags Classes
// @Produce json
// @Success 200 {array} string
// @Router /subjects [get]
func (h *ClassHandler) Subjects(c *gin.Context) {
	subjects, err := h.search.Subjects(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, subjects)
}
