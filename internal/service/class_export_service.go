package service

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/noah-isme/tutor-classes-api/internal/models"
	appErrors "github.com/noah-isme/tutor-classes-api/pkg/errors"
	"github.com/noah-isme/tutor-classes-api/pkg/export"
)

var weekDayNames = [...]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

type classSearcher interface {
	Search(ctx context.Context, filter models.SearchFilter) ([]models.TutorWithClass, error)
}

// ExportFile is a rendered search result ready for download.
type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ClassExportService renders search results as downloadable documents.
type ClassExportService struct {
	search classSearcher
}

// NewClassExportService constructs a ClassExportService.
func NewClassExportService(search classSearcher) *ClassExportService {
	return &ClassExportService{search: search}
}

// Export runs the search described by filter and renders it in format.
func (s *ClassExportService) Export(ctx context.Context, filter models.SearchFilter, format string) (*ExportFile, error) {
	f, err := export.ParseFormat(format)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "format must be csv or pdf")
	}

	items, err := s.search.Search(ctx, filter)
	if err != nil {
		return nil, err
	}

	data := export.Dataset{
		Title:   exportTitle(filter),
		Headers: []string{"Tutor", "Subject", "Cost", "WhatsApp", "Bio"},
		Rows:    make([][]string, 0, len(items)),
	}
	for _, item := range items {
		data.Rows = append(data.Rows, []string{
			item.Name,
			item.Subject,
			strconv.FormatFloat(item.Cost, 'f', 2, 64),
			item.Whatsapp,
			item.Bio,
		})
	}

	body, err := export.Render(f, data)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}
	return &ExportFile{
		Filename:    fmt.Sprintf("classes-%s.%s", slug(filter.Subject), f),
		ContentType: f.ContentType(),
		Body:        body,
	}, nil
}

func exportTitle(filter models.SearchFilter) string {
	day := filter.WeekDay
	if n, err := strconv.Atoi(strings.TrimSpace(day)); err == nil && n >= 0 && n < len(weekDayNames) {
		day = weekDayNames[n]
	}
	return fmt.Sprintf("%s tutors on %s at %s", filter.Subject, day, filter.Time)
}

func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
		} else if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		return "export"
	}
	return out
}
