package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bakusoq/internal/domain/entities"
	"bakusoq/internal/usecase/interfaces"
)

var (
	ErrUnsupportedExportFormat = errors.New("unsupported export format")
	ErrNothingToExport         = errors.New("demo session has no estimate yet")
)

// ExportFormat is the document type of an export.
type ExportFormat string

const (
	ExportFormatXLSX ExportFormat = "xlsx"
	ExportFormatPDF  ExportFormat = "pdf"
)

// ParseExportFormat defaults an empty value to xlsx.
func ParseExportFormat(raw string) (ExportFormat, error) {
	f := ExportFormat(strings.ToLower(strings.TrimSpace(raw)))
	switch f {
	case "":
		return ExportFormatXLSX, nil
	case ExportFormatXLSX, ExportFormatPDF:
		return f, nil
	}
	return "", ErrUnsupportedExportFormat
}

// ExportResult is a rendered document ready to be served.
type ExportResult struct {
	FileName    string
	ContentType string
	Content     []byte
}

type IExportUseCase interface {
	ExportEstimate(ctx context.Context, estimateID string, format ExportFormat) (ExportResult, error)
	ExportDemoSession(ctx context.Context, sessionID string, format ExportFormat) (ExportResult, error)
}

type ExportUseCase struct {
	estimates IEstimateUseCase
	demo      IDemoUseCase
	renderers map[ExportFormat]interfaces.IEstimateRenderer
}

var _ IExportUseCase = (*ExportUseCase)(nil)

func NewExportUseCase(
	estimates IEstimateUseCase,
	demo IDemoUseCase,
	renderers map[ExportFormat]interfaces.IEstimateRenderer,
) *ExportUseCase {
	return &ExportUseCase{estimates: estimates, demo: demo, renderers: renderers}
}

func (u *ExportUseCase) ExportEstimate(ctx context.Context, estimateID string, format ExportFormat) (ExportResult, error) {
	r, err := u.renderer(format)
	if err != nil {
		return ExportResult{}, err
	}
	e, err := u.estimates.GetByID(ctx, estimateID)
	if err != nil {
		return ExportResult{}, err
	}
	return render(r, e)
}

func (u *ExportUseCase) ExportDemoSession(ctx context.Context, sessionID string, format ExportFormat) (ExportResult, error) {
	r, err := u.renderer(format)
	if err != nil {
		return ExportResult{}, err
	}
	s, err := u.demo.Get(ctx, sessionID)
	if err != nil {
		return ExportResult{}, err
	}
	if s.Step != entities.DemoStepResult || s.Estimate == nil {
		return ExportResult{}, ErrNothingToExport
	}
	return render(r, *s.Estimate)
}

func (u *ExportUseCase) renderer(format ExportFormat) (interfaces.IEstimateRenderer, error) {
	r, ok := u.renderers[format]
	if !ok || r == nil {
		return nil, ErrUnsupportedExportFormat
	}
	return r, nil
}

func render(r interfaces.IEstimateRenderer, e entities.Estimate) (ExportResult, error) {
	content, err := r.Render(e)
	if err != nil {
		return ExportResult{}, fmt.Errorf("render estimate %s: %w", e.ID, err)
	}
	return ExportResult{
		FileName:    exportFileName(e, r.Extension()),
		ContentType: r.ContentType(),
		Content:     content,
	}, nil
}

func exportFileName(e entities.Estimate, ext string) string {
	id := e.ID
	if len(id) > 8 {
		id = id[:8]
	}
	if id == "" {
		id = "draft"
	}
	return fmt.Sprintf("bakusoq-estimate-%s-%s.%s", e.CreatedAt.Format("20060102"), id, ext)
}
