package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/ersonp/dex/internal/domain/entities"
	"github.com/ersonp/dex/internal/domain/ports"
)

// ErrNothingToExport is returned when the request yields no records.
var ErrNothingToExport = errors.New("no creatures to export")

// ExportHandler runs a browse page or search and writes the records out.
type ExportHandler struct {
	catalog   *CatalogHandler
	exporters map[string]ports.Exporter
}

// NewExportHandler creates a new export handler with the given formats.
func NewExportHandler(catalog *CatalogHandler, exporters ...ports.Exporter) *ExportHandler {
	byFormat := make(map[string]ports.Exporter, len(exporters))
	for _, e := range exporters {
		byFormat[e.Format()] = e
	}
	return &ExportHandler{
		catalog:   catalog,
		exporters: byFormat,
	}
}

// ExportRequest selects what to export. A non-empty Query takes precedence
// over Page.
type ExportRequest struct {
	Page   int
	Query  string
	Format string
}

// ExportResult contains the outcome of an export.
type ExportResult struct {
	View    entities.View
	Records []entities.Creature
}

// Formats returns the supported format names, sorted.
func (h *ExportHandler) Formats() []string {
	formats := make([]string, 0, len(h.exporters))
	for f := range h.exporters {
		formats = append(formats, f)
	}
	sort.Strings(formats)
	return formats
}

// Handle fetches the requested records and writes them to w.
func (h *ExportHandler) Handle(ctx context.Context, req ExportRequest, w io.Writer) (*ExportResult, error) {
	exporter, ok := h.exporters[req.Format]
	if !ok {
		return nil, fmt.Errorf("invalid format %q, valid formats: %v", req.Format, h.Formats())
	}

	var (
		result *CatalogResult
		err    error
	)
	if req.Query != "" {
		result, err = h.catalog.Search(ctx, req.Query)
	} else {
		result, err = h.catalog.Browse(ctx, req.Page)
	}
	if err != nil {
		return nil, err
	}

	records := result.View.Records
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNothingToExport, result.View.Status.Message())
	}

	if err := exporter.Export(w, records); err != nil {
		return nil, fmt.Errorf("exporting %s: %w", req.Format, err)
	}

	return &ExportResult{
		View:    result.View,
		Records: records,
	}, nil
}
