package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"linkfeed_srv/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

const feedSheet = "Feed"

// FeedExporter renders the feed into a downloadable file
type FeedExporter interface {
	Export(ctx context.Context, links []models.Link) (*bytes.Buffer, string, error)
	GetMimeType() string
	GetFileExtension() string
}

// ExcelFeedExporter writes the feed as an xlsx workbook
type ExcelFeedExporter struct {
	logger *logrus.Logger
	now    func() time.Time
}

// NewExcelFeedExporter creates an xlsx feed exporter
func NewExcelFeedExporter(logger *logrus.Logger) FeedExporter {
	return &ExcelFeedExporter{logger: logger, now: time.Now}
}

// Export writes one row per link under an ID/URL/Description header
func (g *ExcelFeedExporter) Export(ctx context.Context, links []models.Link) (*bytes.Buffer, string, error) {
	logger := g.logger.WithField("count", len(links))

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", feedSheet); err != nil {
		return nil, "", fmt.Errorf("failed to rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 12,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6E6FA"},
			Pattern: 1,
		},
	})
	if err != nil {
		logger.WithError(err).Warn("Failed to create header style")
	}

	headers := []string{"ID", "URL", "Description"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(feedSheet, cell, header)
		if headerStyle != 0 {
			f.SetCellStyle(feedSheet, cell, cell, headerStyle)
		}
	}

	for rowIndex, link := range links {
		if err := ctx.Err(); err != nil {
			return nil, "", err
		}
		row := []interface{}{link.ID, link.URL, link.Description}
		cell, _ := excelize.CoordinatesToCellName(1, rowIndex+2)
		if err := f.SetSheetRow(feedSheet, cell, &row); err != nil {
			return nil, "", fmt.Errorf("failed to write row %d: %w", rowIndex+2, err)
		}
	}

	f.SetColWidth(feedSheet, "A", "A", 12)
	f.SetColWidth(feedSheet, "B", "C", 40)

	var buffer bytes.Buffer
	if err := f.Write(&buffer); err != nil {
		logger.WithError(err).Error("Failed to write workbook")
		return nil, "", fmt.Errorf("failed to generate workbook: %w", err)
	}

	filename := fmt.Sprintf("feed_%s.%s", g.now().Format("20060102_150405"), g.GetFileExtension())

	logger.WithField("filename", filename).Info("Feed exported")
	return &buffer, filename, nil
}

// GetMimeType returns the MIME type of xlsx files
func (g *ExcelFeedExporter) GetMimeType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// GetFileExtension returns the xlsx file extension
func (g *ExcelFeedExporter) GetFileExtension() string {
	return "xlsx"
}
