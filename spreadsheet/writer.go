// Package spreadsheet writes weather records to single-sheet xlsx workbooks.
package spreadsheet

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/hmichalski/cbre-programming-task/models"
)

// SheetName is the only sheet of every workbook written here.
const SheetName = "Sheet1"

// Headers is the fixed first row.
var Headers = []string{
	"City",
	"Temperature (Celsius)",
	"Temperature (Fahrenheit)",
	"Description",
	"Humidity (%)",
	"Wind Speed (m/s)",
	"Timestamp",
}

// FileName returns weather_data_<city>.xlsx with characters that are reserved
// on common file systems replaced by underscores.
func FileName(city string) string {
	safe := strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f || strings.ContainsRune(`/\:*?"<>|`, r) {
			return '_'
		}
		return r
	}, city)
	return fmt.Sprintf("weather_data_%s.xlsx", safe)
}

// Write saves record into dir and returns the file path. An existing file of
// the same name is replaced. A nil record is logged and ignored.
func Write(record *models.WeatherRecord, dir string, logger *zap.Logger) (string, error) {
	if record == nil {
		logger.Info("no weather data provided, spreadsheet not generated")
		return "", nil
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logger.Warn("close workbook", zap.Error(err))
		}
	}()

	header := make([]interface{}, len(Headers))
	for i, h := range Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return "", fmt.Errorf("write header row: %w", err)
	}

	row := []interface{}{
		record.City,
		record.TemperatureC,
		record.TemperatureF(),
		record.Description,
		record.Humidity,
		record.WindSpeed,
		record.Timestamp(),
	}
	if err := f.SetSheetRow(SheetName, "A2", &row); err != nil {
		return "", fmt.Errorf("write data row: %w", err)
	}

	path := filepath.Join(dir, FileName(record.City))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save %s: %w", path, err)
	}

	logger.Debug("spreadsheet written", zap.String("path", path), zap.String("city", record.City))
	return path, nil
}
