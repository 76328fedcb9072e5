package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jmtoutdoors/vallas/internal/models"
)

// ExportToCSV exports a record subset to a CSV file
func ExportToCSV(records []models.Billboard, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Code", "Element", "Face", "Format", "Size", "Type", "Zone", "District", "Department", "Commercial Address", "Latitude", "Longitude", "Audience", "Observation"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, b := range records {
		row := []string{
			b.Code,
			b.Element,
			b.Face,
			b.Format,
			b.Size,
			b.Type,
			b.ZoneLabel(),
			b.District,
			b.Department,
			b.CommercialAddress,
			fmt.Sprintf("%v", b.Latitude),
			fmt.Sprintf("%v", b.Longitude),
			fmt.Sprintf("%d", b.Audience),
			b.Observation,
		}

		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return nil
}

// ExportToJSON exports a record subset to a JSON file
func ExportToJSON(records []models.Billboard, path string) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal records to JSON: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}

	return nil
}
