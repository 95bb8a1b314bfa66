package import_feature

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// readRows turns a spreadsheet into the ordered data rows, header excluded.
// Fully blank lines are skipped but keep their place in the numbering.
func readRows(file io.Reader, filename string) ([]Row, error) {
	lower := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(lower, ".csv"):
		return parseCSV(file)
	case strings.HasSuffix(lower, ".xlsx"), strings.HasSuffix(lower, ".xls"):
		return parseExcel(file)
	default:
		return nil, fmt.Errorf("unsupported file format")
	}
}

func normalizeHeaders(raw []string) []string {
	headers := make([]string, len(raw))
	for i, h := range raw {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}
	return headers
}

// makeRow maps one record onto the headers. ok is false when every cell
// is blank.
func makeRow(headers []string, record []string, num int) (Row, bool) {
	cells := make(map[string]string, len(headers))
	empty := true
	for i, header := range headers {
		if header == "" {
			continue
		}
		var value string
		if i < len(record) {
			value = record[i]
		}
		if strings.TrimSpace(value) != "" {
			empty = false
		}
		cells[header] = value
	}
	return Row{Num: num, Cells: cells}, !empty
}

func parseCSV(file io.Reader) ([]Row, error) {
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	rawHeaders, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}
	headers := normalizeHeaders(rawHeaders)

	var rows []Row
	num := 1 // header is row 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}

		num++
		if row, ok := makeRow(headers, record, num); ok {
			rows = append(rows, row)
		}
	}

	return rows, nil
}

func parseExcel(file io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in Excel file")
	}

	all, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read Excel rows: %w", err)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("Excel file is empty")
	}

	headers := normalizeHeaders(all[0])

	var rows []Row
	for i := 1; i < len(all); i++ {
		if row, ok := makeRow(headers, all[i], i+1); ok {
			rows = append(rows, row)
		}
	}

	return rows, nil
}
