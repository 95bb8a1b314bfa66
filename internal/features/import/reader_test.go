package import_feature

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestReadRowsCSV(t *testing.T) {
	csvData := "Name, Email ,Password,Roles\n" +
		"Alice,alice@example.org,,admin\n" +
		",,,\n" +
		"Bob,bob@example.org,Secret123,\n"

	rows, err := readRows(strings.NewReader(csvData), "users.csv")
	if err != nil {
		t.Fatalf("readRows() error = %v", err)
	}

	// The fully blank line is skipped but keeps its place in the numbering.
	if len(rows) != 2 {
		t.Fatalf("expected 2 data rows, got %d", len(rows))
	}
	if rows[0].Num != 2 {
		t.Errorf("first data row number = %d, want 2", rows[0].Num)
	}
	if rows[1].Num != 4 {
		t.Errorf("second data row number = %d, want 4", rows[1].Num)
	}

	// Headers are trimmed and lower-cased.
	if rows[0].Cells["email"] != "alice@example.org" {
		t.Errorf("email cell = %q", rows[0].Cells["email"])
	}
	if rows[0].Cells["password"] != "" {
		t.Errorf("blank password cell = %q, want empty", rows[0].Cells["password"])
	}
	if rows[1].Cells["password"] != "Secret123" {
		t.Errorf("password cell = %q", rows[1].Cells["password"])
	}
}

func TestReadRowsExcel(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	data := [][]string{
		{"Name", "Email", "Password", "Roles"},
		{"Alice", "alice@example.org", "", "admin"},
		{"Bob", "bob@example.org", "Secret123", "editor; admin"},
	}
	for i, record := range data {
		for j, value := range record {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+1)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				t.Fatalf("SetCellValue: %v", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}

	rows, err := readRows(&buf, "users.xlsx")
	if err != nil {
		t.Fatalf("readRows() error = %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("expected 2 data rows, got %d", len(rows))
	}
	if rows[0].Num != 2 || rows[1].Num != 3 {
		t.Errorf("row numbers = %d, %d; want 2, 3", rows[0].Num, rows[1].Num)
	}
	if rows[1].Cells["roles"] != "editor; admin" {
		t.Errorf("roles cell = %q", rows[1].Cells["roles"])
	}
}

func TestReadRowsUnsupportedFormat(t *testing.T) {
	if _, err := readRows(strings.NewReader("x"), "users.pdf"); err == nil {
		t.Error("expected an error for an unsupported extension")
	}
}

func TestReadRowsRaggedCSV(t *testing.T) {
	// Short records leave trailing columns blank instead of failing.
	csvData := "Name,Email,Password,Roles\nAlice,alice@example.org\n"

	rows, err := readRows(strings.NewReader(csvData), "users.csv")
	if err != nil {
		t.Fatalf("readRows() error = %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 data row, got %d", len(rows))
	}
	if rows[0].Cells["roles"] != "" {
		t.Errorf("missing trailing cell = %q, want empty", rows[0].Cells["roles"])
	}
}
