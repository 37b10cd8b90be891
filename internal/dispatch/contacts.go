package dispatch

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Contact is one bulk-dispatch recipient loaded from a spreadsheet.
type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

var nameHeaders = []string{"nome", "name", "paciente", "contato"}
var phoneHeaders = []string{"telefone", "phone", "celular", "whatsapp", "numero", "número"}

// LoadContacts reads recipients from the first sheet of an .xlsx file.
// Columns are located by header names (Portuguese or English); without a
// recognizable header row the first two columns are taken as name and phone.
// Phones are normalized; rows whose phone cannot be normalized are skipped
// and reported in the second return value.
func LoadContacts(r io.Reader) ([]Contact, []string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("dispatch.LoadContacts: open spreadsheet: %w", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, nil, fmt.Errorf("dispatch.LoadContacts: read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}

	nameCol, phoneCol, start := 0, 1, 0
	if n, p, ok := findHeaderColumns(rows[0]); ok {
		nameCol, phoneCol = n, p
		start = 1
	}

	var contacts []Contact
	var skipped []string
	for i := start; i < len(rows); i++ {
		row := rows[i]
		name := strings.TrimSpace(cellVal(row, nameCol))
		rawPhone := strings.TrimSpace(cellVal(row, phoneCol))
		if name == "" && rawPhone == "" {
			continue
		}

		phone, err := NormalizePhone(rawPhone)
		if err != nil {
			skipped = append(skipped, fmt.Sprintf("row %d: %s", i+1, rawPhone))
			continue
		}
		contacts = append(contacts, Contact{Name: name, Phone: phone})
	}
	return contacts, skipped, nil
}

func findHeaderColumns(header []string) (nameCol, phoneCol int, ok bool) {
	nameCol, phoneCol = -1, -1
	for i, cell := range header {
		lower := strings.ToLower(strings.TrimSpace(cell))
		if nameCol < 0 && matchesAny(lower, nameHeaders) {
			nameCol = i
		}
		if phoneCol < 0 && matchesAny(lower, phoneHeaders) {
			phoneCol = i
		}
	}
	return nameCol, phoneCol, nameCol >= 0 && phoneCol >= 0
}

func matchesAny(cell string, candidates []string) bool {
	for _, c := range candidates {
		if strings.Contains(cell, c) {
			return true
		}
	}
	return false
}

func cellVal(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}
