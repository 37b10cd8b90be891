package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/erudieto-brandon/cofrat-app/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row.
var columns = []string{
	"Data",
	"Hora",
	"Especialidade",
	"Médico",
	"Paciente",
	"Telefone",
	"Convênio",
	"Evento",
	"Prontuário",
	"Status",
	"Criado em",
}

// Writer wraps csv.Writer for exporting agenda appointments as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteAppointments converts a batch of appointments to CSV rows and writes them.
func (w *Writer) WriteAppointments(appointments []domain.Appointment) error {
	for i := range appointments {
		row := appointmentToRow(&appointments[i])
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// appointmentToRow converts a single appointment to a string slice. The date
// column prefers the parsed date; raw text is kept when parsing failed.
func appointmentToRow(a *domain.Appointment) []string {
	date := a.RawDate
	if a.Date != nil {
		date = a.Date.Format("02/01/2006")
	}
	return []string{
		date,
		a.Time,
		a.Specialty,
		a.Doctor,
		a.Patient,
		a.PatientPhone,
		a.Insurance,
		a.Event,
		a.RecordNumber,
		string(a.Status),
		a.CreatedAt.Format(time.RFC3339),
	}
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for the Content-Disposition header.
// Format: agenda_{YYYY-MM-DD}.csv, with an optional label prefix.
func BuildFilename(label string) string {
	date := time.Now().Format("2006-01-02")
	sanitized := SanitizeFilename(label)
	if sanitized == "" {
		sanitized = "agenda"
	}
	return fmt.Sprintf("%s_%s.csv", sanitized, date)
}
