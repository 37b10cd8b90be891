package csvexport

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erudieto-brandon/cofrat-app/internal/domain"
)

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)

	assert.Len(t, row, 11)
	assert.Equal(t, "Data", row[0])
	assert.Equal(t, "Hora", row[1])
	assert.Equal(t, "Criado em", row[10])
}

func TestWriteAppointments(t *testing.T) {
	date := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC)

	appt := domain.Appointment{
		ID:           uuid.New(),
		Date:         &date,
		RawDate:      "01/02/2025",
		Time:         "08:00",
		Specialty:    "Fisioterapia",
		Doctor:       "Dr. Carlos Mendes",
		Patient:      "MARIA SILVA SANTOS",
		PatientPhone: "(11) 99999-1234",
		Insurance:    "Unimed",
		Event:        "CONSULTA",
		RecordNumber: "12345",
		Status:       domain.AppointmentAguardando,
		CreatedAt:    createdAt,
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteAppointments([]domain.Appointment{appt}))
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)

	assert.Len(t, row, 11)
	assert.Equal(t, "01/02/2025", row[0])
	assert.Equal(t, "08:00", row[1])
	assert.Equal(t, "Fisioterapia", row[2])
	assert.Equal(t, "Dr. Carlos Mendes", row[3])
	assert.Equal(t, "MARIA SILVA SANTOS", row[4])
	assert.Equal(t, "(11) 99999-1234", row[5])
	assert.Equal(t, "Unimed", row[6])
	assert.Equal(t, "CONSULTA", row[7])
	assert.Equal(t, "12345", row[8])
	assert.Equal(t, "aguardando", row[9])
	assert.Equal(t, "2025-02-01T08:00:00Z", row[10])
}

func TestWriteAppointments_UnparsedDate(t *testing.T) {
	appt := domain.Appointment{
		RawDate:   "Data: 01/02/2025",
		Time:      "09:30",
		Patient:   "JOSE ALMEIDA",
		Status:    domain.AppointmentConfirmado,
		CreatedAt: time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteAppointments([]domain.Appointment{appt}))
	w.Flush()

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)

	// Raw text survives when the date never parsed.
	assert.Equal(t, "Data: 01/02/2025", row[0])
	assert.Empty(t, row[3])
	assert.Equal(t, "confirmado", row[9])
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Agenda Fevereiro", "Agenda_Fevereiro"},
		{"special chars", "Agenda / Fisio (Fev)", "Agenda_Fisio_Fev"},
		{"unicode stripped", "Convênio Agenda", "Conv_nio_Agenda"},
		{"hyphens and underscores preserved", "agenda-fev_2025", "agenda-fev_2025"},
		{"consecutive underscores collapsed", "agenda___fev", "agenda_fev"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeFilename(tt.input))
		})
	}
}

func TestBuildFilename(t *testing.T) {
	today := time.Now().Format("2006-01-02")

	assert.Equal(t, "Agenda_Fisio_"+today+".csv", BuildFilename("Agenda Fisio"))
	assert.Equal(t, "agenda_"+today+".csv", BuildFilename(""))
}
