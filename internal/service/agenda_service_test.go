package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/erudieto-brandon/cofrat-app/internal/domain"
	"github.com/erudieto-brandon/cofrat-app/internal/port"
	"github.com/erudieto-brandon/cofrat-app/mocks"
)

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	repo := new(mocks.MockAppointmentRepo)
	svc := NewAgendaService(repo)

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), "em_ferias")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	repo.AssertNotCalled(t, "UpdateStatus")
}

func TestUpdateStatusPersistsAndReloads(t *testing.T) {
	repo := new(mocks.MockAppointmentRepo)
	svc := NewAgendaService(repo)

	id := uuid.New()
	updated := &domain.Appointment{ID: id, Status: domain.AppointmentConfirmado}
	repo.On("UpdateStatus", mock.Anything, id, domain.AppointmentConfirmado).Return(nil)
	repo.On("GetByID", mock.Anything, id).Return(updated, nil)

	appt, err := svc.UpdateStatus(context.Background(), id, domain.AppointmentConfirmado)
	require.NoError(t, err)
	assert.Equal(t, domain.AppointmentConfirmado, appt.Status)
	repo.AssertExpectations(t)
}

func TestExportCSVPagesThroughResults(t *testing.T) {
	repo := new(mocks.MockAppointmentRepo)
	svc := NewAgendaService(repo)

	date := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	appointments := []domain.Appointment{
		{Date: &date, Time: "08:00", Patient: "MARIA SILVA", Status: domain.AppointmentAguardando},
		{Date: &date, Time: "09:30", Patient: "JOSE ALMEIDA", Status: domain.AppointmentConfirmado},
	}
	repo.On("List", mock.Anything, mock.MatchedBy(func(f port.AppointmentFilter) bool {
		return f.Offset == 0 && f.Limit == 500
	})).Return(appointments, 2, nil)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(context.Background(), port.AppointmentFilter{}, &buf))

	out := buf.Bytes()
	// BOM prefix for Excel
	require.True(t, bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}))

	r := csv.NewReader(bytes.NewReader(out[3:]))
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Data", rows[0][0])
	assert.Equal(t, "01/02/2025", rows[1][0])
	assert.Equal(t, "MARIA SILVA", rows[1][4])
	assert.Equal(t, "JOSE ALMEIDA", rows[2][4])
}

func TestSummaryDelegates(t *testing.T) {
	repo := new(mocks.MockAppointmentRepo)
	svc := NewAgendaService(repo)

	day := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	summary := &domain.AgendaSummary{
		Total: 3,
		Counts: map[domain.AppointmentStatus]int{
			domain.AppointmentAguardando: 2,
			domain.AppointmentConcluido:  1,
		},
	}
	repo.On("Summary", mock.Anything, day).Return(summary, nil)

	got, err := svc.Summary(context.Background(), day)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Total)
	assert.Equal(t, 2, got.Counts[domain.AppointmentAguardando])
}
