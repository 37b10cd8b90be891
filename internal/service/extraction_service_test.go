package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/erudieto-brandon/cofrat-app/internal/config"
	"github.com/erudieto-brandon/cofrat-app/internal/domain"
	"github.com/erudieto-brandon/cofrat-app/internal/port"
	"github.com/erudieto-brandon/cofrat-app/mocks"
)

const sampleScheduleText = `Data: 01/02/2025 Especialidade: Fisioterapia
08:00 Dr. Carlos Mendes
MARIA SILVA SANTOS
Unimed
(11) 99999-1234
CONSULTA
12345

09:30 Dra. Paula Souza
JOSE ALMEIDA COSTA
Bradesco Saude
(21) 98888-5678
RETORNO
67890
`

func newExtractionFixture() (*mocks.MockFileMetaRepo, *mocks.MockAppointmentRepo, *mocks.MockEmailSender, ExtractionService, *domain.FileMeta) {
	fileRepo := new(mocks.MockFileMetaRepo)
	apptRepo := new(mocks.MockAppointmentRepo)
	email := new(mocks.MockEmailSender)

	svc := NewExtractionService(fileRepo, apptRepo, email,
		config.ParserConfig{Strategy: "flexible", RecordPattern: "trailing"},
		config.EmailConfig{ReportTo: "relatorios@cofrat.com.br"})

	meta := &domain.FileMeta{
		ID:           uuid.New(),
		OriginalName: "agenda-fev.pdf",
		Status:       domain.FileStatusExtracting,
	}
	return fileRepo, apptRepo, email, svc, meta
}

func TestProcessTextCreatesAppointments(t *testing.T) {
	fileRepo, apptRepo, email, svc, meta := newExtractionFixture()

	fileRepo.On("GetByID", mock.Anything, meta.ID).Return(meta, nil)
	apptRepo.On("DeleteByFile", mock.Anything, meta.ID).Return(nil)

	var captured []domain.Appointment
	apptRepo.On("CreateBatch", mock.Anything, mock.MatchedBy(func(batch []domain.Appointment) bool {
		captured = batch
		return true
	})).Return(nil)
	fileRepo.On("SetExtractionResult", mock.Anything, meta.ID, domain.FileStatusExtracted, "").Return(nil)
	email.On("SendExtractionReport", mock.Anything, "relatorios@cofrat.com.br", mock.MatchedBy(func(r port.ExtractionReport) bool {
		return r.FileName == "agenda-fev.pdf" && r.RecordCount == 2 && r.FailedReason == ""
	})).Return(nil)

	result, err := svc.ProcessText(context.Background(), ExtractionInput{FileID: meta.ID, Text: sampleScheduleText})
	require.NoError(t, err)
	assert.Equal(t, 2, result.RecordCount)

	require.Len(t, captured, 2)
	first := captured[0]
	assert.Equal(t, meta.ID, *first.FileID)
	assert.Equal(t, "08:00", first.Time)
	assert.Equal(t, "Dr. Carlos Mendes", first.Doctor)
	assert.Equal(t, "MARIA SILVA SANTOS", first.Patient)
	assert.Equal(t, domain.AppointmentAguardando, first.Status)
	require.NotNil(t, first.Date)
	assert.Equal(t, "01/02/2025", first.Date.Format("02/01/2006"))
	assert.NotEmpty(t, first.Sources)

	fileRepo.AssertExpectations(t)
	apptRepo.AssertExpectations(t)
	email.AssertExpectations(t)
}

func TestProcessTextEmptyText(t *testing.T) {
	fileRepo, _, email, svc, meta := newExtractionFixture()

	fileRepo.On("GetByID", mock.Anything, meta.ID).Return(meta, nil)
	fileRepo.On("SetExtractionResult", mock.Anything, meta.ID, domain.FileStatusFailed, mock.Anything).Return(nil)
	email.On("SendExtractionReport", mock.Anything, "relatorios@cofrat.com.br", mock.MatchedBy(func(r port.ExtractionReport) bool {
		return r.FailedReason != ""
	})).Return(nil)

	_, err := svc.ProcessText(context.Background(), ExtractionInput{FileID: meta.ID, Text: "   \n  "})
	assert.ErrorIs(t, err, domain.ErrEmptyText)
	fileRepo.AssertExpectations(t)
}

func TestProcessTextUnknownFile(t *testing.T) {
	fileRepo, _, _, svc, _ := newExtractionFixture()
	missing := uuid.New()
	fileRepo.On("GetByID", mock.Anything, missing).Return(nil, domain.ErrNotFound)

	_, err := svc.ProcessText(context.Background(), ExtractionInput{FileID: missing, Text: "08:00 algo"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProcessTextGarbageYieldsNoAppointments(t *testing.T) {
	fileRepo, apptRepo, email, svc, meta := newExtractionFixture()

	fileRepo.On("GetByID", mock.Anything, meta.ID).Return(meta, nil)
	apptRepo.On("DeleteByFile", mock.Anything, meta.ID).Return(nil)
	apptRepo.On("CreateBatch", mock.Anything, mock.MatchedBy(func(batch []domain.Appointment) bool {
		return len(batch) == 0
	})).Return(nil)
	fileRepo.On("SetExtractionResult", mock.Anything, meta.ID, domain.FileStatusExtracted, "").Return(nil)
	email.On("SendExtractionReport", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	result, err := svc.ProcessText(context.Background(), ExtractionInput{FileID: meta.ID, Text: "texto sem estrutura nenhuma"})
	require.NoError(t, err)
	assert.Zero(t, result.RecordCount)
}
