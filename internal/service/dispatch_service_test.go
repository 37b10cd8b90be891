package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/erudieto-brandon/cofrat-app/internal/config"
	"github.com/erudieto-brandon/cofrat-app/internal/domain"
	"github.com/erudieto-brandon/cofrat-app/internal/port"
	"github.com/erudieto-brandon/cofrat-app/mocks"
)

func contactsSheet(t *testing.T, rows [][]string) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, val))
		}
	}
	return f
}

func draftCampaign() *domain.DispatchCampaign {
	return &domain.DispatchCampaign{
		ID:      uuid.New(),
		Name:    "Campanha Fevereiro",
		Message: "Olá {nome}, sua consulta está confirmada.",
		Status:  domain.CampaignRascunho,
	}
}

func TestCreateCampaignLoadsContacts(t *testing.T) {
	repo := new(mocks.MockDispatchRepo)
	svc := NewDispatchService(repo, new(mocks.MockWebhookDispatcher), new(mocks.MockMessenger), config.WebhookConfig{})

	f := contactsSheet(t, [][]string{
		{"Nome", "Telefone"},
		{"Maria Silva", "(11) 99999-1234"},
		{"João Souza", "85 98765-4321"},
		{"Sem Numero", "---"},
	})
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	createdBy := uuid.New()
	repo.On("CreateCampaign", mock.Anything, mock.MatchedBy(func(c *domain.DispatchCampaign) bool {
		return c.Status == domain.CampaignRascunho && c.CreatedBy == createdBy
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.DispatchCampaign).ID = uuid.New()
	}).Return(nil)
	repo.On("CreateMessages", mock.Anything, mock.MatchedBy(func(msgs []domain.DispatchMessage) bool {
		return len(msgs) == 2 && msgs[0].Phone == "5511999991234" && msgs[0].Status == domain.MessagePendente
	})).Return(nil)

	result, err := svc.CreateCampaign(context.Background(), CreateCampaignInput{
		Name:      "Campanha Fevereiro",
		Message:   "Olá {nome}!",
		CreatedBy: createdBy,
		Contacts:  buf,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Recipients)
	assert.Len(t, result.SkippedRows, 1)
	repo.AssertExpectations(t)
}

func TestCreateCampaignWithoutContacts(t *testing.T) {
	repo := new(mocks.MockDispatchRepo)
	svc := NewDispatchService(repo, new(mocks.MockWebhookDispatcher), new(mocks.MockMessenger), config.WebhookConfig{})

	f := contactsSheet(t, [][]string{{"Nome", "Telefone"}})
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	_, err = svc.CreateCampaign(context.Background(), CreateCampaignInput{
		Name:     "Vazia",
		Message:  "oi",
		Contacts: buf,
	})
	assert.ErrorIs(t, err, domain.ErrEmptyCampaign)
	repo.AssertNotCalled(t, "CreateCampaign")
}

func TestSendRejectsNonDraft(t *testing.T) {
	repo := new(mocks.MockDispatchRepo)
	svc := NewDispatchService(repo, new(mocks.MockWebhookDispatcher), new(mocks.MockMessenger), config.WebhookConfig{})

	campaign := draftCampaign()
	campaign.Status = domain.CampaignConcluido
	repo.On("GetCampaign", mock.Anything, campaign.ID).Return(campaign, nil)

	_, err := svc.Send(context.Background(), campaign.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyResolved)
}

func TestSendDirectPersonalizesMessages(t *testing.T) {
	repo := new(mocks.MockDispatchRepo)
	messenger := new(mocks.MockMessenger)
	svc := NewDispatchService(repo, new(mocks.MockWebhookDispatcher), messenger, config.WebhookConfig{})

	campaign := draftCampaign()
	messages := []domain.DispatchMessage{
		{ID: uuid.New(), CampaignID: campaign.ID, ContactName: "Maria", Phone: "5511999991234", Status: domain.MessagePendente},
		{ID: uuid.New(), CampaignID: campaign.ID, ContactName: "João", Phone: "5585987654321", Status: domain.MessagePendente},
	}

	repo.On("GetCampaign", mock.Anything, campaign.ID).Return(campaign, nil)
	repo.On("ListMessages", mock.Anything, campaign.ID).Return(messages, nil)
	repo.On("UpdateCampaignStatus", mock.Anything, campaign.ID, domain.CampaignEnviando).Return(nil)
	repo.On("UpdateCampaignStatus", mock.Anything, campaign.ID, domain.CampaignConcluido).Return(nil)

	messenger.On("SendText", mock.Anything, "5511999991234", "Olá Maria, sua consulta está confirmada.").Return(nil)
	messenger.On("SendText", mock.Anything, "5585987654321", "Olá João, sua consulta está confirmada.").
		Return(errors.New("numero invalido"))

	repo.On("UpdateMessageStatus", mock.Anything, messages[0].ID, domain.MessageEnviado, "").Return(nil)
	repo.On("UpdateMessageStatus", mock.Anything, messages[1].ID, domain.MessageFalhou, "numero invalido").Return(nil)

	got, err := svc.Send(context.Background(), campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignConcluido, got.Status)
	repo.AssertExpectations(t)
	messenger.AssertExpectations(t)
}

func TestSendDirectAllFailed(t *testing.T) {
	repo := new(mocks.MockDispatchRepo)
	messenger := new(mocks.MockMessenger)
	svc := NewDispatchService(repo, new(mocks.MockWebhookDispatcher), messenger, config.WebhookConfig{})

	campaign := draftCampaign()
	messages := []domain.DispatchMessage{
		{ID: uuid.New(), CampaignID: campaign.ID, ContactName: "Maria", Phone: "5511999991234"},
	}

	repo.On("GetCampaign", mock.Anything, campaign.ID).Return(campaign, nil)
	repo.On("ListMessages", mock.Anything, campaign.ID).Return(messages, nil)
	repo.On("UpdateCampaignStatus", mock.Anything, campaign.ID, domain.CampaignEnviando).Return(nil)
	repo.On("UpdateCampaignStatus", mock.Anything, campaign.ID, domain.CampaignFalhou).Return(nil)
	repo.On("UpdateMessageStatus", mock.Anything, messages[0].ID, domain.MessageFalhou, mock.Anything).Return(nil)
	messenger.On("SendText", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("api fora do ar"))

	got, err := svc.Send(context.Background(), campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignFalhou, got.Status)
}

func TestSendViaWebhookHandsOffBatch(t *testing.T) {
	repo := new(mocks.MockDispatchRepo)
	webhooks := new(mocks.MockWebhookDispatcher)
	messenger := new(mocks.MockMessenger)
	svc := NewDispatchService(repo, webhooks, messenger, config.WebhookConfig{
		BulkDispatchURL: "https://automation.example.com/bulk",
	})

	campaign := draftCampaign()
	messages := []domain.DispatchMessage{
		{ID: uuid.New(), CampaignID: campaign.ID, ContactName: "Maria", Phone: "5511999991234"},
		{ID: uuid.New(), CampaignID: campaign.ID, ContactName: "João", Phone: "5585987654321"},
	}

	repo.On("GetCampaign", mock.Anything, campaign.ID).Return(campaign, nil)
	repo.On("ListMessages", mock.Anything, campaign.ID).Return(messages, nil)
	repo.On("UpdateCampaignStatus", mock.Anything, campaign.ID, domain.CampaignEnviando).Return(nil)
	repo.On("UpdateCampaignStatus", mock.Anything, campaign.ID, domain.CampaignConcluido).Return(nil)
	repo.On("UpdateMessageStatus", mock.Anything, mock.Anything, domain.MessageEnviado, "").Return(nil)

	webhooks.On("TriggerBulkDispatch", mock.Anything, mock.MatchedBy(func(p port.BulkDispatchPayload) bool {
		return p.CampaignID == campaign.ID && len(p.Recipients) == 2 && p.Recipients[0].Name == "Maria"
	})).Return(nil)

	got, err := svc.Send(context.Background(), campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignConcluido, got.Status)
	messenger.AssertNotCalled(t, "SendText")
	webhooks.AssertExpectations(t)
}
