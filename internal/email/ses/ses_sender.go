package ses

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"github.com/erudieto-brandon/cofrat-app/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) SendExtractionReport(ctx context.Context, toEmail string, report port.ExtractionReport) error {
	var subject, textBody string
	if report.FailedReason != "" {
		subject = fmt.Sprintf("Falha na extração de agendamentos: %s", report.FileName)
		textBody = fmt.Sprintf(
			"A extração do arquivo %s falhou.\n\nMotivo: %s\n\nEquipe COFRAT",
			report.FileName, report.FailedReason)
	} else {
		subject = fmt.Sprintf("Agendamentos extraídos: %s", report.FileName)
		textBody = fmt.Sprintf(
			"O arquivo %s foi processado com sucesso.\n\nAgendamentos importados: %d\n\nEquipe COFRAT",
			report.FileName, report.RecordCount)
	}
	htmlBody := buildReportHTML(report)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildReportHTML(report port.ExtractionReport) string {
	if report.FailedReason != "" {
		return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #B91C1C;">Falha na extração</h2>
  <p>O arquivo <strong>%s</strong> não pôde ser processado.</p>
  <p style="color: #666;">Motivo: %s</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">COFRAT - Painel de Agendamentos</p>
</body>
</html>`, report.FileName, report.FailedReason)
	}
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Agendamentos extraídos</h2>
  <p>O arquivo <strong>%s</strong> foi processado com sucesso.</p>
  <p>Agendamentos importados: <strong>%d</strong></p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">COFRAT - Painel de Agendamentos</p>
</body>
</html>`, report.FileName, report.RecordCount)
}
