package services

import (
  "context"
  "fmt"
  "os"

  twilio "github.com/twilio/twilio-go"
  openapi "github.com/twilio/twilio-go/rest/api/v2010"

  "github.com/thinkly-edu/thinkly-backend/internal/logger"
)

// TextService delivers classroom invitation links over SMS. Twilio is the only
// carrier; the sender number is fixed at startup.
type TextService interface {
  SendText(ctx context.Context, toNumber string, body string) error
}

type textService struct {
  log           *logger.Logger
  client        *twilio.RestClient
  fromNumber    string
}

func NewTextService(log *logger.Logger) (TextService, error) {
  serviceLog := log.With("service", "TextService")
  accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
  if accountSid == "" {
    return nil, fmt.Errorf("Missing TWILIO_ACCOUNT_SID environment variable")
  }
  authToken := os.Getenv("TWILIO_AUTH_TOKEN")
  if authToken == "" {
    return nil, fmt.Errorf("Missing TWILIO_AUTH_TOKEN environment variable")
  }
  fromNumber := os.Getenv("TWILIO_FROM_NUMBER")
  if fromNumber == "" {
    return nil, fmt.Errorf("Missing TWILIO_FROM_NUMBER environment variable")
  }

  return &textService{
    log: serviceLog,
    client: twilio.NewRestClientWithParams(twilio.ClientParams{
      Username: accountSid,
      Password: authToken,
    }),
    fromNumber: fromNumber,
  }, nil
}

func (ts *textService) SendText(ctx context.Context, toNumber string, body string) error {
  params := &openapi.CreateMessageParams{}
  params.SetTo(toNumber)
  params.SetFrom(ts.fromNumber)
  params.SetBody(body)

  resp, err := ts.client.Api.CreateMessage(params)
  if err != nil {
    ts.log.Warn("Invitation text send failed", "error", err, "toNumber", toNumber)
    return fmt.Errorf("failed to send text to %s: %w", toNumber, err)
  }
  sid := ""
  if resp.Sid != nil {
    sid = *resp.Sid
  }
  ts.log.Info("Invitation text sent", "toNumber", toNumber, "sid", sid)
  return nil
}
