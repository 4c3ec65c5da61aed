package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/ametelin/veriauth/internal/config"
	"github.com/go-resty/resty/v2"
)

// ResendSender is a [Sender] backed by the Resend HTTP API
// (POST {base}/emails with a bearer API key).
type ResendSender struct {
	client *resty.Client
	from   string
}

// sendRequest is the JSON body of the provider's send endpoint.
type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// NewResendSender constructs a ResendSender from the mail configuration.
// The underlying resty client carries the base URL, the authorization
// header and a per-request timeout.
func NewResendSender(cfg config.Mail) *ResendSender {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetAuthToken(cfg.APIKey).
		SetTimeout(5 * time.Second)

	return &ResendSender{
		client: client,
		from:   cfg.From,
	}
}

// Send delivers one message through the provider API.
// Any non-2xx response is reported as an error with the response body
// included for diagnostics.
func (s *ResendSender) Send(ctx context.Context, msg Message) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(sendRequest{
			From:    s.from,
			To:      []string{msg.To},
			Subject: msg.Subject,
			HTML:    msg.HTML,
		}).
		Post("/emails")
	if err != nil {
		return fmt.Errorf("error sending email: %w", err)
	}

	if resp.IsError() {
		return fmt.Errorf("mail provider returned %d: %s", resp.StatusCode(), resp.String())
	}

	return nil
}
