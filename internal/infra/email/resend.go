package email

import (
	"fmt"

	"toadtoe-api/config"

	"github.com/go-resty/resty/v2"
)

const resendEndpoint = "https://api.resend.com/emails"

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type sendError struct {
	Message string `json:"message"`
}

var client = resty.New()

// Send delivers one HTML email through the Resend API. Returns an error the
// caller may log; most call sites are best-effort and must not fail their
// parent operation on a send error.
func Send(to, subject, html string) error {
	if config.RESEND_API_KEY == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}

	var apiErr sendError
	resp, err := client.R().
		SetAuthToken(config.RESEND_API_KEY).
		SetBody(sendRequest{
			From:    config.EMAIL_FROM,
			To:      []string{to},
			Subject: subject,
			HTML:    html,
		}).
		SetError(&apiErr).
		Post(resendEndpoint)
	if err != nil {
		return err
	}
	if resp.IsError() {
		if apiErr.Message != "" {
			return fmt.Errorf("resend: %s", apiErr.Message)
		}
		return fmt.Errorf("resend: status %d", resp.StatusCode())
	}
	return nil
}

// SendBestEffort logs and swallows failures. Signup and similar flows succeed
// even when the email does not go out.
func SendBestEffort(to, subject, html string) {
	if err := Send(to, subject, html); err != nil {
		fmt.Println("❌ Email send failed:", to, err)
	}
}
