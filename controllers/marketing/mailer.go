package marketingControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Officialsalim12/Vitafood360-Company/config"
)

const resendEndpoint = "https://api.resend.com/emails"

var mailClient = &http.Client{Timeout: 10 * time.Second}

// sendContactEmail notifies the shop of a new contact-form submission via
// the Resend API. Callers treat a failure as log-only; the customer's
// request never fails because of the notification.
func sendContactEmail(cfg *config.Config, name, email, message string) error {
	to := cfg.ContactToEmail
	if to == "" {
		to = cfg.ResendFromEmail
	}
	if cfg.ResendAPIKey == "" || cfg.ResendFromEmail == "" || to == "" {
		return fmt.Errorf("resend configuration missing")
	}

	payload := map[string]interface{}{
		"from":    cfg.ResendFromEmail,
		"to":      []string{to},
		"subject": "New Contact Form Submission from " + name,
		"text":    fmt.Sprintf("Name: %s\nEmail: %s\nMessage: %s", name, email, message),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, resendEndpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+cfg.ResendAPIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := mailClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("resend API error (%d)", resp.StatusCode)
	}
	return nil
}
