// Package mailer sends transactional email through a Mailtrap-compatible
// HTTP API.
package mailer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type Mailer struct {
	apiURL  string
	apiKey  string
	from    string
	baseURL string
	client  *http.Client
}

func NewMailer(apiURL, apiKey, from, baseURL string) *Mailer {
	return &Mailer{
		apiURL:  apiURL,
		apiKey:  apiKey,
		from:    from,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type emailRecipient struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type emailRequest struct {
	From     emailRecipient   `json:"from"`
	To       []emailRecipient `json:"to"`
	Subject  string           `json:"subject"`
	HTML     string           `json:"html,omitempty"`
	Text     string           `json:"text,omitempty"`
	Category string           `json:"category,omitempty"`
}

// SendVerificationEmail mails the verification link for a freshly
// registered address.
func (m *Mailer) SendVerificationEmail(to, token string) error {
	verifyURL := fmt.Sprintf("%s/users/verify/%s", m.baseURL, token)

	htmlBody := fmt.Sprintf(
		`<p>Welcome!</p><p>Please confirm your email address by following <a href="%s">this link</a>.</p>`,
		verifyURL)
	textBody := fmt.Sprintf("Welcome!\n\nPlease confirm your email address:\n\n%s\n", verifyURL)

	emailReq := emailRequest{
		From:     emailRecipient{Email: m.from, Name: "Contacts API"},
		To:       []emailRecipient{{Email: to}},
		Subject:  "Verify your email",
		HTML:     htmlBody,
		Text:     textBody,
		Category: "email_verification",
	}

	return m.send(emailReq)
}

func (m *Mailer) send(emailReq emailRequest) error {
	payload, err := json.Marshal(emailReq)
	if err != nil {
		return fmt.Errorf("marshal email request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, m.apiURL, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("create email request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("mail API returned status %d", resp.StatusCode)
	}

	return nil
}
