package notification

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pobyzaarif/goshortcute"
)

type MailjetConfig struct {
	MailjetBaseURL           string
	MailjetBasicAuthUsername string
	MailjetBasicAuthPassword string
	MailjetSenderEmail       string
	MailjetSenderName        string
}

// MailjetRepository delivers transactional mail (payment receipts)
// through the Mailjet send API.
type MailjetRepository struct {
	mailjetConfig MailjetConfig
	client        *http.Client
}

func NewMailjetRepository(cfg MailjetConfig) *MailjetRepository {
	return &MailjetRepository{
		mailjetConfig: cfg,
		client:        &http.Client{Timeout: 5 * time.Second},
	}
}

type party struct {
	Email string `json:"Email"`
	Name  string `json:"Name"`
}

type message struct {
	From     party   `json:"From"`
	To       []party `json:"To"`
	Subject  string  `json:"Subject"`
	TextPart string  `json:"TextPart"`
	HTMLPart string  `json:"HTMLPart"`
}

type sendEmailPayload struct {
	Messages []message `json:"Messages"`
}

func (r *MailjetRepository) SendEmail(toName, toEmail, subject, body string) error {
	payload := sendEmailPayload{
		Messages: []message{
			{
				From: party{
					Email: r.mailjetConfig.MailjetSenderEmail,
					Name:  r.mailjetConfig.MailjetSenderName,
				},
				To:       []party{{Email: toEmail, Name: toName}},
				Subject:  subject,
				TextPart: body,
				HTMLPart: body,
			},
		},
	}

	payloadByte, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal json payload: %w", err)
	}

	url := r.mailjetConfig.MailjetBaseURL + "/v3.1/send"
	req, err := http.NewRequest(http.MethodPost, url, strings.NewReader(string(payloadByte)))
	if err != nil {
		return err
	}

	basicAuth := goshortcute.StringtoBase64Encode(
		r.mailjetConfig.MailjetBasicAuthUsername + ":" + r.mailjetConfig.MailjetBasicAuthPassword,
	)
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Authorization", "Basic "+basicAuth)

	res, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("mailjet send failed with status %d: %s", res.StatusCode, string(resBody))
	}

	return nil
}
