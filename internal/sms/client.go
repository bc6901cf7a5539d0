// internal/sms/client.go
package sms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Sender delivers one SMS. Implemented by Client; tests substitute fakes.
type Sender interface {
	Send(ctx context.Context, to, body string) (string, error)
}

// Client talks to the Twilio Messages REST endpoint. BaseURL and HTTP are
// overridable so tests can point at an httptest server.
type Client struct {
	AccountSID string
	AuthToken  string
	From       string
	BaseURL    string
	HTTP       *http.Client
}

func NewClient(accountSID, authToken, from string, timeout time.Duration) *Client {
	return &Client{
		AccountSID: accountSID,
		AuthToken:  authToken,
		From:       from,
		HTTP:       &http.Client{Timeout: timeout},
	}
}

// Send posts one message and returns the provider message SID.
func (c *Client) Send(ctx context.Context, to, body string) (string, error) {
	if c.AccountSID == "" || c.AuthToken == "" {
		return "", errors.New("missing twilio credentials")
	}
	if c.From == "" {
		return "", errors.New("missing twilio from number")
	}
	if to == "" {
		return "", errors.New("missing recipient number")
	}

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	baseURL := c.BaseURL
	if baseURL == "" {
		baseURL = "https://api.twilio.com"
	}

	form := url.Values{}
	form.Set("From", c.From)
	form.Set("To", to)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", baseURL, c.AccountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(c.AccountSID, c.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("twilio request failed: %w", err)
	}
	defer res.Body.Close()

	var resp struct {
		SID     string `json:"sid"`
		Message string `json:"message,omitempty"`
		Code    int    `json:"code,omitempty"`
	}
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("twilio response decode failed: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		msg := resp.Message
		if msg == "" {
			msg = res.Status
		}
		return "", fmt.Errorf("twilio error %d: %s", res.StatusCode, msg)
	}
	if resp.SID == "" {
		return "", errors.New("twilio response missing message sid")
	}

	return resp.SID, nil
}
