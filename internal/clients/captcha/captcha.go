package captcha

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to the reCAPTCHA siteverify endpoint. An empty secret disables
// verification (local development).
type Client struct {
	log          *slog.Logger
	http         *http.Client
	verifyURL    string
	secret       string
	retriesCount int
}

const DefaultVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

func New(log *slog.Logger, verifyURL, secret string, timeout time.Duration, retriesCount int) *Client {
	if verifyURL == "" {
		verifyURL = DefaultVerifyURL
	}
	if retriesCount < 1 {
		retriesCount = 1
	}
	return &Client{
		log:          log,
		http:         &http.Client{Timeout: timeout},
		verifyURL:    verifyURL,
		secret:       secret,
		retriesCount: retriesCount,
	}
}

type verifyResponse struct {
	Success    bool     `json:"success"`
	Score      float64  `json:"score"`
	ErrorCodes []string `json:"error-codes"`
}

// Verify checks a captcha token submitted with a form. Returns false when the
// verification service rejected the token; an error means the service itself
// was unreachable.
func (c *Client) Verify(ctx context.Context, token, remoteIP string) (bool, error) {
	const op = "captcha.Client.Verify"
	log := c.log.With("op", op)
	if c.secret == "" {
		log.Debug("captcha verification disabled, accepting token")
		return true, nil
	}
	form := url.Values{}
	form.Set("secret", c.secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}
	var resp *http.Response
	var err error
	for i := 0; i < c.retriesCount; i++ {
		var req *http.Request
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, c.verifyURL, strings.NewReader(form.Encode()))
		if err != nil {
			return false, err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		resp, err = c.http.Do(req)
		if err == nil {
			break
		}
		time.Sleep(500 * time.Millisecond)
	}
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	var parsed verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return false, err
	}
	if !parsed.Success {
		log.Info("captcha rejected", "error_codes", parsed.ErrorCodes)
	}
	return parsed.Success, nil
}
