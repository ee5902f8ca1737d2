package amadeus

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"skyfare/pkg/logger"
)

const tokenPath = "/v1/security/oauth2/token"

// TokenCache owns the single provider access token for the process. A token
// is usable while its value is set and the expiry instant has not passed;
// expired or missing tokens are replaced through the client_credentials grant.
type TokenCache struct {
	httpClient   *http.Client
	baseURL      string
	clientID     string
	clientSecret string
	logger       logger.Client

	mu        sync.Mutex
	value     string
	expiresAt time.Time
	now       func() time.Time
}

func NewTokenCache(httpClient *http.Client, baseURL, clientID, clientSecret string, logger logger.Client) *TokenCache {
	return &TokenCache{
		httpClient:   httpClient,
		baseURL:      baseURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		logger:       logger,
		now:          time.Now,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Token returns the cached access token, refreshing it first when it is
// missing or expired. Callers block while a refresh is in flight, so
// concurrent expiry never issues more than one credential request.
func (t *TokenCache) Token(ctx context.Context) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.value != "" && t.now().Before(t.expiresAt) {
		return t.value, nil
	}

	t.logger.Info("amadeus token expired or missing, fetching new token")

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", t.clientID)
	form.Set("client_secret", t.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+tokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return "", &TokenAcquisitionError{Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", &TokenAcquisitionError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TokenAcquisitionError{Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &TokenAcquisitionError{Status: resp.StatusCode, Body: string(body)}
	}

	var tok tokenResponse
	if err := json.Unmarshal(body, &tok); err != nil {
		return "", &TokenAcquisitionError{Status: resp.StatusCode, Body: string(body), Err: err}
	}
	if tok.AccessToken == "" {
		return "", &TokenAcquisitionError{Status: resp.StatusCode, Body: string(body)}
	}

	t.value = tok.AccessToken
	t.expiresAt = t.now().Add(time.Duration(tok.ExpiresIn) * time.Second)

	t.logger.Debug("amadeus token refreshed",
		logger.Field{Key: "expires_in", Value: tok.ExpiresIn})

	return t.value, nil
}
