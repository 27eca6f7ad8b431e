package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/careersync/careersync/internal/client/models"
	"github.com/careersync/careersync/internal/common"
)

const defaultTimeout = 15 * time.Second

// HTTPClient implements Client over plain HTTP/JSON.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for the given base URL, e.g.
// "http://localhost:8000". A zero timeout selects the default.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Signup(ctx context.Context, username, password string) error {
	body := map[string]string{"username": username, "password": password}
	return c.postJSON(ctx, "/auth/signup", body, "", nil)
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/auth/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.do(req, &out); err != nil {
		return "", err
	}
	if out.AccessToken == "" {
		return "", common.ErrInvalidToken
	}
	return out.AccessToken, nil
}

func (c *HTTPClient) PredictCareer(ctx context.Context, payload models.SurveyPayload, token string) (*models.Prediction, error) {
	var out models.Prediction
	if err := c.postJSON(ctx, "/predict-career-content-based", payload, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) GetResults(ctx context.Context, userID, token string) (*models.Prediction, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/results/"+url.PathEscape(userID), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	var out models.Prediction
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) SendFeedback(ctx context.Context, userID, feedback, token string) error {
	body := map[string]string{"user_id": userID, "feedback": feedback}
	return c.postJSON(ctx, "/feedback", body, token, nil)
}

// postJSON marshals body, POSTs it to path and optionally decodes the
// response into out. An empty token omits the Authorization header.
func (c *HTTPClient) postJSON(ctx context.Context, path string, body any, token string, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.do(req, out)
}

// do executes the request, maps transport failures to ErrUnavailable,
// non-2xx statuses to *Error, and decodes a 2xx body into out when out is
// non-nil.
func (c *HTTPClient) do(req *http.Request, out any) error {
	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorFromBody(resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
