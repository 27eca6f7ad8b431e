package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careersync/careersync/internal/client/models"
	"github.com/careersync/careersync/internal/common"
)

func TestHTTPClient_Login(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/token", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "alice", r.PostFormValue("username"))
		assert.Equal(t, "secret", r.PostFormValue("password"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"tok123","token_type":"bearer"}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 0)
	token, err := c.Login(context.Background(), "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok123", token)
}

func TestHTTPClient_LoginEmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 0)
	_, err := c.Login(context.Background(), "alice", "secret")
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestHTTPClient_PredictCareer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/predict-career-content-based", r.URL.Path)
		assert.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.Write([]byte(`{
			"careers": [
				{"career": "Data Scientist", "match_score": 0.9},
				{"career": "Software Engineer", "score": 0.7}
			],
			"reasoning": "Good fit",
			"roadmap": ["Learn Python", "Build a project"]
		}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 0)
	payload := models.SurveyPayload{UserID: "alice", Skills: []string{"Python"}}
	pred, err := c.PredictCareer(context.Background(), payload, "tok123")
	require.NoError(t, err)

	require.Len(t, pred.Careers, 2)
	assert.Equal(t, models.Career{Career: "Data Scientist", Score: 0.9}, pred.Careers[0])
	assert.Equal(t, models.Career{Career: "Software Engineer", Score: 0.7}, pred.Careers[1])
	assert.Equal(t, "Good fit", pred.Reasoning)
	assert.Equal(t, []string{"Learn Python", "Build a project"}, pred.Roadmap)
}

func TestHTTPClient_GetResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/results/alice", r.URL.Path)
		assert.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))
		w.Write([]byte(`{"user_id":"alice","careers":[{"career":"Nurse Practitioner","score":0.8}]}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 0)
	pred, err := c.GetResults(context.Background(), "alice", "tok123")
	require.NoError(t, err)
	assert.Equal(t, "alice", pred.UserID)
	require.Len(t, pred.Careers, 1)
	assert.Equal(t, "Nurse Practitioner", pred.Careers[0].Career)
}

func TestHTTPClient_SendFeedback(t *testing.T) {
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/feedback", r.URL.Path)
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		gotBody = string(raw)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 0)
	require.NoError(t, c.SendFeedback(context.Background(), "alice", "more careers please", "tok123"))
	assert.Contains(t, gotBody, `"user_id":"alice"`)
	assert.Contains(t, gotBody, `"feedback":"more careers please"`)
}

func TestHTTPClient_ErrorDetail(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"string detail", http.StatusUnauthorized, `{"detail":"Incorrect username or password"}`, "Incorrect username or password"},
		{"field error list", http.StatusUnprocessableEntity, `{"detail":[{"msg":"field required"},{"msg":"value is not a valid integer"}]}`, "field required value is not a valid integer"},
		{"empty body", http.StatusInternalServerError, ``, "Error"},
		{"unparseable body", http.StatusBadGateway, `<html>whoops</html>`, "Error"},
		{"detail of unexpected shape", http.StatusBadRequest, `{"detail":{"code":1}}`, "Error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewHTTPClient(srv.URL, 0)
			err := c.Signup(context.Background(), "alice", "secret")
			require.Error(t, err)

			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.wantMsg, apiErr.Message)

			if tt.status == http.StatusUnauthorized {
				assert.ErrorIs(t, err, common.ErrUnauthorized)
			}
		})
	}
}

func TestHTTPClient_ServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewHTTPClient(srv.URL, 0)
	err := c.Signup(context.Background(), "alice", "secret")
	assert.ErrorIs(t, err, common.ErrUnavailable)
}
