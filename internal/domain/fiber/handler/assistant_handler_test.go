package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharath/resume-assistant/internal/usecase"
)

type fakeProvider struct {
	calls int
	err   error
}

func (f *fakeProvider) ListModels(ctx context.Context) ([]string, error) {
	return []string{"gemini-pro"}, nil
}

func (f *fakeProvider) GenerateContent(ctx context.Context, model string, prompt string) (string, error) {
	f.calls++
	if f.err != nil {
		err := f.err
		f.err = nil
		return "", err
	}
	return "Software Engineer at Acme.", nil
}

func newTestApp(t *testing.T, p *fakeProvider) *fiber.App {
	t.Helper()
	profile := usecase.NewProfile("key", "Experience: Software Engineer at Acme", "gemini-pro", "Sharath")
	h, err := NewAssistantHandler(usecase.NewAssistantUsecase(profile, p))
	require.NoError(t, err)

	app := fiber.New()
	h.RegisterRoutes(app)
	return app
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Kind    string          `json:"kind"`
	Data    json.RawMessage `json:"data"`
}

func ask(t *testing.T, app *fiber.App, body string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestIndexRendersSubject(t *testing.T) {
	app := newTestApp(t, &fakeProvider{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, string(body), "Chat with Sharath AI")
	assert.Contains(t, string(body), `id="question"`)
}

func TestAskSuccess(t *testing.T) {
	p := &fakeProvider{}
	app := newTestApp(t, p)

	code, env := ask(t, app, `{"question":"What is Sharath's most recent role?"}`)

	assert.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)
	var data struct {
		QueryID string `json:"query_id"`
		Model   string `json:"model"`
		Answer  string `json:"answer"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "Software Engineer at Acme.", data.Answer)
	assert.Equal(t, "gemini-pro", data.Model)
	assert.NotEmpty(t, data.QueryID)
	assert.Equal(t, 1, p.calls)
}

func TestAskBlankQuestionIsRejectedWithoutProviderCall(t *testing.T) {
	p := &fakeProvider{}
	app := newTestApp(t, p)

	for _, body := range []string{`{"question":""}`, `{"question":"   "}`, `{}`} {
		code, env := ask(t, app, body)
		assert.Equal(t, http.StatusBadRequest, code, body)
		assert.False(t, env.Success)
		assert.Equal(t, "question is required", env.Message)
	}
	assert.Zero(t, p.calls)
}

func TestAskInvalidBody(t *testing.T) {
	app := newTestApp(t, &fakeProvider{})

	code, env := ask(t, app, `{"question":`)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "invalid request body", env.Message)
}

func TestAskGenerationErrorThenRecovers(t *testing.T) {
	p := &fakeProvider{err: errors.New("503 UNAVAILABLE: model overloaded")}
	app := newTestApp(t, p)

	code, env := ask(t, app, `{"question":"Where does he work?"}`)

	assert.Equal(t, http.StatusBadGateway, code)
	assert.False(t, env.Success)
	assert.Equal(t, usecase.KindGeneration, env.Kind)
	assert.True(t, strings.HasPrefix(env.Message, "Generation error: "))
	assert.Contains(t, env.Message, "model overloaded")

	code, env = ask(t, app, `{"question":"Where does he work now?"}`)

	assert.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)
}

func TestModel(t *testing.T) {
	app := newTestApp(t, &fakeProvider{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/model", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.JSONEq(t, `{"model":"gemini-pro","subject":"Sharath"}`, string(env.Data))
}
