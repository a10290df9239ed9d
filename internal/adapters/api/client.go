package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/doctorai-cli/internal/domain"
	"github.com/google/uuid"
)

const maxResponseBytes = 1 << 20

const (
	PathStartSession = "/chat/start-session"
	PathSendMessage  = "/chat/send"
	PathSummary      = "/chat/summary"
	PathLogin        = "/auth/login"
	PathRegister     = "/auth/register"
)

// Client talks JSON over HTTP to the symptom-intake backend. It implements
// ports.ChatAPI and ports.AuthAPI.
type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	Logger         *slog.Logger
}

type startSessionResponse struct {
	SessionID string `json:"session_id"`
}

type sendMessageRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type sendMessageResponse struct {
	Response *string `json:"response"`
}

type summaryRequest struct {
	SessionID string `json:"session_id"`
}

type summaryResponse struct {
	Summary string `json:"summary"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string          `json:"access_token"`
	User        json.RawMessage `json:"user"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type errorResponse struct {
	Message string          `json:"message"`
	Detail  json.RawMessage `json:"detail"`
	Error   string          `json:"error"`
}

func (c Client) StartSession(ctx context.Context, token string) (string, error) {
	var payload startSessionResponse
	if err := c.post(ctx, PathStartSession, token, struct{}{}, &payload); err != nil {
		return "", fmt.Errorf("start session: %w", err)
	}
	if payload.SessionID == "" {
		return "", errors.New("start session: response missing session_id")
	}
	return payload.SessionID, nil
}

// SendMessage returns ok=false when the backend answered without a response
// field.
func (c Client) SendMessage(ctx context.Context, token string, sessionID string, message string) (string, bool, error) {
	var payload sendMessageResponse
	request := sendMessageRequest{SessionID: sessionID, Message: message}
	if err := c.post(ctx, PathSendMessage, token, request, &payload); err != nil {
		return "", false, fmt.Errorf("send message: %w", err)
	}
	if payload.Response == nil {
		return "", false, nil
	}
	return *payload.Response, true, nil
}

func (c Client) Summary(ctx context.Context, token string, sessionID string) (string, error) {
	var payload summaryResponse
	if err := c.post(ctx, PathSummary, token, summaryRequest{SessionID: sessionID}, &payload); err != nil {
		return "", fmt.Errorf("fetch summary: %w", err)
	}
	return payload.Summary, nil
}

func (c Client) Login(ctx context.Context, credentials domain.Credentials) (domain.LoginResult, error) {
	var payload loginResponse
	request := loginRequest{Email: credentials.Email, Password: credentials.Password}
	if err := c.post(ctx, PathLogin, "", request, &payload); err != nil {
		return domain.LoginResult{}, fmt.Errorf("login: %w", err)
	}

	return domain.LoginResult{
		AccessToken: payload.AccessToken,
		User:        userDisplayName(payload.User),
	}, nil
}

func (c Client) Register(ctx context.Context, registration domain.Registration) error {
	request := registerRequest{
		Name:     registration.Name,
		Email:    registration.Email,
		Password: registration.Password,
	}
	if err := c.post(ctx, PathRegister, "", request, nil); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

func (c Client) post(ctx context.Context, path string, token string, body any, out any) error {
	endpoint, err := buildAPIURL(c.BaseURL, path)
	if err != nil {
		return err
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	started := time.Now()
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger().Debug("api response",
		slog.String("path", path),
		slog.String("request_id", requestID),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(started)),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeRemoteError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return nil
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func (c Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c Client) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

func (c Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := c.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 30 * time.Second
	}

	return context.WithTimeout(ctx, requestTimeout)
}

func decodeRemoteError(resp *http.Response) error {
	remoteErr := &domain.RemoteError{StatusCode: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil || len(raw) == 0 {
		return remoteErr
	}

	var payload errorResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return remoteErr
	}

	switch {
	case strings.TrimSpace(payload.Message) != "":
		remoteErr.Message = strings.TrimSpace(payload.Message)
	case detailMessage(payload.Detail) != "":
		remoteErr.Message = detailMessage(payload.Detail)
	case strings.TrimSpace(payload.Error) != "":
		remoteErr.Message = strings.TrimSpace(payload.Error)
	}
	return remoteErr
}

// detailMessage reads FastAPI's detail field, which is either a string or a
// list of validation errors carrying a msg.
func detailMessage(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return strings.TrimSpace(text)
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(raw, &items); err == nil {
		for _, item := range items {
			if msg := strings.TrimSpace(item.Msg); msg != "" {
				return msg
			}
		}
	}
	return ""
}

// userDisplayName accepts the user field as a plain string or as an object
// with a name, username or email.
func userDisplayName(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var name string
	if err := json.Unmarshal(raw, &name); err == nil {
		return strings.TrimSpace(name)
	}

	var user struct {
		Name     string `json:"name"`
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	if err := json.Unmarshal(raw, &user); err != nil {
		return ""
	}
	for _, candidate := range []string{user.Username, user.Name, user.Email} {
		if candidate = strings.TrimSpace(candidate); candidate != "" {
			return candidate
		}
	}
	return ""
}

func buildAPIURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("api base url is required")
	}
	if path == "" {
		return "", errors.New("api path is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	endpoint, err := parsed.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse api path: %w", err)
	}
	return endpoint.String(), nil
}
