package authservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент сервиса проверки учетных данных.
//
// Сервис является внешним коллаборатором: принимает email+пароль и возвращает
// идентичность либо ошибку. Какой именно провайдер стоит за ним, ядру
// безразлично, нужен только стабильный ownerId/email.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SignIn проверяет пару email/пароль и возвращает идентичность
func (c *Client) SignIn(ctx context.Context, email, password string) (*Identity, error) {
	if email == "" || password == "" {
		return nil, ErrEmptyCredentials
	}

	body, err := json.Marshal(signInRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	return c.postSession(ctx, c.baseURL+"/v1/sessions", body)
}

// SignInAnonymously создает гостевую сессию
func (c *Client) SignInAnonymously(ctx context.Context) (*Identity, error) {
	return c.postSession(ctx, c.baseURL+"/v1/sessions/anonymous", nil)
}

// SignOut завершает сессию на стороне провайдера
func (c *Client) SignOut(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/v1/sessions", nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		c.log.Warn("SignOut: provider returned status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) postSession(ctx context.Context, url string, body []byte) (*Identity, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusNotFound:
		return nil, c.mapAuthError(resp.Body)
	default:
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	var identity Identity
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &identity, nil
}

// mapAuthError конвертирует ошибку провайдера в ошибку клиента.
// user-not-found и invalid-credentials сводятся к одному сообщению,
// остальные сообщения пробрасываются без провайдерских префиксов.
func (c *Client) mapAuthError(body io.Reader) error {
	var errResp ErrorResponse
	if err := json.NewDecoder(body).Decode(&errResp); err != nil {
		return ErrInvalidCredentials
	}

	switch errResp.Code {
	case "auth/user-not-found", "auth/invalid-credential", "auth/wrong-password",
		"USER_NOT_FOUND", "INVALID_CREDENTIALS", "INVALID_PASSWORD":
		return ErrInvalidCredentials
	}

	msg := SanitizeProviderMessage(errResp.Message)
	if msg == "" {
		return ErrInvalidCredentials
	}
	return fmt.Errorf("sign-in failed: %s", msg)
}

// SanitizeProviderMessage убирает провайдерские префиксы из сообщения об ошибке
func SanitizeProviderMessage(msg string) string {
	for _, prefix := range []string{"Firebase: ", "auth/"} {
		msg = strings.TrimPrefix(msg, prefix)
	}
	return strings.TrimSpace(msg)
}
