package nagios

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultTimeout = 30 * time.Second

// HTTPTransport Транспорт поверх net/http с basic-авторизацией на каждом запросе.
type HTTPTransport struct {
	client   *http.Client
	user     string
	password string
}

// NewHTTPTransport Конструктор, возвращающий транспорт с нужными настройками.
// Если timeout <= 0 - используется DefaultTimeout.
func NewHTTPTransport(user, password string, timeout time.Duration) *HTTPTransport {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &HTTPTransport{
		client: &http.Client{
			Timeout: timeout,
		},
		user:     user,
		password: password,
	}
}

// Get Выполнение GET-запроса с basic-авторизацией.
func (t *HTTPTransport) Get(ctx context.Context, rawURL string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("невозможно создать GET-запрос: %w", err)
	}

	return t.do(req)
}

// SubmitForm Отправка формы POST-запросом в формате application/x-www-form-urlencoded.
func (t *HTTPTransport) SubmitForm(ctx context.Context, action string, fields url.Values) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, action, strings.NewReader(fields.Encode()))
	if err != nil {
		return nil, fmt.Errorf("невозможно создать POST-запрос: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return t.do(req)
}

// Общая часть выполнения запроса: авторизация, чтение тела.
func (t *HTTPTransport) do(req *http.Request) (*Response, error) {
	req.SetBasicAuth(t.user, t.password)

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения тела ответа: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}, nil
}
