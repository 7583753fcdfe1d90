package nagios

import (
	"context"
	"net/url"
)

//go:generate mockgen -destination=mocks/mock_transport.go -package=mocks . Transport

// Response Ответ удалённого веб-интерфейса: код и декодированное тело.
type Response struct {
	StatusCode int
	Body       string
}

// Transport Интерфейс для выполнения HTTP-запросов к веб-интерфейсу Nagios.
type Transport interface {
	Get(ctx context.Context, rawURL string) (*Response, error)
	SubmitForm(ctx context.Context, action string, fields url.Values) (*Response, error)
}
