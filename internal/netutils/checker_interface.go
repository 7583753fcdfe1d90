package netutils

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mocks/mock_checker.go -package=mocks . Checker

// Checker Интерфейс предварительной проверки доступности сервера мониторинга.
type Checker interface {
	IsReachable(ctx context.Context, address string, port int, timeout time.Duration) bool
}
