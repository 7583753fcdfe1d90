package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestErrMissingParameter Проверяет текст ошибки отсутствующего параметра.
func TestErrMissingParameter(t *testing.T) {
	err := NewErrMissingParameter("server")

	assert.Contains(t, err.Error(), "`--server`")
}

// TestErrConnectionUnwrap Проверяет разворачивание вложенной ошибки соединения.
func TestErrConnectionUnwrap(t *testing.T) {
	inner := fmt.Errorf("dial tcp: connection refused")
	err := NewErrConnection("http://monitor.local/cmd.cgi", inner)

	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "http://monitor.local/cmd.cgi")
}

// TestErrConnectionNilInner Проверяет подстановку ошибки по умолчанию.
func TestErrConnectionNilInner(t *testing.T) {
	err := NewErrConnection("http://monitor.local/cmd.cgi", nil)

	require.NotNil(t, err.Err)
	assert.NotEmpty(t, err.Error())
}

// TestErrSubmissionStatusCode Проверяет сохранение кода ответа в ошибке отправки.
func TestErrSubmissionStatusCode(t *testing.T) {
	err := NewErrSubmission(503, nil)

	assert.Equal(t, 503, err.StatusCode)
	assert.Contains(t, err.Error(), "503")
}

// TestErrInvalidTimestampAs Проверяет что ошибка распознаётся через errors.As.
func TestErrInvalidTimestampAs(t *testing.T) {
	var err error = NewErrInvalidTimestamp(-1, nil)

	wrapped := fmt.Errorf("обёртка: %w", err)

	var target *ErrInvalidTimestamp
	require.True(t, errors.As(wrapped, &target))
	assert.Equal(t, int64(-1), target.Value)
}

// TestErrInvalidDurationSeconds Проверяет сохранение длительности в ошибке.
func TestErrInvalidDurationSeconds(t *testing.T) {
	err := NewErrInvalidDuration(-3600, nil)

	assert.Equal(t, int64(-3600), err.Seconds)
	assert.Contains(t, err.Error(), "-3600")
}
