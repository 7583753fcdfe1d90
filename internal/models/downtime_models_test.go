package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trsv-dev/nagios-downtime-scheduler/internal/errs"
)

// TestDowntimeRequestEnd Проверяет вычисление конца окна: start + duration.
func TestDowntimeRequestEnd(t *testing.T) {
	req := DowntimeRequest{
		Start:    time.Unix(1700000000, 0).UTC(),
		Duration: 3600 * time.Second,
	}

	assert.Equal(t, int64(1700003600), req.End().Unix())
}

// TestDowntimeRequestValidate Проверяет валидацию обязательных полей.
func TestDowntimeRequestValidate(t *testing.T) {
	tests := []struct {
		name  string
		req   DowntimeRequest
		param string
	}{
		{name: "нет hostname", req: DowntimeRequest{Message: "msg"}, param: "hostname"},
		{name: "нет message", req: DowntimeRequest{Hostname: "web01"}, param: "message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()

			require.Error(t, err)

			var missing *errs.ErrMissingParameter
			require.True(t, errors.As(err, &missing))
			assert.Equal(t, tt.param, missing.Param)
		})
	}
}

// TestDowntimeRequestValidateOK Проверяет что заполненный запрос проходит валидацию.
func TestDowntimeRequestValidateOK(t *testing.T) {
	req := DowntimeRequest{
		Hostname: "web01",
		Message:  "planned maintenance",
		Start:    time.Now(),
		Duration: 2 * time.Hour,
	}

	assert.NoError(t, req.Validate())
}

// TestDowntimeRequestValidateLongMessage Проверяет что длина комментария
// рекомендательная и валидацию не ломает.
func TestDowntimeRequestValidateLongMessage(t *testing.T) {
	req := DowntimeRequest{
		Hostname: "web01",
		Message:  "очень длинный комментарий, который заметно превышает рекомендованные сорок символов",
	}

	assert.NoError(t, req.Validate())
}
