package models

import (
	"time"

	"github.com/trsv-dev/nagios-downtime-scheduler/internal/errs"
)

// MessageAdvisoryLen Рекомендуемая максимальная длина комментария.
// Ограничение рекомендательное: cmd.cgi принимает и более длинные комментарии,
// поэтому валидация его не форсирует.
const MessageAdvisoryLen = 40

// DowntimeRequest Модель запроса на планирование даунтайма для одного хоста.
type DowntimeRequest struct {
	Hostname string
	Message  string
	Start    time.Time
	Duration time.Duration
}

// End Время окончания окна даунтайма.
func (d DowntimeRequest) End() time.Time {
	return d.Start.Add(d.Duration)
}

// Validate Базовая валидация данных запроса.
func (d DowntimeRequest) Validate() error {
	if len(d.Hostname) == 0 {
		return errs.NewErrMissingParameter("hostname")
	}

	if len(d.Message) == 0 {
		return errs.NewErrMissingParameter("message")
	}

	return nil
}

// SubmissionResult Модель результата отправки формы.
// Body сохраняется целиком для диагностики ответа cmd.cgi.
type SubmissionResult struct {
	Success bool
	Marker  string
	Body    string
}
