package nagios

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/trsv-dev/nagios-downtime-scheduler/internal/errs"
	"github.com/trsv-dev/nagios-downtime-scheduler/internal/logger"
	"github.com/trsv-dev/nagios-downtime-scheduler/internal/models"
)

// TimeLayout Формат дат, который ожидает форма cmd.cgi.
const TimeLayout = "2006-01-02 15:04:05"

// Календарный потолок формы: четырёхзначный год.
const maxYear = 9999

// Submitter Планировщик даунтайма: два HTTP-запроса к cmd.cgi
// (GET экрана команды и POST заполненной формы) без повторных попыток.
type Submitter struct {
	transport Transport
	baseURL   string
	profile   FormProfile
	location  *time.Location
}

// NewSubmitter Конструктор. baseURL — адрес сервера вида `http://host:port`,
// loc — зона для форматирования дат (nil означает локальную зону).
func NewSubmitter(transport Transport, baseURL string, profile FormProfile, loc *time.Location) *Submitter {
	if loc == nil {
		loc = time.Local
	}

	return &Submitter{
		transport: transport,
		baseURL:   strings.TrimRight(baseURL, "/"),
		profile:   profile,
		location:  loc,
	}
}

// ScreenURL Адрес экрана команды планирования даунтайма.
// Путь и cmd_typ — внешний контракт с cmd.cgi, менять их нельзя.
func (s *Submitter) ScreenURL() string {
	return fmt.Sprintf("%s%s?cmd_typ=%d", s.baseURL, s.profile.CGIPath, s.profile.CommandType)
}

// Submit Планирование даунтайма: валидация запроса, загрузка экрана команды,
// заполнение и отправка первой формы, проверка маркера успеха в ответе.
// Отсутствие маркера — "мягкая" неудача: Success=false без ошибки.
func (s *Submitter) Submit(ctx context.Context, req models.DowntimeRequest) (models.SubmissionResult, error) {
	result := models.SubmissionResult{Marker: s.profile.SuccessMarker}

	// никакой сетевой активности до успешной валидации
	if err := req.Validate(); err != nil {
		return result, err
	}

	startStr, endStr, err := s.formatWindow(req)
	if err != nil {
		return result, err
	}

	screenURL := s.ScreenURL()

	logger.Log.Debug("Загрузка экрана команды", logger.String("url", screenURL))

	screen, err := s.transport.Get(ctx, screenURL)
	if err != nil {
		return result, errs.NewErrConnection(screenURL, err)
	}

	if !is2xx(screen.StatusCode) {
		return result, errs.NewErrConnection(screenURL, fmt.Errorf("код ответа %d", screen.StatusCode))
	}

	form, err := ParseFirstForm(screen.Body, screenURL)
	if err != nil {
		return result, errs.NewErrConnection(screenURL, err)
	}

	if form == nil {
		return result, errs.NewErrFormNotFound(screenURL)
	}

	fields := form.Values
	fields.Set(s.profile.HostField, req.Hostname)
	fields.Set(s.profile.AuthorField, s.profile.Author)
	fields.Set(s.profile.CommentField, req.Message)
	fields.Set(s.profile.StartField, startStr)
	fields.Set(s.profile.EndField, endStr)
	fields.Set(s.profile.FixedField, "1")

	if val, ok := form.SubmitValue(s.profile.SubmitButton); ok {
		fields.Set(s.profile.SubmitButton, val)
	}

	logger.Log.Debug("Отправка формы",
		logger.String("action", form.Action),
		logger.String("host", req.Hostname),
		logger.String("start", startStr),
		logger.String("end", endStr),
	)

	resp, err := s.transport.SubmitForm(ctx, form.Action, fields)
	if err != nil {
		return result, errs.NewErrSubmission(0, err)
	}

	result.Body = resp.Body

	if !is2xx(resp.StatusCode) {
		return result, errs.NewErrSubmission(resp.StatusCode, nil)
	}

	// маркер ищется по всему телу ответа без учёта регистра
	result.Success = strings.Contains(
		strings.ToLower(resp.Body),
		strings.ToLower(s.profile.SuccessMarker),
	)

	return result, nil
}

// formatWindow Преобразование начала и конца окна в формат формы.
// Ошибки диапазона возвращаются до какой-либо сетевой активности.
func (s *Submitter) formatWindow(req models.DowntimeRequest) (string, string, error) {
	start := req.Start.In(s.location)

	if start.Unix() < 0 || start.Year() > maxYear {
		return "", "", errs.NewErrInvalidTimestamp(req.Start.Unix(), nil)
	}

	if req.Duration < 0 {
		return "", "", errs.NewErrInvalidDuration(int64(req.Duration/time.Second),
			fmt.Errorf("отрицательная длительность"))
	}

	end := req.End().In(s.location)

	if end.Before(start) || end.Year() > maxYear {
		return "", "", errs.NewErrInvalidDuration(int64(req.Duration/time.Second), nil)
	}

	return start.Format(TimeLayout), end.Format(TimeLayout), nil
}

func is2xx(code int) bool {
	return code >= 200 && code <= 299
}
