package errs

import "fmt"

// ErrMissingParameter Кастомная ошибка, сообщающая об отсутствии обязательного параметра.
type ErrMissingParameter struct {
	Param string
}

func (mp *ErrMissingParameter) Error() string {
	return fmt.Sprintf("Не указан обязательный параметр `--%s`", mp.Param)
}

func NewErrMissingParameter(param string) *ErrMissingParameter {
	return &ErrMissingParameter{
		Param: param,
	}
}

// ErrInvalidProtocol Кастомная ошибка, сообщающая о неподдерживаемом протоколе.
type ErrInvalidProtocol struct {
	Protocol string
}

func (ip *ErrInvalidProtocol) Error() string {
	return fmt.Sprintf("Неподдерживаемый протокол `%s`, допустимы http и https", ip.Protocol)
}

func NewErrInvalidProtocol(protocol string) *ErrInvalidProtocol {
	return &ErrInvalidProtocol{
		Protocol: protocol,
	}
}

// ErrInvalidTimestamp Кастомная ошибка, сообщающая о том, что время начала окна
// не преобразуется в корректную календарную дату.
type ErrInvalidTimestamp struct {
	Value int64
	Err   error
}

func (it *ErrInvalidTimestamp) Error() string {
	return fmt.Sprintf("Время начала %d не является корректной датой. Ошибка: %v", it.Value, it.Err)
}

func (it *ErrInvalidTimestamp) Unwrap() error {
	return it.Err
}

func NewErrInvalidTimestamp(value int64, err error) *ErrInvalidTimestamp {
	if err == nil {
		err = fmt.Errorf("временная метка вне допустимого диапазона")
	}

	return &ErrInvalidTimestamp{
		Value: value,
		Err:   err,
	}
}

// ErrInvalidDuration Кастомная ошибка, сообщающая о том, что длительность окна
// не даёт корректную дату окончания.
type ErrInvalidDuration struct {
	Seconds int64
	Err     error
}

func (id *ErrInvalidDuration) Error() string {
	return fmt.Sprintf("Длительность %d сек. не даёт корректную дату окончания. Ошибка: %v", id.Seconds, id.Err)
}

func (id *ErrInvalidDuration) Unwrap() error {
	return id.Err
}

func NewErrInvalidDuration(seconds int64, err error) *ErrInvalidDuration {
	if err == nil {
		err = fmt.Errorf("длительность вне допустимого диапазона")
	}

	return &ErrInvalidDuration{
		Seconds: seconds,
		Err:     err,
	}
}

// ErrConnection Кастомная ошибка, сообщающая о том, что экран планирования
// даунтайма недоступен (сеть или авторизация).
type ErrConnection struct {
	URL string
	Err error
}

func (c *ErrConnection) Error() string {
	return fmt.Sprintf("Не удалось открыть %s. Ошибка: %v", c.URL, c.Err)
}

func (c *ErrConnection) Unwrap() error {
	return c.Err
}

func NewErrConnection(url string, err error) *ErrConnection {
	if err == nil {
		err = fmt.Errorf("сервер недоступен")
	}

	return &ErrConnection{
		URL: url,
		Err: err,
	}
}

// ErrSubmission Кастомная ошибка, сообщающая о том, что отправка формы
// завершилась неуспешным HTTP-ответом.
type ErrSubmission struct {
	StatusCode int
	Err        error
}

func (s *ErrSubmission) Error() string {
	return fmt.Sprintf("Отправка формы завершилась с кодом %d. Ошибка: %v", s.StatusCode, s.Err)
}

func (s *ErrSubmission) Unwrap() error {
	return s.Err
}

func NewErrSubmission(statusCode int, err error) *ErrSubmission {
	if err == nil {
		err = fmt.Errorf("неуспешный HTTP-ответ")
	}

	return &ErrSubmission{
		StatusCode: statusCode,
		Err:        err,
	}
}

// ErrFormNotFound Кастомная ошибка, сообщающая о том, что на экране команды
// не нашлось ни одной HTML-формы.
type ErrFormNotFound struct {
	URL string
}

func (fn *ErrFormNotFound) Error() string {
	return fmt.Sprintf("На странице %s не найдена форма планирования даунтайма", fn.URL)
}

func NewErrFormNotFound(url string) *ErrFormNotFound {
	return &ErrFormNotFound{
		URL: url,
	}
}
