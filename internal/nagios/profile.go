package nagios

// FormProfile Привязка к конкретной версии веб-интерфейса: путь к cmd.cgi,
// код команды, имена полей формы и маркер успеха в ответе.
// Вынесено в профиль, потому что HTML удалённой системы нам не принадлежит
// и от версии к версии имена полей могут меняться.
type FormProfile struct {
	CGIPath string
	// CommandType Код команды "запланировать даунтайм хоста" (cmd_typ).
	CommandType int

	HostField    string
	AuthorField  string
	CommentField string
	StartField   string
	EndField     string
	FixedField   string
	SubmitButton string

	// Author Фиксированная подпись отправителя (com_author).
	Author string
	// SuccessMarker Подстрока успешного ответа, ищется без учёта регистра.
	SuccessMarker string
}

// Nagios3Profile Профиль формы для веб-интерфейса Nagios 3.
func Nagios3Profile() FormProfile {
	return FormProfile{
		CGIPath:       "/cgi-bin/nagios3/cmd.cgi",
		CommandType:   55,
		HostField:     "host",
		AuthorField:   "com_author",
		CommentField:  "com_data",
		StartField:    "start_time",
		EndField:      "end_time",
		FixedField:    "fixed",
		SubmitButton:  "btnSubmit",
		Author:        "nagios-downtime-scheduler",
		SuccessMarker: "successfully submitted",
	}
}
