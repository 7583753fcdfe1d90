package nagios

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseFirstFormTakesFirst Проверяет что разбирается именно первая форма страницы.
func TestParseFirstFormTakesFirst(t *testing.T) {
	body := `<html><body>
<form action="/first.cgi"><input type="text" name="a" value="1"></form>
<form action="/second.cgi"><input type="text" name="b" value="2"></form>
</body></html>`

	form, err := ParseFirstForm(body, "http://monitor.local/cgi-bin/cmd.cgi")

	require.NoError(t, err)
	require.NotNil(t, form)
	assert.Equal(t, "http://monitor.local/first.cgi", form.Action)
	assert.Equal(t, "1", form.Values.Get("a"))
	assert.False(t, form.Values.Has("b"))
}

// TestParseFirstFormNoForm Проверяет страницу без форм.
func TestParseFirstFormNoForm(t *testing.T) {
	form, err := ParseFirstForm("<html><body><h1>cmd.cgi</h1></body></html>", "http://monitor.local/")

	require.NoError(t, err)
	assert.Nil(t, form)
}

// TestParseFirstFormRelativeAction Проверяет превращение относительного action
// в абсолютный адрес и отбрасывание query исходной страницы.
func TestParseFirstFormRelativeAction(t *testing.T) {
	body := `<form action="cmd.cgi"><input name="x" value="y"></form>`

	form, err := ParseFirstForm(body, "http://monitor.local:8080/cgi-bin/nagios3/cmd.cgi?cmd_typ=55")

	require.NoError(t, err)
	require.NotNil(t, form)
	assert.Equal(t, "http://monitor.local:8080/cgi-bin/nagios3/cmd.cgi", form.Action)
}

// TestParseFirstFormEmptyAction Проверяет что пустой action означает адрес страницы.
func TestParseFirstFormEmptyAction(t *testing.T) {
	body := `<form><input name="x" value="y"></form>`

	form, err := ParseFirstForm(body, "http://monitor.local/cgi-bin/cmd.cgi?cmd_typ=55")

	require.NoError(t, err)
	require.NotNil(t, form)
	assert.Equal(t, "http://monitor.local/cgi-bin/cmd.cgi?cmd_typ=55", form.Action)
}

// TestParseFirstFormFieldTypes Проверяет сбор значений разных типов полей.
func TestParseFirstFormFieldTypes(t *testing.T) {
	body := `<form action="/go">
<input type="hidden" name="hidden_f" value="h">
<input type="text" name="text_f" value="t">
<input name="typeless_f" value="d">
<input type="checkbox" name="checked_f" checked>
<input type="checkbox" name="checked_val_f" value="cv" checked>
<input type="checkbox" name="unchecked_f" value="nope">
<input type="radio" name="radio_f" value="r1">
<input type="radio" name="radio_f" value="r2" checked>
<textarea name="area_f">inside</textarea>
<select name="sel_f"><option value="one">One</option><option value="two" selected>Two</option></select>
<select name="sel_first_f"><option value="first">First</option><option value="second">Second</option></select>
<input type="file" name="file_f" value="ignored">
</form>`

	form, err := ParseFirstForm(body, "http://monitor.local/")

	require.NoError(t, err)
	require.NotNil(t, form)

	assert.Equal(t, "h", form.Values.Get("hidden_f"))
	assert.Equal(t, "t", form.Values.Get("text_f"))
	assert.Equal(t, "d", form.Values.Get("typeless_f"))

	// у checked-полей без value браузеры отправляют "on"
	assert.Equal(t, "on", form.Values.Get("checked_f"))
	assert.Equal(t, "cv", form.Values.Get("checked_val_f"))
	assert.False(t, form.Values.Has("unchecked_f"))
	assert.Equal(t, "r2", form.Values.Get("radio_f"))

	assert.Equal(t, "inside", form.Values.Get("area_f"))
	assert.Equal(t, "two", form.Values.Get("sel_f"))
	assert.Equal(t, "first", form.Values.Get("sel_first_f"))

	assert.False(t, form.Values.Has("file_f"))
}

// TestFormSubmitValue Проверяет выбор кнопки отправки по имени, а не по позиции.
func TestFormSubmitValue(t *testing.T) {
	body := `<form action="/go">
<input type="reset" name="btnReset" value="Reset">
<input type="submit" name="btnOther" value="Other">
<input type="submit" name="btnSubmit" value="Commit">
</form>`

	form, err := ParseFirstForm(body, "http://monitor.local/")

	require.NoError(t, err)
	require.NotNil(t, form)

	val, ok := form.SubmitValue("btnSubmit")
	assert.True(t, ok)
	assert.Equal(t, "Commit", val)

	// кнопки не попадают в значения полей сами по себе
	assert.False(t, form.Values.Has("btnSubmit"))
	assert.False(t, form.Values.Has("btnOther"))
	assert.False(t, form.Values.Has("btnReset"))

	_, ok = form.SubmitValue("btnMissing")
	assert.False(t, ok)
}
