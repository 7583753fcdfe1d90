package nagios

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// Form Первая HTML-форма на странице команды: адрес отправки и значения полей.
// Кнопки отправки хранятся отдельно, в запрос попадает только выбранная по имени.
type Form struct {
	Action  string
	Values  url.Values
	submits url.Values
}

// SubmitValue Значение кнопки отправки по её имени.
// Кнопка ищется по имени, а не по позиции, чтобы переставленные кнопки
// не ломали отправку.
func (f *Form) SubmitValue(name string) (string, bool) {
	if !f.submits.Has(name) {
		return "", false
	}

	return f.submits.Get(name), true
}

// ParseFirstForm Разбор первой формы HTML-документа.
// baseURL нужен для превращения относительного action в абсолютный адрес.
// Возвращает nil если на странице нет ни одной формы.
func ParseFirstForm(body, baseURL string) (*Form, error) {
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return nil, err
	}

	node := findForm(doc)
	if node == nil {
		return nil, nil
	}

	form := &Form{
		Values:  url.Values{},
		submits: url.Values{},
	}

	action, err := resolveAction(attr(node, "action"), baseURL)
	if err != nil {
		return nil, err
	}
	form.Action = action

	collectFields(node, form)

	return form, nil
}

// Поиск первого узла <form> обходом в глубину.
func findForm(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "form" {
		return n
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findForm(c); found != nil {
			return found
		}
	}

	return nil
}

// Сбор значений полей формы: input, select, textarea.
func collectFields(n *html.Node, form *Form) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			switch c.Data {
			case "input":
				collectInput(c, form)
			case "select":
				collectSelect(c, form)
			case "textarea":
				if name := attr(c, "name"); name != "" {
					form.Values.Set(name, textContent(c))
				}
			}
		}

		collectFields(c, form)
	}
}

// Значение input в зависимости от типа.
func collectInput(n *html.Node, form *Form) {
	name := attr(n, "name")
	if name == "" {
		return
	}

	switch strings.ToLower(attr(n, "type")) {
	case "submit", "button", "image":
		form.submits.Set(name, attr(n, "value"))
	case "reset", "file":
		// не участвуют в отправке
	case "checkbox", "radio":
		if hasAttr(n, "checked") {
			form.Values.Set(name, inputValue(n))
		}
	default:
		// text, hidden, password и прочие текстоподобные типы
		form.Values.Set(name, attr(n, "value"))
	}
}

// У checkbox/radio без value браузеры отправляют "on".
func inputValue(n *html.Node) string {
	if hasAttr(n, "value") {
		return attr(n, "value")
	}

	return "on"
}

// Значение select: выбранный option, иначе первый.
func collectSelect(n *html.Node, form *Form) {
	name := attr(n, "name")
	if name == "" {
		return
	}

	var first string
	var haveFirst bool

	var walk func(*html.Node) bool
	walk = func(node *html.Node) bool {
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.Data == "option" {
				val := optionValue(c)
				if !haveFirst {
					first = val
					haveFirst = true
				}
				if hasAttr(c, "selected") {
					form.Values.Set(name, val)
					return true
				}
			}
			if walk(c) {
				return true
			}
		}
		return false
	}

	if !walk(n) && haveFirst {
		form.Values.Set(name, first)
	}
}

// Значение option: атрибут value, иначе текст.
func optionValue(n *html.Node) string {
	if hasAttr(n, "value") {
		return attr(n, "value")
	}

	return strings.TrimSpace(textContent(n))
}

// Превращение action формы в абсолютный URL относительно адреса страницы.
// Пустой action означает отправку на адрес самой страницы.
func resolveAction(action, baseURL string) (string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}

	if action == "" {
		return base.String(), nil
	}

	ref, err := url.Parse(action)
	if err != nil {
		return "", err
	}

	return base.ResolveReference(ref).String(), nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}

	return ""
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}

	return false
}

func textContent(n *html.Node) string {
	var sb strings.Builder

	var walk func(*html.Node)
	walk = func(node *html.Node) {
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				sb.WriteString(c.Data)
			}
			walk(c)
		}
	}
	walk(n)

	return sb.String()
}
