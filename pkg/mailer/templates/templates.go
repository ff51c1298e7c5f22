package templates

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	htmpl "html/template"
	"strings"
	texttpl "text/template"
)

//go:embed *.tmpl
var FS embed.FS

const (
	SessionUpdated = "session_updated"
	SessionDeleted = "session_deleted"
)

// EmailData defines the fields available to session email templates.
type EmailData struct {
	Name           string `json:"Name"`
	RecipientEmail string `json:"RecipientEmail"`
	Type           string `json:"Type"`
	AppName        string `json:"AppName"`

	SessionTitle    string `json:"SessionTitle"`
	SessionTopic    string `json:"SessionTopic"`
	SessionLocation string `json:"SessionLocation"`
	SessionDate     string `json:"SessionDate"`
	SessionStart    string `json:"SessionStart"`
	SessionEnd      string `json:"SessionEnd"`
	OwnerName       string `json:"OwnerName"`
	SessionURL      string `json:"SessionURL"`
}

// ToMap flattens d into the shape queued email jobs carry.
func ToMap(d EmailData) map[string]any {
	b, _ := json.Marshal(d)
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	return m
}

// orDefault backs {{ .Value | default "Fallback" }}. Blank strings and nil count as unset.
func orDefault(fallback, value any) any {
	switch v := value.(type) {
	case nil:
		return fallback
	case string:
		if strings.TrimSpace(v) == "" {
			return fallback
		}
	}
	return value
}

var funcs = map[string]any{"default": orDefault}

// Every template is parsed once; a broken template fails at start-up rather than on send.
var (
	textSet = texttpl.Must(texttpl.New("").Funcs(funcs).ParseFS(FS, "*.subject.tmpl", "*.text.tmpl"))
	htmlSet = htmpl.Must(htmpl.New("").Funcs(funcs).ParseFS(FS, "*.html.tmpl"))
)

func execText(name string, data any) (string, error) {
	tpl := textSet.Lookup(name)
	if tpl == nil {
		return "", fmt.Errorf("template %q not found", name)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("exec %q: %w", name, err)
	}
	return buf.String(), nil
}

func execHTML(name string, data any) (string, error) {
	tpl := htmlSet.Lookup(name)
	if tpl == nil {
		return "", fmt.Errorf("template %q not found", name)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("exec %q: %w", name, err)
	}
	return buf.String(), nil
}

// Render produces the subject, plain text and HTML bodies for the named email,
// from <name>.subject.tmpl, <name>.text.tmpl and <name>.html.tmpl.
func Render(name string, data any) (subject, text, html string, err error) {
	if subject, err = execText(name+".subject.tmpl", data); err != nil {
		return "", "", "", err
	}
	if text, err = execText(name+".text.tmpl", data); err != nil {
		return "", "", "", err
	}
	if html, err = execHTML(name+".html.tmpl", data); err != nil {
		return "", "", "", err
	}
	return strings.TrimSpace(subject), text, html, nil
}
