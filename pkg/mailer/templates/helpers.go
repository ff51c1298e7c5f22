package templates

import "strings"

// Option pattern
type Option func(*EmailData)

// SessionDetails is the part of a growth session quoted in emails.
type SessionDetails struct {
	Title    string
	Topic    string
	Location string
	Date     string
	Start    string
	End      string
	Owner    string
}

func WithSession(s SessionDetails) Option {
	return func(d *EmailData) {
		d.SessionTitle = s.Title
		d.SessionTopic = s.Topic
		d.SessionLocation = s.Location
		d.SessionDate = s.Date
		d.SessionStart = s.Start
		d.SessionEnd = s.End
		d.OwnerName = s.Owner
	}
}

func WithSessionURL(url string) Option {
	return func(d *EmailData) {
		if s := strings.TrimSpace(url); s != "" {
			d.SessionURL = s
		}
	}
}

func NewBaseEmailData(appName, typ, name, recipient string, opts ...Option) EmailData {
	d := EmailData{
		Name:           name,
		RecipientEmail: recipient,
		Type:           typ,
		AppName:        appName,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

func NewSessionUpdatedData(appName, name, recipient string, opts ...Option) map[string]any {
	return ToMap(NewBaseEmailData(appName, SessionUpdated, name, recipient, opts...))
}

func NewSessionDeletedData(appName, name, recipient string, opts ...Option) map[string]any {
	return ToMap(NewBaseEmailData(appName, SessionDeleted, name, recipient, opts...))
}
