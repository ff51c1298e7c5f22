package mailer

// EmailJob is one rendered-on-send email addressed to a single attendee.
// Template selects <name>.{subject,text,html}.tmpl; Subject/Text/HTML override rendering when set.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"` // e.g. "session_updated", "session_deleted"
	Data     map[string]any `json:"data,omitempty"`
}
