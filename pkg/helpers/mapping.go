package helpers

import (
	"fmt"
	"strings"

	"github.com/oksasatya/growth-sessions/pkg/mailer"
	mailtpl "github.com/oksasatya/growth-sessions/pkg/mailer/templates"
)

// FallbackSubject is used when a job carries no subject and its template cannot be rendered.
func FallbackSubject(job *mailer.EmailJob) string {
	title := fmt.Sprintf("%v", job.Data["SessionTitle"])
	if strings.TrimSpace(title) == "" || title == "<nil>" {
		title = "a growth session"
	}
	switch strings.ToLower(job.Template) {
	case mailtpl.SessionUpdated:
		return "Updated: " + title
	case mailtpl.SessionDeleted:
		return "Cancelled: " + title
	default:
		return "Growth session notification"
	}
}

func EnsureRecipientAndEmail(job *mailer.EmailJob) {
	if job.Data == nil {
		job.Data = map[string]any{}
	}
	if v, ok := job.Data["RecipientEmail"]; !ok || fmt.Sprintf("%v", v) == "" {
		job.Data["RecipientEmail"] = job.To
	}
}
