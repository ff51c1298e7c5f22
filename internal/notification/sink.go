package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/growth-sessions/internal/domain/event"
	"github.com/oksasatya/growth-sessions/pkg/helpers"
	"github.com/oksasatya/growth-sessions/pkg/mailer"
	mailtpl "github.com/oksasatya/growth-sessions/pkg/mailer/templates"
)

// JSONPublisher is satisfied by *helpers.RabbitPublisher.
type JSONPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// QueueSink hands notifications to the notify worker through RabbitMQ.
type QueueSink struct {
	pub JSONPublisher
}

func NewQueueSink(pub JSONPublisher) *QueueSink {
	return &QueueSink{pub: pub}
}

func (s *QueueSink) Send(ctx context.Context, n Notification) error {
	return s.pub.PublishJSON(ctx, n)
}

// Poster posts a message to a chat channel.
type Poster interface {
	Post(ctx context.Context, channelID, content string) error
}

// DiscordSink delivers in-process: it posts to the session's channel (or the default one)
// and emails attendees about updates and cancellations. Nil Poster or Mailer skip that leg.
type DiscordSink struct {
	Poster         Poster
	Mailer         mailer.Sender
	DefaultChannel string
	AppName        string
	SessionURL     func(id int64) string
	Log            *logrus.Logger
}

// Send returns an error only when the Discord post fails, before any email went out, so a
// redelivered job never posts twice. Email failures after a successful post are logged.
func (s *DiscordSink) Send(ctx context.Context, n Notification) error {
	if s.Poster != nil {
		channel := n.ChannelID
		if channel == "" {
			channel = s.DefaultChannel
		}
		if channel != "" {
			if err := s.Poster.Post(ctx, channel, n.Message()); err != nil {
				return fmt.Errorf("post to %s: %w", channel, err)
			}
		}
	}
	if s.Mailer == nil {
		return nil
	}
	for _, job := range s.EmailJobs(n) {
		if err := s.sendEmail(ctx, job); err != nil {
			helpers.LogWarn(s.Log, "attendee email failed", err, logrus.Fields{
				"to":         job.To,
				"kind":       n.Kind,
				"session_id": n.SessionID,
			})
		}
	}
	return nil
}

// EmailJobs builds one email per attendee with an address for updated and deleted sessions.
func (s *DiscordSink) EmailJobs(n Notification) []mailer.EmailJob {
	var tpl string
	switch n.Kind {
	case event.SessionUpdated:
		tpl = mailtpl.SessionUpdated
	case event.SessionDeleted:
		tpl = mailtpl.SessionDeleted
	default:
		return nil
	}

	details := mailtpl.WithSession(mailtpl.SessionDetails{
		Title:    n.Title,
		Topic:    n.Topic,
		Location: n.Location,
		Date:     humanDate(n.Date),
		Start:    n.StartTime,
		End:      n.EndTime,
		Owner:    n.OwnerName,
	})
	var url string
	if s.SessionURL != nil && n.Kind != event.SessionDeleted {
		url = s.SessionURL(n.SessionID)
	}

	jobs := make([]mailer.EmailJob, 0, len(n.Attendees))
	for _, a := range n.Attendees {
		if strings.TrimSpace(a.Email) == "" {
			continue
		}
		base := mailtpl.NewBaseEmailData(s.AppName, tpl, a.Name, a.Email, details, mailtpl.WithSessionURL(url))
		jobs = append(jobs, mailer.EmailJob{To: a.Email, Template: tpl, Data: mailtpl.ToMap(base)})
	}
	return jobs
}

func (s *DiscordSink) sendEmail(ctx context.Context, job mailer.EmailJob) error {
	helpers.EnsureRecipientAndEmail(&job)
	subject, text, html, err := mailtpl.Render(job.Template, job.Data)
	if err != nil {
		if s.Log != nil {
			s.Log.WithError(err).WithField("template", job.Template).Warn("render failed, sending plain text")
		}
		subject = helpers.FallbackSubject(&job)
		text = fmt.Sprintf("%v", job.Data["SessionTitle"])
		html = ""
	}
	return s.Mailer.Send(ctx, job.To, subject, text, html)
}

var (
	_ Sink          = (*QueueSink)(nil)
	_ Sink          = (*DiscordSink)(nil)
	_ JSONPublisher = (*helpers.RabbitPublisher)(nil)
)
