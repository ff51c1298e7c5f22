package client

import (
	"context"
	"errors"
	"strings"

	"github.com/oksasatya/growth-sessions/pkg/api"
)

type FormState int

const (
	Incomplete FormState = iota
	Valid
)

func (s FormState) String() string {
	if s == Valid {
		return "valid"
	}
	return "incomplete"
}

// DefaultEndTime is sent when the form leaves end time blank.
const DefaultEndTime = "05:00 pm"

var ErrIncomplete = errors.New("title, topic, location and start time are required")

// FormAPI is the part of the API a form submits to.
type FormAPI interface {
	Store(ctx context.Context, req api.StoreGrowthSessionRequest) (api.GrowthSession, error)
	Update(ctx context.Context, id int64, req api.StoreGrowthSessionRequest) (api.GrowthSession, error)
}

// Form collects a create or edit request. Every setter re-evaluates State; Submit refuses
// while the form is Incomplete.
type Form struct {
	api    FormAPI
	editID int64

	title     string
	topic     string
	location  string
	date      string
	startTime string
	endTime   string
	isPublic  bool
	limit     *int
	noLimit   bool
	channelID *string

	// autoLocation is set while location holds the label of the selected channel.
	autoLocation bool

	DefaultEnd  string
	state       FormState
	err         error
	onSubmitted []func(api.GrowthSession)
}

const channelLabelPrefix = "Discord Channel: "

// NewForm starts an empty create form for date (YYYY-MM-DD).
func NewForm(a FormAPI, date string) *Form {
	return &Form{api: a, date: date, DefaultEnd: DefaultEndTime}
}

// NewEditForm pre-fills every field from s. Submitting it updates s.
func NewEditForm(a FormAPI, s api.GrowthSession) *Form {
	f := &Form{
		api:        a,
		editID:     s.ID,
		title:      s.Title,
		topic:      s.Topic,
		location:   s.Location,
		date:       s.Date,
		startTime:  s.StartTime,
		endTime:    s.EndTime,
		isPublic:   s.IsPublic,
		noLimit:    s.AttendeeLimit == nil,
		DefaultEnd: DefaultEndTime,
	}
	if s.AttendeeLimit != nil {
		l := *s.AttendeeLimit
		f.limit = &l
	}
	if s.DiscordChannelID != nil {
		ch := *s.DiscordChannelID
		f.channelID = &ch
		// a label left from an earlier selection still follows the channel
		f.autoLocation = strings.HasPrefix(s.Location, channelLabelPrefix)
	}
	f.evaluate()
	return f
}

func (f *Form) IsEdit() bool { return f.editID != 0 }

func (f *Form) State() FormState { return f.state }

func (f *Form) CanSubmit() bool { return f.state == Valid }

// Err is the last submit failure, nil after a successful submit.
func (f *Form) Err() error { return f.err }

func (f *Form) Location() string { return f.location }

func (f *Form) NoLimit() bool { return f.noLimit }

// OnSubmitted registers fn to run with the saved session after each successful submit.
func (f *Form) OnSubmitted(fn func(api.GrowthSession)) {
	f.onSubmitted = append(f.onSubmitted, fn)
}

func (f *Form) SetTitle(v string) { f.title = v; f.evaluate() }

func (f *Form) SetTopic(v string) { f.topic = v; f.evaluate() }

// SetLocation is a manual edit: later channel selections leave it alone.
func (f *Form) SetLocation(v string) {
	f.location = v
	f.autoLocation = false
	f.evaluate()
}

func (f *Form) SetDate(v string) { f.date = v; f.evaluate() }

func (f *Form) SetStartTime(v string) { f.startTime = v; f.evaluate() }

func (f *Form) SetEndTime(v string) { f.endTime = v; f.evaluate() }

func (f *Form) SetPublic(v bool) { f.isPublic = v; f.evaluate() }

// SetLimit stores a typed attendee limit. It is kept while "no limit" is checked so unchecking
// brings it back.
func (f *Form) SetLimit(n int) {
	f.limit = &n
	f.evaluate()
}

func (f *Form) SetNoLimit(v bool) { f.noLimit = v; f.evaluate() }

// SelectChannel links the session to ch. The location becomes "Discord Channel: <name>"
// when it is empty or still holds the label of an earlier selection.
func (f *Form) SelectChannel(ch api.DiscordChannel) {
	id := ch.ID
	f.channelID = &id
	if strings.TrimSpace(f.location) == "" || f.autoLocation {
		f.location = channelLabelPrefix + ch.Name
		f.autoLocation = true
	}
	f.evaluate()
}

// ClearChannel unlinks the channel. An auto-filled location is cleared with it.
func (f *Form) ClearChannel() {
	f.channelID = nil
	if f.autoLocation {
		f.location = ""
		f.autoLocation = false
	}
	f.evaluate()
}

func (f *Form) evaluate() {
	if strings.TrimSpace(f.title) != "" &&
		strings.TrimSpace(f.topic) != "" &&
		strings.TrimSpace(f.location) != "" &&
		strings.TrimSpace(f.startTime) != "" {
		f.state = Valid
		return
	}
	f.state = Incomplete
}

// Request is what Submit sends.
func (f *Form) Request() api.StoreGrowthSessionRequest {
	end := strings.TrimSpace(f.endTime)
	if end == "" {
		end = f.DefaultEnd
	}
	req := api.StoreGrowthSessionRequest{
		Title:            strings.TrimSpace(f.title),
		Topic:            f.topic,
		Location:         strings.TrimSpace(f.location),
		Date:             f.date,
		StartTime:        strings.TrimSpace(f.startTime),
		EndTime:          end,
		IsPublic:         f.isPublic,
		DiscordChannelID: f.channelID,
	}
	if !f.noLimit && f.limit != nil {
		l := *f.limit
		req.AttendeeLimit = &l
	}
	return req
}

// Submit stores or updates the session. Failures are returned and kept in Err.
func (f *Form) Submit(ctx context.Context) (api.GrowthSession, error) {
	if f.state != Valid {
		f.err = ErrIncomplete
		return api.GrowthSession{}, ErrIncomplete
	}
	var (
		saved api.GrowthSession
		err   error
	)
	if f.IsEdit() {
		saved, err = f.api.Update(ctx, f.editID, f.Request())
	} else {
		saved, err = f.api.Store(ctx, f.Request())
	}
	f.err = err
	if err != nil {
		return api.GrowthSession{}, err
	}
	for _, fn := range f.onSubmitted {
		fn(saved)
	}
	return saved, nil
}
