// Package icalfeed renders growth sessions as an iCalendar feed.
package icalfeed

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/emersion/go-ical"

	"github.com/oksasatya/growth-sessions/internal/domain/entity"
)

const ContentType = "text/calendar; charset=utf-8"

type Options struct {
	Name      string
	ProductID string
	// Domain makes event UIDs globally unique, e.g. "mobs.example.com".
	Domain string
	// SessionURL links each event back to the app; nil leaves URL out.
	SessionURL func(id int64) string
	Stamp      time.Time
}

func Encode(w io.Writer, sessions []*entity.GrowthSession, opts Options) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, opts.ProductID)
	if opts.Name != "" {
		cal.Props.SetText("X-WR-CALNAME", opts.Name)
	}
	for _, s := range sessions {
		cal.Children = append(cal.Children, toEvent(s, opts))
	}
	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("failed to encode feed to iCal format: %w", err)
	}
	return nil
}

func UID(id int64, domain string) string {
	if domain == "" {
		domain = "growth-sessions"
	}
	return fmt.Sprintf("growth-session-%d@%s", id, domain)
}

func toEvent(s *entity.GrowthSession, opts Options) *ical.Component {
	ve := ical.NewComponent(ical.CompEvent)
	ve.Props.SetText(ical.PropUID, UID(s.ID, opts.Domain))
	ve.Props.SetText(ical.PropSummary, s.Title)
	ve.Props.SetDateTime(ical.PropDateTimeStamp, opts.Stamp.UTC())
	ve.Props.SetDateTime(ical.PropDateTimeStart, s.StartTime.On(s.Date))
	ve.Props.SetDateTime(ical.PropDateTimeEnd, s.EndTime.On(s.Date))

	if strings.TrimSpace(s.Topic) != "" {
		ve.Props.SetText(ical.PropDescription, s.Topic)
	}
	if s.Location != "" {
		ve.Props.SetText(ical.PropLocation, s.Location)
	}
	if opts.SessionURL != nil {
		ve.Props.SetText(ical.PropURL, opts.SessionURL(s.ID))
	}
	if s.Owner != nil && s.Owner.Email != "" {
		p := ical.NewProp(ical.PropOrganizer)
		p.Params.Set(ical.ParamCommonName, s.Owner.Name)
		p.SetText(fmt.Sprintf("mailto:%s", s.Owner.Email))
		ve.Props.Add(p)
	}
	return ve
}
