package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/growth-sessions/internal/common/clock"
	"github.com/oksasatya/growth-sessions/internal/domain/calendar"
	"github.com/oksasatya/growth-sessions/internal/domain/entity"
	"github.com/oksasatya/growth-sessions/internal/domain/event"
	"github.com/oksasatya/growth-sessions/internal/domain/policy"
	repo "github.com/oksasatya/growth-sessions/internal/domain/repository"
	"github.com/oksasatya/growth-sessions/pkg/api"
)

// Searcher finds session ids for a free-text query, best match first.
type Searcher interface {
	Search(ctx context.Context, q string, publicOnly bool, size int) ([]int64, error)
}

type GrowthSessionService struct {
	Repo           repo.GrowthSessionRepository
	Comments       repo.CommentRepository
	Users          repo.UserRepository
	Events         event.Publisher
	Clock          clock.Clock
	Location       *time.Location
	DefaultEndTime calendar.TimeOfDay
	Search         Searcher
	Logger         *logrus.Logger
}

func NewGrowthSessionService(
	sessions repo.GrowthSessionRepository,
	comments repo.CommentRepository,
	users repo.UserRepository,
	events event.Publisher,
	clk clock.Clock,
	loc *time.Location,
	defaultEnd calendar.TimeOfDay,
	search Searcher,
	logger *logrus.Logger,
) *GrowthSessionService {
	if clk == nil {
		clk = &clock.DefaultClock{}
	}
	if loc == nil {
		loc = time.UTC
	}
	return &GrowthSessionService{
		Repo:           sessions,
		Comments:       comments,
		Users:          users,
		Events:         events,
		Clock:          clk,
		Location:       loc,
		DefaultEndTime: defaultEnd,
		Search:         search,
		Logger:         logger,
	}
}

// GrowthSessionInput is a validated create/update request.
type GrowthSessionInput struct {
	Title            string
	Topic            string
	Location         string
	Date             calendar.DateTime
	StartTime        calendar.TimeOfDay
	EndTime          *calendar.TimeOfDay
	IsPublic         bool
	AttendeeLimit    *int
	DiscordChannelID *string
}

// InputFromRequest parses the wire request. Dates are read in loc.
func InputFromRequest(req api.StoreGrowthSessionRequest, loc *time.Location) (GrowthSessionInput, error) {
	date, err := calendar.ParseByDate(req.Date, loc)
	if err != nil {
		return GrowthSessionInput{}, &FieldError{Field: "date", Message: "must be a date formatted YYYY-MM-DD"}
	}
	start, err := calendar.ParseTimeOfDay(req.StartTime)
	if err != nil {
		return GrowthSessionInput{}, &FieldError{Field: "start_time", Message: "must be a time such as 4:45 pm or 16:45"}
	}
	in := GrowthSessionInput{
		Title:         strings.TrimSpace(req.Title),
		Topic:         req.Topic,
		Location:      strings.TrimSpace(req.Location),
		Date:          date,
		StartTime:     start,
		IsPublic:      req.IsPublic,
		AttendeeLimit: req.AttendeeLimit,
	}
	if strings.TrimSpace(req.EndTime) != "" {
		end, err := calendar.ParseTimeOfDay(req.EndTime)
		if err != nil {
			return GrowthSessionInput{}, &FieldError{Field: "end_time", Message: "must be a time such as 4:45 pm or 16:45"}
		}
		in.EndTime = &end
	}
	if req.DiscordChannelID != nil && strings.TrimSpace(*req.DiscordChannelID) != "" {
		ch := strings.TrimSpace(*req.DiscordChannelID)
		in.DiscordChannelID = &ch
	}
	return in, nil
}

// Today is the current calendar day in the configured location.
func (s *GrowthSessionService) Today() calendar.DateTime {
	return calendar.Today(s.Clock, s.Location)
}

// Week returns Monday to Friday of the week containing date (today when zero). Guests only
// see public sessions.
func (s *GrowthSessionService) Week(ctx context.Context, date calendar.DateTime, viewerID *int64) (calendar.Week[*entity.GrowthSession], error) {
	if date.IsZero() {
		date = s.Today()
	}
	days := calendar.Weekdays(date)
	sessions, err := s.Repo.List(ctx, repo.GrowthSessionFilter{
		From:       days[0],
		To:         days[len(days)-1],
		PublicOnly: viewerID == nil,
	})
	if err != nil {
		return calendar.Week[*entity.GrowthSession]{}, fmt.Errorf("list week of %s: %w", date, err)
	}
	return calendar.Bucket(days, sessions, (*entity.GrowthSession).Day), nil
}

// Get hides private sessions from guests.
func (s *GrowthSessionService) Get(ctx context.Context, id int64, viewerID *int64) (*entity.GrowthSession, error) {
	gs, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if viewerID == nil && !gs.IsPublic {
		return nil, ErrSessionNotFound
	}
	return gs, nil
}

func (s *GrowthSessionService) Create(ctx context.Context, ownerID int64, in GrowthSessionInput) (*entity.GrowthSession, error) {
	if in.Date.IsBeforeDay(s.Today()) {
		return nil, &FieldError{Field: "date", Message: "must be today or later"}
	}
	gs := &entity.GrowthSession{OwnerID: ownerID}
	if err := s.apply(gs, in); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, gs); err != nil {
		return nil, fmt.Errorf("create growth session: %w", err)
	}
	created, err := s.load(ctx, gs.ID)
	if err != nil {
		return nil, err
	}
	count("created")
	s.publish(ctx, event.SessionCreated, created, created.Owner, "")
	return created, nil
}

func (s *GrowthSessionService) Update(ctx context.Context, actorID, id int64, in GrowthSessionInput) (*entity.GrowthSession, error) {
	gs, err := s.ownedUpcoming(ctx, actorID, id)
	if err != nil {
		return nil, err
	}
	if in.Date.IsBeforeDay(s.Today()) {
		return nil, &FieldError{Field: "date", Message: "must be today or later"}
	}
	if in.AttendeeLimit != nil && *in.AttendeeLimit < len(gs.Attendees) {
		return nil, &FieldError{Field: "attendee_limit", Message: fmt.Sprintf("must be at least %d, the number of current attendees", len(gs.Attendees))}
	}
	if err := s.apply(gs, in); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, gs); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("update growth session %d: %w", id, err)
	}
	updated, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	count("updated")
	s.publish(ctx, event.SessionUpdated, updated, updated.Owner, "")
	return updated, nil
}

func (s *GrowthSessionService) Delete(ctx context.Context, actorID, id int64) error {
	gs, err := s.ownedUpcoming(ctx, actorID, id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("delete growth session %d: %w", id, err)
	}
	count("deleted")
	s.publish(ctx, event.SessionDeleted, gs, gs.Owner, "")
	return nil
}

func (s *GrowthSessionService) Join(ctx context.Context, userID, id int64) (*entity.GrowthSession, error) {
	gs, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	switch {
	case policy.IsPast(gs, s.Today()):
		return nil, ErrSessionPassed
	case gs.IsOwnedBy(userID):
		return nil, ErrForbidden
	case gs.HasAttendee(userID):
		return nil, ErrAlreadyAttending
	case gs.IsFull():
		return nil, ErrSessionFull
	}

	if err := s.Repo.AddAttendee(ctx, id, userID); err != nil {
		switch {
		case errors.Is(err, repo.ErrNotFound):
			return nil, ErrSessionNotFound
		case errors.Is(err, repo.ErrAttendeeLimitReached):
			return nil, ErrSessionFull
		case errors.Is(err, repo.ErrAlreadyAttending):
			return nil, ErrAlreadyAttending
		}
		return nil, fmt.Errorf("join growth session %d: %w", id, err)
	}
	joined, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	count("joined")
	s.publish(ctx, event.SessionAttendeeChanged, joined, s.actor(ctx, userID), event.Joined)
	return joined, nil
}

func (s *GrowthSessionService) Leave(ctx context.Context, userID, id int64) (*entity.GrowthSession, error) {
	gs, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if policy.IsPast(gs, s.Today()) {
		return nil, ErrSessionPassed
	}
	if !gs.HasAttendee(userID) {
		return nil, ErrNotAttending
	}
	if err := s.Repo.RemoveAttendee(ctx, id, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotAttending
		}
		return nil, fmt.Errorf("leave growth session %d: %w", id, err)
	}
	left, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	count("left")
	s.publish(ctx, event.SessionAttendeeChanged, left, s.actor(ctx, userID), event.Left)
	return left, nil
}

func (s *GrowthSessionService) AddComment(ctx context.Context, userID, sessionID int64, content string) (*entity.Comment, error) {
	if _, err := s.load(ctx, sessionID); err != nil {
		return nil, err
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, &FieldError{Field: "content", Message: "is required"}
	}
	c := &entity.Comment{GrowthSessionID: sessionID, UserID: userID, Content: content}
	if err := s.Comments.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("comment on growth session %d: %w", sessionID, err)
	}
	c.User = s.actor(ctx, userID)
	count("commented")
	return c, nil
}

// DeleteComment lets only the author remove a comment.
func (s *GrowthSessionService) DeleteComment(ctx context.Context, userID, sessionID, commentID int64) error {
	c, err := s.Comments.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	if c.GrowthSessionID != sessionID {
		return ErrCommentNotFound
	}
	if c.UserID != userID {
		return ErrForbidden
	}
	if err := s.Comments.Delete(ctx, commentID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	return nil
}

// SearchSessions returns matches in relevance order.
func (s *GrowthSessionService) SearchSessions(ctx context.Context, q string, viewerID *int64, size int) ([]*entity.GrowthSession, error) {
	if s.Search == nil {
		return nil, ErrSearchDisabled
	}
	q = strings.TrimSpace(q)
	if q == "" {
		return []*entity.GrowthSession{}, nil
	}
	ids, err := s.Search.Search(ctx, q, viewerID == nil, size)
	if err != nil {
		return nil, fmt.Errorf("search growth sessions: %w", err)
	}
	found, err := s.Repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*entity.GrowthSession, len(found))
	for _, gs := range found {
		byID[gs.ID] = gs
	}
	out := make([]*entity.GrowthSession, 0, len(ids))
	for _, id := range ids {
		gs, ok := byID[id]
		if !ok || (viewerID == nil && !gs.IsPublic) {
			continue
		}
		out = append(out, gs)
	}
	return out, nil
}

// Participating lists sessions from since onward that the user owns or attends.
func (s *GrowthSessionService) Participating(ctx context.Context, userID int64, since calendar.DateTime) ([]*entity.GrowthSession, error) {
	return s.Repo.List(ctx, repo.GrowthSessionFilter{From: since, ParticipantID: userID})
}

// OnDay lists every session on d.
func (s *GrowthSessionService) OnDay(ctx context.Context, d calendar.DateTime) ([]*entity.GrowthSession, error) {
	return s.Repo.List(ctx, repo.GrowthSessionFilter{From: d, To: d})
}

func (s *GrowthSessionService) load(ctx context.Context, id int64) (*entity.GrowthSession, error) {
	gs, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("load growth session %d: %w", id, err)
	}
	return gs, nil
}

func (s *GrowthSessionService) ownedUpcoming(ctx context.Context, actorID, id int64) (*entity.GrowthSession, error) {
	gs, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !gs.IsOwnedBy(actorID) {
		return nil, ErrForbidden
	}
	if policy.IsPast(gs, s.Today()) {
		return nil, ErrSessionPassed
	}
	return gs, nil
}

func (s *GrowthSessionService) apply(gs *entity.GrowthSession, in GrowthSessionInput) error {
	end := s.DefaultEndTime
	if in.EndTime != nil {
		end = *in.EndTime
	}
	if !in.StartTime.Before(end) {
		return &FieldError{Field: "end_time", Message: "must be after the start time"}
	}
	if in.AttendeeLimit != nil && *in.AttendeeLimit < 1 {
		return &FieldError{Field: "attendee_limit", Message: "must be at least 1"}
	}
	gs.Title = in.Title
	gs.Topic = in.Topic
	gs.Location = in.Location
	gs.Date = in.Date
	gs.StartTime = in.StartTime
	gs.EndTime = end
	gs.IsPublic = in.IsPublic
	gs.AttendeeLimit = in.AttendeeLimit
	gs.DiscordChannelID = in.DiscordChannelID
	return nil
}

func (s *GrowthSessionService) actor(ctx context.Context, userID int64) *entity.User {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Warn("load actor failed")
		}
		return nil
	}
	return u
}

// publish never fails the request; listener errors are only logged.
func (s *GrowthSessionService) publish(ctx context.Context, kind event.Kind, gs *entity.GrowthSession, actor *entity.User, change event.AttendeeChange) {
	if s.Events == nil {
		return
	}
	e := event.Event{
		Kind:       kind,
		Session:    gs.Clone(),
		Actor:      actor,
		Change:     change,
		OccurredAt: s.Clock.Now(),
	}
	if err := s.Events.Dispatch(ctx, e); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithFields(logrus.Fields{"kind": kind, "session_id": gs.ID}).Warn("event listeners failed")
	}
}
