// Package archive keeps a JSON copy of every deleted growth session in object storage.
package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"strconv"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/growth-sessions/internal/common/clock"
	"github.com/oksasatya/growth-sessions/internal/domain/calendar"
	"github.com/oksasatya/growth-sessions/internal/domain/event"
	"github.com/oksasatya/growth-sessions/internal/presenter"
	"github.com/oksasatya/growth-sessions/pkg/api"
	"github.com/oksasatya/growth-sessions/pkg/helpers"
)

type Uploader interface {
	Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error)
}

// GCSUploader writes into a single bucket.
type GCSUploader struct {
	Client *storage.Client
	Bucket string
}

func (u GCSUploader) Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error) {
	return helpers.UploadObject(ctx, u.Client, u.Bucket, objectPath, contentType, r)
}

// Record is the archived document.
type Record struct {
	DeletedAt string            `json:"deleted_at"`
	DeletedBy *api.User         `json:"deleted_by,omitempty"`
	Session   api.GrowthSession `json:"session"`
}

type Archiver struct {
	up     Uploader
	clock  clock.Clock
	logger *logrus.Logger
}

func NewArchiver(up Uploader, c clock.Clock, logger *logrus.Logger) *Archiver {
	if c == nil {
		c = &clock.DefaultClock{}
	}
	return &Archiver{up: up, clock: c, logger: logger}
}

func (a *Archiver) Register(d *event.Dispatcher) {
	d.Subscribe(event.SessionDeleted, a)
}

// Handle uploads deleted sessions under growth_sessions/<date>/<id>-<uuid>.json.
func (a *Archiver) Handle(ctx context.Context, e event.Event) error {
	if e.Kind != event.SessionDeleted || e.Session == nil {
		return nil
	}
	rec := Record{
		DeletedAt: a.clock.Now().UTC().Format(time.RFC3339),
		Session:   presenter.GrowthSession(e.Session, nil, calendar.DateTime{}),
	}
	if e.Actor != nil {
		u := presenter.User(*e.Actor, false)
		rec.DeletedBy = &u
	}
	b, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}

	object := ObjectPath(e.Session.Date.ToDateString(), e.Session.ID, uuid.NewString())
	url, err := a.up.Upload(ctx, object, "application/json", bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("archive session %d: %w", e.Session.ID, err)
	}
	if a.logger != nil {
		a.logger.WithFields(logrus.Fields{"session_id": e.Session.ID, "object": url}).Info("session archived")
	}
	return nil
}

func ObjectPath(date string, id int64, suffix string) string {
	return path.Join("growth_sessions", date, strconv.FormatInt(id, 10)+"-"+suffix+".json")
}
