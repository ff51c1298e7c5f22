package archive

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oksasatya/growth-sessions/internal/common/clock/mocks"
	"github.com/oksasatya/growth-sessions/internal/domain/calendar"
	"github.com/oksasatya/growth-sessions/internal/domain/entity"
	"github.com/oksasatya/growth-sessions/internal/domain/event"
)

type upload struct {
	path, contentType string
	body              []byte
}

type fakeUploader struct {
	uploads []upload
	err     error
}

func (f *fakeUploader) Upload(_ context.Context, objectPath, contentType string, r io.Reader) (string, error) {
	b, _ := io.ReadAll(r)
	f.uploads = append(f.uploads, upload{objectPath, contentType, b})
	return "gs://bucket/" + objectPath, f.err
}

func deletedEvent() event.Event {
	return event.Event{
		Kind: event.SessionDeleted,
		Session: &entity.GrowthSession{
			ID:        7,
			OwnerID:   1,
			Owner:     &entity.User{ID: 1, Name: "Grace"},
			Title:     "Refactoring katas",
			Date:      calendar.MustParseByDate("2024-03-04"),
			StartTime: calendar.MustParseTimeOfDay("15:30"),
			EndTime:   calendar.MustParseTimeOfDay("17:00"),
		},
		Actor: &entity.User{ID: 1, Name: "Grace"},
	}
}

func TestArchiverUploadsDeletedSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	clk := mocks.NewMockClock(ctrl)
	clk.EXPECT().Now().Return(time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC))

	up := &fakeUploader{}
	a := NewArchiver(up, clk, nil)

	require.NoError(t, a.Handle(context.Background(), deletedEvent()))
	require.Len(t, up.uploads, 1)
	assert.True(t, strings.HasPrefix(up.uploads[0].path, "growth_sessions/2024-03-04/7-"))
	assert.Equal(t, "application/json", up.uploads[0].contentType)

	var rec Record
	require.NoError(t, json.Unmarshal(up.uploads[0].body, &rec))
	assert.Equal(t, "2024-03-02T10:00:00Z", rec.DeletedAt)
	assert.Equal(t, "Refactoring katas", rec.Session.Title)
	assert.Nil(t, rec.Session.Permissions)
	require.NotNil(t, rec.DeletedBy)
	assert.Equal(t, "Grace", rec.DeletedBy.Name)
}

func TestArchiverIgnoresOtherKinds(t *testing.T) {
	up := &fakeUploader{}
	a := NewArchiver(up, nil, nil)

	e := deletedEvent()
	e.Kind = event.SessionUpdated
	require.NoError(t, a.Handle(context.Background(), e))
	assert.Empty(t, up.uploads)
}

func TestArchiverWrapsUploadError(t *testing.T) {
	boom := errors.New("bucket gone")
	a := NewArchiver(&fakeUploader{err: boom}, nil, nil)
	assert.ErrorIs(t, a.Handle(context.Background(), deletedEvent()), boom)
}

func TestRegisterOnlyOnDelete(t *testing.T) {
	d := event.NewDispatcher()
	NewArchiver(&fakeUploader{}, nil, nil).Register(d)
	assert.Equal(t, 1, d.Listeners(event.SessionDeleted))
	assert.Equal(t, 0, d.Listeners(event.SessionCreated))
}
