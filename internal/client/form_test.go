package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/oksasatya/growth-sessions/internal/client/mocks"
	"github.com/oksasatya/growth-sessions/pkg/api"
)

type FormTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	api  *mocks.MockFormAPI
	form *Form
}

func (s *FormTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.api = mocks.NewMockFormAPI(s.ctrl)
	s.form = NewForm(s.api, "2020-05-08")
}

func (s *FormTestSuite) fillRequired() {
	s.form.SetStartTime("3:30 pm")
	s.form.SetTitle("Something")
	s.form.SetTopic("Anything")
	s.form.SetLocation("Anywhere")
}

func TestFormTestSuite(t *testing.T) {
	suite.Run(t, new(FormTestSuite))
}

func (s *FormTestSuite) TestStartsIncomplete() {
	s.Equal(Incomplete, s.form.State())
	s.False(s.form.CanSubmit())
}

func (s *FormTestSuite) TestEveryRequiredFieldMatters() {
	s.fillRequired()
	s.Equal(Valid, s.form.State())

	s.form.SetTopic("  ")
	s.Equal(Incomplete, s.form.State())
	s.form.SetTopic("Anything")
	s.Equal(Valid, s.form.State())

	s.form.SetStartTime("")
	s.Equal(Incomplete, s.form.State())
}

func (s *FormTestSuite) TestSubmitRefusedWhileIncomplete() {
	s.form.SetTitle("Something")

	_, err := s.form.Submit(context.Background())
	s.ErrorIs(err, ErrIncomplete)
	s.ErrorIs(s.form.Err(), ErrIncomplete)
}

func (s *FormTestSuite) TestSubmitWithNoLimitOmitsAttendeeLimit() {
	s.fillRequired()
	s.form.SetLimit(4)
	s.form.SetNoLimit(true)

	s.api.EXPECT().
		Store(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req api.StoreGrowthSessionRequest) (api.GrowthSession, error) {
			s.Nil(req.AttendeeLimit)
			s.Equal("05:00 pm", req.EndTime)
			s.Equal("2020-05-08", req.Date)
			s.Equal("3:30 pm", req.StartTime)
			return api.GrowthSession{ID: 1}, nil
		})

	_, err := s.form.Submit(context.Background())
	s.Require().NoError(err)
}

func (s *FormTestSuite) TestUncheckingNoLimitRestoresTypedLimit() {
	s.fillRequired()
	s.form.SetLimit(4)
	s.form.SetNoLimit(true)
	s.Nil(s.form.Request().AttendeeLimit)

	s.form.SetNoLimit(false)
	s.Require().NotNil(s.form.Request().AttendeeLimit)
	s.Equal(4, *s.form.Request().AttendeeLimit)
}

func (s *FormTestSuite) TestSubmitWithLimitAndChannel() {
	s.fillRequired()
	s.form.SetLimit(4)
	s.form.SelectChannel(api.DiscordChannel{ID: "1234567890", Name: "Chat One"})
	s.form.SetPublic(true)

	s.api.EXPECT().
		Store(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req api.StoreGrowthSessionRequest) (api.GrowthSession, error) {
			s.Require().NotNil(req.AttendeeLimit)
			s.Equal(4, *req.AttendeeLimit)
			s.Require().NotNil(req.DiscordChannelID)
			s.Equal("1234567890", *req.DiscordChannelID)
			s.Equal("Anywhere", req.Location)
			s.True(req.IsPublic)
			return api.GrowthSession{ID: 1}, nil
		})

	_, err := s.form.Submit(context.Background())
	s.Require().NoError(err)
}

func (s *FormTestSuite) TestSubmittedCallbacksRunOnSuccess() {
	s.fillRequired()
	var got []int64
	s.form.OnSubmitted(func(gs api.GrowthSession) { got = append(got, gs.ID) })

	s.api.EXPECT().Store(gomock.Any(), gomock.Any()).Return(api.GrowthSession{ID: 9}, nil)

	_, err := s.form.Submit(context.Background())
	s.Require().NoError(err)
	s.Equal([]int64{9}, got)
	s.NoError(s.form.Err())
}

func (s *FormTestSuite) TestFailureIsKeptAndNothingIsEmitted() {
	s.fillRequired()
	called := false
	s.form.OnSubmitted(func(api.GrowthSession) { called = true })
	apiErr := &Error{Status: 422, Message: "validation failed", Details: map[string]string{"date": "must be today or later"}}

	s.api.EXPECT().Store(gomock.Any(), gomock.Any()).Return(api.GrowthSession{}, apiErr)

	_, err := s.form.Submit(context.Background())
	var got *Error
	s.Require().True(errors.As(err, &got))
	s.Equal("must be today or later", got.Details["date"])
	s.Equal(err, s.form.Err())
	s.False(called)
}

func (s *FormTestSuite) TestChannelAutofillsEmptyLocation() {
	s.form.SelectChannel(api.DiscordChannel{ID: "1", Name: "Chat One"})
	s.Equal("Discord Channel: Chat One", s.form.Location())

	s.form.SelectChannel(api.DiscordChannel{ID: "2", Name: "Chat Two"})
	s.Equal("Discord Channel: Chat Two", s.form.Location())
}

func (s *FormTestSuite) TestChannelNeverClobbersManualLocation() {
	s.form.SetLocation("Board room")
	s.form.SelectChannel(api.DiscordChannel{ID: "1", Name: "Chat One"})
	s.Equal("Board room", s.form.Location())
}

func (s *FormTestSuite) TestManualEditAfterAutofillSticks() {
	s.form.SelectChannel(api.DiscordChannel{ID: "1", Name: "Chat One"})
	s.form.SetLocation("Discord Channel: Chat One (bring headphones)")
	s.form.SelectChannel(api.DiscordChannel{ID: "2", Name: "Chat Two"})
	s.Equal("Discord Channel: Chat One (bring headphones)", s.form.Location())
}

func (s *FormTestSuite) TestClearChannelDropsAutofilledLocation() {
	s.form.SelectChannel(api.DiscordChannel{ID: "1", Name: "Chat One"})
	s.form.ClearChannel()
	s.Empty(s.form.Location())
	s.Nil(s.form.Request().DiscordChannelID)
}

func TestEditFormPrefillsAndUpdates(t *testing.T) {
	ctrl := gomock.NewController(t)
	formAPI := mocks.NewMockFormAPI(ctrl)
	existing := sessionPayload()
	existing.IsPublic = true
	channel := "c1"
	existing.DiscordChannelID = &channel

	form := NewEditForm(formAPI, existing)
	assert.True(t, form.IsEdit())
	assert.Equal(t, Valid, form.State())
	assert.False(t, form.NoLimit())

	req := form.Request()
	assert.True(t, req.IsPublic)
	assert.Equal(t, "Mob programming", req.Title)
	assert.Equal(t, "05:00 pm", req.EndTime)
	require.NotNil(t, req.AttendeeLimit)
	assert.Equal(t, 4, *req.AttendeeLimit)
	require.NotNil(t, req.DiscordChannelID)
	assert.Equal(t, "c1", *req.DiscordChannelID)

	form.SetTitle("Renamed")
	formAPI.EXPECT().
		Update(gomock.Any(), int64(10), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, req api.StoreGrowthSessionRequest) (api.GrowthSession, error) {
			assert.Equal(t, "Renamed", req.Title)
			return existing, nil
		})
	_, err := form.Submit(context.Background())
	require.NoError(t, err)
}

func TestEditFormWithoutLimitStartsChecked(t *testing.T) {
	existing := sessionPayload()
	existing.AttendeeLimit = nil
	form := NewEditForm(nil, existing)
	assert.True(t, form.NoLimit())
	assert.Nil(t, form.Request().AttendeeLimit)
}

func TestEditFormMovesAutofilledLocationToNewChannel(t *testing.T) {
	existing := sessionPayload()
	channel := "1"
	existing.DiscordChannelID = &channel
	existing.Location = "Discord Channel: Chat One"

	form := NewEditForm(nil, existing)
	form.SelectChannel(api.DiscordChannel{ID: "2", Name: "Chat Two"})

	req := form.Request()
	require.NotNil(t, req.DiscordChannelID)
	assert.Equal(t, "2", *req.DiscordChannelID)
	assert.Equal(t, "Discord Channel: Chat Two", req.Location)
}

func TestEditFormKeepsTypedLocationOnNewChannel(t *testing.T) {
	existing := sessionPayload()
	channel := "1"
	existing.DiscordChannelID = &channel
	existing.Location = "Board room"

	form := NewEditForm(nil, existing)
	form.SelectChannel(api.DiscordChannel{ID: "2", Name: "Chat Two"})

	assert.Equal(t, "Board room", form.Location())
	require.NotNil(t, form.Request().DiscordChannelID)
	assert.Equal(t, "2", *form.Request().DiscordChannelID)
}
