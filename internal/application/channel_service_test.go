package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oksasatya/growth-sessions/internal/domain/entity"
	repoMocks "github.com/oksasatya/growth-sessions/internal/domain/repository/mocks"
	"github.com/oksasatya/growth-sessions/pkg/helpers"
)

type stubFetcher struct {
	channels []entity.DiscordChannel
	err      error
}

func (f stubFetcher) VoiceChannels(context.Context) ([]entity.DiscordChannel, error) {
	return f.channels, f.err
}

func newChannelService(t *testing.T) (*ChannelService, *repoMocks.MockDiscordChannelRepository, *miniredis.Miniredis) {
	t.Helper()
	ctrl := gomock.NewController(t)
	channels := repoMocks.NewMockDiscordChannelRepository(ctrl)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewChannelService(channels, rdb, time.Minute, nil), channels, mr
}

func TestChannelListIsCached(t *testing.T) {
	svc, channels, mr := newChannelService(t)
	ctx := context.Background()
	stored := []entity.DiscordChannel{{ID: "1", Name: "Mob 1"}, {ID: "2", Name: "Mob 2"}}

	channels.EXPECT().List(gomock.Any()).Return(stored, nil).Times(1)

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, stored, got)
	assert.True(t, mr.Exists(helpers.KeyDiscordChannels))

	got, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, stored, got)

	mr.FastForward(2 * time.Minute)
	assert.False(t, mr.Exists(helpers.KeyDiscordChannels))
}

func TestChannelListFallsBackWhenRedisIsDown(t *testing.T) {
	svc, channels, mr := newChannelService(t)
	mr.Close()

	channels.EXPECT().List(gomock.Any()).Return(nil, nil)

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestChannelSyncReplacesAndDropsCache(t *testing.T) {
	svc, channels, mr := newChannelService(t)
	ctx := context.Background()
	require.NoError(t, mr.Set(helpers.KeyDiscordChannels, `[{"ID":"old","Name":"Old"}]`))

	fresh := []entity.DiscordChannel{{ID: "3", Name: "Mob 3"}}
	channels.EXPECT().ReplaceAll(gomock.Any(), fresh).Return(nil)

	n, err := svc.Sync(ctx, stubFetcher{channels: fresh})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.False(t, mr.Exists(helpers.KeyDiscordChannels))
}

func TestChannelSyncKeepsListWhenDiscordFails(t *testing.T) {
	svc, _, _ := newChannelService(t)

	_, err := svc.Sync(context.Background(), stubFetcher{err: errors.New("401 unauthorized")})
	assert.ErrorContains(t, err, "fetch discord channels")
}

func TestChannelListDropsCorruptCache(t *testing.T) {
	svc, channels, mr := newChannelService(t)
	require.NoError(t, mr.Set(helpers.KeyDiscordChannels, "not json"))

	stored := []entity.DiscordChannel{{ID: "1", Name: "Mob 1"}}
	channels.EXPECT().List(gomock.Any()).Return(stored, nil)

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stored, got)

	raw, err := mr.Get(helpers.KeyDiscordChannels)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"ID":"1","Name":"Mob 1"}]`, raw)
}
