package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/growth-sessions/internal/domain/entity"
)

func TestVoiceOnlyFiltersAndOrders(t *testing.T) {
	channels := []*discordgo.Channel{
		{ID: "1", Name: "general", Type: discordgo.ChannelTypeGuildText, Position: 0},
		{ID: "2", Name: "Mob 2", Type: discordgo.ChannelTypeGuildVoice, Position: 3},
		nil,
		{ID: "3", Name: "Mob 1", Type: discordgo.ChannelTypeGuildVoice, Position: 1},
	}

	got := VoiceOnly(channels)
	assert.Equal(t, []entity.DiscordChannel{{ID: "3", Name: "Mob 1"}, {ID: "2", Name: "Mob 2"}}, got)
}

func TestNewRequiresToken(t *testing.T) {
	_, err := New("", "guild")
	assert.Error(t, err)

	c, err := New("token", "")
	require.NoError(t, err)
	_, err = c.VoiceChannels(t.Context())
	assert.Error(t, err)
}
