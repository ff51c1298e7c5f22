// Package discord talks to the guild the growth sessions are run in.
package discord

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/bwmarrin/discordgo"

	"github.com/oksasatya/growth-sessions/internal/domain/entity"
)

// Client posts messages and lists voice channels over Discord's REST API. It never opens
// the gateway websocket.
type Client struct {
	session *discordgo.Session
	guildID string
}

func New(token, guildID string) (*Client, error) {
	if token == "" {
		return nil, errors.New("discord token cannot be empty")
	}
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	return &Client{session: session, guildID: guildID}, nil
}

// Post sends content as an embed so the session title renders bold.
func (c *Client) Post(ctx context.Context, channelID, content string) error {
	_, err := c.session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{{
			Description: content,
			Color:       0x2f855a,
		}},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("send message to %s: %w", channelID, err)
	}
	return nil
}

// VoiceChannels lists the guild's voice channels sorted by their position in the sidebar.
func (c *Client) VoiceChannels(ctx context.Context) ([]entity.DiscordChannel, error) {
	if c.guildID == "" {
		return nil, errors.New("discord guild id is not configured")
	}
	channels, err := c.session.GuildChannels(c.guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("list channels of guild %s: %w", c.guildID, err)
	}
	return VoiceOnly(channels), nil
}

// VoiceOnly keeps voice channels in sidebar order.
func VoiceOnly(channels []*discordgo.Channel) []entity.DiscordChannel {
	voice := make([]*discordgo.Channel, 0, len(channels))
	for _, ch := range channels {
		if ch != nil && ch.Type == discordgo.ChannelTypeGuildVoice {
			voice = append(voice, ch)
		}
	}
	sort.SliceStable(voice, func(i, j int) bool { return voice[i].Position < voice[j].Position })

	out := make([]entity.DiscordChannel, 0, len(voice))
	for _, ch := range voice {
		out = append(out, entity.DiscordChannel{ID: ch.ID, Name: ch.Name})
	}
	return out
}
