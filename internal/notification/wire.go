package notification

import (
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/growth-sessions/config"
	"github.com/oksasatya/growth-sessions/internal/infrastructure/discord"
	"github.com/oksasatya/growth-sessions/pkg/mailer"
)

// NewDiscordSinkFromConfig builds the direct sink. Without DISCORD_TOKEN nothing is posted;
// without Mailgun settings (or with MAIL_SEND_ENABLED=false) nothing is emailed. The Discord
// client is returned too so callers can reuse it for channel sync.
func NewDiscordSinkFromConfig(cfg *config.Config, logger *logrus.Logger) (*DiscordSink, *discord.Client, error) {
	sink := &DiscordSink{
		DefaultChannel: cfg.DiscordDefaultChannelID,
		AppName:        cfg.AppName,
		SessionURL:     cfg.SessionURL,
		Log:            logger,
	}
	var client *discord.Client
	if cfg.DiscordToken != "" {
		c, err := discord.New(cfg.DiscordToken, cfg.DiscordGuildID)
		if err != nil {
			return nil, nil, err
		}
		client = c
		sink.Poster = c
	} else if logger != nil {
		logger.Warn("DISCORD_TOKEN not set; notifications will not be posted")
	}
	if cfg.MailSendEnabled && cfg.MailgunDomain != "" && cfg.MailgunAPIKey != "" && cfg.MailgunSender != "" {
		sink.Mailer = mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)
	}
	return sink, client, nil
}
