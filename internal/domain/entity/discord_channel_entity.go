package entity

// DiscordChannel is a reference to a guild voice channel. The list is owned by Discord and
// mirrored locally by the channel sync job.
type DiscordChannel struct {
	ID   string
	Name string
}
