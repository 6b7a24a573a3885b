// Package platform is the boundary between the bot and the Discord API.
package platform

import (
	"time"

	"github.com/Jacobbrewer1/discordgo"
)

// Session is the set of Discord API calls the bot makes. Every call is a suspension point and may fail.
type Session interface {
	// GuildChannelCreateComplex creates a channel in a guild.
	GuildChannelCreateComplex(guildID string, data discordgo.GuildChannelCreateData) (*discordgo.Channel, error)

	// ChannelEditComplex edits a channel.
	ChannelEditComplex(channelID string, data *discordgo.ChannelEdit) (*discordgo.Channel, error)

	// ChannelPermissionSet creates or updates a permission overwrite on a channel.
	ChannelPermissionSet(channelID, targetID string, targetType discordgo.PermissionOverwriteType, allow, deny int64) error

	// ChannelMessageSendComplex sends a message to a channel.
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend) (*discordgo.Message, error)

	// ChannelDelete permanently removes a channel.
	ChannelDelete(channelID string) (*discordgo.Channel, error)

	// Channel resolves a channel.
	Channel(channelID string) (*discordgo.Channel, error)

	// Guild resolves a guild.
	Guild(guildID string) (*discordgo.Guild, error)

	// InteractionRespond responds to an interaction.
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse) error

	// HeartbeatLatency is the latency of the gateway connection.
	HeartbeatLatency() time.Duration

	// GuildCount is the number of guilds the bot is in.
	GuildCount() int
}

type discordSession struct {
	s *discordgo.Session
}

// Wrap adapts a discordgo session to a Session. Lookups are served from the state cache when possible.
func Wrap(s *discordgo.Session) Session {
	return &discordSession{s: s}
}

func (d *discordSession) GuildChannelCreateComplex(guildID string, data discordgo.GuildChannelCreateData) (*discordgo.Channel, error) {
	return d.s.GuildChannelCreateComplex(guildID, data)
}

func (d *discordSession) ChannelEditComplex(channelID string, data *discordgo.ChannelEdit) (*discordgo.Channel, error) {
	return d.s.ChannelEditComplex(channelID, data)
}

func (d *discordSession) ChannelPermissionSet(channelID, targetID string, targetType discordgo.PermissionOverwriteType, allow, deny int64) error {
	return d.s.ChannelPermissionSet(channelID, targetID, targetType, allow, deny)
}

func (d *discordSession) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend) (*discordgo.Message, error) {
	return d.s.ChannelMessageSendComplex(channelID, data)
}

func (d *discordSession) ChannelDelete(channelID string) (*discordgo.Channel, error) {
	return d.s.ChannelDelete(channelID)
}

func (d *discordSession) Channel(channelID string) (*discordgo.Channel, error) {
	if d.s.State != nil {
		if c, err := d.s.State.Channel(channelID); err == nil {
			return c, nil
		}
	}
	return d.s.Channel(channelID)
}

func (d *discordSession) Guild(guildID string) (*discordgo.Guild, error) {
	if d.s.State != nil {
		if g, err := d.s.State.Guild(guildID); err == nil {
			return g, nil
		}
	}
	return d.s.Guild(guildID)
}

func (d *discordSession) InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse) error {
	return d.s.InteractionRespond(interaction, resp)
}

func (d *discordSession) HeartbeatLatency() time.Duration {
	return d.s.HeartbeatLatency()
}

func (d *discordSession) GuildCount() int {
	if d.s.State == nil {
		return 0
	}

	d.s.State.RLock()
	defer d.s.State.RUnlock()
	return len(d.s.State.Guilds)
}
