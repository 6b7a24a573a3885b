package platformtest

import (
	"github.com/Jacobbrewer1/artemis/pkg/entities"
	"github.com/Jacobbrewer1/discordgo"
)

// Fixture IDs used by NewGuild.
const (
	GuildID          = "guild"
	SupportRoleID    = "support-role"
	IntakeChannelID  = "intake"
	OpenCategoryID   = "open-category"
	ClosedCategoryID = "closed-category"
	LogChannelID     = "log"
)

// NewGuild registers a guild with its intake channel, categories and log channel, and returns the matching
// configuration.
func NewGuild(s *Session) *entities.GuildConfig {
	s.AddGuild(&discordgo.Guild{ID: GuildID, Name: "Test Guild"})
	s.AddChannel(&discordgo.Channel{ID: IntakeChannelID, GuildID: GuildID, Name: "tickets", Type: discordgo.ChannelTypeGuildText})
	s.AddChannel(&discordgo.Channel{ID: OpenCategoryID, GuildID: GuildID, Name: "Open", Type: discordgo.ChannelTypeGuildCategory})
	s.AddChannel(&discordgo.Channel{ID: ClosedCategoryID, GuildID: GuildID, Name: "Closed", Type: discordgo.ChannelTypeGuildCategory})
	s.AddChannel(&discordgo.Channel{ID: LogChannelID, GuildID: GuildID, Name: "ticket-logs", Type: discordgo.ChannelTypeGuildText})

	return &entities.GuildConfig{
		GuildID:          GuildID,
		SupportRoleID:    SupportRoleID,
		IntakeChannelID:  IntakeChannelID,
		OpenCategoryID:   OpenCategoryID,
		ClosedCategoryID: ClosedCategoryID,
		LogChannelID:     LogChannelID,
	}
}

// NewInteraction builds a guild interaction from a member.
func NewInteraction(channelID, userID, username string, permissions int64) *discordgo.Interaction {
	return &discordgo.Interaction{
		ID:        "interaction-" + userID,
		GuildID:   GuildID,
		ChannelID: channelID,
		Member: &discordgo.Member{
			User:        &discordgo.User{ID: userID, Username: username},
			Permissions: permissions,
		},
	}
}
