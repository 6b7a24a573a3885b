package entities

import (
	"github.com/Jacobbrewer1/artemis/pkg/custom"
)

// GuildConfig is the ticket configuration for a guild. It is created, and overwritten, as a whole by the setup
// command.
type GuildConfig struct {
	// GuildID is the ID of the guild.
	GuildID string `json:"guild_id" bson:"guild_id"`

	// SupportRoleID is the ID of the role that handles tickets.
	SupportRoleID string `json:"support_role_id" bson:"support_role_id"`

	// IntakeChannelID is the ID of the channel the ticket panel is posted in.
	IntakeChannelID string `json:"intake_channel_id" bson:"intake_channel_id"`

	// OpenCategoryID is the ID of the category that open tickets are put in.
	OpenCategoryID string `json:"open_category_id" bson:"open_category_id"`

	// ClosedCategoryID is the ID of the category that closed tickets are put in.
	ClosedCategoryID string `json:"closed_category_id" bson:"closed_category_id"`

	// LogChannelID is the ID of the channel that ticket events are logged to.
	LogChannelID string `json:"log_channel_id" bson:"log_channel_id"`

	// UpdatedAt is when the configuration was last written.
	UpdatedAt custom.Datetime `json:"updated_at" bson:"updated_at"`
}
