package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Jacobbrewer1/artemis/pkg/entities"
	"github.com/Jacobbrewer1/discordgo"
)

const (
	// SetupCmdName is the command that configures the ticket system of a guild.
	SetupCmdName = "setup"

	// AboutCmdName is the command that shows information about the bot.
	AboutCmdName = "about"

	// PingCmdName is the command that shows the gateway latency.
	PingCmdName = "ping"

	// HelpCmdName is the command that lists the commands.
	HelpCmdName = "help"
)

// Options of the setup command.
const (
	optSupportRole   = "support_role"
	optTicketChannel = "ticket_channel"
	optOpenCategory  = "open_category"
	optCloseCategory = "close_category"
	optLogChannel    = "log_channel"
)

const (
	colourBlue  = 0x3498db
	colourGreen = 0x2ecc71
)

var adminPermission int64 = discordgo.PermissionAdministrator

var (
	setupCmd = &discordgo.ApplicationCommand{
		Name:                     SetupCmdName,
		Type:                     discordgo.ChatApplicationCommand,
		Description:              "Set up the ticket system",
		DefaultMemberPermissions: &adminPermission,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        optSupportRole,
				Type:        discordgo.ApplicationCommandOptionRole,
				Description: "Support team role",
				Required:    true,
			},
			{
				Name:         optTicketChannel,
				Type:         discordgo.ApplicationCommandOptionChannel,
				Description:  "Channel for ticket creation",
				ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
				Required:     true,
			},
			{
				Name:         optOpenCategory,
				Type:         discordgo.ApplicationCommandOptionChannel,
				Description:  "Category for open tickets",
				ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildCategory},
				Required:     true,
			},
			{
				Name:         optCloseCategory,
				Type:         discordgo.ApplicationCommandOptionChannel,
				Description:  "Category for closed tickets",
				ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildCategory},
				Required:     true,
			},
			{
				Name:         optLogChannel,
				Type:         discordgo.ApplicationCommandOptionChannel,
				Description:  "Channel for ticket logs",
				ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
				Required:     true,
			},
		},
	}

	aboutCmd = &discordgo.ApplicationCommand{
		Name:        AboutCmdName,
		Type:        discordgo.ChatApplicationCommand,
		Description: "About the bot and its creator",
	}

	pingCmd = &discordgo.ApplicationCommand{
		Name:        PingCmdName,
		Type:        discordgo.ChatApplicationCommand,
		Description: "Check bot latency",
	}

	helpCmd = &discordgo.ApplicationCommand{
		Name:        HelpCmdName,
		Type:        discordgo.ChatApplicationCommand,
		Description: "List the bot's commands",
	}
)

func slashCommands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{setupCmd, aboutCmd, pingCmd, helpCmd}
}

func commandProcessors() map[string]commandProcessor {
	return map[string]commandProcessor{
		SetupCmdName: setupProcessor,
		AboutCmdName: aboutProcessor,
		PingCmdName:  pingProcessor,
		HelpCmdName:  helpProcessor,
	}
}

// optionID returns the ID held by a role or channel option.
func optionID(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) (string, error) {
	opt, ok := opts[name]
	if !ok {
		return "", fmt.Errorf("missing option %s", name)
	}

	switch opt.Type {
	case discordgo.ApplicationCommandOptionRole:
		return opt.RoleValue(nil, "").ID, nil
	case discordgo.ApplicationCommandOptionChannel:
		return opt.ChannelValue(nil).ID, nil
	}
	return "", fmt.Errorf("option %s is not a role or channel", name)
}

func setupProcessor(ctx context.Context, a IApp, i *discordgo.Interaction) error {
	opts := make(map[string]*discordgo.ApplicationCommandInteractionDataOption)
	for _, opt := range i.ApplicationCommandData().Options {
		opts[opt.Name] = opt
	}

	cfg := new(entities.GuildConfig)
	for name, dst := range map[string]*string{
		optSupportRole:   &cfg.SupportRoleID,
		optTicketChannel: &cfg.IntakeChannelID,
		optOpenCategory:  &cfg.OpenCategoryID,
		optCloseCategory: &cfg.ClosedCategoryID,
		optLogChannel:    &cfg.LogChannelID,
	} {
		id, err := optionID(opts, name)
		if err != nil {
			return err
		}
		*dst = id
	}

	return a.Controller().Setup(ctx, i, cfg)
}

func aboutProcessor(_ context.Context, a IApp, i *discordgo.Interaction) error {
	info := a.BotInfo()

	uptime := time.Since(a.StartedAt())
	hours := int(uptime.Hours())
	minutes := int(uptime.Minutes()) % 60
	seconds := int(uptime.Seconds()) % 60

	return respondEmbed(a, i, &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("About %s", info.Name),
		Description: info.Description,
		Color:       colourBlue,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "👨‍💻 Creator",
				Value: fmt.Sprintf("Name: %s\nDiscord: <@%s>", info.Creator.Name, info.Creator.DiscordID),
			},
			{
				Name:  "🔗 Links",
				Value: fmt.Sprintf("[GitHub](%s) | [Website](%s)", info.Creator.GitHub, info.Creator.Website),
			},
			{
				Name:  "⚙️ Bot Stats",
				Value: fmt.Sprintf("Servers: %d\nUptime: %dh %dm %ds", a.Session().GuildCount(), hours, minutes, seconds),
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Thanks for using our bot! ❤️",
		},
	})
}

func pingProcessor(_ context.Context, a IApp, i *discordgo.Interaction) error {
	return respondEmbed(a, i, &discordgo.MessageEmbed{
		Title:       "🏓 Pong!",
		Description: fmt.Sprintf("Latency: `%dms`", a.Session().HeartbeatLatency().Milliseconds()),
		Color:       colourGreen,
	})
}

func helpProcessor(_ context.Context, a IApp, i *discordgo.Interaction) error {
	lines := make([]string, 0, len(slashCommands()))
	for _, cmd := range slashCommands() {
		lines = append(lines, fmt.Sprintf("`/%s` %s", cmd.Name, cmd.Description))
	}

	return respondEmbed(a, i, &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s Commands", a.BotInfo().Name),
		Description: strings.Join(lines, "\n") + "\n\n" +
			"Members open tickets from the panel posted by `/setup`. Staff manage them with the buttons in each ticket.",
		Color: colourBlue,
	})
}
