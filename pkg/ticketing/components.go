package ticketing

import (
	"fmt"

	"github.com/Jacobbrewer1/artemis/pkg/botinfo"
	"github.com/Jacobbrewer1/artemis/pkg/messages"
	"github.com/Jacobbrewer1/discordgo"
)

// channelPrefix is put in front of the name of every ticket channel.
const channelPrefix = "📩︱ticket・"

const (
	colourBlue = 0x3498db
	colourRed  = 0xe74c3c
)

// ticketPermissions is what the creator and the support role may do in an open ticket.
const ticketPermissions = discordgo.PermissionViewChannel |
	discordgo.PermissionSendMessages |
	discordgo.PermissionReadMessageHistory

// ChannelName returns the channel name of a ticket.
func ChannelName(name string) string {
	return channelPrefix + name
}

func button(label string, style discordgo.ButtonStyle, a Action) discordgo.Button {
	return discordgo.Button{
		Label:    label,
		Style:    style,
		CustomID: a.CustomID(),
	}
}

// controlsRow is the row of buttons that manage a ticket.
func controlsRow() discordgo.ActionsRow {
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			button("🔒 Close", discordgo.DangerButton, ActionClose),
			button("✋ Claim", discordgo.SuccessButton, ActionClaim),
			button("✏️ Rename", discordgo.PrimaryButton, ActionRename),
			button("🗑️ Delete", discordgo.DangerButton, ActionDelete),
		},
	}
}

// welcomeMessage is posted in a new ticket and pings the creator and the support role.
func welcomeMessage(userID, supportRoleID string) *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Content: fmt.Sprintf("<@%s> | <@&%s>", userID, supportRoleID),
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       messages.WelcomeTitle,
				Description: fmt.Sprintf(messages.WelcomeDescription, userID),
				Color:       colourBlue,
			},
		},
		Components: []discordgo.MessageComponent{controlsRow()},
	}
}

// closedNotice is posted in a ticket once it has been closed.
func closedNotice() *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       messages.ClosedTitle,
				Description: messages.ClosedDescription,
				Color:       colourRed,
			},
		},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					button("🗑️ Delete", discordgo.DangerButton, ActionDelete),
				},
			},
		},
	}
}

// PanelMessage is the intake panel that members create tickets from.
func PanelMessage(info *botinfo.Info, applicationID string) *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       messages.PanelTitle,
				Description: messages.PanelDescription,
				Color:       colourBlue,
				Footer: &discordgo.MessageEmbedFooter{
					Text: fmt.Sprintf("Bot by %s", info.Creator.Name),
				},
			},
		},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					button("📩 Create Ticket", discordgo.PrimaryButton, ActionCreate),
					discordgo.Button{
						Label: "Add to Server",
						Style: discordgo.LinkButton,
						URL:   info.InviteFor(applicationID),
					},
					discordgo.Button{
						Label: "Support Server",
						Style: discordgo.LinkButton,
						URL:   info.SupportServer,
					},
				},
			},
		},
	}
}

func deleteAck(grace int) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		Content: fmt.Sprintf(messages.TicketDeleting, grace),
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					button("↩️ Cancel", discordgo.SecondaryButton, ActionCancelDelete),
				},
			},
		},
	}
}

func ephemeral(content string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}
}

func public(data *discordgo.InteractionResponseData) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	}
}
