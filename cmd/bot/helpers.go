package main

import (
	"errors"
	"fmt"

	"github.com/Jacobbrewer1/artemis/pkg/messages"
	"github.com/Jacobbrewer1/artemis/pkg/ticketing"
	"github.com/Jacobbrewer1/discordgo"
)

// errUnknownInteraction is returned for commands and controls the bot does not handle.
var errUnknownInteraction = errors.New("unknown interaction")

// userMessage returns the message shown to the user for an error.
func userMessage(err error) string {
	pe := new(ticketing.PlatformError)
	switch {
	case errors.Is(err, ticketing.ErrConfigurationMissing):
		return messages.TicketSystemNotSetUp
	case errors.Is(err, ticketing.ErrPermissionDenied):
		return messages.AdministratorRequired
	case errors.Is(err, ticketing.ErrInvalidName):
		return messages.InvalidRenameName
	case errors.Is(err, errUnknownInteraction), errors.Is(err, ticketing.ErrUnknownModal):
		return messages.UnknownInteraction
	case errors.As(err, &pe):
		return fmt.Sprintf(messages.ErrPlatformOperation, pe.Op)
	}
	return messages.ErrUserErrorProcessing
}

func respondEphemeral(a IApp, i *discordgo.Interaction, content string) error {
	return a.Session().InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

func respondEmbed(a IApp, i *discordgo.Interaction, embed *discordgo.MessageEmbed) error {
	return a.Session().InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
}
