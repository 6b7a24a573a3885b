package main

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/Jacobbrewer1/artemis/cmd/bot/monitoring"
	"github.com/Jacobbrewer1/artemis/pkg/logging"
	"github.com/Jacobbrewer1/artemis/pkg/platform"
	"github.com/Jacobbrewer1/artemis/pkg/ticketing"
	"github.com/Jacobbrewer1/discordgo"
)

// interactionTimeout bounds the work done for a single interaction.
const interactionTimeout = 30 * time.Second

func interactionHandler(a IApp, commands map[string]commandProcessor) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return func(_ *discordgo.Session, i *discordgo.InteractionCreate) {
		handleInteraction(a, commands, i.Interaction)
	}
}

// handleInteraction routes a slash command, a pressed control or a submitted modal. Every error ends up as an
// ephemeral message to the member.
func handleInteraction(a IApp, commands map[string]commandProcessor, i *discordgo.Interaction) {
	ctx, cancel := context.WithTimeout(context.Background(), interactionTimeout)
	defer cancel()

	name := interactionName(i)
	if name == "" {
		return
	}

	l := a.Log().With(
		slog.String(logging.KeyAction, name),
		slog.String(logging.KeyGuild, i.GuildID),
		slog.String(logging.KeyChannel, i.ChannelID),
	)
	if u := platform.InteractionUser(i); u != nil {
		l = l.With(slog.String(logging.KeyUser, u.ID))
	}

	failed := false
	done := monitoring.Interaction(name)
	defer func() { done(failed) }()

	fail := func(err error) {
		failed = true
		if err := respondEphemeral(a, i, userMessage(err)); err != nil {
			l.Error("Error responding to interaction", slog.String(logging.KeyError, err.Error()))
		}
	}

	defer func() {
		if rec := recover(); rec != nil {
			l.Error("Panic handling interaction",
				slog.String(logging.KeyError, fmt.Sprint(rec)),
				slog.String("stack", string(debug.Stack())),
			)
			fail(fmt.Errorf("panic: %v", rec))
		}
	}()

	l.Debug("Handling interaction")

	if err := dispatch(ctx, a, commands, i); err != nil {
		l.Error("Error handling interaction", slog.String(logging.KeyError, err.Error()))
		fail(err)
	}
}

func dispatch(ctx context.Context, a IApp, commands map[string]commandProcessor, i *discordgo.Interaction) error {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		data := i.ApplicationCommandData()
		processor, ok := commands[data.Name]
		if !ok {
			return fmt.Errorf("%w: command %s", errUnknownInteraction, data.Name)
		}
		return processor(ctx, a, i)
	case discordgo.InteractionMessageComponent:
		data := i.MessageComponentData()
		action, ok := ticketing.ParseAction(data.CustomID)
		if !ok {
			return fmt.Errorf("%w: control %s", errUnknownInteraction, data.CustomID)
		}
		return a.Controller().HandleAction(ctx, i, action)
	case discordgo.InteractionModalSubmit:
		req, err := ticketing.ParseModalSubmit(i.ModalSubmitData())
		if err != nil {
			return err
		}
		return a.Controller().HandleModal(ctx, i, req)
	}
	return nil
}

// interactionName is the command name or custom ID of an interaction. It is empty for interactions that are not
// handled, such as autocomplete.
func interactionName(i *discordgo.Interaction) string {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		return i.ApplicationCommandData().Name
	case discordgo.InteractionMessageComponent:
		return i.MessageComponentData().CustomID
	case discordgo.InteractionModalSubmit:
		return i.ModalSubmitData().CustomID
	}
	return ""
}
