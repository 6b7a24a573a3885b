package main

import (
	"log/slog"

	"github.com/Jacobbrewer1/artemis/cmd/bot/monitoring"
	"github.com/Jacobbrewer1/artemis/pkg/logging"
	"github.com/Jacobbrewer1/discordgo"
)

// Guild create also fires when a guild becomes available again, so the gauge follows the state cache rather than
// counting events.

func guildJoinedHandler(a IApp) func(s *discordgo.Session, g *discordgo.GuildCreate) {
	return func(_ *discordgo.Session, g *discordgo.GuildCreate) {
		a.Log().Info("Joined guild", slog.String(logging.KeyGuild, g.ID), slog.String("name", g.Name))
		monitoring.SetGuilds(a.Session().GuildCount())
	}
}

func guildLeaveHandler(a IApp) func(s *discordgo.Session, g *discordgo.GuildDelete) {
	return func(_ *discordgo.Session, g *discordgo.GuildDelete) {
		a.Log().Info("Left guild", slog.String(logging.KeyGuild, g.ID))
		monitoring.SetGuilds(a.Session().GuildCount())
	}
}
