package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/Jacobbrewer1/artemis/pkg/botinfo"
	"github.com/Jacobbrewer1/artemis/pkg/dataaccess"
	"github.com/Jacobbrewer1/artemis/pkg/events"
	"github.com/Jacobbrewer1/artemis/pkg/messages"
	"github.com/Jacobbrewer1/artemis/pkg/notifier"
	"github.com/Jacobbrewer1/artemis/pkg/platform"
	"github.com/Jacobbrewer1/artemis/pkg/platform/platformtest"
	"github.com/Jacobbrewer1/artemis/pkg/ticketing"
	"github.com/Jacobbrewer1/discordgo"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	l          *slog.Logger
	s          *platformtest.Session
	store      dataaccess.SettingsStore
	controller *ticketing.Controller
	info       *botinfo.Info
	startedAt  time.Time
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	l := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := platformtest.NewSession()
	store := dataaccess.NewMemoryStore()
	info := botinfo.Default()

	c := ticketing.NewController(l, s, store, notifier.NewNotifier(l, s, store), events.NewNopPublisher(), info, ticketing.GracePeriod(time.Hour))
	t.Cleanup(c.Stop)

	platformtest.NewGuild(s)
	return &testApp{l: l, s: s, store: store, controller: c, info: info, startedAt: time.Now().Add(-90 * time.Minute)}
}

func (a *testApp) Log() *slog.Logger                 { return a.l }
func (a *testApp) Session() platform.Session         { return a.s }
func (a *testApp) Controller() *ticketing.Controller { return a.controller }
func (a *testApp) BotInfo() *botinfo.Info            { return a.info }
func (a *testApp) StartedAt() time.Time              { return a.startedAt }

func commandInteraction(name string, perms int64, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.Interaction {
	i := platformtest.NewInteraction(platformtest.IntakeChannelID, "alice", "alice", perms)
	i.Type = discordgo.InteractionApplicationCommand
	i.Data = discordgo.ApplicationCommandInteractionData{Name: name, Options: opts}
	return i
}

func componentInteraction(channelID, customID string) *discordgo.Interaction {
	i := platformtest.NewInteraction(channelID, "alice", "alice", 0)
	i.Type = discordgo.InteractionMessageComponent
	i.Data = discordgo.MessageComponentInteractionData{CustomID: customID, ComponentType: discordgo.ButtonComponent}
	return i
}

func modalInteraction(channelID, customID, field, value string) *discordgo.Interaction {
	i := platformtest.NewInteraction(channelID, "alice", "alice", 0)
	i.Type = discordgo.InteractionModalSubmit
	i.Data = discordgo.ModalSubmitInteractionData{
		CustomID: customID,
		Components: []discordgo.MessageComponent{
			&discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					&discordgo.TextInput{CustomID: field, Value: value},
				},
			},
		},
	}
	return i
}

func setupOptions() []*discordgo.ApplicationCommandInteractionDataOption {
	return []*discordgo.ApplicationCommandInteractionDataOption{
		{Name: optSupportRole, Type: discordgo.ApplicationCommandOptionRole, Value: platformtest.SupportRoleID},
		{Name: optTicketChannel, Type: discordgo.ApplicationCommandOptionChannel, Value: platformtest.IntakeChannelID},
		{Name: optOpenCategory, Type: discordgo.ApplicationCommandOptionChannel, Value: platformtest.OpenCategoryID},
		{Name: optCloseCategory, Type: discordgo.ApplicationCommandOptionChannel, Value: platformtest.ClosedCategoryID},
		{Name: optLogChannel, Type: discordgo.ApplicationCommandOptionChannel, Value: platformtest.LogChannelID},
	}
}

func requireEphemeral(t *testing.T, a *testApp, content string) {
	t.Helper()
	resp := a.s.LastResponse()
	require.NotNil(t, resp)
	require.Equal(t, content, resp.Data.Content)
	require.Equal(t, discordgo.MessageFlagsEphemeral, resp.Data.Flags)
}

func TestHandleInteraction_SetupRequiresAdministrator(t *testing.T) {
	a := newTestApp(t)

	handleInteraction(a, commandProcessors(), commandInteraction(SetupCmdName, discordgo.PermissionManageChannels, setupOptions()...))

	requireEphemeral(t, a, messages.AdministratorRequired)
	_, err := a.store.Get(context.Background(), platformtest.GuildID)
	require.ErrorIs(t, err, dataaccess.ErrNotFound)
	require.Empty(t, a.s.Messages(platformtest.IntakeChannelID))
}

func TestHandleInteraction_Setup(t *testing.T) {
	a := newTestApp(t)

	handleInteraction(a, commandProcessors(), commandInteraction(SetupCmdName, discordgo.PermissionAdministrator, setupOptions()...))

	requireEphemeral(t, a, messages.SetupComplete)

	cfg, err := a.store.Get(context.Background(), platformtest.GuildID)
	require.NoError(t, err)
	require.Equal(t, platformtest.SupportRoleID, cfg.SupportRoleID)
	require.Equal(t, platformtest.IntakeChannelID, cfg.IntakeChannelID)
	require.Equal(t, platformtest.OpenCategoryID, cfg.OpenCategoryID)
	require.Equal(t, platformtest.ClosedCategoryID, cfg.ClosedCategoryID)
	require.Equal(t, platformtest.LogChannelID, cfg.LogChannelID)
	require.Len(t, a.s.Messages(platformtest.IntakeChannelID), 1)
}

func TestHandleInteraction_SetupMissingOption(t *testing.T) {
	a := newTestApp(t)

	handleInteraction(a, commandProcessors(), commandInteraction(SetupCmdName, discordgo.PermissionAdministrator, setupOptions()[:2]...))

	requireEphemeral(t, a, messages.ErrUserErrorProcessing)
}

func TestHandleInteraction_CreateNotSetUp(t *testing.T) {
	a := newTestApp(t)

	handleInteraction(a, commandProcessors(), componentInteraction(platformtest.IntakeChannelID, ticketing.CustomIDCreate))

	requireEphemeral(t, a, "❌ Ticket system is not set up!")
	require.Empty(t, a.s.Created())
}

func TestHandleInteraction_CreateAndRename(t *testing.T) {
	a := newTestApp(t)
	handleInteraction(a, commandProcessors(), commandInteraction(SetupCmdName, discordgo.PermissionAdministrator, setupOptions()...))

	handleInteraction(a, commandProcessors(), componentInteraction(platformtest.IntakeChannelID, ticketing.CustomIDCreate))
	created := a.s.Created()
	require.Len(t, created, 1)

	handleInteraction(a, commandProcessors(), componentInteraction(created[0], ticketing.CustomIDRename))
	require.Equal(t, discordgo.InteractionResponseModal, a.s.LastResponse().Type)

	handleInteraction(a, commandProcessors(), modalInteraction(created[0], ticketing.ModalRenameID, "name", "billing"))
	require.Equal(t, ticketing.ChannelName("billing"), a.s.GetChannel(created[0]).Name)

	logs := a.s.Messages(platformtest.LogChannelID)
	require.Len(t, logs, 2)
	require.Equal(t, "Ticket Created", logs[0].Embeds[0].Title)
	require.Equal(t, "Ticket Renamed", logs[1].Embeds[0].Title)
}

func TestHandleInteraction_RenameEmpty(t *testing.T) {
	a := newTestApp(t)

	handleInteraction(a, commandProcessors(), modalInteraction(platformtest.IntakeChannelID, ticketing.ModalRenameID, "name", "   "))

	requireEphemeral(t, a, messages.InvalidRenameName)
}

func TestHandleInteraction_PlatformFailure(t *testing.T) {
	a := newTestApp(t)
	handleInteraction(a, commandProcessors(), commandInteraction(SetupCmdName, discordgo.PermissionAdministrator, setupOptions()...))
	a.s.FailOn(platformtest.OpChannelCreate, errors.New("missing permissions"))

	handleInteraction(a, commandProcessors(), componentInteraction(platformtest.IntakeChannelID, ticketing.CustomIDCreate))

	requireEphemeral(t, a, "❌ Discord rejected the request while creating the ticket channel. Please check the bot's permissions and the ticket configuration.")
}

func TestHandleInteraction_Unknown(t *testing.T) {
	a := newTestApp(t)

	handleInteraction(a, commandProcessors(), componentInteraction(platformtest.IntakeChannelID, "reopen_ticket"))
	requireEphemeral(t, a, messages.UnknownInteraction)

	handleInteraction(a, commandProcessors(), commandInteraction("ticket", 0))
	requireEphemeral(t, a, messages.UnknownInteraction)

	handleInteraction(a, commandProcessors(), modalInteraction(platformtest.IntakeChannelID, "feedback", "text", "hi"))
	requireEphemeral(t, a, messages.UnknownInteraction)
}

func TestHandleInteraction_RecoversPanics(t *testing.T) {
	a := newTestApp(t)
	commands := map[string]commandProcessor{
		"boom": func(context.Context, IApp, *discordgo.Interaction) error {
			panic("boom")
		},
	}

	require.NotPanics(t, func() {
		handleInteraction(a, commands, commandInteraction("boom", 0))
	})
	requireEphemeral(t, a, messages.ErrUserErrorProcessing)
}

func TestHandleInteraction_IgnoresPing(t *testing.T) {
	a := newTestApp(t)
	i := platformtest.NewInteraction(platformtest.IntakeChannelID, "alice", "alice", 0)
	i.Type = discordgo.InteractionPing

	handleInteraction(a, commandProcessors(), i)
	require.Empty(t, a.s.Responses())
}

func TestPingProcessor(t *testing.T) {
	a := newTestApp(t)
	a.s.Latency = 42 * time.Millisecond

	handleInteraction(a, commandProcessors(), commandInteraction(PingCmdName, 0))

	resp := a.s.LastResponse()
	require.Equal(t, "🏓 Pong!", resp.Data.Embeds[0].Title)
	require.Equal(t, "Latency: `42ms`", resp.Data.Embeds[0].Description)
}

func TestAboutProcessor(t *testing.T) {
	a := newTestApp(t)

	handleInteraction(a, commandProcessors(), commandInteraction(AboutCmdName, 0))

	embed := a.s.LastResponse().Data.Embeds[0]
	require.Equal(t, "About Artemis Ticket Bot", embed.Title)
	require.Len(t, embed.Fields, 3)
	require.Equal(t, "Name: at.9\nDiscord: <@547451355179253760>", embed.Fields[0].Value)
	require.True(t, strings.HasPrefix(embed.Fields[2].Value, "Servers: 1\nUptime: 1h 30m"))
}

func TestHelpProcessor(t *testing.T) {
	a := newTestApp(t)

	handleInteraction(a, commandProcessors(), commandInteraction(HelpCmdName, 0))

	embed := a.s.LastResponse().Data.Embeds[0]
	for _, cmd := range slashCommands() {
		require.Contains(t, embed.Description, "`/"+cmd.Name+"`")
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not set up", ticketing.ErrConfigurationMissing, messages.TicketSystemNotSetUp},
		{"permission", ticketing.ErrPermissionDenied, messages.AdministratorRequired},
		{"invalid name", ticketing.ErrInvalidName, messages.InvalidRenameName},
		{"unknown", errUnknownInteraction, messages.UnknownInteraction},
		{"platform", &ticketing.PlatformError{Op: "renaming the ticket", Err: errors.New("x")}, "❌ Discord rejected the request while renaming the ticket. Please check the bot's permissions and the ticket configuration."},
		{"other", errors.New("boom"), messages.ErrUserErrorProcessing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, userMessage(tt.err))
		})
	}
}

func TestSlashCommands(t *testing.T) {
	cmds := slashCommands()
	processors := commandProcessors()
	require.Len(t, processors, len(cmds))
	for _, cmd := range cmds {
		require.Contains(t, processors, cmd.Name)
	}

	require.Len(t, setupCmd.Options, 5)
	for _, opt := range setupCmd.Options {
		require.True(t, opt.Required, opt.Name)
	}
	require.Equal(t, int64(discordgo.PermissionAdministrator), *setupCmd.DefaultMemberPermissions)
}
