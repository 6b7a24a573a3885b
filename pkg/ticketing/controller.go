// Package ticketing runs the lifecycle of support tickets: create, claim, rename, close and delete.
package ticketing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Jacobbrewer1/artemis/pkg/botinfo"
	"github.com/Jacobbrewer1/artemis/pkg/custom"
	"github.com/Jacobbrewer1/artemis/pkg/dataaccess"
	"github.com/Jacobbrewer1/artemis/pkg/entities"
	"github.com/Jacobbrewer1/artemis/pkg/events"
	"github.com/Jacobbrewer1/artemis/pkg/logging"
	"github.com/Jacobbrewer1/artemis/pkg/messages"
	"github.com/Jacobbrewer1/artemis/pkg/notifier"
	"github.com/Jacobbrewer1/artemis/pkg/platform"
	"github.com/Jacobbrewer1/discordgo"
)

// DefaultGracePeriod is how long a ticket is kept after a delete request.
const DefaultGracePeriod = 5 * time.Second

// deleteTimeout bounds the work done once the grace period is over.
const deleteTimeout = 10 * time.Second

// AuditLog receives the entries for a guild's log channel.
type AuditLog interface {
	Log(ctx context.Context, e notifier.Entry)
}

// GracePeriod is the delay between a delete request and the removal of the channel.
type GracePeriod time.Duration

// Controller performs the ticket operations.
type Controller struct {
	l         *slog.Logger
	session   platform.Session
	store     dataaccess.SettingsStore
	audit     AuditLog
	publisher events.Publisher
	info      *botinfo.Info
	grace     time.Duration

	scheduler *Scheduler
	locks     *keyedMutex

	claimMut sync.Mutex

	// claims is the last claimant per ticket channel.
	claims map[string]string

	appMut sync.RWMutex

	// appID is used for the invite button on the panel.
	appID string
}

// NewController creates a new controller.
func NewController(
	l *slog.Logger,
	session platform.Session,
	store dataaccess.SettingsStore,
	audit AuditLog,
	publisher events.Publisher,
	info *botinfo.Info,
	grace GracePeriod,
) *Controller {
	if grace <= 0 {
		grace = GracePeriod(DefaultGracePeriod)
	}
	return &Controller{
		l:         l,
		session:   session,
		store:     store,
		audit:     audit,
		publisher: publisher,
		info:      info,
		grace:     time.Duration(grace),
		scheduler: NewScheduler(),
		locks:     newKeyedMutex(),
		claims:    make(map[string]string),
	}
}

// SetApplicationID sets the application the invite button on the panel points at.
func (c *Controller) SetApplicationID(id string) {
	c.appMut.Lock()
	defer c.appMut.Unlock()
	c.appID = id
}

func (c *Controller) applicationID() string {
	c.appMut.RLock()
	defer c.appMut.RUnlock()
	return c.appID
}

// Stop cancels every pending deletion.
func (c *Controller) Stop() {
	c.scheduler.Stop()
}

func (c *Controller) logger(i *discordgo.Interaction) *slog.Logger {
	l := c.l.With(
		slog.String(logging.KeyGuild, i.GuildID),
		slog.String(logging.KeyChannel, i.ChannelID),
	)
	if u := platform.InteractionUser(i); u != nil {
		l = l.With(slog.String(logging.KeyUser, u.ID))
	}
	return l
}

func (c *Controller) config(ctx context.Context, guildID string) (*entities.GuildConfig, error) {
	cfg, err := c.store.Get(ctx, guildID)
	if errors.Is(err, dataaccess.ErrNotFound) {
		return nil, ErrConfigurationMissing
	} else if err != nil {
		return nil, fmt.Errorf("error getting guild configuration: %w", err)
	}
	return cfg, nil
}

// channel resolves the channel an interaction happened in. A bare channel is returned when it cannot be resolved,
// as it is only used for log entries.
func (c *Controller) channel(i *discordgo.Interaction) *discordgo.Channel {
	ch, err := c.session.Channel(i.ChannelID)
	if err != nil {
		return &discordgo.Channel{ID: i.ChannelID, GuildID: i.GuildID}
	}
	return ch
}

func (c *Controller) publish(ctx context.Context, l *slog.Logger, e *events.Event) {
	LifecycleTotal.WithLabelValues(string(e.Type)).Inc()
	if err := c.publisher.Publish(ctx, e); err != nil {
		l.Warn("Error publishing event",
			slog.String(logging.KeyAction, string(e.Type)),
			slog.String(logging.KeyError, err.Error()),
		)
	}
}

func (c *Controller) respond(i *discordgo.Interaction, resp *discordgo.InteractionResponse) error {
	if err := c.session.InteractionRespond(i, resp); err != nil {
		return platformError("responding to the interaction", err)
	}
	return nil
}

// Setup stores the configuration of the guild and posts the intake panel. Only administrators can run it.
func (c *Controller) Setup(ctx context.Context, i *discordgo.Interaction, cfg *entities.GuildConfig) error {
	if !platform.IsAdministrator(i) {
		return ErrPermissionDenied
	}

	l := c.logger(i)

	cfg.GuildID = i.GuildID
	cfg.UpdatedAt = custom.Now()
	if err := c.store.Set(ctx, cfg); err != nil {
		return fmt.Errorf("error saving guild configuration: %w", err)
	}

	if _, err := c.session.ChannelMessageSendComplex(cfg.IntakeChannelID, PanelMessage(c.info, c.applicationID())); err != nil {
		return platformError("posting the ticket panel", err)
	}

	l.Info("Ticket system set up", slog.String("intake_channel_id", cfg.IntakeChannelID))
	c.publish(ctx, l, events.New(events.TypeSetupCompleted, i.GuildID, cfg.IntakeChannelID, actorID(i), ""))

	return c.respond(i, ephemeral(messages.SetupComplete))
}

// Create opens a new ticket for the member that pressed the create button.
func (c *Controller) Create(ctx context.Context, i *discordgo.Interaction) error {
	cfg, err := c.config(ctx, i.GuildID)
	if err != nil {
		return err
	}

	l := c.logger(i)
	user := platform.InteractionUser(i)
	if user == nil {
		return errors.New("interaction has no user")
	}

	ch, err := c.session.GuildChannelCreateComplex(i.GuildID, discordgo.GuildChannelCreateData{
		Name:     ChannelName(platform.DisplayName(i)),
		Type:     discordgo.ChannelTypeGuildText,
		ParentID: cfg.OpenCategoryID,
		PermissionOverwrites: []*discordgo.PermissionOverwrite{
			// The default role shares its ID with the guild.
			{
				ID:   i.GuildID,
				Type: discordgo.PermissionOverwriteTypeRole,
				Deny: discordgo.PermissionViewChannel,
			},
			{
				ID:    user.ID,
				Type:  discordgo.PermissionOverwriteTypeMember,
				Allow: ticketPermissions,
			},
			{
				ID:    cfg.SupportRoleID,
				Type:  discordgo.PermissionOverwriteTypeRole,
				Allow: ticketPermissions,
			},
		},
	})
	if err != nil {
		return platformError("creating the ticket channel", err)
	}

	l = l.With(slog.String("ticket_channel_id", ch.ID))

	if _, err := c.session.ChannelMessageSendComplex(ch.ID, welcomeMessage(user.ID, cfg.SupportRoleID)); err != nil {
		return platformError("posting the ticket welcome message", err)
	}

	// The channel exists from here on, so the entry is written even when the response fails.
	err = c.respond(i, ephemeral(fmt.Sprintf(messages.TicketCreated, ch.ID)))

	c.audit.Log(ctx, notifier.Entry{
		GuildID:     i.GuildID,
		Title:       "Ticket Created",
		Description: fmt.Sprintf("Created by: <@%s>", user.ID),
		Severity:    notifier.SeveritySuccess,
		Actor:       user,
		Channel:     ch,
	})

	l.Info("Ticket created")
	c.publish(ctx, l, events.New(events.TypeTicketCreated, i.GuildID, ch.ID, user.ID, ""))

	return err
}

// Claim records the member as the one handling the ticket. It does not change the channel and can be repeated.
func (c *Controller) Claim(ctx context.Context, i *discordgo.Interaction) error {
	unlock := c.locks.Lock(i.ChannelID)
	defer unlock()

	l := c.logger(i)
	user := platform.InteractionUser(i)
	if user == nil {
		return errors.New("interaction has no user")
	}

	c.claimMut.Lock()
	previous := c.claims[i.ChannelID]
	c.claims[i.ChannelID] = user.ID
	c.claimMut.Unlock()

	content := fmt.Sprintf(messages.TicketClaimed, user.ID)
	if previous != "" && previous != user.ID {
		content = fmt.Sprintf(messages.TicketReclaimed, user.ID, previous)
	}
	err := c.respond(i, public(&discordgo.InteractionResponseData{Content: content}))

	c.audit.Log(ctx, notifier.Entry{
		GuildID:     i.GuildID,
		Title:       "Ticket Claimed",
		Description: fmt.Sprintf("Claimed by: <@%s>", user.ID),
		Severity:    notifier.SeverityNotice,
		Actor:       user,
		Channel:     c.channel(i),
	})

	l.Info("Ticket claimed", slog.String("previous_claimant", previous))
	c.publish(ctx, l, events.New(events.TypeTicketClaimed, i.GuildID, i.ChannelID, user.ID, previous))

	return err
}

// Claimant returns the member that last claimed the ticket.
func (c *Controller) Claimant(channelID string) (string, bool) {
	c.claimMut.Lock()
	defer c.claimMut.Unlock()
	id, ok := c.claims[channelID]
	return id, ok
}

// Rename renames the ticket channel. A pending deletion of the ticket is cancelled.
func (c *Controller) Rename(ctx context.Context, i *discordgo.Interaction, req RenameRequest) error {
	if req.Name == "" {
		return ErrInvalidName
	}

	unlock := c.locks.Lock(i.ChannelID)
	defer unlock()

	l := c.logger(i)
	user := platform.InteractionUser(i)
	cancelled := c.scheduler.Cancel(i.ChannelID)

	name := ChannelName(req.Name)
	ch, err := c.session.ChannelEditComplex(i.ChannelID, &discordgo.ChannelEdit{Name: name})
	if err != nil {
		if cancelled {
			c.deletionCancelled(ctx, l, i, user)
		}
		return platformError("renaming the ticket", err)
	}

	err = c.respond(i, ephemeral(fmt.Sprintf(messages.TicketRenamed, name)))

	if cancelled {
		c.deletionCancelled(ctx, l, i, user)
	}
	c.audit.Log(ctx, notifier.Entry{
		GuildID:     i.GuildID,
		Title:       "Ticket Renamed",
		Description: fmt.Sprintf("Renamed by: <@%s>\nNew name: %s", actorID(i), name),
		Severity:    notifier.SeverityInfo,
		Actor:       user,
		Channel:     ch,
	})

	l.Info("Ticket renamed", slog.String("name", name))
	c.publish(ctx, l, events.New(events.TypeTicketRenamed, i.GuildID, i.ChannelID, actorID(i), name))

	return err
}

// Close moves the ticket into the closed category and hides it from the default role. Closing a closed ticket
// applies the same changes again. A pending deletion of the ticket is cancelled.
func (c *Controller) Close(ctx context.Context, i *discordgo.Interaction, req CloseRequest) error {
	cfg, err := c.config(ctx, i.GuildID)
	if err != nil {
		return err
	}

	unlock := c.locks.Lock(i.ChannelID)
	defer unlock()

	l := c.logger(i)
	user := platform.InteractionUser(i)
	if c.scheduler.Cancel(i.ChannelID) {
		// Written once the close is done or has failed.
		defer c.deletionCancelled(ctx, l, i, user)
	}

	ch := c.channel(i)
	ticket := entities.TicketFromChannel(i.GuildID, ch.ID, ch.Name, ch.ParentID, cfg)

	if _, err := c.session.ChannelEditComplex(i.ChannelID, &discordgo.ChannelEdit{ParentID: cfg.ClosedCategoryID}); err != nil {
		return platformError("moving the ticket to the closed category", err)
	}

	if err := c.session.ChannelPermissionSet(i.ChannelID, i.GuildID, discordgo.PermissionOverwriteTypeRole, 0, discordgo.PermissionViewChannel); err != nil {
		return platformError("hiding the closed ticket", err)
	}

	if _, err := c.session.ChannelMessageSendComplex(i.ChannelID, closedNotice()); err != nil {
		return platformError("posting the closure notice", err)
	}

	err = c.respond(i, ephemeral(messages.TicketClosed))

	c.audit.Log(ctx, notifier.Entry{
		GuildID:     i.GuildID,
		Title:       "Ticket Closed",
		Description: fmt.Sprintf("Closed by: <@%s>\nReason: %s", actorID(i), req.Reason),
		Severity:    notifier.SeverityWarning,
		Actor:       user,
		Channel:     ch,
	})

	l.Info("Ticket closed", slog.String("previous_phase", ticket.Phase.String()))
	c.publish(ctx, l, events.New(events.TypeTicketClosed, i.GuildID, i.ChannelID, actorID(i), req.Reason))

	return err
}

// RequestDelete acknowledges the request, writes the deletion entry and then starts the grace period, after which
// the ticket channel is removed.
func (c *Controller) RequestDelete(ctx context.Context, i *discordgo.Interaction) error {
	unlock := c.locks.Lock(i.ChannelID)
	defer unlock()

	l := c.logger(i)
	user := platform.InteractionUser(i)
	guildID, channelID := i.GuildID, i.ChannelID

	if c.scheduler.Pending(channelID) {
		return c.respond(i, ephemeral(messages.TicketDeletePending))
	}

	ch := c.channel(i)
	if err := c.respond(i, public(deleteAck(graceSeconds(c.grace)))); err != nil {
		return err
	}

	c.audit.Log(ctx, notifier.Entry{
		GuildID:     guildID,
		Title:       "Ticket Deleted",
		Description: fmt.Sprintf("Deleted by: <@%s>", actorID(i)),
		Severity:    notifier.SeverityCritical,
		Actor:       user,
		Channel:     ch,
	})

	// Every schedule for the channel holds its lock, so this only fails once the controller is stopped.
	if !c.scheduler.Schedule(channelID, c.grace, func() {
		c.delete(guildID, ch, user)
	}) {
		l.Warn("Ticket deletion not scheduled, the controller is stopped")
		return nil
	}

	l.Info("Ticket deletion scheduled", slog.Duration("grace_period", c.grace))
	return nil
}

// graceSeconds is the grace period in whole seconds for the acknowledgment, rounded up so it never reads 0.
func graceSeconds(d time.Duration) int {
	secs := int((d + time.Second - 1) / time.Second)
	if secs < 1 {
		return 1
	}
	return secs
}

// delete removes the ticket channel once the grace period is over.
func (c *Controller) delete(guildID string, ch *discordgo.Channel, user *discordgo.User) {
	ctx, cancel := context.WithTimeout(context.Background(), deleteTimeout)
	defer cancel()

	l := c.l.With(
		slog.String(logging.KeyGuild, guildID),
		slog.String(logging.KeyChannel, ch.ID),
	)

	actor := ""
	if user != nil {
		actor = user.ID
	}

	if _, err := c.session.ChannelDelete(ch.ID); err != nil {
		l.Error("Error deleting ticket channel", slog.String(logging.KeyError, err.Error()))
		c.audit.Log(ctx, notifier.Entry{
			GuildID:     guildID,
			Title:       "Ticket Deletion Failed",
			Description: fmt.Sprintf("Deletion requested by: <@%s>\nError: %s", actor, err),
			Severity:    notifier.SeverityWarning,
			Actor:       user,
			Channel:     ch,
		})
		c.publish(ctx, l, events.New(events.TypeTicketDeletionFailed, guildID, ch.ID, actor, err.Error()))
		return
	}

	c.claimMut.Lock()
	delete(c.claims, ch.ID)
	c.claimMut.Unlock()

	l.Info("Ticket deleted")
	c.publish(ctx, l, events.New(events.TypeTicketDeleted, guildID, ch.ID, actor, ""))
}

// CancelDelete stops a pending deletion of the ticket.
func (c *Controller) CancelDelete(ctx context.Context, i *discordgo.Interaction) error {
	unlock := c.locks.Lock(i.ChannelID)
	defer unlock()

	if !c.scheduler.Cancel(i.ChannelID) {
		return c.respond(i, ephemeral(messages.TicketDeleteNotPending))
	}

	err := c.respond(i, public(&discordgo.InteractionResponseData{
		Content: fmt.Sprintf(messages.TicketDeleteCancelled, actorID(i)),
	}))
	c.deletionCancelled(ctx, c.logger(i), i, platform.InteractionUser(i))
	return err
}

// deletionCancelled records that a pending deletion of the interaction's channel was cancelled.
func (c *Controller) deletionCancelled(ctx context.Context, l *slog.Logger, i *discordgo.Interaction, user *discordgo.User) {
	c.audit.Log(ctx, notifier.Entry{
		GuildID:     i.GuildID,
		Title:       "Ticket Deletion Cancelled",
		Description: fmt.Sprintf("Cancelled by: <@%s>", actorID(i)),
		Severity:    notifier.SeverityInfo,
		Actor:       user,
		Channel:     c.channel(i),
	})

	l.Info("Ticket deletion cancelled")
	c.publish(ctx, l, events.New(events.TypeTicketDeletionCanceled, i.GuildID, i.ChannelID, actorID(i), ""))
}

// PendingDeletion reports whether the channel is waiting to be deleted.
func (c *Controller) PendingDeletion(channelID string) bool {
	return c.scheduler.Pending(channelID)
}

func actorID(i *discordgo.Interaction) string {
	if u := platform.InteractionUser(i); u != nil {
		return u.ID
	}
	return ""
}
