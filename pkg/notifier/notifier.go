// Package notifier posts ticket events to a guild's log channel.
package notifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Jacobbrewer1/artemis/pkg/dataaccess"
	"github.com/Jacobbrewer1/artemis/pkg/logging"
	"github.com/Jacobbrewer1/artemis/pkg/platform"
	"github.com/Jacobbrewer1/discordgo"
	"golang.org/x/time/rate"
)

const (
	// logBurst is the number of entries a guild can post back to back.
	logBurst = 5

	// logRate is the sustained number of entries per second for a guild.
	logRate = rate.Limit(1)
)

// Severity decides the colour of a log entry.
type Severity int

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityNotice
	SeverityWarning
	SeverityCritical
)

// Colour returns the embed colour for the severity.
func (s Severity) Colour() int {
	switch s {
	case SeveritySuccess:
		return 0x2ecc71
	case SeverityNotice:
		return 0xf1c40f
	case SeverityWarning:
		return 0xe74c3c
	case SeverityCritical:
		return 0x992d22
	default:
		return 0x3498db
	}
}

// Entry is a single audit log entry.
type Entry struct {
	GuildID     string
	Title       string
	Description string
	Severity    Severity

	// Actor is the user that caused the entry.
	Actor *discordgo.User

	// Channel is the ticket channel the entry is about.
	Channel *discordgo.Channel
}

// Notifier writes entries to the log channel configured for a guild. Failures are logged and never returned.
type Notifier struct {
	l       *slog.Logger
	session platform.Session
	store   dataaccess.SettingsStore

	mut      sync.Mutex
	limiters map[string]*rate.Limiter

	// now is replaced in tests.
	now func() time.Time
}

// NewNotifier creates a new notifier.
func NewNotifier(l *slog.Logger, session platform.Session, store dataaccess.SettingsStore) *Notifier {
	return &Notifier{
		l:        l,
		session:  session,
		store:    store,
		limiters: make(map[string]*rate.Limiter),
		now:      time.Now,
	}
}

// Log posts an entry to the guild's log channel. It is a no-op when the guild is not set up or the log channel
// cannot be found.
func (n *Notifier) Log(ctx context.Context, e Entry) {
	l := n.l.With(
		slog.String(logging.KeyGuild, e.GuildID),
		slog.String(logging.KeyAction, e.Title),
	)

	cfg, err := n.store.Get(ctx, e.GuildID)
	if errors.Is(err, dataaccess.ErrNotFound) {
		l.Debug("Guild is not set up, skipping log entry")
		return
	} else if err != nil {
		l.Warn("Error getting guild configuration", slog.String(logging.KeyError, err.Error()))
		return
	}

	if cfg.LogChannelID == "" {
		return
	}

	if _, err := n.session.Channel(cfg.LogChannelID); err != nil {
		l.Warn("Log channel could not be resolved",
			slog.String(logging.KeyChannel, cfg.LogChannelID),
			slog.String(logging.KeyError, err.Error()),
		)
		return
	}

	guildName := e.GuildID
	if g, err := n.session.Guild(e.GuildID); err == nil && g.Name != "" {
		guildName = g.Name
	}

	if err := n.limiter(e.GuildID).Wait(ctx); err != nil {
		l.Warn("Dropped log entry", slog.String(logging.KeyError, err.Error()))
		return
	}

	msg := &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{n.embed(e, guildName)},
	}
	if _, err := n.session.ChannelMessageSendComplex(cfg.LogChannelID, msg); err != nil {
		l.Warn("Error sending log entry", slog.String(logging.KeyError, err.Error()))
		return
	}
}

func (n *Notifier) limiter(guildID string) *rate.Limiter {
	n.mut.Lock()
	defer n.mut.Unlock()

	lim, ok := n.limiters[guildID]
	if !ok {
		lim = rate.NewLimiter(logRate, logBurst)
		n.limiters[guildID] = lim
	}
	return lim
}

func (n *Notifier) embed(e Entry, guildName string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       e.Title,
		Description: e.Description,
		Color:       e.Severity.Colour(),
		Timestamp:   n.now().UTC().Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Ticket System • %s", guildName),
		},
	}

	if e.Actor != nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "User Information",
			Value:  fmt.Sprintf("Name: %s\nID: %s\nMention: <@%s>", e.Actor.Username, e.Actor.ID, e.Actor.ID),
			Inline: true,
		})
	}

	if e.Channel != nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Channel Information",
			Value:  fmt.Sprintf("Name: %s\nID: %s\nMention: <#%s>", e.Channel.Name, e.Channel.ID, e.Channel.ID),
			Inline: true,
		})
	}

	return embed
}
