package events

import (
	"github.com/Jacobbrewer1/artemis/pkg/custom"
	"github.com/google/uuid"
)

// Type is the type of lifecycle event. It doubles as the routing key on the event stream.
type Type string

const (
	TypeTicketCreated          Type = "ticket.created"
	TypeTicketClaimed          Type = "ticket.claimed"
	TypeTicketRenamed          Type = "ticket.renamed"
	TypeTicketClosed           Type = "ticket.closed"
	TypeTicketDeleted          Type = "ticket.deleted"
	TypeTicketDeletionFailed   Type = "ticket.deletion_failed"
	TypeTicketDeletionCanceled Type = "ticket.deletion_cancelled"
	TypeSetupCompleted         Type = "guild.setup_completed"
)

// Event is a ticket lifecycle event.
type Event struct {
	// ID uniquely identifies the event.
	ID string `json:"id"`

	// Type is the type of the event.
	Type Type `json:"type"`

	// GuildID is the guild the event happened in.
	GuildID string `json:"guild_id"`

	// ChannelID is the ticket channel, or the intake channel for setup events.
	ChannelID string `json:"channel_id"`

	// ActorID is the user that caused the event.
	ActorID string `json:"actor_id"`

	// Detail is free text such as a close reason or a new name.
	Detail string `json:"detail,omitempty"`

	// Timestamp is when the event happened.
	Timestamp custom.Datetime `json:"timestamp"`
}

// New creates an event with a fresh ID and the current time.
func New(t Type, guildID, channelID, actorID, detail string) *Event {
	return &Event{
		ID:        uuid.NewString(),
		Type:      t,
		GuildID:   guildID,
		ChannelID: channelID,
		ActorID:   actorID,
		Detail:    detail,
		Timestamp: custom.Now(),
	}
}
