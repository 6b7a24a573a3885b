package entities

// Phase is the lifecycle phase of a ticket.
type Phase int

const (
	// PhaseOpen is a ticket that has been created and not closed.
	PhaseOpen Phase = iota

	// PhaseClosed is a ticket that sits in the closed category.
	PhaseClosed

	// PhaseDeleted is a ticket whose channel has been removed.
	PhaseDeleted
)

// String implements the fmt.Stringer interface.
func (p Phase) String() string {
	switch p {
	case PhaseOpen:
		return "open"
	case PhaseClosed:
		return "closed"
	case PhaseDeleted:
		return "deleted"
	}
	return "unknown"
}

// Ticket is a view over a ticket channel. Tickets are not stored anywhere, the channel is the ticket.
type Ticket struct {
	// GuildID is the ID of the guild that the ticket is in.
	GuildID string

	// ChannelID is the ID of the ticket channel.
	ChannelID string

	// Name is the current name of the ticket channel.
	Name string

	// Phase is the lifecycle phase derived from the channel's category.
	Phase Phase
}

// TicketFromChannel derives the ticket that a channel represents.
func TicketFromChannel(guildID, channelID, name, parentID string, cfg *GuildConfig) *Ticket {
	t := &Ticket{
		GuildID:   guildID,
		ChannelID: channelID,
		Name:      name,
		Phase:     PhaseOpen,
	}
	if cfg != nil && parentID != "" && parentID == cfg.ClosedCategoryID {
		t.Phase = PhaseClosed
	}
	return t
}
