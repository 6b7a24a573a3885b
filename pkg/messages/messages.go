// Package messages holds every piece of text that is shown to a Discord user.
package messages

const (
	// ErrUserErrorProcessing is the generic message shown when a request could not be processed.
	ErrUserErrorProcessing = "❌ Something went wrong while processing your request. Please try again later."

	// ErrPlatformOperation is shown when Discord rejected one of the calls we made. The placeholder is the
	// operation that failed.
	ErrPlatformOperation = "❌ Discord rejected the request while %s. Please check the bot's permissions and the ticket configuration."

	// TicketSystemNotSetUp is shown when a guild has not run /setup yet.
	TicketSystemNotSetUp = "❌ Ticket system is not set up!"

	// AdministratorRequired is shown when a non-administrator runs /setup.
	AdministratorRequired = "❌ You need Administrator permission to set up the ticket system!"

	// SetupComplete is shown once /setup has stored the configuration and posted the panel.
	SetupComplete = "✅ Ticket system has been set up successfully!"

	// TicketCreated is shown to the creator of a ticket. The placeholder is the channel ID.
	TicketCreated = "✅ Your ticket has been created: <#%s>"

	// TicketClaimed is posted in the ticket channel. The placeholder is the claimant's user ID.
	TicketClaimed = "✅ Ticket claimed by <@%s>"

	// TicketReclaimed is posted when a ticket changes claimant. The placeholders are the new and previous
	// claimants' user IDs.
	TicketReclaimed = "✅ Ticket claimed by <@%s> (previously <@%s>)"

	// TicketRenamed is shown after a rename. The placeholder is the new channel name.
	TicketRenamed = "Ticket renamed to %s"

	// TicketClosed is shown to the member who closed a ticket.
	TicketClosed = "🔒 Ticket closed."

	// TicketDeleting is the acknowledgment of a delete request. The placeholder is the grace period in seconds.
	TicketDeleting = "🗑️ Deleting ticket in %d seconds..."

	// TicketDeletePending is shown when a delete is requested while one is already pending.
	TicketDeletePending = "This ticket is already scheduled for deletion."

	// TicketDeleteCancelled is posted when a pending deletion is cancelled. The placeholder is the user ID.
	TicketDeleteCancelled = "↩️ Deletion cancelled by <@%s>."

	// TicketDeleteNotPending is shown when there is no pending deletion to cancel.
	TicketDeleteNotPending = "There is no pending deletion for this ticket."

	// InvalidRenameName is shown when the submitted name is empty.
	InvalidRenameName = "❌ Please provide a name for the ticket."

	// UnknownInteraction is shown when a component or modal is not recognised.
	UnknownInteraction = "❌ This control is no longer supported."
)

const (
	// WelcomeTitle is the title of the embed posted in a new ticket.
	WelcomeTitle = "🎫 New Support Ticket"

	// WelcomeDescription is the body of the embed posted in a new ticket. The placeholder is the creator's user ID.
	WelcomeDescription = "Welcome <@%s>!\n\n" +
		"Please describe your issue and wait for a support team member to assist you.\n" +
		"Use the buttons below to manage your ticket."

	// PanelTitle is the title of the ticket intake panel.
	PanelTitle = "🎫 Support Tickets"

	// PanelDescription is the body of the ticket intake panel.
	PanelDescription = "Need help? Click the button below to create a support ticket.\n" +
		"Our team will assist you as soon as possible."

	// ClosedTitle is the title of the notice posted when a ticket is closed.
	ClosedTitle = "Ticket Closed"

	// ClosedDescription is the body of the notice posted when a ticket is closed.
	ClosedDescription = "This ticket has been closed. Staff members can still view its contents.\n" +
		"Use the **Delete** button to permanently delete this ticket."
)
