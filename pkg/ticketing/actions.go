package ticketing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Jacobbrewer1/discordgo"
)

// Action is a ticket control that a member can press.
type Action int

const (
	ActionCreate Action = iota + 1
	ActionClose
	ActionClaim
	ActionRename
	ActionDelete
	ActionCancelDelete
)

// Custom IDs of the ticket controls. These are stored on messages in Discord and must never change.
const (
	CustomIDCreate       = "create_ticket"
	CustomIDClose        = "close_ticket"
	CustomIDClaim        = "claim_ticket"
	CustomIDRename       = "rename_ticket"
	CustomIDDelete       = "delete_ticket"
	CustomIDCancelDelete = "cancel_delete"
)

// Modal IDs and the IDs of their fields.
const (
	ModalRenameID = "ticket_modal_rename"
	ModalReasonID = "ticket_modal_reason"

	fieldName   = "name"
	fieldReason = "reason"

	// maxNameLength is the longest name that can be given to a ticket.
	maxNameLength = 32
)

// CustomID returns the custom ID of the control.
func (a Action) CustomID() string {
	switch a {
	case ActionCreate:
		return CustomIDCreate
	case ActionClose:
		return CustomIDClose
	case ActionClaim:
		return CustomIDClaim
	case ActionRename:
		return CustomIDRename
	case ActionDelete:
		return CustomIDDelete
	case ActionCancelDelete:
		return CustomIDCancelDelete
	}
	return ""
}

// String implements the fmt.Stringer interface.
func (a Action) String() string {
	if id := a.CustomID(); id != "" {
		return id
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// ParseAction decodes the custom ID of a pressed control.
func ParseAction(customID string) (Action, bool) {
	switch customID {
	case CustomIDCreate:
		return ActionCreate, true
	case CustomIDClose:
		return ActionClose, true
	case CustomIDClaim:
		return ActionClaim, true
	case CustomIDRename:
		return ActionRename, true
	case CustomIDDelete:
		return ActionDelete, true
	case CustomIDCancelDelete:
		return ActionCancelDelete, true
	}
	return 0, false
}

// ModalRequest is a submitted ticket modal. It is either a RenameRequest or a CloseRequest.
type ModalRequest interface {
	modalRequest()
}

// RenameRequest asks for the ticket to be renamed.
type RenameRequest struct {
	Name string
}

// CloseRequest asks for the ticket to be closed.
type CloseRequest struct {
	Reason string
}

func (RenameRequest) modalRequest() {}

func (CloseRequest) modalRequest() {}

// ErrUnknownModal is returned when a modal submission is not one of ours.
var ErrUnknownModal = errors.New("unknown modal")

// ModalFor returns the modal that collects the input for an action. Only rename and close take input.
func ModalFor(a Action) (*discordgo.InteractionResponse, bool) {
	var (
		customID string
		title    string
		input    discordgo.TextInput
	)

	switch a {
	case ActionRename:
		customID, title = ModalRenameID, "Rename Ticket"
		input = discordgo.TextInput{
			CustomID:    fieldName,
			Label:       "New Ticket Name",
			Style:       discordgo.TextInputShort,
			Placeholder: "Enter new name...",
			Required:    true,
			MaxLength:   maxNameLength,
		}
	case ActionClose:
		customID, title = ModalReasonID, "Close Ticket"
		input = discordgo.TextInput{
			CustomID:    fieldReason,
			Label:       "Reason",
			Style:       discordgo.TextInputParagraph,
			Placeholder: "Enter the reason...",
			Required:    true,
		}
	default:
		return nil, false
	}

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: customID,
			Title:    title,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{input},
				},
			},
		},
	}, true
}

// ParseModalSubmit decodes a submitted modal into its request.
func ParseModalSubmit(data discordgo.ModalSubmitInteractionData) (ModalRequest, error) {
	switch data.CustomID {
	case ModalRenameID:
		return RenameRequest{Name: strings.TrimSpace(inputValue(data.Components, fieldName))}, nil
	case ModalReasonID:
		return CloseRequest{Reason: strings.TrimSpace(inputValue(data.Components, fieldReason))}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownModal, data.CustomID)
}

// inputValue finds the value of a text input inside the rows of a modal.
func inputValue(components []discordgo.MessageComponent, customID string) string {
	for _, c := range components {
		switch v := c.(type) {
		case *discordgo.ActionsRow:
			if got := inputValue(v.Components, customID); got != "" {
				return got
			}
		case discordgo.ActionsRow:
			if got := inputValue(v.Components, customID); got != "" {
				return got
			}
		case *discordgo.TextInput:
			if v.CustomID == customID {
				return v.Value
			}
		case discordgo.TextInput:
			if v.CustomID == customID {
				return v.Value
			}
		}
	}
	return ""
}
