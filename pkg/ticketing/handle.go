package ticketing

import (
	"context"
	"fmt"

	"github.com/Jacobbrewer1/discordgo"
)

// HandleAction runs the operation behind a pressed control. Close and rename open their modal.
func (c *Controller) HandleAction(ctx context.Context, i *discordgo.Interaction, a Action) error {
	switch a {
	case ActionCreate:
		return c.Create(ctx, i)
	case ActionClaim:
		return c.Claim(ctx, i)
	case ActionClose, ActionRename:
		modal, _ := ModalFor(a)
		return c.respond(i, modal)
	case ActionDelete:
		return c.RequestDelete(ctx, i)
	case ActionCancelDelete:
		return c.CancelDelete(ctx, i)
	}
	return fmt.Errorf("unhandled action %s", a)
}

// HandleModal runs the operation behind a submitted modal.
func (c *Controller) HandleModal(ctx context.Context, i *discordgo.Interaction, req ModalRequest) error {
	switch r := req.(type) {
	case RenameRequest:
		return c.Rename(ctx, i, r)
	case CloseRequest:
		return c.Close(ctx, i, r)
	}
	return fmt.Errorf("%w: %T", ErrUnknownModal, req)
}
