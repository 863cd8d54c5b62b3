package commands

import (
	"context"
	"time"

	"titipin/internal/core/domain/model/chat"
	"titipin/internal/core/domain/services"
	"titipin/internal/core/ports"
	"titipin/internal/pkg/errs"
)

// SendMessageCommandHandler persists a chat message and fans it out to the
// order's channel. The channel exists only once a deliverer is assigned;
// before that there is nobody to talk to.
//
// Persistence is the source of truth: the broadcast happens after commit, so
// a connected participant never sees a message that later rolled back.
type SendMessageCommandHandler struct {
	uowFactory ChatUoWFactory
	publisher  ports.MessagePublisher
	policy     services.AccessPolicy

	// now is replaceable in tests.
	now func() time.Time
}

// NewSendMessageCommandHandler creates a handler for posting chat messages.
func NewSendMessageCommandHandler(
	uowFactory ChatUoWFactory,
	publisher ports.MessagePublisher,
) SendMessageCommandHandler {
	return SendMessageCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		policy:     services.NewAccessPolicy(),
		now:        time.Now,
	}
}

// Handle persists the message and returns it with its server-assigned
// timestamp.
func (h SendMessageCommandHandler) Handle(ctx context.Context, cmd SendMessageCommand) (*chat.Message, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if ord.Deliverer() == nil {
		return nil, errs.NewInvalidStateError("send message", ord.Status().String())
	}

	actor := services.Actor{ID: cmd.SenderID()}
	if err = h.policy.Authorize(actor, services.ActionChat, ord); err != nil {
		return nil, err
	}

	message, err := chat.NewMessage(
		cmd.MessageID(),
		cmd.OrderID(),
		cmd.SenderID(),
		cmd.SenderName(),
		cmd.Text(),
		h.now(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.MessageRepository().Add(ctx, message); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if h.publisher != nil {
		h.publisher.PublishMessage(cmd.OrderID(), message)
	}

	return message, nil
}
