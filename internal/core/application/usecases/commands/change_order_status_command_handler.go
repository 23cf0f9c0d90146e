package commands

import (
	"context"

	"oms/internal/core/domain/model/order"
	"oms/internal/core/domain/services"
)

// ChangeOrderStatusCommandHandler runs one lifecycle transition per transaction.
// Reaching Delivered stamps the fulfillment timestamp; amounts never change.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	now        services.Clock
	recorder   OrderRecorder
}

func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	now services.Clock,
	recorder OrderRecorder,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		now:        clockOrNow(now),
		recorder:   recorderOrNop(recorder),
	}
}

// Handle returns *errs.ObjectNotFoundError for an unknown order and
// *errs.InvalidTransitionError when the lifecycle forbids the move.
func (h ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = existing.TransitionTo(cmd.Status(), h.now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.recorder.StatusChanged(existing.Status())
	return existing, nil
}
