package commands

import (
	"context"

	"oms/internal/core/domain/model/order"
	"oms/internal/core/domain/services"
)

// ChangeOrderStatusesCommandHandler applies one status to a batch of orders in a
// single transaction. Every order goes through the lifecycle; the first rejected
// move aborts the whole batch.
type ChangeOrderStatusesCommandHandler struct {
	uowFactory OrderUoWFactory
	now        services.Clock
	recorder   OrderRecorder
}

func NewChangeOrderStatusesCommandHandler(
	uowFactory OrderUoWFactory,
	now services.Clock,
	recorder OrderRecorder,
) ChangeOrderStatusesCommandHandler {
	return ChangeOrderStatusesCommandHandler{
		uowFactory: uowFactory,
		now:        clockOrNow(now),
		recorder:   recorderOrNop(recorder),
	}
}

// Handle returns the updated orders in request order. It fails with
// *errs.ObjectNotFoundError or *errs.InvalidTransitionError for the first order
// that cannot move, and then nothing is stored.
func (h ChangeOrderStatusesCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusesCommand,
) ([]*order.Order, error) {
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

	now := h.now()
	orderRepo := uow.OrderRepository()
	updated := make([]*order.Order, 0, len(cmd.OrderIDs()))
	for _, id := range cmd.OrderIDs() {
		existing, err := orderRepo.Get(ctx, id)
		if err != nil {
			return nil, err
		}

		if err = existing.TransitionTo(cmd.Status(), now); err != nil {
			return nil, err
		}

		if err = orderRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		updated = append(updated, existing)
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	for _, o := range updated {
		h.recorder.StatusChanged(o.Status())
	}
	return updated, nil
}
