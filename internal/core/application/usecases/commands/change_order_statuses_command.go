package commands

import (
	"errors"

	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/order"
	"oms/internal/pkg/errs"
	"oms/internal/pkg/guard"
)

var ErrChangeOrderStatusesCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusesCommand must be created via NewChangeOrderStatusesCommand constructor",
)

// ChangeOrderStatusesCommand moves several orders to the same status at once.
// Repeated identifiers are collapsed, keeping the first occurrence.
type ChangeOrderStatusesCommand struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.UUID
	status   order.Status

	guard guard.ConstructorGuard
}

func NewChangeOrderStatusesCommand(orderIDs []kernel.UUID, status order.Status) (ChangeOrderStatusesCommand, error) {
	cmd := ChangeOrderStatusesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderIDs(orderIDs),
		cmd.setStatus(status),
	); err != nil {
		return ChangeOrderStatusesCommand{}, err
	}

	return cmd, nil
}

func (c ChangeOrderStatusesCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusesCommandIsNotConstructed)
}

func (c ChangeOrderStatusesCommand) OrderIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.orderIDs))
	copy(ids, c.orderIDs)
	return ids
}

func (c ChangeOrderStatusesCommand) Status() order.Status {
	return c.status
}

func (c *ChangeOrderStatusesCommand) setOrderIDs(orderIDs []kernel.UUID) error {
	if len(orderIDs) == 0 {
		return errs.NewValueIsRequiredError("order ids")
	}

	seen := make(map[kernel.UUID]struct{}, len(orderIDs))
	unique := make([]kernel.UUID, 0, len(orderIDs))
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	c.orderIDs = unique
	return nil
}

func (c *ChangeOrderStatusesCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
