package commands_test

import (
	"testing"

	"oms/internal/core/application/usecases/commands"
	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/order"
	"oms/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewChangeOrderStatusesCommand(t *testing.T) {
	t.Run("should collapse repeated ids", func(t *testing.T) {
		first, second := kernel.NewUUID(), kernel.NewUUID()

		cmd, err := commands.NewChangeOrderStatusesCommand([]kernel.UUID{first, second, first}, order.Cancelled)

		require.NoError(t, err)
		assert.Equal(t, []kernel.UUID{first, second}, cmd.OrderIDs())
		assert.Equal(t, order.Cancelled, cmd.Status())
	})

	t.Run("should require at least one id", func(t *testing.T) {
		_, err := commands.NewChangeOrderStatusesCommand(nil, order.Shipped)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject an invalid id and status together", func(t *testing.T) {
		_, err := commands.NewChangeOrderStatusesCommand([]kernel.UUID{{}}, order.Unknown)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail validation when not constructed", func(t *testing.T) {
		var cmd commands.ChangeOrderStatusesCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrChangeOrderStatusesCommandIsNotConstructed)
	})
}

func TestChangeOrderStatusesCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	first := existingOrder(t, kernel.NewUUID())
	second := existingOrder(t, kernel.NewUUID())
	cmd, err := commands.NewChangeOrderStatusesCommand([]kernel.UUID{first.ID(), second.ID()}, order.Processing)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow, factory := orderUoWWith(repo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Get", ctx, first.ID()).Return(first, nil).Once(),
		repo.On("Update", ctx, first).Return(nil).Once(),
		repo.On("Get", ctx, second.ID()).Return(second, nil).Once(),
		repo.On("Update", ctx, second).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	recorder := new(MockRecorder)
	recorder.On("StatusChanged", order.Processing).Twice()

	h := commands.NewChangeOrderStatusesCommandHandler(factory, fixedClock, recorder)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, updated, 2)
	assert.True(t, updated[0].ID().IsEqual(first.ID()))
	assert.True(t, updated[1].ID().IsEqual(second.ID()))
	for _, o := range updated {
		assert.Equal(t, order.Processing, o.Status())
	}
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	recorder.AssertExpectations(t)
}

func TestChangeOrderStatusesCommandHandler_Handle_StampsDelivery(t *testing.T) {
	ctx := t.Context()
	shipped := existingOrder(t, kernel.NewUUID())
	require.NoError(t, shipped.TransitionTo(order.Processing, fixedNow))
	require.NoError(t, shipped.TransitionTo(order.Shipped, fixedNow))
	cmd, _ := commands.NewChangeOrderStatusesCommand([]kernel.UUID{shipped.ID()}, order.Delivered)

	repo := new(MockOrderRepository)
	uow, factory := orderUoWWith(repo)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	repo.On("Get", ctx, shipped.ID()).Return(shipped, nil)
	repo.On("Update", ctx, shipped).Return(nil)

	updated, err := commands.NewChangeOrderStatusesCommandHandler(factory, fixedClock, nil).Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, updated[0].FulfilledAt())
	assert.Equal(t, fixedNow, *updated[0].FulfilledAt())
}

func TestChangeOrderStatusesCommandHandler_Handle_OneRejectedMoveAbortsBatch(t *testing.T) {
	ctx := t.Context()
	movable := existingOrder(t, kernel.NewUUID())
	delivered := existingOrder(t, kernel.NewUUID())
	for _, next := range []order.Status{order.Processing, order.Shipped, order.Delivered} {
		require.NoError(t, delivered.TransitionTo(next, fixedNow))
	}
	cmd, _ := commands.NewChangeOrderStatusesCommand([]kernel.UUID{movable.ID(), delivered.ID()}, order.Cancelled)

	repo := new(MockOrderRepository)
	uow, factory := orderUoWWith(repo)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	repo.On("Get", ctx, movable.ID()).Return(movable, nil)
	repo.On("Update", ctx, movable).Return(nil)
	repo.On("Get", ctx, delivered.ID()).Return(delivered, nil)
	recorder := new(MockRecorder)

	_, err := commands.NewChangeOrderStatusesCommandHandler(factory, fixedClock, recorder).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertCalled(t, "Rollback", ctx)
	recorder.AssertNotCalled(t, "StatusChanged", mock.Anything)
}

func TestChangeOrderStatusesCommandHandler_Handle_UnknownOrder(t *testing.T) {
	ctx := t.Context()
	missing := kernel.NewUUID()
	cmd, _ := commands.NewChangeOrderStatusesCommand([]kernel.UUID{missing}, order.Shipped)

	repo := new(MockOrderRepository)
	uow, factory := orderUoWWith(repo)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	repo.On("Get", ctx, missing).Return(nil, errs.NewObjectNotFoundError("order", missing))

	_, err := commands.NewChangeOrderStatusesCommandHandler(factory, fixedClock, nil).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
