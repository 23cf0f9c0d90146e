package commands_test

import (
	"errors"
	"testing"

	"oms/internal/core/application/usecases/commands"
	"oms/internal/core/domain/model/customer"
	"oms/internal/core/domain/model/kernel"
	"oms/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateCustomerCommand_RequiresID(t *testing.T) {
	_, err := commands.NewUpdateCustomerCommand(kernel.UUID{}, adaProfile())

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestUpdateCustomerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	existing := goldCustomer(t, id)
	profile := adaProfile()
	profile.Email = "countess@example.com"
	profile.Segment = customer.Platinum
	cmd, err := commands.NewUpdateCustomerCommand(id, profile)
	require.NoError(t, err)

	repo := new(MockCustomerRepository)
	uow, factory := customerUoWWith(repo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Get", ctx, id).Return(existing, nil).Once(),
		repo.On("Update", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	updated, err := commands.NewUpdateCustomerCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "countess@example.com", updated.Email())
	assert.Equal(t, "+44 20 7946 0000", updated.Phone())
	assert.Equal(t, customer.Platinum, updated.Segment())
	assert.Equal(t, existing.CreatedAt(), updated.CreatedAt())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateCustomerCommandHandler_Handle_InvalidProfileIsNotStored(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	profile := adaProfile()
	profile.Email = "no-at-sign"
	cmd, _ := commands.NewUpdateCustomerCommand(id, profile)

	repo := new(MockCustomerRepository)
	uow, factory := customerUoWWith(repo)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	repo.On("Get", ctx, id).Return(goldCustomer(t, id), nil)

	_, err := commands.NewUpdateCustomerCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateCustomerCommandHandler_Handle_EmailTaken(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	existing := goldCustomer(t, id)
	cmd, _ := commands.NewUpdateCustomerCommand(id, adaProfile())

	repo := new(MockCustomerRepository)
	uow, factory := customerUoWWith(repo)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	repo.On("Get", ctx, id).Return(existing, nil)
	repo.On("Update", ctx, existing).Return(errs.NewObjectConflictError("customer", errors.New("duplicated key")))

	_, err := commands.NewUpdateCustomerCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectConflict)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
