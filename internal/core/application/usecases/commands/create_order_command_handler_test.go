package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"driverhub/internal/core/application/usecases/commands"
	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/pkg/errs"
)

func validCreateOrderCommand(t *testing.T) commands.CreateOrderCommand {
	t.Helper()
	amount, err := kernel.NewMoneyFromString("250.50")
	require.NoError(t, err)
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), amount,
		"cash", "Warehouse 1", "Main St 10", "call on arrival")
	require.NoError(t, err)
	return cmd
}

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	cmd := validCreateOrderCommand(t)
	assert.Equal(t, "cash", cmd.PaymentMethod())
	assert.Equal(t, "Warehouse 1", cmd.Start())
	assert.Equal(t, "Main St 10", cmd.Destination())
	assert.Equal(t, "call on arrival", cmd.DeliveryNotes())
}

func TestNewCreateOrderCommand_InvalidInput(t *testing.T) {
	amount, err := kernel.NewMoneyFromString("250.50")
	require.NoError(t, err)

	_, err = commands.NewCreateOrderCommand(kernel.UUID{}, kernel.NewUUID(), amount, "cash", "A", "B", "")
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), amount, "", "A", "B", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), amount, "cash", "", "B", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateOrderCommand(t)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateOrderCommand(t)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewCreateOrderCommandHandler(new(MockOrderUoWFactory))
	err := h.Handle(t.Context(), commands.CreateOrderCommand{})
	require.Error(t, err)
}
