package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"driverhub/internal/core/application/usecases/commands"
	"driverhub/internal/core/domain/model/driver"
	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/pkg/errs"
)

func TestNewRegisterDriverCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewRegisterDriverCommand("auth-123", "Ivan Petrov", "+79990001122", "A123BC", "bike")
	require.NoError(t, err)
	assert.Equal(t, "auth-123", cmd.AuthID())
	assert.Equal(t, "Ivan Petrov", cmd.FullName())
	assert.Equal(t, "+79990001122", cmd.Phone())
	assert.Equal(t, "A123BC", cmd.VehicleNumber())
	assert.Equal(t, "bike", cmd.VehicleType())
}

func TestNewRegisterDriverCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewRegisterDriverCommand("", "Ivan Petrov", "+79990001122", "A123BC", "bike")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewRegisterDriverCommand("auth-123", "", "+79990001122", "A123BC", "bike")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewRegisterDriverCommand("auth-123", "Ivan Petrov", "", "A123BC", "bike")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestRegisterDriverCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterDriverCommand("auth-123", "Ivan Petrov", "+79990001122", "A123BC", "bike")
	require.NoError(t, err)

	repo := new(MockDriverRepository)
	uow := new(MockDriverUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(repo).Once(),
		repo.On("GetByAuthID", ctx, "auth-123").Return(nil, errs.NewObjectNotFoundError("authId", "auth-123")).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterDriverCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRegisterDriverCommandHandler_Handle_AlreadyRegistered(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterDriverCommand("auth-123", "Ivan Petrov", "+79990001122", "A123BC", "bike")
	require.NoError(t, err)

	existing, err := driver.NewDriver(kernel.NewUUID(), "auth-123", "Ivan Petrov", "+79990001122", "A123BC", "bike")
	require.NoError(t, err)

	repo := new(MockDriverRepository)
	uow := new(MockDriverUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(repo).Once(),
		repo.On("GetByAuthID", ctx, "auth-123").Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterDriverCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrDriverAlreadyRegistered)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}
