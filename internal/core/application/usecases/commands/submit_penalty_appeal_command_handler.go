package commands

import (
	"context"
)

// SubmitPenaltyAppealCommandHandler files a driver's appeal against a
// penalty. The aggregate enforces the appeal rules: the penalty must be
// appealable and must not have an appeal yet.
type SubmitPenaltyAppealCommandHandler struct {
	uowFactory PenaltyUoWFactory
}

// NewSubmitPenaltyAppealCommandHandler creates a handler for appeal submission.
func NewSubmitPenaltyAppealCommandHandler(uowFactory PenaltyUoWFactory) SubmitPenaltyAppealCommandHandler {
	return SubmitPenaltyAppealCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the appeal submission command.
func (h *SubmitPenaltyAppealCommandHandler) Handle(ctx context.Context, cmd SubmitPenaltyAppealCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	penaltyRepo := uow.PenaltyRepository()

	aggregate, err := penaltyRepo.Get(ctx, cmd.PenaltyID(), cmd.DriverID())
	if err != nil {
		return err
	}

	if err = aggregate.SubmitAppeal(cmd.Reason()); err != nil {
		return err
	}

	if err = penaltyRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
