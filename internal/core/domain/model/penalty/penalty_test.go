package penalty_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/core/domain/model/penalty"
	"driverhub/internal/pkg/errs"
)

func mustMoney(t *testing.T, value string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(value)
	require.NoError(t, err)
	return m
}

func newTestPenalty(t *testing.T, canAppeal bool) *penalty.Penalty {
	t.Helper()
	p, err := penalty.NewPenalty(
		kernel.NewUUID(),
		kernel.NewUUID(),
		nil,
		"late delivery",
		mustMoney(t, "150.00"),
		penalty.SeverityMedium,
		canAppeal,
		time.Now(),
	)
	require.NoError(t, err)
	return p
}

func Test_NewPenalty(t *testing.T) {
	t.Run("should create pending penalty with no appeal", func(t *testing.T) {
		id := kernel.NewUUID()
		driverID := kernel.NewUUID()
		issuedAt := time.Now()

		p, err := penalty.NewPenalty(id, driverID, nil, "late delivery", mustMoney(t, "150.00"),
			penalty.SeverityHigh, true, issuedAt)

		require.NoError(t, err)
		assert.Equal(t, id, p.ID())
		assert.Equal(t, driverID, p.DriverID())
		assert.Nil(t, p.OrderID())
		assert.Equal(t, "late delivery", p.Reason())
		assert.True(t, p.Amount().IsEqual(mustMoney(t, "150.00")))
		assert.Equal(t, penalty.SeverityHigh, p.Severity())
		assert.Equal(t, penalty.StatusPending, p.Status())
		assert.True(t, p.CanAppeal())
		assert.Equal(t, penalty.AppealStatusNone, p.AppealStatus())
		assert.Empty(t, p.AppealReason())
		assert.Equal(t, issuedAt, p.IssuedAt())
		assert.NoError(t, p.Validate())
	})

	t.Run("should keep the linked order when one is given", func(t *testing.T) {
		orderID := kernel.NewUUID()

		p, err := penalty.NewPenalty(kernel.NewUUID(), kernel.NewUUID(), &orderID,
			"damaged package", mustMoney(t, "75.00"), penalty.SeverityLow, true, time.Now())

		require.NoError(t, err)
		require.NotNil(t, p.OrderID())
		assert.True(t, p.OrderID().IsEqual(orderID))
	})

	t.Run("should return error when reason is empty", func(t *testing.T) {
		p, err := penalty.NewPenalty(kernel.NewUUID(), kernel.NewUUID(), nil, "",
			mustMoney(t, "150.00"), penalty.SeverityLow, true, time.Now())

		assert.Nil(t, p)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should return error when severity is unknown", func(t *testing.T) {
		p, err := penalty.NewPenalty(kernel.NewUUID(), kernel.NewUUID(), nil, "late delivery",
			mustMoney(t, "150.00"), penalty.SeverityUnknown, true, time.Now())

		assert.Nil(t, p)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func Test_RestorePenalty(t *testing.T) {
	t.Run("should restore penalty with pending appeal", func(t *testing.T) {
		orderID := kernel.NewUUID()

		p, err := penalty.RestorePenalty(kernel.NewUUID(), kernel.NewUUID(), &orderID,
			"late delivery", mustMoney(t, "150.00"), penalty.SeverityMedium,
			penalty.StatusProcessed, true, penalty.AppealStatusPending, "was stuck in traffic",
			"reviewed by ops", time.Now())

		require.NoError(t, err)
		assert.Equal(t, penalty.StatusProcessed, p.Status())
		assert.Equal(t, penalty.AppealStatusPending, p.AppealStatus())
		assert.Equal(t, "was stuck in traffic", p.AppealReason())
		assert.Equal(t, "reviewed by ops", p.ResolutionNotes())
		require.NotNil(t, p.OrderID())
		assert.True(t, p.OrderID().IsEqual(orderID))
	})

	t.Run("should return error when appeal exists without reason", func(t *testing.T) {
		p, err := penalty.RestorePenalty(kernel.NewUUID(), kernel.NewUUID(), nil,
			"late delivery", mustMoney(t, "150.00"), penalty.SeverityMedium,
			penalty.StatusPending, true, penalty.AppealStatusPending, "", "", time.Now())

		assert.Nil(t, p)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func Test_Penalty_SubmitAppeal(t *testing.T) {
	t.Run("should move appeal status from none to pending", func(t *testing.T) {
		p := newTestPenalty(t, true)

		err := p.SubmitAppeal("was stuck in traffic")

		require.NoError(t, err)
		assert.Equal(t, penalty.AppealStatusPending, p.AppealStatus())
		assert.Equal(t, "was stuck in traffic", p.AppealReason())
	})

	t.Run("should reject appeal when penalty is not appealable", func(t *testing.T) {
		p := newTestPenalty(t, false)

		err := p.SubmitAppeal("was stuck in traffic")

		assert.ErrorIs(t, err, penalty.ErrAppealNotAllowed)
		assert.Equal(t, penalty.AppealStatusNone, p.AppealStatus())
	})

	t.Run("should reject appeal when penalty is no longer pending", func(t *testing.T) {
		for _, status := range []penalty.Status{penalty.StatusProcessed, penalty.StatusCancelled} {
			p, err := penalty.RestorePenalty(kernel.NewUUID(), kernel.NewUUID(), nil,
				"late delivery", mustMoney(t, "150.00"), penalty.SeverityMedium,
				status, true, penalty.AppealStatusNone, "", "", time.Now())
			require.NoError(t, err)

			err = p.SubmitAppeal("please reconsider")

			assert.ErrorIs(t, err, penalty.ErrAppealNotAllowed)
			assert.Equal(t, penalty.AppealStatusNone, p.AppealStatus())
		}
	})

	t.Run("should reject second appeal", func(t *testing.T) {
		p := newTestPenalty(t, true)
		require.NoError(t, p.SubmitAppeal("first reason"))

		err := p.SubmitAppeal("second reason")

		assert.ErrorIs(t, err, penalty.ErrAppealNotAllowed)
		assert.Equal(t, "first reason", p.AppealReason())
	})

	t.Run("should reject appeal without reason", func(t *testing.T) {
		p := newTestPenalty(t, true)

		err := p.SubmitAppeal("")

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, penalty.AppealStatusNone, p.AppealStatus())
	})
}

func Test_Penalty_Statuses(t *testing.T) {
	t.Run("severity round trip", func(t *testing.T) {
		for _, s := range []penalty.Severity{penalty.SeverityLow, penalty.SeverityMedium, penalty.SeverityHigh} {
			parsed, err := penalty.SeverityFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}

		_, err := penalty.SeverityFromString("critical")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("status round trip", func(t *testing.T) {
		for _, s := range []penalty.Status{penalty.StatusPending, penalty.StatusProcessed, penalty.StatusCancelled} {
			parsed, err := penalty.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}

		_, err := penalty.StatusFromString("active")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("appeal status round trip including none", func(t *testing.T) {
		for _, s := range []penalty.AppealStatus{penalty.AppealStatusNone, penalty.AppealStatusPending, penalty.AppealStatusApproved} {
			parsed, err := penalty.AppealStatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}

		_, err := penalty.AppealStatusFromString("rejected")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func Test_Penalty_Validate(t *testing.T) {
	var p penalty.Penalty
	assert.ErrorIs(t, p.Validate(), penalty.ErrPenaltyIsNotConstructed)
}
