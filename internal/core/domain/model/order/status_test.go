package order_test

import (
	"fmt"
	"testing"

	"driverhub/internal/core/domain/model/order"
	"driverhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Confirmed))
		assert.Equal(t, 2, int(order.Accepted))
		assert.Equal(t, 3, int(order.OnWay))
		assert.Equal(t, 4, int(order.Reached))
		assert.Equal(t, 5, int(order.Delivered))
		assert.Equal(t, 6, int(order.Cancelled))
	})

	t.Run("should have distinct values", func(t *testing.T) {
		statuses := []order.Status{
			order.Unknown,
			order.Confirmed,
			order.Accepted,
			order.OnWay,
			order.Reached,
			order.Delivered,
			order.Cancelled,
		}

		for i, status1 := range statuses {
			for j, status2 := range statuses {
				if i != j {
					assert.NotEqual(t, status1, status2,
						"statuses at indices %d and %d should be different", i, j)
				}
			}
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Confirmed,
			order.Accepted,
			order.OnWay,
			order.Reached,
			order.Delivered,
			order.Cancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "status")
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Status(-1),
			order.Status(7),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return persisted name for valid statuses", func(t *testing.T) {
		testCases := []struct {
			status   order.Status
			expected string
		}{
			{order.Confirmed, "confirmed"},
			{order.Accepted, "accepted"},
			{order.OnWay, "on_way"},
			{order.Reached, "reached"},
			{order.Delivered, "delivered"},
			{order.Cancelled, "cancelled"},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, tc.status.String())
		}
	})

	t.Run("should return unknown for invalid statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(7)} {
			assert.Equal(t, "unknown", status.String())
		}
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse every valid status", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected order.Status
		}{
			{"confirmed", order.Confirmed},
			{"accepted", order.Accepted},
			{"on_way", order.OnWay},
			{"reached", order.Reached},
			{"delivered", order.Delivered},
			{"cancelled", order.Cancelled},
		}

		for _, tc := range testCases {
			status, err := order.StatusFromString(tc.input)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, status)
		}
	})

	t.Run("should reject vocabulary outside the canonical set", func(t *testing.T) {
		for _, input := range []string{"", "unknown", "picked_up", "Completed", "DELIVERED"} {
			_, err := order.StatusFromString(input)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Confirmed.IsTerminal())
	assert.False(t, order.Accepted.IsTerminal())
	assert.False(t, order.OnWay.IsTerminal())
	assert.False(t, order.Reached.IsTerminal())
}

func TestStatus_CanTransitionTo(t *testing.T) {
	forwardChain := []order.Status{
		order.Confirmed,
		order.Accepted,
		order.OnWay,
		order.Reached,
		order.Delivered,
	}

	t.Run("should allow each single forward step", func(t *testing.T) {
		for i := 0; i < len(forwardChain)-1; i++ {
			from, to := forwardChain[i], forwardChain[i+1]
			t.Run(fmt.Sprintf("%s to %s", from, to), func(t *testing.T) {
				require.NoError(t, from.CanTransitionTo(to))
			})
		}
	})

	t.Run("should reject any skip in the forward chain", func(t *testing.T) {
		for i := 0; i < len(forwardChain); i++ {
			for j := i + 2; j < len(forwardChain); j++ {
				from, to := forwardChain[i], forwardChain[j]
				t.Run(fmt.Sprintf("%s to %s", from, to), func(t *testing.T) {
					err := from.CanTransitionTo(to)

					require.Error(t, err)
					assert.ErrorIs(t, err, errs.ErrIllegalTransition)
				})
			}
		}
	})

	t.Run("should reject any backward step", func(t *testing.T) {
		for i := 1; i < len(forwardChain)-1; i++ {
			for j := 0; j < i; j++ {
				from, to := forwardChain[i], forwardChain[j]
				err := from.CanTransitionTo(to)

				require.Error(t, err, "%s to %s should be rejected", from, to)
				assert.ErrorIs(t, err, errs.ErrIllegalTransition)
			}
		}
	})

	t.Run("should allow cancellation from every non-terminal status", func(t *testing.T) {
		for _, from := range []order.Status{order.Confirmed, order.Accepted, order.OnWay, order.Reached} {
			require.NoError(t, from.CanTransitionTo(order.Cancelled), "from %s", from)
		}
	})

	t.Run("terminal states allow nothing else", func(t *testing.T) {
		targets := []order.Status{
			order.Confirmed, order.Accepted, order.OnWay, order.Reached,
		}
		for _, from := range []order.Status{order.Delivered, order.Cancelled} {
			for _, to := range targets {
				err := from.CanTransitionTo(to)

				require.Error(t, err, "%s to %s should be rejected", from, to)
				assert.ErrorIs(t, err, errs.ErrIllegalTransition)
			}
		}

		require.Error(t, order.Delivered.CanTransitionTo(order.Cancelled))
		require.Error(t, order.Cancelled.CanTransitionTo(order.Delivered))
	})

	t.Run("re-submitting the current status is allowed", func(t *testing.T) {
		all := []order.Status{
			order.Confirmed, order.Accepted, order.OnWay,
			order.Reached, order.Delivered, order.Cancelled,
		}
		for _, s := range all {
			require.NoError(t, s.CanTransitionTo(s), "same-status %s", s)
		}
	})

	t.Run("should reject Unknown on either side", func(t *testing.T) {
		require.Error(t, order.Unknown.CanTransitionTo(order.Accepted))
		require.Error(t, order.Confirmed.CanTransitionTo(order.Unknown))
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("should return the new status on a legal transition", func(t *testing.T) {
		newStatus, err := order.Confirmed.TransitionTo(order.Accepted)

		require.NoError(t, err)
		assert.Equal(t, order.Accepted, newStatus)
	})

	t.Run("should return Unknown on an illegal transition", func(t *testing.T) {
		newStatus, err := order.Accepted.TransitionTo(order.Reached)

		require.Error(t, err)
		assert.Equal(t, order.Unknown, newStatus)
	})
}
