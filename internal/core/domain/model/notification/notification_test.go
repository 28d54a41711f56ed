package notification_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/core/domain/model/notification"
	"driverhub/internal/pkg/errs"
)

func Test_NewNotification(t *testing.T) {
	t.Run("should create unread notification", func(t *testing.T) {
		id := kernel.NewUUID()
		recipientID := kernel.NewUUID()
		createdAt := time.Now()

		n, err := notification.NewNotification(id, recipientID, notification.KindOrder,
			"New order", "Order #42 assigned to you", createdAt)

		require.NoError(t, err)
		assert.Equal(t, id, n.ID())
		assert.Equal(t, recipientID, n.RecipientID())
		assert.Equal(t, notification.KindOrder, n.Kind())
		assert.Equal(t, "New order", n.Title())
		assert.Equal(t, "Order #42 assigned to you", n.Message())
		assert.False(t, n.IsRead())
		assert.Equal(t, createdAt, n.CreatedAt())
		assert.NoError(t, n.Validate())
	})

	t.Run("should return error when title is empty", func(t *testing.T) {
		n, err := notification.NewNotification(kernel.NewUUID(), kernel.NewUUID(),
			notification.KindSystem, "", "body", time.Now())

		assert.Nil(t, n)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should return error when kind is unknown", func(t *testing.T) {
		n, err := notification.NewNotification(kernel.NewUUID(), kernel.NewUUID(),
			notification.KindUnknown, "title", "body", time.Now())

		assert.Nil(t, n)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func Test_RestoreNotification(t *testing.T) {
	n, err := notification.RestoreNotification(kernel.NewUUID(), kernel.NewUUID(),
		notification.KindPenalty, "Penalty issued", "A penalty was issued", true, time.Now())

	require.NoError(t, err)
	assert.True(t, n.IsRead())
}

func Test_Notification_MarkRead(t *testing.T) {
	n, err := notification.NewNotification(kernel.NewUUID(), kernel.NewUUID(),
		notification.KindPayment, "Payment received", "You were paid", time.Now())
	require.NoError(t, err)

	n.MarkRead()
	assert.True(t, n.IsRead())

	// marking again stays read
	n.MarkRead()
	assert.True(t, n.IsRead())
}

func Test_KindFromString(t *testing.T) {
	for _, k := range []notification.Kind{
		notification.KindOrder,
		notification.KindPayment,
		notification.KindPenalty,
		notification.KindSystem,
	} {
		parsed, err := notification.KindFromString(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	_, err := notification.KindFromString("broadcast")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func Test_Notification_Validate(t *testing.T) {
	var n notification.Notification
	assert.ErrorIs(t, n.Validate(), notification.ErrNotificationIsNotConstructed)
}
