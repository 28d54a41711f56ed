package notification

import (
	"errors"
	"time"

	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/pkg/errs"
)

// ErrNotificationIsNotConstructed is returned when a Notification instance
// was not created through the NewNotification or RestoreNotification factory
// methods.
var ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification or RestoreNotification")

// Kind classifies what a notification is about.
type Kind int

const (
	KindUnknown Kind = iota
	KindOrder
	KindPayment
	KindPenalty
	KindSystem
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown: "unknown",
		KindOrder:   "order",
		KindPayment: "payment",
		KindPenalty: "penalty",
		KindSystem:  "system",
	}
}

// KindFromString parses the persisted representation of a kind.
func KindFromString(s string) (Kind, error) {
	for kind, str := range getKindStrings() {
		if kind != KindUnknown && str == s {
			return kind, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidError("kind")
}

// Validate returns an error for values outside the known kind set.
func (k Kind) Validate() error {
	if _, ok := getKindStrings()[k]; !ok || k == KindUnknown {
		return errs.NewValueIsInvalidError("kind")
	}
	return nil
}

func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return getKindStrings()[KindUnknown]
}

// Notification is a message addressed to a driver. Records are created by
// other parts of the system; the app only lists them and flips the read
// flag. Actual push delivery is an external dispatcher's concern.
type Notification struct {
	id          kernel.UUID
	recipientID kernel.UUID

	kind    Kind
	title   string
	message string

	read      bool
	createdAt time.Time

	isConstructed bool
}

// NewNotification creates an unread notification for a driver.
func NewNotification(id, recipientID kernel.UUID, kind Kind, title, message string, createdAt time.Time) (*Notification, error) {
	n := &Notification{
		kind:          kind,
		message:       message,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		n.setID(id),
		n.setRecipientID(recipientID),
		n.setTitle(title),
		kind.Validate(),
	); err != nil {
		return nil, err
	}

	return n, nil
}

// RestoreNotification reconstructs a Notification from persistence.
func RestoreNotification(id, recipientID kernel.UUID, kind Kind, title, message string, read bool, createdAt time.Time) (*Notification, error) {
	n, err := NewNotification(id, recipientID, kind, title, message, createdAt)
	if err != nil {
		return nil, err
	}
	n.read = read
	return n, nil
}

// Validate ensures the Notification instance was properly constructed
// through a factory method.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

// ID returns the notification's unique identifier.
func (n *Notification) ID() kernel.UUID {
	return n.id
}

// RecipientID returns the addressed driver's identifier.
func (n *Notification) RecipientID() kernel.UUID {
	return n.recipientID
}

// Kind returns what the notification is about.
func (n *Notification) Kind() Kind {
	return n.kind
}

// Title returns the short headline.
func (n *Notification) Title() string {
	return n.title
}

// Message returns the notification body.
func (n *Notification) Message() string {
	return n.message
}

// IsRead reports whether the driver has read the notification.
func (n *Notification) IsRead() bool {
	return n.read
}

// CreatedAt returns when the notification was created.
func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// MarkRead flips the read flag. Marking an already read notification is a
// no-op.
func (n *Notification) MarkRead() {
	n.read = true
}

func (n *Notification) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *Notification) setRecipientID(recipientID kernel.UUID) error {
	if err := recipientID.Validate(); err != nil {
		return err
	}
	n.recipientID = recipientID
	return nil
}

func (n *Notification) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	n.title = title
	return nil
}
