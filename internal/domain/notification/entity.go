package notification

import (
	"strings"
	"time"

	"pantryshare/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrEmptyType = errs.New("notification type is empty")

// Well-known notification types. Payload shape is type-specific and loosely
// typed on purpose.
const (
	TypeOfferCreated = "offer_created"
	TypeOfferClaimed = "offer_claimed"
)

// RetentionWindow is the advisory TTL after which notifications may be purged.
const RetentionWindow = 30 * 24 * time.Hour

// Notification targets one user, or the whole household when userID is nil.
// A broadcast is stored once; per-reader acknowledgment lives in the seen-by
// set so read progress never mutates the notification for other readers.
type Notification struct {
	id          uuid.UUID
	householdID uuid.UUID
	userID      *uuid.UUID
	kind        string
	payload     map[string]any
	createdAt   time.Time
	seenBy      []uuid.UUID
}

func NewNotification(householdID uuid.UUID, userID *uuid.UUID, kind string, payload map[string]any, now time.Time) (*Notification, error) {
	kind = strings.TrimSpace(kind)
	if kind == "" {
		return nil, ErrEmptyType
	}

	if payload == nil {
		payload = map[string]any{}
	}

	return &Notification{
		id:          uuid.New(),
		householdID: householdID,
		userID:      userID,
		kind:        kind,
		payload:     payload,
		createdAt:   now,
		seenBy:      nil,
	}, nil
}

func (n *Notification) ID() uuid.UUID          { return n.id }
func (n *Notification) HouseholdID() uuid.UUID { return n.householdID }
func (n *Notification) UserID() *uuid.UUID     { return n.userID }
func (n *Notification) Kind() string           { return n.kind }
func (n *Notification) Payload() map[string]any { return n.payload }
func (n *Notification) CreatedAt() time.Time   { return n.createdAt }
func (n *Notification) SeenBy() []uuid.UUID    { return n.seenBy }

// IsBroadcast reports whether the notification addresses the whole household.
func (n *Notification) IsBroadcast() bool { return n.userID == nil }
