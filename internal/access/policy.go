// Package access decides whether an actor may perform an operation on a record.
//
// Every collection shares one owner rule: the actor must be the record's user.
// The only exception is creating raw_inbox items, which only the ingestion
// identity may do.
package access

import (
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
)

// ErrForbidden is returned by Check when the policy denies an operation.
var ErrForbidden = errors.New("forbidden")

// Operation is one of the five record operations.
type Operation string

const (
	OpList   Operation = "list"
	OpView   Operation = "view"
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

var Operations = []Operation{OpList, OpView, OpCreate, OpUpdate, OpDelete}

// Decision is the outcome of Authorize.
type Decision bool

const (
	Deny  Decision = false
	Allow Decision = true
)

func (d Decision) String() string {
	if d == Allow {
		return "allow"
	}
	return "deny"
}

// Collection names guarded by the policy.
const (
	Users        = "users"
	Accounts     = "accounts"
	Members      = "members"
	Categories   = "categories"
	Recurrences  = "recurrences"
	Transactions = "transactions"
	RawInbox     = "raw_inbox"
	Settings     = "settings"
)

// ruleKind is how an operation on a collection is decided.
type ruleKind int

const (
	// ruleOwner allows end users whose id matches the record owner.
	ruleOwner ruleKind = iota
	// ruleSystem allows only the ingestion identity.
	ruleSystem
)

type collectionRules map[Operation]ruleKind

func ownerRules() collectionRules {
	return collectionRules{
		OpList:   ruleOwner,
		OpView:   ruleOwner,
		OpCreate: ruleOwner,
		OpUpdate: ruleOwner,
		OpDelete: ruleOwner,
	}
}

var rules = map[string]collectionRules{
	Users:        ownerRules(),
	Accounts:     ownerRules(),
	Members:      ownerRules(),
	Categories:   ownerRules(),
	Recurrences:  ownerRules(),
	Transactions: ownerRules(),
	RawInbox: func() collectionRules {
		r := ownerRules()
		r[OpCreate] = ruleSystem
		return r
	}(),
	Settings: ownerRules(),
}

// Authorize decides whether actor may perform op on a record of collection
// owned by owner. For list, owner is the user the listing is scoped to.
func Authorize(actor Actor, collection string, owner uuid.UUID, op Operation) Decision {
	collRules, ok := rules[collection]
	if !ok {
		return Deny
	}
	kind, ok := collRules[op]
	if !ok {
		return Deny
	}

	switch kind {
	case ruleOwner:
		if actor.IsUser() && owner != uuid.Nil && owner == actor.ID {
			return Allow
		}
	case ruleSystem:
		if actor.IsIngestion() {
			return Allow
		}
	}
	return Deny
}

// Check is Authorize returning ErrForbidden on deny.
func Check(actor Actor, collection string, owner uuid.UUID, op Operation) error {
	if Authorize(actor, collection, owner, op) == Deny {
		return fmt.Errorf("%w: %s %s", ErrForbidden, op, collection)
	}
	return nil
}

// Guarded reports whether the policy knows collection.
func Guarded(collection string) bool {
	_, ok := rules[collection]
	return ok
}

// SystemOnly reports whether op on collection is reserved for the ingestion identity.
func SystemOnly(collection string, op Operation) bool {
	collRules, ok := rules[collection]
	if !ok {
		return false
	}
	kind, ok := collRules[op]
	return ok && kind == ruleSystem
}
