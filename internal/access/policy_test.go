package access

import (
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
)

var ownedCollections = []string{Accounts, Members, Categories, Recurrences, Transactions, RawInbox, Settings}

func TestAuthorize_OwnerRule(t *testing.T) {
	owner := uuid.Must(uuid.NewV4())
	stranger := uuid.Must(uuid.NewV4())

	for _, collection := range ownedCollections {
		for _, op := range []Operation{OpList, OpView, OpUpdate, OpDelete} {
			assert.Equal(t, Allow, Authorize(User(owner), collection, owner, op), "%s %s by owner", op, collection)
			assert.Equal(t, Deny, Authorize(User(stranger), collection, owner, op), "%s %s by stranger", op, collection)
		}
	}
}

func TestAuthorize_CreateOwnedRecord(t *testing.T) {
	owner := uuid.Must(uuid.NewV4())
	stranger := uuid.Must(uuid.NewV4())

	for _, collection := range ownedCollections {
		if collection == RawInbox {
			continue
		}
		assert.Equal(t, Allow, Authorize(User(owner), collection, owner, OpCreate), collection)
		assert.Equal(t, Deny, Authorize(User(stranger), collection, owner, OpCreate), collection)
	}
}

func TestAuthorize_RawInboxCreateIsSystemOnly(t *testing.T) {
	owner := uuid.Must(uuid.NewV4())
	pipeline := Ingestion(uuid.Must(uuid.NewV4()))

	assert.Equal(t, Deny, Authorize(User(owner), RawInbox, owner, OpCreate), "owner cannot create inbox items")
	assert.Equal(t, Allow, Authorize(pipeline, RawInbox, owner, OpCreate))
	assert.True(t, SystemOnly(RawInbox, OpCreate))
	assert.False(t, SystemOnly(RawInbox, OpUpdate))
}

func TestAuthorize_IngestionHasNoOtherPowers(t *testing.T) {
	owner := uuid.Must(uuid.NewV4())
	pipeline := Ingestion(owner)

	for _, collection := range ownedCollections {
		for _, op := range Operations {
			if collection == RawInbox && op == OpCreate {
				continue
			}
			assert.Equal(t, Deny, Authorize(pipeline, collection, owner, op), "%s %s", op, collection)
		}
	}
}

func TestAuthorize_DefaultDeny(t *testing.T) {
	owner := uuid.Must(uuid.NewV4())

	assert.Equal(t, Deny, Authorize(Actor{}, Accounts, uuid.Nil, OpList), "anonymous actor")
	assert.Equal(t, Deny, Authorize(User(uuid.Nil), Accounts, uuid.Nil, OpView), "nil ids never match")
	assert.Equal(t, Deny, Authorize(User(owner), "budgets", owner, OpView), "unknown collection")
	assert.Equal(t, Deny, Authorize(User(owner), Accounts, owner, Operation("export")), "unknown operation")
	assert.False(t, Guarded("budgets"))
}

func TestCheck(t *testing.T) {
	owner := uuid.Must(uuid.NewV4())

	assert.NoError(t, Check(User(owner), Transactions, owner, OpUpdate))

	err := Check(User(uuid.Must(uuid.NewV4())), Transactions, owner, OpUpdate)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Contains(t, err.Error(), "update transactions")
}

func TestActor_Kinds(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	assert.True(t, User(id).IsUser())
	assert.False(t, User(id).IsIngestion())
	assert.False(t, User(uuid.Nil).IsUser(), "nil id is not a user")
	assert.True(t, Ingestion(id).IsIngestion())
	assert.False(t, Ingestion(id).IsUser())
	assert.False(t, Actor{}.IsUser() || Actor{}.IsIngestion())
}
