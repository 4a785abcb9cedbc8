package auth

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budgettime-server/internal/access"
)

func TestTokens_RoundTrip(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour)

	user := access.User(uuid.Must(uuid.NewV4()))
	token, err := tokens.Generate(user)
	require.NoError(t, err)

	actor, err := tokens.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, user, actor)

	pipeline := access.Ingestion(uuid.Must(uuid.NewV4()))
	token, err = tokens.Generate(pipeline)
	require.NoError(t, err)

	actor, err = tokens.Parse(token)
	require.NoError(t, err)
	assert.True(t, actor.IsIngestion())
	assert.False(t, actor.IsUser())
}

func TestTokens_WrongSecret(t *testing.T) {
	token, err := NewTokens("secret-a", time.Hour).Generate(access.User(uuid.Must(uuid.NewV4())))
	require.NoError(t, err)

	_, err = NewTokens("secret-b", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokens_Expired(t *testing.T) {
	tokens := NewTokens("test-secret", time.Minute)
	tokens.now = func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }

	token, err := tokens.Generate(access.User(uuid.Must(uuid.NewV4())))
	require.NoError(t, err)

	tokens.now = func() time.Time { return time.Date(2025, 1, 1, 1, 0, 0, 0, time.UTC) }
	_, err = tokens.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokens_UnknownKind(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour)
	token, err := tokens.Generate(access.Actor{ID: uuid.Must(uuid.NewV4()), Kind: "admin"})
	require.NoError(t, err)

	_, err = tokens.Parse(token)
	assert.ErrorIs(t, err, ErrUnknownActorKind)
}

func TestBearerToken(t *testing.T) {
	token, err := BearerToken("Bearer abc.def")
	assert.NoError(t, err)
	assert.Equal(t, "abc.def", token)

	_, err = BearerToken("")
	assert.ErrorIs(t, err, ErrMissingAuthHeader)

	_, err = BearerToken("Basic abc")
	assert.ErrorIs(t, err, ErrInvalidAuthHeader)

	_, err = BearerToken("Bearer ")
	assert.ErrorIs(t, err, ErrInvalidAuthHeader)
}

type whoAmIOutput struct {
	Body struct {
		ID   string `json:"id"`
		Kind string `json:"kind"`
	}
}

func newMiddlewareTestAPI(t *testing.T, tokens *Tokens) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(Middleware(api, tokens, "ping"))

	huma.Register(api, huma.Operation{
		OperationID: "whoami",
		Method:      http.MethodGet,
		Path:        "/whoami",
	}, func(ctx context.Context, _ *struct{}) (*whoAmIOutput, error) {
		actor, ok := ActorFromContext(ctx)
		if !ok {
			return nil, huma.Error500InternalServerError("no actor")
		}
		out := &whoAmIOutput{}
		out.Body.ID = actor.ID.String()
		out.Body.Kind = string(actor.Kind)
		return out, nil
	})
	huma.Register(api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping",
	}, func(ctx context.Context, _ *struct{}) (*struct{}, error) {
		return &struct{}{}, nil
	})
	return api
}

func TestMiddleware(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour)
	api := newMiddlewareTestAPI(t, tokens)

	resp := api.Get("/whoami")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	resp = api.Get("/whoami", "Authorization: Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	user := access.User(uuid.Must(uuid.NewV4()))
	token, err := tokens.Generate(user)
	require.NoError(t, err)

	resp = api.Get("/whoami", "Authorization: Bearer "+token)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), user.ID.String())

	resp = api.Get("/ping")
	assert.Equal(t, http.StatusNoContent, resp.Code, "public operations skip auth")
}
