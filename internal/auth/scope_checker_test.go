package auth

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedSessionJSON(t *testing.T, caller Caller, createdAt time.Time) string {
	t.Helper()
	raw, err := json.Marshal(storedSession{
		Caller:    caller,
		CreatedAt: createdAt.Unix(),
	})
	require.NoError(t, err)
	return string(raw)
}

func TestScopeChecker_GetCaller(t *testing.T) {
	rdb, rmock := redismock.NewClientMock()
	checker := NewScopeChecker(DefaultTTL, rdb)

	token := gofakeit.UUID()
	caller := Caller{
		ID:        gofakeit.UUID(),
		Role:      RoleTrainer,
		TrainerID: gofakeit.UUID(),
	}
	rmock.ExpectGet(sessionKeyPrefix + token).
		SetVal(storedSessionJSON(t, caller, time.Now()))

	got, err := checker.GetCaller(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, caller, got)
	require.NoError(t, rmock.ExpectationsWereMet())
}

func TestScopeChecker_EmptyToken(t *testing.T) {
	rdb, _ := redismock.NewClientMock()
	checker := NewScopeChecker(DefaultTTL, rdb)

	_, err := checker.GetCaller(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestScopeChecker_UnknownToken(t *testing.T) {
	rdb, rmock := redismock.NewClientMock()
	checker := NewScopeChecker(DefaultTTL, rdb)

	rmock.ExpectGet(sessionKeyPrefix + "nope").RedisNil()

	_, err := checker.GetCaller(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestScopeChecker_ExpiredSession(t *testing.T) {
	rdb, rmock := redismock.NewClientMock()
	checker := NewScopeChecker(time.Hour, rdb)

	caller := Caller{ID: "a1", Role: RoleStudent, StudentID: "a1"}
	rmock.ExpectGet(sessionKeyPrefix + "stale").
		SetVal(storedSessionJSON(t, caller, time.Now().Add(-2*time.Hour)))

	_, err := checker.GetCaller(context.Background(), "stale")
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestScopeChecker_InvalidCaller(t *testing.T) {
	rdb, rmock := redismock.NewClientMock()
	checker := NewScopeChecker(DefaultTTL, rdb)

	// trainer session missing its trainer id
	caller := Caller{ID: "p1", Role: RoleTrainer}
	rmock.ExpectGet(sessionKeyPrefix + "broken").
		SetVal(storedSessionJSON(t, caller, time.Now()))

	_, err := checker.GetCaller(context.Background(), "broken")
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestCallerValid(t *testing.T) {
	assert.True(t, Caller{ID: "x", Role: RolePlatformAdmin}.Valid())
	assert.True(t, Caller{ID: "x", Role: RoleGymAdmin, GymID: "g1"}.Valid())
	assert.False(t, Caller{ID: "x", Role: RoleGymAdmin}.Valid())
	assert.False(t, Caller{ID: "x", Role: "superuser"}.Valid())
}

func TestCallerContext(t *testing.T) {
	caller := Caller{ID: "a1", Role: RoleStudent, StudentID: "a1"}

	ctx := ContextWithCaller(context.Background(), caller)
	got, ok := CallerFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, caller, got)

	_, ok = CallerFromContext(context.Background())
	assert.False(t, ok)
}
