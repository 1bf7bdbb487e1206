package session

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

const testSecret = "test-signing-secret"

type clock struct {
	t time.Time
}

func (c *clock) now() time.Time { return c.t }

func newTestService(t *testing.T, secret string, c *clock) *Service {
	t.Helper()
	s, err := NewService(secret, time.Hour, slog.Default(), WithClock(c.now))
	require.NoError(t, err)
	return s
}

func TestNewService_EmptySecret(t *testing.T) {
	_, err := NewService("", time.Hour, slog.Default())
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestNewService_DefaultTTL(t *testing.T) {
	s, err := NewService(testSecret, 0, slog.Default())
	require.NoError(t, err)
	assert.Equal(t, DefaultTTL, s.TTL())
}

func TestService_IssueVerify(t *testing.T) {
	c := &clock{t: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	s := newTestService(t, testSecret, c)

	token, err := s.Issue(42, "reader")
	require.NoError(t, err)
	assert.Equal(t, 3, len(strings.Split(token, ".")))

	claims, err := s.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "reader", claims.Username)
	assert.NotEmpty(t, claims.ID)
	assert.True(t, c.t.Add(time.Hour).Equal(claims.ExpiresAt.Time))
	assert.True(t, c.t.Equal(claims.IssuedAt.Time))
}

func TestService_Issue_UniqueID(t *testing.T) {
	c := &clock{t: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	s := newTestService(t, testSecret, c)

	a, err := s.Issue(1, "a")
	require.NoError(t, err)
	b, err := s.Issue(1, "a")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestService_Verify_Expiry(t *testing.T) {
	issued := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		elapsed time.Duration
		wantErr error
	}{
		{name: "fresh", elapsed: 0},
		{name: "just before ttl", elapsed: time.Hour - time.Second},
		{name: "at ttl", elapsed: time.Hour, wantErr: ErrTokenExpired},
		{name: "after ttl", elapsed: time.Hour + time.Minute, wantErr: ErrTokenExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &clock{t: issued}
			s := newTestService(t, testSecret, c)

			token, err := s.Issue(7, "reader")
			require.NoError(t, err)

			c.t = issued.Add(tt.elapsed)
			claims, err := s.Verify(token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrInvalidSession)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 7, claims.UserID)
		})
	}
}

func TestService_Verify_ForeignKey(t *testing.T) {
	c := &clock{t: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	other := newTestService(t, "another-secret", c)
	s := newTestService(t, testSecret, c)

	token, err := other.Issue(42, "mallory")
	require.NoError(t, err)

	_, err = s.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestService_Verify_Rejects(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	c := &clock{t: now}
	s := newTestService(t, testSecret, c)

	valid := Claims{
		UserID: 42,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}

	sign := func(method jwt.SigningMethod, claims jwt.Claims, key interface{}) string {
		token, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return token
	}

	good := sign(jwt.SigningMethodHS256, valid, []byte(testSecret))
	parts := strings.Split(good, ".")

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "alg none",
			token: sign(jwt.SigningMethodNone, valid, jwt.UnsafeAllowNoneSignatureType),
		},
		{
			// тот же ключ, но другой алгоритм
			name:  "HS512 with same secret",
			token: sign(jwt.SigningMethodHS512, valid, []byte(testSecret)),
		},
		{
			name: "missing exp",
			token: sign(jwt.SigningMethodHS256, Claims{
				UserID:           42,
				RegisteredClaims: jwt.RegisteredClaims{IssuedAt: jwt.NewNumericDate(now)},
			}, []byte(testSecret)),
		},
		{
			name: "missing user id",
			token: sign(jwt.SigningMethodHS256, Claims{
				RegisteredClaims: valid.RegisteredClaims,
			}, []byte(testSecret)),
		},
		{
			name: "issued in the future",
			token: sign(jwt.SigningMethodHS256, Claims{
				UserID: 42,
				RegisteredClaims: jwt.RegisteredClaims{
					IssuedAt:  jwt.NewNumericDate(now.Add(10 * time.Minute)),
					ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
				},
			}, []byte(testSecret)),
		},
		{
			name:  "tampered signature",
			token: parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2])),
		},
		{
			name:  "malformed",
			token: "not-a-token",
		},
		{
			name:  "empty",
			token: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := s.Verify(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}

	_, err := s.Verify(good)
	assert.NoError(t, err)
}

func TestContext_Claims(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	ctx := WithClaims(context.Background(), &Claims{UserID: 5})
	claims, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, 5, claims.UserID)
}
