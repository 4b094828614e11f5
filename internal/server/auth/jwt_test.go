package auth

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/koach/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newService(t *testing.T, secret string, now time.Time) *TokenService {
	t.Helper()
	s, err := NewTokenService([]byte(secret), WithClock(fixedClock(now)))
	require.NoError(t, err)
	return s
}

func TestNewTokenService_EmptySecret(t *testing.T) {
	_, err := NewTokenService(nil)
	require.Error(t, err)
}

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	now := time.Unix(1_700_000_000, 0)
	s := newService(t, "super-secret", now)

	tok, err := s.Issue("user-123")
	require.NoError(t, err)

	got, err := s.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", got)
}

func TestIssue_ClaimsShape(t *testing.T) {
	t.Parallel()

	now := time.Unix(1_700_000_000, 0)
	s := newService(t, "k", now)

	tok, err := s.Issue("u-1")
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	var claims map[string]any
	require.NoError(t, json.Unmarshal(payload, &claims))
	assert.Equal(t, "u-1", claims["userId"])
	assert.EqualValues(t, now.Unix(), claims["iat"])
	assert.EqualValues(t, now.Add(time.Hour).Unix(), claims["exp"])

	header, err := base64.RawURLEncoding.DecodeString(parts[0])
	require.NoError(t, err)
	assert.Contains(t, string(header), `"HS256"`)
}

func TestVerify_Expiry(t *testing.T) {
	t.Parallel()

	issued := time.Unix(1_700_000_000, 0)
	tok, err := newService(t, "k", issued).Issue("u1")
	require.NoError(t, err)

	tests := []struct {
		name    string
		at      time.Time
		wantErr error
	}{
		{"just issued", issued, nil},
		{"one second before expiry", issued.Add(time.Hour - time.Second), nil},
		{"at expiry", issued.Add(time.Hour), common.ErrTokenExpired},
		{"long after", issued.Add(48 * time.Hour), common.ErrTokenExpired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newService(t, "k", tt.at).Verify(tok)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	now := time.Unix(1_700_000_000, 0)
	tok, err := newService(t, "right-secret", now).Issue("u2")
	require.NoError(t, err)

	_, err = newService(t, "wrong-secret", now).Verify(tok)
	assert.ErrorIs(t, err, common.ErrTokenMalformed)
}

func TestVerify_TamperedExpiredTokenIsMalformed(t *testing.T) {
	t.Parallel()

	issued := time.Unix(1_700_000_000, 0)
	tok, err := newService(t, "k", issued).Issue("u3")
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	forged, err := json.Marshal(map[string]any{
		"userId": "someone-else",
		"iat":    issued.Unix(),
		"exp":    issued.Add(time.Hour).Unix(),
	})
	require.NoError(t, err)
	tampered := parts[0] + "." + base64.RawURLEncoding.EncodeToString(forged) + "." + parts[2]

	_, err = newService(t, "k", issued.Add(2*time.Hour)).Verify(tampered)
	assert.ErrorIs(t, err, common.ErrTokenMalformed)
	assert.NotErrorIs(t, err, common.ErrTokenExpired)
}

func TestVerify_MalformedInputs(t *testing.T) {
	t.Parallel()

	now := time.Unix(1_700_000_000, 0)
	s := newService(t, "k", now)

	noUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))},
	}).SignedString([]byte("k"))
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: "u"}).SignedString([]byte("k"))
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))},
		UserID:           "u",
	}).SignedString([]byte("k"))
	require.NoError(t, err)

	for name, tok := range map[string]string{
		"garbage":        "not.a.jwt",
		"empty":          "",
		"missing userId": noUser,
		"missing exp":    noExp,
		"other alg":      hs512,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := s.Verify(tok)
			assert.ErrorIs(t, err, common.ErrTokenMalformed)
		})
	}
}
