package token_test

import (
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/aeroops/lostfound/internal/entity"
	"github.com/aeroops/lostfound/internal/token"
)

var testSecret = []byte("test-secret")

func testUser() entity.User {
	return entity.User{
		ID:             uuid.Must(uuid.NewV4()),
		EmployeeNumber: "AC10042",
		Role:           entity.RoleSupervisor,
	}
}

func TestMintAndVerify(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	user := testUser()

	raw, err := token.Mint(user, testSecret, time.Hour)
	r.NoError(err)

	claims, err := token.Verify(raw, testSecret)
	r.NoError(err)
	r.Equal(user.ID, claims.UserID)
	r.Equal(user.EmployeeNumber, claims.EmployeeNumber)
	r.Equal(entity.RoleSupervisor, claims.Role)
	r.NotEmpty(claims.ID)
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	raw, err := token.Mint(testUser(), testSecret, -time.Minute)
	r.NoError(err)

	_, err = token.Verify(raw, testSecret)
	r.ErrorIs(err, entity.ErrTokenExpired)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	raw, err := token.Mint(testUser(), []byte("other-secret"), time.Hour)
	r.NoError(err)

	_, err = token.Verify(raw, testSecret)
	r.ErrorIs(err, entity.ErrInvalidToken)
}

func TestVerify_NoneAlgorithm(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, token.UserClaims{
		UserID: uuid.Must(uuid.NewV4()),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	r.NoError(err)

	_, err = token.Verify(unsigned, testSecret)
	r.ErrorIs(err, entity.ErrInvalidToken)
}

func TestVerify_Garbage(t *testing.T) {
	t.Parallel()

	_, err := token.Verify("not.a.token", testSecret)
	require.ErrorIs(t, err, entity.ErrInvalidToken)
}
