package services

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"ai-tools-api/config"
	"ai-tools-api/internal/domain/user"
	apperrors "ai-tools-api/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]user.User // keyed by email
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]user.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.users[u.Email]; exists {
		return apperrors.ErrAlreadyExists
	}
	u.ID = primitive.NewObjectID()
	f.users[u.Email] = *u
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, exists := f.users[email]
	if !exists {
		return user.User{}, apperrors.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, apperrors.ErrNotFound
}

func (f *fakeUserRepo) delete(email string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, email)
}

func newTestAuthService(repo *fakeUserRepo) *AuthService {
	return NewAuthService(repo, &config.Config{
		JWTSecret:     "test-secret",
		JWTExpireDays: 7,
	})
}

func TestRegister_TokenResolvesToCreatedUser(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(newFakeUserRepo())

	res, err := svc.Register(context.Background(), RegisterInput{
		Name:     "A",
		Email:    "a@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)

	userID, err := svc.ParseAccessToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID.Hex(), userID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Name: "First", Email: "dup@x.com", Password: "secret1"})
	require.NoError(t, err)

	// Different name and password must not matter.
	_, err = svc.Register(ctx, RegisterInput{Name: "Second", Email: "dup@x.com", Password: "other-password"})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
}

func TestRegister_NormalizesEmail(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	res, err := svc.Register(ctx, RegisterInput{Name: "Casey", Email: "  Casey@Example.COM ", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "casey@example.com", res.User.Email)

	// Login with a differently cased email must find the same record.
	_, err = svc.Login(ctx, LoginInput{Email: "CASEY@example.com", Password: "secret1"})
	assert.NoError(t, err)
}

func TestRegister_Validation(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(newFakeUserRepo())
	ctx := context.Background()

	cases := []struct {
		name string
		in   RegisterInput
	}{
		{"short name", RegisterInput{Name: "A ", Email: "a@x.com", Password: "secret1"}},
		{"missing email", RegisterInput{Name: "Alice", Email: "", Password: "secret1"}},
		{"invalid email", RegisterInput{Name: "Alice", Email: "not-an-email", Password: "secret1"}},
		{"short password", RegisterInput{Name: "Alice", Email: "a@x.com", Password: "12345"}},
	}

	for _, tc := range cases {
		_, err := svc.Register(ctx, tc.in)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput, tc.name)
	}
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(newFakeUserRepo())
	ctx := context.Background()

	reg, err := svc.Register(ctx, RegisterInput{Name: "Alice", Email: "alice@x.com", Password: "secret1"})
	require.NoError(t, err)

	res, err := svc.Login(ctx, LoginInput{Email: "alice@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, reg.User.ID, res.User.ID)
}

func TestLogin_EnumerationResistance(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Name: "Alice", Email: "alice@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, wrongPassErr := svc.Login(ctx, LoginInput{Email: "alice@x.com", Password: "wrong-pass"})
	_, unknownEmailErr := svc.Login(ctx, LoginInput{Email: "nobody@x.com", Password: "secret1"})

	// Unknown email and wrong password must be indistinguishable.
	assert.ErrorIs(t, wrongPassErr, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmailErr, apperrors.ErrInvalidCredentials)
	assert.Equal(t, wrongPassErr, unknownEmailErr)
}

func TestParseAccessToken_Expired(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(newFakeUserRepo())
	svc.tokenTTL = -time.Second

	token, err := svc.IssueToken(primitive.NewObjectID().Hex())
	require.NoError(t, err)

	_, err = svc.ParseAccessToken(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestParseAccessToken_Malformed(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(newFakeUserRepo())

	_, err := svc.ParseAccessToken("not.a.jwt")
	assert.ErrorIs(t, err, apperrors.ErrTokenMalformed)

	_, err = svc.ParseAccessToken("")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestParseAccessToken_WrongSecret(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)
	other := NewAuthService(repo, &config.Config{JWTSecret: "other-secret", JWTExpireDays: 7})

	token, err := other.IssueToken(primitive.NewObjectID().Hex())
	require.NoError(t, err)

	_, err = svc.ParseAccessToken(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestCurrentUser_UserGone(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	res, err := svc.Register(ctx, RegisterInput{Name: "Alice", Email: "alice@x.com", Password: "secret1"})
	require.NoError(t, err)

	repo.delete("alice@x.com")

	_, err = svc.CurrentUser(ctx, res.User.ID)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestHTTPStatus(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want int
	}{
		{apperrors.ErrInvalidInput, http.StatusBadRequest},
		{apperrors.ErrAlreadyExists, http.StatusBadRequest},
		{apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{apperrors.ErrUnauthorized, http.StatusUnauthorized},
		{apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{apperrors.ErrTokenMalformed, http.StatusUnauthorized},
		{apperrors.ErrTokenInvalid, http.StatusUnauthorized},
		{apperrors.ErrNotFound, http.StatusNotFound},
		{apperrors.ErrRateLimited, http.StatusTooManyRequests},
		{context.DeadlineExceeded, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPStatus(tc.err), tc.err.Error())
	}
}

func TestPasswordHash_NeverPlaintext(t *testing.T) {
	t.Parallel()

	hash, err := hashPassword("secret1")
	require.NoError(t, err)
	assert.NotContains(t, hash, "secret1")
	assert.NoError(t, comparePassword(hash, "secret1"))
	assert.Error(t, comparePassword(hash, "secret2"))
}
