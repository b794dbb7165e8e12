package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"ai-tools-api/config"
	"ai-tools-api/internal/domain/user"
	"ai-tools-api/internal/repository"
	apperrors "ai-tools-api/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo  repository.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(cfg.JWTSecret),
		tokenTTL:  time.Duration(cfg.JWTExpireDays) * 24 * time.Hour,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthResult struct {
	Token string
	User  user.User
}

type AccessClaims struct {
	jwt.RegisteredClaims
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (AuthResult, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = NormalizeEmail(in.Email)
	if err := validateRegister(in); err != nil {
		return AuthResult{}, err
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return AuthResult{}, err
	}

	now := time.Now()
	newUser := &user.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// The unique index on email makes this write the single point where
	// duplicate registration is rejected; no read-then-write race.
	if err := s.userRepo.Create(ctx, newUser); err != nil {
		return AuthResult{}, err
	}

	token, err := s.IssueToken(newUser.ID.Hex())
	if err != nil {
		return AuthResult{}, err
	}

	return AuthResult{Token: token, User: *newUser}, nil
}

// Login authenticates by email and password. Unknown email and wrong password
// both map to ErrInvalidCredentials so responses cannot be used to enumerate
// registered accounts.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (AuthResult, error) {
	in.Email = NormalizeEmail(in.Email)
	if in.Email == "" || in.Password == "" {
		return AuthResult{}, apperrors.ErrInvalidInput
	}

	u, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return AuthResult{}, apperrors.ErrInvalidCredentials
		}
		return AuthResult{}, err
	}

	if err := comparePassword(u.PasswordHash, in.Password); err != nil {
		return AuthResult{}, apperrors.ErrInvalidCredentials
	}

	token, err := s.IssueToken(u.ID.Hex())
	if err != nil {
		return AuthResult{}, err
	}

	return AuthResult{Token: token, User: u}, nil
}

// CurrentUser resolves a verified user id to the stored user. A valid token
// whose user has since disappeared yields ErrUnauthorized, not a 404.
func (s *AuthService) CurrentUser(ctx context.Context, id primitive.ObjectID) (user.User, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return user.User{}, apperrors.ErrUnauthorized
		}
		return user.User{}, err
	}
	return u, nil
}

// IssueToken signs an HS256 JWT with sub=userID and the configured TTL.
func (s *AuthService) IssueToken(userID string) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ParseAccessToken verifies a token and returns the subject user id. Expired
// and malformed tokens are distinguished from bad signatures.
func (s *AuthService) ParseAccessToken(tokenString string) (string, error) {
	if tokenString == "" {
		return "", apperrors.ErrUnauthorized
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrTokenInvalid
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", apperrors.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return "", apperrors.ErrTokenMalformed
		default:
			return "", apperrors.ErrTokenInvalid
		}
	}

	claims, ok := parsed.Claims.(*AccessClaims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return "", apperrors.ErrTokenInvalid
	}

	return claims.Subject, nil
}

// HTTPStatus maps service errors to the single status each one is allowed to
// produce at the boundary.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrAlreadyExists):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrUnauthorized),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenMalformed),
		errors.Is(err, apperrors.ErrTokenInvalid):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

type ctxKey string

var currentUserKey ctxKey = "current_user"

// WithCurrentUser attaches the resolved user to the request context.
func WithCurrentUser(ctx context.Context, u user.User) context.Context {
	return context.WithValue(ctx, currentUserKey, u)
}

// CurrentUserFromContext returns the user attached by the auth middleware.
func CurrentUserFromContext(ctx context.Context) (user.User, bool) {
	value := ctx.Value(currentUserKey)
	if value == nil {
		return user.User{}, false
	}
	u, ok := value.(user.User)
	return u, ok
}

// NormalizeEmail lowercases and trims an email so lookups and the unique index
// agree on a single canonical form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateRegister(in RegisterInput) error {
	if len(in.Name) < 2 {
		return apperrors.ErrInvalidInput
	}
	if in.Email == "" || !strings.Contains(in.Email, "@") {
		return apperrors.ErrInvalidInput
	}
	if len(in.Password) < 6 {
		return apperrors.ErrInvalidInput
	}
	return nil
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
