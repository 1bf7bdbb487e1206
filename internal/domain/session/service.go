package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// DefaultTTL - время жизни токена
const DefaultTTL = time.Hour

// Claims - содержимое токена сессии. На сервере не хранится.
type Claims struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username,omitempty"`
	jwt.RegisteredClaims
}

type Servicer interface {
	Issue(userID int, username string) (string, error)
	Verify(token string) (*Claims, error)
	TTL() time.Duration
}

type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	log    *slog.Logger
}

type Option func(*Service)

// WithClock подменяет источник времени, используется в тестах
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(secret string, ttl time.Duration, log *slog.Logger, opts ...Option) (*Service, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	s := &Service{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
		log:    log.With("component", "session_service"),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Issue подписывает HS256 токен с user_id и exp = iat + ttl
func (s *Service) Issue(userID int, username string) (string, error) {
	now := s.now()
	claims := Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	s.log.Debug("token issued", "user_id", userID, "jti", claims.ID)
	return signed, nil
}

// Verify проверяет подпись и срок действия. Принимается только HS256.
func (s *Service) Verify(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, s.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !parsed.Valid || claims.UserID <= 0 {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *Service) keyFunc(t *jwt.Token) (interface{}, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
	}
	return s.secret, nil
}
