package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"ai-recipe-be/internal/config"
	"ai-recipe-be/internal/dto"
	"ai-recipe-be/internal/entity"
	"ai-recipe-be/internal/pkg/mailer"
	"ai-recipe-be/internal/repository/specification"
	"ai-recipe-be/internal/repository/unitofwork"
	"ai-recipe-be/pkg/events"
	pktNats "ai-recipe-be/pkg/nats"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.LoginResponse, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (*entity.User, error)
}

type authService struct {
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
	publisher    *pktNats.Publisher
	jwtSecret    []byte
	sessionTTL   time.Duration
	sessionCache *cache.Cache
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	publisher *pktNats.Publisher,
	cfg config.AuthConfig,
) IAuthService {
	ttl := time.Duration(cfg.SessionTTLHours) * time.Hour
	return &authService{
		uowFactory:   uowFactory,
		emailService: emailService,
		publisher:    publisher,
		jwtSecret:    []byte(cfg.JWTSecret),
		sessionTTL:   ttl,
		// Resolved sessions are cached briefly so the hot path skips the
		// DB; logout evicts, so revocation stays immediate in-process.
		sessionCache: cache.New(5*time.Minute, 10*time.Minute),
	}
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// 1. Check for existing user
	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}

	// 2. Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Active:       true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	// 3. Save. The unique index on users.email is the arbiter for
	// concurrent signups that both pass the existence check above.
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	if s.emailService != nil {
		go func() {
			if emailErr := s.emailService.SendWelcome(user.Email, user.FullName); emailErr != nil {
				fmt.Printf("Error sending welcome email: %v\n", emailErr)
			}
		}()
	}

	return &dto.RegisterResponse{Id: user.Id, Email: user.Email, CreatedAt: user.CreatedAt}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.Active {
		return nil, ErrInvalidCredentials
	}

	// Issue the session: a signed token carrying the session id, backed
	// by a server-side row holding the token's hash.
	sessionId := uuid.New()
	expiresAt := time.Now().Add(s.sessionTTL)

	claims := jwt.MapClaims{
		"session_id": sessionId.String(),
		"user_id":    user.Id.String(),
		"exp":        expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	session := &entity.Session{
		Id:        sessionId,
		UserId:    user.Id,
		TokenHash: hashToken(signedToken),
		ExpiresAt: expiresAt,
		Revoked:   false,
		IpAddress: ipAddress,
		UserAgent: userAgent,
		CreatedAt: time.Now(),
	}

	if err := uow.UserRepository().CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %v", err)
	}

	// PUBLISH EVENT
	if s.publisher != nil {
		event := events.BaseEvent{
			Type: "USER_LOGIN",
			Data: map[string]interface{}{
				"user_id": user.Id,
				"device":  userAgent,
				"time":    time.Now().Format(time.RFC822),
			},
			OccurredAt: time.Now(),
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			fmt.Printf("[WARN] Failed to publish USER_LOGIN event: %v\n", err)
		}
	}

	return &dto.LoginResponse{
		AccessToken: signedToken,
		ExpiresAt:   expiresAt.Unix(),
		User: dto.UserDTO{
			Id:       user.Id,
			Email:    user.Email,
			FullName: user.FullName,
		},
	}, nil
}

// parseToken returns the session id embedded in a signed token, or an
// error for any malformed, forged, or expired token.
func (s *authService) parseToken(tokenStr string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, ErrUnauthorized
	}
	rawId, ok := claims["session_id"].(string)
	if !ok {
		return uuid.Nil, ErrUnauthorized
	}
	sessionId, err := uuid.Parse(rawId)
	if err != nil {
		return uuid.Nil, ErrUnauthorized
	}
	return sessionId, nil
}

// CurrentUser resolves a token to its account. Missing, invalid,
// expired, and revoked tokens all yield (nil, nil): the request is
// simply unauthenticated, never an error.
func (s *authService) CurrentUser(ctx context.Context, tokenStr string) (*entity.User, error) {
	if tokenStr == "" {
		return nil, nil
	}

	sessionId, err := s.parseToken(tokenStr)
	if err != nil {
		return nil, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	var session *entity.Session
	if cached, found := s.sessionCache.Get(sessionId.String()); found {
		session = cached.(*entity.Session)
	} else {
		session, err = uow.UserRepository().FindSession(ctx, specification.ByID{ID: sessionId})
		if err != nil {
			return nil, err
		}
		if session != nil {
			s.sessionCache.Set(sessionId.String(), session, cache.DefaultExpiration)
		}
	}

	if session == nil || !session.Valid(time.Now()) {
		return nil, nil
	}
	if session.TokenHash != hashToken(tokenStr) {
		return nil, nil
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: session.UserId})
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, nil
	}
	return user, nil
}

// Logout revokes the session behind a token. It is idempotent: blank,
// invalid, or already-revoked tokens are a no-op.
func (s *authService) Logout(ctx context.Context, tokenStr string) error {
	if tokenStr == "" {
		return nil
	}

	sessionId, err := s.parseToken(tokenStr)
	if err != nil {
		return nil
	}

	s.sessionCache.Delete(sessionId.String())

	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.UserRepository().RevokeSession(ctx, sessionId)
}
