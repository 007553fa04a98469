package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/secureapp/secureapp/pkg/jwt"
	"github.com/secureapp/secureapp/pkg/password"
	"github.com/secureapp/secureapp/pkg/qrcode"
	"github.com/secureapp/secureapp/pkg/totp"
)

// Config holds authentication settings, loaded from the environment.
type Config struct {
	SigningKey string        `env:"JWT_SIGNING_KEY,required"`
	TokenTTL   time.Duration `env:"TOKEN_TTL" envDefault:"1h"`
	Issuer     string        `env:"TOTP_ISSUER" envDefault:"SecureApp"`
	BcryptCost int           `env:"BCRYPT_COST" envDefault:"10"`
	OTPWindow  int           `env:"OTP_DRIFT_WINDOW" envDefault:"1"`
}

// Service orchestrates registration, two-factor login, and authenticator
// provisioning over the injected credential store.
type Service struct {
	storage  Storage
	hasher   *password.Hasher
	tokens   *jwt.Service
	logger   *slog.Logger
	issuer   string
	tokenTTL time.Duration
	window   int

	now func() time.Time
}

// NewService constructs a Service. The token service carries the
// process-wide signing key; the hasher carries the bcrypt cost.
func NewService(storage Storage, hasher *password.Hasher, tokens *jwt.Service, logger *slog.Logger, cfg Config) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	window := cfg.OTPWindow
	if window < 0 {
		window = totp.DefaultWindow
	}
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	issuer := cfg.Issuer
	if issuer == "" {
		issuer = "SecureApp"
	}
	return &Service{
		storage:  storage,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
		issuer:   issuer,
		tokenTTL: ttl,
		window:   window,
		now:      time.Now,
	}
}

// Register creates a new user with a hashed password and a fresh TOTP
// secret, and returns the secret so the caller can present it for
// authenticator enrollment. Returns ErrUsernameTaken for duplicates.
func (s *Service) Register(ctx context.Context, username, plaintext string) (string, error) {
	if username == "" || plaintext == "" {
		return "", ErrMissingFields
	}

	hash, err := s.hasher.Hash(plaintext)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	secret, err := totp.GenerateSecret()
	if err != nil {
		return "", fmt.Errorf("generate totp secret: %w", err)
	}

	user := &User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hash,
		TOTPSecret:   secret,
		CreatedAt:    s.now(),
	}

	if err := s.storage.CreateUser(ctx, user); err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			return "", ErrUsernameTaken
		}
		return "", fmt.Errorf("create user: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered", slog.String("username", username))

	return secret, nil
}

// Login verifies the password and one-time code and issues a signed
// bearer token for the user. Every failure cause collapses into
// ErrInvalidCredentials so responses cannot be used for username
// enumeration or to learn which factor failed.
func (s *Service) Login(ctx context.Context, username, plaintext, code string) (string, error) {
	user, err := s.storage.GetUserByUsername(ctx, username)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if !s.hasher.Verify(plaintext, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	ok, err := totp.Validate(user.TOTPSecret, code, s.now(), s.window)
	if err != nil || !ok {
		return "", ErrInvalidCredentials
	}

	now := s.now()
	token, err := s.tokens.Generate(jwt.Claims{
		ID:        uuid.NewString(),
		Subject:   user.Username,
		Issuer:    s.issuer,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(s.tokenTTL).Unix(),
	})
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	s.logger.InfoContext(ctx, "user logged in", slog.String("username", username))

	return token, nil
}

// ProvisioningQR renders the user's TOTP provisioning URI as a PNG QR
// code for authenticator apps. Returns ErrUserNotFound for unknown
// usernames.
func (s *Service) ProvisioningQR(ctx context.Context, username string, size int) ([]byte, error) {
	user, err := s.storage.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	uri, err := totp.URI(totp.URIParams{
		Secret:      user.TOTPSecret,
		AccountName: user.Username,
		Issuer:      s.issuer,
	})
	if err != nil {
		return nil, fmt.Errorf("build provisioning uri: %w", err)
	}

	png, err := qrcode.Generate(uri, size)
	if err != nil {
		return nil, fmt.Errorf("render qr code: %w", err)
	}

	return png, nil
}
