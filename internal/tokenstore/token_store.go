package tokenstore

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
)

const tokenByteLen = 16

// Store keeps verification tokens in redis, one active token per email.
// Expiry is the key TTL, so expired tokens vanish without a sweeper, and
// Consume deletes on success so a token is single-use.
type Store struct {
	client         *redisv9.Client
	tokenTTL       time.Duration
	resendCooldown time.Duration
}

type record struct {
	Token  string `json:"token"`
	UserID uint   `json:"user_id"`
}

func New(client *redisv9.Client, tokenTTL, resendCooldown time.Duration) *Store {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	if resendCooldown <= 0 {
		resendCooldown = 60 * time.Second
	}
	return &Store{
		client:         client,
		tokenTTL:       tokenTTL,
		resendCooldown: resendCooldown,
	}
}

// GenerateToken returns a fresh opaque token: 16 random bytes, hex encoded.
func GenerateToken() (string, error) {
	buf := make([]byte, tokenByteLen)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate verification token failed: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Issue binds a new token to the user and stores it under the email key,
// replacing any previous token for that address.
func (s *Store) Issue(ctx context.Context, email string, userID uint) (string, error) {
	token, err := GenerateToken()
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(record{Token: token, UserID: userID})
	if err != nil {
		return "", fmt.Errorf("marshal verification token failed: %w", err)
	}

	if err := s.client.Set(ctx, tokenKey(email), payload, s.tokenTTL).Err(); err != nil {
		return "", fmt.Errorf("redis set verification token failed: %w", err)
	}
	return token, nil
}

// Consume checks the presented token against the stored one and deletes it
// on match. Returns the bound user id and whether the token was accepted;
// an expired, already-used, or mismatched token is not an error, just !ok.
func (s *Store) Consume(ctx context.Context, email, token string) (uint, bool, error) {
	key := tokenKey(email)
	raw, err := s.client.Get(ctx, key).Result()
	if err == redisv9.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("redis get verification token failed: %w", err)
	}

	var rec record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return 0, false, fmt.Errorf("unmarshal verification token failed: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(rec.Token), []byte(token)) != 1 {
		return 0, false, nil
	}

	if err := s.client.Del(ctx, key).Err(); err != nil {
		return 0, false, fmt.Errorf("redis delete verification token failed: %w", err)
	}
	return rec.UserID, true, nil
}

// AllowResend atomically claims the per-email cooldown slot. It returns
// false while a previous claim is still live.
func (s *Store) AllowResend(ctx context.Context, email string) (bool, error) {
	ok, err := s.client.SetNX(ctx, cooldownKey(email), 1, s.resendCooldown).Result()
	if err != nil {
		return false, fmt.Errorf("redis set resend cooldown failed: %w", err)
	}
	return ok, nil
}

func tokenKey(email string) string {
	return "verify:token:" + strings.ToLower(email)
}

func cooldownKey(email string) string {
	return "verify:cooldown:" + strings.ToLower(email)
}
