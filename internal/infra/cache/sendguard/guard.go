package sendguard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/williamfinanuber/lariagendamentos/internal/domain"
)

const keyPrefix = "reminder-claim"

// releaseScript удаляет ключ, только если в нем лежит наш токен
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Guard захват отправки напоминания в redis (SET NX с TTL)
// Пока захват жив, второй оператор не может составить то же сообщение
type Guard struct {
	client redis.Cmdable
	ttl    time.Duration
	logger Logger
}

// New создает Guard
func New(client redis.Cmdable, ttl time.Duration, logger Logger) *Guard {
	return &Guard{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Key ключ захвата для бронирования и вида напоминания
func Key(bookingID string, kind domain.ReminderKind) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, kind, bookingID)
}

// Claim захватывает отправку и возвращает токен для освобождения
func (g *Guard) Claim(ctx context.Context, bookingID string, kind domain.ReminderKind) (string, error) {
	key := Key(bookingID, kind)
	token := uuid.NewString()

	acquired, err := g.client.SetNX(ctx, key, token, g.ttl).Result()
	if err != nil {
		g.logger.Error("Claim: SetNX failed for %s: %v", key, err)
		return "", fmt.Errorf("%w: Claim - set nx: %w", ErrRedis, err)
	}

	if !acquired {
		g.logger.Info("Claim: %s already held", key)
		return "", ErrClaimHeld
	}

	g.logger.Info("Claim: acquired %s (ttl=%s)", key, g.ttl)
	return token, nil
}

// Release освобождает захват, если токен совпадает
func (g *Guard) Release(ctx context.Context, bookingID string, kind domain.ReminderKind, token string) error {
	key := Key(bookingID, kind)

	deleted, err := releaseScript.Run(ctx, g.client, []string{key}, token).Int()
	if err != nil && !errors.Is(err, redis.Nil) {
		g.logger.Error("Release: script failed for %s: %v", key, err)
		return fmt.Errorf("%w: Release - run script: %w", ErrRedis, err)
	}

	if deleted == 0 {
		g.logger.Warn("Release: %s not owned or already expired", key)
		return ErrClaimNotOwned
	}

	g.logger.Info("Release: released %s", key)
	return nil
}

// NopGuard используется, когда redis выключен: захват всегда успешен
type NopGuard struct{}

// NewNop создает NopGuard
func NewNop() NopGuard {
	return NopGuard{}
}

func (NopGuard) Claim(_ context.Context, _ string, _ domain.ReminderKind) (string, error) {
	return uuid.NewString(), nil
}

func (NopGuard) Release(_ context.Context, _ string, _ domain.ReminderKind, _ string) error {
	return nil
}
