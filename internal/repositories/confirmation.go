package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-delegation-wallet/internal/logger"
	"github.com/sbilibin2017/gw-delegation-wallet/internal/models"
)

// ConfirmationCacheRepository keeps withdrawals that wait for confirmation in Redis.
// Entries expire after exp, which cancels the attempt implicitly.
type ConfirmationCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

func NewConfirmationCacheRepository(client *redis.Client, expiration time.Duration) *ConfirmationCacheRepository {
	return &ConfirmationCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func confirmationKey(id uuid.UUID) string {
	return fmt.Sprintf("withdrawal_confirmation:%s", id)
}

// Set stores a pending withdrawal under its confirmation id.
func (r *ConfirmationCacheRepository) Set(ctx context.Context, pending models.PendingWithdrawal) error {
	key := confirmationKey(pending.ConfirmationID)

	data, err := json.Marshal(pending)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"ttl", r.exp,
		"error", err,
	)

	return err
}

// Take removes and returns the pending withdrawal, or nil if it does not exist or expired.
func (r *ConfirmationCacheRepository) Take(ctx context.Context, id uuid.UUID) (*models.PendingWithdrawal, error) {
	key := confirmationKey(id)

	val, err := r.client.GetDel(ctx, key).Bytes()

	logger.Log.Infow(
		"key", key,
		"found", err == nil,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var pending models.PendingWithdrawal
	if err := json.Unmarshal(val, &pending); err != nil {
		return nil, fmt.Errorf("corrupt pending withdrawal %s: %w", key, err)
	}
	return &pending, nil
}

// Get returns the pending withdrawal without removing it, or nil if it does not exist.
func (r *ConfirmationCacheRepository) Get(ctx context.Context, id uuid.UUID) (*models.PendingWithdrawal, error) {
	key := confirmationKey(id)

	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Infow("key", key, "error", err)
		return nil, err
	}

	var pending models.PendingWithdrawal
	if err := json.Unmarshal(val, &pending); err != nil {
		return nil, fmt.Errorf("corrupt pending withdrawal %s: %w", key, err)
	}
	return &pending, nil
}

// Delete removes the pending withdrawal and reports whether it existed.
func (r *ConfirmationCacheRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	key := confirmationKey(id)

	n, err := r.client.Del(ctx, key).Result()

	logger.Log.Infow(
		"key", key,
		"result", n,
		"error", err,
	)

	return n > 0, err
}
