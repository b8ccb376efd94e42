package subscription_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/deviuno/ouse-passar-practice/internal/adapter/postgres/subscription"
	"github.com/deviuno/ouse-passar-practice/internal/adapter/postgres/testhelper"
)

func TestRepo_IsUnlimited(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := subscription.New(pool)
	ctx := context.Background()

	t.Run("no subscription", func(t *testing.T) {
		t.Parallel()
		got, err := repo.IsUnlimited(ctx, uuid.New())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got {
			t.Error("expected metered without a subscription row")
		}
	})

	t.Run("active unlimited", func(t *testing.T) {
		t.Parallel()
		userID := uuid.New()
		testhelper.SeedSubscription(t, pool, userID, true)

		got, err := repo.IsUnlimited(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got {
			t.Error("expected unlimited")
		}
	})

	t.Run("plan without unlimited flag", func(t *testing.T) {
		t.Parallel()
		userID := uuid.New()
		testhelper.SeedSubscription(t, pool, userID, false)

		got, err := repo.IsUnlimited(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got {
			t.Error("expected metered for a non-unlimited plan")
		}
	})

	t.Run("expired subscription", func(t *testing.T) {
		t.Parallel()
		userID := uuid.New()
		past := time.Now().Add(-24 * time.Hour)
		_, err := pool.Exec(ctx,
			`INSERT INTO subscriptions (user_id, plan, unlimited, started_at, expires_at)
			 VALUES ($1, 'premium', true, now() - interval '30 days', $2)`,
			userID, past,
		)
		if err != nil {
			t.Fatalf("seed expired subscription: %v", err)
		}

		got, err := repo.IsUnlimited(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got {
			t.Error("expected metered after expiry")
		}
	})
}
