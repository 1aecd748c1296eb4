package cart

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"creatim-shop/internal/domain"
	"creatim-shop/internal/migrate"
	"github.com/jackc/pgx/v5/pgxpool"
)

func TestPostgres_CreateValidateGet(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	repo := NewPostgres(pool)
	if err := repo.Create(ctx, "sess-1", "pwd-1"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	ok, err := repo.Exists(ctx, "sess-1", "pwd-1")
	if err != nil || !ok {
		t.Fatalf("Exists for created pair: %v %v", ok, err)
	}
	ok, err = repo.Exists(ctx, "sess-1", "wrong")
	if err != nil || ok {
		t.Fatalf("Exists must require the exact pair: %v %v", ok, err)
	}

	cart, err := repo.Get(ctx, "sess-1", "pwd-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if cart.Content != "" || cart.Submitted || cart.Phone != nil {
		t.Fatalf("fresh cart not empty: %+v", cart)
	}

	if err := repo.Create(ctx, "sess-1", "pwd-1"); err == nil {
		t.Fatalf("duplicate pair must violate uniqueness")
	}
}

func TestPostgres_UpdateResetsSubmittedCart(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	repo := NewPostgres(pool)
	if err := repo.Create(ctx, "sess-2", "pwd-2"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := pool.Exec(ctx, `UPDATE carts SET submitted = TRUE, cart = 'old' WHERE session = 'sess-2'`); err != nil {
		t.Fatalf("seed submitted cart: %v", err)
	}

	if err := repo.Update(ctx, "sess-2", "pwd-2", `[{"id":1,"amount":1}]`); err != nil {
		t.Fatalf("Update on submitted cart must not fail: %v", err)
	}

	cart, err := repo.Get(ctx, "sess-2", "pwd-2")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if cart.Submitted {
		t.Fatalf("submitted flag must be cleared by the update")
	}
	if cart.Content != `[{"id":1,"amount":1}]` {
		t.Fatalf("unexpected content after reset+write: %q", cart.Content)
	}
}

func TestPostgres_UpdateUnknownCredentials(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	repo := NewPostgres(pool)
	err := repo.Update(ctx, "nope", "nope", "x")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestPostgres_DeleteOlderThan(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	repo := NewPostgres(pool)
	if err := repo.Create(ctx, "sess-old", "pwd-old"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, "sess-new", "pwd-new"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := pool.Exec(ctx, `UPDATE carts SET date_modified = now() - interval '40 days' WHERE session = 'sess-old'`); err != nil {
		t.Fatalf("age cart: %v", err)
	}

	count, err := repo.DeleteOlderThan(ctx, time.Now().Add(-30*24*time.Hour))
	if err != nil {
		t.Fatalf("DeleteOlderThan: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 deleted, got %d", count)
	}
	if ok, _ := repo.Exists(ctx, "sess-new", "pwd-new"); !ok {
		t.Fatalf("recent cart must survive cleanup")
	}
}

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if _, err := pool.Exec(ctx, `TRUNCATE carts, orders, articles, subscription, sms_log RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
	return pool
}
