package order

import (
	"context"
	"errors"
	"os"
	"testing"

	"creatim-shop/internal/domain"
	"creatim-shop/internal/migrate"
	cartrepo "creatim-shop/internal/repository/cart"
	"github.com/jackc/pgx/v5/pgxpool"
)

func TestPostgres_CreateFromCartMarksSubmitted(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	carts := cartrepo.NewPostgres(pool)
	if err := carts.Create(ctx, "sess-o1", "pwd-o1"); err != nil {
		t.Fatalf("create cart: %v", err)
	}

	repo := NewPostgres(pool)
	ord, err := repo.CreateFromCart(ctx, CreateInput{
		Session:       "sess-o1",
		Pwd:           "pwd-o1",
		OrderNumber:   17000000001234,
		CustomerPhone: "38640123456",
		Price:         1500,
		Articles:      []domain.OrderArticle{{ID: 1, Amount: 3, Name: "Cap", Price: 500}},
	})
	if err != nil {
		t.Fatalf("CreateFromCart: %v", err)
	}
	if ord.ID == 0 || ord.Status != domain.StatusNeedsProcessing {
		t.Fatalf("unexpected order: %+v", ord)
	}
	if ord.Subscriptions == nil || len(ord.Subscriptions) != 0 {
		t.Fatalf("nil subscription input must persist as empty list: %+v", ord.Subscriptions)
	}

	submitted, err := carts.IsSubmitted(ctx, "sess-o1", "pwd-o1")
	if err != nil || !submitted {
		t.Fatalf("cart must be submitted after order creation: %v %v", submitted, err)
	}

	fetched, err := repo.GetByID(ctx, ord.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if fetched.Price != 1500 || len(fetched.Articles) != 1 || fetched.Articles[0].Name != "Cap" {
		t.Fatalf("snapshot mismatch: %+v", fetched)
	}
}

func TestPostgres_CreateFromCartUnknownCredentialsRollsBack(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	repo := NewPostgres(pool)
	_, err := repo.CreateFromCart(ctx, CreateInput{Session: "ghost", Pwd: "ghost", OrderNumber: 1})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count); err != nil {
		t.Fatalf("count orders: %v", err)
	}
	if count != 0 {
		t.Fatalf("no order row may survive a failed submit, found %d", count)
	}
}

func TestPostgres_ListProcessedFiltersAndOrders(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	carts := cartrepo.NewPostgres(pool)
	if err := carts.Create(ctx, "sess-o2", "pwd-o2"); err != nil {
		t.Fatalf("create cart: %v", err)
	}

	repo := NewPostgres(pool)
	older, err := repo.CreateFromCart(ctx, CreateInput{
		Session: "sess-o2", Pwd: "pwd-o2", OrderNumber: 2, CustomerPhone: "111",
		Subscriptions: []domain.OrderSubscription{{ID: 3, Amount: 1}},
	})
	if err != nil {
		t.Fatalf("create older order: %v", err)
	}
	newer, err := repo.CreateFromCart(ctx, CreateInput{
		Session: "sess-o2", Pwd: "pwd-o2", OrderNumber: 3, CustomerPhone: "222",
		Subscriptions: []domain.OrderSubscription{{ID: 9, Amount: 1}},
	})
	if err != nil {
		t.Fatalf("create newer order: %v", err)
	}

	// Orders start unprocessed and are invisible to purchases.
	list, err := repo.ListProcessed(ctx, "sess-o2", nil)
	if err != nil {
		t.Fatalf("ListProcessed: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("unprocessed orders leaked: %+v", list)
	}

	if _, err := pool.Exec(ctx, `UPDATE orders SET status = $1`, domain.StatusProcessed); err != nil {
		t.Fatalf("mark processed: %v", err)
	}
	if _, err := pool.Exec(ctx, `UPDATE orders SET date_created = date_created - interval '1 hour' WHERE id = $1`, older.ID); err != nil {
		t.Fatalf("age older order: %v", err)
	}

	list, err = repo.ListProcessed(ctx, "sess-o2", nil)
	if err != nil {
		t.Fatalf("ListProcessed: %v", err)
	}
	if len(list) != 2 || list[0].ID != newer.ID {
		t.Fatalf("expected newest-first [%d, %d], got %+v", newer.ID, older.ID, list)
	}

	phone := "111"
	list, err = repo.ListProcessed(ctx, "sess-o2", &phone)
	if err != nil {
		t.Fatalf("ListProcessed with phone: %v", err)
	}
	if len(list) != 1 || list[0].ID != older.ID {
		t.Fatalf("phone filter failed: %+v", list)
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
