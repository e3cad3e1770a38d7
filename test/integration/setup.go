package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"gocart/internal/database"
	"gocart/internal/model"
	"gocart/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container, applies the embedded
// migrations and returns a connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	logger := zerolog.Nop()
	if err := database.MigrateDSN(ctx, connStr, logger); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"favorites", "products", "categories", "users"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}

// SeedUser inserts one user and returns it.
func SeedUser(t *testing.T, pool *pgxpool.Pool, email string) *model.User {
	t.Helper()

	repo := repository.NewUserRepository(pool, zerolog.Nop())
	user := &model.User{
		FirstName:    "Jane",
		LastName:     "Doe",
		Email:        email,
		PasswordHash: "$2a$04$notarealhashbutlongenoughtostore1234567890abcd",
		Role:         "user",
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to seed user %s: %v", email, err)
	}

	return user
}

// SeedCategory inserts one category and returns it.
func SeedCategory(t *testing.T, pool *pgxpool.Pool, name string) *model.Category {
	t.Helper()

	repo := repository.NewCategoryRepository(pool, zerolog.Nop())
	category := &model.Category{Name: name}
	if err := repo.Create(context.Background(), category); err != nil {
		t.Fatalf("failed to seed category %s: %v", name, err)
	}

	return category
}

// SeedProducts inserts n products into the given category and returns them
// in insertion order.
func SeedProducts(t *testing.T, pool *pgxpool.Pool, category *model.Category, n int) []*model.Product {
	t.Helper()

	repo := repository.NewProductRepository(pool, zerolog.Nop())
	products := make([]*model.Product, 0, n)
	for i := 0; i < n; i++ {
		product := &model.Product{
			Name:        fmt.Sprintf("Test Product %d", i+1),
			Price:       float64(i+1) * 10,
			Description: "seeded",
			CategoryID:  category.ID,
			Images:      []string{},
		}
		if err := repo.Create(context.Background(), product); err != nil {
			t.Fatalf("failed to seed product %d: %v", i+1, err)
		}
		products = append(products, product)
	}

	return products
}
