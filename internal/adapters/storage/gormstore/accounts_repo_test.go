package gormstore

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"health-companion/internal/adapters/auth/local"
	"health-companion/internal/platform/logger"
	"health-companion/internal/ports/auth"

	"github.com/google/uuid"
)

func TestModelMapping(t *testing.T) {
	a := local.Account{
		ID: "1", Name: "John Doe", Email: "john@example.com", PhoneNumber: "555-123-4567",
		PasswordHash: "hash", CreatedAt: time.Unix(10, 0).UTC(), UpdatedAt: time.Unix(20, 0).UTC(),
	}
	if got := accountFromModel(accountToModel(a)); got != a {
		t.Fatalf("mapping lost data: %#v", got)
	}
}

func TestPrintfWriter_UsesLogger(t *testing.T) {
	var buf bytes.Buffer
	w := printfWriter{log: logger.New(logger.Options{Level: logger.Debug, Format: logger.FormatJSON, Out: &buf})}

	w.Printf("slow sql %dms", 1200)
	if !strings.Contains(buf.String(), "slow sql 1200ms") {
		t.Fatalf("expected gorm message in log, got %s", buf.String())
	}
}

// Corre solo con TEST_DB_DSN apuntando a un Postgres descartable.
func TestAccountRepo_Postgres(t *testing.T) {
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	db, err := Open(dsn, logger.Nop())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	repo := NewAccountRepo(db)
	ctx := context.Background()

	email := uuid.NewString() + "@example.com"
	a := local.Account{ID: uuid.NewString(), Name: "John", Email: email, PasswordHash: "h"}
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("create: %v", err)
	}
	dup := a
	dup.ID = uuid.NewString()
	if err := repo.Create(ctx, dup); !errors.Is(err, auth.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	got, err := repo.GetByEmail(ctx, email)
	if err != nil || got.ID != a.ID {
		t.Fatalf("expected lookup by email, got %#v / %v", got, err)
	}
	if err := repo.Update(ctx, local.Account{ID: "missing"}); !errors.Is(err, auth.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
