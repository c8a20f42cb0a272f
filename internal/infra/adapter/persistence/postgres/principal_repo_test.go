package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"newsroom-cms/internal/domain/entity"
	"newsroom-cms/internal/infra/adapter/persistence/postgres"
	"newsroom-cms/internal/repository"
)

func principalRow(p *entity.Principal) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "email", "password_hash", "role", "created_at"}).
		AddRow(p.ID, p.Email, p.PasswordHash, string(p.Role), p.CreatedAt)
}

func TestPrincipalRepo_Get(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	want := &entity.Principal{
		ID: "alice", Email: "alice@newsroom.example", PasswordHash: "$2a$10$x",
		Role: entity.RoleReporter, CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id`)).
		WithArgs("alice").
		WillReturnRows(principalRow(want))

	repo := postgres.NewPrincipalRepo(db)
	got, err := repo.Get(context.Background(), "alice")
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestPrincipalRepo_GetByEmailMissing(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`FROM principals`).
		WithArgs("ghost@newsroom.example").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "role", "created_at"}))

	repo := postgres.NewPrincipalRepo(db)
	got, err := repo.GetByEmail(context.Background(), "ghost@newsroom.example")
	if err != nil || got != nil {
		t.Fatalf("want (nil, nil), got (%v, %v)", got, err)
	}
}

func TestPrincipalRepo_StoreUnavailable(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`FROM principals`).
		WithArgs("alice").
		WillReturnError(errors.New("connection reset"))

	repo := postgres.NewPrincipalRepo(db)
	_, err := repo.Get(context.Background(), "alice")
	if !errors.Is(err, repository.ErrStoreUnavailable) {
		t.Fatalf("want ErrStoreUnavailable, got %v", err)
	}
}
