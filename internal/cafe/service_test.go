package cafe

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// --------------------------------------------------
// Failing repository (storage collaborator down)
// --------------------------------------------------

type failingRepository struct {
	err         error
	createCalls int
}

func (r *failingRepository) Create(ctx context.Context, cafe *Cafe) error {
	r.createCalls++
	return r.err
}

func (r *failingRepository) List(ctx context.Context) ([]*Cafe, error) {
	return nil, r.err
}

func (r *failingRepository) Get(ctx context.Context, id string) (*Cafe, error) {
	return nil, r.err
}

func (r *failingRepository) Update(ctx context.Context, id string, cafe *Cafe) error {
	return r.err
}

func (r *failingRepository) Delete(ctx context.Context, id string) error {
	return r.err
}

// --------------------------------------------------
// TESTS
// --------------------------------------------------

func TestCreateCafe_Success(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo, nil, nil)

	cafe, err := service.CreateCafe(context.Background(), Form{
		Name:      "Beanhi",
		Order:     OrderRow{Rating: 5},
		Beverages: []LineItemRow{{Name: "Latte", Price: 120, Rating: 4}},
		Foods:     []LineItemRow{{Name: "Nachos", Price: 150, Rating: 5}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cafe.ID == "" {
		t.Error("expected ID to be set")
	}
	if cafe.Rating.Overall != 4.7 {
		t.Errorf("expected overall 4.7, got %v", cafe.Rating.Overall)
	}

	stored, err := repo.Get(context.Background(), cafe.ID)
	if err != nil {
		t.Fatalf("expected cafe persisted: %v", err)
	}
	if stored.Name != "Beanhi" {
		t.Errorf("expected stored name 'Beanhi', got %q", stored.Name)
	}
}

func TestCreateCafe_EmptyNameNeverReachesStorage(t *testing.T) {
	repo := &failingRepository{err: errors.New("should not be called")}
	service := NewService(repo, nil, nil)

	_, err := service.CreateCafe(context.Background(), Form{Name: "  "})
	if !errors.Is(err, ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
	if repo.createCalls != 0 {
		t.Errorf("expected no storage call, got %d", repo.createCalls)
	}
}

func TestCreateCafe_FallsBackToLocalStore(t *testing.T) {
	repo := &failingRepository{err: errors.New("connection refused")}
	local := NewLocalStore(filepath.Join(t.TempDir(), "db.json"))
	service := NewService(repo, local, nil)

	cafe, err := service.CreateCafe(context.Background(), Form{Name: "Beanhi"})
	if err != nil {
		t.Fatalf("expected fallback to succeed, got %v", err)
	}

	locals := local.Cafes()
	if len(locals) != 1 || locals[0].ID != cafe.ID {
		t.Fatalf("expected cafe in local store, got %+v", locals)
	}
}

func TestCreateCafe_NoFallbackPropagatesError(t *testing.T) {
	repo := &failingRepository{err: errors.New("connection refused")}
	service := NewService(repo, nil, nil)

	_, err := service.CreateCafe(context.Background(), Form{Name: "Beanhi"})
	if err == nil {
		t.Fatal("expected storage error to propagate")
	}
}

func TestListCafes_NewestFirst(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo, nil, nil)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"First", "Second", "Third"} {
		ts := base.Add(time.Duration(i) * time.Hour)
		service.now = func() time.Time { return ts }
		if _, err := service.CreateCafe(context.Background(), Form{Name: name}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	cafes, err := service.ListCafes(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cafes) != 3 {
		t.Fatalf("expected 3 cafes, got %d", len(cafes))
	}
	if cafes[0].Name != "Third" || cafes[2].Name != "First" {
		t.Errorf("expected newest first, got %q..%q", cafes[0].Name, cafes[2].Name)
	}
}

func TestGetCafe_ComputesTotals(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo, nil, nil)

	created, err := service.CreateCafe(context.Background(), Form{
		Name:      "Beanhi",
		Beverages: []LineItemRow{{Name: "Latte", Price: 120}},
		Foods:     []LineItemRow{{Name: "Nachos", Price: 150}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, totals, err := service.GetCafe(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if totals.GrandTotal != 270 {
		t.Errorf("expected grand total 270, got %v", totals.GrandTotal)
	}
	if totals.GrandTotalFormatted != "₱270.00" {
		t.Errorf("expected ₱270.00, got %q", totals.GrandTotalFormatted)
	}
}

func TestUpdateCafe_RefreshesOnlyUpdatedAt(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo, nil, nil)

	created := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return created }

	cafe, err := service.CreateCafe(context.Background(), Form{
		Name:      "Beanhi",
		CreatedBy: "uyaan",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	later := created.Add(48 * time.Hour)
	service.now = func() time.Time { return later }

	updated, err := service.UpdateCafe(context.Background(), cafe.ID, Form{
		Name: "Beanhi Roasters",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Name != "Beanhi Roasters" {
		t.Errorf("expected updated name, got %q", updated.Name)
	}
	if !updated.CreatedAt.Equal(created) {
		t.Error("expected created_at preserved")
	}
	if !updated.UpdatedAt.Equal(later) {
		t.Error("expected updated_at refreshed")
	}
	if updated.CreatedBy != "uyaan" {
		t.Errorf("expected creator preserved, got %q", updated.CreatedBy)
	}
}

func TestUpdateCafe_NotFound(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo, nil, nil)

	_, err := service.UpdateCafe(context.Background(), "cafe_missing", Form{Name: "Ghost"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteCafe(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo, nil, nil)

	cafe, err := service.CreateCafe(context.Background(), Form{Name: "Beanhi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := service.DeleteCafe(context.Background(), cafe.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := service.GetCafe(context.Background(), cafe.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestDeleteCafe_NotFoundLeavesListUnchanged(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo, nil, nil)

	if _, err := service.CreateCafe(context.Background(), Form{Name: "Beanhi"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := service.DeleteCafe(context.Background(), "cafe_missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	cafes, err := service.ListCafes(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cafes) != 1 {
		t.Errorf("expected list unchanged, got %d cafes", len(cafes))
	}
}

func TestDeleteCafe_RemovesLocalCopy(t *testing.T) {
	repo := NewInMemoryRepository()
	path := filepath.Join(t.TempDir(), "db.json")
	local := NewLocalStore(path)
	service := NewService(repo, local, nil)

	cafe, err := service.CreateCafe(context.Background(), Form{Name: "Beanhi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := local.Upsert(cafe); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := service.DeleteCafe(context.Background(), cafe.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if locals := local.Cafes(); len(locals) != 0 {
		t.Errorf("expected local copy removed, got %d records", len(locals))
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected local db file to exist: %v", err)
	}
}
