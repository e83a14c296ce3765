package contracttest

import (
	"context"
	"errors"
	"testing"

	"github.com/ontravel-app/travel-journal-api/internal/domain"
	accountdirport "github.com/ontravel-app/travel-journal-api/internal/ports/out/accountdir"
	tripstoreport "github.com/ontravel-app/travel-journal-api/internal/ports/out/tripstore"
)

type CleanupFunc = func()

type AccountDirFactory func(t *testing.T) (accountdirport.Directory, CleanupFunc)
type TripStoreFactory func(t *testing.T) (tripstoreport.Store, CleanupFunc)

// RunAccountDirectory exercises the Directory contract every adapter must
// satisfy: exists/create/get round trip, duplicate rejection and the
// NotFound sentinel.
func RunAccountDirectory(t *testing.T, newDir AccountDirFactory) {
	t.Helper()
	ctx := context.Background()

	dir, cleanup := newDir(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	key := domain.DeriveIdentityKey("a.b@x.com")
	if key != "a,b@x.com" {
		t.Fatalf("derived key=%q, want a,b@x.com", key)
	}

	ok, err := dir.Exists(ctx, key)
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if ok {
		t.Fatalf("expected no record before create")
	}

	a := domain.Account{
		IdentityKey: key,
		Name:        "Ana",
		Email:       "a.b@x.com",
		Password:    "p1",
	}
	if err := dir.Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}

	ok, err = dir.Exists(ctx, key)
	if err != nil || !ok {
		t.Fatalf("Exists after create: ok=%v err=%v", ok, err)
	}

	got, err := dir.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "Ana" || got.Email != "a.b@x.com" || got.Password != "p1" {
		t.Fatalf("unexpected account: %+v", got)
	}

	// Sequential duplicate create is deterministic.
	if err := dir.Create(ctx, a); !errors.Is(err, accountdirport.ErrAlreadyExists) {
		t.Fatalf("duplicate Create err=%v, want ErrAlreadyExists", err)
	}

	if _, err := dir.Get(ctx, domain.IdentityKey("missing@x,com")); !errors.Is(err, accountdirport.ErrNotFound) {
		t.Fatalf("Get missing err=%v, want ErrNotFound", err)
	}
}

// RunTripStore exercises the Store contract: id assignment, insertion-order
// listing, owner filtering, merge updates and idempotent deletes.
func RunTripStore(t *testing.T, newStore TripStoreFactory) {
	t.Helper()
	ctx := context.Background()

	store, cleanup := newStore(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	if rs, err := store.List(ctx); err != nil || len(rs) != 0 {
		t.Fatalf("List on empty store: rs=%v err=%v, want empty slice and nil error", rs, err)
	}

	mk := func(owner, desc string) domain.TripID {
		t.Helper()
		id, err := store.Create(ctx, domain.Trip{
			OwnerName:   owner,
			Description: desc,
			Date:        "2024-06-01T00:00:00.000Z",
			Location:    "Lisbon, Lisboa",
			ImageRef:    "file:///photos/1.jpg",
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if id == "" {
			t.Fatalf("expected non-empty id")
		}
		return id
	}

	ana1 := mk("Ana", "beach day")
	ana2 := mk("Ana", "mountains")
	bob := mk("Bob", "city walk")

	all, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("List len=%d, want 3", len(all))
	}
	wantOrder := []domain.TripID{ana1, ana2, bob}
	for i, r := range all {
		if r.ID != wantOrder[i] {
			t.Fatalf("List order[%d]=%s, want %s", i, r.ID, wantOrder[i])
		}
	}

	anas, err := store.ListByOwner(ctx, "Ana")
	if err != nil {
		t.Fatalf("ListByOwner Ana: %v", err)
	}
	if len(anas) != 2 || anas[0].ID != ana1 || anas[1].ID != ana2 {
		t.Fatalf("ListByOwner Ana=%v, want [%s %s]", anas, ana1, ana2)
	}
	if anas[0].Trip.Description != "beach day" || anas[0].Trip.Location != "Lisbon, Lisboa" {
		t.Fatalf("round-trip fields changed: %+v", anas[0].Trip)
	}

	bobs, err := store.ListByOwner(ctx, "Bob")
	if err != nil || len(bobs) != 1 || bobs[0].ID != bob {
		t.Fatalf("ListByOwner Bob=%v err=%v, want exactly [%s]", bobs, err, bob)
	}

	// Exact string match: no case folding on the owner filter.
	if rs, err := store.ListByOwner(ctx, "ana"); err != nil || len(rs) != 0 {
		t.Fatalf("ListByOwner ana=%v err=%v, want empty", rs, err)
	}

	// Merge update: only the supplied field changes.
	desc := "updated description"
	if err := store.Update(ctx, ana1, tripstoreport.Patch{Description: &desc}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := store.Get(ctx, ana1)
	if err != nil {
		t.Fatalf("Get after update: %v", err)
	}
	if got.Description != "updated description" {
		t.Fatalf("description=%q", got.Description)
	}
	if got.Date != "2024-06-01T00:00:00.000Z" || got.Location != "Lisbon, Lisboa" || got.ImageRef != "file:///photos/1.jpg" {
		t.Fatalf("merge update clobbered unspecified fields: %+v", got)
	}

	if err := store.Update(ctx, domain.TripID("missing-id"), tripstoreport.Patch{Description: &desc}); !errors.Is(err, tripstoreport.ErrNotFound) {
		t.Fatalf("Update missing err=%v, want ErrNotFound", err)
	}

	if err := store.Delete(ctx, bob); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(ctx, bob); !errors.Is(err, tripstoreport.ErrNotFound) {
		t.Fatalf("Get deleted err=%v, want ErrNotFound", err)
	}
	// Double delete succeeds.
	if err := store.Delete(ctx, bob); err != nil {
		t.Fatalf("second Delete err=%v, want nil", err)
	}

	all, err = store.List(ctx)
	if err != nil || len(all) != 2 {
		t.Fatalf("List after delete len=%d err=%v, want 2", len(all), err)
	}
}
