package tripstore

import (
	"testing"

	"github.com/ontravel-app/travel-journal-api/internal/adapters/contracttest"
	"github.com/ontravel-app/travel-journal-api/internal/adapters/postgres/testutil"
	tripstoreport "github.com/ontravel-app/travel-journal-api/internal/ports/out/tripstore"
)

func TestContract_PostgresTripStore(t *testing.T) {
	pool := testutil.OpenMigratedPool(t)

	contracttest.RunTripStore(t, func(t *testing.T) (tripstoreport.Store, func()) {
		t.Helper()
		return NewRepo(pool), nil
	})
}
