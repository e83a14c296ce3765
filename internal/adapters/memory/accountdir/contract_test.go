package accountdir

import (
	"testing"

	"github.com/ontravel-app/travel-journal-api/internal/adapters/contracttest"
	accountdirport "github.com/ontravel-app/travel-journal-api/internal/ports/out/accountdir"
)

func TestContract_AccountDirectory(t *testing.T) {
	contracttest.RunAccountDirectory(t, func(t *testing.T) (accountdirport.Directory, func()) {
		t.Helper()
		return NewRepo(), nil
	})
}
