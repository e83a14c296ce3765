package firebasedb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	srv := newFakeRTDB().server()
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second)
}

func TestClient_ReadMissingNodeIsNotAnError(t *testing.T) {
	t.Parallel()
	c := newTestClient(t)

	var out map[string]any
	found, err := c.Read(context.Background(), "users/nobody@x,com", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestClient_WriteThenRead(t *testing.T) {
	t.Parallel()
	c := newTestClient(t)
	ctx := context.Background()

	in := map[string]any{"name": "Ana", "email": "ana@x.com", "password": "p1"}
	require.NoError(t, c.Write(ctx, "users/ana@x,com", in))

	var out map[string]any
	found, err := c.Read(ctx, "users/ana@x,com", &out)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Ana", out["name"])
	assert.Equal(t, "p1", out["password"])
}

func TestClient_MergeLeavesOtherChildrenAlone(t *testing.T) {
	t.Parallel()
	c := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.Write(ctx, "trips/t1", map[string]any{
		"description": "old", "location": "Lisbon", "date": "2024-01-01",
	}))
	require.NoError(t, c.Merge(ctx, "trips/t1", map[string]any{"description": "new"}))

	var out map[string]any
	found, err := c.Read(ctx, "trips/t1", &out)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "new", out["description"])
	assert.Equal(t, "Lisbon", out["location"])
	assert.Equal(t, "2024-01-01", out["date"])
}

func TestClient_AppendReturnsSortablePushIDs(t *testing.T) {
	t.Parallel()
	c := newTestClient(t)
	ctx := context.Background()

	id1, err := c.Append(ctx, "trips", map[string]any{"description": "first"})
	require.NoError(t, err)
	id2, err := c.Append(ctx, "trips", map[string]any{"description": "second"})
	require.NoError(t, err)

	require.NotEmpty(t, id1)
	require.NotEmpty(t, id2)
	assert.Less(t, id1, id2, "push ids must sort in creation order")
}

func TestClient_DeleteIsIdempotent(t *testing.T) {
	t.Parallel()
	c := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.Write(ctx, "trips/t1", map[string]any{"description": "x"}))
	require.NoError(t, c.Delete(ctx, "trips/t1"))
	require.NoError(t, c.Delete(ctx, "trips/t1"))

	var out map[string]any
	found, err := c.Read(ctx, "trips/t1", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestClient_TransportErrorSurfaces(t *testing.T) {
	t.Parallel()
	// Closed port: the request cannot reach anything.
	c := NewClient("http://127.0.0.1:1", 500*time.Millisecond)

	var out map[string]any
	_, err := c.Read(context.Background(), "users/x", &out)
	require.Error(t, err)
}
