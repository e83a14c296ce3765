package firebasedb

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// fakeRTDB is a minimal Realtime Database REST stand-in: a two-level JSON
// tree ({collection}/{key}) with GET/PUT/PATCH/DELETE/POST semantics. POST
// generates sortable push-style ids.
type fakeRTDB struct {
	mu   sync.Mutex
	tree map[string]map[string]map[string]any
	seq  int
}

func newFakeRTDB() *fakeRTDB {
	return &fakeRTDB{tree: make(map[string]map[string]map[string]any)}
}

func (f *fakeRTDB) server() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(f.handle))
}

func (f *fakeRTDB) handle(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimSuffix(strings.Trim(r.URL.Path, "/"), ".json")
	parts := strings.SplitN(path, "/", 2)
	collection := parts[0]
	key := ""
	if len(parts) == 2 {
		key = parts[1]
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch r.Method {
	case http.MethodGet:
		if key == "" {
			nodes, ok := f.tree[collection]
			if !ok || len(nodes) == 0 {
				fmt.Fprint(w, "null")
				return
			}
			_ = json.NewEncoder(w).Encode(nodes)
			return
		}
		node, ok := f.tree[collection][key]
		if !ok {
			fmt.Fprint(w, "null")
			return
		}
		_ = json.NewEncoder(w).Encode(node)

	case http.MethodPut:
		f.ensure(collection)
		f.tree[collection][key] = decodeBody(r.Body)
		fmt.Fprint(w, "{}")

	case http.MethodPatch:
		f.ensure(collection)
		node, ok := f.tree[collection][key]
		if !ok {
			node = make(map[string]any)
		}
		for k, v := range decodeBody(r.Body) {
			node[k] = v
		}
		f.tree[collection][key] = node
		fmt.Fprint(w, "{}")

	case http.MethodPost:
		f.ensure(collection)
		f.seq++
		id := fmt.Sprintf("-N%08d", f.seq)
		f.tree[collection][id] = decodeBody(r.Body)
		_ = json.NewEncoder(w).Encode(map[string]string{"name": id})

	case http.MethodDelete:
		delete(f.tree[collection], key)
		fmt.Fprint(w, "null")

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (f *fakeRTDB) ensure(collection string) {
	if f.tree[collection] == nil {
		f.tree[collection] = make(map[string]map[string]any)
	}
}

func decodeBody(body io.Reader) map[string]any {
	out := make(map[string]any)
	_ = json.NewDecoder(body).Decode(&out)
	return out
}
