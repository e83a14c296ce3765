// Package firebasedb adapts the journal ports to a Firebase Realtime
// Database over its REST interface. It reads and writes the exact node
// layout the mobile app created: /users/{identityKey} account records and
// /trips push-id children, with the JSON field names already present in the
// database, so the service can run against the existing data unchanged.
package firebasedb

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client exposes the document-store surface the journal needs: read, write,
// merge and delete at a path, plus append to a collection (RTDB "push").
type Client struct {
	http *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)
	return &Client{http: c}
}

// Read unmarshals the value at path into out. A missing node is not an
// error: the RTDB returns the JSON literal null and Read reports found=false.
func (c *Client) Read(ctx context.Context, path string, out any) (bool, error) {
	resp, err := c.http.R().SetContext(ctx).Get(jsonPath(path))
	if err != nil {
		return false, fmt.Errorf("firebasedb: GET %s: %w", path, err)
	}
	if resp.IsError() {
		return false, statusError("GET", path, resp)
	}
	body := strings.TrimSpace(string(resp.Body()))
	if body == "" || body == "null" {
		return false, nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return false, fmt.Errorf("firebasedb: decode %s: %w", path, err)
	}
	return true, nil
}

// Write replaces the value at path.
func (c *Client) Write(ctx context.Context, path string, v any) error {
	resp, err := c.http.R().SetContext(ctx).SetBody(v).Put(jsonPath(path))
	if err != nil {
		return fmt.Errorf("firebasedb: PUT %s: %w", path, err)
	}
	if resp.IsError() {
		return statusError("PUT", path, resp)
	}
	return nil
}

// Merge updates only the named children of the node at path; unnamed
// children keep their stored values.
func (c *Client) Merge(ctx context.Context, path string, partial any) error {
	resp, err := c.http.R().SetContext(ctx).SetBody(partial).Patch(jsonPath(path))
	if err != nil {
		return fmt.Errorf("firebasedb: PATCH %s: %w", path, err)
	}
	if resp.IsError() {
		return statusError("PATCH", path, resp)
	}
	return nil
}

// Delete removes the node at path. The RTDB treats removal of an absent
// node as success, so Delete is idempotent.
func (c *Client) Delete(ctx context.Context, path string) error {
	resp, err := c.http.R().SetContext(ctx).Delete(jsonPath(path))
	if err != nil {
		return fmt.Errorf("firebasedb: DELETE %s: %w", path, err)
	}
	if resp.IsError() {
		return statusError("DELETE", path, resp)
	}
	return nil
}

// Append pushes v as a new child of collection and returns the generated id.
// Push ids sort lexicographically in creation order, which is what gives
// collection listings their insertion order.
func (c *Client) Append(ctx context.Context, collection string, v any) (string, error) {
	var pushed struct {
		Name string `json:"name"`
	}
	resp, err := c.http.R().SetContext(ctx).SetBody(v).SetResult(&pushed).Post(jsonPath(collection))
	if err != nil {
		return "", fmt.Errorf("firebasedb: POST %s: %w", collection, err)
	}
	if resp.IsError() {
		return "", statusError("POST", collection, resp)
	}
	if pushed.Name == "" {
		return "", fmt.Errorf("firebasedb: POST %s: no push id in response", collection)
	}
	return pushed.Name, nil
}

func jsonPath(path string) string {
	return "/" + strings.Trim(path, "/") + ".json"
}

func statusError(method, path string, resp *resty.Response) error {
	return fmt.Errorf("firebasedb: %s %s: status %d", method, path, resp.StatusCode())
}
