// Package firestore is a minimal REST client for the admin control plane
// backend: Firebase password sign-in plus Firestore document CRUD. It
// covers only what the admin panel needs.
package firestore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
)

const (
	defaultAuthBase = "https://identitytoolkit.googleapis.com/v1"
	defaultDocsBase = "https://firestore.googleapis.com/v1"

	requestTimeout = 10 * time.Second
	writeAttempts  = 3
	writeDelay     = 200 * time.Millisecond
)

// Client talks to the Firebase auth and Firestore REST endpoints for one
// project.
type Client struct {
	apiKey    string
	projectID string
	authBase  string
	docsBase  string
	httpc     *http.Client
}

// NewClient creates a backend client. Empty apiKey or projectID leaves it
// unconfigured; the admin panel then runs in demo mode.
func NewClient(apiKey, projectID string) *Client {
	return &Client{
		apiKey:    apiKey,
		projectID: projectID,
		authBase:  defaultAuthBase,
		docsBase:  defaultDocsBase,
		httpc:     &http.Client{Timeout: requestTimeout},
	}
}

// WithBaseURLs overrides the endpoint roots. Used by tests.
func (c *Client) WithBaseURLs(authBase, docsBase string) *Client {
	c.authBase = strings.TrimRight(authBase, "/")
	c.docsBase = strings.TrimRight(docsBase, "/")
	return c
}

// Configured reports whether a real backend is reachable.
func (c *Client) Configured() bool {
	return c != nil && c.apiKey != "" && c.projectID != ""
}

// Session is the result of a successful password sign-in.
type Session struct {
	IDToken string `json:"idToken"`
	UID     string `json:"localId"`
	Email   string `json:"email"`
}

// SignIn exchanges email+password for an ID token via the identitytoolkit
// signInWithPassword endpoint.
func (c *Client) SignIn(ctx context.Context, email, password string) (Session, error) {
	var sess Session
	if !c.Configured() {
		return sess, fmt.Errorf("admin backend not configured")
	}

	body, err := json.Marshal(map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return sess, err
	}

	endpoint := fmt.Sprintf("%s/accounts:signInWithPassword?key=%s", c.authBase, url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return sess, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return sess, fmt.Errorf("sign-in request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return sess, fmt.Errorf("sign-in rejected with status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(&sess); err != nil {
		return sess, fmt.Errorf("decoding sign-in response: %w", err)
	}
	return sess, nil
}

// Document is one Firestore document.
type Document struct {
	Name       string           `json:"name,omitempty"`
	Fields     map[string]Value `json:"fields,omitempty"`
	CreateTime string           `json:"createTime,omitempty"`
	UpdateTime string           `json:"updateTime,omitempty"`
}

// ID returns the document id, the last segment of its resource name.
func (d Document) ID() string {
	if i := strings.LastIndex(d.Name, "/"); i >= 0 {
		return d.Name[i+1:]
	}
	return d.Name
}

func (c *Client) docURL(path string) string {
	return fmt.Sprintf("%s/projects/%s/databases/(default)/documents/%s",
		c.docsBase, c.projectID, strings.TrimLeft(path, "/"))
}

// GetDoc fetches a single document, e.g. "admin_roles/uid123".
func (c *Client) GetDoc(ctx context.Context, token, path string) (Document, error) {
	var doc Document
	err := c.do(ctx, token, http.MethodGet, c.docURL(path), nil, &doc)
	return doc, err
}

// ListDocs fetches every document in a collection.
func (c *Client) ListDocs(ctx context.Context, token, collection string) ([]Document, error) {
	var out struct {
		Documents []Document `json:"documents"`
	}
	if err := c.do(ctx, token, http.MethodGet, c.docURL(collection), nil, &out); err != nil {
		return nil, err
	}
	return out.Documents, nil
}

// CreateDoc adds a document with a server-assigned id to a collection.
func (c *Client) CreateDoc(ctx context.Context, token, collection string, fields map[string]any) (Document, error) {
	var doc Document
	body := Document{Fields: EncodeFields(fields)}
	err := c.do(ctx, token, http.MethodPost, c.docURL(collection), &body, &doc)
	return doc, err
}

// PatchDoc updates only the masked fields of a document; every field
// outside the mask keeps its stored value.
func (c *Client) PatchDoc(ctx context.Context, token, path string, fields map[string]any, mask []string) (Document, error) {
	u := c.docURL(path)
	params := url.Values{}
	for _, f := range mask {
		params.Add("updateMask.fieldPaths", f)
	}
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var doc Document
	body := Document{Fields: EncodeFields(fields)}
	err := c.do(ctx, token, http.MethodPatch, u, &body, &doc)
	return doc, err
}

// do issues one authenticated document request with retry on transient
// failures. 4xx responses are terminal.
func (c *Client) do(ctx context.Context, token, method, endpoint string, body, out any) error {
	if !c.Configured() {
		return fmt.Errorf("admin backend not configured")
	}

	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return err
		}
	}

	return retry.Do(
		func() error {
			var rd io.Reader
			if payload != nil {
				rd = bytes.NewReader(payload)
			}
			req, err := http.NewRequestWithContext(ctx, method, endpoint, rd)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			req.Header.Set("Authorization", "Bearer "+token)
			if payload != nil {
				req.Header.Set("Content-Type", "application/json")
			}

			resp, err := c.httpc.Do(req)
			if err != nil {
				return fmt.Errorf("backend request failed: %w", err)
			}
			defer func() { _ = resp.Body.Close() }()

			if resp.StatusCode < 200 || resp.StatusCode > 299 {
				_, _ = io.Copy(io.Discard, resp.Body)
				serr := fmt.Errorf("backend returned status %d", resp.StatusCode)
				if resp.StatusCode >= 400 && resp.StatusCode < 500 {
					return retry.Unrecoverable(serr)
				}
				return serr
			}
			if out == nil {
				_, _ = io.Copy(io.Discard, resp.Body)
				return nil
			}
			if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
				return retry.Unrecoverable(fmt.Errorf("decoding backend response: %w", err))
			}
			return nil
		},
		retry.Attempts(writeAttempts),
		retry.Delay(writeDelay),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
}
