// Package client talks to a running cook server over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	cookv1 "go.trai.ch/cook/api/cook/v1"
	"go.trai.ch/cook/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultTimeout bounds every request except package requests, which wait for the cook.
const DefaultTimeout = 30 * time.Second

// Client is a cook server client.
type Client struct {
	base string
	http *http.Client
}

// ResolveAddr returns the address recorded by a server running under root,
// or fallback when none is recorded.
func ResolveAddr(root, fallback string) string {
	data, err := os.ReadFile(domain.DefaultServerAddrPath(root))
	if err != nil {
		return fallback
	}
	if addr := strings.TrimSpace(string(data)); addr != "" {
		return addr
	}
	return fallback
}

// New creates a client for addr, given as host:port or as a URL.
func New(addr string) *Client {
	base := strings.TrimRight(addr, "/")
	if !strings.Contains(base, "://") {
		base = "http://" + base
	}
	return &Client{base: base, http: &http.Client{}}
}

// Health checks that the server answers.
func (c *Client) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()
	resp, err := c.do(ctx, http.MethodGet, "/healthz", nil)
	if err != nil {
		return err
	}
	defer drain(resp)
	if resp.StatusCode != http.StatusOK {
		return remoteError(resp)
	}
	return nil
}

// Status returns the scheduler state.
func (c *Client) Status(ctx context.Context) (*cookv1.StatusResponse, error) {
	var out cookv1.StatusResponse
	if err := c.getJSON(ctx, "/v1/status", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Manifest returns the packages cooked successfully for platform.
func (c *Client) Manifest(ctx context.Context, platform string) ([]string, error) {
	var out cookv1.ManifestResponse
	if err := c.getJSON(ctx, "/v1/manifest/"+url.PathEscape(platform), &out); err != nil {
		return nil, err
	}
	return out.Packages, nil
}

// RequestPackage asks the server to cook path for platform and returns the
// cooked bytes. A failed cook returns the response with domain.ErrCookFailed,
// so unsolicited packages are still reported.
func (c *Client) RequestPackage(ctx context.Context, platform, path string) (*domain.FileResponse, error) {
	p := "/v1/packages/" + url.PathEscape(platform) + "/" + strings.TrimPrefix(path, "/")
	resp, err := c.do(ctx, http.MethodGet, p, nil)
	if err != nil {
		return nil, err
	}
	defer drain(resp)

	out := &domain.FileResponse{
		Package:     domain.NewPackageID(resp.Header.Get(cookv1.PackageHeader)),
		Platform:    domain.NewPlatformID(platform),
		Unsolicited: domain.NewPackageIDs(resp.Header.Values(cookv1.UnsolicitedHeader)),
	}
	switch resp.StatusCode {
	case http.StatusOK:
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, errors.Join(domain.ErrRemoteRequestFailed, err)
		}
		out.Data = data
		return out, nil
	case http.StatusBadGateway:
		return out, zerr.Wrap(domain.ErrCookFailed, path)
	default:
		return nil, remoteError(resp)
	}
}

// StartBook starts a book session and returns its handle.
func (c *Client) StartBook(ctx context.Context, req cookv1.BookRequest) (string, error) {
	var out cookv1.BookResponse
	if err := c.sendJSON(ctx, http.MethodPost, "/v1/book", req, http.StatusAccepted, &out); err != nil {
		return "", err
	}
	return out.Session, nil
}

// Session reports whether the session id is still running.
func (c *Client) Session(ctx context.Context, id string) (bool, error) {
	var out cookv1.SessionResponse
	if err := c.getJSON(ctx, "/v1/book/"+url.PathEscape(id), &out); err != nil {
		return false, err
	}
	return out.Running, nil
}

// Cancel asks the session id to stop.
func (c *Client) Cancel(ctx context.Context, id string) error {
	return c.sendJSON(ctx, http.MethodDelete, "/v1/book/"+url.PathEscape(id), nil, http.StatusAccepted, nil)
}

// MarkDirty forgets the cooked state of packages and their dependents.
func (c *Client) MarkDirty(ctx context.Context, packages []string) (int, error) {
	var out cookv1.DirtyResponse
	req := cookv1.DirtyRequest{Packages: packages}
	if err := c.sendJSON(ctx, http.MethodPost, "/v1/dirty", req, http.StatusOK, &out); err != nil {
		return 0, err
	}
	return out.Marked, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.sendJSON(ctx, http.MethodGet, path, nil, http.StatusOK, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, in any, want int, out any) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return errors.Join(domain.ErrRemoteRequestFailed, err)
		}
		body = bytes.NewReader(data)
	}
	resp, err := c.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer drain(resp)

	if resp.StatusCode != want {
		return remoteError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return zerr.With(errors.Join(domain.ErrRemoteRequestFailed, err), "path", path)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return nil, errors.Join(domain.ErrRemoteRequestFailed, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrRemoteRequestFailed, err), "url", c.base+path)
	}
	return resp, nil
}

// remoteError turns a non-success response into an error carrying the
// server's message.
func remoteError(resp *http.Response) error {
	var e cookv1.ErrorResponse
	msg := resp.Status
	if err := json.NewDecoder(resp.Body).Decode(&e); err == nil && e.Error != "" {
		msg = e.Error
	}
	return zerr.With(zerr.Wrap(domain.ErrRemoteRequestFailed, msg), "status", resp.StatusCode)
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
