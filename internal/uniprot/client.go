// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package uniprot looks up protein entries in the UniProtKB REST API and
// reduces each entry to its recommended name and function annotation.
package uniprot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/protein-annotate/internal/httputil"
	"github.com/pdiddy/protein-annotate/pkg/types"
)

// entryURLTemplate is the per-entry JSON endpoint. Declared as a var so
// tests can substitute an httptest server.
var entryURLTemplate = "https://rest.uniprot.org/uniprotkb/{id}.json"

// idPlaceholder marks where the identifier goes in a URL template.
const idPlaceholder = "{id}"

// Client fetches UniProtKB entries over a single reused *http.Client.
type Client struct {
	hc          *http.Client
	cfg         types.HTTPConfig
	urlTemplate string
}

// NewClient returns a Client that issues requests through hc. An empty
// urlTemplate selects the public UniProtKB endpoint.
func NewClient(hc *http.Client, cfg types.HTTPConfig, urlTemplate string) *Client {
	if urlTemplate == "" {
		urlTemplate = entryURLTemplate
	}
	return &Client{hc: hc, cfg: cfg, urlTemplate: urlTemplate}
}

// EntryURL returns the endpoint for id with the identifier path-escaped.
func (c *Client) EntryURL(id string) string {
	return strings.ReplaceAll(c.urlTemplate, idPlaceholder, url.PathEscape(id))
}

// Fetch looks up one identifier. It never returns an error: HTTP status
// failures, transport failures and malformed entries are reported as a
// failed LookupResult so a batch can carry on.
func (c *Client) Fetch(ctx context.Context, id string) types.LookupResult {
	body, err := c.get(ctx, c.EntryURL(id))
	if err != nil {
		var se *httputil.StatusError
		if errors.As(err, &se) {
			return types.Failed("HTTP Error: " + se.Error())
		}
		return types.Failed("Request Error: " + err.Error())
	}

	name, activity, err := Extract(body)
	if err != nil {
		if errors.Is(err, ErrUnexpectedStructure) {
			return types.Failed(unexpectedStructureMsg)
		}
		return types.Failed("Request Error: " + err.Error())
	}
	return types.Found(name, activity)
}

// get performs the GET and returns the body of a successful response.
func (c *Client) get(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := httputil.CheckStatus(resp); err != nil {
		// Drain so the connection can go back to the pool.
		io.Copy(io.Discard, resp.Body)
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	return body, nil
}
