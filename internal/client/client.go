// Package client is a hypermedia client for the gigwork API: it discovers
// resource URIs from the root document's @controls instead of hardcoding
// paths. Used by the stat service poller and the gigctl CLI.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// APIRoot is the discovery document path on the API host.
const APIRoot = "/gigwork/api/root/"

type Client struct {
	host  string
	token string
	http  *http.Client
}

// New builds a client for the given host (with protocol). The token may
// be empty for open-read deployments.
func New(host, token string) (*Client, error) {
	if !strings.HasPrefix(host, "http") {
		return nil, fmt.Errorf("no protocol in host address: %s", host)
	}
	return &Client{
		host:  strings.TrimSuffix(host, "/"),
		token: token,
		http:  &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// SetToken replaces the credential token used for subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// ResourceHref resolves a resource's collection URI from the root
// document's @controls.
func (c *Client) ResourceHref(resource string) (string, error) {
	hrefs, err := c.ResourceHrefs(resource)
	if err != nil {
		return "", err
	}
	return hrefs[resource], nil
}

// ResourceHrefs resolves several collection URIs from one root document
// fetch.
func (c *Client) ResourceHrefs(resources ...string) (map[string]string, error) {
	root, err := c.Get(APIRoot)
	if err != nil {
		return nil, fmt.Errorf("fetching root document: %w", err)
	}

	controls, ok := root["@controls"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("root document has no @controls")
	}

	hrefs := make(map[string]string, len(resources))
	for _, resource := range resources {
		ctrl, ok := controls[resource].(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("root document has no control for %q", resource)
		}
		href, ok := ctrl["href"].(string)
		if !ok || href == "" {
			return nil, fmt.Errorf("control for %q has no href", resource)
		}
		hrefs[resource] = href
	}
	return hrefs, nil
}

// Get fetches a document.
func (c *Client) Get(uri string) (map[string]interface{}, error) {
	raw, err := c.GetRaw(uri)
	if err != nil {
		return nil, err
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", uri, err)
	}
	return doc, nil
}

// GetRaw fetches a document without decoding it.
func (c *Client) GetRaw(uri string) ([]byte, error) {
	return c.do(http.MethodGet, uri, nil, http.StatusOK)
}

// Post creates a resource and returns the response document.
func (c *Client) Post(uri string, body interface{}) (map[string]interface{}, error) {
	raw, err := c.do(http.MethodPost, uri, body, http.StatusCreated)
	if err != nil {
		return nil, err
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", uri, err)
	}
	return doc, nil
}

// Put replaces a resource.
func (c *Client) Put(uri string, body interface{}) error {
	_, err := c.do(http.MethodPut, uri, body, http.StatusOK)
	return err
}

// Delete removes a resource.
func (c *Client) Delete(uri string) error {
	_, err := c.do(http.MethodDelete, uri, nil, http.StatusNoContent)
	return err
}

func (c *Client) do(method, uri string, body interface{}, wantStatus int) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, c.host+uri, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != wantStatus {
		return nil, fmt.Errorf("%s %s: unexpected status %d: %s",
			method, uri, resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	return raw, nil
}
