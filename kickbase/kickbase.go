// Package kickbase is a minimal client for the parts of the Kickbase API the
// exporter consumes: login, league lookup, the manager directory, the
// activities feed, and achievement rewards.
package kickbase

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

const baseURL = "https://api.kickbase.com/v4"

const sessionFile = "kickledger-session"

// Client talks to the Kickbase API on behalf of one logged-in user.
type Client struct {
	base  string
	token string
	hc    *http.Client
	cache *http.Client // daily disk cache, for lookups that are stable within a day
}

// NewClient returns a client with no session. Call Login or LoadSession
// before any fetch.
func NewClient() *Client {
	return &Client{base: baseURL, hc: http.DefaultClient, cache: newDailyCachingClient()}
}

// Login authenticates with the user's credentials and keeps the bearer token
// for subsequent calls.
func (c *Client) Login(email, password string) error {
	body, err := json.Marshal(map[string]any{"em": email, "pw": password, "ext": true})
	if err != nil {
		return err
	}
	resp, err := c.hc.Post(c.base+"/user/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("cannot reach the login endpoint: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("login rejected: %v", resp.Status)
	}

	var payload struct {
		Token string `json:"tkn"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return fmt.Errorf("cannot decode login response: %w", err)
	}
	if payload.Token == "" {
		return errors.New("login response carries no token")
	}
	c.token = payload.Token
	return nil
}

// SaveSession persists the bearer token so later invocations can reuse it.
func (c *Client) SaveSession() error {
	if c.token == "" {
		return errors.New("no session to save, login first")
	}
	path := filepath.Join(os.TempDir(), sessionFile)
	return os.WriteFile(path, []byte(c.token), 0600)
}

// LoadSession restores a token stored by a previous 'kickledger login'.
func (c *Client) LoadSession() error {
	content, err := os.ReadFile(filepath.Join(os.TempDir(), sessionFile))
	if err != nil {
		return fmt.Errorf("kickbase session not found. Please run 'kickledger login' first: %w", err)
	}
	c.token = strings.TrimSpace(string(content))
	if c.token == "" {
		return errors.New("stored kickbase session is empty")
	}
	return nil
}

// jwget performs an authenticated GET on an API path and unmarshals the JSON
// response body into data, using the provided http.Client.
func (c *Client) jwget(client *http.Client, path string, data any) error {
	req, err := http.NewRequest(http.MethodGet, c.base+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}
