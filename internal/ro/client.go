// Package ro looks up items and monsters in a Divine Pride style Ragnarok
// Online database API.
package ro

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://divine-pride.net/api/database"

// APIError is a non-OK response from the database API.
type APIError struct {
	StatusCode int
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ro api error: %s returned status %d", e.Endpoint, e.StatusCode)
}

// Client wraps the Ragnarok Online database REST API.
type Client struct {
	BaseURL string
	APIKey  string
	Server  string // game server the stats are taken from, e.g. "iRO"
	HTTP    *http.Client
}

// NewClient creates an API client for the given key and game server.
func NewClient(apiKey, server string) *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		APIKey:  apiKey,
		Server:  server,
		HTTP: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// buildURL constructs a full API URL for one database record.
func (c *Client) buildURL(kind string, id int) string {
	params := url.Values{}
	params.Set("apiKey", c.APIKey)
	if c.Server != "" {
		params.Set("server", c.Server)
	}
	return fmt.Sprintf("%s/%s/%d?%s", c.BaseURL, kind, id, params.Encode())
}

// get performs a GET request and decodes the JSON response into out.
func (c *Client) get(kind string, id int, out any) error {
	endpoint := fmt.Sprintf("%s/%d", kind, id)

	resp, err := c.HTTP.Get(c.buildURL(kind, id))
	if err != nil {
		log.Printf("[RO ERROR] Request failed: %s | Error: %v", endpoint, err)
		return fmt.Errorf("ro request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[RO API ERROR] Endpoint: %s | Status: %d", endpoint, resp.StatusCode)
		return &APIError{StatusCode: resp.StatusCode, Endpoint: endpoint}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// GetItem returns the database record for an item ID.
func (c *Client) GetItem(id int) (*Item, error) {
	var item Item
	if err := c.get("Item", id, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// GetMonster returns the database record for a monster ID.
func (c *Client) GetMonster(id int) (*Monster, error) {
	var monster Monster
	if err := c.get("Monster", id, &monster); err != nil {
		return nil, err
	}
	return &monster, nil
}
