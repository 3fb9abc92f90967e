// Package api is a small client for the hbnb v1 REST API.
package api

import (
	"github.com/go-resty/resty/v2"
)

type Client struct {
	c *resty.Client
}

// NewClient returns a client for the API rooted at baseURL, eg
// "http://localhost:5000".
func NewClient(baseURL string) *Client {
	return &Client{
		c: resty.New().SetBaseURL(baseURL + "/api/v1"),
	}
}

type StatusResponse struct {
	Status string `json:"status"`
}

func (c *Client) GetStatus() (*StatusResponse, error) {
	var status StatusResponse

	resp, err := c.c.R().SetResult(&status).Get("/status")
	if err != nil {
		return nil, err
	}

	if resp.IsError() {
		return nil, ToErrorFromResponse(resp)
	}

	return &status, nil
}

// GetStats returns the live object count per entity type.
func (c *Client) GetStats() (map[string]int, error) {
	stats := make(map[string]int)

	resp, err := c.c.R().SetResult(&stats).Get("/stats")
	if err != nil {
		return nil, err
	}

	if resp.IsError() {
		return nil, ToErrorFromResponse(resp)
	}

	return stats, nil
}

func (c *Client) ListStates() ([]map[string]any, error) {
	var states []map[string]any

	resp, err := c.c.R().SetResult(&states).Get("/states")
	if err != nil {
		return nil, err
	}

	if resp.IsError() {
		return nil, ToErrorFromResponse(resp)
	}

	return states, nil
}

func (c *Client) GetState(stateID string) (map[string]any, error) {
	return c.getOne("/states/{id}", stateID)
}

func (c *Client) CreateState(name string) (map[string]any, error) {
	state := make(map[string]any)

	resp, err := c.c.R().
		SetBody(map[string]any{"name": name}).
		SetResult(&state).
		Post("/states")
	if err != nil {
		return nil, err
	}

	if resp.IsError() {
		return nil, ToErrorFromResponse(resp)
	}

	return state, nil
}

func (c *Client) UpdateState(stateID string, attrs map[string]any) (map[string]any, error) {
	state := make(map[string]any)

	resp, err := c.c.R().
		SetPathParam("id", stateID).
		SetBody(attrs).
		SetResult(&state).
		Put("/states/{id}")
	if err != nil {
		return nil, err
	}

	if resp.IsError() {
		return nil, ToErrorFromResponse(resp)
	}

	return state, nil
}

func (c *Client) DeleteState(stateID string) error {
	resp, err := c.c.R().SetPathParam("id", stateID).Delete("/states/{id}")
	if err != nil {
		return err
	}

	if resp.IsError() {
		return ToErrorFromResponse(resp)
	}

	return nil
}

func (c *Client) getOne(path, id string) (map[string]any, error) {
	result := make(map[string]any)

	resp, err := c.c.R().SetPathParam("id", id).SetResult(&result).Get(path)
	if err != nil {
		return nil, err
	}

	if resp.IsError() {
		return nil, ToErrorFromResponse(resp)
	}

	return result, nil
}
