package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const trelloAPIBase = "https://api.trello.com/1"

// errTrelloAuth marks credential rejection by the board service, so operators
// can tell credential problems from transient outages.
var errTrelloAuth = errors.New("trello authentication failed: check trello_api_key and trello_token")

// TrelloClient reads board resources. All requests authenticate with the
// fixed key/token pair as query parameters.
type TrelloClient struct {
	apiKey  string
	token   string
	boardID string
	baseURL string
	http    *http.Client
}

func NewTrelloClient(cfg Config) *TrelloClient {
	return &TrelloClient{
		apiKey:  cfg.TrelloAPIKey,
		token:   cfg.TrelloToken,
		boardID: cfg.TrelloBoardID,
		baseURL: trelloAPIBase,
		http:    externalHTTPClient,
	}
}

func (c *TrelloClient) request(ctx context.Context, endpoint string, params url.Values, out any) error {
	u, err := url.Parse(c.baseURL + endpoint)
	if err != nil {
		return fmt.Errorf("building request URL: %w", err)
	}
	q := u.Query()
	q.Set("key", c.apiKey)
	q.Set("token", c.token)
	for key, values := range params {
		for _, value := range values {
			q.Set(key, value)
		}
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("%w (status %d)", errTrelloAuth, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("trello API returned %d for %s: %s", resp.StatusCode, endpoint, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}
	return nil
}

func (c *TrelloClient) GetLists(ctx context.Context) ([]TrelloList, error) {
	var lists []TrelloList
	err := c.request(ctx, "/boards/"+c.boardID+"/lists", url.Values{
		"filter": {"open"},
	}, &lists)
	return lists, err
}

func (c *TrelloClient) GetCards(ctx context.Context) ([]TrelloCard, error) {
	var cards []TrelloCard
	err := c.request(ctx, "/boards/"+c.boardID+"/cards", url.Values{
		"fields":     {"name,desc,idList,idMembers,idLabels,due,dueComplete,dateLastActivity,shortUrl"},
		"checklists": {"all"},
		"filter":     {"open"},
	}, &cards)
	return cards, err
}

func (c *TrelloClient) GetMembers(ctx context.Context) ([]TrelloMember, error) {
	var members []TrelloMember
	err := c.request(ctx, "/boards/"+c.boardID+"/members", url.Values{
		"fields": {"fullName,username,avatarUrl"},
	}, &members)
	return members, err
}

func (c *TrelloClient) GetLabels(ctx context.Context) ([]TrelloLabel, error) {
	var labels []TrelloLabel
	err := c.request(ctx, "/boards/"+c.boardID+"/labels", url.Values{
		"fields": {"name,color"},
	}, &labels)
	return labels, err
}
