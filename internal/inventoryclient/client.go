package inventoryclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"bookcatalog/pkg/domain"
)

// Client calls the inventory service over HTTP. Every request carries the
// caller's bearer token.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// APIError represents an inventory service error response.
type APIError struct {
	Status  int
	Message string
	Details string
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

// NewClient constructs an inventory service client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// List fetches the full inventory.
func (c *Client) List(token string) ([]domain.Book, error) {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+"/books/view", nil)
	if err != nil {
		return nil, err
	}
	addAuthHeader(req, token)

	var books []domain.Book
	if err := c.do(req, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// Add creates a book from a draft and returns the entity with its
// server-assigned id.
func (c *Client) Add(token string, draft domain.Book) (domain.Book, error) {
	data, err := json.Marshal(draft)
	if err != nil {
		return domain.Book{}, err
	}
	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/books/add", bytes.NewReader(data))
	if err != nil {
		return domain.Book{}, err
	}
	addAuthHeader(req, token)
	req.Header.Set("Content-Type", "application/json")

	var book domain.Book
	if err := c.do(req, &book); err != nil {
		return domain.Book{}, err
	}
	return book, nil
}

// Update replaces the book with the matching id. The server responds with
// a bare status; no body is expected.
func (c *Client) Update(token string, book domain.Book) error {
	data, err := json.Marshal(book)
	if err != nil {
		return err
	}
	path := fmt.Sprintf("%s/books/update/%d", c.baseURL, book.ID)
	req, err := http.NewRequest(http.MethodPut, path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	addAuthHeader(req, token)
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, nil)
}

// Remove deletes the book with the given id.
func (c *Client) Remove(token string, id int64) error {
	path := fmt.Sprintf("%s/books/delete/%d", c.baseURL, id)
	req, err := http.NewRequest(http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	addAuthHeader(req, token)
	return c.do(req, nil)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		var errResp struct {
			Message string `json:"message"`
			Details string `json:"details"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		msg := errResp.Message
		if msg == "" {
			msg = resp.Status
		}
		return &APIError{Status: resp.StatusCode, Message: msg, Details: errResp.Details}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func addAuthHeader(req *http.Request, token string) {
	if strings.TrimSpace(token) == "" {
		return
	}
	req.Header.Set("Authorization", "Bearer "+token)
}
