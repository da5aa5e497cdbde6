// Package apiclient is the storefront's HTTP client for the Thrift
// Clothing API. It unwraps the {success, message, data} envelope every
// endpoint answers with and turns non-success responses into errors. There
// is no retry logic; a failure is reported once and the caller decides.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/fumio65/Thrift-Clothing/internal/models"
)

// Client talks to one API base URL, optionally carrying a bearer token.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a client for the given base URL, e.g.
// "http://localhost:8080/api/v1".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SetToken attaches a bearer token to subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// envelope is the uniform response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if !env.Success {
		return fmt.Errorf("api error (status %d): %s", resp.StatusCode, env.Message)
	}
	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}

// productPage mirrors the listing response data.
type productPage struct {
	Products []models.Product `json:"products"`
	Total    int64            `json:"total"`
	Limit    int              `json:"limit"`
	Offset   int              `json:"offset"`
}

// FetchPage returns one page of products plus the total count for the
// category filter. It satisfies catalog.ProductSource.
func (c *Client) FetchPage(ctx context.Context, limit, offset int, category, sort string) ([]models.Product, int64, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))
	if category != "" {
		query.Set("category", category)
	}
	if sort != "" {
		query.Set("sort", sort)
	}

	var page productPage
	if err := c.do(ctx, http.MethodGet, "/products", query, nil, &page); err != nil {
		return nil, 0, err
	}
	return page.Products, page.Total, nil
}

// GetProduct fetches a single product by ID.
func (c *Client) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// AuthData is the token-bearing payload returned by register and login.
type AuthData struct {
	UserID    uint   `json:"userId"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Token     string `json:"token"`
}

// Register creates an account and stores the returned token on the client.
func (c *Client) Register(ctx context.Context, firstName, lastName, email, password string) (*AuthData, error) {
	body := map[string]string{
		"firstName": firstName,
		"lastName":  lastName,
		"email":     email,
		"password":  password,
	}
	var data AuthData
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, body, &data); err != nil {
		return nil, err
	}
	c.token = data.Token
	return &data, nil
}

// Login authenticates and stores the returned token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthData, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}
	var data AuthData
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, body, &data); err != nil {
		return nil, err
	}
	c.token = data.Token
	return &data, nil
}

// GetProfile fetches the authenticated user's profile.
func (c *Client) GetProfile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/users/profile", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// AddProduct lists a new product and returns its ID.
func (c *Client) AddProduct(ctx context.Context, product *models.Product) (uint, error) {
	var data struct {
		ID uint `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/products", nil, product, &data); err != nil {
		return 0, err
	}
	return data.ID, nil
}
