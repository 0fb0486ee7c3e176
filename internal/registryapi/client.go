package registryapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client talks to the external companies API
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a client for baseURL. A zero timeout falls back to 10s.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// BaseURL returns the API root the client was built with
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListCompanies fetches one page of companies
func (c *Client) ListCompanies(ctx context.Context, skip, limit int) ([]Company, error) {
	q := url.Values{}
	q.Set("skip", strconv.Itoa(skip))
	q.Set("limit", strconv.Itoa(limit))

	body, err := c.doRequest(ctx, http.MethodGet, "/companies?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("list companies request failed: %w", err)
	}

	var env listEnvelope
	if err := json.Unmarshal(body, &env); err != nil || env.Companies == nil {
		return nil, ErrUnexpectedEnvelope
	}
	return *env.Companies, nil
}

// GetCompany fetches the basic record by internal id
func (c *Client) GetCompany(ctx context.Context, id int64) (*Company, error) {
	path := "/companies/" + strconv.FormatInt(id, 10)
	company, err := c.getCompany(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("get company %d failed: %w", id, err)
	}
	return company, nil
}

// GetCompanyByINN fetches the extended record by tax identifier
func (c *Client) GetCompanyByINN(ctx context.Context, inn string) (*Company, error) {
	path := "/rusprofile/companies/inn/" + url.PathEscape(inn)
	company, err := c.getCompany(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("get company by inn %s failed: %w", inn, err)
	}
	return company, nil
}

// CreateCompany posts a new company. Backends that answer 2xx without a
// body yield the submitted fields with a zero id.
func (c *Client) CreateCompany(ctx context.Context, req CreateCompanyRequest) (*Company, error) {
	body, err := c.doRequest(ctx, http.MethodPost, "/companies", req)
	if err != nil {
		return nil, fmt.Errorf("create company request failed: %w", err)
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return &Company{Name: req.Name, INN: req.INN, OGRN: req.OGRN, Reestr: req.Reestr}, nil
	}

	var company Company
	if err := json.Unmarshal(body, &company); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return &company, nil
}

func (c *Client) getCompany(ctx context.Context, path string) (*Company, error) {
	body, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, ErrNotFound
	}

	var company Company
	if err := json.Unmarshal(trimmed, &company); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return &company, nil
}

// doRequest performs the call and returns the body of a 2xx answer
func (c *Client) doRequest(ctx context.Context, method, path string, body any) ([]byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &StatusError{StatusCode: resp.StatusCode}
		var errResp errorBody
		if err := json.Unmarshal(respBody, &errResp); err == nil {
			statusErr.Message = errResp.Detail
			if statusErr.Message == "" {
				statusErr.Message = errResp.Message
			}
		}
		return nil, statusErr
	}

	return respBody, nil
}

// IsTransport reports whether err never reached the API
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
