package batchapi

import (
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

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"

	"github.com/maxpoletaev/sparkpool/pool"
)

var (
	_ pool.Client = (*Client)(nil)
)

// nodeFields is the projection requested for node resources. The rest of the
// node record (start task info, certificates, errors) is never used.
const nodeFields = "id,ipAddress,state"

// Client is a read-only client of the batch pool REST API.
type Client struct {
	baseURL    *url.URL
	poolID     string
	apiVersion string
	pageSize   int
	timeout    time.Duration
	httpClient *http.Client
	signer     *sharedKeySigner
	logger     log.Logger
	now        func() time.Time
}

func New(conf Config) (*Client, error) {
	if conf.PoolID == "" {
		return nil, errors.New("pool id is required")
	}

	baseURL, err := url.Parse(strings.TrimRight(conf.AccountURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid account url: %w", err)
	}

	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, fmt.Errorf("invalid account url: %q", conf.AccountURL)
	}

	c := &Client{
		baseURL:    baseURL,
		poolID:     conf.PoolID,
		apiVersion: conf.APIVersion,
		pageSize:   conf.PageSize,
		timeout:    conf.Timeout,
		httpClient: conf.HTTPClient,
		logger:     conf.Logger,
		now:        time.Now,
	}

	if c.httpClient == nil {
		c.httpClient = http.DefaultClient
	}

	if c.logger == nil {
		c.logger = log.NewNopLogger()
	}

	if conf.AccountKey != "" {
		if conf.AccountName == "" {
			return nil, errors.New("account name is required when account key is set")
		}

		if c.signer, err = newSharedKeySigner(conf.AccountName, conf.AccountKey); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// GetPool returns the current state of the pool.
func (c *Client) GetPool(ctx context.Context) (pool.Pool, error) {
	u := c.resourceURL(nil, "pools", c.poolID)

	var res poolResource
	if err := c.get(ctx, u, &res); err != nil {
		return pool.Pool{}, err
	}

	return fromPoolResource(&res), nil
}

// GetNode returns a single node of the pool. Returns pool.ErrNotFound if the
// node has been removed from the pool.
func (c *Client) GetNode(ctx context.Context, nodeID string) (pool.Node, error) {
	u := c.resourceURL(url.Values{"$select": {nodeFields}}, "pools", c.poolID, "nodes", nodeID)

	var res nodeResource
	if err := c.get(ctx, u, &res); err != nil {
		return pool.Node{}, err
	}

	return fromNodeResource(&res), nil
}

// ListNodes returns all nodes of the pool, following continuation links until
// the last page. Pages are fetched one after another, so the pool may change
// while the listing is in progress. Use pool.TakeSnapshot to detect that.
func (c *Client) ListNodes(ctx context.Context) ([]pool.Node, error) {
	query := url.Values{"$select": {nodeFields}}
	if c.pageSize > 0 {
		query.Set("maxresults", strconv.Itoa(c.pageSize))
	}

	next := c.resourceURL(query, "pools", c.poolID, "nodes")
	nodes := make([]pool.Node, 0)
	pages := 0

	for next != nil {
		var page nodeListPage
		if err := c.get(ctx, next, &page); err != nil {
			return nil, err
		}

		for i := range page.Value {
			nodes = append(nodes, fromNodeResource(&page.Value[i]))
		}

		pages++
		next = nil

		if page.NextLink != "" {
			u, err := c.followLink(page.NextLink)
			if err != nil {
				return nil, err
			}

			next = u
		}
	}

	level.Debug(c.logger).Log("msg", "listed pool nodes", "pool_id", c.poolID, "nodes", len(nodes), "pages", pages)

	return nodes, nil
}

func (c *Client) resourceURL(query url.Values, segments ...string) *url.URL {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}

	u := *c.baseURL
	u.Path = strings.TrimRight(c.baseURL.Path, "/") + "/" + strings.Join(segments, "/")
	u.RawPath = strings.TrimRight(c.baseURL.EscapedPath(), "/") + "/" + strings.Join(escaped, "/")

	if query == nil {
		query = url.Values{}
	}

	query.Set("api-version", c.apiVersion)
	u.RawQuery = query.Encode()

	return &u
}

// followLink resolves a continuation link. The service returns absolute links,
// but they must point to the same account to be signed with our key.
func (c *Client) followLink(link string) (*url.URL, error) {
	u, err := c.baseURL.Parse(link)
	if err != nil {
		return nil, fmt.Errorf("invalid continuation link: %w", err)
	}

	if u.Host != c.baseURL.Host {
		return nil, fmt.Errorf("continuation link points to a different host: %s", u.Host)
	}

	if u.Query().Get("api-version") == "" {
		q := u.Query()
		q.Set("api-version", c.apiVersion)
		u.RawQuery = q.Encode()
	}

	return u, nil
}

func (c *Client) get(ctx context.Context, u *url.URL, out interface{}) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("client-request-id", requestID)
	req.Header.Set("return-client-request-id", "true")
	req.Header.Set("ocp-date", c.now().UTC().Format(http.TimeFormat))

	if c.signer != nil {
		c.signer.sign(req)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &pool.ServiceError{RequestID: requestID, Err: err}
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &pool.ServiceError{StatusCode: resp.StatusCode, RequestID: requestID, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		svcErr := &pool.ServiceError{
			StatusCode: resp.StatusCode,
			RequestID:  requestID,
		}

		var eb errorBody
		if json.Unmarshal(body, &eb) == nil {
			svcErr.Code = eb.Code
			svcErr.Message = eb.Message.Value
		}

		level.Debug(c.logger).Log(
			"msg", "pool service request failed",
			"path", u.Path,
			"status", resp.StatusCode,
			"code", svcErr.Code,
			"request_id", requestID,
		)

		return svcErr
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &pool.ServiceError{
			StatusCode: resp.StatusCode,
			RequestID:  requestID,
			Err:        fmt.Errorf("decode response: %w", err),
		}
	}

	return nil
}
