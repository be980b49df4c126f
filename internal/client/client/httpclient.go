package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tamakara/booth/internal/client/models"
	"github.com/tamakara/booth/internal/client/transport"
	"github.com/tamakara/booth/internal/logging"
)

const (
	maxBodySize      = 4 << 20
	maxErrorBodySize = 512
)

var (
	errEmptyBody     = errors.New("empty response body")
	errNullBody      = errors.New("response body is null")
	errNotText       = errors.New("response is structured, expected a text value")
	errMissingID     = errors.New("response has no positive id")
	errInvalidBase   = errors.New("base URL must be an absolute http(s) URL")
	errNotAnIdentity = errors.New("response is not a numeric id")
)

type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
}

// Options configures New.
type Options struct {
	BaseURL        string
	Tokens         transport.TokenSource
	Logger         logging.Logger
	ConnectTimeout time.Duration
	RequestTimeout time.Duration
}

// New builds the HTTPClient used by the application: a dialer bounded by
// ConnectTimeout, the whole exchange bounded by RequestTimeout, and the
// logging and bearer-token round trippers on top.
func New(opts Options) (*HTTPClient, error) {
	dialer := &net.Dialer{Timeout: opts.ConnectTimeout, KeepAlive: 30 * time.Second}

	base := http.DefaultTransport.(*http.Transport).Clone()
	base.DialContext = dialer.DialContext
	base.TLSHandshakeTimeout = opts.ConnectTimeout

	var rt http.RoundTripper = base
	if opts.Logger != nil {
		rt = &transport.Logging{Base: rt, Logger: opts.Logger}
	}
	if opts.Tokens != nil {
		rt = &transport.Auth{Base: rt, Tokens: opts.Tokens, Logger: opts.Logger}
	}

	return NewHTTPClient(opts.BaseURL, &http.Client{Transport: rt, Timeout: opts.RequestTimeout})
}

// NewHTTPClient binds the contract to baseURL using hc for the exchanges.
func NewHTTPClient(baseURL string, hc *http.Client) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", errInvalidBase, baseURL)
	}
	if hc == nil {
		hc = http.DefaultClient
	}
	return &HTTPClient{baseURL: u, http: hc}, nil
}

func (c *HTTPClient) Register(ctx context.Context, phone, password string) (string, error) {
	body, err := c.do(ctx, http.MethodPost, "/user/register", nil, models.RegisterRequest{Phone: phone, Password: password})
	if err != nil {
		return "", err
	}
	return decodeText("/user/register", body)
}

func (c *HTTPClient) Login(ctx context.Context, phone, password string) (string, error) {
	body, err := c.do(ctx, http.MethodPost, "/user/login", nil, models.LoginRequest{Phone: phone, Password: password})
	if err != nil {
		return "", err
	}
	return decodeText("/user/login", body)
}

func (c *HTTPClient) GetUser(ctx context.Context, sellerID int64) (*models.User, error) {
	q := url.Values{}
	if sellerID > 0 {
		q.Set("sellerId", strconv.FormatInt(sellerID, 10))
	}
	var u models.User
	if err := c.getJSON(ctx, "/user/vo/user", q, &u); err != nil {
		return nil, err
	}
	if u.ID <= 0 {
		return nil, &DecodeError{Path: "/user/vo/user", Err: errMissingID}
	}
	return &u, nil
}

func (c *HTTPClient) ListItems(ctx context.Context, query ItemQuery) (*models.ItemPage, error) {
	query = query.WithDefaults()

	q := url.Values{}
	if query.SellerID > 0 {
		q.Set("sellerId", strconv.FormatInt(query.SellerID, 10))
	}
	q.Set("itemState", query.ItemState)
	q.Set("pageNo", strconv.Itoa(query.PageNo))
	q.Set("pageSize", strconv.Itoa(query.PageSize))

	var page models.ItemPage
	if err := c.getJSON(ctx, "/item/vo/items", q, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *HTTPClient) GetItem(ctx context.Context, itemID int64) (*models.Item, error) {
	path := fmt.Sprintf("/item/vo/item/%d", itemID)
	var it models.Item
	if err := c.getJSON(ctx, path, nil, &it); err != nil {
		return nil, err
	}
	if it.ID <= 0 {
		return nil, &DecodeError{Path: path, Err: errMissingID}
	}
	return &it, nil
}

func (c *HTTPClient) CreateItem(ctx context.Context, req models.CreateItemRequest) (int64, error) {
	body, err := c.do(ctx, http.MethodPost, "/item/create", nil, req)
	if err != nil {
		return 0, err
	}
	return decodeID("/item/create", body)
}

func (c *HTTPClient) CreateOrder(ctx context.Context, itemID int64) (int64, error) {
	path := fmt.Sprintf("/order/create/%d", itemID)
	body, err := c.do(ctx, http.MethodPost, path, nil, nil)
	if err != nil {
		return 0, err
	}
	return decodeID(path, body)
}

func (c *HTTPClient) GetOrder(ctx context.Context, orderID int64) (*models.Order, error) {
	path := fmt.Sprintf("/order/vo/order/%d", orderID)
	var o models.Order
	if err := c.getJSON(ctx, path, nil, &o); err != nil {
		return nil, err
	}
	if o.ID <= 0 {
		return nil, &DecodeError{Path: path, Err: errMissingID}
	}
	return &o, nil
}

func (c *HTTPClient) FavoriteItem(ctx context.Context, itemID int64) error {
	_, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/user/favorite/%d", itemID), nil, nil)
	return err
}

func (c *HTTPClient) UnfavoriteItem(ctx context.Context, itemID int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/user/unfavorite/%d", itemID), nil, nil)
	return err
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	body, err := c.do(ctx, http.MethodGet, path, q, nil)
	if err != nil {
		return err
	}
	trimmed := bytes.TrimSpace(body)
	switch {
	case len(trimmed) == 0:
		return &DecodeError{Path: path, Err: errEmptyBody}
	case string(trimmed) == "null":
		return &DecodeError{Path: path, Err: errNullBody}
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		return &DecodeError{Path: path, Err: err}
	}
	return nil
}

// do performs one exchange and returns the body of a 2xx response.
func (c *HTTPClient) do(ctx context.Context, method, path string, q url.Values, in any) ([]byte, error) {
	var reqBody io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encode %s body: %w", path, err)
		}
		reqBody = bytes.NewReader(b)
	}

	u := c.baseURL.JoinPath(path)
	if len(q) > 0 {
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return nil, &StatusError{Method: method, Path: path, Code: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &TransportError{Method: method, Path: path, Err: err}
	}
	return body, nil
}

// decodeText accepts a JSON string or bare text, the way lenient JSON
// readers do for scalar responses. null, objects and arrays are rejected.
func decodeText(path string, body []byte) (string, error) {
	trimmed := bytes.TrimSpace(body)
	switch {
	case len(trimmed) == 0:
		return "", &DecodeError{Path: path, Err: errEmptyBody}
	case string(trimmed) == "null":
		return "", &DecodeError{Path: path, Err: errNullBody}
	case trimmed[0] == '{' || trimmed[0] == '[':
		return "", &DecodeError{Path: path, Err: errNotText}
	}
	if trimmed[0] != '"' {
		return string(trimmed), nil
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return "", &DecodeError{Path: path, Err: err}
	}
	return s, nil
}

// decodeID accepts a JSON number, a quoted number or bare digits.
func decodeID(path string, body []byte) (int64, error) {
	text, err := decodeText(path, body)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return 0, &DecodeError{Path: path, Err: fmt.Errorf("%w: %q", errNotAnIdentity, text)}
	}
	return id, nil
}
