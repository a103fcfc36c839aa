package sgsclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	pkghttp "sg-console-srv/pkg/http"
	"sg-console-srv/pkg/metrics"
)

func defaultHTTPClient(cfg SGSConfig) pkghttp.IClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return pkghttp.NewClient(pkghttp.ClientConfig{
		Timeout:            timeout,
		Retries:            cfg.Retries,
		RetryWait:          DefaultRetryWait,
		InsecureSkipVerify: cfg.Insecure,
		Observe:            metrics.ObserveSGSRequest,
	})
}

func (c *sgsImpl) endpoint(path string, query url.Values) string {
	u := strings.TrimRight(c.baseURL, "/") + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func headers(token string) map[string]string {
	return map[string]string{HeaderAuthToken: token}
}

func (o ListOptions) query() url.Values {
	q := url.Values{}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Marker != "" {
		q.Set("marker", o.Marker)
	}
	if o.Sort != "" {
		q.Set("sort", o.Sort)
	}
	for k, v := range o.Filters {
		if v != "" {
			q.Set(k, v)
		}
	}
	return q
}

func (c *sgsImpl) get(ctx context.Context, token, path string, query url.Values, out any) error {
	body, statusCode, err := c.httpClient.Get(ctx, c.endpoint(path, query), headers(token))
	if err != nil {
		return fmt.Errorf("failed to get %s: %w", path, err)
	}
	return decode(statusCode, body, out)
}

func (c *sgsImpl) post(ctx context.Context, token, path string, in, out any) error {
	body, statusCode, err := c.httpClient.Post(ctx, c.endpoint(path, nil), in, headers(token))
	if err != nil {
		return fmt.Errorf("failed to post %s: %w", path, err)
	}
	return decode(statusCode, body, out)
}

func (c *sgsImpl) put(ctx context.Context, token, path string, in, out any) error {
	body, statusCode, err := c.httpClient.Put(ctx, c.endpoint(path, nil), in, headers(token))
	if err != nil {
		return fmt.Errorf("failed to put %s: %w", path, err)
	}
	return decode(statusCode, body, out)
}

func (c *sgsImpl) delete(ctx context.Context, token, path string) error {
	body, statusCode, err := c.httpClient.Delete(ctx, c.endpoint(path, nil), headers(token))
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", path, err)
	}
	return decode(statusCode, body, nil)
}

// action posts {name: params} to the resource's action endpoint.
func (c *sgsImpl) action(ctx context.Context, token, path, name string, params any) error {
	if params == nil {
		params = struct{}{}
	}
	return c.post(ctx, token, path+pathAction, map[string]any{name: params}, nil)
}

func decode(statusCode int, body []byte, out any) error {
	if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
		return &APIError{StatusCode: statusCode, Message: errorMessage(statusCode, body)}
	}
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}

// errorMessage extracts the message of a gateway fault body such as
// {"itemNotFound": {"code": 404, "message": "..."}}.
func errorMessage(statusCode int, body []byte) string {
	var fault map[string]struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &fault); err == nil {
		for _, f := range fault {
			if f.Message != "" {
				return f.Message
			}
		}
	}
	if text := strings.TrimSpace(string(body)); text != "" && len(text) < 256 {
		return text
	}
	return http.StatusText(statusCode)
}

func resourcePath(base, id string) string {
	return base + "/" + url.PathEscape(id)
}
