// Package api is the single entry point for every call to the application
// backend. It normalizes heterogeneous transport outcomes into the uniform
// response envelope: no method here ever returns a transport error, every
// call resolves to a *models.Response.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/healthdash/internal/client/models"
	"github.com/dmitrijs2005/healthdash/internal/logging"
)

// HeaderSource supplies the authentication headers attached to every request.
// The session manager satisfies this interface.
type HeaderSource interface {
	AuthHeaders(ctx context.Context) map[string]string
}

// Options customizes a single request. Caller-supplied headers override the
// session headers on name collision. Body is sent verbatim; the JSON helpers
// serialize it before calling Request. At most one of Body and File may be set.
type Options struct {
	Headers map[string]string
	Body    []byte
	File    *FileUpload
}

// FileUpload describes one multipart file part.
type FileUpload struct {
	FieldName string
	FileName  string
	Reader    io.Reader
}

// Client issues authenticated requests against the backend REST API.
type Client struct {
	http    *resty.Client
	baseURL string
	headers HeaderSource
	log     logging.Logger
}

// New constructs a Client. baseURL prefixes relative endpoints; a zero
// timeout leaves the transport without a deadline.
func New(baseURL string, headers HeaderSource, log logging.Logger, timeout time.Duration) *Client {
	httpClient := resty.New()
	if timeout > 0 {
		httpClient.SetTimeout(timeout)
	}
	return &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
		headers: headers,
		log:     log.With("component", "api"),
	}
}

// resolveURL passes absolute URLs through unchanged and prefixes everything
// else with the configured base URL.
func (c *Client) resolveURL(endpoint string) string {
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		return endpoint
	}
	return c.baseURL + endpoint
}

// Request issues one call and folds every possible outcome into the response
// envelope:
//
//   - JSON body, success status: the parsed envelope verbatim.
//   - JSON body, failure status: Success=false with the body's error field,
//     falling back to "HTTP error <status>".
//   - non-JSON body: raw text wrapped on success, "HTTP error <status>" on failure.
//   - transport or parse failure: Success=false with the error's message.
func (c *Client) Request(ctx context.Context, method, endpoint string, opts *Options) *models.Response {
	if opts == nil {
		opts = &Options{}
	}

	req := c.http.R().SetContext(ctx)
	req.SetHeader("X-Request-ID", uuid.NewString())
	for k, v := range c.headers.AuthHeaders(ctx) {
		req.SetHeader(k, v)
	}
	for k, v := range opts.Headers {
		req.SetHeader(k, v)
	}

	if opts.File != nil {
		// The transport computes the multipart boundary; an inherited
		// Content-Type would clobber it.
		req.Header.Del("Content-Type")
		req.SetFileReader(opts.File.FieldName, opts.File.FileName, opts.File.Reader)
	} else if opts.Body != nil {
		req.SetBody(opts.Body)
	}

	url := c.resolveURL(endpoint)
	resp, err := req.Execute(method, url)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "url", url, "error", err)
		return failure(err.Error())
	}

	c.log.Debug(ctx, "request completed", "method", method, "url", url, "status", resp.StatusCode())
	return c.normalize(resp)
}

// normalize maps a transport response into the envelope per the content type
// and status class.
func (c *Client) normalize(resp *resty.Response) *models.Response {
	contentType := resp.Header().Get("Content-Type")

	if strings.Contains(contentType, "application/json") {
		var envelope models.Response
		if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
			return failure(err.Error())
		}
		if resp.IsError() {
			msg := envelope.Error
			if msg == "" {
				msg = httpError(resp.StatusCode())
			}
			return &models.Response{Success: false, Error: msg}
		}
		return &envelope
	}

	if resp.IsError() {
		return &models.Response{Success: false, Error: httpError(resp.StatusCode())}
	}

	text, err := json.Marshal(string(resp.Body()))
	if err != nil {
		return failure(err.Error())
	}
	return &models.Response{Success: true, Data: text}
}

func httpError(status int) string {
	return fmt.Sprintf("HTTP error %d", status)
}

func failure(msg string) *models.Response {
	if msg == "" {
		msg = "Network error"
	}
	return &models.Response{Success: false, Error: msg}
}

// Get issues an authenticated GET.
func (c *Client) Get(ctx context.Context, endpoint string) *models.Response {
	return c.Request(ctx, http.MethodGet, endpoint, nil)
}

// Post issues an authenticated POST with a JSON-serialized body. The JSON
// Content-Type is set explicitly here rather than relied on from the session
// headers, since caller headers take precedence in the merge.
func (c *Client) Post(ctx context.Context, endpoint string, data any) *models.Response {
	return c.sendJSON(ctx, http.MethodPost, endpoint, data)
}

// Put issues an authenticated PUT with a JSON-serialized body.
func (c *Client) Put(ctx context.Context, endpoint string, data any) *models.Response {
	return c.sendJSON(ctx, http.MethodPut, endpoint, data)
}

// Delete issues an authenticated DELETE.
func (c *Client) Delete(ctx context.Context, endpoint string) *models.Response {
	return c.Request(ctx, http.MethodDelete, endpoint, nil)
}

func (c *Client) sendJSON(ctx context.Context, method, endpoint string, data any) *models.Response {
	body, err := json.Marshal(data)
	if err != nil {
		return failure(err.Error())
	}
	return c.Request(ctx, method, endpoint, &Options{
		Headers: map[string]string{"Content-Type": "application/json"},
		Body:    body,
	})
}

// UploadFile posts file contents as one multipart part. An empty fieldName
// defaults to "document". Authentication headers are attached as usual; the
// multipart Content-Type with its boundary is left to the transport.
func (c *Client) UploadFile(ctx context.Context, endpoint, fileName string, r io.Reader, fieldName string) *models.Response {
	if fieldName == "" {
		fieldName = "document"
	}
	return c.Request(ctx, http.MethodPost, endpoint, &Options{
		File: &FileUpload{FieldName: fieldName, FileName: fileName, Reader: r},
	})
}
