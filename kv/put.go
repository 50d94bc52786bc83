// Package kv writes key/value pairs to a remote key-value storage service
// over HTTPS. One call issues exactly one PUT; retry and timeout policy
// belong to the injected HTTP client.
package kv

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/go-resty/resty/v2"

	"github.com/edgekv/kvctl/httpf"
)

// PutRequest fully describes a single write. Expiration and ExpirationTTL are
// passed through verbatim when non-empty; the service is the authority on
// their meaning, and neither excludes the other. Metadata, when non-nil,
// forces the request onto the multipart encoding.
type PutRequest struct {
	NamespaceID   string
	Key           string
	Value         string
	IsFile        bool
	Expiration    string
	ExpirationTTL string
	Metadata      json.RawMessage
}

// Client performs puts against a single target account. It holds no mutable
// state; a Client is safe for concurrent use.
type Client struct {
	target Target
	httpf  httpf.F
	out    io.Writer
	logger *slog.Logger
}

func NewClient(target Target, f httpf.F) *Client {
	return &Client{
		target: target,
		httpf:  f,
		out:    os.Stdout,
		logger: slog.Default(),
	}
}

func (c *Client) WithOutput(w io.Writer) *Client {
	c2 := *c
	c2.out = w
	return &c2
}

func (c *Client) WithLogger(l *slog.Logger) *Client {
	c2 := *c
	c2.logger = l
	return &c2
}

// Put writes one key/value pair. On a 2xx response it prints the success
// message and returns nil. A non-2xx response returns an *Error of kind
// ErrKindRemoteRejection whose message is the formatted API report; every
// other failure (validation, metadata, filesystem, transport) is fatal and
// aborts before or at the network call.
func (c *Client) Put(ctx context.Context, req PutRequest) error {
	if err := ValidateTarget(c.target); err != nil {
		return err
	}
	if req.NamespaceID == "" {
		return errorf(ErrKindValidation, "namespace_id is required to write to the key-value store")
	}

	endpoint, err := c.endpointURL(req)
	if err != nil {
		return err
	}

	r := c.httpf.New().R().SetContext(ctx)

	if req.Metadata != nil {
		valuePart := &resty.MultipartField{
			Param:  "value",
			Reader: strings.NewReader(req.Value),
		}
		if req.IsFile {
			f, err := os.Open(req.Value)
			if err != nil {
				return wrapError(ErrKindFilesystem, err)
			}
			defer f.Close()

			valuePart = &resty.MultipartField{
				Param:       "value",
				FileName:    filepath.Base(req.Value),
				ContentType: "application/octet-stream",
				Reader:      f,
			}
		}

		r.SetMultipartFields(
			valuePart,
			&resty.MultipartField{
				Param:  "metadata",
				Reader: bytes.NewReader(req.Metadata),
			},
		)
	} else {
		// The service treats the value as an opaque byte blob, so the wire
		// payload is exactly the raw bytes with no framing.
		body, err := resolveBody(req)
		if err != nil {
			return err
		}
		defer body.Close()

		r.SetHeader("Content-Type", "application/octet-stream")
		r.SetBody(body)
	}

	c.logger.Debug("writing key",
		slog.String("namespace_id", req.NamespaceID),
		slog.String("key", req.Key),
		slog.Bool("multipart", req.Metadata != nil),
	)

	resp, err := r.Put(endpoint)
	if err != nil {
		return wrapError(ErrKindTransport, err)
	}

	if resp.IsSuccess() {
		color.New(color.FgGreen).Fprintln(c.out, "Success")
		return nil
	}

	apiErrs := parseAPIErrors(resp.Body())
	return &Error{
		Kind:    ErrKindRemoteRejection,
		Message: FormatError(resp.StatusCode(), apiErrs),
		Status:  resp.StatusCode(),
		Errors:  apiErrs,
	}
}

// endpointURL builds the values endpoint for the request's namespace and key,
// appending expiration query parameters only when set. Parse failures surface
// rather than sending a truncated URL.
func (c *Client) endpointURL(req PutRequest) (string, error) {
	endpoint := fmt.Sprintf(
		"%s/accounts/%s/storage/kv/namespaces/%s/values/%s",
		strings.TrimSuffix(c.target.baseURL(), "/"),
		c.target.AccountID,
		req.NamespaceID,
		EncodeKey(req.Key),
	)

	u, err := url.Parse(endpoint)
	if err != nil {
		return "", wrapError(ErrKindValidation, err)
	}

	q := u.Query()
	if req.Expiration != "" {
		q.Set("expiration", req.Expiration)
	}
	if req.ExpirationTTL != "" {
		q.Set("expiration_ttl", req.ExpirationTTL)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}
