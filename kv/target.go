package kv

import (
	"net/url"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// DefaultBaseURL is the production API root. Overridable through Target for
// alternate deployments and tests.
const DefaultBaseURL = "https://api.cloudflare.com/client/v4"

// Target identifies the account the put operates against.
type Target struct {
	AccountID string
	BaseURL   string
}

func (t Target) baseURL() string {
	if t.BaseURL != "" {
		return t.BaseURL
	}
	return DefaultBaseURL
}

// ValidateTarget checks that the target carries everything the key-value API
// requires, collecting all missing fields rather than stopping at the first.
func ValidateTarget(t Target) error {
	var result *multierror.Error

	if t.AccountID == "" {
		result = multierror.Append(result, errors.New("account_id is required to use the key-value store"))
	}
	if _, err := url.Parse(t.baseURL()); err != nil {
		result = multierror.Append(result, errors.Wrap(err, "invalid api base url"))
	}

	if err := result.ErrorOrNil(); err != nil {
		return wrapError(ErrKindValidation, err)
	}

	return nil
}

// EncodeKey escapes a key name for use as a URL path segment.
func EncodeKey(key string) string {
	return url.PathEscape(key)
}
