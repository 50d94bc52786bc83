package httpf

import (
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const userAgent = "kvctl"

// Credentials are the auth material attached to every request: either an API
// token (preferred) or the legacy email plus API key pair.
type Credentials struct {
	APIToken string
	Email    string
	APIKey   string
}

type clientFactory struct {
	creds Credentials
}

func CreateFactory(creds Credentials) F {
	return &clientFactory{
		creds: creds,
	}
}

func (f *clientFactory) New() *resty.Client {
	c := resty.New().
		SetHeader("User-Agent", userAgent)

	if f.creds.APIToken != "" {
		c.SetAuthToken(f.creds.APIToken)
	} else if f.creds.Email != "" || f.creds.APIKey != "" {
		c.SetHeader("X-Auth-Email", f.creds.Email)
		c.SetHeader("X-Auth-Key", f.creds.APIKey)
	}

	c.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		r.SetHeader("X-Request-Id", uuid.NewString())
		return nil
	})

	return c
}

var _ F = &clientFactory{}

// Static wraps an existing client in an F. Lets tests inject a client whose
// transport is already intercepted.
func Static(c *resty.Client) F {
	return staticFactory{c: c}
}

type staticFactory struct {
	c *resty.Client
}

func (s staticFactory) New() *resty.Client {
	return s.c
}
