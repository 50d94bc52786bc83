// Package httpf builds the authenticated HTTP clients used to talk to the
// key-value API. Consumers depend on the F interface so that tests can swap
// in a client with an intercepted transport.
package httpf

import (
	"github.com/go-resty/resty/v2"
)

type F interface {
	New() *resty.Client
}
