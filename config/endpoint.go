package config

import (
	"errors"
	"fmt"
)

var (
	ErrMissingEndpoint = errors.New("network endpoint is not configured")
	ErrEmbeddedNetwork = errors.New("network runs in process and has no endpoint")
)

// Endpoint describes how a network is reached: either the embedded simulator
// or a remote URL. A remote URL may be absent, in which case the network is
// unusable until one is provided.
type Endpoint struct {
	embedded bool
	url      string
}

func EmbeddedEndpoint() Endpoint {
	return Endpoint{embedded: true}
}

// RemoteEndpoint returns a remote endpoint. An empty url is treated as absent.
func RemoteEndpoint(url string) Endpoint {
	return Endpoint{url: url}
}

func (e Endpoint) Embedded() bool {
	return e.embedded
}

// URL returns the remote URL and whether one is set.
func (e Endpoint) URL() (string, bool) {
	return e.url, e.url != ""
}

// Require returns the remote URL or an error if the endpoint cannot be dialed.
func (e Endpoint) Require() (string, error) {
	if e.embedded {
		return "", ErrEmbeddedNetwork
	}
	if e.url == "" {
		return "", ErrMissingEndpoint
	}
	return e.url, nil
}

func (e Endpoint) String() string {
	switch {
	case e.embedded:
		return "embedded"
	case e.url == "":
		return "<unset>"
	default:
		return fmt.Sprintf("remote %s", e.url)
	}
}
