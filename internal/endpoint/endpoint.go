// Package endpoint derives the service roots from the host the client runs on.
package endpoint

import (
	"net/url"
	"strings"
)

const (
	localHost = "localhost"
	localBase = "http://localhost:5000"
)

// Endpoints holds the two roots the client talks to. It is computed once at
// startup and never changes afterwards.
type Endpoints struct {
	Health string // liveness probe
	API    string // collection API root
}

// Resolve returns fixed local addresses on a development host and paths
// relative to the serving origin everywhere else.
func Resolve(host string) Endpoints {
	if strings.EqualFold(strings.TrimSpace(host), localHost) {
		return Endpoints{Health: localBase + "/health", API: localBase + "/api"}
	}
	return Endpoints{Health: "/health", API: "/api"}
}

// Tasks is the task collection address.
func (e Endpoints) Tasks() string { return e.API + "/todos" }

// Task addresses one record of the collection.
func (e Endpoints) Task(id string) string { return e.Tasks() + "/" + url.PathEscape(id) }

// Local reports whether the roots are absolute local development addresses.
func (e Endpoints) Local() bool { return strings.HasPrefix(e.API, localBase) }
