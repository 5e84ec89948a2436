package records

import (
	"net/url"
	"time"
)

// Mode is not a struct and is skipped.
type Mode string

type Job struct {
	Name     string
	Steps    []string `builder:"each = \"Step\""`
	Timeout  *time.Duration
	Mode     Mode
	Endpoint *url.URL
	Labels   map[string]time.Time
	Retries  int
	payload  []byte
	Extra    any
}

type Broken struct {
	Args []string `builder:"each = 5"`
}

type Embeds struct {
	Job
	Name string
}

type Box[T any] struct {
	Value T
}

type hidden struct {
	X int
}

var _ = hidden{}
