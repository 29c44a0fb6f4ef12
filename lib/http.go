package lib

import "net/http"

// HttpClient lets HTTP collaborators be mocked in tests.
type HttpClient interface {
	Do(req *http.Request) (*http.Response, error)
}
