// Package clients holds one fetcher per fleet API resource. Each method is exactly one HTTP call;
// errors come back unmodified from the adapter.
package clients

import (
	"context"
	"net/url"
	"strconv"
)

// API is the adapter surface fetchers need. *apiclient.Client satisfies it.
type API interface {
	Do(ctx context.Context, method, path string, in, out interface{}) error
}

func idPath(prefix string, id int64) string {
	return prefix + "/" + strconv.FormatInt(id, 10)
}

func segmentPath(prefix, segment string) string {
	return prefix + "/" + url.PathEscape(segment)
}
