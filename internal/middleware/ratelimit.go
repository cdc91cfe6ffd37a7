package middleware

import (
	"net"
	"net/http"

	"github.com/gmarcondes/papelaria-fulfillment/pkg/keyedlimit"
	"github.com/gmarcondes/papelaria-fulfillment/pkg/utils"
)

// RateLimit throttles requests per client IP and path using the keyed
// attempt store.
func RateLimit(store keyedlimit.Store) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientKey(r)
			if store.IsBlocked(key) {
				utils.WriteError(w, "too many requests", http.StatusTooManyRequests)
				return
			}
			store.Record(key)
			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return host + ":" + r.URL.Path
}
