package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes mws with the first one outermost: Chain(a, b)(h) runs a,
// then b, then h. Nil entries are skipped so optional middleware can be left
// unset.
func Chain(mws ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		for i := range mws {
			if mw := mws[len(mws)-1-i]; mw != nil {
				h = mw(h)
			}
		}
		return h
	}
}
