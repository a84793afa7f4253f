package router

import (
	"net/http"
	"strings"

	"github.com/canvasslabs/canvassd/internal/pkg/instrument"
	"github.com/canvasslabs/canvassd/internal/pkg/uid"
)

const (
	// HeaderCorrelationID tracks a request across service and log
	// boundaries.
	HeaderCorrelationID = "X-Correlation-ID"
	// HeaderRequestID is honored as a fallback, some proxies use it.
	HeaderRequestID = "X-Request-ID"
)

// normalizeCID rejects header-injection attempts and bounds the length
// of client-supplied IDs.
func normalizeCID(v string) string {
	if strings.ContainsAny(v, "\r\n") {
		return ""
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	const maxLen = 128
	if len(v) > maxLen {
		v = v[:maxLen]
	}
	return v
}

// middlewareCorrelationID adopts the caller's correlation ID or mints
// one, echoes it in the response, and stores it on the context for
// logging.
func middlewareCorrelationID(uid uid.StringID) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cid := normalizeCID(r.Header.Get(HeaderCorrelationID))
			if cid == "" {
				cid = normalizeCID(r.Header.Get(HeaderRequestID))
			}
			if cid == "" && uid != nil {
				cid = uid.Generate()
			}

			if cid != "" {
				w.Header().Set(HeaderCorrelationID, cid)
				r = r.WithContext(instrument.SetCorrelationID(r.Context(), cid))
			}

			next.ServeHTTP(w, r)
		})
	}
}
