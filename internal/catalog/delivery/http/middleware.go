package http

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// TracingMiddleware wraps a handler with an OpenTelemetry server span
func TracingMiddleware(operationName string, next http.HandlerFunc) http.HandlerFunc {
	handler := otelhttp.NewHandler(next, operationName)
	return func(w http.ResponseWriter, r *http.Request) {
		handler.ServeHTTP(w, r)
	}
}
