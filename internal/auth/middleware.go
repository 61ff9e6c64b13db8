package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/stastashpulatov/clinic-bot/auth")

// MetricsRecorder interface for recording auth metrics
type MetricsRecorder interface {
	RecordAuthFailure(ctx context.Context, reason string)
}

// Middleware checks the shared bot secret on every request. The key is
// accepted from the x-api-key header or the api_key query parameter (the
// bot duplicates it in GET params).
func Middleware(apiKey string) func(http.Handler) http.Handler {
	return MiddlewareWithMetrics(apiKey, nil)
}

// MiddlewareWithMetrics checks the shared bot secret with metrics recording
func MiddlewareWithMetrics(apiKey string, metrics MetricsRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			ctx, span := tracer.Start(ctx, "auth.Middleware",
				trace.WithSpanKind(trace.SpanKindInternal),
			)
			defer span.End()

			key := r.Header.Get("x-api-key")
			if key == "" {
				key = r.URL.Query().Get("api_key")
			}

			if key == "" {
				span.SetStatus(codes.Error, "missing api key")
				span.SetAttributes(attribute.String("error.type", "missing_api_key"))
				if metrics != nil {
					metrics.RecordAuthFailure(ctx, "missing_api_key")
				}
				respondForbidden(w)
				return
			}

			if key != apiKey {
				log.Printf("[ERROR] API key mismatch from %s", r.RemoteAddr)
				span.SetStatus(codes.Error, "invalid api key")
				span.SetAttributes(attribute.String("error.type", "invalid_api_key"))
				if metrics != nil {
					metrics.RecordAuthFailure(ctx, "invalid_api_key")
				}
				respondForbidden(w)
				return
			}

			span.SetStatus(codes.Ok, "authentication successful")
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func respondForbidden(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   "forbidden",
		"message": "Invalid API Key",
	})
}
