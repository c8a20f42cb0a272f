// Package tracing provides OpenTelemetry tracing integration.
//
// Features:
//   - Automatic HTTP request tracing via Middleware
//   - W3C trace context propagation across service boundaries
//   - Trace ID exposure in the X-Trace-Id response header
//
// Example usage:
//
//	func main() {
//	    shutdown := tracing.InitTracer("newsroom-cms")
//	    defer shutdown(context.Background())
//	}
//
//	func processRequest(ctx context.Context) {
//	    ctx, span := tracing.GetTracer().Start(ctx, "process-request")
//	    defer span.End()
//	    // ...
//	}
package tracing
