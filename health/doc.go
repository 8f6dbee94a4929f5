// Package health provides health checking primitives for credential-backed
// services.
//
// This package implements a generic health checking framework with checkers
// for the credential subsystem: CredentialChecker resolves a set of secret
// requirements through the store, and MountChecker inspects the file mount
// secrets are served from. Results from multiple checkers aggregate into a
// single status exposed via HTTP endpoints.
//
// # Core Concepts
//
// A Checker is any component that can report its health status. The Status
// type represents the health state: Healthy, Degraded, or Unhealthy.
//
// # Basic Usage
//
//	// Probe the credentials the service needs at startup
//	credCheck := health.NewCredentialChecker(store, []secret.Requirement{
//	    {Name: "JWT_SECRET", Required: true, MinLength: 32},
//	    {Name: "SMTP_PASSWORD"},
//	})
//
//	// Check health
//	result := credCheck.Check(ctx)
//	if result.Status == health.StatusUnhealthy {
//	    log.Printf("Credentials not ready: %s", result.Message)
//	}
//
// A passing credential check leaves every listed secret resolved and
// cached, so the first authenticated request pays no resolution cost.
// Results name secrets; they never contain secret values.
//
// # Aggregating Health Checks
//
// Use Aggregator to combine multiple health checks into a single composite check:
//
//	agg := health.NewAggregator()
//	agg.Register("credentials", credChecker)
//	agg.Register("mount", mountChecker)
//
//	// Check all components
//	results := agg.CheckAll(ctx)
//	overall := agg.OverallStatus(results)
//
// # HTTP Endpoints
//
// The package provides HTTP handlers for common health check patterns:
//
//	// Liveness probe (for Kubernetes)
//	http.Handle("/healthz", health.LivenessHandler())
//
//	// Readiness probe with component checks
//	http.Handle("/readyz", health.ReadinessHandler(aggregator))
//
//	// Detailed health status
//	http.Handle("/health", health.DetailedHandler(aggregator))
package health
