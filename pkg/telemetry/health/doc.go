// Package health provides liveness and readiness endpoints for
// "snapper serve".
//
// Liveness only proves the process is up. Readiness runs the registered
// checks concurrently, each bounded by a timeout; any unhealthy check turns
// the response into 503.
//
// RunState is a check fed by the scheduler: it turns unhealthy while the most
// recent rotation run has failed, so an orchestrator probing /readyz sees a
// failing rotation without having to scrape metrics.
//
//	checker := health.New(5 * time.Second)
//	state := health.NewRunState()
//	checker.RegisterCheck("rotation", state.Check)
//	health.Register(mux, checker, version.Version, version.Commit)
package health
