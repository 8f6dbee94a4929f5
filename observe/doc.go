// Package observe provides observability primitives for credential
// resolution.
//
// It is a pure instrumentation library: no resolution logic, no I/O beyond
// exporter setup. Consumers wrap their resolver and store with the
// decorators here and wire an Observer at startup. Secret names appear in
// telemetry; secret values never do.
package observe
