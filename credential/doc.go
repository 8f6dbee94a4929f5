// Package credential memoizes secret resolution for the process lifetime.
//
// A Store resolves each secret at most once: the first caller triggers
// resolution through the configured Resolver and every later caller is
// served from memory. Failed resolutions are never cached, so a secret
// mounted after startup is picked up by the next attempt. Concurrent
// first use of a name is collapsed into a single resolution without
// blocking other names.
package credential
