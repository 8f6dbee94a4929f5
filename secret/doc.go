// Package secret resolves named secret values from prioritized sources.
//
// A secret is requested by name together with its Requirement (whether it
// must exist, how long it must be). Sources are consulted in order; the
// default chain prefers a file mounted under /run/secrets over a process
// environment variable of the same name. Values are trimmed of surrounding
// whitespace, so mounted files may carry a trailing newline.
//
// Resolution fails closed: a required secret that cannot be found yields
// *MissingError, and a value below its minimum length yields *WeakError,
// never a truncated or padded value. Secret values are never logged and
// never embedded in errors; diagnostics carry only the secret name and the
// source name.
package secret
