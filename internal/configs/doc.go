// Package configs persists purr's one piece of cross-invocation state: the
// preferred dialect, stored as TOML in the purr home directory alongside a
// UUID generated on first run.
package configs
