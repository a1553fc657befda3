// Package internal holds logging and message plumbing shared by the
// navmanager packages. Nothing here is part of the public API.
package internal
