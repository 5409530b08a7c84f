// Package clubstate is the in-process mirror of the remote platform's
// community graph: clubs, channels, members, roles and voice states, kept
// current by a stream of full and partial gateway payloads, plus the engine
// that resolves a member's effective permission mask at club or channel scope.
//
// The package performs no I/O and takes no locks: it is designed to be
// mutated from one ordered stream of payloads. Hosts that dispatch payload
// handling on parallel workers must serialize merges externally (the
// clubcache module does this with a store-level mutex).
package clubstate
