//go:build !fixcap_nocheck

package fixcap

// checksEnabled reports whether contract violations panic.
// This is the default; build with -tags fixcap_nocheck to compile the
// checks out for release builds that have already been validated.
const checksEnabled = true
