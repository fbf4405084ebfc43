//go:build fixcap_nocheck

package fixcap

// Checks compiled out. Violating operations become no-ops; the container
// never grows past its capacity regardless.
const checksEnabled = false
