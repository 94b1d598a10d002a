// Package cli implements the finsync command line: connect stores a session,
// request issues an authenticated request, status shows the stored session and
// disconnect removes it.
package cli
