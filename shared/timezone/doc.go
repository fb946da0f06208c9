// Package timezone centralizes time handling in the configured application
// timezone so stay dates and audit timestamps are consistent across the
// dashboard and the public booking API.
package timezone
