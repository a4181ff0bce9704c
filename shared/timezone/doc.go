// Package timezone provides timezone utilities for the application.
//
// The timezone is configured via the APP_TIMEZONE environment variable and is
// automatically initialized when the package is imported. Use standard IANA
// timezone database names ("UTC", "Europe/London", "America/New_York") for
// reliable cross-platform compatibility.
//
// Usage:
//
//	now := timezone.Now()                   // current time in app timezone
//	appTime := timezone.ToAppTime(t)        // convert any time to app timezone
//	s := timezone.Format(t, time.RFC3339)   // format in app timezone
//	t, err := timezone.Parse("2006-01-02", "2024-01-01")
package timezone
