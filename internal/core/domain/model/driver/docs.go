// Package driver contains the Driver aggregate and the Session entity.
//
// A Driver is the authenticated user of the app, identified internally by a
// UUID and externally by the opaque identity string the auth provider issues.
// The IsActive flag tracks on-duty state and is toggled by shifts.
//
// A Session is one work shift: it opens with a start time and no end time,
// and is closed exactly once. At most one session per driver may be open at
// any moment. Shift time reporting sums session overlap with a time window
// via ActiveWithin, treating open sessions as running until now.
package driver
