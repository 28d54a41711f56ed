// Package penalty contains the Penalty aggregate.
//
// A penalty is a disciplinary charge issued against a driver by back-office
// staff. The driver-facing app is read-mostly here: the only mutation it
// performs is submitting an appeal, which is permitted once, requires the
// penalty to be appealable, requires a reason, and moves the appeal status
// from "none" to "pending". Reviewing appeals happens outside this app.
package penalty
