package penalty

import "driverhub/internal/pkg/errs"

// Severity reflects how serious a penalty is.
type Severity int

const (
	SeverityUnknown Severity = iota
	SeverityLow
	SeverityMedium
	SeverityHigh
)

func getSeverityStrings() map[Severity]string {
	return map[Severity]string{
		SeverityUnknown: "unknown",
		SeverityLow:     "low",
		SeverityMedium:  "medium",
		SeverityHigh:    "high",
	}
}

// SeverityFromString parses the persisted representation of a severity.
func SeverityFromString(s string) (Severity, error) {
	for severity, str := range getSeverityStrings() {
		if severity != SeverityUnknown && str == s {
			return severity, nil
		}
	}
	return SeverityUnknown, errs.NewValueIsInvalidError("severity")
}

// Validate returns an error for values outside the known severity set.
func (s Severity) Validate() error {
	if _, ok := getSeverityStrings()[s]; !ok || s == SeverityUnknown {
		return errs.NewValueIsInvalidError("severity")
	}
	return nil
}

func (s Severity) String() string {
	if str, ok := getSeverityStrings()[s]; ok {
		return str
	}
	return getSeverityStrings()[SeverityUnknown]
}

// Status is the lifecycle state of the penalty itself, managed by
// back-office staff.
type Status int

const (
	StatusUnknown Status = iota
	StatusPending
	StatusProcessed
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusPending:   "pending",
		StatusProcessed: "processed",
		StatusCancelled: "cancelled",
	}
}

// StatusFromString parses the persisted representation of a penalty status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != StatusUnknown && str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError("status")
}

// Validate returns an error for values outside the known status set.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return getStatusStrings()[StatusUnknown]
}

// AppealStatus tracks the driver's appeal. "none" means no appeal was
// submitted yet; only "none" penalties accept an appeal.
type AppealStatus int

const (
	AppealStatusNone AppealStatus = iota
	AppealStatusPending
	AppealStatusApproved
)

func getAppealStatusStrings() map[AppealStatus]string {
	return map[AppealStatus]string{
		AppealStatusNone:     "none",
		AppealStatusPending:  "pending",
		AppealStatusApproved: "approved",
	}
}

// AppealStatusFromString parses the persisted representation of an appeal
// status.
func AppealStatusFromString(s string) (AppealStatus, error) {
	for status, str := range getAppealStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return AppealStatusNone, errs.NewValueIsInvalidError("appeal status")
}

// Validate returns an error for values outside the known appeal status set.
func (s AppealStatus) Validate() error {
	if _, ok := getAppealStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("appeal status")
	}
	return nil
}

func (s AppealStatus) String() string {
	if str, ok := getAppealStatusStrings()[s]; ok {
		return str
	}
	return getAppealStatusStrings()[AppealStatusNone]
}
