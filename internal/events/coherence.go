package events

// ApplyStatusSeverity sets Status and Severity together so they always
// satisfy the invariant in spec §3: Error events carry error/critical
// severity, Warning events carry warning severity, Pass events carry info
// severity. This is the single place that decides the pairing; leaf
// parsers should call it instead of setting the two fields independently.
func ApplyStatusSeverity(e *ValidationEvent, status EventStatus, severity string) {
	e.Status = status
	switch status {
	case StatusWarning:
		e.Severity = SeverityWarning.String()
	case StatusPass:
		e.Severity = SeverityInfo.String()
	case StatusError:
		if SeverityLevelFromString(severity) < SeverityError {
			severity = SeverityError.String()
		}
		e.Severity = severity
	default:
		if severity == "" {
			severity = SeverityInfo.String()
		}
		e.Severity = severity
	}
}
