package diag

// Note attaches secondary context to a diagnostic.
type Note struct {
	Subject string
	Msg     string
}

// Diagnostic is one reported condition. Subject names the manifest entry the
// condition was found in (e.g. "aliases.MyInt", "pair.fetch.second").
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Subject  string
	Notes    []Note
}

// New builds a diagnostic without notes.
func New(sev Severity, code Code, subject, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Subject:  subject,
		Message:  msg,
	}
}

// NewError is a shortcut for SevError diagnostics.
func NewError(code Code, subject, msg string) Diagnostic {
	return New(SevError, code, subject, msg)
}

// WithNote returns a copy carrying one more note.
func (d Diagnostic) WithNote(subject, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Subject: subject, Msg: msg})
	return d
}
