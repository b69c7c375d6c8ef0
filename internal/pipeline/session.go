package pipeline

import "certgen/internal"

// Session carries the submitter state for one intake session: created
// empty, populated on a successful submit, read by the generation step.
// It is always passed explicitly, never held in a global.
type Session struct {
	Submitted bool
	RemoteOK  bool
	Record    internal.SubmissionRecord
}

func NewSession() *Session {
	return &Session{}
}

func (s *Session) MarkSubmitted(record internal.SubmissionRecord, remoteOK bool) {
	s.Submitted = true
	s.RemoteOK = remoteOK
	s.Record = record
}
