package internal

type DatasetKind string

const (
	DatasetXLSX DatasetKind = "xlsx"
	DatasetCSV  DatasetKind = "csv"
)

// ParticipantRow is one raw row of the input dataset. RowIndex is the
// 1-based position in source order and survives normalization so that
// skipped rows leave gaps in the output numbering instead of shifting it.
type ParticipantRow struct {
	RowIndex       int
	RawName        string
	RawAffiliation *string
}

type NormalizedParticipant struct {
	RowIndex    int
	Name        string
	Affiliation string
}

type RenderedCertificate struct {
	RowIndex int
	Filename string
	Bytes    []byte
}

// RowError records a single failed row. Name is "Unknown" when the
// failure happened before a usable name was read.
type RowError struct {
	RowIndex int
	Name     string
	Message  string
}

type BatchResult struct {
	SuccessCount int
	FailCount    int
	RowErrors    []RowError
	ArchiveBytes []byte
}

func (r BatchResult) Attempted() int {
	return r.SuccessCount + r.FailCount
}

// SubmissionRecord holds the submitter details stored in the remote
// table, one record per session. Timestamp is UTC ISO-8601.
type SubmissionRecord struct {
	Name          string `json:"name"`
	SchoolName    string `json:"school_name"`
	SchoolNumber  string `json:"school_number"`
	ContactNumber string `json:"contact_number"`
	ICNumber      string `json:"ic_number"`
	Timestamp     string `json:"timestamp"`
}

type SubmissionRow struct {
	ID int
	SubmissionRecord
	RemoteOK  bool
	CreatedAt string
}

type RunRow struct {
	ID           int
	TraceID      string
	SuccessCount int
	FailCount    int
	ArchiveName  string
	CreatedAt    string
}
