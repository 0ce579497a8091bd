package svn

// ExecResult is the uniform outcome of a single svn invocation. Operations
// never panic or return transport errors; every failure mode is folded into
// this shape.
type ExecResult struct {
	// Success reports whether the process ran to completion with exit
	// code zero.
	Success bool

	// Stdout and Stderr hold the captured output with surrounding
	// whitespace trimmed.
	Stdout string
	Stderr string

	// ExitCode is the process exit code when one exists. It is nil when
	// the process could not be launched, was killed by a signal, or
	// overran the output ceiling.
	ExitCode *int
}

// Info describes a single versioned node as reported by `svn info`.
// Revisions stay strings: that is how svn prints them, and callers mostly
// feed them straight back into other commands.
type Info struct {
	Path              string
	URL               string
	RelativeURL       string
	RepositoryRoot    string
	RepositoryUUID    string
	Revision          string
	NodeKind          string
	Schedule          string
	LastChangedAuthor string
	LastChangedRev    string
	LastChangedDate   string
}

// StatusItem is one row of `svn status` output.
type StatusItem struct {
	Path string

	// Status is the single-character code svn prints in column one of its
	// plain output: A, M, D, R, C, ~, I, ?, !, X or a space for unmodified.
	Status string

	// Revision is the working revision, or "" when svn reported none.
	Revision string

	LastChangedRev    string
	LastChangedAuthor string
	LastChangedDate   string
}

// PathChange is one changed path inside a log entry.
type PathChange struct {
	// Action is svn's single-letter change code: A, M, D or R.
	Action string
	Path   string
	Kind   string
}

// LogEntry is one revision in `svn log` output. Paths is only populated
// when the log was requested verbose.
type LogEntry struct {
	Revision string
	Author   string
	Date     string
	Message  string
	Paths    []PathChange
}
