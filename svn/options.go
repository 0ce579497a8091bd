package svn

// Options carries the configuration shared by every svn operation. All
// fields are optional; zero values mean "not set". Per-call options are
// shallow-merged over the client defaults field by field, with per-call
// values winning. The pointer fields distinguish "explicitly false" from
// "inherit the default".
type Options struct {
	// Username and Password are passed both as --username/--password flags
	// and through the credential environment variables.
	Username string
	Password string

	// Repo is the base repository location. When set, relative targets are
	// resolved against it before escaping.
	Repo string

	// NonInteractive defaults to true: svn must never hang waiting for a
	// prompt when driven programmatically. Set to an explicit false to
	// allow interactive authentication.
	NonInteractive *bool

	// TrustServerCert accepts unknown certificate authorities on https
	// URLs. Only honored by svn in non-interactive mode.
	TrustServerCert *bool

	// NoAuthCache prevents svn from caching credentials on disk.
	NoAuthCache *bool
}

// merged layers per-call options over defaults, field by field.
func merged(defaults, per Options) Options {
	out := defaults
	if per.Username != "" {
		out.Username = per.Username
	}
	if per.Password != "" {
		out.Password = per.Password
	}
	if per.Repo != "" {
		out.Repo = per.Repo
	}
	if per.NonInteractive != nil {
		out.NonInteractive = per.NonInteractive
	}
	if per.TrustServerCert != nil {
		out.TrustServerCert = per.TrustServerCert
	}
	if per.NoAuthCache != nil {
		out.NoAuthCache = per.NoAuthCache
	}
	return out
}

func (o Options) nonInteractive() bool {
	return o.NonInteractive == nil || *o.NonInteractive
}

func (o Options) trustServerCert() bool {
	return o.TrustServerCert != nil && *o.TrustServerCert
}

func (o Options) noAuthCache() bool {
	return o.NoAuthCache != nil && *o.NoAuthCache
}

// Depth limits how far an operation descends into a directory tree,
// mirroring svn's --depth argument.
type Depth string

// Depth values understood by svn.
const (
	DepthEmpty      Depth = "empty"
	DepthFiles      Depth = "files"
	DepthImmediates Depth = "immediates"
	DepthInfinity   Depth = "infinity"
)
