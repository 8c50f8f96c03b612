package locator

import (
	"iter"
	"log/slog"
	"runtime"
)

// Locator discovers Zed installations on the local machine.
type Locator struct {
	strategy strategy
	extra    []string
	logger   *slog.Logger
}

// Option configures a Locator instance.
type Option func(*Locator)

// WithGOOS overrides the operating system whose discovery strategy is used.
// Tests use this to exercise other systems' strategies; unknown values
// select the empty strategy.
func WithGOOS(goos string) Option {
	return func(l *Locator) {
		l.strategy = strategyForGOOS(goos)
	}
}

// WithExtraPaths appends user-configured locations to the candidate list.
func WithExtraPaths(extra []string) Option {
	return func(l *Locator) {
		l.extra = append(l.extra, extra...)
	}
}

// WithLogger sets the logger used for discovery diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Locator) {
		l.logger = logger
	}
}

// New creates a Locator for the current operating system.
func New(opts ...Option) *Locator {
	l := &Locator{
		strategy: strategyForGOOS(runtime.GOOS),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Candidates returns the de-duplicated list of paths worth probing: the
// strategy's well-known locations followed by configured extras, first
// occurrence winning. Order only avoids redundant probing; it implies no
// preference among installations.
func (l *Locator) Candidates() []string {
	raw := append(l.strategy.enumerate(), l.extra...)

	seen := make(map[string]struct{}, len(raw))
	candidates := make([]string, 0, len(raw))
	for _, c := range raw {
		if c == "" {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		candidates = append(candidates, c)
	}
	return candidates
}

// Installations yields one record per candidate that proves to be a Zed
// installation. The sequence is lazy; stopping early skips the remaining
// filesystem probes.
func (l *Locator) Installations() iter.Seq[Installation] {
	return func(yield func(Installation) bool) {
		for _, candidate := range l.Candidates() {
			inst, ok := l.discover(candidate)
			if !ok {
				continue
			}
			if !yield(inst) {
				return
			}
		}
	}
}

// Discover returns all installations found on this machine.
func (l *Locator) Discover() []Installation {
	var installations []Installation
	for inst := range l.Installations() {
		installations = append(installations, inst)
	}
	return installations
}

// discover classifies a single candidate path. The returned record keeps
// the candidate path as given; symlink resolution only feeds metadata
// extraction.
func (l *Locator) discover(path string) (Installation, bool) {
	if path == "" || !l.strategy.isCandidate(path) {
		return Installation{}, false
	}

	real := l.strategy.resolveRealPath(path)
	inst := newInstallation(path, l.strategy.version(real))

	l.logger.Debug("discovered installation",
		"path", inst.Path, "version", inst.Version.String())
	return inst, true
}
