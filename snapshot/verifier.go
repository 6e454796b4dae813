package snapshot

import (
	"fmt"
	"image"
	"path"
	"slices"
	"testing"
	"time"

	"github.com/gogpu/ggsnap"
	"github.com/gogpu/ggsnap/ui"
)

// Renderer captures a view tree into an image.
type Renderer interface {
	Capture(v *ui.View) (image.Image, error)
}

// RunLoop runs already-scheduled UI work.
type RunLoop interface {
	// DrainPending runs ready work without waiting for new work and
	// reports whether it settled within budget.
	DrainPending(budget time.Duration) bool
}

// Verifier records and verifies snapshots for one test.
type Verifier struct {
	name string
	cfg  Config
	err  error

	layout     Layouter
	renderer   Renderer
	store      Store
	comparator Comparator
	runLoop    RunLoop
	host       Host
	suffixes   *SuffixCache
	record     bool
}

// Option configures a Verifier.
type Option func(*Verifier)

// WithConfig replaces the process Environment configuration. An invalid
// cfg makes every verification end with StatusConfigError.
func WithConfig(cfg Config) Option {
	return func(v *Verifier) {
		v.cfg = cfg
		v.err = v.cfg.validate()
	}
}

// WithLayout sets the layout collaborator. Defaults to ui.Layout.
func WithLayout(l Layouter) Option {
	return func(v *Verifier) { v.layout = l }
}

// WithRenderer sets the capture collaborator. Defaults to a ui.Renderer at
// the device scale.
func WithRenderer(r Renderer) Option {
	return func(v *Verifier) { v.renderer = r }
}

// WithStore sets the reference store. Defaults to a CachedStore over
// FileStore.
func WithStore(s Store) Option {
	return func(v *Verifier) { v.store = s }
}

// WithComparator sets the image comparator. Defaults to PixelComparator.
func WithComparator(c Comparator) Option {
	return func(v *Verifier) { v.comparator = c }
}

// WithRunLoop sets the run loop drained before and after composing.
// Defaults to ui.MainLoop.
func WithRunLoop(l RunLoop) Option {
	return func(v *Verifier) { v.runLoop = l }
}

// WithHost sets the declarative UI host used by DeclarativeSubject.
func WithHost(h Host) Option {
	return func(v *Verifier) { v.host = h }
}

// WithSuffixCache replaces the process-wide suffix cache.
func WithSuffixCache(c *SuffixCache) Option {
	return func(v *Verifier) { v.suffixes = c }
}

// WithRecordMode sets the verifier's own record flag.
func WithRecordMode(record bool) Option {
	return func(v *Verifier) { v.record = record }
}

// New returns a verifier for the test called name. References are keyed by
// the name's '/'-separated segments.
func New(name string, opts ...Option) *Verifier {
	v := &Verifier{
		name:       name,
		layout:     ui.Layout{},
		store:      NewCachedStore(FileStore{}, 0),
		comparator: PixelComparator{},
		runLoop:    ui.MainLoop(),
		suffixes:   ProcessSuffixes(),
	}
	v.cfg, v.err = Environment()
	for _, opt := range opts {
		opt(v)
	}
	v.cfg.Suffixes = slices.Clone(v.cfg.Suffixes)
	if v.renderer == nil {
		v.renderer = ui.Renderer{Scale: v.cfg.Device.Scale}
	}
	return v
}

// NewForTest returns a verifier named after tb.
func NewForTest(tb testing.TB, opts ...Option) *Verifier {
	return New(tb.Name(), opts...)
}

// Config returns the verifier's configuration.
func (v *Verifier) Config() Config {
	return v.cfg
}

// RecordMode reports whether verifications record instead of compare.
// The process override forces it to true.
func (v *Verifier) RecordMode() bool {
	return v.record || v.cfg.RecordOverride
}

// SetRecordMode sets the verifier's own record flag.
func (v *Verifier) SetRecordMode(record bool) {
	v.record = record
}

// Suffixes returns the reference suffixes in search order: the device's
// width class first, then the rest in configured order.
func (v *Verifier) Suffixes() []string {
	return v.suffixes.Get(func() []string {
		return OrderSuffixes(v.cfg.Suffixes, v.cfg.Device.ShortEdge())
	})
}

// VerifyOption adjusts a single verification.
type VerifyOption func(*verifyOptions)

type verifyOptions struct {
	background ggsnap.RGBA
	tolerance  float64
}

// WithBackground sets the fill behind the subject. Defaults to white.
func WithBackground(c ggsnap.RGBA) VerifyOption {
	return func(o *verifyOptions) { o.background = c }
}

// WithTolerance sets the fraction of pixels allowed to differ.
func WithTolerance(t float64) VerifyOption {
	return func(o *verifyOptions) { o.tolerance = t }
}

// Verify sizes subject according to fit, places it in a decorated
// container and either records the container as the reference for
// identifier or compares it with the reference found under the suffixed
// directories. The subject is always returned to its original place.
func (v *Verifier) Verify(subject Subject, fit Fit, identifier string, opts ...VerifyOption) Outcome {
	o := verifyOptions{background: ggsnap.White, tolerance: v.cfg.Tolerance}
	for _, opt := range opts {
		opt(&o)
	}

	constraint := Resolve(fit, v.cfg.Device)
	out := Outcome{Identifier: Identifier(identifier, constraint), Size: constraint}
	if v.err != nil {
		return v.finish(out, v.err)
	}
	if v.cfg.ReferenceDir == "" {
		return v.finish(out, ErrNoReferenceDir)
	}
	out.Key = referenceKey(v.name, out.Identifier, v.cfg.Device.Scale)

	v.drain()

	view, size, err := subject.materialize(v.layout, v.host, constraint)
	if err != nil {
		return v.finish(out, err)
	}
	ggsnap.Logger().Debug("snapshot: sized subject",
		"subject", subject.String(), "fit", fmt.Sprint(fit), "constraint", constraint.String(), "size", size.String())

	comp, err := Compose(view, size, o.background, v.layout, v.cfg.Device.Scale)
	if err != nil {
		return v.finish(out, err)
	}
	defer comp.Release()

	v.drain()
	v.layout.ForceLayout(comp.Container)

	img, err := v.renderer.Capture(comp.Container)
	if err != nil {
		return v.finish(out, fmt.Errorf("snapshot: capture: %w", err))
	}

	if v.RecordMode() {
		return v.recordReference(out, img)
	}
	return v.compare(out, img, o.tolerance)
}

// VerifyFits verifies subject once per fit.
func (v *Verifier) VerifyFits(subject Subject, fits []Fit, identifier string, opts ...VerifyOption) []Outcome {
	outs := make([]Outcome, 0, len(fits))
	for _, f := range fits {
		outs = append(outs, v.Verify(subject, f, identifier, opts...))
	}
	return outs
}

func (v *Verifier) recordReference(out Outcome, img image.Image) Outcome {
	suffixes := v.Suffixes()
	if len(suffixes) == 0 {
		return v.finish(out, fmt.Errorf("%w: no reference suffixes", ErrConfig))
	}
	out.Directory = SuffixDir(v.cfg.ReferenceDir, suffixes[0])
	if err := v.store.Save(out.Directory, out.Key, img); err != nil {
		return v.finish(out, err)
	}
	ggsnap.Logger().Info("snapshot: recorded reference", "dir", out.Directory, "key", out.Key)
	return v.finish(out, fmt.Errorf("%w %s in %s; turn record mode off and re-run to validate",
		ErrRecorded, out.Key, out.Directory))
}

func (v *Verifier) compare(out Outcome, img image.Image, tolerance float64) Outcome {
	suffixes := v.Suffixes()
	dir, ok := ResolveDirectory(v.store, v.cfg.ReferenceDir, suffixes, out.Key)
	if !ok {
		return v.finish(out, fmt.Errorf("%w for %s under %s%v; record it first",
			ErrNoReference, out.Key, v.cfg.ReferenceDir, suffixes))
	}
	out.Directory = dir
	ggsnap.Logger().Debug("snapshot: resolved reference", "dir", dir, "key", out.Key)

	ref, err := v.store.Load(dir, out.Key)
	if err != nil {
		return v.finish(out, err)
	}
	diff, err := v.comparator.Compare(ref, img, tolerance)
	if err != nil {
		return v.finish(out, err)
	}
	out.Diff = &diff
	if diff.Match {
		out.Status = StatusPassed
		return out
	}

	v.saveFailure(out.Key, ref, img, diff)
	return v.finish(out, fmt.Errorf("%w in %s: %s", ErrMismatch, dir, diff))
}

// saveFailure writes the reference, the capture and the diff image to the
// failure directory. Errors are logged; the comparison has failed already.
func (v *Verifier) saveFailure(key string, ref, actual image.Image, diff Diff) {
	if v.cfg.FailureDir == "" {
		return
	}
	dir, base := path.Split(key)
	images := []struct {
		prefix string
		img    image.Image
	}{
		{"reference_", ref},
		{"failed_", actual},
		{"diff_", diff.Image},
	}
	for _, it := range images {
		if it.img == nil {
			continue
		}
		if err := v.store.Save(v.cfg.FailureDir, dir+it.prefix+base, it.img); err != nil {
			ggsnap.Logger().Warn("snapshot: save failure image", "key", key, "err", err)
		}
	}
	ggsnap.Logger().Info("snapshot: saved failure images", "dir", v.cfg.FailureDir, "key", key)
}

// finish sets the outcome's status from err, which may be ErrRecorded.
func (v *Verifier) finish(out Outcome, err error) Outcome {
	out.Status = outcomeFor(err)
	out.Err = err
	return out
}

// drain settles pending UI work. Running out of budget is not an error.
func (v *Verifier) drain() {
	budget := v.cfg.DrainBudget.Duration
	if budget <= 0 {
		budget = DefaultDrainBudget
	}
	if !v.runLoop.DrainPending(budget) {
		ggsnap.Logger().Warn("snapshot: pending UI work did not settle", "budget", budget, "test", v.name)
	}
}

// Expect verifies subject and reports a non-passing outcome to tb.
func (v *Verifier) Expect(tb testing.TB, subject Subject, fit Fit, identifier string, opts ...VerifyOption) Outcome {
	tb.Helper()
	out := v.Verify(subject, fit, identifier, opts...)
	Report(tb, out)
	return out
}

// Report fails tb unless out passed. Usage errors stop the test.
func Report(tb testing.TB, out Outcome) {
	tb.Helper()
	switch out.Status {
	case StatusPassed:
	case StatusUsageError:
		tb.Fatal(out.Message())
	default:
		tb.Error(out.Message())
	}
}
