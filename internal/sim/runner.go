package sim

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/go-theft-auto/gridscroll"
	"github.com/go-theft-auto/gridscroll/surface"
)

// Frame is the region state recorded after one event.
type Frame struct {
	Event         string           `yaml:"event"`
	Scroll        float64          `yaml:"scroll"`
	Total         float64          `yaml:"total"`
	Range         gridscroll.Range `yaml:"range"`
	ContentOffset float64          `yaml:"content_offset"`
	FirstVisible  int              `yaml:"first_visible"`
	Error         string           `yaml:"error,omitempty"`
}

// Report is the outcome of one script run.
type Report struct {
	RunID  string  `yaml:"run_id"`
	Script string  `yaml:"script"`
	Frames []Frame `yaml:"frames"`
}

// Last returns the final frame, or the zero Frame for an empty report.
func (r *Report) Last() Frame {
	if len(r.Frames) == 0 {
		return Frame{}
	}
	return r.Frames[len(r.Frames)-1]
}

// WriteYAML encodes the report.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return enc.Close()
}

// Runner executes scripts. The zero value uses the gridscroll package logger
// and the default layout for scripts that do not set one.
type Runner struct {
	Logger *zap.Logger
	Layout gridscroll.Layout
	// Limit caps concurrent scripts in RunAll; zero or less means no limit.
	Limit int
}

func (r *Runner) logger() *zap.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return gridscroll.Logger()
}

func (r *Runner) layout(s *Script) gridscroll.Layout {
	if s.Layout != nil {
		return *s.Layout
	}
	if r.Layout == (gridscroll.Layout{}) {
		return gridscroll.DefaultLayout()
	}
	return r.Layout
}

// Run replays s on a fresh strategy and viewport. The first frame records the
// state right after attaching. Rejected layout updates are recorded on the
// frame and do not stop the run; a cancelled ctx does.
func (r *Runner) Run(ctx context.Context, s *Script) (*Report, error) {
	log := r.logger().With(zap.String("script", s.Name))

	strategy, err := gridscroll.New(gridscroll.WithLayout(r.layout(s)), gridscroll.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("script %q: %w", s.Name, err)
	}
	vp := surface.NewViewport(s.Viewport, s.Items)
	vp.Bind(strategy)
	defer vp.Unbind()

	rep := &Report{
		RunID:  uuid.NewString(),
		Script: s.Name,
		Frames: make([]Frame, 0, len(s.Events)+1),
	}
	rep.Frames = append(rep.Frames, capture("attach", vp, strategy, nil))

	for i, e := range s.Events {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		applyErr := apply(vp, strategy, e)
		if applyErr != nil {
			log.Warn("event rejected", zap.Int("event", i), zap.String("kind", e.Kind()), zap.Error(applyErr))
		}
		rep.Frames = append(rep.Frames, capture(e.Kind(), vp, strategy, applyErr))
	}

	last := rep.Last()
	log.Info("script finished",
		zap.String("runID", rep.RunID),
		zap.Int("events", len(s.Events)),
		zap.Int("start", last.Range.Start),
		zap.Int("end", last.Range.End))
	return rep, nil
}

// RunAll runs scripts concurrently, each on its own strategy. Reports are
// returned in script order. The first failure cancels the remaining runs.
func (r *Runner) RunAll(ctx context.Context, scripts []*Script) ([]*Report, error) {
	reports := make([]*Report, len(scripts))
	g, gctx := errgroup.WithContext(ctx)
	if r.Limit > 0 {
		g.SetLimit(r.Limit)
	}
	for i, s := range scripts {
		g.Go(func() error {
			rep, err := r.Run(gctx, s)
			if err != nil {
				return err
			}
			reports[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func apply(vp *surface.Viewport, s *gridscroll.Strategy, e Event) error {
	switch {
	case e.Scroll != nil:
		vp.SetScrollOffset(*e.Scroll)
	case e.ScrollBy != nil:
		vp.ScrollBy(*e.ScrollBy)
	case e.Items != nil:
		vp.SetDataLength(*e.Items)
	case e.Resize != nil:
		vp.Resize(*e.Resize)
	case e.Header != nil:
		return vp.SetHeaderHeight(*e.Header)
	case e.Footer != nil:
		return vp.SetFooterHeight(*e.Footer)
	case e.Columns != nil:
		return vp.SetColumns(*e.Columns)
	case e.Config != nil:
		return s.UpdateConfig(*e.Config)
	case e.ScrollToIndex != nil:
		s.ScrollToIndex(e.ScrollToIndex.Index, gridscroll.ParseScrollBehavior(e.ScrollToIndex.Behavior))
	case e.Step != nil:
		step(vp, *e.Step)
	case e.Command != "":
		cmd, err := surface.ParseCommand(e.Command)
		if err != nil {
			return err
		}
		vp.Apply(cmd)
	}
	return nil
}

// maxSettleSteps bounds a settle-until-done step.
const maxSettleSteps = 10_000

func step(vp *surface.Viewport, spec StepSpec) {
	dt := spec.DT
	if dt <= 0 {
		dt = defaultStepDT
	}
	if spec.Seconds <= 0 {
		for i := 0; i < maxSettleSteps && vp.Step(dt); i++ {
		}
		return
	}
	for elapsed := 0.0; elapsed < spec.Seconds; elapsed += dt {
		vp.Step(dt)
	}
}

func capture(kind string, vp *surface.Viewport, s *gridscroll.Strategy, err error) Frame {
	first, _ := s.FirstVisibleIndex()
	f := Frame{
		Event:         kind,
		Scroll:        vp.ScrollOffset(),
		Total:         vp.TotalContentSize(),
		Range:         vp.RenderedRange(),
		ContentOffset: vp.ContentOffset(),
		FirstVisible:  first,
	}
	if err != nil {
		f.Error = err.Error()
	}
	return f
}
