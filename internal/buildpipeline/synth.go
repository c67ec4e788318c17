package buildpipeline

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"tagcore/internal/can"
	"tagcore/internal/observ"
	"tagcore/internal/trace"
	"tagcore/internal/types"
)

// Request configures a synthesis run.
type Request struct {
	// Modules are synthesized independently and may run in parallel.
	Modules []string
	// Jobs bounds parallelism; 0 means GOMAXPROCS.
	Jobs     int
	Progress ProgressSink
	Timer    *observ.Timer
	// UserDefs supplies a module's own definitions, allocating from the
	// module's store. Nil means empty modules.
	UserDefs func(ctx context.Context, module string, vars *types.VarStore) ([]can.Def, error)
}

// ModuleResult is one synthesized module.
type ModuleResult struct {
	Module *can.Module
	// Vars is the module's own allocator. Inference continues from it.
	Vars *types.VarStore
	// Variables is the number of distinct type variables the module's
	// definitions mention.
	Variables int
	Elapsed   time.Duration
}

// Result is the outcome of Synthesize, with modules in request order.
type Result struct {
	Modules []ModuleResult
	Timings *Timings
}

// ErrNoModules is returned for a request without modules.
var ErrNoModules = errors.New("no modules to synthesize")

// Synthesize merges the builtin definitions into every requested module.
// Each module gets its own type variable store, so modules never share a
// variable and need no locking between them.
func Synthesize(ctx context.Context, req *Request) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if req == nil {
		return Result{}, fmt.Errorf("missing synthesis request")
	}
	if err := checkModules(req.Modules); err != nil {
		return Result{}, err
	}

	ctx, span := trace.BeginContext(ctx, trace.ScopePass, "synthesize")
	span.WithExtra("modules", strconv.Itoa(len(req.Modules)))
	timerIdx := -1
	if req.Timer != nil {
		timerIdx = req.Timer.Begin("synthesize")
	}

	for _, name := range req.Modules {
		emit(req.Progress, Event{Module: name, Status: StatusQueued})
	}

	jobs := req.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	result := Result{
		Modules: make([]ModuleResult, len(req.Modules)),
		Timings: &Timings{},
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(req.Modules)))
	for i, name := range req.Modules {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			mr, err := synthesizeModule(gctx, req, name, result.Timings)
			if err != nil {
				return fmt.Errorf("module %s: %w", name, err)
			}
			result.Modules[i] = mr
			if req.Timer != nil {
				req.Timer.Record("module:"+name, mr.Elapsed, strconv.Itoa(mr.Variables)+" vars")
			}
			return nil
		})
	}
	err := g.Wait()

	if req.Timer != nil {
		req.Timer.End(timerIdx, "")
	}
	if err != nil {
		span.End("error")
		emit(req.Progress, Event{Status: StatusError, Err: err})
		return result, err
	}
	span.End("")
	emit(req.Progress, Event{Status: StatusDone})
	return result, nil
}

func checkModules(names []string) error {
	if len(names) == 0 {
		return ErrNoModules
	}
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("empty module name")
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("module %s listed twice", name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

func synthesizeModule(ctx context.Context, req *Request, name string, timings *Timings) (ModuleResult, error) {
	started := time.Now()
	ctx, span := trace.BeginContext(ctx, trace.ScopeModule, "module:"+name)

	vars := types.NewVarStore()
	mod := &can.Module{Name: name}

	run := func(stage Stage, fn func() error) error {
		if err := ctx.Err(); err != nil {
			emit(req.Progress, Event{Module: name, Stage: stage, Status: StatusError, Err: err})
			return err
		}
		emit(req.Progress, Event{Module: name, Stage: stage, Status: StatusWorking})
		t0 := time.Now()
		err := fn()
		dur := time.Since(t0)
		timings.Add(stage, dur)
		if err != nil {
			emit(req.Progress, Event{Module: name, Stage: stage, Status: StatusError, Err: err, Elapsed: dur})
			return err
		}
		return nil
	}

	if err := run(StageLoad, func() error {
		if req.UserDefs == nil {
			return nil
		}
		defs, err := req.UserDefs(ctx, name, vars)
		mod.Defs = defs
		return err
	}); err != nil {
		span.End("error")
		return ModuleResult{}, err
	}

	if err := run(StageMerge, func() error {
		return mod.MergeBuiltins(vars)
	}); err != nil {
		span.End("error")
		return ModuleResult{}, err
	}

	var count int
	if err := run(StageVerify, func() error {
		var err error
		count, err = verify(ctx, mod, vars)
		return err
	}); err != nil {
		span.End("error")
		return ModuleResult{}, err
	}

	elapsed := time.Since(started)
	emit(req.Progress, Event{Module: name, Stage: StageVerify, Status: StatusDone, Elapsed: elapsed})
	span.WithExtra("vars", strconv.Itoa(count)).WithExtra("defs", strconv.Itoa(len(mod.Defs))).End("")
	return ModuleResult{Module: mod, Vars: vars, Variables: count, Elapsed: elapsed}, nil
}

// verify checks that no variable repeats and that every variable came from
// vars.
func verify(ctx context.Context, mod *can.Module, vars *types.VarStore) (int, error) {
	tracer := trace.FromContext(ctx)
	parent := trace.CurrentSpan(ctx)
	for i := range mod.Defs {
		if sym, ok := mod.Defs[i].Symbol(); ok {
			trace.Point(tracer, trace.ScopeDef, "def:"+sym.String(), "", parent)
		}
		for _, v := range can.Variables(mod.Defs[i]) {
			if v >= vars.Peek() {
				return 0, fmt.Errorf("type variable %v was not allocated from the module store", v)
			}
		}
	}
	return can.CheckVariables(mod.Defs)
}
