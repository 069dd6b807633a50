package glue

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/quickwritereader/CobolGlue/packable"
	"github.com/quickwritereader/CobolGlue/storage"
	"github.com/quickwritereader/CobolGlue/typetags"

	"go.uber.org/zap"
)

// State is the activity state of a Runnable
type State int32

const (
	Idle State = iota
	Running
	Cancelled
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Routine is an externally compiled function seen through its native arguments.
// A routine may replace args[i] for out-parameters; the replacement is written
// back to the matching cell after the call.
type Routine func(ctx context.Context, args []packable.Native) (int32, error)

// Runnable invokes a Routine with arguments marshalled from storage cells.
type Runnable struct {
	fn      Function
	routine Routine
	state   atomic.Int32
}

func NewRunnable(fn Function, routine Routine) *Runnable {
	return &Runnable{fn: fn, routine: routine}
}

func (r *Runnable) Function() Function { return r.fn }

func (r *Runnable) State() State { return State(r.state.Load()) }

func (r *Runnable) IsActive() bool { return r.State() == Running }

// Cancel moves the runnable to Cancelled. Further Run calls fail until Reset.
func (r *Runnable) Cancel() {
	prev := State(r.state.Swap(int32(Cancelled)))
	if prev != Cancelled {
		Logger().Debug("runnable cancelled", zap.String("func", r.fn.Name), zap.Stringer("from", prev))
	}
}

// Reset returns a cancelled runnable to Idle. It has no effect otherwise.
func (r *Runnable) Reset() {
	r.state.CompareAndSwap(int32(Cancelled), int32(Idle))
}

// Run marshals cells into native arguments, calls the routine and writes
// out-parameters back. The returned value is the routine's return value.
func (r *Runnable) Run(ctx context.Context, cells ...storage.Cell) (int32, error) {
	log := Logger()
	switch r.State() {
	case Cancelled:
		return 0, fmt.Errorf("glue: %s: %w", r.fn.Name, ErrCancelled)
	case Running:
		return 0, fmt.Errorf("glue: %s: %w", r.fn.Name, ErrBusy)
	}
	if len(cells) != len(r.fn.Params) {
		return 0, fmt.Errorf("glue: %s: %w: want %d, got %d", r.fn.Name, ErrArgumentCount, len(r.fn.Params), len(cells))
	}
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("glue: %s: %w", r.fn.Name, err)
	}

	args, err := r.marshal(cells)
	if err != nil {
		return 0, err
	}

	if !r.state.CompareAndSwap(int32(Idle), int32(Running)) {
		if r.State() == Cancelled {
			return 0, fmt.Errorf("glue: %s: %w", r.fn.Name, ErrCancelled)
		}
		return 0, fmt.Errorf("glue: %s: %w", r.fn.Name, ErrBusy)
	}
	log.Debug("runnable started", zap.String("func", r.fn.Name), zap.Int("args", len(args)))

	ret, callErr := r.call(ctx, args)

	if !r.state.CompareAndSwap(int32(Running), int32(Idle)) {
		log.Debug("runnable cancelled while running", zap.String("func", r.fn.Name))
		return ret, fmt.Errorf("glue: %s: %w", r.fn.Name, ErrCancelled)
	}
	if callErr != nil {
		return ret, fmt.Errorf("glue: %s: %w", r.fn.Name, callErr)
	}
	if err := r.writeBack(cells, args); err != nil {
		return ret, err
	}
	log.Debug("runnable finished", zap.String("func", r.fn.Name), zap.Int32("ret", ret))
	return ret, nil
}

// call runs the routine. A panicking routine returns the runnable to Idle before the panic propagates.
func (r *Runnable) call(ctx context.Context, args []packable.Native) (int32, error) {
	defer func() {
		if p := recover(); p != nil {
			r.state.CompareAndSwap(int32(Running), int32(Idle))
			Logger().Error("routine panicked", zap.String("func", r.fn.Name), zap.Any("panic", p))
			panic(p)
		}
	}()
	return r.routine(ctx, args)
}

func (r *Runnable) marshal(cells []storage.Cell) ([]packable.Native, error) {
	args := make([]packable.Native, len(cells))
	for i, p := range r.fn.Params {
		kind := p.Kind()
		length := 0
		if kind == typetags.KindBytes {
			length = cells[i].Size()
		}
		v, err := packable.Extract(cells[i], kind, length)
		if err != nil {
			Logger().Warn("argument extraction failed",
				zap.String("func", r.fn.Name),
				zap.String("param", p.VarName),
				zap.Stringer("kind", kind),
				zap.Error(err))
			return nil, fmt.Errorf("glue: %s param %q: %w", r.fn.Name, p.VarName, err)
		}
		args[i] = v
	}
	return args, nil
}

func (r *Runnable) writeBack(cells []storage.Cell, args []packable.Native) error {
	var outCells []storage.Cell
	var outArgs []packable.Native
	for i, p := range r.fn.Params {
		if !p.IsOut() {
			continue
		}
		if args[i] == nil || args[i].Kind() != p.Kind() {
			return fmt.Errorf("glue: %s param %q: routine returned %v for %s", r.fn.Name, p.VarName, args[i], p.Kind())
		}
		outCells = append(outCells, cells[i])
		outArgs = append(outArgs, args[i])
	}
	if len(outCells) == 0 {
		return nil
	}
	if err := packable.InjectAll(outCells, outArgs); err != nil {
		Logger().Warn("out-parameter write-back failed", zap.String("func", r.fn.Name), zap.Error(err))
		return fmt.Errorf("glue: %s: %w", r.fn.Name, err)
	}
	return nil
}
