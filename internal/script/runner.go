package script

import (
	"context"
	"fmt"
	"strconv"

	"github.com/inconshreveable/log15"
	"github.com/mgnsk/linkedlist"
)

// Result is the outcome of a step.
type Result struct {
	Step  int
	Op    string
	Value string
	OK    bool
}

func (r Result) String() string {
	if !r.OK {
		return fmt.Sprintf("%d %s: none", r.Step, r.Op)
	}
	if r.Value == "" {
		return fmt.Sprintf("%d %s: ok", r.Step, r.Op)
	}
	return fmt.Sprintf("%d %s: %s", r.Step, r.Op, r.Value)
}

// Runner executes scripts against a list.
type Runner struct {
	logger     log15.Logger
	stopOnNone bool
}

// NewRunner creates a runner.
func NewRunner(opts ...Option) *Runner {
	o := newDefaultRunnerOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}

	return &Runner{
		logger:     o.logger,
		stopOnNone: o.stopOnNone,
	}
}

// Run applies the steps of s to l in order. It stops at the first invalid step
// or when ctx is done and returns the results collected so far.
func (r *Runner) Run(ctx context.Context, l *linkedlist.List[string], s *Script) ([]Result, error) {
	logger := r.logger.New("script", s.Name)
	results := make([]Result, 0, len(s.Steps))

	for i, step := range s.Steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		res, err := apply(l, step)
		if err != nil {
			logger.Error("step failed", "step", i, "op", step.Op, "err", err)
			return results, fmt.Errorf("step %d (%s): %w", i, step.Op, err)
		}

		res.Step = i
		res.Op = step.Op
		results = append(results, res)

		if !res.OK && r.stopOnNone {
			logger.Warn("step found no value", "step", i, "op", step.Op)
			return results, fmt.Errorf("step %d (%s): %w", i, step.Op, ErrNoValue)
		}

		logger.Debug("step applied", "step", i, "op", step.Op, "len", l.Len(), "result", res.Value)
	}

	logger.Info("script finished", "steps", len(results), "len", l.Len())

	return results, nil
}

func apply(l *linkedlist.List[string], step Step) (Result, error) {
	if err := step.validate(); err != nil {
		return Result{}, err
	}

	var (
		value string
		ok    = true
	)

	switch step.Op {
	case OpPushFront:
		l.PushFront(step.Value)
	case OpPushBack:
		l.PushBack(step.Value)
	case OpPush:
		l.Push(step.Value)
	case OpEnqueue:
		l.Enqueue(step.Value)
	case OpPopFront:
		value, ok = l.PopFront()
	case OpPopBack:
		value, ok = l.PopBack()
	case OpPop:
		value, ok = l.Pop()
	case OpDequeue:
		value, ok = l.Dequeue()
	case OpFront:
		value, ok = l.Front()
	case OpBack:
		value, ok = l.Back()
	case OpInsert:
		if err := checkIndex(*step.Index, l.Len()+1); err != nil {
			return Result{}, err
		}
		l.Insert(*step.Index, step.Value)
	case OpRemove:
		if err := checkIndex(*step.Index, l.Len()); err != nil {
			return Result{}, err
		}
		value = l.Remove(*step.Index)
	case OpGet:
		if err := checkIndex(*step.Index, l.Len()); err != nil {
			return Result{}, err
		}
		value = l.Get(*step.Index)
	case OpSet:
		if err := checkIndex(*step.Index, l.Len()); err != nil {
			return Result{}, err
		}
		l.Set(*step.Index, step.Value)
	case OpClear:
		value = strconv.Itoa(l.Len())
		l.Clear()
	case OpDump:
		value = l.String()
	case OpReverseDump:
		values := make([]string, 0, l.Len())
		for _, v := range l.Backward() {
			values = append(values, v)
		}
		value = fmt.Sprint(values)
	}

	return Result{Value: value, OK: ok}, nil
}

func checkIndex(index, limit int) error {
	if index < 0 || index >= limit {
		return fmt.Errorf("%w: index %d out of range [0:%d)", ErrInvalidStep, index, limit)
	}
	return nil
}
