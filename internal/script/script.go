/*
Package script runs YAML described scripts of list operations.
*/
package script

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownOp indicates a step with an unsupported operation.
	ErrUnknownOp = errors.New("unknown op")
	// ErrInvalidStep indicates a step that violates the list contract.
	ErrInvalidStep = errors.New("invalid step")
	// ErrNoValue indicates a step that found no value.
	ErrNoValue = errors.New("no value")
)

// Supported operations.
const (
	OpPushFront   = "push_front"
	OpPushBack    = "push_back"
	OpPopFront    = "pop_front"
	OpPopBack     = "pop_back"
	OpPush        = "push"
	OpPop         = "pop"
	OpEnqueue     = "enqueue"
	OpDequeue     = "dequeue"
	OpInsert      = "insert"
	OpRemove      = "remove"
	OpGet         = "get"
	OpSet         = "set"
	OpFront       = "front"
	OpBack        = "back"
	OpClear       = "clear"
	OpDump        = "dump"
	OpReverseDump = "reverse_dump"
)

// ops maps each operation to whether it requires an index.
var ops = map[string]bool{
	OpPushFront:   false,
	OpPushBack:    false,
	OpPopFront:    false,
	OpPopBack:     false,
	OpPush:        false,
	OpPop:         false,
	OpEnqueue:     false,
	OpDequeue:     false,
	OpInsert:      true,
	OpRemove:      true,
	OpGet:         true,
	OpSet:         true,
	OpFront:       false,
	OpBack:        false,
	OpClear:       false,
	OpDump:        false,
	OpReverseDump: false,
}

// Step is a single list operation.
type Step struct {
	Op    string `yaml:"op"`
	Index *int   `yaml:"index,omitempty"`
	Value string `yaml:"value,omitempty"`
}

func (s Step) validate() error {
	needsIndex, ok := ops[s.Op]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownOp, s.Op)
	}

	if needsIndex && s.Index == nil {
		return fmt.Errorf("%w: %s requires an index", ErrInvalidStep, s.Op)
	}

	return nil
}

// Script is a named sequence of steps.
type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Load reads a script file. Environment variables in the file are expanded.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// Parse decodes and validates a script.
func Parse(data []byte) (*Script, error) {
	content := []byte(os.ExpandEnv(string(data)))

	s := &Script{}
	if err := yaml.Unmarshal(content, s); err != nil {
		return nil, fmt.Errorf("decoding script: %w", err)
	}

	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
	}

	return s, nil
}
