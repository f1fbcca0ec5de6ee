// Copyright (c) 2026, The Scopos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equipment

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
)

// Memory is an in-memory [Source].
type Memory struct {
	mu sync.Mutex

	// Details is the passports by model code.
	Details map[string]*Detail

	// Overdue is the overdue code set.
	Overdue []string

	// Defective is the defective code set.
	Defective []string

	// Err, if set, is returned by every call.
	Err error

	// Calls counts the calls by method name.
	Calls map[string]int
}

// NewMemory returns a new memory source holding the given records.
func NewMemory(details ...*Detail) *Memory {
	mm := &Memory{Details: make(map[string]*Detail), Calls: make(map[string]int)}
	for _, dt := range details {
		mm.Details[dt.ModelCode] = dt
	}
	return mm
}

// NewFallbackMemory returns a memory source holding [FallbackData].
func NewFallbackMemory() *Memory {
	mm := NewMemory()
	for _, sm := range FallbackData {
		dt := FallbackDetail(sm.ModelCode)
		dt.Summary = sm
		mm.Details[sm.ModelCode] = dt
	}
	return mm
}

func (mm *Memory) call(name string) error {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	if mm.Calls == nil {
		mm.Calls = make(map[string]int)
	}
	mm.Calls[name]++
	return mm.Err
}

// NumCalls returns the number of calls of the given method.
func (mm *Memory) NumCalls(name string) int {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	return mm.Calls[name]
}

func (mm *Memory) List(ctx context.Context) ([]Summary, error) {
	if err := mm.call("List"); err != nil {
		return nil, err
	}
	mm.mu.Lock()
	defer mm.mu.Unlock()
	var sums []Summary
	for _, dt := range mm.Details {
		sums = append(sums, dt.Summary)
	}
	slices.SortFunc(sums, func(a, b Summary) int { return cmp.Compare(a.ModelCode, b.ModelCode) })
	return sums, nil
}

func (mm *Memory) Detail(ctx context.Context, modelCode string) (*Detail, error) {
	if err := mm.call("Detail"); err != nil {
		return nil, err
	}
	mm.mu.Lock()
	defer mm.mu.Unlock()
	dt, ok := mm.Details[modelCode]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, modelCode)
	}
	cp := *dt
	return &cp, nil
}

func (mm *Memory) OverdueCodes(ctx context.Context) ([]string, error) {
	if err := mm.call("OverdueCodes"); err != nil {
		return nil, err
	}
	mm.mu.Lock()
	defer mm.mu.Unlock()
	return slices.Clone(mm.Overdue), nil
}

func (mm *Memory) DefectiveCodes(ctx context.Context) ([]string, error) {
	if err := mm.call("DefectiveCodes"); err != nil {
		return nil, err
	}
	mm.mu.Lock()
	defer mm.mu.Unlock()
	return slices.Clone(mm.Defective), nil
}

// SetCodes sets the overdue and defective code sets.
func (mm *Memory) SetCodes(overdue, defective []string) {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	mm.Overdue = overdue
	mm.Defective = defective
}
