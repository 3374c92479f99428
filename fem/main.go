// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the FEM solver for 3D frames and flat shells
package fem

import (
	"runtime"
	"sync"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/gofrm/gofrm/inp"
)

// Main holds all data for the analysis of all load cases of one model
type Main struct {
	Model   *inp.Model         // preprocessed base model; read only while running
	Cfg     *inp.Config        // run options
	Results map[string]*Result // case id => results of successful cases
	Status  map[string]error   // case id => error of failed cases
	ShowMsg bool               // show messages
	mu      sync.Mutex         // guards Results and Status
}

// NewMain reads a model file and returns a new Main structure
//  Input:
//   modelpath -- model (.json or .json.gz) filename including full path
//   cfg       -- run options; nil => defaults
func NewMain(modelpath string, cfg *inp.Config) (o *Main, err error) {
	model, err := inp.ReadModel(modelpath)
	if err != nil {
		return nil, err
	}
	return NewMainModel(model, cfg)
}

// NewMainModel returns a new Main structure for a model that was already read. The model is
// preprocessed here.
func NewMainModel(model *inp.Model, cfg *inp.Config) (o *Main, err error) {

	// new Main object
	o = new(Main)
	o.Model = model
	o.Cfg = cfg
	if o.Cfg == nil {
		o.Cfg = new(inp.Config)
		o.Cfg.SetDefault()
	}
	o.ShowMsg = o.Cfg.Verbose

	// preprocess
	if err = Preprocess(o.Model); err != nil {
		return nil, err
	}

	// message
	if o.ShowMsg {
		io.Pf("> Model %q read and preprocessed\n", o.Model.Key)
		io.Pf("> Number of nodes = %d, cells = %d, cases = %d\n", o.Model.Msh.Nbase, len(o.Model.Msh.Cells), len(o.Model.Cases))
	}
	return
}

// CaseIds returns the sorted ids of all load cases
func (o *Main) CaseIds() []string {
	return o.Model.CaseIds()
}

// Run solves all load cases concurrently. The error of each failed case is recorded in
// Status; Run returns an error only if all cases failed.
func (o *Main) Run() (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// workers
	ids := o.CaseIds()
	o.Results = make(map[string]*Result)
	o.Status = make(map[string]error)
	nw := o.Cfg.Workers
	if nw <= 0 {
		nw = runtime.NumCPU()
	}
	if nw > len(ids) {
		nw = len(ids)
	}
	if o.ShowMsg {
		io.Pf("> Solving %d cases with %d workers\n", len(ids), nw)
	}

	// run
	jobs := make(chan string)
	var wg sync.WaitGroup
	for w := 0; w < nw; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := range jobs {
				res, e := o.RunCase(id)
				o.mu.Lock()
				if e != nil {
					o.Status[id] = e
				} else {
					o.Results[id] = res
				}
				o.mu.Unlock()
			}
		}()
	}
	for _, id := range ids {
		jobs <- id
	}
	close(jobs)
	wg.Wait()

	// check
	if len(ids) > 0 && len(o.Status) == len(ids) {
		return chk.Err("all %d load cases failed; first error:\n%v", len(ids), o.Status[ids[0]])
	}
	return
}

// RunCase builds, solves and post-processes one load case. Panics are recovered and returned
// as errors.
func (o *Main) RunCase(id string) (res *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res, err = nil, chk.Err("case %q panicked: %v", id, r)
		}
	}()
	d, err := NewDomain(o.Model, id, o.Cfg.Solver, o.ShowMsg)
	if err != nil {
		return nil, err
	}
	if err = d.Solve(); err != nil {
		return nil, err
	}
	return d.Results()
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// onexit prints final message with cpu time
func (o *Main) onexit(cputime time.Time, prevErr error) error {
	if o.ShowMsg {
		for _, id := range o.CaseIds() {
			if e, ok := o.Status[id]; ok {
				io.PfRed("> Case %q failed: %v\n", id, e)
			}
		}
		if prevErr == nil {
			io.PfGreen("> Success\n")
			io.Pf("> CPU time = %v\n", time.Since(cputime))
		} else {
			io.PfRed("> Failed\n")
		}
	}
	return prevErr
}
