// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the result document and console summaries
package out

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/gofrm/gofrm/fem"
	"github.com/gofrm/gofrm/inp"
)

// Document holds the results of all load cases of one model
type Document struct {
	Results map[string]*fem.Result `json:"results"` // case id => results
	Errors  map[string]string      `json:"errors"`  // case id => error message
}

// NewDocument collects the results and errors of a run
func NewDocument(m *fem.Main) (o *Document) {
	o = &Document{Results: make(map[string]*fem.Result), Errors: make(map[string]string)}
	for id, res := range m.Results {
		o.Results[id] = res
	}
	for id, err := range m.Status {
		o.Errors[id] = err.Error()
	}
	return
}

// Write saves <dirOut>/<key>.json
func Write(dirOut, key string, doc *Document) (fn string, err error) {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", chk.Err("cannot marshal results of %q:\n%v", key, err)
	}
	io.WriteBytesToFileD(dirOut, key+".json", b)
	return filepath.Join(dirOut, key+".json"), nil
}

// Read loads a document saved by Write
func Read(fn string) (doc *Document, err error) {
	b, err := os.ReadFile(fn)
	if err != nil {
		return nil, chk.Err("cannot read results file %q:\n%v", fn, err)
	}
	doc = new(Document)
	if err = json.Unmarshal(b, doc); err != nil {
		return nil, chk.Err("cannot unmarshal results file %q:\n%v", fn, err)
	}
	return
}

// Summary returns a summary of a document: per case, the largest displacement and rotation
// and the sum of reactions
func Summary(doc *Document) (l string) {
	ids := make([]string, 0, len(doc.Results)+len(doc.Errors))
	for id := range doc.Results {
		ids = append(ids, id)
	}
	for id := range doc.Errors {
		if _, ok := doc.Results[id]; !ok {
			ids = append(ids, id)
		}
	}
	inp.SortIds(ids)
	for _, id := range ids {
		if msg, ok := doc.Errors[id]; ok {
			l += io.Sf("case %-6s FAILED: %s\n", id, msg)
			continue
		}
		res := doc.Results[id]
		umax, unode := maxNorm(res.Disg, 0)
		rmax, rnode := maxNorm(res.Disg, 3)
		sum := make([]float64, 6)
		for _, r := range res.Reac {
			for j, v := range r.Values() {
				sum[j] += v
			}
		}
		l += io.Sf("case %-6s max|u| = %-13.6e @ %-6s max|r| = %-13.6e @ %-6s ΣR = [%s]\n", id, umax, unode, rmax, rnode, join(sum[:3]))
	}
	return
}

// maxNorm returns the largest norm of the three components starting at k
func maxNorm(disg map[string]*fem.Disp, k int) (vmax float64, node string) {
	ids := make([]string, 0, len(disg))
	for id := range disg {
		ids = append(ids, id)
	}
	inp.SortIds(ids)
	for _, id := range ids {
		v := disg[id].Values()
		n := math.Sqrt(v[k]*v[k] + v[k+1]*v[k+1] + v[k+2]*v[k+2])
		if n > vmax || node == "" {
			vmax, node = n, id
		}
	}
	return
}

// join formats values
func join(v []float64) (l string) {
	for i, x := range v {
		if i > 0 {
			l += " "
		}
		l += io.Sf("%g", x)
	}
	return
}
