// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/gofrm/gofrm/inp"
)

// Preprocess subdivides the bars of the base model at their notice points. The loads of all
// cases and the springs of all spring sets follow the new segments.
//  Note: models already preprocessed are left untouched
func Preprocess(model *inp.Model) (err error) {
	if model.Msh == nil {
		return chk.Err("model %q has not been post-processed", model.Key)
	}
	if model.Pre {
		return
	}
	if model.Springs == nil {
		model.Springs = make(map[string][]*inp.SpringData)
	}
	sp := &splitter{msh: model.Msh, sep: SepNotice, springs: model.Springs}
	for _, id := range model.CaseIds() {
		lc := model.Cases[id]
		normalise(model.Msh, lc)
		sp.cases = append(sp.cases, lc)
	}
	for _, nc := range model.Notices {
		cidx := model.Msh.Bid[string(nc.M)]
		if err = splitAll(sp, cidx, nc.Scaled); err != nil {
			return
		}
	}
	model.Pre = true
	return
}

// splitAll cuts bar cidx at the sorted offsets measured from its i end. Each cut is applied to
// the running tail.
func splitAll(sp *splitter, cidx int, offsets []int) (err error) {
	prev := 0
	for _, s := range offsets {
		if cidx, err = sp.split(cidx, s-prev); err != nil {
			return
		}
		prev = s
	}
	return
}
