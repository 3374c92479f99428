// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solid implements linear elastic section models for frames and shells
package solid

import (
	"github.com/gofrm/gofrm/inp"
	"github.com/cpmech/gosl/chk"
)

// Model defines the interface for section models
type Model interface {
	Init(mat *inp.MaterialData) error // initialises model
}

// New returns new solid model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'solid' database", name)
	}
	return allocator(), nil
}

// allocators holds all available solid models; modelname => allocator
var allocators = map[string]func() Model{}
