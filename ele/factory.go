// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/chk"
	"github.com/gofrm/gofrm/inp"
)

// Props holds case-dependent data required to allocate an element
type Props struct {
	Mat    *inp.MaterialData // material and section constants
	Spring *inp.SpringData   // elastic foundation; may be nil
	Loads  []*inp.MemberLoad // distributed and thermal loads acting on this cell
}

// InfoFuncType defines a function that returns information about a certain element type
type InfoFuncType func(cell *inp.Cell) *Info

// AllocatorType defines a function that allocates an element
type AllocatorType func(cell *inp.Cell, msh *inp.Mesh, props *Props) (Element, error)

// GetInfo returns information about elements from factory
func GetInfo(cell *inp.Cell) (info *Info, err error) {
	fcn, ok := infofactory[cell.Type]
	if !ok {
		err = chk.Err("cannot get info for element {type=%q, id=%q}", cell.Type, cell.Id)
		return
	}
	info = fcn(cell)
	if info == nil {
		err = chk.Err("info for element {type=%q, id=%q} is not available", cell.Type, cell.Id)
	}
	return
}

// New returns a new element from from factory
func New(cell *inp.Cell, msh *inp.Mesh, props *Props) (ele Element, err error) {
	fcn, ok := allocators[cell.Type]
	if !ok {
		err = chk.Err("cannot get allocator for element {type=%q, id=%q}", cell.Type, cell.Id)
		return
	}
	if props == nil || props.Mat == nil {
		err = chk.Err("element {type=%q, id=%q} requires a material", cell.Type, cell.Id)
		return
	}
	return fcn(cell, msh, props)
}

// SetInfoFunc sets a new callback function to return information about an element
func SetInfoFunc(elementName string, fcn InfoFuncType) {
	if _, ok := infofactory[elementName]; ok {
		chk.Panic("cannot set information function for %q because element name exists already", elementName)
	}
	infofactory[elementName] = fcn
}

// SetAllocator sets a new callback function to allocate an element
func SetAllocator(elementName string, fcn AllocatorType) {
	if _, ok := allocators[elementName]; ok {
		chk.Panic("cannot set allocator function for %q because element name exists already", elementName)
	}
	allocators[elementName] = fcn
}

// infofactory holds all functions that return information about an element
var infofactory = make(map[string]InfoFuncType)

// allocators holds all element allocators
var allocators = make(map[string]AllocatorType)
