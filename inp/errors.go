// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import "github.com/cpmech/gosl/io"

// ValidationError reports a dangling reference or an unacceptable input value
type ValidationError struct {
	Kind string // kind of the entity holding the reference; e.g. "member"
	Id   string // id of the entity holding the reference
	Ref  string // what was referenced; e.g. `node "7"`
}

func (o *ValidationError) Error() string {
	return io.Sf("validation: %s %q references unknown %s", o.Kind, o.Id, o.Ref)
}

// InvariantViolation reports a structural inconsistency detected while building elements
type InvariantViolation struct {
	Id  string // id of the offending entity
	Msg string
}

func (o *InvariantViolation) Error() string {
	return io.Sf("invariant violation at %q: %s", o.Id, o.Msg)
}

// NumericalError reports a singular or ill-conditioned global system
type NumericalError struct {
	Case string
	Msg  string
}

func (o *NumericalError) Error() string {
	return io.Sf("numerical failure in case %q: %s", o.Case, o.Msg)
}

// NewValidationError returns a new ValidationError
func NewValidationError(kind, id, refFmt string, args ...interface{}) error {
	return &ValidationError{kind, id, io.Sf(refFmt, args...)}
}

// NewInvariantViolation returns a new InvariantViolation
func NewInvariantViolation(id, msgFmt string, args ...interface{}) error {
	return &InvariantViolation{id, io.Sf(msgFmt, args...)}
}
