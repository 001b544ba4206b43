// Copyright © 2025 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package schema

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// FieldError describes one non-conformance of a value against a schema
type FieldError struct {
	Field   string      `json:"field"`
	Schema  ID          `json:"schema"`
	Value   interface{} `json:"value"`
	Message string      `json:"message"`
}

// Result is the outcome of a validation. A value either conforms, or it does not:
// there is no partially valid result.
type Result struct {
	Errors []*FieldError `json:"errors,omitempty"`
}

func (r *Result) Valid() bool {
	return len(r.Errors) == 0
}

// First returns the first failure, or nil if the value conformed
func (r *Result) First() *FieldError {
	if len(r.Errors) == 0 {
		return nil
	}
	return r.Errors[0]
}

// Validator evaluates values against registered schemas. Both functions are
// deterministic and free of side effects. An unregistered ID is a programming
// error and panics.
type Validator interface {
	Validate(ctx context.Context, field string, value interface{}, id ID) *Result
	// ValidateList applies the schema to every element of a slice or array, and reports every failing element
	ValidateList(ctx context.Context, field string, values interface{}, id ID) *Result
}

type validator struct {
	registry *Registry
}

func NewValidator(registry *Registry) Validator {
	return &validator{registry: registry}
}

func (v *validator) Validate(ctx context.Context, field string, value interface{}, id ID) *Result {
	res := &Result{}
	if fe := v.check(ctx, field, value, id); fe != nil {
		res.Errors = append(res.Errors, fe)
	}
	return res
}

func (v *validator) ValidateList(ctx context.Context, field string, values interface{}, id ID) *Result {
	s := v.registry.mustLookup(ctx, id)
	res := &Result{}
	rv := reflect.ValueOf(values)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		res.Errors = append(res.Errors, &FieldError{
			Field:   field,
			Schema:  id,
			Value:   values,
			Message: fmt.Sprintf("expected a list, but got %T", values),
		})
		return res
	}
	for i := 0; i < rv.Len(); i++ {
		elem := rv.Index(i).Interface()
		if err := s.Validate(normalize(elem)); err != nil {
			res.Errors = append(res.Errors, newFieldError(fmt.Sprintf("%s[%d]", field, i), id, elem, err))
		}
	}
	return res
}

func (v *validator) check(ctx context.Context, field string, value interface{}, id ID) *FieldError {
	s := v.registry.mustLookup(ctx, id)
	if err := s.Validate(normalize(value)); err != nil {
		return newFieldError(field, id, value, err)
	}
	return nil
}

func newFieldError(field string, id ID, value interface{}, err error) *FieldError {
	return &FieldError{
		Field:   field,
		Schema:  id,
		Value:   value,
		Message: leafMessage(err),
	}
}

// leafMessage flattens the tree of schema errors down to the messages of the
// keywords that actually failed
func leafMessage(err error) string {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err.Error()
	}
	var msgs []string
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			msgs = append(msgs, e.Message)
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(ve)
	return strings.Join(msgs, "; ")
}
