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
	"fmt"
	"strings"

	"github.com/hyperledger/firefly-basket-sdk/internal/bsmsgs"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ID identifies a registered schema
type ID string

const (
	Address     ID = "address"
	Bytes       ID = "bytes"
	Bytes32     ID = "bytes32"
	Number      ID = "number"
	WholeNumber ID = "wholeNumber"
	String      ID = "string"
)

// Definition is a JSON Schema document to compile into a registry
type Definition struct {
	ID     ID
	Schema string
}

// BuiltinDefinitions are the shapes of the primitive request fields
var BuiltinDefinitions = []Definition{
	{ID: Address, Schema: `{"type": "string", "pattern": "^0x[0-9a-fA-F]{40}$"}`},
	{ID: Bytes, Schema: `{"type": "string", "pattern": "^0x([0-9a-fA-F]{2})*$"}`},
	{ID: Bytes32, Schema: `{"type": "string", "pattern": "^0x[0-9a-fA-F]{64}$"}`},
	{ID: Number, Schema: `{"anyOf": [
		{"type": "integer"},
		{"type": "string", "pattern": "^(-?[0-9]+|0x[0-9a-fA-F]+)$"}
	]}`},
	{ID: WholeNumber, Schema: `{"type": "integer", "minimum": 0}`},
	{ID: String, Schema: `{"type": "string", "minLength": 1, "pattern": "\\S"}`},
}

// Registry holds compiled schemas. It is built once, and is read-only afterwards,
// so it can be shared freely between goroutines.
type Registry struct {
	schemas map[ID]*jsonschema.Schema
}

var builtin *Registry

func init() {
	r, err := NewRegistry(context.Background())
	if err != nil {
		panic(err)
	}
	builtin = r
}

// Builtin returns the registry of BuiltinDefinitions compiled at startup
func Builtin() *Registry {
	return builtin
}

// NewRegistry compiles the built-in definitions, plus any extras. An extra definition
// cannot replace a built-in one.
func NewRegistry(ctx context.Context, extra ...Definition) (*Registry, error) {
	r := &Registry{
		schemas: make(map[ID]*jsonschema.Schema),
	}
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	defs := append(append([]Definition{}, BuiltinDefinitions...), extra...)
	for _, def := range defs {
		if _, exists := r.schemas[def.ID]; exists {
			return nil, i18n.NewError(ctx, bsmsgs.MsgDuplicateSchema, def.ID)
		}
		url := fmt.Sprintf("%s.json", def.ID)
		if err := c.AddResource(url, strings.NewReader(def.Schema)); err != nil {
			return nil, i18n.NewError(ctx, bsmsgs.MsgSchemaCompileFailed, def.ID, err)
		}
		compiled, err := c.Compile(url)
		if err != nil {
			return nil, i18n.NewError(ctx, bsmsgs.MsgSchemaCompileFailed, def.ID, err)
		}
		r.schemas[def.ID] = compiled
	}
	return r, nil
}

// Has returns true if the ID is registered
func (r *Registry) Has(id ID) bool {
	_, ok := r.schemas[id]
	return ok
}

func (r *Registry) mustLookup(ctx context.Context, id ID) *jsonschema.Schema {
	s, ok := r.schemas[id]
	if !ok {
		panic(i18n.NewError(ctx, bsmsgs.MsgUnknownSchema, id))
	}
	return s
}
