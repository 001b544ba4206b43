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

package assertions

import (
	"context"
	"fmt"
	"reflect"

	"github.com/hyperledger/firefly-basket-sdk/internal/bsmsgs"
	"github.com/hyperledger/firefly-basket-sdk/pkg/apitypes"
)

func listLen(list interface{}) int {
	rv := reflect.ValueOf(list)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Len()
	default:
		return 0
	}
}

// IsEqualLength is for parallel-array arguments, such as component addresses and their units
func (a *Assertions) IsEqualLength(ctx context.Context, name1 string, list1 interface{}, name2 string, list2 interface{}) error {
	len1, len2 := listLen(list1), listLen(list2)
	if len1 != len2 {
		return apitypes.NewValidationError(ctx, name1+","+name2, []interface{}{list1, list2}, CheckEqualLength,
			bsmsgs.MsgArrayLengthMismatch, name1, len1, name2, len2)
	}
	return nil
}

// IsNotEmptyArray fails for a nil or zero length slice or array
func (a *Assertions) IsNotEmptyArray(ctx context.Context, name string, list interface{}) error {
	if listLen(list) == 0 {
		return apitypes.NewValidationError(ctx, name, list, CheckNotEmptyArray, bsmsgs.MsgArrayEmpty, name)
	}
	return nil
}

// IsUniqueList fails if any entry appears more than once. Entries are compared by
// value, so two pointers are only duplicates if they are the same pointer.
func (a *Assertions) IsUniqueList(ctx context.Context, name string, list interface{}) error {
	rv := reflect.ValueOf(list)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil
	}
	seen := make(map[interface{}]bool, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		v := rv.Index(i).Interface()
		key := uniqueKey(v)
		if seen[key] {
			return apitypes.NewValidationError(ctx, name, v, CheckUniqueList, bsmsgs.MsgArrayNotUnique, name, v)
		}
		seen[key] = true
	}
	return nil
}

// uniqueKey returns v itself when it can be used as a map key, and its %#v
// rendering otherwise. Comparable types can still hold unhashable values
// behind interface fields, so the dynamic value is checked too.
func uniqueKey(v interface{}) interface{} {
	if !hashable(reflect.ValueOf(v)) {
		return fmt.Sprintf("%#v", v)
	}
	return v
}

func hashable(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Slice, reflect.Map, reflect.Func:
		return false
	case reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return hashable(rv.Elem())
	case reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if !hashable(rv.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := 0; i < rv.NumField(); i++ {
			if !hashable(rv.Field(i)) {
				return false
			}
		}
		return true
	default:
		return true
	}
}
