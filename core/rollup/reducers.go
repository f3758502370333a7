/*
SPDX-License-Identifier: Apache-2.0

Copyright 2025 The Athroisma Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package rollup

// ReducerKind identifies one of the built-in aggregation functions.
type ReducerKind int

const (
	ReduceSum ReducerKind = iota
	ReduceMean
	ReduceCount
	ReduceMin
	ReduceMax
	ReduceFirst
	ReduceLast
	ReduceCustom
)

// CustomFunc is a user-supplied pure reduction over a group's numeric values.
// It must not retain the slice.
type CustomFunc func(values []float64) float64

// Reducer maps a group's column values to one scalar. The built-in reducers
// form a closed set; Custom is the escape hatch for anything else.
//
// Sum, Mean, Min, Max, and Custom reduce the float64 view of a numeric
// column and produce a float64 measure column. Count produces an int64
// column. First and Last work on any column type and produce a string
// column.
type Reducer struct {
	kind   ReducerKind
	name   string
	custom CustomFunc
}

func Sum() Reducer   { return Reducer{kind: ReduceSum, name: "sum"} }
func Mean() Reducer  { return Reducer{kind: ReduceMean, name: "mean"} }
func Count() Reducer { return Reducer{kind: ReduceCount, name: "count"} }
func Min() Reducer   { return Reducer{kind: ReduceMin, name: "min"} }
func Max() Reducer   { return Reducer{kind: ReduceMax, name: "max"} }
func First() Reducer { return Reducer{kind: ReduceFirst, name: "first"} }
func Last() Reducer  { return Reducer{kind: ReduceLast, name: "last"} }

// Custom wraps a user-supplied reduction under the given name.
func Custom(name string, fn CustomFunc) Reducer {
	return Reducer{kind: ReduceCustom, name: name, custom: fn}
}

// Kind returns the reducer's kind.
func (r Reducer) Kind() ReducerKind {
	return r.kind
}

// String returns the reducer's name.
func (r Reducer) String() string {
	return r.name
}

// reduceFloats applies a numeric reducer to a non-empty slice of values.
func (r Reducer) reduceFloats(values []float64) float64 {
	switch r.kind {
	case ReduceSum:
		sum := 0.0
		for _, v := range values {
			sum += v
		}
		return sum
	case ReduceMean:
		sum := 0.0
		for _, v := range values {
			sum += v
		}
		return sum / float64(len(values))
	case ReduceMin:
		min := values[0]
		for _, v := range values[1:] {
			if v < min {
				min = v
			}
		}
		return min
	case ReduceMax:
		max := values[0]
		for _, v := range values[1:] {
			if v > max {
				max = v
			}
		}
		return max
	case ReduceCustom:
		return r.custom(values)
	default:
		return 0
	}
}
