// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sparrow

import "fmt"

// DictionaryType represents categorical or dictionary-encoded data: an
// integer keys array indexing into a shared values array.
type DictionaryType struct {
	IndexType DataType
	ValueType DataType
	Ordered   bool
}

func (*DictionaryType) ID() Type     { return DICTIONARY }
func (*DictionaryType) Name() string { return "dictionary" }

// Format returns the key type's format code: the dictionary flavour of a
// schema is carried by its dictionary pointer, not its format string.
func (t *DictionaryType) Format() string { return t.IndexType.Format() }

func (t *DictionaryType) String() string {
	return fmt.Sprintf("%s<values=%v, indices=%v, ordered=%v>",
		t.Name(), t.ValueType, t.IndexType, t.Ordered)
}

// BitWidth returns the bit width of the index type.
func (t *DictionaryType) BitWidth() int {
	return t.IndexType.(FixedWidthDataType).BitWidth()
}

// ValidIndexType reports whether t is usable as a dictionary key type.
func ValidIndexType(t DataType) bool {
	switch t.ID() {
	case INT8, UINT8, INT16, UINT16, INT32, UINT32, INT64, UINT64:
		return true
	}
	return false
}

// RunEndEncodedType is the datatype for a run-end encoded array: a run ends
// child holding the accumulated lengths of runs and a values child holding
// one value per run.
type RunEndEncodedType struct {
	runEnds DataType
	values  DataType
}

func RunEndEncodedOf(runEnds, values DataType) *RunEndEncodedType {
	return &RunEndEncodedType{runEnds: runEnds, values: values}
}

func (*RunEndEncodedType) ID() Type       { return RUN_END_ENCODED }
func (*RunEndEncodedType) Name() string   { return "run_end_encoded" }
func (*RunEndEncodedType) Format() string { return "+r" }
func (t *RunEndEncodedType) String() string {
	return fmt.Sprintf("%s<run_ends: %v, values: %v>", t.Name(), t.runEnds, t.values)
}

func (t *RunEndEncodedType) RunEnds() DataType { return t.runEnds }
func (t *RunEndEncodedType) Encoded() DataType { return t.values }

func (t *RunEndEncodedType) Fields() []Field {
	return []Field{
		{Name: "run_ends", Type: t.runEnds},
		{Name: "values", Type: t.values, Nullable: true},
	}
}

func (t *RunEndEncodedType) NumFields() int { return 2 }

// ValidRunEndsType reports whether t can hold the run ends of a run-end
// encoded array.
func (*RunEndEncodedType) ValidRunEndsType(t DataType) bool {
	switch t.ID() {
	case INT16, INT32, INT64, UINT16, UINT32, UINT64:
		return true
	}
	return false
}

var (
	_ NestedType = (*RunEndEncodedType)(nil)
)
