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

package cdata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sparrow "github.com/man-group/sparrow-sub000"
	"github.com/man-group/sparrow-sub000/array"
	"github.com/man-group/sparrow-sub000/cdata"
	"github.com/man-group/sparrow-sub000/memory"
)

// roundTrip exports arr and imports it back, checking element equality.
func roundTrip(t *testing.T, arr array.Array) {
	t.Helper()

	carr, cschema := cdata.ExportArray(arr)
	defer cschema.Release()

	got, err := cdata.ImportArray(carr, cschema)
	require.NoError(t, err)

	assert.Equal(t, arr.Len(), got.Len())
	assert.Equal(t, arr.NullN(), got.NullN())
	assert.True(t, array.Equal(arr, got), "imported array differs from the original")

	got.Release()
	carr.Release()
}

func TestRoundTripPrimitive(t *testing.T) {
	mem := memory.NewGoAllocator()

	arr := array.NewInt32Array(mem, []int32{1, 2, 3, 4}, []bool{true, false, true, true})
	defer arr.Release()
	roundTrip(t, arr)
}

func TestRoundTripBoolean(t *testing.T) {
	mem := memory.NewGoAllocator()

	arr := array.NewBooleanArray(mem, []bool{true, false, true}, []bool{true, true, false})
	defer arr.Release()
	roundTrip(t, arr)
}

func TestRoundTripString(t *testing.T) {
	mem := memory.NewGoAllocator()

	arr := array.NewStringArray(mem, []sparrow.Nullable[string]{
		sparrow.NullableOf("hello"),
		sparrow.NullOf[string](),
		sparrow.NullableOf("world"),
	})
	defer arr.Release()
	roundTrip(t, arr)
}

func TestRoundTripList(t *testing.T) {
	mem := memory.NewGoAllocator()

	values := array.NewInt64Array(mem, []int64{1, 2, 3, 4, 5}, nil)
	defer values.Release()
	arr := array.NewListArrayFromSizes(mem, values, []sparrow.Nullable[int32]{
		sparrow.NullableOf[int32](2),
		sparrow.NullOf[int32](),
		sparrow.NullableOf[int32](3),
	})
	defer arr.Release()
	roundTrip(t, arr)
}

func TestRoundTripStruct(t *testing.T) {
	mem := memory.NewGoAllocator()

	ids := array.NewInt32Array(mem, []int32{1, 2}, nil)
	defer ids.Release()
	names := array.NewStringArray(mem, []sparrow.Nullable[string]{
		sparrow.NullableOf("a"),
		sparrow.NullableOf("b"),
	})
	defer names.Release()
	arr := array.NewStructArray(mem, []string{"id", "name"},
		[]array.Array{ids, names}, []bool{true, false})
	defer arr.Release()
	roundTrip(t, arr)
}

func TestRoundTripDictionary(t *testing.T) {
	mem := memory.NewGoAllocator()

	arr := array.DictionaryFromStrings(mem, []sparrow.Nullable[string]{
		sparrow.NullableOf("x"),
		sparrow.NullableOf("y"),
		sparrow.NullOf[string](),
		sparrow.NullableOf("x"),
	})
	defer arr.Release()
	roundTrip(t, arr)
}

func TestRoundTripRunEndEncoded(t *testing.T) {
	mem := memory.NewGoAllocator()

	values := array.NewStringArray(mem, []sparrow.Nullable[string]{
		sparrow.NullableOf("x"),
		sparrow.NullOf[string](),
	})
	defer values.Release()
	arr := array.NewRunEndEncodedFromLengths(mem, values, []int32{3, 2})
	defer arr.Release()
	roundTrip(t, arr)
}

func TestRoundTripDenseUnion(t *testing.T) {
	mem := memory.NewGoAllocator()

	ints := array.NewInt32Array(mem, []int32{1, 3}, nil)
	defer ints.Release()
	strs := array.NewStringArray(mem, []sparrow.Nullable[string]{sparrow.NullableOf("a")})
	defer strs.Release()

	arr := array.NewDenseUnionArray(mem,
		[]sparrow.Field{
			{Name: "i", Type: sparrow.PrimitiveTypes.Int32, Nullable: true},
			{Name: "s", Type: sparrow.BinaryTypes.String, Nullable: true},
		},
		[]sparrow.UnionTypeCode{2, 7},
		[]array.Array{ints, strs},
		[]sparrow.UnionTypeCode{2, 7, 2},
		[]int32{0, 0, 1})
	defer arr.Release()
	roundTrip(t, arr)
}

func TestRoundTripSparseUnion(t *testing.T) {
	mem := memory.NewGoAllocator()

	ints := array.NewInt32Array(mem, []int32{1, 0}, []bool{true, false})
	defer ints.Release()
	strs := array.NewStringArray(mem, []sparrow.Nullable[string]{
		sparrow.NullableOf("a"),
		sparrow.NullableOf("b"),
	})
	defer strs.Release()

	arr := array.NewSparseUnionArray(mem,
		[]sparrow.Field{
			{Name: "i", Type: sparrow.PrimitiveTypes.Int32, Nullable: true},
			{Name: "s", Type: sparrow.BinaryTypes.String, Nullable: true},
		},
		[]sparrow.UnionTypeCode{2, 7},
		[]array.Array{ints, strs},
		[]sparrow.UnionTypeCode{2, 7})
	defer arr.Release()
	roundTrip(t, arr)
}

func TestRoundTripMap(t *testing.T) {
	mem := memory.NewGoAllocator()

	keys := array.NewStringArray(mem, []sparrow.Nullable[string]{
		sparrow.NullableOf("a"),
		sparrow.NullableOf("b"),
	})
	defer keys.Release()
	items := array.NewInt32Array(mem, []int32{1, 2}, nil)
	defer items.Release()
	arr := array.NewMapArray(mem, keys, items, []sparrow.Nullable[int32]{
		sparrow.NullableOf[int32](2),
	})
	defer arr.Release()

	carr, cschema := cdata.ExportArray(arr)
	defer cschema.Release()

	got, err := cdata.ImportArray(carr, cschema)
	require.NoError(t, err)

	m := got.(*array.Map)
	assert.True(t, m.KeysSorted())
	assert.True(t, array.Equal(arr, got))

	got.Release()
	carr.Release()
}

func TestExportSchemaField(t *testing.T) {
	mem := memory.NewGoAllocator()

	arr := array.NewInt32Array(mem, []int32{1}, nil)
	defer arr.Release()

	field := sparrow.Field{
		Name:     "score",
		Type:     sparrow.PrimitiveTypes.Int32,
		Nullable: true,
		Metadata: sparrow.NewMetadata([]string{"unit"}, []string{"points"}),
	}
	carr, cschema := cdata.ExportField(field, arr.Data())
	defer carr.Release()
	defer cschema.Release()

	assert.Equal(t, "i", cschema.Format)
	assert.Equal(t, "score", cschema.Name)
	assert.NotZero(t, cschema.Flags&cdata.FlagNullable)

	got, err := cdata.ImportField(cschema)
	require.NoError(t, err)
	assert.Equal(t, "score", got.Name)
	assert.True(t, got.Nullable)
	assert.True(t, sparrow.TypeEqual(sparrow.PrimitiveTypes.Int32, got.Type))
	require.Equal(t, 1, got.Metadata.Len())
	assert.Equal(t, "unit", got.Metadata.Keys()[0])
	assert.Equal(t, "points", got.Metadata.Values()[0])
}

func TestImportFieldNested(t *testing.T) {
	child := &cdata.CArrowSchema{Format: "u", Name: "item", Flags: cdata.FlagNullable}
	schema := &cdata.CArrowSchema{Format: "+l", Name: "tags", Children: []*cdata.CArrowSchema{child}}

	got, err := cdata.ImportField(schema)
	require.NoError(t, err)
	assert.Equal(t, "tags", got.Name)
	assert.False(t, got.Nullable)
	assert.True(t, sparrow.TypeEqual(sparrow.ListOf(sparrow.BinaryTypes.String), got.Type))
}

func TestImportFieldBadFormat(t *testing.T) {
	_, err := cdata.ImportField(&cdata.CArrowSchema{Format: "??"})
	assert.ErrorIs(t, err, sparrow.ErrNotImplemented)
}

func TestImportComputesNullCount(t *testing.T) {
	mem := memory.NewGoAllocator()

	arr := array.NewInt32Array(mem, []int32{1, 2, 3}, []bool{true, false, true})
	defer arr.Release()

	carr, cschema := cdata.ExportArray(arr)
	defer cschema.Release()
	carr.NullCount = -1

	got, err := cdata.ImportArray(carr, cschema)
	require.NoError(t, err)
	assert.Equal(t, 1, got.NullN())

	got.Release()
	carr.Release()
}

func TestReleaseIsIdempotent(t *testing.T) {
	mem := memory.NewGoAllocator()

	arr := array.NewInt32Array(mem, []int32{1}, nil)
	defer arr.Release()

	carr, cschema := cdata.ExportArray(arr)
	carr.Release()
	carr.Release()
	cschema.Release()
	cschema.Release()
}
