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

package array_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sparrow "github.com/man-group/sparrow-sub000"
	"github.com/man-group/sparrow-sub000/array"
)

func TestNullArray(t *testing.T) {
	arr := array.NewNullArray(3)
	defer arr.Release()

	assert.Equal(t, 3, arr.Len())
	assert.Equal(t, 3, arr.NullN())
	assert.Equal(t, sparrow.NULL, arr.DataType().ID())
	assert.True(t, arr.IsNull(0))
	assert.False(t, arr.IsValid(2))
}

func TestNullArrayMutation(t *testing.T) {
	arr := array.NewNullArray(1)
	defer arr.Release()

	arr.AppendNulls(2)
	assert.Equal(t, 3, arr.Len())
	assert.Equal(t, 3, arr.NullN())

	array.Erase(arr, 0, 2)
	assert.Equal(t, 1, arr.Len())
	assert.Equal(t, 1, arr.NullN())

	array.Resize(arr, 4)
	assert.Equal(t, 4, arr.Len())
	assert.Equal(t, 4, arr.NullN())
}

func TestNullArrayMarshalJSON(t *testing.T) {
	arr := array.NewNullArray(2)
	defer arr.Release()

	b, err := arr.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `[null, null]`, string(b))
}
