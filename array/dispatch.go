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

package array

import (
	"fmt"

	sparrow "github.com/man-group/sparrow-sub000"
)

// MakeFromData constructs the concrete layout matching the datatype of
// data. It retains data, so the caller keeps its own reference.
func MakeFromData(data *Data) Array {
	switch data.dtype.ID() {
	case sparrow.NULL:
		return NewNullData(data)
	case sparrow.BOOL:
		return NewBooleanData(data)
	case sparrow.UINT8:
		return NewNumberData[uint8](data)
	case sparrow.INT8:
		return NewNumberData[int8](data)
	case sparrow.UINT16:
		return NewNumberData[uint16](data)
	case sparrow.INT16:
		return NewNumberData[int16](data)
	case sparrow.UINT32:
		return NewNumberData[uint32](data)
	case sparrow.INT32:
		return NewNumberData[int32](data)
	case sparrow.UINT64:
		return NewNumberData[uint64](data)
	case sparrow.INT64:
		return NewNumberData[int64](data)
	case sparrow.FLOAT16:
		return NewNumberData[sparrow.Float16](data)
	case sparrow.FLOAT32:
		return NewNumberData[float32](data)
	case sparrow.FLOAT64:
		return NewNumberData[float64](data)
	case sparrow.TIMESTAMP:
		return NewNumberData[sparrow.Timestamp](data)
	case sparrow.DECIMAL128:
		return NewNumberData[sparrow.Decimal128](data)
	case sparrow.DECIMAL256:
		return NewNumberData[sparrow.Decimal256](data)
	case sparrow.STRING:
		return NewBinaryData[int32](data)
	case sparrow.LARGE_STRING:
		return NewBinaryData[int64](data)
	case sparrow.BINARY:
		return NewBinaryData[int32](data)
	case sparrow.LARGE_BINARY:
		return NewBinaryData[int64](data)
	case sparrow.LIST:
		return NewListData[int32](data)
	case sparrow.LARGE_LIST:
		return NewListData[int64](data)
	case sparrow.LIST_VIEW:
		return NewListViewData[int32](data)
	case sparrow.LARGE_LIST_VIEW:
		return NewListViewData[int64](data)
	case sparrow.FIXED_SIZE_LIST:
		return NewFixedSizeListData(data)
	case sparrow.STRUCT:
		return NewStructData(data)
	case sparrow.MAP:
		return NewMapData(data)
	case sparrow.SPARSE_UNION:
		return NewSparseUnionData(data)
	case sparrow.DENSE_UNION:
		return NewDenseUnionData(data)
	case sparrow.RUN_END_ENCODED:
		return NewRunEndEncodedData(data)
	case sparrow.DICTIONARY:
		return makeDictionary(data)
	}
	panic(fmt.Errorf("sparrow/array: %w: unsupported datatype %v", sparrow.ErrNotImplemented, data.dtype))
}

func makeDictionary(data *Data) Array {
	dt := data.dtype.(*sparrow.DictionaryType)
	switch dt.IndexType.ID() {
	case sparrow.INT8:
		return NewDictionaryData[int8](data)
	case sparrow.UINT8:
		return NewDictionaryData[uint8](data)
	case sparrow.INT16:
		return NewDictionaryData[int16](data)
	case sparrow.UINT16:
		return NewDictionaryData[uint16](data)
	case sparrow.INT32:
		return NewDictionaryData[int32](data)
	case sparrow.UINT32:
		return NewDictionaryData[uint32](data)
	case sparrow.INT64:
		return NewDictionaryData[int64](data)
	case sparrow.UINT64:
		return NewDictionaryData[uint64](data)
	}
	panic(fmt.Errorf("sparrow/array: %w: invalid dictionary index type %v", sparrow.ErrType, dt.IndexType))
}
