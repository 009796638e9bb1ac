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
	"reflect"

	sparrow "github.com/man-group/sparrow-sub000"
)

// Equal reports whether left and right have the same datatype, length and
// element values. Nulls compare equal to nulls regardless of any stale
// payload behind them.
func Equal(left, right Array) bool {
	if !sparrow.TypeEqual(left.DataType(), right.DataType()) {
		return false
	}
	return sliceEqual(left, 0, left.Len(), right, 0, right.Len())
}

// SliceEqual reports whether left[lbeg:lend] and right[rbeg:rend] hold the
// same element values. The datatypes must already agree.
func SliceEqual(left Array, lbeg, lend int, right Array, rbeg, rend int) bool {
	return sliceEqual(left, lbeg, lend, right, rbeg, rend)
}

func sliceEqual(left Array, lbeg, lend int, right Array, rbeg, rend int) bool {
	if lend-lbeg != rend-rbeg {
		return false
	}
	for i := 0; i < lend-lbeg; i++ {
		l, r := left.IsNull(lbeg+i), right.IsNull(rbeg+i)
		if l != r {
			return false
		}
		if l {
			continue
		}
		if !reflect.DeepEqual(Element(left, lbeg+i), Element(right, rbeg+i)) {
			return false
		}
	}
	return true
}
