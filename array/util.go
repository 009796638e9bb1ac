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
	"strings"

	"github.com/goccy/go-json"

	sparrow "github.com/man-group/sparrow-sub000"
)

// OffsetsFromSizes produces the canonical cumulative offset buffer for the
// given per-element sizes: len(sizes)+1 entries, offsets[0] = 0 and
// offsets[k+1] = offsets[k] + sizes[k]. Every offset-based layout builds its
// offsets through here.
func OffsetsFromSizes[O sparrow.OffsetType](sizes []O) []O {
	out := make([]O, len(sizes)+1)
	for i, sz := range sizes {
		out[i+1] = out[i] + sz
	}
	return out
}

// marshalJSON renders the array as a JSON list, element by element, the way
// each layout's getOneForMarshal presents them.
func marshalJSON(a Array) ([]byte, error) {
	vals := make([]interface{}, a.Len())
	for i := range vals {
		vals[i] = a.getOneForMarshal(i)
	}
	return json.Marshal(vals)
}

// stringOf renders the array the way the layouts print themselves: a
// bracketed, space-separated element list with "(null)" for nulls.
func stringOf(a Array) string {
	o := new(strings.Builder)
	o.WriteString("[")
	for i := 0; i < a.Len(); i++ {
		if i > 0 {
			o.WriteString(" ")
		}
		if a.IsNull(i) {
			o.WriteString("(null)")
			continue
		}
		fmt.Fprintf(o, "%v", a.getOneForMarshal(i))
	}
	o.WriteString("]")
	return o.String()
}

// Element returns the rendered value of element i of a, or nil when the
// element is null. It is the type-erased element accessor used by the
// encoded layouts and by tests.
func Element(a Array, i int) interface{} {
	return a.getOneForMarshal(i)
}
