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
	"sort"

	"github.com/goccy/go-json"

	sparrow "github.com/man-group/sparrow-sub000"
	"github.com/man-group/sparrow-sub000/internal/debug"
	"github.com/man-group/sparrow-sub000/memory"
)

// RunEndEncoded is the run-end encoded layout: no buffers of its own, a
// run ends child holding the accumulated end of each run and a values child
// holding one value per run. Nullness lives in the values child.
type RunEndEncoded struct {
	array
	ends   Array
	values Array
	view   runEndsView
}

// NewRunEndEncodedData returns a run-end encoded layout adopting data
// zero-copy.
func NewRunEndEncodedData(data *Data) *RunEndEncoded {
	a := &RunEndEncoded{}
	a.refCount = 1
	a.setData(data)
	return a
}

// NewRunEndEncodedArray builds a fresh run-end encoded array of the given
// logical length over parallel runEnds and values children.
func NewRunEndEncodedArray(runEnds, values Array, length int) *RunEndEncoded {
	debug.Assert(runEnds.Len() == values.Len(), "one run end per value required")
	debug.Assert(runEnds.NullN() == 0, "run ends may not be null")

	dt := sparrow.RunEndEncodedOf(runEnds.DataType(), values.DataType())
	debug.Assert(dt.ValidRunEndsType(runEnds.DataType()), "invalid run ends type")

	data := NewData(dt, length, []*memory.Buffer{nil},
		[]*Data{runEnds.Data(), values.Data()}, 0, 0)
	defer data.Release()
	return NewRunEndEncodedData(data)
}

// NewRunEndEncodedFromLengths builds a run-end encoded array with 32-bit
// run ends from one run length per values row.
func NewRunEndEncodedFromLengths(mem memory.Allocator, values Array, runLengths []int32) *RunEndEncoded {
	debug.Assert(values.Len() == len(runLengths), "one run length per value required")

	ends := make([]int32, len(runLengths))
	var acc int32
	for i, n := range runLengths {
		debug.Assert(n > 0, "runs must be non-empty")
		acc += n
		ends[i] = acc
	}
	runEnds := NewInt32Array(mem, ends, nil)
	defer runEnds.Release()
	return NewRunEndEncodedArray(runEnds, values, int(acc))
}

func (a *RunEndEncoded) setData(data *Data) {
	a.array.setData(data)
	if a.ends != nil {
		a.ends.Release()
	}
	if a.values != nil {
		a.values.Release()
	}
	a.ends = MakeFromData(data.childData[0])
	a.values = MakeFromData(data.childData[1])
	a.view = newRunEndsView(a.ends)

	// nullness lives per run, the cache must be rebuilt by scanning them
	nulls := 0
	lo, hi := int64(data.offset), int64(data.offset+data.length)
	for r := 0; r < a.ends.Len(); r++ {
		if !a.values.IsNull(r) {
			continue
		}
		beg, end := a.runStart(r), a.view.at(r)
		if beg < lo {
			beg = lo
		}
		if end > hi {
			end = hi
		}
		if end > beg {
			nulls += int(end - beg)
		}
	}
	data.nullN = nulls
}

func (a *RunEndEncoded) update() { a.setData(a.data) }

func (a *RunEndEncoded) Retain() {
	a.array.Retain()
	a.ends.Retain()
	a.values.Retain()
}

func (a *RunEndEncoded) Release() {
	a.array.Release()
	a.ends.Release()
	a.values.Release()
}

// RunEndsArr returns the run ends child.
func (a *RunEndEncoded) RunEndsArr() Array { return a.ends }

// Values returns the values child, one element per run.
func (a *RunEndEncoded) Values() Array { return a.values }

// NumRuns returns the number of physical runs.
func (a *RunEndEncoded) NumRuns() int { return a.ends.Len() }

func (a *RunEndEncoded) runStart(r int) int64 {
	if r == 0 {
		return 0
	}
	return a.view.at(r - 1)
}

// GetPhysicalIndex returns the run that logical element i falls in.
func (a *RunEndEncoded) GetPhysicalIndex(i int) int {
	debug.Assert(i >= 0 && i < a.Len(), "index out of range")
	p := int64(a.data.offset + i)
	return sort.Search(a.ends.Len(), func(r int) bool { return a.view.at(r) > p })
}

func (a *RunEndEncoded) IsNull(i int) bool  { return a.values.IsNull(a.GetPhysicalIndex(i)) }
func (a *RunEndEncoded) IsValid(i int) bool { return !a.IsNull(i) }

// insertValuesFrom splits the run covering pos in two and encodes every
// inserted row as its own single-element run. The result stays a valid
// encoding but is not canonical: adjacent equal runs are not merged.
func (a *RunEndEncoded) insertValuesFrom(pos int, src Array, beg, end int) {
	s := src.(*RunEndEncoded)
	n := end - beg
	p := int64(a.data.offset + pos)

	// run containing p, or NumRuns when appending at the very end
	r := sort.Search(a.NumRuns(), func(k int) bool { return a.view.at(k) > p })
	if r < a.NumRuns() && a.runStart(r) < p {
		// split [start, end) into [start, p) and [p, end), duplicating the
		// value through a copy since source and destination alias here
		a.view.insert(r, []int64{p})
		dup := a.values.Data().Clone()
		dupArr := MakeFromData(dup)
		InsertFrom(a.values.(MutableArray), r, dupArr, r, r+1)
		dupArr.Release()
		dup.Release()
		r++
	}

	// every run end from r on moves past the inserted rows
	for k := r; k < a.NumRuns(); k++ {
		a.view.set(k, a.view.at(k)+int64(n))
	}

	newEnds := make([]int64, n)
	for i := range newEnds {
		newEnds[i] = p + int64(i) + 1
	}
	a.view.insert(r, newEnds)
	for i := 0; i < n; i++ {
		sp := s.GetPhysicalIndex(beg + i)
		InsertFrom(a.values.(MutableArray), r+i, s.values, sp, sp+1)
	}
}

func (a *RunEndEncoded) eraseValues(pos, n int) {
	p := int64(a.data.offset + pos)
	q := p + int64(n)

	for r := a.NumRuns() - 1; r >= 0; r-- {
		beg, end := a.runStart(r), a.view.at(r)
		switch {
		case end <= p:
			// before the erased window, untouched
		case beg >= q:
			a.view.set(r, end-int64(n))
		default:
			keep := end - beg - (minI64(end, q) - maxI64(beg, p))
			if keep == 0 {
				a.view.erase(r, 1)
				Erase(a.values.(MutableArray), r, 1)
			} else {
				a.view.set(r, minI64(end, p)+maxI64(end-q, 0))
			}
		}
	}
}

// resizeValues grows by appending one run of nulls covering all the new
// rows.
func (a *RunEndEncoded) resizeValues(n int) {
	cur := a.data.length
	switch {
	case n < cur:
		a.eraseValues(n, cur-n)
	case n > cur:
		end := int64(a.data.offset + n)
		r := a.NumRuns()
		a.view.insert(r, []int64{end})
		Resize(a.values.(MutableArray), r+1)
	}
}

func minI64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func maxI64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func (a *RunEndEncoded) getOneForMarshal(i int) interface{} {
	r := a.GetPhysicalIndex(i)
	if a.values.IsNull(r) {
		return nil
	}
	return Element(a.values, r)
}

func (a *RunEndEncoded) String() string { return stringOf(a) }

func (a *RunEndEncoded) MarshalJSON() ([]byte, error) {
	vals := make([]interface{}, 0, a.Len())
	for it := a.Iterate(); it.Next(); {
		vals = append(vals, it.Value())
	}
	return json.Marshal(vals)
}

// RunIterator walks the logical elements in order, advancing the physical
// run only when the elements remaining in the current one are used up. A
// single binary search locates the first run; every step after that is O(1).
type RunIterator struct {
	arr       *RunEndEncoded
	pos       int
	run       int
	remaining int64
}

// Iterate returns a forward iterator over the logical elements. Call Next
// before reading the first element.
func (a *RunEndEncoded) Iterate() *RunIterator {
	return &RunIterator{arr: a, pos: -1}
}

// Next advances to the next logical element, returning false past the end.
func (it *RunIterator) Next() bool {
	it.pos++
	if it.pos >= it.arr.Len() {
		return false
	}
	if it.remaining == 0 {
		if it.pos == 0 {
			it.run = it.arr.GetPhysicalIndex(0)
		} else {
			it.run++
		}
		beg := maxI64(it.arr.runStart(it.run), int64(it.arr.data.offset))
		it.remaining = it.arr.view.at(it.run) - beg
	}
	it.remaining--
	return true
}

// RunIndex returns the physical run of the current element.
func (it *RunIterator) RunIndex() int { return it.run }

// IsNull reports whether the current element is null.
func (it *RunIterator) IsNull() bool { return it.arr.values.IsNull(it.run) }

// Value returns the rendered value of the current element, nil when null.
func (it *RunIterator) Value() interface{} {
	if it.IsNull() {
		return nil
	}
	return Element(it.arr.values, it.run)
}

// runEndsView gives the encoded layout width-independent typed access to
// its run ends child.
type runEndsView interface {
	at(r int) int64
	set(r int, v int64)
	insert(r int, vals []int64)
	erase(r, n int)
}

type runEndsOf[E sparrow.RunEndsType] struct {
	num *Number[E]
}

func newRunEndsView(ends Array) runEndsView {
	switch e := ends.(type) {
	case *Number[int16]:
		return runEndsOf[int16]{e}
	case *Number[int32]:
		return runEndsOf[int32]{e}
	case *Number[int64]:
		return runEndsOf[int64]{e}
	case *Number[uint16]:
		return runEndsOf[uint16]{e}
	case *Number[uint32]:
		return runEndsOf[uint32]{e}
	case *Number[uint64]:
		return runEndsOf[uint64]{e}
	}
	panic("sparrow/array: invalid run ends type")
}

func (v runEndsOf[E]) at(r int) int64 { return int64(v.num.Value(r)) }

func (v runEndsOf[E]) set(r int, val int64) {
	v.num.Set(r, sparrow.NullableOf(E(val)))
}

func (v runEndsOf[E]) insert(r int, vals []int64) {
	nv := make([]sparrow.Nullable[E], len(vals))
	for i, val := range vals {
		nv[i] = sparrow.NullableOf(E(val))
	}
	v.num.Insert(r, nv)
}

func (v runEndsOf[E]) erase(r, n int) { Erase(v.num, r, n) }

var (
	_ Array        = (*RunEndEncoded)(nil)
	_ MutableArray = (*RunEndEncoded)(nil)
)
