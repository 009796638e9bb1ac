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

import (
	"fmt"
	"sort"
	"strings"
	"unsafe"
)

// Metadata is an ordered sequence of key/value pairs attached to a field.
type Metadata struct {
	keys   []string
	values []string
}

func NewMetadata(keys, values []string) Metadata {
	if len(keys) != len(values) {
		panic("sparrow: len mismatch")
	}

	n := len(keys)
	if n == 0 {
		return Metadata{}
	}

	md := Metadata{
		keys:   make([]string, n),
		values: make([]string, n),
	}
	copy(md.keys, keys)
	copy(md.values, values)
	return md
}

func MetadataFrom(kv map[string]string) Metadata {
	md := Metadata{
		keys:   make([]string, 0, len(kv)),
		values: make([]string, 0, len(kv)),
	}
	for k := range kv {
		md.keys = append(md.keys, k)
	}
	sort.Strings(md.keys)
	for _, k := range md.keys {
		md.values = append(md.values, kv[k])
	}
	return md
}

func (md Metadata) Len() int         { return len(md.keys) }
func (md Metadata) Keys() []string   { return md.keys }
func (md Metadata) Values() []string { return md.values }

func (md Metadata) String() string {
	o := new(strings.Builder)
	fmt.Fprintf(o, "[")
	for i := range md.keys {
		if i > 0 {
			fmt.Fprintf(o, ", ")
		}
		fmt.Fprintf(o, "%q: %q", md.keys[i], md.values[i])
	}
	fmt.Fprintf(o, "]")
	return o.String()
}

// FindKey returns the index of the key-value pair with the provided key name,
// or -1 if not found.
func (md Metadata) FindKey(k string) int {
	for i, v := range md.keys {
		if v == k {
			return i
		}
	}
	return -1
}

// EncodeMetadata serializes md to the C data interface binary layout:
// an int32 pair count, then for each pair an int32 key length, the key
// bytes, an int32 value length and the value bytes. Integers are
// native-endian, there is no trailing NUL and no alignment padding.
func EncodeMetadata(md Metadata) []byte {
	if md.Len() == 0 {
		return nil
	}

	total := 4
	for i := range md.keys {
		total += 8 + len(md.keys[i]) + len(md.values[i])
	}

	out := make([]byte, 0, total)
	appendint32 := func(v int32) {
		out = append(out, (*[4]byte)(unsafe.Pointer(&v))[:]...)
	}

	appendint32(int32(md.Len()))
	for i := range md.keys {
		appendint32(int32(len(md.keys[i])))
		out = append(out, md.keys[i]...)
		appendint32(int32(len(md.values[i])))
		out = append(out, md.values[i]...)
	}
	return out
}

// DecodeMetadata parses the C data interface binary metadata layout. The
// bytes are copied, not referenced.
func DecodeMetadata(data []byte) (Metadata, error) {
	if len(data) == 0 {
		return Metadata{}, nil
	}

	var err error
	readint32 := func() int32 {
		if err != nil {
			return 0
		}
		if len(data) < 4 {
			err = fmt.Errorf("%w: truncated metadata", ErrInvalid)
			return 0
		}
		v := *(*int32)(unsafe.Pointer(&data[0]))
		data = data[4:]
		return v
	}

	readstr := func() string {
		l := readint32()
		if err != nil {
			return ""
		}
		if l < 0 || int(l) > len(data) {
			err = fmt.Errorf("%w: truncated metadata", ErrInvalid)
			return ""
		}
		s := string(data[:l])
		data = data[l:]
		return s
	}

	npairs := readint32()
	if err != nil {
		return Metadata{}, err
	}
	if npairs < 0 {
		return Metadata{}, fmt.Errorf("%w: negative metadata pair count %d", ErrInvalid, npairs)
	}
	if npairs == 0 {
		return Metadata{}, nil
	}

	keys := make([]string, npairs)
	vals := make([]string, npairs)
	for i := int32(0); i < npairs; i++ {
		keys[i] = readstr()
		vals[i] = readstr()
	}
	if err != nil {
		return Metadata{}, err
	}

	return Metadata{keys: keys, values: vals}, nil
}
