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
	"strconv"
)

type NullType struct{}

func (*NullType) ID() Type       { return NULL }
func (*NullType) Name() string   { return "null" }
func (*NullType) Format() string { return "n" }
func (*NullType) String() string { return "null" }

type BooleanType struct{}

func (*BooleanType) ID() Type       { return BOOL }
func (*BooleanType) Name() string   { return "bool" }
func (*BooleanType) Format() string { return "b" }
func (*BooleanType) String() string { return "bool" }
func (*BooleanType) BitWidth() int  { return 1 }

type Int8Type struct{}

func (*Int8Type) ID() Type       { return INT8 }
func (*Int8Type) Name() string   { return "int8" }
func (*Int8Type) Format() string { return "c" }
func (*Int8Type) String() string { return "int8" }
func (*Int8Type) BitWidth() int  { return 8 }

type Uint8Type struct{}

func (*Uint8Type) ID() Type       { return UINT8 }
func (*Uint8Type) Name() string   { return "uint8" }
func (*Uint8Type) Format() string { return "C" }
func (*Uint8Type) String() string { return "uint8" }
func (*Uint8Type) BitWidth() int  { return 8 }

type Int16Type struct{}

func (*Int16Type) ID() Type       { return INT16 }
func (*Int16Type) Name() string   { return "int16" }
func (*Int16Type) Format() string { return "s" }
func (*Int16Type) String() string { return "int16" }
func (*Int16Type) BitWidth() int  { return 16 }

type Uint16Type struct{}

func (*Uint16Type) ID() Type       { return UINT16 }
func (*Uint16Type) Name() string   { return "uint16" }
func (*Uint16Type) Format() string { return "S" }
func (*Uint16Type) String() string { return "uint16" }
func (*Uint16Type) BitWidth() int  { return 16 }

type Int32Type struct{}

func (*Int32Type) ID() Type       { return INT32 }
func (*Int32Type) Name() string   { return "int32" }
func (*Int32Type) Format() string { return "i" }
func (*Int32Type) String() string { return "int32" }
func (*Int32Type) BitWidth() int  { return 32 }

type Uint32Type struct{}

func (*Uint32Type) ID() Type       { return UINT32 }
func (*Uint32Type) Name() string   { return "uint32" }
func (*Uint32Type) Format() string { return "I" }
func (*Uint32Type) String() string { return "uint32" }
func (*Uint32Type) BitWidth() int  { return 32 }

type Int64Type struct{}

func (*Int64Type) ID() Type       { return INT64 }
func (*Int64Type) Name() string   { return "int64" }
func (*Int64Type) Format() string { return "l" }
func (*Int64Type) String() string { return "int64" }
func (*Int64Type) BitWidth() int  { return 64 }

type Uint64Type struct{}

func (*Uint64Type) ID() Type       { return UINT64 }
func (*Uint64Type) Name() string   { return "uint64" }
func (*Uint64Type) Format() string { return "L" }
func (*Uint64Type) String() string { return "uint64" }
func (*Uint64Type) BitWidth() int  { return 64 }

type Float16Type struct{}

func (*Float16Type) ID() Type       { return FLOAT16 }
func (*Float16Type) Name() string   { return "float16" }
func (*Float16Type) Format() string { return "e" }
func (*Float16Type) String() string { return "float16" }
func (*Float16Type) BitWidth() int  { return 16 }

type Float32Type struct{}

func (*Float32Type) ID() Type       { return FLOAT32 }
func (*Float32Type) Name() string   { return "float32" }
func (*Float32Type) Format() string { return "f" }
func (*Float32Type) String() string { return "float32" }
func (*Float32Type) BitWidth() int  { return 32 }

type Float64Type struct{}

func (*Float64Type) ID() Type       { return FLOAT64 }
func (*Float64Type) Name() string   { return "float64" }
func (*Float64Type) Format() string { return "g" }
func (*Float64Type) String() string { return "float64" }
func (*Float64Type) BitWidth() int  { return 64 }

// Timestamp is the representation of a point in time as an offset from the
// UNIX epoch, interpreted via the unit and timezone of its TimestampType.
// Calendar and timezone arithmetic is outside this package.
type Timestamp int64

// TimeUnit is the granularity of a Timestamp.
type TimeUnit int

const (
	Second TimeUnit = iota
	Millisecond
	Microsecond
	Nanosecond
)

func (u TimeUnit) String() string { return [...]string{"s", "ms", "us", "ns"}[uint(u)&3] }

func (u TimeUnit) formatRune() rune { return [...]rune{'s', 'm', 'u', 'n'}[uint(u)&3] }

type TimestampType struct {
	Unit     TimeUnit
	TimeZone string
}

func (*TimestampType) ID() Type     { return TIMESTAMP }
func (*TimestampType) Name() string { return "timestamp" }
func (t *TimestampType) Format() string {
	return fmt.Sprintf("ts%c:%s", t.Unit.formatRune(), t.TimeZone)
}
func (t *TimestampType) String() string {
	switch len(t.TimeZone) {
	case 0:
		return "timestamp[" + t.Unit.String() + "]"
	default:
		return "timestamp[" + t.Unit.String() + ", tz=" + t.TimeZone + "]"
	}
}
func (*TimestampType) BitWidth() int { return 64 }

type Decimal128Type struct {
	Precision int32
	Scale     int32
}

func (*Decimal128Type) ID() Type     { return DECIMAL128 }
func (*Decimal128Type) Name() string { return "decimal128" }
func (t *Decimal128Type) Format() string {
	return "d:" + strconv.Itoa(int(t.Precision)) + "," + strconv.Itoa(int(t.Scale))
}
func (t *Decimal128Type) String() string {
	return fmt.Sprintf("%s(%d, %d)", t.Name(), t.Precision, t.Scale)
}
func (*Decimal128Type) BitWidth() int { return 128 }

type Decimal256Type struct {
	Precision int32
	Scale     int32
}

func (*Decimal256Type) ID() Type     { return DECIMAL256 }
func (*Decimal256Type) Name() string { return "decimal256" }
func (t *Decimal256Type) Format() string {
	return fmt.Sprintf("d:%d,%d,256", t.Precision, t.Scale)
}
func (t *Decimal256Type) String() string {
	return fmt.Sprintf("%s(%d, %d)", t.Name(), t.Precision, t.Scale)
}
func (*Decimal256Type) BitWidth() int { return 256 }

var (
	PrimitiveTypes = struct {
		Int8    DataType
		Uint8   DataType
		Int16   DataType
		Uint16  DataType
		Int32   DataType
		Uint32  DataType
		Int64   DataType
		Uint64  DataType
		Float16 DataType
		Float32 DataType
		Float64 DataType
	}{
		Int8:    &Int8Type{},
		Uint8:   &Uint8Type{},
		Int16:   &Int16Type{},
		Uint16:  &Uint16Type{},
		Int32:   &Int32Type{},
		Uint32:  &Uint32Type{},
		Int64:   &Int64Type{},
		Uint64:  &Uint64Type{},
		Float16: &Float16Type{},
		Float32: &Float32Type{},
		Float64: &Float64Type{},
	}

	Null           DataType = &NullType{}
	FixedWidthTypes         = struct {
		Boolean   DataType
		Timestamp DataType
	}{
		Boolean:   &BooleanType{},
		Timestamp: &TimestampType{Unit: Millisecond},
	}

	_ FixedWidthDataType = (*BooleanType)(nil)
	_ FixedWidthDataType = (*Int32Type)(nil)
	_ FixedWidthDataType = (*TimestampType)(nil)
	_ FixedWidthDataType = (*Decimal128Type)(nil)
)
