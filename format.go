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
	"strings"

	"golang.org/x/xerrors"
)

var formatToSimpleType = map[string]DataType{
	"n": Null,
	"b": FixedWidthTypes.Boolean,
	"c": PrimitiveTypes.Int8,
	"C": PrimitiveTypes.Uint8,
	"s": PrimitiveTypes.Int16,
	"S": PrimitiveTypes.Uint16,
	"i": PrimitiveTypes.Int32,
	"I": PrimitiveTypes.Uint32,
	"l": PrimitiveTypes.Int64,
	"L": PrimitiveTypes.Uint64,
	"e": PrimitiveTypes.Float16,
	"f": PrimitiveTypes.Float32,
	"g": PrimitiveTypes.Float64,
	"u": BinaryTypes.String,
	"U": BinaryTypes.LargeString,
	"z": BinaryTypes.Binary,
	"Z": BinaryTypes.LargeBinary,
}

// TypeFromFormat builds the DataType encoded by the schema format string f,
// using children for nested types. Flags-borne properties (map keys sorted,
// dictionary ordering) and the dictionary value type are applied by the
// caller, which owns the full schema. A malformed format string is a
// construction-time error: no type is produced.
func TypeFromFormat(f string, children []Field) (DataType, error) {
	if f == "" {
		return nil, fmt.Errorf("%w: empty format string", ErrInvalid)
	}

	if dt, ok := formatToSimpleType[f]; ok {
		return dt, nil
	}

	if f[0] == '+' {
		return typeFromNestedFormat(f, children)
	}

	// handle types with params via colon
	typs := strings.Split(f, ":")
	if len(typs) != 2 {
		return nil, xerrors.Errorf("%w: unknown format string %q", ErrNotImplemented, f)
	}

	switch typs[0] {
	case "tss":
		return &TimestampType{Unit: Second, TimeZone: typs[1]}, nil
	case "tsm":
		return &TimestampType{Unit: Millisecond, TimeZone: typs[1]}, nil
	case "tsu":
		return &TimestampType{Unit: Microsecond, TimeZone: typs[1]}, nil
	case "tsn":
		return &TimestampType{Unit: Nanosecond, TimeZone: typs[1]}, nil
	case "d":
		// decimal is d:<precision>,<scale>[,<bitsize>], size assumed 128
		// when left out
		propList := strings.Split(typs[1], ",")
		bitwidth := 128
		if len(propList) < 2 || len(propList) > 3 {
			return nil, xerrors.Errorf("%w: invalid decimal spec %q: wrong number of properties", ErrInvalid, f)
		}
		if len(propList) == 3 {
			var err error
			bitwidth, err = strconv.Atoi(propList[2])
			if err != nil {
				return nil, xerrors.Errorf("%w: could not parse decimal bitwidth in %q: %s", ErrInvalid, f, err.Error())
			}
		}
		precision, err := strconv.Atoi(propList[0])
		if err != nil {
			return nil, xerrors.Errorf("%w: could not parse decimal precision in %q: %s", ErrInvalid, f, err.Error())
		}
		scale, err := strconv.Atoi(propList[1])
		if err != nil {
			return nil, xerrors.Errorf("%w: could not parse decimal scale in %q: %s", ErrInvalid, f, err.Error())
		}
		switch bitwidth {
		case 128:
			return &Decimal128Type{Precision: int32(precision), Scale: int32(scale)}, nil
		case 256:
			return &Decimal256Type{Precision: int32(precision), Scale: int32(scale)}, nil
		default:
			return nil, xerrors.Errorf("%w: only decimal128 and decimal256 are supported, got %q", ErrNotImplemented, f)
		}
	}

	return nil, xerrors.Errorf("%w: unknown format string %q", ErrNotImplemented, f)
}

func typeFromNestedFormat(f string, children []Field) (DataType, error) {
	oneChild := func() (Field, error) {
		if len(children) != 1 {
			return Field{}, fmt.Errorf("%w: format %q requires exactly one child, got %d", ErrInvalid, f, len(children))
		}
		return children[0], nil
	}

	switch f[1] {
	case 'l':
		child, err := oneChild()
		if err != nil {
			return nil, err
		}
		return ListOfField(child), nil
	case 'L':
		child, err := oneChild()
		if err != nil {
			return nil, err
		}
		return LargeListOfField(child), nil
	case 'v':
		child, err := oneChild()
		if err != nil {
			return nil, err
		}
		switch {
		case strings.HasPrefix(f, "+vl"):
			return ListViewOfField(child), nil
		case strings.HasPrefix(f, "+vL"):
			return LargeListViewOfField(child), nil
		}
	case 'w':
		// fixed size list is +w:# where # is the stride
		child, err := oneChild()
		if err != nil {
			return nil, err
		}
		parts := strings.Split(f, ":")
		if len(parts) != 2 {
			return nil, xerrors.Errorf("%w: invalid fixed size list spec %q", ErrInvalid, f)
		}
		stride, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, xerrors.Errorf("%w: could not parse fixed size list stride in %q: %s", ErrInvalid, f, err.Error())
		}
		if stride <= 0 {
			return nil, xerrors.Errorf("%w: fixed size list stride must be positive in %q", ErrInvalid, f)
		}
		return FixedSizeListOfField(int32(stride), child), nil
	case 's':
		return StructOf(children...), nil
	case 'r':
		if len(children) != 2 {
			return nil, fmt.Errorf("%w: run-end encoded arrays must have 2 children", ErrInvalid)
		}
		return RunEndEncodedOf(children[0].Type, children[1].Type), nil
	case 'm':
		child, err := oneChild()
		if err != nil {
			return nil, err
		}
		st, ok := child.Type.(*StructType)
		if !ok || st.NumFields() != 2 {
			return nil, fmt.Errorf("%w: map child must be a two-field struct", ErrInvalid)
		}
		return MapOf(st.Field(0).Type, st.Field(1).Type), nil
	case 'u':
		if len(f) < 5 || f[3] != ':' {
			return nil, xerrors.Errorf("%w: invalid union format %q", ErrInvalid, f)
		}
		var mode UnionMode
		switch f[2] {
		case 'd':
			mode = DenseMode
		case 's':
			mode = SparseMode
		default:
			return nil, fmt.Errorf("%w: invalid union type", ErrInvalid)
		}

		codes := strings.Split(f[4:], ",")
		typeCodes := make([]UnionTypeCode, 0, len(codes))
		for _, c := range codes {
			v, err := strconv.ParseInt(c, 10, 8)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid type code: %s", ErrInvalid, err)
			}
			if v < 0 {
				return nil, fmt.Errorf("%w: negative type code in union: format string %s", ErrInvalid, f)
			}
			typeCodes = append(typeCodes, UnionTypeCode(v))
		}
		if len(children) != len(typeCodes) {
			return nil, fmt.Errorf("%w: number of children incompatible with union format string", ErrInvalid)
		}
		return UnionOf(mode, children, typeCodes), nil
	}

	return nil, xerrors.Errorf("%w: unknown format string %q", ErrNotImplemented, f)
}
