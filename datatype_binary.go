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

type StringType struct{}

func (*StringType) ID() Type       { return STRING }
func (*StringType) Name() string   { return "utf8" }
func (*StringType) Format() string { return "u" }
func (*StringType) String() string { return "utf8" }
func (*StringType) IsUtf8() bool   { return true }
func (*StringType) Layout() int    { return 4 }

type LargeStringType struct{}

func (*LargeStringType) ID() Type       { return LARGE_STRING }
func (*LargeStringType) Name() string   { return "large_utf8" }
func (*LargeStringType) Format() string { return "U" }
func (*LargeStringType) String() string { return "large_utf8" }
func (*LargeStringType) IsUtf8() bool   { return true }
func (*LargeStringType) Layout() int    { return 8 }

type BinaryType struct{}

func (*BinaryType) ID() Type       { return BINARY }
func (*BinaryType) Name() string   { return "binary" }
func (*BinaryType) Format() string { return "z" }
func (*BinaryType) String() string { return "binary" }
func (*BinaryType) IsUtf8() bool   { return false }
func (*BinaryType) Layout() int    { return 4 }

type LargeBinaryType struct{}

func (*LargeBinaryType) ID() Type       { return LARGE_BINARY }
func (*LargeBinaryType) Name() string   { return "large_binary" }
func (*LargeBinaryType) Format() string { return "Z" }
func (*LargeBinaryType) String() string { return "large_binary" }
func (*LargeBinaryType) IsUtf8() bool   { return false }
func (*LargeBinaryType) Layout() int    { return 8 }

var (
	BinaryTypes = struct {
		Binary      DataType
		LargeBinary DataType
		String      DataType
		LargeString DataType
	}{
		Binary:      &BinaryType{},
		LargeBinary: &LargeBinaryType{},
		String:      &StringType{},
		LargeString: &LargeStringType{},
	}

	_ BinaryDataType = (*StringType)(nil)
	_ BinaryDataType = (*LargeStringType)(nil)
	_ BinaryDataType = (*BinaryType)(nil)
	_ BinaryDataType = (*LargeBinaryType)(nil)
)
