/*
SPDX-License-Identifier: Apache-2.0

Copyright 2025 The Athroisma Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package csvimport

import (
	"fmt"
	"sync"

	"github.com/google/athroisma/core/schema"
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/dynamicpb"
)

// Import configuration can be supplied as a textproto of the following
// schema, kept as an in-code descriptor so no generated code is needed:
//
//	message TableSource {
//	  string name = 1;
//	  message Column {
//	    string header = 1;
//	    string name = 2;
//	    string display_name = 3;
//	    string dtype = 4;  // "", "string", "int64", "float64", "bool"
//	  }
//	  repeated Column column = 2;
//	}
//
// An empty dtype leaves the column on auto-detection.

var (
	tableSourceOnce sync.Once
	tableSourceDesc protoreflect.MessageDescriptor
	tableSourceErr  error
)

func tableSourceDescriptor() (protoreflect.MessageDescriptor, error) {
	tableSourceOnce.Do(func() {
		str := func(name string, number int32) *descriptorpb.FieldDescriptorProto {
			return &descriptorpb.FieldDescriptorProto{
				Name:     proto.String(name),
				Number:   proto.Int32(number),
				Type:     descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum(),
				Label:    descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
				JsonName: proto.String(name),
			}
		}

		fdp := &descriptorpb.FileDescriptorProto{
			Name:    proto.String("athroisma/csvimport/table_source.proto"),
			Package: proto.String("athroisma.csvimport"),
			Syntax:  proto.String("proto3"),
			MessageType: []*descriptorpb.DescriptorProto{
				{
					Name: proto.String("TableSource"),
					Field: []*descriptorpb.FieldDescriptorProto{
						str("name", 1),
						{
							Name:     proto.String("column"),
							Number:   proto.Int32(2),
							Type:     descriptorpb.FieldDescriptorProto_TYPE_MESSAGE.Enum(),
							Label:    descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum(),
							TypeName: proto.String(".athroisma.csvimport.TableSource.Column"),
							JsonName: proto.String("column"),
						},
					},
					NestedType: []*descriptorpb.DescriptorProto{
						{
							Name: proto.String("Column"),
							Field: []*descriptorpb.FieldDescriptorProto{
								str("header", 1),
								str("name", 2),
								str("display_name", 3),
								str("dtype", 4),
							},
						},
					},
				},
			},
		}

		files, err := protodesc.NewFiles(&descriptorpb.FileDescriptorSet{
			File: []*descriptorpb.FileDescriptorProto{fdp},
		})
		if err != nil {
			tableSourceErr = fmt.Errorf("building table source descriptor: %w", err)
			return
		}
		desc, err := files.FindDescriptorByName("athroisma.csvimport.TableSource")
		if err != nil {
			tableSourceErr = err
			return
		}
		tableSourceDesc = desc.(protoreflect.MessageDescriptor)
	})
	return tableSourceDesc, tableSourceErr
}

// OptionsFromTextproto creates ImportOptions from a textproto configuration
// string, starting from DefaultOptions.
func OptionsFromTextproto(textproto string) (ImportOptions, error) {
	desc, err := tableSourceDescriptor()
	if err != nil {
		return ImportOptions{}, err
	}

	msg := dynamicpb.NewMessage(desc)
	if err := prototext.Unmarshal([]byte(textproto), msg); err != nil {
		return ImportOptions{}, fmt.Errorf("failed to parse textproto: %w", err)
	}

	options := DefaultOptions()
	fields := desc.Fields()
	list := msg.Get(fields.ByName("column")).List()
	colDesc := desc.Messages().Get(0)
	colFields := colDesc.Fields()

	for i := 0; i < list.Len(); i++ {
		col := list.Get(i).Message()
		header := col.Get(colFields.ByName("header")).String()
		if header == "" {
			return ImportOptions{}, fmt.Errorf("column %d: header is required", i)
		}

		source := ColumnSource{
			Name:        col.Get(colFields.ByName("name")).String(),
			DisplayName: col.Get(colFields.ByName("display_name")).String(),
		}
		if dtype := col.Get(colFields.ByName("dtype")).String(); dtype != "" {
			dt, err := schema.ParseDType(dtype)
			if err != nil {
				return ImportOptions{}, fmt.Errorf("column %q: %w", header, err)
			}
			source.DType = dt
			source.Pinned = true
		}
		options.ColumnSources[header] = source
	}
	return options, nil
}
