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

// Package protoloader loads textproto datasets into DataTables ready for
// rollup aggregation. A pre-populated proto registry supplies the message
// descriptors; nested repeated messages are denormalized so every leaf
// record becomes one flat row carrying its ancestors' scalar fields.
package protoloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/athroisma/core/columns"
	"github.com/google/athroisma/core/tables"
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/dynamicpb"
)

// Loader parses textproto datasets against a pre-populated proto registry.
type Loader struct {
	registry *protoregistry.Files
}

// NewLoader creates a Loader. The registry must already contain the file
// descriptors of every message the loader will be asked for.
func NewLoader(registry *protoregistry.Files) *Loader {
	return &Loader{registry: registry}
}

// LoadFile reads a textproto file and returns it denormalized as a
// DataTable. messageName is the fully qualified root message name.
func (l *Loader) LoadFile(path, messageName string) (*tables.DataTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read textproto file: %w", err)
	}
	return l.Load(data, messageName)
}

// Load parses textproto bytes and returns them denormalized as a DataTable.
func (l *Loader) Load(data []byte, messageName string) (*tables.DataTable, error) {
	msg, err := l.parse(data, messageName)
	if err != nil {
		return nil, err
	}

	chain := linearChain(msg.Descriptor())
	rows := newRowAccumulator(chain)
	rows.walk(msg, chain, 0)
	return rows.toTable()
}

// parse unmarshals textproto bytes into a dynamic message looked up by name.
func (l *Loader) parse(data []byte, messageName string) (protoreflect.Message, error) {
	desc, err := l.registry.FindDescriptorByName(protoreflect.FullName(messageName))
	if err != nil {
		return nil, fmt.Errorf("message %q not found in registry: %w", messageName, err)
	}
	msgDesc, ok := desc.(protoreflect.MessageDescriptor)
	if !ok {
		return nil, fmt.Errorf("%q is not a message type", messageName)
	}

	msg := dynamicpb.NewMessage(msgDesc)
	opts := prototext.UnmarshalOptions{Resolver: l}
	if err := opts.Unmarshal(data, msg); err != nil {
		return nil, fmt.Errorf("failed to parse textproto: %w", err)
	}
	return msg, nil
}

// FindMessageByName implements protoregistry.MessageTypeResolver.
func (l *Loader) FindMessageByName(name protoreflect.FullName) (protoreflect.MessageType, error) {
	desc, err := l.registry.FindDescriptorByName(name)
	if err != nil {
		return nil, err
	}
	msgDesc, ok := desc.(protoreflect.MessageDescriptor)
	if !ok {
		return nil, fmt.Errorf("%q is not a message type", name)
	}
	return dynamicpb.NewMessageType(msgDesc), nil
}

// FindMessageByURL implements protoregistry.MessageTypeResolver.
func (l *Loader) FindMessageByURL(url string) (protoreflect.MessageType, error) {
	name := protoreflect.FullName(strings.TrimPrefix(url, "type.googleapis.com/"))
	return l.FindMessageByName(name)
}

// FindExtensionByName implements protoregistry.ExtensionTypeResolver.
func (l *Loader) FindExtensionByName(name protoreflect.FullName) (protoreflect.ExtensionType, error) {
	return nil, protoregistry.NotFound
}

// FindExtensionByNumber implements protoregistry.ExtensionTypeResolver.
func (l *Loader) FindExtensionByNumber(message protoreflect.FullName, field protoreflect.FieldNumber) (protoreflect.ExtensionType, error) {
	return nil, protoregistry.NotFound
}

// Messages lists every message name registered with the loader.
func (l *Loader) Messages() []string {
	var names []string
	l.registry.RangeFiles(func(fd protoreflect.FileDescriptor) bool {
		msgs := fd.Messages()
		for i := 0; i < msgs.Len(); i++ {
			names = append(names, string(msgs.Get(i).FullName()))
		}
		return true
	})
	return names
}

// chainLevel is one level of a linear message hierarchy: the scalar fields
// that become columns at this depth, plus the single repeated message field
// leading down (nil at the leaf).
type chainLevel struct {
	scalars []protoreflect.FieldDescriptor
	child   protoreflect.FieldDescriptor
}

// linearChain walks a message descriptor down its repeated-message fields,
// one level per message. If a level has several repeated message fields the
// first declared one is followed.
func linearChain(msgDesc protoreflect.MessageDescriptor) []chainLevel {
	var chain []chainLevel
	current := msgDesc

	for current != nil {
		var level chainLevel
		var next protoreflect.MessageDescriptor

		fields := current.Fields()
		for i := 0; i < fields.Len(); i++ {
			fd := fields.Get(i)
			if fd.Kind() == protoreflect.MessageKind && fd.Cardinality() == protoreflect.Repeated {
				if level.child == nil {
					level.child = fd
					next = fd.Message()
				}
				continue
			}
			if fd.Kind() != protoreflect.MessageKind {
				level.scalars = append(level.scalars, fd)
			}
		}

		chain = append(chain, level)
		current = next
	}
	return chain
}

// rowAccumulator denormalizes a hierarchical message into flat rows. Column
// types follow the proto field kinds so a rollup over the result can reduce
// numeric fields without reparsing.
type rowAccumulator struct {
	fields  []protoreflect.FieldDescriptor
	byLevel [][]string
	current map[string]string
	rows    [][]string
}

func newRowAccumulator(chain []chainLevel) *rowAccumulator {
	acc := &rowAccumulator{
		current: make(map[string]string),
		byLevel: make([][]string, len(chain)),
	}
	for i, level := range chain {
		for _, fd := range level.scalars {
			acc.fields = append(acc.fields, fd)
			acc.byLevel[i] = append(acc.byLevel[i], string(fd.Name()))
		}
	}
	return acc
}

// walk recurses through the repeated-message chain, emitting one row per
// leaf. A node whose child list is empty still emits a row, with the child
// levels' columns blanked; stale values from a previous sibling must not
// leak into it.
func (acc *rowAccumulator) walk(msg protoreflect.Message, chain []chainLevel, depth int) {
	if depth >= len(chain) {
		return
	}
	level := chain[depth]

	for _, fd := range level.scalars {
		acc.current[string(fd.Name())] = formatScalar(msg.Get(fd), fd)
	}

	if level.child == nil || depth == len(chain)-1 {
		acc.emit()
		return
	}

	list := msg.Get(level.child).List()
	if list.Len() == 0 {
		acc.clearBelow(depth + 1)
		acc.emit()
		return
	}
	for i := 0; i < list.Len(); i++ {
		acc.clearBelow(depth + 1)
		acc.walk(list.Get(i).Message(), chain, depth+1)
	}
}

func (acc *rowAccumulator) clearBelow(depth int) {
	for i := depth; i < len(acc.byLevel); i++ {
		for _, name := range acc.byLevel[i] {
			acc.current[name] = ""
		}
	}
}

func (acc *rowAccumulator) emit() {
	row := make([]string, len(acc.fields))
	for i, fd := range acc.fields {
		row[i] = acc.current[string(fd.Name())]
	}
	acc.rows = append(acc.rows, row)
}

// toTable materializes the accumulated rows as a DataTable with one column
// per scalar field, typed by the field's proto kind.
func (acc *rowAccumulator) toTable() (*tables.DataTable, error) {
	table := tables.NewDataTable()
	for i, fd := range acc.fields {
		name := string(fd.Name())
		col := columnForKind(fd, columns.NewColumnDef(name, name))
		for _, row := range acc.rows {
			if err := col.AppendString(orZero(row[i], fd)); err != nil {
				return nil, fmt.Errorf("field %q: %w", name, err)
			}
		}
		table.AddColumn(col)
	}
	return table, nil
}

// columnForKind picks the column type matching a proto field kind.
func columnForKind(fd protoreflect.FieldDescriptor, def *columns.ColumnDef) columns.IDataColumn {
	switch fd.Kind() {
	case protoreflect.Int32Kind, protoreflect.Sint32Kind, protoreflect.Sfixed32Kind,
		protoreflect.Int64Kind, protoreflect.Sint64Kind, protoreflect.Sfixed64Kind,
		protoreflect.Uint32Kind, protoreflect.Fixed32Kind:
		return columns.NewInt64Column(def)
	case protoreflect.FloatKind, protoreflect.DoubleKind:
		return columns.NewFloat64Column(def)
	case protoreflect.BoolKind:
		return columns.NewBoolColumn(def)
	default:
		return columns.NewStringColumn(def)
	}
}

// orZero substitutes a parseable zero for blanked values in typed columns.
func orZero(s string, fd protoreflect.FieldDescriptor) string {
	if s != "" {
		return s
	}
	switch fd.Kind() {
	case protoreflect.Int32Kind, protoreflect.Sint32Kind, protoreflect.Sfixed32Kind,
		protoreflect.Int64Kind, protoreflect.Sint64Kind, protoreflect.Sfixed64Kind,
		protoreflect.Uint32Kind, protoreflect.Fixed32Kind:
		return "0"
	case protoreflect.FloatKind, protoreflect.DoubleKind:
		return "0"
	case protoreflect.BoolKind:
		return "false"
	default:
		return ""
	}
}

// formatScalar renders a proto value as the string its column type parses.
func formatScalar(val protoreflect.Value, fd protoreflect.FieldDescriptor) string {
	switch fd.Kind() {
	case protoreflect.BoolKind:
		return strconv.FormatBool(val.Bool())
	case protoreflect.Int32Kind, protoreflect.Sint32Kind, protoreflect.Sfixed32Kind,
		protoreflect.Int64Kind, protoreflect.Sint64Kind, protoreflect.Sfixed64Kind:
		return strconv.FormatInt(val.Int(), 10)
	case protoreflect.Uint32Kind, protoreflect.Fixed32Kind,
		protoreflect.Uint64Kind, protoreflect.Fixed64Kind:
		return strconv.FormatUint(val.Uint(), 10)
	case protoreflect.FloatKind, protoreflect.DoubleKind:
		return columns.FormatFloat64(val.Float())
	case protoreflect.StringKind:
		return val.String()
	case protoreflect.BytesKind:
		return string(val.Bytes())
	case protoreflect.EnumKind:
		if ev := fd.Enum().Values().ByNumber(val.Enum()); ev != nil {
			return string(ev.Name())
		}
		return strconv.FormatInt(int64(val.Enum()), 10)
	default:
		return val.String()
	}
}
