// Package pb holds the chase.v1 protobuf messages exchanged with the simulation actor.
//
// The descriptors are assembled at init from descriptorpb (see chase.proto for the
// equivalent source) and instantiated through dynamicpb, so no protoc step is needed.
package pb

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/dynamicpb"
)

const packageName = "chase.v1"

var (
	File protoreflect.FileDescriptor

	Vec2       protoreflect.MessageDescriptor
	Tick       protoreflect.MessageDescriptor
	Configure  protoreflect.MessageDescriptor
	Reset      protoreflect.MessageDescriptor
	GetState   protoreflect.MessageDescriptor
	AgentState protoreflect.MessageDescriptor
	StepResult protoreflect.MessageDescriptor
)

type fieldType = descriptorpb.FieldDescriptorProto_Type

func field(name string, number int32, typ fieldType) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:   proto.String(name),
		Number: proto.Int32(number),
		Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:   typ.Enum(),
	}
}

func messageField(name string, number int32, message string) *descriptorpb.FieldDescriptorProto {
	f := field(name, number, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE)
	f.TypeName = proto.String("." + packageName + "." + message)
	return f
}

func repeated(f *descriptorpb.FieldDescriptorProto) *descriptorpb.FieldDescriptorProto {
	f.Label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()
	return f
}

func message(name string, fields ...*descriptorpb.FieldDescriptorProto) *descriptorpb.DescriptorProto {
	return &descriptorpb.DescriptorProto{Name: proto.String(name), Field: fields}
}

func fileProto() *descriptorpb.FileDescriptorProto {
	const (
		tDouble = descriptorpb.FieldDescriptorProto_TYPE_DOUBLE
		tInt32  = descriptorpb.FieldDescriptorProto_TYPE_INT32
		tInt64  = descriptorpb.FieldDescriptorProto_TYPE_INT64
		tUint64 = descriptorpb.FieldDescriptorProto_TYPE_UINT64
		tBool   = descriptorpb.FieldDescriptorProto_TYPE_BOOL
	)
	return &descriptorpb.FileDescriptorProto{
		Name:    proto.String("chase/v1/chase.proto"),
		Package: proto.String(packageName),
		Syntax:  proto.String("proto3"),
		MessageType: []*descriptorpb.DescriptorProto{
			message("Vec2", field("x", 1, tDouble), field("y", 2, tDouble)),
			message("Tick"),
			message("Configure",
				field("population_size", 1, tInt32),
				field("safety_distance", 2, tDouble)),
			message("Reset",
				field("population_size", 1, tInt32),
				field("arena_size", 2, tDouble),
				field("seed", 3, tInt64),
				field("seeded", 4, tBool)),
			message("GetState"),
			message("AgentState",
				messageField("position", 1, "Vec2"),
				messageField("heading", 2, "Vec2")),
			message("StepResult",
				field("step", 1, tUint64),
				messageField("distinguished", 2, "Vec2"),
				messageField("distinguished_heading", 3, "Vec2"),
				repeated(messageField("agents", 4, "AgentState")),
				field("terminal", 5, tBool),
				field("closest", 6, tInt32),
				field("min_distance", 7, tDouble),
				field("repopulated", 8, tBool)),
		},
	}
}

func init() {
	fd, err := protodesc.NewFile(fileProto(), protoregistry.GlobalFiles)
	if err != nil {
		panic(fmt.Sprintf("pb: building %s descriptors: %v", packageName, err))
	}
	File = fd
	msgs := fd.Messages()
	Vec2 = msgs.ByName("Vec2")
	Tick = msgs.ByName("Tick")
	Configure = msgs.ByName("Configure")
	Reset = msgs.ByName("Reset")
	GetState = msgs.ByName("GetState")
	AgentState = msgs.ByName("AgentState")
	StepResult = msgs.ByName("StepResult")
}

// New returns an empty message of type md.
func New(md protoreflect.MessageDescriptor) *dynamicpb.Message {
	return dynamicpb.NewMessage(md)
}

// Is reports whether m is a message of type md.
func Is(m proto.Message, md protoreflect.MessageDescriptor) bool {
	return m != nil && m.ProtoReflect().Descriptor().FullName() == md.FullName()
}

// Field looks up a field of md by name and panics when it does not exist.
func Field(md protoreflect.MessageDescriptor, name string) protoreflect.FieldDescriptor {
	fd := md.Fields().ByName(protoreflect.Name(name))
	if fd == nil {
		panic(fmt.Sprintf("pb: %s has no field %q", md.FullName(), name))
	}
	return fd
}
