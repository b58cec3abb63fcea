package simulation

import (
	"errors"
	"fmt"

	"github.com/lao-tseu-is-alive/go-chase-simulation/pb"
	"github.com/lao-tseu-is-alive/go-chase-simulation/pkg/geometry"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// ErrUnknownMessage is returned when a protobuf message is not of the expected type.
var ErrUnknownMessage = errors.New("unexpected message type")

// ToProto converts the StepResult into its chase.v1.StepResult envelope.
func (r StepResult) ToProto() proto.Message {
	m := pb.New(pb.StepResult)
	m.Set(pb.Field(pb.StepResult, "step"), protoreflect.ValueOfUint64(r.Step))
	pb.SetVec2(m, "distinguished", r.Distinguished.X, r.Distinguished.Y)
	pb.SetVec2(m, "distinguished_heading", r.DistinguishedHeading.X, r.DistinguishedHeading.Y)

	agents := m.Mutable(pb.Field(pb.StepResult, "agents")).List()
	for i, pos := range r.Positions {
		el := agents.NewElement()
		a := el.Message()
		pb.SetVec2(a, "position", pos.X, pos.Y)
		if i < len(r.Headings) {
			pb.SetVec2(a, "heading", r.Headings[i].X, r.Headings[i].Y)
		}
		agents.Append(el)
	}

	m.Set(pb.Field(pb.StepResult, "terminal"), protoreflect.ValueOfBool(r.Terminal))
	m.Set(pb.Field(pb.StepResult, "closest"), protoreflect.ValueOfInt32(int32(r.Closest)))
	m.Set(pb.Field(pb.StepResult, "min_distance"), protoreflect.ValueOfFloat64(r.MinDistance))
	m.Set(pb.Field(pb.StepResult, "repopulated"), protoreflect.ValueOfBool(r.Repopulated))
	return m
}

// StepResultFromProto converts a chase.v1.StepResult envelope back.
func StepResultFromProto(msg proto.Message) (StepResult, error) {
	if !pb.Is(msg, pb.StepResult) {
		return StepResult{}, fmt.Errorf("%w: want %s", ErrUnknownMessage, pb.StepResult.FullName())
	}
	m := msg.ProtoReflect()
	vec := func(pm protoreflect.Message, name string) geometry.Vector2D {
		x, y := pb.GetVec2(pm, name)
		return geometry.Vector2D{X: x, Y: y}
	}

	agents := m.Get(pb.Field(pb.StepResult, "agents")).List()
	r := StepResult{
		Step:                 m.Get(pb.Field(pb.StepResult, "step")).Uint(),
		Distinguished:        vec(m, "distinguished"),
		DistinguishedHeading: vec(m, "distinguished_heading"),
		Positions:            make([]geometry.Vector2D, agents.Len()),
		Headings:             make([]geometry.Vector2D, agents.Len()),
		Terminal:             m.Get(pb.Field(pb.StepResult, "terminal")).Bool(),
		Closest:              int(m.Get(pb.Field(pb.StepResult, "closest")).Int()),
		MinDistance:          m.Get(pb.Field(pb.StepResult, "min_distance")).Float(),
		Repopulated:          m.Get(pb.Field(pb.StepResult, "repopulated")).Bool(),
	}
	for i := 0; i < agents.Len(); i++ {
		a := agents.Get(i).Message()
		r.Positions[i] = vec(a, "position")
		r.Headings[i] = vec(a, "heading")
	}
	return r, nil
}

// EncodeStepResult returns the protobuf wire form of r.
func EncodeStepResult(r StepResult) ([]byte, error) {
	b, err := proto.Marshal(r.ToProto())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal step result: %w", err)
	}
	return b, nil
}

// DecodeStepResult parses the protobuf wire form produced by EncodeStepResult.
func DecodeStepResult(b []byte) (StepResult, error) {
	m := pb.New(pb.StepResult)
	if err := proto.Unmarshal(b, m); err != nil {
		return StepResult{}, fmt.Errorf("failed to unmarshal step result: %w", err)
	}
	return StepResultFromProto(m)
}
