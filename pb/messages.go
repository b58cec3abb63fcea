package pb

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// NewTick asks for one simulation step.
func NewTick() proto.Message { return New(Tick) }

// NewGetState asks for the last step result.
func NewGetState() proto.Message { return New(GetState) }

// NewConfigure carries the desired population size and safety distance.
func NewConfigure(populationSize int32, safetyDistance float64) proto.Message {
	m := New(Configure)
	m.Set(Field(Configure, "population_size"), protoreflect.ValueOfInt32(populationSize))
	m.Set(Field(Configure, "safety_distance"), protoreflect.ValueOfFloat64(safetyDistance))
	return m
}

// ConfigureValues reads a Configure message.
func ConfigureValues(m proto.Message) (populationSize int32, safetyDistance float64) {
	r := m.ProtoReflect()
	return int32(r.Get(Field(Configure, "population_size")).Int()),
		r.Get(Field(Configure, "safety_distance")).Float()
}

// NewReset carries the reset arguments; seed is ignored unless seeded is true.
func NewReset(populationSize int32, arenaSize float64, seed int64, seeded bool) proto.Message {
	m := New(Reset)
	m.Set(Field(Reset, "population_size"), protoreflect.ValueOfInt32(populationSize))
	m.Set(Field(Reset, "arena_size"), protoreflect.ValueOfFloat64(arenaSize))
	m.Set(Field(Reset, "seed"), protoreflect.ValueOfInt64(seed))
	m.Set(Field(Reset, "seeded"), protoreflect.ValueOfBool(seeded))
	return m
}

// ResetValues reads a Reset message.
func ResetValues(m proto.Message) (populationSize int32, arenaSize float64, seed int64, seeded bool) {
	r := m.ProtoReflect()
	return int32(r.Get(Field(Reset, "population_size")).Int()),
		r.Get(Field(Reset, "arena_size")).Float(),
		r.Get(Field(Reset, "seed")).Int(),
		r.Get(Field(Reset, "seeded")).Bool()
}

// SetVec2 stores (x, y) in the Vec2 field name of m.
func SetVec2(m protoreflect.Message, name string, x, y float64) {
	v := m.Mutable(Field(m.Descriptor(), name)).Message()
	v.Set(Field(Vec2, "x"), protoreflect.ValueOfFloat64(x))
	v.Set(Field(Vec2, "y"), protoreflect.ValueOfFloat64(y))
}

// GetVec2 reads the Vec2 field name of m; unset fields read as (0, 0).
func GetVec2(m protoreflect.Message, name string) (x, y float64) {
	v := m.Get(Field(m.Descriptor(), name)).Message()
	return v.Get(Field(Vec2, "x")).Float(), v.Get(Field(Vec2, "y")).Float()
}
