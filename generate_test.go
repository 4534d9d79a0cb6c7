package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeededGeneratorsProduceIdenticalStreams(t *testing.T) {
	a := newSeededGenerator(99)
	b := newSeededGenerator(99)

	for i := 0; i < 100; i++ {
		require.Equal(t, a.randRange(0, 1000), b.randRange(0, 1000), "draw %d", i)
	}
	require.Equal(t, a.faker.Word(), b.faker.Word())
	require.Equal(t, a.faker.Email(), b.faker.Email())
}

func TestIntTypeRespectsBounds(t *testing.T) {
	gen := newSeededGenerator(5)
	typ := &Type{Type: IntType, Min: 5, Max: 10}

	for i := 0; i < 1000; i++ {
		val, err := typ.generateSelf(gen)
		require.NoError(t, err)
		require.GreaterOrEqual(t, val.(int), 5)
		require.Less(t, val.(int), 10)
	}
}

func TestOneOfTypePicksFromValues(t *testing.T) {
	gen := newSeededGenerator(5)
	typ := &Type{Type: OneOfType, OneOf: []interface{}{"red", "green", "blue"}}

	for i := 0; i < 100; i++ {
		val, err := typ.generateSelf(gen)
		require.NoError(t, err)
		require.Contains(t, typ.OneOf, val)
	}
}

func TestSequenceTypeIsMonotonic(t *testing.T) {
	gen := newSeededGenerator(5)
	typ := &Type{Type: SequenceType, Min: 10}

	first, err := typ.generateSelf(gen)
	require.NoError(t, err)
	require.EqualValues(t, 10, first)

	for i := 0; i < 5; i++ {
		val, err := typ.generateSelf(gen)
		require.NoError(t, err)
		require.EqualValues(t, 11+i, val)
	}
}

func TestSequenceTypeCapsAtMax(t *testing.T) {
	gen := newSeededGenerator(5)
	typ := &Type{Type: SequenceType, Min: 1, Max: 3}

	for i := 0; i < 10; i++ {
		val, err := typ.generateSelf(gen)
		require.NoError(t, err)
		require.LessOrEqual(t, toInt64(t, val), int64(3))
	}
}

func TestConstTypeRequiresValue(t *testing.T) {
	gen := newSeededGenerator(5)
	typ := &Type{Type: ConstType}

	_, err := typ.generateSelf(gen)
	require.Error(t, err)
}

func TestReferenceTypeReadsSharedFields(t *testing.T) {
	gen := newSeededGenerator(1)
	typ := &Type{Reference: "user_id"}

	val, err := typ.GenerateByType(gen, map[string]any{"user_id": 42}, nil)
	require.NoError(t, err)
	require.Equal(t, 42, val)

	_, err = typ.GenerateByType(gen, emptySharedFields, nil)
	require.Error(t, err)
}

func TestExternalSourceTypeRequiresReader(t *testing.T) {
	gen := newSeededGenerator(1)
	typ := &Type{FromExternalSource: true}

	_, err := typ.GenerateByType(gen, emptySharedFields, nil)
	require.Error(t, err)
}

func TestTemplateAndAsStringDecorateValue(t *testing.T) {
	gen := newSeededGenerator(1)
	typ := &Type{Type: ConstType, Const: 7, AsString: true, Template: "id-%s"}

	val, err := typ.GenerateByType(gen, emptySharedFields, nil)
	require.NoError(t, err)
	require.Equal(t, "id-7", val)
}

func TestFieldGeneratesNestedObject(t *testing.T) {
	gen := newSeededGenerator(8)
	field := Field{
		Fields: []Field{
			{Name: "id", Type: &Type{Type: IntType, Min: 1, Max: 100}},
			{Name: "name", Type: &Type{Type: StringType}},
		},
	}

	val := field.Generate(gen, emptySharedFields, nil)
	obj, ok := val.(map[string]any)
	require.True(t, ok)
	require.Contains(t, obj, "id")
	require.Contains(t, obj, "name")
}

func TestArrayLengthWithinBounds(t *testing.T) {
	gen := newSeededGenerator(8)
	field := Field{
		Array: &Array{
			Value:  &Field{Type: &Type{Type: BoolType}},
			MinLen: 2,
			MaxLen: 6,
		},
	}

	for i := 0; i < 100; i++ {
		val := field.Generate(gen, emptySharedFields, nil)
		arr, ok := val.([]any)
		require.True(t, ok)
		require.GreaterOrEqual(t, len(arr), 2)
		require.Less(t, len(arr), 6)
	}
}

func TestNilChanceAlwaysNil(t *testing.T) {
	gen := newSeededGenerator(8)
	field := Field{NilChance: 100, Type: &Type{Type: BoolType}}

	for i := 0; i < 20; i++ {
		require.Nil(t, field.Generate(gen, emptySharedFields, nil))
	}
}

func TestEntityCountLimitsGeneration(t *testing.T) {
	gen := newSeededGenerator(7)
	ent := Entity{
		Field:  Field{Type: &Type{Type: ConstType, Const: "x"}},
		Config: EntityConfig{Count: 2},
	}

	generated := 0
	for i := 0; i < 20; i++ {
		_, ok := ent.Generate(gen, emptySharedFields, nil)
		if ok {
			generated++
		}
	}
	require.Equal(t, 2, generated)
}

func TestEntityDefaultsToFullRate(t *testing.T) {
	gen := newSeededGenerator(7)
	ent := Entity{
		Field: Field{Type: &Type{Type: ConstType, Const: "x"}},
	}

	for i := 0; i < 20; i++ {
		_, ok := ent.Generate(gen, emptySharedFields, nil)
		require.True(t, ok)
	}
}

func TestCsvColumnsAreSortedAndCached(t *testing.T) {
	ent := Entity{
		Field: Field{Fields: []Field{
			{Name: "b", Type: &Type{Type: BoolType}},
			{Name: "a", Type: &Type{Type: BoolType}},
		}},
	}

	require.Equal(t, []string{"a", "b"}, ent.CsvColumns())
	require.Equal(t, []string{"a", "b"}, ent.CsvColumns())
}

func TestGenerateSharedFieldsResolvesByName(t *testing.T) {
	gen := newSeededGenerator(3)
	cfg := &Config{
		SharedFields: []Field{
			{Name: "session", Type: &Type{Type: ConstType, Const: "abc"}},
		},
	}

	shared := cfg.GenerateSharedFields(gen, nil)
	require.Equal(t, "abc", shared["session"])
}

func toInt64(t *testing.T, val any) int64 {
	t.Helper()
	switch v := val.(type) {
	case int:
		return int64(v)
	case int64:
		return v
	default:
		t.Fatalf("unexpected value type %T", val)
		return 0
	}
}
