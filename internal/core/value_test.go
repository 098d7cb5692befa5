package core

import "testing"

func TestValueOfScalars(t *testing.T) {
	if v := ValueOf("hello"); v.AsString() != "hello" {
		t.Errorf("Expected hello, got %q", v.AsString())
	}
	if v := ValueOf(float64(16)); v.AsString() != "16" {
		t.Errorf("Expected 16, got %q", v.AsString())
	}
	if v := ValueOf(1.5); v.AsString() != "1.5" {
		t.Errorf("Expected 1.5, got %q", v.AsString())
	}
	if v := ValueOf(true); v.AsString() != "true" {
		t.Errorf("Expected true, got %q", v.AsString())
	}
	if v := ValueOf(nil); !v.IsNull() {
		t.Error("Expected null value")
	}
}

func TestValueOfNested(t *testing.T) {
	v := ValueOf(map[string]any{
		"label": "Go",
		"tags":  []any{"a", "b"},
	})

	m, ok := v.AsMap()
	if !ok {
		t.Fatal("Expected map value")
	}
	if m["label"].AsString() != "Go" {
		t.Errorf("Expected Go, got %q", m["label"].AsString())
	}

	list, ok := m["tags"].AsList()
	if !ok || len(list) != 2 {
		t.Fatalf("Expected 2-element list, got %v", list)
	}
	if list[1].AsString() != "b" {
		t.Errorf("Expected b, got %q", list[1].AsString())
	}
}

func TestValueUnexpectedShapeFallsBack(t *testing.T) {
	v := ValueOf(struct{ X int }{1})
	if v.Kind() != KindString || v.AsString() != "" {
		t.Errorf("Expected empty string fallback, got kind=%v %q", v.Kind(), v.AsString())
	}
}

func TestPropsAccessors(t *testing.T) {
	props := Props{
		"text":    StringValue("Hello"),
		"columns": NumberValue(3),
		"center":  BoolValue(true),
	}

	if props.GetString("text") != "Hello" {
		t.Errorf("Expected Hello, got %q", props.GetString("text"))
	}
	if props.StringOr("missing", "fallback") != "fallback" {
		t.Error("Expected fallback for missing key")
	}
	if !props.GetBool("center") {
		t.Error("Expected center to be true")
	}
	if f, ok := props.GetFloat("columns"); !ok || f != 3 {
		t.Errorf("Expected 3, got %v (%v)", f, ok)
	}
}

func TestValueBoolFromString(t *testing.T) {
	b, ok := StringValue("true").AsBool()
	if !ok || !b {
		t.Error("Expected string true to read as bool")
	}
	if _, ok := StringValue("yes").AsBool(); ok {
		t.Error("Expected yes not to read as bool")
	}
}
