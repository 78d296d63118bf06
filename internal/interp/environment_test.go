package interp

import "testing"

func TestEnvironmentGetSet(t *testing.T) {
	env := NewEnvironment()
	if _, ok := env.Get("x"); ok {
		t.Fatal("Get on empty environment should fail")
	}
	env.Set("x", Number{Value: 5})
	v, ok := env.Get("x")
	if !ok || v.(Number).Value != 5 {
		t.Errorf("Get(x) = (%v, %v), want (5, true)", v, ok)
	}
}

func TestEnclosedEnvironmentReadFallback(t *testing.T) {
	outer := NewEnvironment()
	outer.Set("x", Number{Value: 1})
	inner := NewEnclosedEnvironment(outer)

	v, ok := inner.Get("x")
	if !ok || v.(Number).Value != 1 {
		t.Errorf("inner.Get(x) should fall back to outer, got (%v, %v)", v, ok)
	}
}

func TestEnclosedEnvironmentWriteStaysLocal(t *testing.T) {
	outer := NewEnvironment()
	outer.Set("x", Number{Value: 1})
	inner := NewEnclosedEnvironment(outer)

	inner.Set("x", Number{Value: 2})

	innerVal, _ := inner.Get("x")
	outerVal, _ := outer.Get("x")
	if innerVal.(Number).Value != 2 {
		t.Errorf("inner.Get(x) after local write = %v, want 2", innerVal)
	}
	if outerVal.(Number).Value != 1 {
		t.Errorf("outer.Get(x) should be unaffected by inner.Set, got %v", outerVal)
	}
}

func TestPronoun(t *testing.T) {
	env := NewEnvironment()
	if _, ok := env.ResolvePronoun(); ok {
		t.Fatal("ResolvePronoun with no prior assignment should fail")
	}
	env.SetPronoun("tommy")
	name, ok := env.ResolvePronoun()
	if !ok || name != "tommy" {
		t.Errorf("ResolvePronoun() = (%v, %v), want (tommy, true)", name, ok)
	}
}
