package smallworld

import "testing"

func TestNewGroupDropsNil(t *testing.T) {
	g := NewGroup(nil, Rectangle{1, 1}, nil, Text{Size: 1, Content: "a"})
	grp, ok := g.(Group)
	if !ok {
		t.Fatalf("NewGroup returned %T", g)
	}
	if len(grp.Children) != 2 {
		t.Errorf("children = %d, want 2", len(grp.Children))
	}
}

func TestBuilderHelpers(t *testing.T) {
	r := Rectangle{2, 3}
	if got := Colored(red, r); got != (ColorWrap{Color: red, Child: r}) {
		t.Errorf("Colored = %+v", got)
	}
	if got := Translated(4, 5, r); got != (TranslateWrap{Offset: Vec2{4, 5}, Child: r}) {
		t.Errorf("Translated = %+v", got)
	}
	if got := Scaled(2, r); got != (ScaleWrap{Factor: Vec2{2, 2}, Child: r}) {
		t.Errorf("Scaled = %+v", got)
	}
	if got := ScaledXY(2, 3, r); got != (ScaleWrap{Factor: Vec2{2, 3}, Child: r}) {
		t.Errorf("ScaledXY = %+v", got)
	}
	if got := Clickable("go", r); got != (ClickWrap{Action: "go", Child: r}) {
		t.Errorf("Clickable = %+v", got)
	}
}
