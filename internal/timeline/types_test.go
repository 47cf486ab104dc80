package timeline

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSceneUnmarshalAliases(t *testing.T) {
	payload := `{
		"scene_number": 3,
		"script_excerpt": "The storm breaks over the harbor.",
		"visual_style": "noir",
		"parent_act": "act2",
		"composition_hint": "wide",
		"sentence_text": "The storm breaks.",
		"image_index": 2
	}`

	var s Scene
	if err := json.Unmarshal([]byte(payload), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s.Number != 3 {
		t.Errorf("number %d, want 3", s.Number)
	}
	if s.Style != "noir" {
		t.Errorf("style %q, want %q via visual_style alias", s.Style, "noir")
	}
	if s.Act != "act2" {
		t.Errorf("act %q, want %q via parent_act alias", s.Act, "act2")
	}
	if s.Composition != "wide" {
		t.Errorf("composition %q, want %q via composition_hint alias", s.Composition, "wide")
	}
	if s.ImageIndex != 2 {
		t.Errorf("image index %d, want 2", s.ImageIndex)
	}
}

func TestSceneUnmarshalPrimaryFieldsWinOverAliases(t *testing.T) {
	payload := `{
		"scene_number": 1,
		"style": "realistic",
		"visual_style": "noir",
		"act": "hook",
		"parent_act": "act9",
		"composition": "closeup",
		"composition_hint": "wide"
	}`

	var s Scene
	if err := json.Unmarshal([]byte(payload), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s.Style != "realistic" || s.Act != "hook" || s.Composition != "closeup" {
		t.Fatalf("got style=%q act=%q composition=%q, want primary fields", s.Style, s.Act, s.Composition)
	}
}

func TestSceneUnmarshalNumericAct(t *testing.T) {
	var s Scene
	if err := json.Unmarshal([]byte(`{"scene_number":1,"act":2}`), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s.Act != "2" {
		t.Fatalf("act %q, want %q for numeric payload", s.Act, "2")
	}
}

func TestSceneUnmarshalRejectsBadAct(t *testing.T) {
	var s Scene
	if err := json.Unmarshal([]byte(`{"scene_number":1,"act":[1,2]}`), &s); err == nil {
		t.Fatal("expected error for array-valued act")
	}
}

func TestDecodeScenesWrappedAndSorted(t *testing.T) {
	payload := `{"scenes":[
		{"scene_number": 2, "script_excerpt": "second"},
		{"scene_number": 1, "script_excerpt": "first"}
	]}`

	scenes, err := DecodeScenes(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("DecodeScenes: %v", err)
	}
	if len(scenes) != 2 {
		t.Fatalf("got %d scenes, want 2", len(scenes))
	}
	if scenes[0].Number != 1 || scenes[1].Number != 2 {
		t.Fatalf("scenes not ordered by number: %d, %d", scenes[0].Number, scenes[1].Number)
	}
}

func TestDecodeScenesBareArray(t *testing.T) {
	scenes, err := DecodeScenes(strings.NewReader(`[{"scene_number":1}]`))
	if err != nil {
		t.Fatalf("DecodeScenes: %v", err)
	}
	if len(scenes) != 1 {
		t.Fatalf("got %d scenes, want 1", len(scenes))
	}
}

func TestMethodWire(t *testing.T) {
	data, err := json.Marshal(MethodFuzzyMatch)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"fuzzy_match"` {
		t.Fatalf("got %s, want \"fuzzy_match\"", data)
	}
	if MethodNoNarration.HasWindow() || MethodUnresolved.HasWindow() {
		t.Fatal("methods without timestamps report a window")
	}
	if !MethodInterpolated.HasWindow() {
		t.Fatal("interpolated method should report a window")
	}
}

func TestAlignedSceneDuration(t *testing.T) {
	s := AlignedScene{Method: MethodFuzzyMatch, Start: 2.0, End: 5.5}
	if s.Duration() != 3.5 {
		t.Fatalf("duration %v, want 3.5", s.Duration())
	}
	s.Method = MethodUnresolved
	if s.Duration() != 0 {
		t.Fatalf("unresolved duration %v, want 0", s.Duration())
	}
}
