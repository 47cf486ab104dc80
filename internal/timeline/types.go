package timeline

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Word is a single transcribed word with start/end offsets in seconds.
// Sequences arriving from the speech-to-text boundary are ordered and
// non-decreasing in Start.
type Word struct {
	Text  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Scene is one scripted unit of narration and visual content. Scenes are
// immutable inputs; Number is the ordering key.
type Scene struct {
	Number        int
	ScriptExcerpt string
	Style         string
	Act           string
	Composition   string
	SentenceText  string
	ImageIndex    int
}

// sceneJSON mirrors the upstream scene generator's field names, including
// the legacy aliases (visual_style, parent_act, composition_hint) that
// older generators still emit.
type sceneJSON struct {
	Number        int             `json:"scene_number"`
	ScriptExcerpt string          `json:"script_excerpt"`
	Style         string          `json:"style"`
	VisualStyle   string          `json:"visual_style"`
	Act           json.RawMessage `json:"act"`
	ParentAct     json.RawMessage `json:"parent_act"`
	Composition   string          `json:"composition"`
	Hint          string          `json:"composition_hint"`
	SentenceText  string          `json:"sentence_text"`
	ImageIndex    int             `json:"image_index"`
}

// UnmarshalJSON decodes a scene, resolving the alias fallback chains
// style|visual_style, act|parent_act, and composition|composition_hint.
func (s *Scene) UnmarshalJSON(data []byte) error {
	var raw sceneJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Number = raw.Number
	s.ScriptExcerpt = raw.ScriptExcerpt
	s.Style = firstNonEmpty(raw.Style, raw.VisualStyle)
	act, err := decodeAct(raw.Act)
	if err != nil {
		return fmt.Errorf("scene %d: %w", raw.Number, err)
	}
	if act == "" {
		if act, err = decodeAct(raw.ParentAct); err != nil {
			return fmt.Errorf("scene %d: %w", raw.Number, err)
		}
	}
	s.Act = act
	s.Composition = firstNonEmpty(raw.Composition, raw.Hint)
	s.SentenceText = raw.SentenceText
	s.ImageIndex = raw.ImageIndex
	return nil
}

// decodeAct accepts either a string label ("hook", "climax") or a bare
// act number, both of which occur in upstream scene payloads.
func decodeAct(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}
	var label string
	if err := json.Unmarshal(raw, &label); err == nil {
		return strings.TrimSpace(label), nil
	}
	var number int
	if err := json.Unmarshal(raw, &number); err == nil {
		return fmt.Sprintf("%d", number), nil
	}
	return "", fmt.Errorf("act field %s is neither string nor number", raw)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// Method describes how a scene's narration window was resolved.
type Method int

const (
	// MethodUnresolved marks a scene no fuzzy match cleared the acceptance
	// threshold for. Interpolation fills these in; any that survive the
	// whole pipeline surface through the alignment report.
	MethodUnresolved Method = iota
	// MethodNoNarration marks a scene whose excerpt is empty. Valid state,
	// never an error; the scene consumes no transcript words.
	MethodNoNarration
	// MethodFuzzyMatch marks a scene matched to a contiguous transcript span.
	MethodFuzzyMatch
	// MethodInterpolated marks a scene whose window was estimated between
	// its nearest resolved neighbors.
	MethodInterpolated
)

var methodNames = map[Method]string{
	MethodUnresolved:   "unresolved",
	MethodNoNarration:  "no_narration",
	MethodFuzzyMatch:   "fuzzy_match",
	MethodInterpolated: "interpolated",
}

func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return "unknown"
}

// MarshalJSON writes the wire spelling used by the render config and
// alignment report.
func (m Method) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// HasWindow reports whether the scene carries usable narration timestamps.
// No-narration and unresolved scenes do not.
func (m Method) HasWindow() bool {
	return m == MethodFuzzyMatch || m == MethodInterpolated
}

// AlignedScene is a Scene plus its resolved narration window. Start and End
// are meaningful only when Method.HasWindow() is true; the tagged Method
// replaces nullable timestamps so stages never branch on missing floats.
type AlignedScene struct {
	Scene
	Method Method
	Start  float64
	End    float64
	// Score is the fuzzy-match similarity in [0,1], set only for
	// MethodFuzzyMatch.
	Score float64
}

// Resolved reports whether the scene has a concrete narration window.
func (s AlignedScene) Resolved() bool {
	return s.Method.HasWindow()
}

// Duration returns the narration window length, or 0 when unresolved.
func (s AlignedScene) Duration() float64 {
	if !s.Resolved() {
		return 0
	}
	return s.End - s.Start
}

// TransitionType enumerates the compositor's supported transitions.
type TransitionType string

const (
	TransitionCrossfade     TransitionType = "crossfade"
	TransitionDipToBlack    TransitionType = "dip_to_black"
	TransitionFadeToBlack   TransitionType = "fade_to_black"
	TransitionFadeFromBlack TransitionType = "fade_from_black"
)

// Transition is the transition applied entering or leaving a scene.
type Transition struct {
	Type     TransitionType `json:"type"`
	Duration float64        `json:"duration"`
}

// Direction enumerates the supported camera motions.
type Direction string

const (
	SlowZoomIn   Direction = "slow_zoom_in"
	SlowZoomOut  Direction = "slow_zoom_out"
	SlowPanLeft  Direction = "slow_pan_left"
	SlowPanRight Direction = "slow_pan_right"
	SlowTiltUp   Direction = "slow_tilt_up"
)

// KenBurns is the camera-motion profile for a single scene's still image.
// Scale fields apply to zooms, offset fields to pans and tilts; unused
// fields stay zero and are omitted on the wire.
type KenBurns struct {
	Direction       Direction `json:"direction"`
	StartScale      float64   `json:"start_scale,omitempty"`
	EndScale        float64   `json:"end_scale,omitempty"`
	StartXOffset    float64   `json:"start_x_offset,omitempty"`
	EndXOffset      float64   `json:"end_x_offset,omitempty"`
	StartYOffset    float64   `json:"start_y_offset,omitempty"`
	EndYOffset      float64   `json:"end_y_offset,omitempty"`
	SpeedMultiplier float64   `json:"speed_multiplier"`
}

// TimedScene is an AlignedScene with its final display window and the
// transition and camera-motion metadata attached by the later stages.
// Invariants after timing adjustment: DisplayDuration stays within the
// configured bounds and adjacent windows never overlap.
type TimedScene struct {
	AlignedScene
	DisplayStart    float64
	DisplayEnd      float64
	DisplayDuration float64
	TransitionIn    Transition
	TransitionOut   Transition
	KenBurns        KenBurns
}
