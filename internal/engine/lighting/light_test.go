package lighting

import (
	"testing"

	"github.com/Faultbox/scenery/pkg/formats"
	"github.com/Faultbox/scenery/pkg/math"
)

func TestFromDoc(t *testing.T) {
	tests := []struct {
		doc  formats.LightDoc
		want Kind
		pos  [4]float32
	}{
		{formats.LightDoc{Kind: formats.LightPoint, Position: math.Vec3{X: 1, Y: 2, Z: 3}}, Point, [4]float32{1, 2, 3, 1}},
		{formats.LightDoc{Kind: formats.LightDirectional, Direction: math.Vec3{X: 0, Y: -1, Z: 0}}, Directional, [4]float32{0, -1, 0, 0}},
		{formats.LightDoc{Kind: formats.LightSpot, Position: math.Vec3{Y: 5}, Direction: math.Vec3{Y: -1}, Cutoff: 45}, Spot, [4]float32{0, 5, 0, 1}},
	}

	for _, tt := range tests {
		l := FromDoc(tt.doc)
		if l.Kind != tt.want {
			t.Errorf("%s: expected kind %v, got %v", tt.doc.Kind, tt.want, l.Kind)
		}
		if l.GLPosition() != tt.pos {
			t.Errorf("%s: expected GL position %v, got %v", tt.doc.Kind, tt.pos, l.GLPosition())
		}
		if l.Color != White {
			t.Errorf("%s: expected white light, got %v", tt.doc.Kind, l.Color)
		}
	}

	spot := FromDoc(tests[2].doc)
	if spot.Cutoff != 45 {
		t.Errorf("expected cutoff 45, got %v", spot.Cutoff)
	}
	if spot.GLSpotDirection() != [3]float32{0, -1, 0} {
		t.Errorf("unexpected spot direction %v", spot.GLSpotDirection())
	}
	if FromDoc(tests[1].doc).HasLocation() {
		t.Error("directional light should have no location")
	}
}

func TestBufferLimit(t *testing.T) {
	b := NewBuffer()
	for i := 0; i < MaxLights; i++ {
		if !b.Add(Light{}) {
			t.Fatalf("add %d should succeed", i)
		}
	}
	if b.Add(Light{}) {
		t.Error("buffer should be full")
	}

	lights := make([]Light, MaxLights+3)
	if dropped := b.Set(lights); dropped != 3 {
		t.Errorf("expected 3 dropped, got %d", dropped)
	}
	if b.Len() != MaxLights {
		t.Errorf("expected %d lights, got %d", MaxLights, b.Len())
	}

	b.Clear()
	if b.Len() != 0 {
		t.Errorf("expected empty buffer, got %d", b.Len())
	}
}
