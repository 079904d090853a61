package sky

import "testing"

func TestFromMapDefaults(t *testing.T) {
	if got := FromMap(nil); got != DefaultConfig() {
		t.Fatalf("nil map should yield defaults, got %+v", got)
	}
	c := DefaultConfig()
	if c.StarCount != 40 || c.SubstarMode != SubstarShareBase || c.AnimFrameTime != DefaultFrameTime {
		t.Fatalf("unexpected defaults %+v", c)
	}
}

func TestFromMapOverrides(t *testing.T) {
	c := FromMap(map[string]string{
		"star_density":    "high",
		"substar_mode":    "offset",
		"anim_frame_time": "0.25",
	})
	if c.StarCount != 8000 {
		t.Fatalf("expected high density star count, got %d", c.StarCount)
	}
	if c.SubstarMode != SubstarOffset {
		t.Fatalf("expected offset mode, got %v", c.SubstarMode)
	}
	if c.AnimFrameTime != 0.25 {
		t.Fatalf("expected frame time 0.25, got %f", c.AnimFrameTime)
	}

	c = FromMap(map[string]string{"star_density": "moderate", "star_count": "12"})
	if c.StarCount != 12 {
		t.Fatalf("star_count should override density, got %d", c.StarCount)
	}

	c = FromMap(map[string]string{"coord_sign": "SET"})
	if c.CoordSign != CoordSignSet || c.CoordSign.String() != "set" {
		t.Fatalf("expected set coord sign, got %v", c.CoordSign)
	}

	c = FromMap(map[string]string{"star_count": "0"})
	if c.StarCount != 40 {
		t.Fatalf("zero star_count should keep the default, got %d", c.StarCount)
	}

	c = FromMap(map[string]string{"anim_frame_time": "-1", "star_count": "x"})
	if c.AnimFrameTime != DefaultFrameTime || c.StarCount != 40 {
		t.Fatalf("invalid values should be ignored, got %+v", c)
	}
}
