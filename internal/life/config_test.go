package life

import "testing"

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"w": "40", "h": "20", "delay": "250", "workers": "3"})
	if c.Width != 40 || c.Height != 20 || c.DelayMs != 250 || c.Workers != 3 {
		t.Fatalf("FromMap = %+v", c)
	}

	def := DefaultConfig()
	c = FromMap(map[string]string{"w": "-1", "h": "abc", "delay": "0"})
	if c.Width != def.Width || c.Height != def.Height || c.DelayMs != def.DelayMs {
		t.Fatalf("invalid values should keep defaults, got %+v", c)
	}
	if FromMap(nil) != def {
		t.Fatal("nil map should yield defaults")
	}
}
