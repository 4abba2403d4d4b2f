package fonts

import "testing"

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(); err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	for _, name := range []FontName{Mono, MonoSmall} {
		if !Loaded(name) {
			t.Fatalf("expected %s loaded", name)
		}
		if m := name.Get().Metrics(); m.Height <= 0 {
			t.Fatalf("expected positive line height for %s, got %v", name, m.Height)
		}
	}
}

func TestLoadRejectsGarbage(t *testing.T) {
	if err := LoadFontWithSize("broken", []byte("not a font"), 10); err == nil {
		t.Fatalf("expected a parse error")
	}
	if Loaded("broken") {
		t.Fatalf("expected broken font not registered")
	}
}
