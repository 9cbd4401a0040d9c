package audio

import "testing"

func TestSoundTypeString(t *testing.T) {
	tests := []struct {
		st   SoundType
		want string
	}{
		{SoundSqueak, "squeak"},
		{SoundPop, "pop"},
		{SoundGasp, "gasp"},
		{SoundHum, "hum"},
		{SoundType(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.st.String(); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}

// TestSoundTypeValues verifies sound types are distinct and dense
func TestSoundTypeValues(t *testing.T) {
	seen := make(map[SoundType]bool)
	for st := SoundType(0); st < soundTypeCount; st++ {
		if seen[st] {
			t.Errorf("Duplicate sound type %d", st)
		}
		seen[st] = true
	}
	if len(seen) != 4 {
		t.Errorf("Expected 4 sound types, got %d", len(seen))
	}
}
