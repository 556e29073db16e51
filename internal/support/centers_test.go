package support

import "testing"

func TestCentersFixture(t *testing.T) {
	centers := Centers()
	if len(centers) != 8 {
		t.Fatalf("expected 8 centers, got %d", len(centers))
	}

	validType := map[string]bool{"community": true, "counseling": true}
	validSession := map[string]bool{"online": true, "offline": true}
	seen := make(map[string]bool)

	for _, c := range centers {
		if c.ID == "" || c.Name == "" || c.NameKo == "" {
			t.Errorf("center %q missing identity fields", c.ID)
		}
		if seen[c.ID] {
			t.Errorf("duplicate center id %q", c.ID)
		}
		seen[c.ID] = true

		if !validType[c.Type] {
			t.Errorf("center %q has invalid type %q", c.ID, c.Type)
		}
		if len(c.SessionType) == 0 {
			t.Errorf("center %q has no session types", c.ID)
		}
		for _, s := range c.SessionType {
			if !validSession[s] {
				t.Errorf("center %q has invalid session type %q", c.ID, s)
			}
		}
		if c.EmbeddingText == "" {
			t.Errorf("center %q has no embedding text", c.ID)
		}
	}
}
