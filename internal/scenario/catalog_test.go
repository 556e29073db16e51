package scenario

import (
	"testing"

	"culturebridge/internal/model"
)

func TestCatalogComplete(t *testing.T) {
	all := All()
	if len(all) != 13 {
		t.Fatalf("expected 13 scenarios, got %d", len(all))
	}

	seen := make(map[string]bool)
	for _, s := range all {
		if s.ID == "" || s.Korean == "" || s.Context == "" {
			t.Errorf("scenario %q is missing required fields", s.ID)
		}
		if s.Category == "" {
			t.Errorf("scenario %q has no category", s.ID)
		}
		if seen[s.ID] {
			t.Errorf("duplicate scenario id %q", s.ID)
		}
		seen[s.ID] = true
	}
}

func TestFindByID(t *testing.T) {
	s, ok := FindByID("bap-meogeosseo")
	if !ok {
		t.Fatal("bap-meogeosseo should exist")
	}
	if s.Korean != "밥 먹었어?" {
		t.Errorf("unexpected phrase %q", s.Korean)
	}

	if _, ok := FindByID("no-such-scenario"); ok {
		t.Error("unknown id should not resolve")
	}
	if _, ok := FindByID(""); ok {
		t.Error("empty id should not resolve")
	}
}

func TestByKeywords(t *testing.T) {
	matched := ByKeywords([]string{"회식"})
	if len(matched) == 0 {
		t.Fatal("expected at least one match for 회식")
	}
	for _, s := range matched {
		if s.Category != model.CategoryWorkplace {
			t.Errorf("회식 matched non-workplace scenario %q", s.ID)
		}
	}

	if got := ByKeywords([]string{"zzz-not-in-catalog"}); len(got) != 0 {
		t.Errorf("expected no matches, got %d", len(got))
	}
	if got := ByKeywords([]string{""}); len(got) != 0 {
		t.Errorf("empty keywords must not match everything, got %d", len(got))
	}
	if got := ByKeywords(nil); len(got) != 0 {
		t.Errorf("nil keywords must match nothing, got %d", len(got))
	}
}

func TestByKeywordsNoDuplicates(t *testing.T) {
	// Both keywords hit the same scenario; it must appear once.
	matched := ByKeywords([]string{"밥", "먹었어"})
	seen := make(map[string]int)
	for _, s := range matched {
		seen[s.ID]++
	}
	for id, n := range seen {
		if n > 1 {
			t.Errorf("scenario %q matched %d times", id, n)
		}
	}
}

func TestByCategoryBuckets(t *testing.T) {
	school := ByCategory(model.CategorySchool)
	wantSchool := map[string]bool{"bap-meogeosseo": true, "jobyul-gwaje": true, "seonbae-hubae": true}
	if len(school) != len(wantSchool) {
		t.Fatalf("expected %d school scenarios, got %d", len(wantSchool), len(school))
	}
	for _, s := range school {
		if !wantSchool[s.ID] {
			t.Errorf("unexpected school scenario %q", s.ID)
		}
	}

	workplace := ByCategory(model.CategoryWorkplace)
	if len(workplace) != 4 {
		t.Errorf("expected 4 workplace scenarios, got %d", len(workplace))
	}

	if got := ByCategory("nonsense"); len(got) != 0 {
		t.Errorf("unknown category should match nothing, got %d", len(got))
	}
}

func TestCannedVideos(t *testing.T) {
	canned := CannedVideos()
	if len(canned) != 4 {
		t.Fatalf("expected 4 canned videos, got %d", len(canned))
	}
	for _, c := range canned {
		if _, ok := FindByID(c.ScenarioID); !ok {
			t.Errorf("canned video references unknown scenario %q", c.ScenarioID)
		}
		if c.URL == "" {
			t.Errorf("canned video %q has no URL", c.ScenarioID)
		}
	}

	if url := FindCannedVideo("bap-meogeosseo"); url == "" {
		t.Error("bap-meogeosseo should have a canned clip")
	}
	if url := FindCannedVideo("eodi-ga"); url != "" {
		t.Errorf("eodi-ga should not have a canned clip, got %q", url)
	}
}
