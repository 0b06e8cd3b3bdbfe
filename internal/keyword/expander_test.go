package keyword

import (
	"testing"

	"github.com/go-playground/assert/v2"

	"finfeed/internal/model"
)

func TestExpandIncludeKeywordsWin(t *testing.T) {
	ob := &model.UserOnboarding{
		Q1Categories: []int{2},
		Q2Keywords:   []string{" 반도체 ", "2차전지", "반도체", ""},
	}

	got := Expand(ob)

	assert.Equal(t, []string{"반도체", "2차전지"}, got)
}

func TestExpandFallsBackToCategories(t *testing.T) {
	ob := &model.UserOnboarding{
		Q1Categories: []int{2},
		Q3Keywords:   []string{"코스닥"},
	}

	got := Expand(ob)

	// category 2's representative set with the excluded keyword removed
	assert.Equal(t, []string{"주식시장", "코스피", "반도체", "2차전지"}, got)
}

func TestExpandExcludeIsExactMatch(t *testing.T) {
	ob := &model.UserOnboarding{
		Q2Keywords: []string{"코스닥 급등주", "코스닥"},
		Q3Keywords: []string{"코스닥"},
	}

	got := Expand(ob)

	// "코스닥 급등주" contains the excluded string but only the exact
	// match is dropped
	assert.Equal(t, []string{"코스닥 급등주"}, got)
}

func TestExpandEmptyOnboardingYieldsDefaults(t *testing.T) {
	got := Expand(&model.UserOnboarding{})
	assert.Equal(t, DefaultKeywords, got)

	got = Expand(nil)
	assert.Equal(t, DefaultKeywords, got)
}

func TestExpandAllExcludedYieldsDefaults(t *testing.T) {
	ob := &model.UserOnboarding{
		Q2Keywords: []string{"단타"},
		Q3Keywords: []string{"단타"},
	}

	got := Expand(ob)

	assert.Equal(t, DefaultKeywords, got)
}

func TestExpandUnknownCategoryIgnored(t *testing.T) {
	ob := &model.UserOnboarding{Q1Categories: []int{99}}

	got := Expand(ob)

	assert.Equal(t, DefaultKeywords, got)
}

func TestTodaySampleProperties(t *testing.T) {
	got := TodaySample([]int{2, 5}, []string{"내집마련"}, []string{"코스피"}, 6)

	assert.Equal(t, 6, len(got))
	assert.Equal(t, "내집마련", got[0])

	seen := map[string]bool{}
	for _, kw := range got {
		if kw == "코스피" {
			t.Errorf("excluded keyword %q present in %v", kw, got)
		}
		if seen[kw] {
			t.Errorf("duplicate keyword %q in %v", kw, got)
		}
		seen[kw] = true
	}
}

func TestTodaySampleCapsAtTargetSize(t *testing.T) {
	q2 := []string{"a", "b", "c", "d", "e", "f", "g", "h"}

	got := TodaySample(nil, q2, nil, 6)

	assert.Equal(t, 6, len(got))
}

func TestValidCategoryIDs(t *testing.T) {
	got := ValidCategoryIDs([]int{2, 99, 5, 1, 3}, 3)
	assert.Equal(t, []int{2, 5, 1}, got)
}

func TestCategoryTableComplete(t *testing.T) {
	assert.Equal(t, 8, len(Categories))
	for _, cat := range Categories {
		if len(cat.Keywords) == 0 {
			t.Errorf("category %d has no representative keywords", cat.ID)
		}
	}
}
