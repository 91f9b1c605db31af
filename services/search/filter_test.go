package search

import (
	"testing"

	"tutorlink/models"
)

func sampleTutors() []models.TutorListing {
	return []models.TutorListing{
		{
			Profile: models.Profile{ID: "ann", FirstName: "Ann", LastName: "Mokoena", Bio: "Patient maths coach", Location: "Zeerust"},
			Skills: []models.TutorSkillListing{
				{ID: "ts-1", SkillID: "sk-math", Name: "Math", HourlyRate: 40},
			},
		},
		{
			Profile: models.Profile{ID: "ben", FirstName: "Ben", LastName: "Nel", Bio: "Portfolio-driven lessons", Location: "Online"},
			Skills: []models.TutorSkillListing{
				{ID: "ts-2", SkillID: "sk-art", Name: "Art", HourlyRate: 150},
			},
		},
	}
}

func idsOf(listings []models.TutorListing) []string {
	ids := make([]string, len(listings))
	for i, l := range listings {
		ids[i] = l.ID
	}
	return ids
}

func TestFilterTutorsPriceBracket(t *testing.T) {
	got := FilterTutors(sampleTutors(), Filter{PriceBracket: PriceUnder50})
	if len(got) != 1 || got[0].ID != "ann" {
		t.Errorf("under-50 bracket = %v, want only ann", idsOf(got))
	}
}

func TestFilterTutorsSubject(t *testing.T) {
	got := FilterTutors(sampleTutors(), Filter{Subject: "Art"})
	if len(got) != 1 || got[0].ID != "ben" {
		t.Errorf("subject Art = %v, want only ben", idsOf(got))
	}
}

func TestFilterTutorsConjunction(t *testing.T) {
	got := FilterTutors(sampleTutors(), Filter{Location: "online", PriceBracket: PriceOver200})
	if len(got) != 0 {
		t.Errorf("online AND over-200 = %v, want empty", idsOf(got))
	}
}

func TestFilterTutorsTerm(t *testing.T) {
	cases := []struct {
		term string
		want []string
	}{
		{"", []string{"ann", "ben"}},
		{"ann", []string{"ann"}},
		{"NEL", []string{"ben"}},
		{"maths", []string{"ann"}}, // bio match
		{"art", []string{"ben"}},   // skill name match
		{"chemistry", nil},
	}

	for _, tc := range cases {
		got := idsOf(FilterTutors(sampleTutors(), Filter{Term: tc.term}))
		if len(got) != len(tc.want) {
			t.Errorf("term %q = %v, want %v", tc.term, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("term %q = %v, want %v", tc.term, got, tc.want)
				break
			}
		}
	}
}

func TestFilterTutorsLocationSubstring(t *testing.T) {
	got := FilterTutors(sampleTutors(), Filter{Location: "zeer"})
	if len(got) != 1 || got[0].ID != "ann" {
		t.Errorf("location substring = %v, want only ann", idsOf(got))
	}
}

func TestFilterTutorsBracketBounds(t *testing.T) {
	tutor := func(rate float64) models.TutorListing {
		return models.TutorListing{
			Profile: models.Profile{ID: "t"},
			Skills:  []models.TutorSkillListing{{HourlyRate: rate}},
		}
	}

	cases := []struct {
		rate    float64
		bracket string
		want    bool
	}{
		{49.99, PriceUnder50, true},
		{50, PriceUnder50, false},
		{50, Price50To100, true},
		{100, Price50To100, true}, // both ends inclusive
		{100, Price100To200, true},
		{200, Price100To200, true},
		{200, PriceOver200, false},
		{200.01, PriceOver200, true},
	}

	for _, tc := range cases {
		if got := Matches(tutor(tc.rate), Filter{PriceBracket: tc.bracket}); got != tc.want {
			t.Errorf("rate %v in bracket %q = %v, want %v", tc.rate, tc.bracket, got, tc.want)
		}
	}
}

func TestFilterTutorsMinimumRateDecides(t *testing.T) {
	tutor := models.TutorListing{
		Profile: models.Profile{ID: "multi"},
		Skills: []models.TutorSkillListing{
			{Name: "Math", HourlyRate: 180},
			{Name: "Piano", HourlyRate: 45},
		},
	}

	if !Matches(tutor, Filter{PriceBracket: PriceUnder50}) {
		t.Error("tutor's cheapest offering is under 50, bracket should match")
	}
	if Matches(tutor, Filter{PriceBracket: Price100To200}) {
		t.Error("bracket compares the minimum rate, not any rate")
	}
}

func TestFilterTutorsNoSkillsNeverMatchBoundedBracket(t *testing.T) {
	bare := models.TutorListing{Profile: models.Profile{ID: "new", FirstName: "Newbie"}}

	for _, bracket := range []string{PriceUnder50, Price50To100, Price100To200, PriceOver200} {
		if Matches(bare, Filter{PriceBracket: bracket}) {
			t.Errorf("tutor with no offerings matched bracket %q", bracket)
		}
	}
	if !Matches(bare, Filter{PriceBracket: FilterAll}) {
		t.Error("unconstrained price filter should still match")
	}
}
