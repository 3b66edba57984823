package leader

import (
	"reflect"
	"testing"
)

func TestSelectCareerLeaders(t *testing.T) {
	t.Parallel()

	got := SelectCareerLeaders([]Leader{
		{PlayerID: "a", Name: "Alpha", CareerGoals: 299},
		{PlayerID: "b", Name: "Bravo", CareerGoals: 300},
		{PlayerID: "c", Name: "Charlie", CareerGoals: 801},
		{PlayerID: "d", Name: "Able", CareerGoals: 300},
	}, 300)

	ids := make([]string, 0, len(got))
	for _, item := range got {
		if item.Source != SourceCareer {
			t.Fatalf("expected career source, got %q", item.Source)
		}
		ids = append(ids, item.PlayerID)
	}
	if !reflect.DeepEqual(ids, []string{"c", "d", "b"}) {
		t.Fatalf("unexpected selection: %v", ids)
	}
}

func TestSelectYearlyTop(t *testing.T) {
	t.Parallel()

	rows := []SeasonGoals{
		{PlayerID: "a", Name: "A", Season: 1990, Goals: 72},
		{PlayerID: "b", Name: "B", Season: 1990, Goals: 51},
		{PlayerID: "c", Name: "C", Season: 1990, Goals: 51},
		{PlayerID: "d", Name: "D", Season: 1990, Goals: 40},
		{PlayerID: "e", Name: "E", Season: 1989, Goals: 70},
		{PlayerID: "a", Name: "A", Season: 1989, Goals: 60},
		{PlayerID: "f", Name: "F", Season: 1989, Goals: 12},
	}

	got := SelectYearlyTop(rows, 2)

	ids := make([]string, 0, len(got))
	for _, item := range got {
		ids = append(ids, item.PlayerID)
	}
	if !reflect.DeepEqual(ids, []string{"e", "a", "b", "c"}) {
		t.Fatalf("unexpected yearly top: %v", ids)
	}
	if !reflect.DeepEqual(got[1].TopSeasons, []int{1989, 1990}) {
		t.Fatalf("expected seasons merged for repeat leader, got %v", got[1].TopSeasons)
	}

	if out := SelectYearlyTop(rows, 0); out != nil {
		t.Fatalf("expected nil for n=0, got %v", out)
	}
}
