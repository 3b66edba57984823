package leader

import (
	"reflect"
	"testing"
)

func TestMerge_UnionByKey(t *testing.T) {
	t.Parallel()

	career := []Leader{
		{PlayerID: "8448208", Name: "Jaromir Jagr", CareerGoals: 766, Source: SourceCareer},
		{PlayerID: "8447400", Name: "Wayne Gretzky", CareerGoals: 894, Source: SourceCareer},
	}
	yearly := []Leader{
		{PlayerID: "8447400", Name: "Wayne Gretzky", Source: SourceYearly, TopSeasons: []int{1983, 1981}},
		{PlayerID: "8449573", Name: "Teemu Selanne", Source: SourceYearly, TopSeasons: []int{1992}},
		{PlayerID: "8447400", Source: SourceYearly, TopSeasons: []int{1981, 1985}},
		{Name: "nobody"},
	}

	set := Merge(career, yearly)
	got := set.List()

	if len(got) != 3 {
		t.Fatalf("expected 3 unique leaders, got %d: %+v", len(got), got)
	}
	ids := []string{got[0].PlayerID, got[1].PlayerID, got[2].PlayerID}
	if !reflect.DeepEqual(ids, []string{"8448208", "8447400", "8449573"}) {
		t.Fatalf("unexpected order: %v", ids)
	}

	gretzky, ok := set.Get("8447400")
	if !ok {
		t.Fatalf("expected gretzky in set")
	}
	if gretzky.Source != SourceCareer || gretzky.CareerGoals != 894 {
		t.Fatalf("first occurrence must win: %+v", gretzky)
	}
	if !reflect.DeepEqual(gretzky.TopSeasons, []int{1981, 1983, 1985}) {
		t.Fatalf("unexpected merged top seasons: %v", gretzky.TopSeasons)
	}
}

func TestMerge_OrderIndependentMembership(t *testing.T) {
	t.Parallel()

	a := []Leader{{PlayerID: "1"}, {PlayerID: "2"}}
	b := []Leader{{PlayerID: "2"}, {PlayerID: "3"}}

	left := Merge(a, b)
	right := Merge(b, a)
	if left.Len() != 3 || right.Len() != 3 {
		t.Fatalf("expected 3 members either way, got %d and %d", left.Len(), right.Len())
	}
	for _, key := range []string{"1", "2", "3"} {
		if _, ok := right.Get(key); !ok {
			t.Fatalf("missing %s", key)
		}
	}
}

func TestMerge_FallsBackToURL(t *testing.T) {
	t.Parallel()

	set := Merge(
		[]Leader{{URL: "https://www.nhl.com/player/8471214", Name: "Alex Ovechkin"}},
		[]Leader{{URL: "https://www.nhl.com/player/8471214", TopSeasons: []int{2007}}},
	)
	if set.Len() != 1 {
		t.Fatalf("expected url based dedup, got %d", set.Len())
	}
}
