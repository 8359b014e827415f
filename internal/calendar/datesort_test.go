package calendar

import "testing"

type displayRec struct {
	id   int
	date string
	time string
}

func sortRecs(recs []displayRec) []displayRec {
	return SortByDisplayTime(recs, func(r displayRec) (string, string) {
		return r.date, r.time
	})
}

func ids(recs []displayRec) []int {
	out := make([]int, len(recs))
	for i, r := range recs {
		out[i] = r.id
	}
	return out
}

func TestSortByDisplayTime_Ascending(t *testing.T) {
	recs := []displayRec{
		{1, "12/01/2025", "at 09:00"},
		{2, "11/01/2025", "at 10:00"},
	}

	sorted := sortRecs(recs)
	if sorted[0].id != 2 || sorted[1].id != 1 {
		t.Fatalf("expected the 11/01 record first, got %v", ids(sorted))
	}
}

func TestSortByDisplayTime_SwapsDayMonthOnParseFailure(t *testing.T) {
	// 25/01 cannot be month/day, so both records fall back to the
	// swapped order and must still compare consistently.
	recs := []displayRec{
		{1, "25/01/2025", "at 09:00"},
		{2, "20/01/2025", "at 10:00"},
	}

	sorted := sortRecs(recs)
	if sorted[0].id != 2 || sorted[1].id != 1 {
		t.Fatalf("expected January 20 before January 25, got %v", ids(sorted))
	}
}

func TestSortByDisplayTime_MalformedSortsFirstWithoutBreakingRest(t *testing.T) {
	recs := []displayRec{
		{1, "12/01/2025", "at 09:00"},
		{2, "not-a-date", "at 10:00"},
		{3, "11/01/2025", "at 10:00"},
	}

	sorted := sortRecs(recs)

	if sorted[0].id != 2 {
		t.Fatalf("malformed record should sort first, got %v", ids(sorted))
	}
	if sorted[1].id != 3 || sorted[2].id != 1 {
		t.Fatalf("valid records must stay correctly ordered, got %v", ids(sorted))
	}
}

func TestSortByDisplayTime_StableOnTies(t *testing.T) {
	recs := []displayRec{
		{1, "11/01/2025", "at 10:00"},
		{2, "11/01/2025", "at 10:00"},
		{3, "11/01/2025", "at 10:00"},
	}

	sorted := sortRecs(recs)
	if sorted[0].id != 1 || sorted[1].id != 2 || sorted[2].id != 3 {
		t.Fatalf("tied records must keep original order, got %v", ids(sorted))
	}
}

func TestSortByDisplayTime_MissingAtPrefix(t *testing.T) {
	recs := []displayRec{
		{1, "11/01/2025", "10:00"},
		{2, "11/01/2025", "at 09:00"},
	}

	sorted := sortRecs(recs)
	if sorted[0].id != 2 || sorted[1].id != 1 {
		t.Fatalf("prefix handling must not change comparability, got %v", ids(sorted))
	}
}

func TestSortByDisplayTime_DoesNotMutateInput(t *testing.T) {
	recs := []displayRec{
		{1, "12/01/2025", "at 09:00"},
		{2, "11/01/2025", "at 10:00"},
	}

	_ = sortRecs(recs)
	if recs[0].id != 1 || recs[1].id != 2 {
		t.Fatal("input slice was mutated")
	}
}
