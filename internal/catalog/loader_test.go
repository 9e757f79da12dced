package catalog

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/five82/pokedex/internal/pokeapi"
)

func TestPageOffset(t *testing.T) {
	cases := map[int]int{1: 0, 2: 20, 7: 120}
	for page, want := range cases {
		if got := PageOffset(page); got != want {
			t.Fatalf("PageOffset(%d) = %d, want %d", page, got, want)
		}
	}
}

func TestFetchPage_PreservesListingOrder(t *testing.T) {
	src := newFakeSource(60)
	src.jitter = true
	loader := NewLoader(src, 4)

	for page := 1; page <= 3; page++ {
		got, err := loader.FetchPage(context.Background(), page)
		if err != nil {
			t.Fatalf("FetchPage(%d) returned error: %v", page, err)
		}
		if len(got) > PageSize {
			t.Fatalf("FetchPage(%d) len = %d, want <= %d", page, len(got), PageSize)
		}
		for i, rec := range got {
			if want := PageOffset(page) + i + 1; rec.ID != want {
				t.Fatalf("FetchPage(%d)[%d].ID = %d, want %d", page, i, rec.ID, want)
			}
		}
	}

	want := []int{0, 20, 40}
	if !reflect.DeepEqual(src.listCalls, want) {
		t.Fatalf("list offsets = %v, want %v", src.listCalls, want)
	}
}

func TestFetchPage_ShortLastPage(t *testing.T) {
	loader := NewLoader(newFakeSource(25), 0)
	got, err := loader.FetchPage(context.Background(), 2)
	if err != nil {
		t.Fatalf("FetchPage returned error: %v", err)
	}
	if !reflect.DeepEqual(ids(got), []int{21, 22, 23, 24, 25}) {
		t.Fatalf("FetchPage(2) = %v, want 21..25", ids(got))
	}
}

func TestFetchPage_SubFetchFailureFailsWholePage(t *testing.T) {
	src := newFakeSource(40)
	src.failOn(7)
	loader := NewLoader(src, 2)

	got, err := loader.FetchPage(context.Background(), 1)
	if err == nil {
		t.Fatalf("FetchPage returned nil error, want failure")
	}
	if got != nil {
		t.Fatalf("FetchPage returned %d records alongside error, want none", len(got))
	}
	if !errors.Is(err, ErrPageLoad) {
		t.Fatalf("error = %v, want ErrPageLoad", err)
	}
	var netErr *pokeapi.NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("error = %v, want wrapped *pokeapi.NetworkError", err)
	}
}

func TestFetchPage_RejectsPageZero(t *testing.T) {
	loader := NewLoader(newFakeSource(10), 1)
	if _, err := loader.FetchPage(context.Background(), 0); !errors.Is(err, ErrPageLoad) {
		t.Fatalf("FetchPage(0) error = %v, want ErrPageLoad", err)
	}
}

func TestFetchCategory_CapsAtMaxMembers(t *testing.T) {
	src := newFakeSource(300)
	members := make([]int, 0, 250)
	for id := 300; id > 50; id-- {
		members = append(members, id)
	}
	src.members["water"] = members
	loader := NewLoader(src, 16)

	got, err := loader.FetchCategory(context.Background(), "water")
	if err != nil {
		t.Fatalf("FetchCategory returned error: %v", err)
	}
	if len(got) != MaxCategoryMembers {
		t.Fatalf("len = %d, want %d", len(got), MaxCategoryMembers)
	}
	if !reflect.DeepEqual(ids(got), members[:MaxCategoryMembers]) {
		t.Fatalf("category order not preserved")
	}
	if src.fetched != MaxCategoryMembers {
		t.Fatalf("detail fetches = %d, want %d", src.fetched, MaxCategoryMembers)
	}
}

func TestFetchCategory_UnknownCategory(t *testing.T) {
	loader := NewLoader(newFakeSource(10), 1)
	_, err := loader.FetchCategory(context.Background(), "shadow")
	if !errors.Is(err, ErrCategoryLoad) {
		t.Fatalf("error = %v, want ErrCategoryLoad", err)
	}
}

func TestFetchCategories(t *testing.T) {
	src := newFakeSource(1)
	src.members["fire"] = nil
	loader := NewLoader(src, 1)

	names, err := loader.FetchCategories(context.Background())
	if err != nil {
		t.Fatalf("FetchCategories returned error: %v", err)
	}
	if !reflect.DeepEqual(names, []string{"fire"}) {
		t.Fatalf("names = %v, want [fire]", names)
	}
}

func TestLoadDetail_PicksEnglishAndStripsFormFeed(t *testing.T) {
	src := newFakeSource(10)
	src.species[6] = []pokeapi.FlavorText{
		{FlavorText: "Crache du feu", Language: pokeapi.NamedResource{Name: "fr"}},
		{FlavorText: "Spits fire that\fis hot enough", Language: pokeapi.NamedResource{Name: "en"}},
		{FlavorText: "second english", Language: pokeapi.NamedResource{Name: "en"}},
	}
	loader := NewLoader(src, 1)

	detail, err := loader.LoadDetail(context.Background(), 6)
	if err != nil {
		t.Fatalf("LoadDetail returned error: %v", err)
	}
	if detail.Pokemon.ID != 6 {
		t.Fatalf("Pokemon.ID = %d, want 6", detail.Pokemon.ID)
	}
	if detail.Description != "Spits fire that is hot enough" {
		t.Fatalf("Description = %q", detail.Description)
	}
}

func TestLoadDetail_FallsBackWithoutEnglish(t *testing.T) {
	src := newFakeSource(10)
	src.species[3] = []pokeapi.FlavorText{
		{FlavorText: "ふしぎなタネ", Language: pokeapi.NamedResource{Name: "ja"}},
	}
	loader := NewLoader(src, 1)

	detail, err := loader.LoadDetail(context.Background(), 3)
	if err != nil {
		t.Fatalf("LoadDetail returned error: %v", err)
	}
	if detail.Description != DescriptionUnavailable {
		t.Fatalf("Description = %q, want %q", detail.Description, DescriptionUnavailable)
	}
}

func TestLoadDetail_MissingRecordIsError(t *testing.T) {
	loader := NewLoader(newFakeSource(10), 1)
	_, err := loader.LoadDetail(context.Background(), 99)
	if !errors.Is(err, ErrDetailLoad) {
		t.Fatalf("error = %v, want ErrDetailLoad", err)
	}
	if !strings.Contains(err.Error(), "#99") {
		t.Fatalf("error = %q, want it to mention #99", err.Error())
	}
}

func TestDescription_Empty(t *testing.T) {
	if got := Description(nil); got != DescriptionUnavailable {
		t.Fatalf("Description(nil) = %q, want placeholder", got)
	}
}
