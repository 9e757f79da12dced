package ui

import (
	"context"
	"fmt"
	"sync"

	"github.com/five82/pokedex/internal/catalog"
	"github.com/five82/pokedex/internal/debounce"
	"github.com/five82/pokedex/internal/pokeapi"
)

// fakeSource serves records 1..total named "mon<id>", with optional
// overrides and failures.
type fakeSource struct {
	total   int
	names   map[int]string
	members map[string][]int

	mu      sync.Mutex
	failIDs map[int]bool
}

func newFakeSource(total int) *fakeSource {
	return &fakeSource{
		total:   total,
		names:   map[int]string{},
		members: map[string][]int{},
		failIDs: map[int]bool{},
	}
}

func (f *fakeSource) fail(ids ...int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, id := range ids {
		f.failIDs[id] = true
	}
}

func (f *fakeSource) heal() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failIDs = map[int]bool{}
}

func (f *fakeSource) ListPokemon(_ context.Context, limit, offset int) (*pokeapi.ListResponse, error) {
	resp := &pokeapi.ListResponse{Count: f.total}
	for id := offset + 1; id <= f.total && id <= offset+limit; id++ {
		resp.Results = append(resp.Results, pokeapi.NamedResource{URL: fmt.Sprintf("fake://%d", id)})
	}
	return resp, nil
}

func (f *fakeSource) Pokemon(ctx context.Context, resourceURL string) (*pokeapi.Pokemon, error) {
	var id int
	if _, err := fmt.Sscanf(resourceURL, "fake://%d", &id); err != nil {
		return nil, &pokeapi.ParseError{URL: resourceURL, Err: err}
	}
	return f.PokemonByID(ctx, id)
}

func (f *fakeSource) PokemonByID(_ context.Context, id int) (*pokeapi.Pokemon, error) {
	f.mu.Lock()
	failing := f.failIDs[id]
	f.mu.Unlock()
	if failing || id < 1 || id > f.total {
		return nil, &pokeapi.NetworkError{URL: fmt.Sprintf("fake://%d", id), StatusCode: 500}
	}
	name := f.names[id]
	if name == "" {
		name = fmt.Sprintf("mon%d", id)
	}
	return &pokeapi.Pokemon{
		ID:     id,
		Name:   name,
		Height: 7,
		Weight: 69,
		Types:  []pokeapi.TypeSlot{{Slot: 1, Type: pokeapi.NamedResource{Name: "grass"}}},
		Stats:  []pokeapi.StatSlot{{BaseStat: 45, Stat: pokeapi.NamedResource{Name: "hp"}}},
	}, nil
}

func (f *fakeSource) Types(context.Context) ([]pokeapi.NamedResource, error) {
	out := make([]pokeapi.NamedResource, 0, len(f.members))
	for name := range f.members {
		out = append(out, pokeapi.NamedResource{Name: name})
	}
	return out, nil
}

func (f *fakeSource) TypeMembers(_ context.Context, name string) ([]pokeapi.TypeMember, error) {
	ids, ok := f.members[name]
	if !ok {
		return nil, &pokeapi.NetworkError{URL: "fake://type/" + name, StatusCode: 404}
	}
	out := make([]pokeapi.TypeMember, 0, len(ids))
	for _, id := range ids {
		out = append(out, pokeapi.TypeMember{Pokemon: pokeapi.NamedResource{URL: fmt.Sprintf("fake://%d", id)}})
	}
	return out, nil
}

func (f *fakeSource) Species(context.Context, string) (*pokeapi.Species, error) {
	return &pokeapi.Species{}, nil
}

func newTestController(src pokeapi.Source) *catalog.Controller {
	return catalog.NewController(catalog.NewLoader(src, 4), debounce.New(0))
}
