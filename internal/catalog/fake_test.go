package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/five82/pokedex/internal/pokeapi"
)

// fakeSource serves a synthetic catalog of `total` records with ids 1..total.
// Record i is named names[i] when set, otherwise "mon<i>".
type fakeSource struct {
	total   int
	names   map[int]string
	members map[string][]int // category -> ids
	species map[int][]pokeapi.FlavorText

	mu        sync.Mutex
	failIDs   map[int]bool
	listCalls []int // offsets requested
	fetched   int
	// jitter delays lower ids longer so completions arrive out of order.
	jitter bool
}

func newFakeSource(total int) *fakeSource {
	return &fakeSource{
		total:   total,
		names:   map[int]string{},
		members: map[string][]int{},
		species: map[int][]pokeapi.FlavorText{},
		failIDs: map[int]bool{},
	}
}

func (f *fakeSource) url(id int) string {
	return fmt.Sprintf("fake://pokemon/%d", id)
}

func (f *fakeSource) record(id int) pokeapi.Pokemon {
	name := f.names[id]
	if name == "" {
		name = fmt.Sprintf("mon%d", id)
	}
	return pokeapi.Pokemon{
		ID:      id,
		Name:    name,
		Types:   []pokeapi.TypeSlot{{Slot: 1, Type: pokeapi.NamedResource{Name: "normal"}}},
		Species: pokeapi.NamedResource{URL: fmt.Sprintf("fake://species/%d", id)},
	}
}

func (f *fakeSource) ListPokemon(_ context.Context, limit, offset int) (*pokeapi.ListResponse, error) {
	f.mu.Lock()
	f.listCalls = append(f.listCalls, offset)
	f.mu.Unlock()

	resp := &pokeapi.ListResponse{Count: f.total}
	for id := offset + 1; id <= f.total && id <= offset+limit; id++ {
		resp.Results = append(resp.Results, pokeapi.NamedResource{Name: f.record(id).Name, URL: f.url(id)})
	}
	return resp, nil
}

func (f *fakeSource) Pokemon(ctx context.Context, resourceURL string) (*pokeapi.Pokemon, error) {
	var id int
	if _, err := fmt.Sscanf(resourceURL, "fake://pokemon/%d", &id); err != nil {
		return nil, &pokeapi.ParseError{URL: resourceURL, Err: err}
	}
	return f.PokemonByID(ctx, id)
}

func (f *fakeSource) PokemonByID(ctx context.Context, id int) (*pokeapi.Pokemon, error) {
	if f.jitter {
		select {
		case <-time.After(time.Duration(f.total-id%f.total) * 100 * time.Microsecond):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	f.mu.Lock()
	f.fetched++
	fail := f.failIDs[id]
	f.mu.Unlock()

	if fail || id < 1 || id > f.total {
		return nil, &pokeapi.NetworkError{URL: f.url(id), StatusCode: 404}
	}
	rec := f.record(id)
	return &rec, nil
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
	for i, id := range ids {
		out = append(out, pokeapi.TypeMember{Slot: i + 1, Pokemon: pokeapi.NamedResource{URL: f.url(id)}})
	}
	return out, nil
}

func (f *fakeSource) Species(_ context.Context, resourceURL string) (*pokeapi.Species, error) {
	var id int
	if _, err := fmt.Sscanf(resourceURL, "fake://species/%d", &id); err != nil {
		return nil, &pokeapi.ParseError{URL: resourceURL, Err: err}
	}
	return &pokeapi.Species{ID: id, FlavorTextEntries: f.species[id]}, nil
}

func (f *fakeSource) failOn(ids ...int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, id := range ids {
		f.failIDs[id] = true
	}
}

func (f *fakeSource) clearFailures() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failIDs = map[int]bool{}
}

func ids(records []pokeapi.Pokemon) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}
