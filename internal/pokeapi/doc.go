// Package pokeapi provides an HTTP client for the public PokeAPI service.
//
// # Overview
//
// The catalog viewer reads five resources:
//
//   - GET {base}/pokemon?limit=N&offset=M   paginated listing of {name, url}
//   - GET {url}                             full record from a listing entry
//   - GET {base}/type                       category index
//   - GET {base}/type/{name}                category membership
//   - GET {speciesUrl}                      descriptive flavor text
//
// Each call is a single GET. Nothing is retried or cached; a failure is
// returned to the caller immediately.
//
// # Errors
//
// Transport failures and non-2xx responses return *NetworkError. A body that
// is not the expected JSON returns *ParseError. Callers distinguish them with
// errors.As:
//
//	var netErr *pokeapi.NetworkError
//	if errors.As(err, &netErr) && netErr.StatusCode == http.StatusNotFound {
//		// unknown id
//	}
//
// Absent optional fields (sprites, flavor text) are not errors. The types in
// this package keep them as nil pointers or empty slices, and the catalog and
// render packages substitute fallbacks.
//
// # Request Pacing
//
// Options.RequestsPerSecond installs a token-bucket limiter shared by all
// calls on a Client. A page load fans out 21 requests at once, so pacing keeps
// the viewer within PokeAPI's fair-use guidance. Zero disables pacing.
//
// # Usage Example
//
//	client, err := pokeapi.NewClient(pokeapi.Options{RequestsPerSecond: 20, Burst: 10})
//	if err != nil {
//		return err
//	}
//	page, err := client.ListPokemon(ctx, 20, 0)
package pokeapi
