package pokeapi

import "strings"

// NamedResource is PokeAPI's {name, url} reference shape.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ListResponse mirrors /pokemon and /type listings.
type ListResponse struct {
	Count    int             `json:"count"`
	Next     *string         `json:"next"`
	Previous *string         `json:"previous"`
	Results  []NamedResource `json:"results"`
}

// Pokemon is one catalog record as returned by /pokemon/{id}.
type Pokemon struct {
	ID        int           `json:"id"`
	Name      string        `json:"name"`
	Height    int           `json:"height"` // decimetres
	Weight    int           `json:"weight"` // hectograms
	Types     []TypeSlot    `json:"types"`
	Sprites   Sprites       `json:"sprites"`
	Stats     []StatSlot    `json:"stats"`
	Abilities []AbilitySlot `json:"abilities"`
	Species   NamedResource `json:"species"`
}

// TypeSlot is one ordered category of a Pokemon.
type TypeSlot struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

// Sprites holds image references. Either may be null upstream.
type Sprites struct {
	FrontDefault *string `json:"front_default"`
	FrontShiny   *string `json:"front_shiny"`
}

// StatSlot is one numeric attribute; BaseStat ranges 0–255.
type StatSlot struct {
	BaseStat int           `json:"base_stat"`
	Effort   int           `json:"effort"`
	Stat     NamedResource `json:"stat"`
}

// AbilitySlot names one ability.
type AbilitySlot struct {
	Ability  NamedResource `json:"ability"`
	IsHidden bool          `json:"is_hidden"`
	Slot     int           `json:"slot"`
}

// TypeDetail mirrors /type/{name}.
type TypeDetail struct {
	ID      int          `json:"id"`
	Name    string       `json:"name"`
	Pokemon []TypeMember `json:"pokemon"`
}

// TypeMember is one entry of a category's membership list.
type TypeMember struct {
	Slot    int           `json:"slot"`
	Pokemon NamedResource `json:"pokemon"`
}

// Species mirrors /pokemon-species/{id}; only the flavor text is consumed.
type Species struct {
	ID                int          `json:"id"`
	Name              string       `json:"name"`
	FlavorTextEntries []FlavorText `json:"flavor_text_entries"`
}

// FlavorText is one localized description entry.
type FlavorText struct {
	FlavorText string        `json:"flavor_text"`
	Language   NamedResource `json:"language"`
	Version    NamedResource `json:"version"`
}

// TypeNames returns the category names in slot order as delivered.
func (p Pokemon) TypeNames() []string {
	if len(p.Types) == 0 {
		return nil
	}
	names := make([]string, 0, len(p.Types))
	for _, t := range p.Types {
		names = append(names, t.Type.Name)
	}
	return names
}

// AbilityNames returns the ability names in slot order.
func (p Pokemon) AbilityNames() []string {
	if len(p.Abilities) == 0 {
		return nil
	}
	names := make([]string, 0, len(p.Abilities))
	for _, a := range p.Abilities {
		names = append(names, a.Ability.Name)
	}
	return names
}

// Normal returns the default front sprite URL when present.
func (s Sprites) Normal() (string, bool) {
	return spriteURL(s.FrontDefault)
}

// Shiny returns the alternate-palette front sprite URL when present.
func (s Sprites) Shiny() (string, bool) {
	return spriteURL(s.FrontShiny)
}

func spriteURL(ref *string) (string, bool) {
	if ref == nil {
		return "", false
	}
	trimmed := strings.TrimSpace(*ref)
	if trimmed == "" {
		return "", false
	}
	return trimmed, true
}
