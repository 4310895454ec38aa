// Package dinos holds the static catalog of playable characters. The catalog is
// read-only; the save subsystem consults it when a player picks an active dino.
package dinos

// Dino describes one playable character.
type Dino struct {
	Slug          string `json:"slug"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Temperament   string `json:"temperament"`
	Species       string `json:"species"`
	Habitat       string `json:"habitat"`
	Role          string `json:"role"`
	FavoriteSnack string `json:"favoriteSnack"`
	FavoriteToy   string `json:"favoriteToy"`
}

var library = []Dino{
	{
		Slug:          "ember",
		Name:          "Ember",
		Description:   "A curious velociraptor who loves shiny objects and sprint drills.",
		Temperament:   "curious",
		Species:       "Velociraptor",
		Habitat:       "Sunlit canyon roost",
		Role:          "Scout / Forager",
		FavoriteSnack: "Smoked fish jerky",
		FavoriteToy:   "Chrome glider lure",
	},
	{
		Slug:          "willow",
		Name:          "Willow",
		Description:   "A calm stegosaurus that enjoys sunbathing and leafy snacks.",
		Temperament:   "calm",
		Species:       "Stegosaurus",
		Habitat:       "Fern grove paddock",
		Role:          "Guardian grazer",
		FavoriteSnack: "Fresh ginkgo leaves",
		FavoriteToy:   "Mist arch to stroll through",
	},
	{
		Slug:          "nova",
		Name:          "Nova",
		Description:   "A playful triceratops always ready to charge into a game.",
		Temperament:   "playful",
		Species:       "Triceratops",
		Habitat:       "Starlit mesa clearing",
		Role:          "Trailblazer / Sparring partner",
		FavoriteSnack: "Spiced root bundles",
		FavoriteToy:   "Glow-hoop toss",
	},
}

// All returns the full catalog in display order.
func All() []Dino {
	out := make([]Dino, len(library))
	copy(out, library)
	return out
}

// FindBySlug returns the dino with the given slug, or nil when unknown.
func FindBySlug(slug string) *Dino {
	for i := range library {
		if library[i].Slug == slug {
			d := library[i]
			return &d
		}
	}
	return nil
}

// DefaultSlug is the slug assigned to players who never picked a dino.
func DefaultSlug() string {
	return library[0].Slug
}
