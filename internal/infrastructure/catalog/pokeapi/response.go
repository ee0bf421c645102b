package pokeapi

import (
	"sort"

	"github.com/ersonp/dex/internal/domain/entities"
)

type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type listResponse struct {
	Count   int             `json:"count"`
	Results []namedResource `json:"results"`
}

type typeSlot struct {
	Slot int           `json:"slot"`
	Type namedResource `json:"type"`
}

type pokemonResponse struct {
	ID     int        `json:"id"`
	Name   string     `json:"name"`
	Height int        `json:"height"`
	Weight int        `json:"weight"`
	Types  []typeSlot `json:"types"`
	Stats  []struct {
		BaseStat int           `json:"base_stat"`
		Stat     namedResource `json:"stat"`
	} `json:"stats"`
	Sprites sprites `json:"sprites"`
}

type sprites struct {
	FrontDefault *string `json:"front_default"`
	Other        struct {
		OfficialArtwork struct {
			FrontDefault *string `json:"front_default"`
		} `json:"official-artwork"`
		DreamWorld struct {
			FrontDefault *string `json:"front_default"`
		} `json:"dream_world"`
	} `json:"other"`
}

// image picks the best available artwork, falling back to the plain sprite.
func (s sprites) image() string {
	for _, candidate := range []*string{
		s.Other.OfficialArtwork.FrontDefault,
		s.Other.DreamWorld.FrontDefault,
		s.FrontDefault,
	} {
		if candidate != nil && *candidate != "" {
			return *candidate
		}
	}
	return ""
}

func (p pokemonResponse) toCreature() entities.Creature {
	slots := make([]typeSlot, len(p.Types))
	copy(slots, p.Types)
	sort.SliceStable(slots, func(i, j int) bool { return slots[i].Slot < slots[j].Slot })

	c := entities.Creature{
		ID:       p.ID,
		Name:     p.Name,
		Height:   p.Height,
		Weight:   p.Weight,
		Types:    make([]string, 0, len(slots)),
		Stats:    make([]entities.Stat, 0, len(p.Stats)),
		ImageURL: p.Sprites.image(),
	}
	for _, t := range slots {
		c.Types = append(c.Types, t.Type.Name)
	}
	for _, s := range p.Stats {
		c.Stats = append(c.Stats, entities.Stat{Name: s.Stat.Name, Base: s.BaseStat})
	}
	return c
}
