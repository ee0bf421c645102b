package handlers

import (
	"time"

	"github.com/ersonp/dex/internal/domain/entities"
	"github.com/ersonp/dex/internal/domain/mocks"
	"github.com/ersonp/dex/internal/domain/ports"
	"github.com/ersonp/dex/internal/domain/services"
)

const (
	waitFor = 2 * time.Second
	tick    = 5 * time.Millisecond
)

var testNames = []string{
	"bulbasaur", "ivysaur", "venusaur",
	"charmander", "charmeleon", "charizard",
	"pichu", "pikachu", "raichu",
}

func newTestController(catalog *mocks.Catalog, renderer ports.Renderer) *services.Controller {
	return services.NewController(
		catalog,
		services.NewNameIndex(catalog, 100),
		services.NewResolver(catalog, 4),
		renderer,
		services.ControllerConfig{PageSize: 3, MaxResults: 20},
	)
}

func names(records []entities.Creature) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Name
	}
	return out
}
