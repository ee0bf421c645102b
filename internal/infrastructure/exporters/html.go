package exporters

import (
	"fmt"
	"io"

	"github.com/ersonp/dex/internal/domain/entities"
	"github.com/ersonp/dex/internal/infrastructure/render"
)

// HTML writes records as a standalone page of cards.
type HTML struct{}

// Format returns "html".
func (HTML) Format() string { return FormatHTML }

// Export writes the records.
func (HTML) Export(w io.Writer, records []entities.Creature) error {
	return render.WritePage(w, fmt.Sprintf("Exported Creatures (%d)", len(records)), "", records)
}
