package ports

import "github.com/ersonp/dex/internal/domain/entities"

// Renderer presents a view. It has no way to report back to the controller.
type Renderer interface {
	Render(view entities.View)
}

// RendererFunc adapts a plain function to Renderer.
type RendererFunc func(view entities.View)

// Render calls f(view).
func (f RendererFunc) Render(view entities.View) {
	f(view)
}
