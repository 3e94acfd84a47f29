package canvas

// Resolver applies the canvas lookup order: the pre-assigned canvas, then
// the component's own object and descendants, then the first scene canvas
// that is not rendered in world space. Either provider may be nil.
type Resolver struct {
	Descendants DescendantFinder
	Scene       SceneProvider
}

func NewResolver(descendants DescendantFinder, scene SceneProvider) *Resolver {
	return &Resolver{
		Descendants: descendants,
		Scene:       scene,
	}
}

// Resolve returns the first usable canvas, or nil when none is found.
func (r *Resolver) Resolve(assigned Canvas) Canvas {
	if assigned != nil {
		return assigned
	}
	if r == nil {
		return nil
	}

	if r.Descendants != nil {
		if c := r.Descendants.FindInDescendants(); c != nil {
			return c
		}
	}

	if r.Scene != nil {
		for _, c := range r.Scene.Canvases() {
			if c != nil && c.RenderMode() != WorldSpace {
				return c
			}
		}
	}

	return nil
}
