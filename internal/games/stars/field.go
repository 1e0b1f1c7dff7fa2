package stars

// cellField is the sim.Field backed by the current screen size.
// The game updates it on resize and the world reads it every tick.
type cellField struct {
	w, h float64
}

func (f *cellField) set(w, h float64) {
	f.w, f.h = w, h
}

// Size returns the field size in world units.
func (f *cellField) Size() (float64, float64) {
	return f.w, f.h
}
