package survivor

// ApplyGravity pulls every gravity-affected entity down by gravity*step.
// There is no terminal velocity.
func ApplyGravity(w *World, gravity, step float64) {
	for _, e := range w.All() {
		if e.Gravity {
			e.Vel.Y -= gravity * step
		}
	}
}
