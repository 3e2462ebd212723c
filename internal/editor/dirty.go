package editor

// Dirty records which derived data is stale. Flags coalesce: any number
// of edits between two frames cost one rebuild.
type Dirty uint8

const (
	// DirtyModel means the control grid, tessellation or material changed
	// and the mesh must be rebuilt.
	DirtyModel Dirty = 1 << iota
	// DirtyLight means the point light moved.
	DirtyLight
	// DirtyClipSpace means a model, view or projection input changed and
	// cached control point projections are stale.
	DirtyClipSpace

	DirtyAll = DirtyModel | DirtyLight | DirtyClipSpace
)

// Mark sets flags.
func (d *Dirty) Mark(flags Dirty) {
	*d |= flags
}

// Has reports whether any of flags is set.
func (d Dirty) Has(flags Dirty) bool {
	return d&flags != 0
}

// Take clears flags and reports whether any of them was set.
func (d *Dirty) Take(flags Dirty) bool {
	had := d.Has(flags)
	*d &^= flags
	return had
}
