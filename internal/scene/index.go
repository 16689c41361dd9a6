package scene

import "math"

// Index is a flat SpatialIndex over meshes. Queries test every mesh, which
// is fine for the handful of surfaces a UI projects.
type Index struct {
	meshes []*Mesh
}

// NewIndex creates an index holding meshes.
func NewIndex(meshes ...*Mesh) *Index {
	return &Index{meshes: meshes}
}

// Add inserts a mesh.
func (idx *Index) Add(m *Mesh) {
	idx.meshes = append(idx.meshes, m)
}

// Remove deletes a mesh. It reports whether the mesh was present.
func (idx *Index) Remove(m *Mesh) bool {
	for i, existing := range idx.meshes {
		if existing == m {
			idx.meshes = append(idx.meshes[:i], idx.meshes[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of meshes.
func (idx *Index) Len() int {
	return len(idx.meshes)
}

// RaycastSingle implements SpatialIndex.
func (idx *Index) RaycastSingle(r Ray) (Hit, bool) {
	best := Hit{Distance: float32(math.Inf(1))}
	found := false
	for _, m := range idx.meshes {
		hit, ok := m.raycast(r)
		if ok && hit.Distance < best.Distance {
			best = hit
			found = true
		}
	}
	return best, found
}
