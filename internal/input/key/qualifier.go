package key

// Qualifier is the engine's qualifier bitset reported with input events.
type Qualifier uint8

const (
	// QualShift is set while either shift key is held.
	QualShift Qualifier = 1 << iota
	// QualCtrl is set while either control key is held.
	QualCtrl
	// QualAlt is set while either alt key is held.
	QualAlt
	// QualAny is set while any other qualifier key is held.
	QualAny
)

// Has returns true if q contains the given qualifier.
func (q Qualifier) Has(qual Qualifier) bool {
	return q&qual != 0
}
