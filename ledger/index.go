package ledger

import "fmt"

// Index maps participant names to vertex indices and back.
type Index struct {
	names []string
	pos   map[string]int
}

// NewIndex assigns vertex i to names[i].
// Returns ErrDuplicateParticipant if a name repeats.
func NewIndex(names []string) (*Index, error) {
	x := &Index{
		names: make([]string, 0, len(names)),
		pos:   make(map[string]int, len(names)),
	}
	for _, name := range names {
		if _, ok := x.pos[name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateParticipant, name)
		}
		x.add(name)
	}
	return x, nil
}

// add appends name if it is not indexed yet and returns its vertex.
func (x *Index) add(name string) int {
	if v, ok := x.pos[name]; ok {
		return v
	}
	v := len(x.names)
	x.names = append(x.names, name)
	x.pos[name] = v
	return v
}

// Len reports the number of participants.
func (x *Index) Len() int { return len(x.names) }

// Vertex returns the vertex of name.
func (x *Index) Vertex(name string) (int, bool) {
	v, ok := x.pos[name]
	return v, ok
}

// Name returns the participant at vertex v, or "" if v is out of range.
func (x *Index) Name(v int) string {
	if v < 0 || v >= len(x.names) {
		return ""
	}
	return x.names[v]
}

// Names returns the participants in vertex order.
func (x *Index) Names() []string {
	return append([]string(nil), x.names...)
}
