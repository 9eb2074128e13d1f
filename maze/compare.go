package maze

// Canonical is the identity-free form of a maze used for comparison: the
// dimensions plus, for every tile id, the set of ids it has a passage to.
type Canonical struct {
	Rows, Cols  int
	Connections map[int]map[int]struct{}
}

// Canonical snapshots the maze's passages. Every tile has an entry, isolated
// tiles map to an empty set. The result shares no storage with the maze.
// Complexity: O(V + E).
func (m *Maze) Canonical() *Canonical {
	c := &Canonical{
		Rows:        m.Height(),
		Cols:        m.Width(),
		Connections: make(map[int]map[int]struct{}, m.VertexCount()),
	}
	for _, v := range m.Vertices() {
		set := make(map[int]struct{}, v.Degree())
		for _, n := range v.Neighbors() {
			set[n.ID] = struct{}{}
		}
		c.Connections[v.ID] = set
	}

	return c
}

// SubsetOf reports whether c and other have the same dimensions and every
// connection in c is also present in other. Connections only other has are
// not checked. A nil operand yields false.
func (c *Canonical) SubsetOf(other *Canonical) bool {
	if c == nil || other == nil {
		return false
	}
	if c.Rows != other.Rows || c.Cols != other.Cols {
		return false
	}
	for id, set := range c.Connections {
		theirs := other.Connections[id]
		for n := range set {
			if _, ok := theirs[n]; !ok {
				return false
			}
		}
	}

	return true
}

// Equal reports whether c and other have the same dimensions and exactly the
// same connections.
func (c *Canonical) Equal(other *Canonical) bool {
	return c.SubsetOf(other) && other.SubsetOf(c)
}

// Equal reports whether two mazes have the same dimensions and the same set
// of passages, regardless of identity. Comparing against nil is false.
func (m *Maze) Equal(other *Maze) bool {
	if m == nil || other == nil {
		return false
	}

	return m.Canonical().Equal(other.Canonical())
}

// SubsetOf is the one-directional check: same dimensions and every passage
// of m also exists in other. Prefer Equal unless that asymmetry is wanted.
func (m *Maze) SubsetOf(other *Maze) bool {
	if m == nil || other == nil {
		return false
	}

	return m.Canonical().SubsetOf(other.Canonical())
}
