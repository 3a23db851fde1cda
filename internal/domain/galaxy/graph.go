package galaxy

// EventOracle answers connectivity questions derived from active campaign
// events. The campaign registry satisfies it.
type EventOracle interface {
	IsRouteBlocked(a, b string) bool
	WormholeExits(planetID string) []string
}

// ToggleResult reports what ToggleConnection did to the static edge set.
type ToggleResult string

const (
	ToggleAdded   ToggleResult = "added"
	ToggleRemoved ToggleResult = "removed"
)

// Graph overlays the static planet adjacency with event-derived wormholes and
// blockades. The static edge set lives on the planets themselves.
type Graph struct {
	Planets map[string]*Planet
	Events  EventOracle
}

// ToggleConnection flips the static undirected edge between two planets,
// keeping both adjacency lists symmetric.
func (g Graph) ToggleConnection(a, b string) (ToggleResult, bool) {
	pa, okA := g.Planets[a]
	pb, okB := g.Planets[b]
	if !okA || !okB || a == b {
		return "", false
	}
	if pa.ConnectedTo(b) {
		pa.Connections = removeID(pa.Connections, b)
		pb.Connections = removeID(pb.Connections, a)
		return ToggleRemoved, true
	}
	pa.Connections = append(pa.Connections, b)
	pb.Connections = append(pb.Connections, a)
	return ToggleAdded, true
}

// AddConnection adds the static edge if it is not already present.
func (g Graph) AddConnection(a, b string) bool {
	pa, okA := g.Planets[a]
	pb, okB := g.Planets[b]
	if !okA || !okB || a == b {
		return false
	}
	if pa.ConnectedTo(b) {
		return false
	}
	pa.Connections = append(pa.Connections, b)
	pb.Connections = append(pb.Connections, a)
	return true
}

// ValidMoveTargets returns the one-hop destinations from a planet: static
// neighbors whose hop is not blocked at either endpoint, plus the exits of
// active wormholes anchored there. No multi-hop pathfinding.
func (g Graph) ValidMoveTargets(fromID string) map[string]struct{} {
	out := map[string]struct{}{}
	from, ok := g.Planets[fromID]
	if !ok || from.Destroyed {
		return out
	}
	for _, neighborID := range from.Connections {
		neighbor, ok := g.Planets[neighborID]
		if !ok || neighbor.Destroyed {
			continue
		}
		if g.Events != nil && g.Events.IsRouteBlocked(fromID, neighborID) {
			continue
		}
		out[neighborID] = struct{}{}
	}
	if g.Events == nil {
		return out
	}
	for _, exitID := range g.Events.WormholeExits(fromID) {
		exit, ok := g.Planets[exitID]
		if !ok || exit.Destroyed {
			continue
		}
		out[exitID] = struct{}{}
	}
	return out
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
