package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func edge(source, target, label string) *Edge {
	return &Edge{Source: source, Target: target, Label: label}
}

func TestInvert(t *testing.T) {
	edges := []*Edge{
		edge("A", "A1", "contains"),
		edge("B", "B1", "contains"),
		edge("A1", "B1", "invokes"),
	}

	inverted := Invert(edges, "")

	expected := []*Edge{
		edge("A1", "A", "inv_contains"),
		edge("B1", "B", "inv_contains"),
		edge("B1", "A1", "inv_invokes"),
	}
	assert.Equal(t, expected, inverted)
}

func TestInvert_NewLabel(t *testing.T) {
	edges := []*Edge{edge("A", "B", "knows")}

	inverted := Invert(edges, "known_by")

	assert.Equal(t, []*Edge{edge("B", "A", "known_by")}, inverted)
}

func TestInvert_UnlabeledEdge(t *testing.T) {
	inverted := Invert([]*Edge{edge("A", "B", "")}, "")

	assert.Equal(t, "inv_edge", inverted[0].Label)
}

func TestInvert_CopiesProperties(t *testing.T) {
	edges := []*Edge{{
		Source:     "A",
		Target:     "B",
		Label:      "calls",
		Properties: map[string]any{"weight": 3, "medium": "http"},
	}}

	inverted := Invert(edges, "")

	assert.Equal(t, map[string]any{"weight": 3, "medium": "http"}, inverted[0].Properties)
	// The copy must be independent of the input
	inverted[0].Properties["weight"] = 4
	assert.Equal(t, 3, edges[0].Properties["weight"])
}

func TestInvert_DoesNotMutateInput(t *testing.T) {
	edges := []*Edge{edge("A", "B", "knows")}

	Invert(edges, "")

	assert.Equal(t, []*Edge{edge("A", "B", "knows")}, edges)
}

func TestCompose(t *testing.T) {
	edges1 := []*Edge{edge("A", "A1", "contains")}
	edges2 := []*Edge{edge("A1", "B1", "invokes")}

	composed := Compose(edges1, edges2, "contains_invokes")

	assert.Equal(t, []*Edge{edge("A", "B1", "contains_invokes")}, composed)
}

func TestCompose_DefaultLabelIsCommaJoin(t *testing.T) {
	edges1 := []*Edge{edge("A", "A1", "contains")}
	edges2 := []*Edge{edge("A1", "B1", "invokes")}

	composed := Compose(edges1, edges2, "")

	assert.Equal(t, "contains,invokes", composed[0].Label)
}

func TestCompose_NoMatchProducesNoOutput(t *testing.T) {
	edges1 := []*Edge{edge("A", "A1", "contains")}
	edges2 := []*Edge{edge("X", "Y", "invokes")}

	composed := Compose(edges1, edges2, "x")

	assert.Empty(t, composed)
}

func TestCompose_LastWriteWins(t *testing.T) {
	// Two edges2 entries share the source A1: only the later one
	// survives in the lookup, the earlier branch is dropped.
	edges1 := []*Edge{edge("A", "A1", "contains")}
	edges2 := []*Edge{
		edge("A1", "B1", "invokes"),
		edge("A1", "C1", "invokes"),
	}

	composed := Compose(edges1, edges2, "calls")

	assert.Equal(t, []*Edge{edge("A", "C1", "calls")}, composed)
}

func TestCompose_FollowsEdges1Order(t *testing.T) {
	edges1 := []*Edge{
		edge("B", "B1", "contains"),
		edge("A", "A1", "contains"),
	}
	edges2 := []*Edge{
		edge("A1", "X", "invokes"),
		edge("B1", "Y", "invokes"),
	}

	composed := Compose(edges1, edges2, "calls")

	assert.Equal(t, []*Edge{
		edge("B", "Y", "calls"),
		edge("A", "X", "calls"),
	}, composed)
}

func TestLift(t *testing.T) {
	edges1 := []*Edge{
		edge("A", "A1", "contains"),
		edge("B", "B1", "contains"),
	}
	edges2 := []*Edge{edge("A1", "B1", "invokes")}

	lifted := Lift(edges1, edges2, "calls")

	assert.Equal(t, []*Edge{edge("A", "B", "calls")}, lifted)
}

func TestLift_SelfLoopForSiblingRelation(t *testing.T) {
	// C1 and C2 are both children of C, so a C1->C2 relation lifts to a
	// self-loop on C.
	edges1 := []*Edge{
		edge("C", "C1", "contains"),
		edge("C", "C2", "contains"),
	}
	edges2 := []*Edge{edge("C1", "C2", "invokes")}

	lifted := Lift(edges1, edges2, "calls")

	assert.Equal(t, []*Edge{edge("C", "C", "calls")}, lifted)
}
