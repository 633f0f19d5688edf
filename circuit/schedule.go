// File: schedule.go
// Role: §4.5's topological scheduler — "Builds a topological order over
//       the DAG obtained by cutting the feedback input of every delay
//       operator." Grounded on this project's DFS traversal (the
//       ancestry's algorithms/dfs.go): a depth-first walk along each
//       node's input (predecessor) edges, emitting a node after all its
//       producers, yields a topological order directly, and a back-edge
//       found mid-walk is exactly the "feedback edge without an
//       interposed delay" construction error.

package circuit

import "fmt"

const (
	unvisited = 0
	visiting  = 1
	visited   = 2
)

// scheduleTopological returns node ids in an order respecting "operator
// A feeds operator B (not via delay)" (§4.5), or ErrFeedbackWithoutDelay
// if the graph obtained by cutting every delay's feedback input still
// has a cycle.
func scheduleTopological(c *Circuit) ([]nodeID, error) {
	n := len(c.nodes)
	state := make([]int, n)
	order := make([]nodeID, 0, n)

	var visit func(id nodeID) error
	visit = func(id nodeID) error {
		switch state[id] {
		case visited:
			return nil
		case visiting:
			return fmt.Errorf("node %q: %w", c.nodes[id].kind, ErrFeedbackWithoutDelay)
		}
		state[id] = visiting
		rec := c.nodes[id]
		for _, s := range rec.inputs {
			producer := c.producerOf[s]
			if producer < 0 {
				continue // source stream: no node-level predecessor
			}
			if err := visit(producer); err != nil {
				return err
			}
		}
		state[id] = visited
		order = append(order, id)
		return nil
	}

	for id := 0; id < n; id++ {
		if err := visit(nodeID(id)); err != nil {
			return nil, err
		}
	}
	return order, nil
}
