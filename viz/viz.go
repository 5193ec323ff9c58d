// Package viz renders an fptree.Tree as a Graphviz DOT graph, for
// inspecting tree shape during development; it performs no file I/O of
// its own.
package viz

import (
	"fmt"

	"github.com/awalterschulze/gographviz"

	"fpgrowth/fptree"
)

// DOT walks t and returns a DOT-language rendering of its node structure:
// one graph node per tree node labeled with its item and traversal count (the root is
// labeled "root"), and one directed edge per parent-child link.
func DOT(t *fptree.Tree) (string, error) {
	graphAst, err := gographviz.Parse([]byte(`digraph G{}`))
	if err != nil {
		return "", fmt.Errorf("viz: %w", err)
	}
	graph := gographviz.NewGraph()
	if err := gographviz.Analyse(graphAst, graph); err != nil {
		return "", fmt.Errorf("viz: %w", err)
	}

	t.WalkNodes(func(id, parentID, item string, count int64) {
		label := fmt.Sprintf(`"root\ncount=%d"`, count)
		if item != "" {
			label = fmt.Sprintf(`"%s\ncount=%d"`, item, count)
		}
		_ = graph.AddNode("G", id, map[string]string{"label": label})
		if parentID != "" {
			_ = graph.AddEdge(parentID, id, true, nil)
		}
	})

	return graph.String(), nil
}
