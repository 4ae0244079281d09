package commands

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/constgen/internal/cli/output"
	"github.com/leapstack-labs/constgen/internal/dag"
	"github.com/leapstack-labs/constgen/pkg/core"
	"github.com/leapstack-labs/constgen/pkg/resolve"
	"github.com/spf13/cobra"
)

// NewGraphCommand creates the graph command.
func NewGraphCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph <schema>",
		Short: "Show the composite dependency graph",
		Long: `Display the dependency graph of the composites of every bit-flag set.

Composites are grouped by evaluation level: a composite at level N only
uses base flags and composites from levels below N.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format (agent-friendly)`,
		Example: `  # Show the composite graph
  constgen graph consts/perm.yaml

  # Output as JSON
  constgen graph consts/perm.yaml --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(cmd, args[0])
		},
	}

	return cmd
}

func runGraph(cmd *cobra.Command, path string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	r := cmdCtx.Renderer

	unit, err := cmdCtx.Engine.CompileFile(path)
	if err != nil {
		return err
	}

	out := output.GraphOutput{File: unit.File, Sets: []output.GraphSet{}}
	for _, set := range unit.Manifest.Sets {
		if set.Kind != core.KindBitflag {
			continue
		}
		gs, err := graphSet(set)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		out.Sets = append(out.Sets, gs)
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(out)
	case output.ModeMarkdown:
		graphMarkdown(r, out)
	default:
		graphText(r, out)
	}
	return nil
}

func graphSet(set *core.ConstantSet) (output.GraphSet, error) {
	graph, err := resolve.CompositeGraph(set)
	if err != nil {
		return output.GraphSet{}, err
	}
	levels, err := graph.GetExecutionLevels()
	if err != nil {
		return output.GraphSet{}, fmt.Errorf("set %q: %w", set.Name, err)
	}

	gs := output.GraphSet{
		Name:       set.Name,
		Levels:     make([]output.GraphLevel, 0, len(levels)),
		TotalNodes: graph.NodeCount(),
		TotalEdges: graph.EdgeCount(),
	}
	for i, level := range levels {
		gl := output.GraphLevel{Level: i, Constants: make([]output.GraphNode, 0, len(level))}
		for _, name := range level {
			gl.Constants = append(gl.Constants, output.GraphNode{
				Name:      name,
				DependsOn: operands(graph, name),
				UsedBy:    nonNil(graph.GetChildren(name)),
			})
		}
		gs.Levels = append(gs.Levels, gl)
	}
	return gs, nil
}

// operands lists every operand of a composite, base flags included.
func operands(graph *dag.Graph, name string) []string {
	node, ok := graph.GetNode(name)
	if !ok {
		return []string{}
	}
	if c, ok := node.Data.(core.Composite); ok {
		return nonNil(c.Operands)
	}
	return nonNil(graph.GetParents(name))
}

// graphText outputs the graph in styled text format.
func graphText(r *output.Renderer, out output.GraphOutput) {
	styles := r.Styles()

	r.Header(1, "Composite Graph: "+out.File)
	if len(out.Sets) == 0 {
		r.Muted("no bit-flag sets")
		return
	}

	for _, set := range out.Sets {
		r.Println("")
		r.Println(styles.Header2.Render(set.Name))
		if len(set.Levels) == 0 {
			r.Muted("  no composites")
			continue
		}
		for _, level := range set.Levels {
			r.Println(styles.Bold.Render(fmt.Sprintf("  Level %d:", level.Level)))
			for _, node := range level.Constants {
				r.Printf("    %s\n", styles.Name.Render(node.Name))
				r.Printf("      %s %s\n", styles.Muted.Render("operands:"), strings.Join(node.DependsOn, " | "))
				if len(node.UsedBy) > 0 {
					r.Printf("      %s %s\n", styles.Muted.Render("used by:"), strings.Join(node.UsedBy, ", "))
				}
			}
		}
		r.Println(styles.Muted.Render(fmt.Sprintf("  Total: %d composites, %d dependencies", set.TotalNodes, set.TotalEdges)))
	}
}

// graphMarkdown outputs the graph in markdown format.
func graphMarkdown(r *output.Renderer, out output.GraphOutput) {
	r.Println(output.FormatHeader(1, "Composite Graph: "+out.File))

	for _, set := range out.Sets {
		r.Println("")
		r.Println(output.FormatHeader(2, set.Name))
		r.Println("")
		for _, level := range set.Levels {
			r.Println(output.FormatHeader(3, fmt.Sprintf("Level %d", level.Level)))
			for _, node := range level.Constants {
				r.Printf("- %s\n", node.Name)
				r.Printf("  - operands: %s\n", strings.Join(node.DependsOn, ", "))
				if len(node.UsedBy) > 0 {
					r.Printf("  - used by: %s\n", strings.Join(node.UsedBy, ", "))
				}
			}
			r.Println("")
		}
		r.Println(output.FormatKeyValue("Composites", fmt.Sprintf("%d", set.TotalNodes)))
		r.Println(output.FormatKeyValue("Dependencies", fmt.Sprintf("%d", set.TotalEdges)))
	}
}
