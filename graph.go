package tictac

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/awalterschulze/gographviz"
	"github.com/gorgonia/tictac/game"
	"github.com/pkg/errors"
)

type labelledNode struct {
	Example
	ID string
}

func (n labelledNode) Mover() game.Colour { return n.Board.ToMove() }

// State is the board rendering with HTML line breaks.
func (n labelledNode) State() string {
	return strings.ReplaceAll(fmt.Sprint(n.Board), "\n", "<BR />")
}

func (n labelledNode) Target() int { return n.Policy.Target() }

func nodeID(b game.Board) string { return fmt.Sprintf("p%d", b.Key()) }

// ToDot renders the positions of the dataset with at most maxPly stones as a
// directed graph in the DOT language. Edges are the legal moves between them.
func (d *Dataset) ToDot(maxPly int) (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName("G"); err != nil {
		return "", errors.WithStack(err)
	}
	if err := g.SetDir(true); err != nil {
		return "", errors.WithStack(err)
	}

	var buf bytes.Buffer
	for _, ex := range d.Examples {
		if ex.Board.Stones() > maxPly {
			continue
		}
		n := labelledNode{Example: ex, ID: nodeID(ex.Board)}
		if err := tmpl.Execute(&buf, n); err != nil {
			return "", errors.Wrapf(err, "node %s", n.ID)
		}
		attrs := map[string]string{
			"fontname": "Monaco",
			"shape":    "none",
			"label":    buf.String(),
		}
		if err := g.AddNode("G", n.ID, attrs); err != nil {
			return "", errors.WithStack(err)
		}
		buf.Reset()

		if ex.Board.Stones() == maxPly {
			continue
		}
		mark := ex.Board.ToMove().Mark()
		for _, i := range game.EmptyCells(ex.Board) {
			child := ex.Board.Play(i, mark)
			if _, ok := d.Lookup(child); !ok {
				continue // finished games are not in the dataset
			}
			if err := g.AddEdge(n.ID, nodeID(child), true, map[string]string{"label": fmt.Sprintf("%d", i)}); err != nil {
				return "", errors.WithStack(err)
			}
		}
	}
	return g.String(), nil
}

const tmplRaw = `<
<TABLE BORDER="0" CELLBORDER="1" CELLSPACING="0">
<TR><TD>Position</TD><TD>{{.ID}}</TD></TR>
<TR><TD>To move</TD><TD>{{.Mover}}</TD></TR>
<TR><TD>Value</TD><TD>{{.Value}}</TD></TR>
<TR><TD>Label</TD><TD>{{.Branch}} @ {{.Target}}</TD></TR>
<TR><TD>State</TD><TD>{{.State}}</TD></TR>
</TABLE>
>
`

var tmpl *template.Template

func init() {
	tmpl = template.Must(template.New("name").Parse(tmplRaw))
}
