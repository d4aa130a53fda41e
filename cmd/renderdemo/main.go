// Command renderdemo loads a cell table from JSON and dumps the ordered
// sink calls a rendering session would produce for it, using a
// sink.RecordingSink in place of a real output-document backend.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"os"

	"drawioengine/diagram"
	"drawioengine/render"
	"drawioengine/sink"
)

// cellJSON mirrors the flat drawio-style cell record this demo accepts on
// input; it is decoded into a diagram.Cell, not embedded in the diagram
// package itself, so that package stays free of an encoding concern.
type cellJSON struct {
	ID       string  `json:"id"`
	ParentID string  `json:"parent,omitempty"`
	SourceID string  `json:"source,omitempty"`
	TargetID string  `json:"target,omitempty"`
	Vertex   bool    `json:"vertex,omitempty"`
	Edge     bool    `json:"edge,omitempty"`
	Style    string  `json:"style,omitempty"`
	Label    string  `json:"value,omitempty"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	Width    float64 `json:"width,omitempty"`
	Height   float64 `json:"height,omitempty"`
}

func main() {
	var (
		inputFile = flag.String("i", "", "Input cell-table JSON file path")
		output    = flag.String("o", "", "Output file path (default: stdout)")
	)
	flag.Parse()

	if *inputFile == "" {
		fmt.Fprintf(os.Stderr, "Error: input file required (-i)\n")
		flag.Usage()
		os.Exit(1)
	}

	content, err := ioutil.ReadFile(*inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input file: %v\n", err)
		os.Exit(1)
	}

	var raw []cellJSON
	if err := json.Unmarshal(content, &raw); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing cell table: %v\n", err)
		os.Exit(1)
	}

	cells := make([]*diagram.Cell, len(raw))
	for i, c := range raw {
		cells[i] = &diagram.Cell{
			ID:          c.ID,
			ParentID:    c.ParentID,
			SourceID:    c.SourceID,
			TargetID:    c.TargetID,
			IsVertex:    c.Vertex,
			IsEdge:      c.Edge,
			StyleString: c.Style,
			Label:       c.Label,
			Geometry: diagram.Geometry{
				X: c.X, Y: c.Y, Width: c.Width, Height: c.Height,
			},
		}
	}

	table := diagram.NewTable(cells)
	render.ResolveStyles(table)

	var rs sink.RecordingSink
	render.New(&rs).RenderTable(table)

	jsonData, err := json.MarshalIndent(rs.Calls, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error converting sink calls to JSON: %v\n", err)
		os.Exit(1)
	}

	if *output != "" {
		if err := ioutil.WriteFile(*output, jsonData, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Successfully rendered %d cells to %s\n", len(cells), *output)
	} else {
		fmt.Println(string(jsonData))
	}
}
