// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package notebook loads Node.js notebook (.nnb) files into typed cells.
// Decoding validates field presence up front, so renderers never see a
// half-populated cell.
package notebook

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/josemreis/nnb-converter/pkg/types"
)

// document is the on-disk layout. Pointer fields distinguish an absent key
// (or null) from an empty list.
type document struct {
	Cells *[]rawCell `json:"cells"`
}

type rawCell struct {
	Language *string      `json:"language"`
	Source   *[]string    `json:"source"`
	Outputs  *[]rawOutput `json:"outputs"`
}

type rawOutput struct {
	Items *[]rawItem `json:"items"`
}

type rawItem struct {
	MIME  string    `json:"mime"`
	Value *[]string `json:"value"`
}

// Load reads the notebook at path and returns its cells in document order.
func Load(path string) ([]types.Cell, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInputNotFound, path, err)
	}
	cells, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return cells, nil
}

// Parse decodes notebook content. Fields other than the top-level "cells"
// list are ignored. Markdown cells need language and source; code cells also
// need outputs, each output needs items and each item needs value.
func Parse(data []byte) ([]types.Cell, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if doc.Cells == nil {
		return nil, fmt.Errorf("%w: missing top-level \"cells\" list", ErrParse)
	}

	raw := *doc.Cells
	cells := make([]types.Cell, 0, len(raw))
	for i, rc := range raw {
		c, err := rc.toCell(i)
		if err != nil {
			return nil, err
		}
		cells = append(cells, c)
	}
	return cells, nil
}

func (rc rawCell) toCell(i int) (types.Cell, error) {
	if rc.Language == nil {
		return types.Cell{}, missing("cells[%d].language", i)
	}
	if rc.Source == nil {
		return types.Cell{}, missing("cells[%d].source", i)
	}
	c := types.Cell{
		Language: *rc.Language,
		Source:   *rc.Source,
	}
	if c.IsMarkdown() {
		return c, nil
	}

	if rc.Outputs == nil {
		return types.Cell{}, missing("cells[%d].outputs", i)
	}
	c.Outputs = make([]types.Output, 0, len(*rc.Outputs))
	for j, ro := range *rc.Outputs {
		if ro.Items == nil {
			return types.Cell{}, missing("cells[%d].outputs[%d].items", i, j)
		}
		out := types.Output{Items: make([]types.Item, 0, len(*ro.Items))}
		for k, ri := range *ro.Items {
			if ri.Value == nil {
				return types.Cell{}, missing("cells[%d].outputs[%d].items[%d].value", i, j, k)
			}
			out.Items = append(out.Items, types.Item{MIME: ri.MIME, Value: *ri.Value})
		}
		c.Outputs = append(c.Outputs, out)
	}
	return c, nil
}
