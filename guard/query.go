/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package guard

import (
	"fmt"
	"unsafe"

	ts "github.com/tree-sitter/go-tree-sitter"
)

// parse parses source with the given grammar. Callers own the returned
// tree and must Close it. Syntax errors do not fail the parse; they
// surface as error nodes inside the tree.
func parse(source []byte, langPtr unsafe.Pointer) (*ts.Tree, error) {
	parser := ts.NewParser()
	if parser == nil {
		return nil, fmt.Errorf("failed to create parser")
	}
	defer parser.Close()

	if err := parser.SetLanguage(ts.NewLanguage(langPtr)); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("parser returned nil tree")
	}
	return tree, nil
}

// eachCapture runs a query over a parse tree and calls fn once per
// captured node with the capture's name.
func eachCapture(tree *ts.Tree, langPtr unsafe.Pointer, queryString string, source []byte, fn func(name string, node ts.Node)) error {
	query, qerr := ts.NewQuery(ts.NewLanguage(langPtr), queryString)
	if qerr != nil {
		return fmt.Errorf("failed to compile query: %s", qerr.Message)
	}
	defer query.Close()

	cursor := ts.NewQueryCursor()
	defer cursor.Close()

	names := query.CaptureNames()
	matches := cursor.Matches(query, tree.RootNode(), source)
	for match := matches.Next(); match != nil; match = matches.Next() {
		for _, capture := range match.Captures {
			name := ""
			if int(capture.Index) < len(names) {
				name = names[capture.Index]
			}
			fn(name, capture.Node)
		}
	}
	return nil
}
