/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver_test

import (
	"errors"
	"slices"
	"testing"

	"bennypowers.dev/shomer/resolver"
	"bennypowers.dev/shomer/token"
)

func tok(t *testing.T, path, value string) *token.Token {
	t.Helper()
	p, err := token.ParsePath(path)
	if err != nil {
		t.Fatalf("ParsePath(%q) error: %v", path, err)
	}
	return &token.Token{Path: p, Value: value}
}

func TestDependencyGraph_NoCycle(t *testing.T) {
	tokens := []*token.Token{
		tok(t, "color.base", "#3b82f6"),
		tok(t, "color.primary", "{color.base}"),
		tok(t, "button.bg", "{color.primary}"),
	}

	graph := resolver.BuildDependencyGraph(tokens)

	if graph.HasCycle() {
		t.Error("expected no cycle")
	}
	if deps := graph.Dependencies("color.primary"); !slices.Equal(deps, []string{"color.base"}) {
		t.Errorf("Dependencies(color.primary) = %v, want [color.base]", deps)
	}
	if deps := graph.Dependents("color.primary"); !slices.Equal(deps, []string{"button.bg"}) {
		t.Errorf("Dependents(color.primary) = %v, want [button.bg]", deps)
	}
}

func TestDependencyGraph_Cycle(t *testing.T) {
	tokens := []*token.Token{
		tok(t, "a", "{c}"),
		tok(t, "b", "{a}"),
		tok(t, "c", "{b}"),
	}

	graph := resolver.BuildDependencyGraph(tokens)

	if !graph.HasCycle() {
		t.Error("expected cycle")
	}
	if cycle := graph.FindCycle(); cycle == nil {
		t.Error("expected to find cycle path")
	}

	_, err := graph.TopologicalSort()
	if !errors.Is(err, token.ErrCircularReference) {
		t.Errorf("TopologicalSort() error = %v, want ErrCircularReference", err)
	}
}

func TestDependencyGraph_TopologicalSort(t *testing.T) {
	tokens := []*token.Token{
		tok(t, "button.bg", "{color.primary}"),
		tok(t, "color.primary", "{color.base}"),
		tok(t, "color.base", "#3b82f6"),
	}

	graph := resolver.BuildDependencyGraph(tokens)

	sorted, err := graph.TopologicalSort()
	if err != nil {
		t.Fatalf("TopologicalSort() error: %v", err)
	}

	index := make(map[string]int)
	for i, path := range sorted {
		index[path] = i
	}
	if index["color.base"] > index["color.primary"] {
		t.Errorf("color.base sorted after color.primary: %v", sorted)
	}
	if index["color.primary"] > index["button.bg"] {
		t.Errorf("color.primary sorted after button.bg: %v", sorted)
	}
}

func TestDependencyGraph_DanglingReference(t *testing.T) {
	tokens := []*token.Token{
		tok(t, "color.primary", "{color.missing}"),
	}

	graph := resolver.BuildDependencyGraph(tokens)

	if graph.HasCycle() {
		t.Error("dangling reference reported as cycle")
	}
	if !graph.Has("color.primary") {
		t.Error("Has(color.primary) = false, want true")
	}
	if graph.Has("color.missing") {
		t.Error("Has(color.missing) = true, want false")
	}
}
