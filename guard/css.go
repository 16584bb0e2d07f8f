/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package guard

import (
	"fmt"
	"strings"

	ts "github.com/tree-sitter/go-tree-sitter"
	ts_css "github.com/tree-sitter/tree-sitter-css/bindings/go"
	ts_html "github.com/tree-sitter/tree-sitter-html/bindings/go"
)

// cssClashQuery captures the two surfaces the clash guard inspects:
// property names in declarations and class names in selectors.
const cssClashQuery = `
(declaration (property_name) @property)
(class_selector (class_name) @class)
`

// htmlStyleQuery captures the contents of <style> elements.
const htmlStyleQuery = `(style_element (raw_text) @css)`

// ScanCSS scans a CSS blob for custom-property declarations and class
// selectors that lack the required prefix. Malformed CSS degrades to a
// partial scan of whatever parsed.
func ScanCSS(source []byte, prefix, filePath string) []Finding {
	findings := []Finding{}
	if prefix == "" {
		return findings
	}

	tree, err := parse(source, ts_css.Language())
	if err != nil {
		return findings
	}
	defer tree.Close()

	propertyPrefix := "--" + prefix + "-"
	classPrefix := prefix + "-"

	_ = eachCapture(tree, ts_css.Language(), cssClashQuery, source, func(name string, node ts.Node) {
		text := node.Utf8Text(source)
		line := int(node.StartPosition().Row) + 1
		switch name {
		case "property":
			if !strings.HasPrefix(text, "--") {
				return
			}
			if !strings.HasPrefix(text, propertyPrefix) {
				findings = append(findings, Finding{
					Category: CategoryTokenClash,
					File:     filePath,
					Line:     line,
					Message:  fmt.Sprintf("custom property %q lacks the %q prefix", text, propertyPrefix),
				})
			}
		case "class":
			if !strings.HasPrefix(text, classPrefix) {
				findings = append(findings, Finding{
					Category: CategoryTokenClash,
					File:     filePath,
					Line:     line,
					Message:  fmt.Sprintf("class selector %q lacks the %q prefix", "."+text, classPrefix),
				})
			}
		}
	})

	return findings
}

// ScanHTML extracts the contents of every <style> element and runs the
// CSS clash scan over each.
func ScanHTML(source []byte, prefix, filePath string) []Finding {
	findings := []Finding{}
	if prefix == "" {
		return findings
	}

	tree, err := parse(source, ts_html.Language())
	if err != nil {
		return findings
	}
	defer tree.Close()

	_ = eachCapture(tree, ts_html.Language(), htmlStyleQuery, source, func(_ string, node ts.Node) {
		inner := ScanCSS([]byte(node.Utf8Text(source)), prefix, filePath)
		offset := int(node.StartPosition().Row)
		for i := range inner {
			inner[i].Line += offset
		}
		findings = append(findings, inner...)
	})

	return findings
}
