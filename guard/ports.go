/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package guard

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
)

// PortDeclarationPattern matches port assignments in JS, JSON, and YAML
// config. Both quoted and bare keys are supported.
var PortDeclarationPattern = regexp.MustCompile(`(?i)["']?\bport\b["']?\s*[:=]\s*["']?(\d{2,5})\b`)

// PortFlagPattern matches command-line port flags in package scripts.
var PortFlagPattern = regexp.MustCompile(`(?:--port[= ]|-p )(\d{2,5})\b`)

// LocalURLPattern matches loopback URLs carrying an explicit port.
var LocalURLPattern = regexp.MustCompile(`https?://(?:localhost|127\.0\.0\.1):(\d{2,5})\b`)

// PortConfig is one dev-server configuration blob to scan.
type PortConfig struct {
	// Platform names the platform this config serves.
	Platform string
	// FilePath is where the blob came from, for findings.
	FilePath string
	// Content is the raw config text.
	Content string
}

// CheckPorts verifies dev-server port isolation across platform
// configs: every bound port must match its platform's assignment, no
// two platforms may bind the same port, and loopback URLs must point at
// an assigned port. Ports appearing only inside URLs are treated as
// cross-platform references, not bindings.
func CheckPorts(configs []PortConfig, assigned map[string]int) []Finding {
	findings := []Finding{}
	bound := make(map[int][]string)

	for _, cfg := range configs {
		expected, hasAssignment := assigned[cfg.Platform]

		for _, port := range declaredPorts(cfg.Content) {
			if !slices.Contains(bound[port], cfg.Platform) {
				bound[port] = append(bound[port], cfg.Platform)
			}
			if !hasAssignment {
				findings = append(findings, Finding{
					Category: CategoryPorts,
					File:     cfg.FilePath,
					Message:  fmt.Sprintf("platform %q binds port %d but has no assigned dev-server port", cfg.Platform, port),
				})
				continue
			}
			if port != expected {
				findings = append(findings, Finding{
					Category: CategoryPorts,
					File:     cfg.FilePath,
					Message:  fmt.Sprintf("%s dev server binds port %d, expected %d", cfg.Platform, port, expected),
				})
			}
		}

		for _, match := range LocalURLPattern.FindAllStringSubmatch(cfg.Content, -1) {
			port, err := strconv.Atoi(match[1])
			if err != nil || isAssigned(assigned, port) {
				continue
			}
			findings = append(findings, Finding{
				Category: CategoryPorts,
				File:     cfg.FilePath,
				Message:  fmt.Sprintf("%s config references localhost:%d, which is not an assigned dev-server port", cfg.Platform, port),
			})
		}
	}

	for _, port := range slices.Sorted(maps.Keys(bound)) {
		platforms := bound[port]
		if len(platforms) < 2 {
			continue
		}
		slices.Sort(platforms)
		findings = append(findings, Finding{
			Category: CategoryPorts,
			Message:  fmt.Sprintf("port %d is bound by multiple platforms: %v", port, platforms),
		})
	}

	return findings
}

// declaredPorts extracts every port a config binds, deduplicated in
// order of first appearance.
func declaredPorts(content string) []int {
	ports := []int{}
	for _, pattern := range []*regexp.Regexp{PortDeclarationPattern, PortFlagPattern} {
		for _, match := range pattern.FindAllStringSubmatch(content, -1) {
			port, err := strconv.Atoi(match[1])
			if err != nil || slices.Contains(ports, port) {
				continue
			}
			ports = append(ports, port)
		}
	}
	return ports
}

func isAssigned(assigned map[string]int, port int) bool {
	for _, p := range assigned {
		if p == port {
			return true
		}
	}
	return false
}
