// Copyright 2017 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package field

import (
	"fmt"
	"strconv"
	"strings"
)

// jsonSegment is one step of a parsed JSONPath: either a `.name` object
// member access or a `[n]`/`['name']` index access.
type jsonSegment struct {
	name    string
	index   int
	isIndex bool
}

// jsonPath is a parsed JSONPath expression limited to the subset this
// package supports: `$`, `$.name`, `$[n]`, and chains of those
// (`$.a[0].b`). This is not a general JSONPath implementation — it covers
// the subset the field engine's path expressions are specified to use,
// and, unlike every ecosystem JSONPath library, tracks enough context per
// match (the parent container plus key/index) to splice a replacement
// value back in without a second traversal.
type jsonPath struct {
	expr     string
	segments []jsonSegment
}

// parseJSONPath parses expr. expr must begin with "$"; an empty or
// differently-rooted expression is a caller error (InvalidPath), not a
// parse ambiguity this package tries to guess at.
func parseJSONPath(expr string) (*jsonPath, error) {
	if expr == "" {
		return nil, fmt.Errorf("empty JSONPath expression")
	}
	if expr[0] != '$' {
		return nil, fmt.Errorf("JSONPath expression %q must start with $", expr)
	}
	rest := expr[1:]
	var segments []jsonSegment
	for len(rest) > 0 {
		switch rest[0] {
		case '.':
			rest = rest[1:]
			i := 0
			for i < len(rest) && rest[i] != '.' && rest[i] != '[' {
				i++
			}
			if i == 0 {
				return nil, fmt.Errorf("JSONPath expression %q has an empty name segment", expr)
			}
			segments = append(segments, jsonSegment{name: rest[:i]})
			rest = rest[i:]
		case '[':
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return nil, fmt.Errorf("JSONPath expression %q has an unterminated [", expr)
			}
			inner := rest[1:end]
			if len(inner) >= 2 && (inner[0] == '\'' || inner[0] == '"') && inner[len(inner)-1] == inner[0] {
				segments = append(segments, jsonSegment{name: inner[1 : len(inner)-1]})
			} else {
				n, err := strconv.Atoi(inner)
				if err != nil {
					return nil, fmt.Errorf("JSONPath expression %q has a non-numeric index %q", expr, inner)
				}
				segments = append(segments, jsonSegment{index: n, isIndex: true})
			}
			rest = rest[end+1:]
		default:
			return nil, fmt.Errorf("JSONPath expression %q is malformed at %q", expr, rest)
		}
	}
	return &jsonPath{expr: expr, segments: segments}, nil
}

// jsonMatch is one node a jsonPath selected. parent/key/index are the
// binding needed to overwrite the match in place; isRoot is true when the
// match is the document root itself, which has no parent to splice into.
type jsonMatch struct {
	value   interface{}
	parent  interface{} // map[string]interface{} or []interface{}
	key     string
	index   int
	isIndex bool
	isRoot  bool
}

// set overwrites the matched location with v. Calling set on a root match
// has no effect — the caller must substitute its own root variable
// instead, since a root match carries no parent container.
func (m *jsonMatch) set(v interface{}) {
	switch p := m.parent.(type) {
	case map[string]interface{}:
		p[m.key] = v
	case []interface{}:
		p[m.index] = v
	}
}

// eval walks root along p's segments and returns every match, in document
// order at each level (object members in the order encoding/json already
// produced them in the decoded map is not guaranteed, but array indices
// and the single-name-segment common case are both deterministic, which
// covers every path shape this package parses).
func (p *jsonPath) eval(root interface{}) []*jsonMatch {
	matches := []*jsonMatch{{value: root, isRoot: true}}
	for _, seg := range p.segments {
		var next []*jsonMatch
		for _, m := range matches {
			switch v := m.value.(type) {
			case map[string]interface{}:
				if seg.isIndex {
					continue
				}
				if child, ok := v[seg.name]; ok {
					next = append(next, &jsonMatch{value: child, parent: v, key: seg.name})
				}
			case []interface{}:
				if !seg.isIndex {
					continue
				}
				idx := seg.index
				if idx < 0 {
					idx += len(v)
				}
				if idx >= 0 && idx < len(v) {
					next = append(next, &jsonMatch{value: v[idx], parent: v, index: idx, isIndex: true})
				}
			}
		}
		matches = next
	}
	return matches
}
