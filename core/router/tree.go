package router

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/renderkit/core/handler"
)

// node is a single segment in the routing tree. Static children take
// priority over a parameter child, which takes priority over a wildcard.
type node[C handler.Context] struct {
	static   map[string]*node[C]
	param    *node[C]
	paramKey string
	wildcard *node[C]

	// endpoints maps HTTP method to handler.
	endpoints map[string]handler.HandlerFunc[C]
}

// insert registers a handler for the given method and pattern.
// Patterns use "{name}" for named parameters and a trailing "*" to match
// the remainder of the path (exposed as the "*" parameter).
func (n *node[C]) insert(method, pattern string, fn handler.HandlerFunc[C]) {
	if len(pattern) == 0 || pattern[0] != '/' {
		panic(fmt.Errorf("%w: '%s'", ErrInvalidPattern, pattern))
	}

	segments := splitPath(pattern)
	seen := map[string]bool{}
	curr := n

	for i, seg := range segments {
		switch {
		case seg == "*":
			if i != len(segments)-1 {
				panic(fmt.Errorf("%w: '%s'", ErrWildcardPosition, pattern))
			}
			if curr.wildcard == nil {
				curr.wildcard = &node[C]{}
			}
			curr = curr.wildcard

		case len(seg) > 1 && seg[0] == '{' && seg[len(seg)-1] == '}':
			key := seg[1 : len(seg)-1]
			if key == "" {
				panic(fmt.Errorf("%w: '%s'", ErrInvalidPattern, pattern))
			}
			if seen[key] {
				panic(fmt.Errorf("%w: '%s' in '%s'", ErrDuplicateParam, key, pattern))
			}
			seen[key] = true
			if curr.param == nil {
				curr.param = &node[C]{}
				curr.paramKey = key
			} else if curr.paramKey != key {
				panic(fmt.Errorf("%w: '%s' vs '%s' in '%s'", ErrParamConflict, curr.paramKey, key, pattern))
			}
			curr = curr.param

		default:
			if curr.static == nil {
				curr.static = make(map[string]*node[C])
			}
			child, ok := curr.static[seg]
			if !ok {
				child = &node[C]{}
				curr.static[seg] = child
			}
			curr = child
		}
	}

	if curr.endpoints == nil {
		curr.endpoints = make(map[string]handler.HandlerFunc[C])
	}
	curr.endpoints[method] = fn
}

// find walks the tree for the given path segments, filling params along the way.
// It returns the deepest matching node or nil. Static matches are preferred,
// then parameters, then wildcards, backtracking between alternatives.
func (n *node[C]) find(segments []string, params map[string]string) *node[C] {
	if len(segments) == 0 {
		if n.endpoints != nil {
			return n
		}
		// A trailing wildcard also matches the empty remainder.
		if n.wildcard != nil && n.wildcard.endpoints != nil {
			params["*"] = ""
			return n.wildcard
		}
		return nil
	}

	seg, rest := segments[0], segments[1:]

	if child, ok := n.static[seg]; ok {
		if match := child.find(rest, params); match != nil {
			return match
		}
	}

	if n.param != nil {
		if match := n.param.find(rest, params); match != nil {
			params[n.paramKey] = seg
			return match
		}
	}

	if n.wildcard != nil && n.wildcard.endpoints != nil {
		params["*"] = strings.Join(segments, "/")
		return n.wildcard
	}

	return nil
}

// splitPath splits a URL path into segments, dropping the leading slash.
// The root path "/" yields no segments; a trailing slash yields a final
// empty segment so "/users" and "/users/" stay distinct routes.
func splitPath(path string) []string {
	if path == "/" || path == "" {
		return nil
	}
	return strings.Split(strings.TrimPrefix(path, "/"), "/")
}
