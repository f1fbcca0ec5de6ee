// Copyright (c) 2026, The Scopos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resolve finds the scene node that a loose textual identifier,
// such as an equipment model code, refers to.
package resolve

//go:generate core generate

import (
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/scopos/scopos3d/metrics"
	"github.com/scopos/scopos3d/xyz"
)

// DefaultTTL is the default lifetime of a memoized lookup.
const DefaultTTL = 60 * time.Second

// Rules are the lookup rules of a [Resolver], in precedence order.
type Rules int32 //enums:enum -transform lower

const (
	// Exact is a case-insensitive exact name match.
	Exact Rules = iota

	// Substring is a case-insensitive substring match in either direction.
	Substring

	// Numeric is a match on a digit run of the key.
	Numeric

	// Miss is no match.
	Miss
)

var digitRuns = regexp.MustCompile(`[0-9]+`)

// Resolver resolves search keys against the nodes of one scene, memoizing
// both hits and misses for [Resolver.TTL]. It must be used on the frame.
type Resolver struct {

	// Scene is the scene searched.
	Scene *xyz.Scene

	// TTL is the lifetime of a memoized lookup.
	TTL time.Duration

	// Now returns the current time; it defaults to [time.Now].
	Now func() time.Time

	// Logger is used for resolution misses.
	Logger *slog.Logger

	cache map[string]entry
}

type entry struct {
	node    *xyz.Node
	rule    Rules
	expires time.Time
}

// New returns a new resolver for the given scene.
func New(sc *xyz.Scene) *Resolver {
	rs := &Resolver{Scene: sc}
	rs.Defaults()
	return rs
}

func (rs *Resolver) Defaults() {
	rs.TTL = DefaultTTL
	rs.Now = time.Now
	rs.Logger = slog.Default()
}

// SetScene sets the scene searched and drops the cache.
func (rs *Resolver) SetScene(sc *xyz.Scene) {
	rs.Scene = sc
	rs.Reset()
}

// Reset drops all memoized lookups.
func (rs *Resolver) Reset() {
	rs.cache = nil
}

// CacheLen returns the number of memoized lookups, including expired
// ones not yet evicted.
func (rs *Resolver) CacheLen() int {
	return len(rs.cache)
}

// Resolve returns the node the key refers to, or nil. See [Resolver.Lookup].
func (rs *Resolver) Resolve(key string) *xyz.Node {
	n, _ := rs.Lookup(key)
	return n
}

// Lookup returns the node the key refers to and the rule that found it.
// The first matching rule wins, and within a rule the first node in
// depth-first pre-order:
//   - [Exact]: the name equals the key, ignoring case.
//   - [Substring]: the name contains the key, or the key contains the name,
//     ignoring case. Unnamed nodes never match.
//   - [Numeric]: for each digit run of the key in order, the first node
//     whose name contains it.
//
// An empty key or a scene without root is a [Miss].
func (rs *Resolver) Lookup(key string) (*xyz.Node, Rules) {
	if key == "" || rs.Scene == nil || rs.Scene.Root == nil {
		return nil, Miss
	}
	now := rs.Now()
	if e, ok := rs.cache[key]; ok {
		if now.Before(e.expires) {
			metrics.ResolveCacheHits.Inc()
			return e.node, e.rule
		}
		delete(rs.cache, key)
	}
	n, rule := rs.search(key)
	metrics.ResolveLookups.WithLabelValues(rule.String()).Inc()
	if n == nil {
		rs.Logger.Debug("resolve: no object found", "key", key)
	}
	if rs.cache == nil {
		rs.cache = make(map[string]entry)
	}
	rs.cache[key] = entry{node: n, rule: rule, expires: now.Add(rs.TTL)}
	return n, rule
}

// Ambiguous returns true if more than one node matches key under the
// rule that wins for it. The cache is not consulted.
func (rs *Resolver) Ambiguous(key string) bool {
	if key == "" || rs.Scene == nil || rs.Scene.Root == nil {
		return false
	}
	_, rule := rs.search(key)
	if rule == Miss {
		return false
	}
	lower := strings.ToLower(key)
	if rule != Numeric {
		return rs.count(func(n *xyz.Node) bool {
			return n.Name != "" && matches(rule, strings.ToLower(n.Name), lower)
		}, 2) > 1
	}
	for _, num := range digitRuns.FindAllString(key, -1) {
		if c := rs.count(func(n *xyz.Node) bool { return strings.Contains(n.Name, num) }, 2); c > 0 {
			return c > 1
		}
	}
	return false
}

func matches(rule Rules, name, key string) bool {
	if rule == Exact {
		return name == key
	}
	return strings.Contains(name, key) || strings.Contains(key, name)
}

func (rs *Resolver) search(key string) (*xyz.Node, Rules) {
	lower := strings.ToLower(key)
	for _, rule := range []Rules{Exact, Substring} {
		if n := rs.first(func(n *xyz.Node) bool {
			return n.Name != "" && matches(rule, strings.ToLower(n.Name), lower)
		}); n != nil {
			return n, rule
		}
	}
	for _, num := range digitRuns.FindAllString(key, -1) {
		if n := rs.first(func(n *xyz.Node) bool { return strings.Contains(n.Name, num) }); n != nil {
			return n, Numeric
		}
	}
	return nil, Miss
}

// first returns the first node in pre-order for which match is true.
func (rs *Resolver) first(match func(n *xyz.Node) bool) *xyz.Node {
	var found *xyz.Node
	rs.Scene.WalkDown(func(n *xyz.Node) bool {
		if found != nil {
			return xyz.Break
		}
		if match(n) {
			found = n
			return xyz.Break
		}
		return xyz.Continue
	})
	return found
}

// count returns the number of nodes for which match is true, up to limit.
func (rs *Resolver) count(match func(n *xyz.Node) bool, limit int) int {
	count := 0
	rs.Scene.WalkDown(func(n *xyz.Node) bool {
		if count >= limit {
			return xyz.Break
		}
		if match(n) {
			count++
		}
		return xyz.Continue
	})
	return count
}
