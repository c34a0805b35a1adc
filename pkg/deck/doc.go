// Package deck implements a declarative builder for ordered, optionally
// nested collections of content items: visualization specs, static content
// blocks, and pagination markers that downstream renderers turn into
// documents.
//
// # Overview
//
// A [Collection] is assembled by appending [ItemSpec] values with [Collection.Add],
// expanding parameter vectors with [Collection.AddMany], and merging whole
// collections with [Combine]. Items carry an insertion index that records
// append order, and an optional tabgroup path that places them in a nested
// tab hierarchy (see the tabpath and tree subpackages).
//
// # Basic Usage
//
// Create a collection with [New], optionally seeding defaults that apply to
// every future append, then add items:
//
//	c := deck.New(deck.WithDefaults(deck.Params{{Name: "type", Value: "bar"}}))
//	c, err := c.Add(deck.KindBar,
//	    deck.WithTitle("Price by cut"),
//	    deck.WithTabgroup("demo/price"),
//	    deck.WithParams(deck.Params{{Name: "x", Value: "cut"}}),
//	)
//
// Parameters resolve through three precedence layers, highest last:
// collection defaults, variadic bags ([WithParams]), and explicit options.
// Presence decides, not truthiness: an explicitly supplied zero value still
// overrides a default.
//
// # Value Semantics
//
// Collection is a value type. Builder operations return the updated value
// and never mutate the receiver's observable state, so there is no way to
// watch a collection mid-update and nothing to synchronize. On failure every
// operation returns the receiver unchanged together with a structured error
// from the errors package.
package deck
