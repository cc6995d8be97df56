package xmlutil

import "github.com/antchfx/xmlquery"

// Attr returns the value of the named attribute of n, along with whether
// the attribute was present.
//
// With no spaces given, only attributes without a namespace match. Any
// number of acceptable spaces may be passed; an attribute matches when
// its space equals any of them. Because the XML decoder resolves
// attribute prefixes to namespace URIs when the declaration is in scope
// and leaves the raw prefix otherwise, callers should pass both forms,
// e.g. Attr(n, "version", "urn:xmpp:xbosh", "xmpp").
func Attr(n *xmlquery.Node, local string, spaces ...string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Name.Local != local {
			continue
		}
		if len(spaces) == 0 {
			if a.Name.Space == "" {
				return a.Value, true
			}
			continue
		}
		for _, space := range spaces {
			if a.Name.Space == space {
				return a.Value, true
			}
		}
	}
	return "", false
}

// AttrOr returns the value of the unprefixed attribute local of n, or
// fallback if the attribute is absent.
func AttrOr(n *xmlquery.Node, local, fallback string) string {
	if v, ok := Attr(n, local); ok {
		return v
	}
	return fallback
}
