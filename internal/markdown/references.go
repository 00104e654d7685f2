// Package markdown scans cell sources for attachment references so stores can
// be pruned of entries no longer used by the cell text.
package markdown

import (
	"net/url"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/goliatone/go-cellpaste/internal/attachments"
)

// DefaultScheme is the URI scheme used by markdown links that point at
// embedded attachments rather than files, unless configuration overrides it.
const DefaultScheme = "attachment"

// References collects the attachment names referenced by image links whose
// destination uses the given URI scheme (DefaultScheme when empty). Names
// appear once each, in first-reference order; percent-encoded names are
// decoded so they match store keys.
func References(source []byte, scheme string) []string {
	prefix := schemePrefix(scheme)
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	seen := make(map[string]bool)
	var refs []string

	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		image, ok := node.(*ast.Image)
		if !ok {
			return ast.WalkContinue, nil
		}
		name, ok := attachmentName(string(image.Destination), prefix)
		if !ok || seen[name] {
			return ast.WalkContinue, nil
		}
		seen[name] = true
		refs = append(refs, name)
		return ast.WalkContinue, nil
	})

	return refs
}

// Prune returns a copy of the store keeping only attachments referenced by
// the source under the given scheme, plus the removed names in sorted order.
// The input store is never mutated.
func Prune(store attachments.Store, source []byte, scheme string) (attachments.Store, []string) {
	if len(store) == 0 {
		return attachments.Clone(store), nil
	}

	referenced := make(map[string]bool)
	for _, name := range References(source, scheme) {
		referenced[name] = true
	}

	kept := make(attachments.Store, len(store))
	var removed []string
	for name, record := range store {
		if referenced[name] {
			kept[name] = attachments.CloneRecord(record)
			continue
		}
		removed = append(removed, name)
	}
	sort.Strings(removed)
	return kept, removed
}

func schemePrefix(scheme string) string {
	scheme = strings.TrimSpace(scheme)
	if scheme == "" {
		scheme = DefaultScheme
	}
	return scheme + ":"
}

func attachmentName(destination, prefix string) (string, bool) {
	if !strings.HasPrefix(destination, prefix) {
		return "", false
	}
	name := destination[len(prefix):]
	if name == "" {
		return "", false
	}
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	return name, true
}
