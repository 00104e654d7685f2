package paste

import (
	"strings"

	"github.com/goliatone/go-cellpaste/internal/markdown"
	"github.com/goliatone/go-cellpaste/pkg/interfaces"
)

// Setting keys the service reads through the host's per-document settings
// source. Both default to false when no settings source is wired.
const (
	SettingPasteImages = "cellpaste.pasteImages.enabled"
	SettingDropImages  = "cellpaste.dropImages.enabled"
)

// DefaultMimeType is the transfer payload type handled when no override is
// configured.
const DefaultMimeType = "image/png"

// EmbedRequest describes a single paste or drop event: the document whose
// editor received it and the transfer payload the host captured.
type EmbedRequest struct {
	Document interfaces.DocumentID
	Transfer interfaces.DataTransfer
}

// EmbedResult is the complete outcome of an embed operation. Metadata is the
// full replacement metadata map for the resolved cell (enlarged attachments
// included) and Snippet is the markdown reference to insert at the edit
// location. Callers should apply both as one atomic edit.
type EmbedResult struct {
	Cell     *interfaces.Cell
	Name     string
	Metadata map[string]any
	Snippet  string
}

// BuildSnippet renders the inline markdown reference for a chosen attachment
// name under the given URI scheme (markdown.DefaultScheme when empty). The
// alt text is emitted as a tab-stop placeholder holding the suggested
// filename so the user can retype it right after the edit lands.
func BuildSnippet(filename, name, scheme string) string {
	scheme = strings.TrimSpace(scheme)
	if scheme == "" {
		scheme = markdown.DefaultScheme
	}
	return "![${1:" + escapePlaceholder(filename) + "}](" + scheme + ":" + name + ")"
}

// escapePlaceholder guards the snippet metacharacters inside placeholder text.
func escapePlaceholder(text string) string {
	var out strings.Builder
	out.Grow(len(text))
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '$', '}', '\\':
			out.WriteByte('\\')
		}
		out.WriteByte(text[i])
	}
	return out.String()
}

// SplitFilename separates a suggested filename into base name and extension
// at the last dot. ok is false when the filename carries no extension, which
// aborts the operation.
func SplitFilename(filename string) (base, ext string, ok bool) {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return "", "", false
	}
	return filename[:idx], filename[idx:], true
}
