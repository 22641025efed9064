package entities

// RevisionPlaceholder marks the single substitution point in a URL template
const RevisionPlaceholder = "{revision}"

// Built-in location of the clang update script
const (
	DefaultURLTemplate = "https://raw.githubusercontent.com/chromium/chromium/" + RevisionPlaceholder + "/tools/clang/scripts/update.py"
	DefaultRevision    = "main"
)

// ScriptSource describes where the update script is fetched from
type ScriptSource struct {
	URLTemplate     string // must contain RevisionPlaceholder exactly once
	DefaultRevision string // used when no revision (or an empty one) is given
}

// DefaultScriptSource returns the upstream Chromium location
func DefaultScriptSource() ScriptSource {
	return ScriptSource{
		URLTemplate:     DefaultURLTemplate,
		DefaultRevision: DefaultRevision,
	}
}

// DownloadRequest is the input of a single download invocation
type DownloadRequest struct {
	OutputPath string
	Revision   Revision
}
