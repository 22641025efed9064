// Package services implements domain logic that needs no I/O.
package services

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ochairo/clangfetch/internal/domain/entities"
)

// BuildScriptURL substitutes the revision into the source template.
// An absent or empty revision resolves to source.DefaultRevision. The
// revision is inserted verbatim, without escaping or validation.
func BuildScriptURL(source entities.ScriptSource, rev entities.Revision) string {
	revision := rev.Value()
	if rev.IsEmpty() {
		revision = source.DefaultRevision
	}
	return strings.Replace(source.URLTemplate, entities.RevisionPlaceholder, revision, 1)
}

// ValidateScriptSource checks a source loaded from configuration
func ValidateScriptSource(source entities.ScriptSource) error {
	if err := ValidateTemplate(source.URLTemplate); err != nil {
		return err
	}
	if source.DefaultRevision == "" {
		return fmt.Errorf("default revision must not be empty")
	}
	return nil
}

// ValidateTemplate requires an absolute http(s) URL with exactly one placeholder
func ValidateTemplate(template string) error {
	if n := strings.Count(template, entities.RevisionPlaceholder); n != 1 {
		return fmt.Errorf("url template must contain %s exactly once, found %d", entities.RevisionPlaceholder, n)
	}

	// Parse with a representative revision so the placeholder braces don't trip the parser
	u, err := url.Parse(strings.Replace(template, entities.RevisionPlaceholder, entities.DefaultRevision, 1))
	if err != nil {
		return fmt.Errorf("invalid url template: %w", err)
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return fmt.Errorf("url template must use http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("url template has no host")
	}
	return nil
}
