// Package assets provides the HTML templates embedded into the binary.
package assets

import (
	"embed"
	"errors"
	"fmt"
)

//go:embed templates
var templatesFS embed.FS

// ErrTemplateNotFound indicates the named template does not exist.
var ErrTemplateNotFound = errors.New("template not found")

// LoadTemplate returns the raw contents of a named HTML template.
func LoadTemplate(name string) (string, error) {
	data, err := templatesFS.ReadFile("templates/" + name + ".html")
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	return string(data), nil
}
