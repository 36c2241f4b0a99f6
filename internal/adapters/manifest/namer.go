package manifest

import (
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"go.trai.ch/prep/internal/core/domain"
	"go.trai.ch/prep/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ImageNamer = (*Namer)(nil)

// Namer renders image references from a text/template with sprig functions.
// The template sees .Owner, .Repo, .PR and .InstanceID.
type Namer struct {
	tmpl *template.Template
}

// NewNamer parses the image name template.
func NewNamer(text string) (*Namer, error) {
	tmpl, err := template.New("image").Funcs(sprig.TxtFuncMap()).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrImageNameRenderFailed.Error()), "template", text)
	}
	return &Namer{tmpl: tmpl}, nil
}

// ImageName renders the reference for an instance.
func (n *Namer) ImageName(id domain.InstanceID) (string, error) {
	data := map[string]string{
		"Owner":      id.Owner,
		"Repo":       id.Repo,
		"PR":         id.PR,
		"InstanceID": id.Raw,
	}
	var b strings.Builder
	if err := n.tmpl.Execute(&b, data); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrImageNameRenderFailed.Error()), "instance_id", id.Raw)
	}
	name := strings.TrimSpace(b.String())
	if name == "" {
		return "", zerr.With(domain.ErrImageNameRenderFailed, "instance_id", id.Raw)
	}
	return name, nil
}
