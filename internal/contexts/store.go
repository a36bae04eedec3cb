package contexts

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/tcfw/docloader/pkg/docloader"
)

// Manifest lists context documents shipped alongside the binary so
// well-known references never hit the network
type Manifest struct {
	Documents []ManifestDocument `yaml:"documents"`
}

type ManifestDocument struct {
	URL  string `yaml:"url"`
	Path string `yaml:"path"`
}

// Load reads a pinned-document manifest and the JSON documents it
// points to, keyed by the reference they stand in for. Relative paths
// are resolved against the manifest's directory
func Load(path string) (map[string]*docloader.Document, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading manifest")
	}

	m := &Manifest{}
	if err := yaml.Unmarshal(d, m); err != nil {
		return nil, errors.Wrap(err, "unmarshalling manifest")
	}

	dir := filepath.Dir(path)

	docs := make(map[string]*docloader.Document, len(m.Documents))

	for _, md := range m.Documents {
		p := md.Path
		if !filepath.IsAbs(p) {
			p = filepath.Join(dir, p)
		}

		raw, err := os.ReadFile(p)
		if err != nil {
			return nil, errors.Wrapf(err, "reading pinned document %s", md.URL)
		}

		var body interface{}
		if err := json.Unmarshal(raw, &body); err != nil {
			return nil, errors.Wrapf(err, "decoding pinned document %s", md.URL)
		}

		docs[md.URL] = &docloader.Document{
			ContentType: docloader.ContentTypeJSONLD,
			DocumentURL: md.URL,
			Document:    body,
		}
	}

	return docs, nil
}
