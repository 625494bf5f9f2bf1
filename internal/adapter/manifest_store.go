package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"

	m "reqtrace.dev/pkg/reqtrace/internal/model"
)

// ErrInvalidManifest is returned for manifests that decode but describe
// relations the index cannot represent.
var ErrInvalidManifest = errors.New("invalid requirement manifest")

// ManifestStore loads requirement nodes from a requirement manifest.
type ManifestStore interface {
	LoadRequirements(ctx context.Context, path m.Path) ([]*m.Requirement, error)
}

// YAMLManifestStore reads YAML manifests through a SourceFSAdapter.
type YAMLManifestStore struct {
	fs SourceFSAdapter
}

// NewYAMLManifestStore constructs a YAMLManifestStore.
func NewYAMLManifestStore(fs SourceFSAdapter) *YAMLManifestStore {
	return &YAMLManifestStore{fs: fs}
}

type manifestDocument struct {
	Requirements []manifestRequirement `yaml:"requirements"`
}

type manifestRequirement struct {
	UID       string             `yaml:"uid"`
	Title     string             `yaml:"title,omitempty"`
	Relations []manifestRelation `yaml:"relations,omitempty"`
}

type manifestRelation struct {
	File     string `yaml:"file,omitempty"`
	Function string `yaml:"function,omitempty"`
	Class    string `yaml:"class,omitempty"`
	Range    []int  `yaml:"range,omitempty,flow"`
	Parent   string `yaml:"parent,omitempty"`
	Child    string `yaml:"child,omitempty"`
}

// LoadRequirements reads and decodes the manifest at path.
func (s *YAMLManifestStore) LoadRequirements(ctx context.Context, path m.Path) ([]*m.Requirement, error) {
	content, err := s.fs.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}

	reqs, err := DecodeManifest(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("decode manifest %s: %w", path, err)
	}

	slog.Debug("loaded requirement manifest", "path", path, "requirements", len(reqs))

	return reqs, nil
}

// DecodeManifest decodes a YAML manifest. Unknown keys are rejected.
func DecodeManifest(r io.Reader) ([]*m.Requirement, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var doc manifestDocument
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, err
	}

	reqs := make([]*m.Requirement, 0, len(doc.Requirements))

	for i, raw := range doc.Requirements {
		req, err := raw.toModel()
		if err != nil {
			return nil, fmt.Errorf("requirement #%d (%s): %w", i+1, raw.UID, err)
		}

		reqs = append(reqs, req)
	}

	return reqs, nil
}

// EncodeManifest writes requirements back in manifest form.
func EncodeManifest(w io.Writer, reqs []*m.Requirement) error {
	doc := manifestDocument{Requirements: make([]manifestRequirement, 0, len(reqs))}

	for _, req := range reqs {
		raw := manifestRequirement{UID: req.UID, Title: req.Title}

		for _, relation := range req.Relations {
			raw.Relations = append(raw.Relations, relationFromModel(relation))
		}

		doc.Requirements = append(doc.Requirements, raw)
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(doc); err != nil {
		return err
	}

	return encoder.Close()
}

func (raw manifestRequirement) toModel() (*m.Requirement, error) {
	if raw.UID == "" {
		return nil, fmt.Errorf("%w: missing uid", ErrInvalidManifest)
	}

	req := &m.Requirement{UID: raw.UID, Title: raw.Title}

	for j, rel := range raw.Relations {
		relation, err := rel.toModel()
		if err != nil {
			return nil, fmt.Errorf("relation #%d: %w", j+1, err)
		}

		req.Relations = append(req.Relations, relation)
	}

	return req, nil
}

func (rel manifestRelation) toModel() (m.Relation, error) {
	switch {
	case rel.File != "":
		return rel.fileRelation()
	case rel.Parent != "" && rel.Child == "":
		return m.Relation{Type: "Parent", Target: rel.Parent}, nil
	case rel.Child != "" && rel.Parent == "":
		return m.Relation{Type: "Child", Target: rel.Child}, nil
	}

	return m.Relation{}, fmt.Errorf("%w: relation needs exactly one of file, parent or child", ErrInvalidManifest)
}

func (rel manifestRelation) fileRelation() (m.Relation, error) {
	if rel.Parent != "" || rel.Child != "" {
		return m.Relation{}, fmt.Errorf("%w: file relation cannot also name parent or child", ErrInvalidManifest)
	}

	bindings := 0
	ref := &m.FileReference{Path: m.NormalizePath(rel.File)}

	if rel.Function != "" {
		ref.Function = rel.Function
		bindings++
	}

	if rel.Class != "" {
		ref.Class = rel.Class
		bindings++
	}

	if rel.Range != nil {
		if len(rel.Range) != 2 {
			return m.Relation{}, fmt.Errorf("%w: range must be [start, end]", ErrInvalidManifest)
		}

		ref.Range = &m.LineRange{Start: rel.Range[0], End: rel.Range[1]}
		bindings++
	}

	if bindings > 1 {
		return m.Relation{}, fmt.Errorf("%w: file relation %s binds more than one of function, class and range",
			ErrInvalidManifest, rel.File)
	}

	return m.Relation{Type: "File", File: ref}, nil
}

func relationFromModel(relation m.Relation) manifestRelation {
	if relation.File == nil {
		if relation.Type == "Child" {
			return manifestRelation{Child: relation.Target}
		}

		return manifestRelation{Parent: relation.Target}
	}

	raw := manifestRelation{
		File:     string(relation.File.Path),
		Function: relation.File.Function,
		Class:    relation.File.Class,
	}

	if relation.File.Range != nil {
		raw.Range = []int{relation.File.Range.Start, relation.File.Range.End}
	}

	return raw
}
