package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/josephgoksu/Questifier/internal/llm"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const configHeader = "# Questifier Global Configuration"

// Writer updates a YAML config file in place, keeping unrelated keys and comments.
type Writer struct {
	fs   afero.Fs
	path string
}

// NewWriter returns a writer for path on fs.
func NewWriter(fs afero.Fs, path string) *Writer {
	return &Writer{fs: fs, path: path}
}

// NewGlobalWriter returns a writer for ~/.questifier/config.yaml.
func NewGlobalWriter() (*Writer, error) {
	path, err := GetGlobalConfigFile()
	if err != nil {
		return nil, err
	}
	return NewWriter(afero.NewOsFs(), path), nil
}

// Path returns the file the writer edits.
func (w *Writer) Path() string { return w.path }

// SaveAPIKey stores key under llm.apiKeys.<provider> without changing the
// default provider or model.
func (w *Writer) SaveAPIKey(provider, key string) error {
	if provider == "" {
		return fmt.Errorf("provider cannot be empty")
	}
	if key == "" {
		return fmt.Errorf("API key cannot be empty")
	}
	return w.update(func(root *yaml.Node) {
		setYAMLPath(root, []string{"llm", "apiKeys", provider}, key)
	})
}

// SetProvider makes provider the default, with model or the provider's default model.
func (w *Writer) SetProvider(provider, model string) error {
	if _, err := llm.ValidateProvider(provider); err != nil {
		return err
	}
	if model == "" {
		model = llm.DefaultModelForProvider(provider)
	}
	return w.update(func(root *yaml.Node) {
		setYAMLPath(root, []string{"llm", "provider"}, provider)
		setYAMLPath(root, []string{"llm", "model"}, model)
	})
}

func (w *Writer) update(edit func(root *yaml.Node)) error {
	doc, err := w.read()
	if err != nil {
		return err
	}
	edit(doc.Content[0])

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := w.fs.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return err
	}
	return afero.WriteFile(w.fs, w.path, buf.Bytes(), 0600)
}

// read parses the config file, or returns a fresh document if it does not exist.
func (w *Writer) read() (*yaml.Node, error) {
	data, err := afero.ReadFile(w.fs, w.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	doc := &yaml.Node{}
	if len(bytes.TrimSpace(data)) > 0 {
		if err := yaml.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("parse %s: %w", w.path, err)
		}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		doc = &yaml.Node{
			Kind:        yaml.DocumentNode,
			HeadComment: configHeader,
			Content:     []*yaml.Node{{Kind: yaml.MappingNode}},
		}
	}
	if doc.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parse %s: top level is not a mapping", w.path)
	}
	return doc, nil
}

// setYAMLPath sets a string scalar at path, creating or replacing mappings on the way.
func setYAMLPath(node *yaml.Node, path []string, value string) {
	for i, key := range path {
		last := i == len(path)-1
		child := mappingValue(node, key)
		if child == nil {
			child = &yaml.Node{Kind: yaml.MappingNode}
			if last {
				child = &yaml.Node{}
			}
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
				child)
		}
		if last {
			child.Kind = yaml.ScalarNode
			child.Tag = "!!str"
			child.Value = value
			child.Content = nil
			child.Style = 0
			return
		}
		if child.Kind != yaml.MappingNode {
			child.Kind = yaml.MappingNode
			child.Tag = ""
			child.Value = ""
			child.Content = nil
		}
		node = child
	}
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}
