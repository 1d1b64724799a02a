package reader

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type YAMLConfigLoader struct {
	reader io.Reader
}

func NewYAMLConfigLoader(reader io.Reader) *YAMLConfigLoader {
	return &YAMLConfigLoader{
		reader: reader,
	}
}

func (cl *YAMLConfigLoader) Load(validate bool) (*DocumentMapping, error) {
	decoder := yaml.NewDecoder(cl.reader)
	decoder.KnownFields(true)
	var mapping DocumentMapping
	if err := decoder.Decode(&mapping); err != nil {
		return nil, err
	}
	if validate {
		if err := mapping.Validate(); err != nil {
			return nil, err
		}
	}
	return &mapping, nil
}

func LoadMappingFile(path string) (*DocumentMapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mapping: %w", err)
	}
	defer f.Close()
	return NewYAMLConfigLoader(f).Load(true)
}
