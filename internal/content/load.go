package content

import (
	"bytes"
	"os"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads a YAML content file and validates it. An empty path returns Default().
func Load(path string) (Content, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Content{}, &ParseError{Path: path, Err: err}
	}
	return Parse(path, data)
}

// Parse decodes YAML content. Unknown keys are rejected so typos do not silently drop
// a section.
func Parse(path string, data []byte) (Content, error) {
	var c Content
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return Content{}, &ParseError{Path: path, Line: extractLine(err), Err: err}
	}
	if err := Validate(&c); err != nil {
		return Content{}, err
	}
	return c, nil
}

func extractLine(err error) int {
	m := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(m) != 2 {
		return 0
	}
	line, _ := strconv.Atoi(m[1])
	return line
}

// Marshal encodes c as YAML, in the format Load reads.
func Marshal(c Content) ([]byte, error) {
	return yaml.Marshal(c)
}
