package generator

import (
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/huekit-cli/huekit/constant"
	"github.com/huekit-cli/huekit/filesystem"
	"github.com/huekit-cli/huekit/where"
	"github.com/samber/lo"
)

var scaffoldTemplate = lo.Must(template.New("generator").Parse(constant.GeneratorTemplate))

// Create scaffolds a new Lua palette generator script in the generators directory
// and returns its path. Fails if a script with the same name already exists.
func Create(name, author string) (string, error) {
	path := filepath.Join(where.Generators(), name+".lua")

	if exists := lo.Must(filesystem.API().Exists(path)); exists {
		return "", fmt.Errorf("generator %s already exists", name)
	}

	var b strings.Builder
	err := scaffoldTemplate.Execute(&b, struct {
		Name   string
		Author string
	}{Name: name, Author: author})
	if err != nil {
		return "", err
	}

	if err := filesystem.API().WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", err
	}

	return path, nil
}
