// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// docsgen writes one markdown page per textdiff subcommand, built from the
// live command tree.
//
//	go run ./tools/docsgen <outdir> [examples.yaml]
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/tfctl/textdiff/internal/command"
)

// Examples maps a subcommand name to its examples.
type Examples map[string][]Example

type Example struct {
	Command     string `yaml:"command"`
	Description string `yaml:"description"`
}

type Flag struct {
	Syntax      string
	Description string
	Default     string
}

type TemplateData struct {
	Name        string
	Usage       string
	UsageText   string
	Description string
	Flags       []Flag
	Examples    []Example
	Date        string
	Version     string
}

const page = `# textdiff {{.Name}}

{{.Usage}}

` + "```" + `
{{.UsageText}}
` + "```" + `
{{if .Description}}
{{.Description}}
{{end}}{{if .Flags}}
## Flags

| flag | description | default |
|------|-------------|---------|
{{range .Flags}}| ` + "`{{.Syntax}}`" + ` | {{.Description}} | {{.Default}} |
{{end}}{{end}}{{if .Examples}}
## Examples
{{range .Examples}}
{{.Description}}

` + "```" + `
{{.Command}}
` + "```" + `
{{end}}{{end}}
_Generated {{.Date}} for textdiff {{.Version}}._
`

// defaulter is satisfied by flags that can report their default value.
type defaulter interface {
	GetDefaultText() string
}

type usager interface {
	GetUsage() string
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: docsgen <outdir> [examples.yaml]")
		os.Exit(2)
	}
	out := os.Args[1]

	examples := Examples{}
	if len(os.Args) > 2 {
		data, err := os.ReadFile(os.Args[2])
		if err != nil {
			panic(err)
		}
		if err := yaml.Unmarshal(data, &examples); err != nil {
			panic(err)
		}
	}

	app, err := command.InitApp(context.Background(), []string{"textdiff"})
	if err != nil {
		panic(err)
	}

	tmpl := template.Must(template.New("page").Parse(page))
	if err := os.MkdirAll(out, 0755); err != nil {
		panic(err)
	}

	date := time.Now().Format("January 2, 2006")
	version := getVersion()

	for _, cmd := range app.Commands {
		data := TemplateData{
			Name:        cmd.Name,
			Usage:       cmd.Usage,
			UsageText:   cmd.UsageText,
			Description: cmd.Description,
			Flags:       flags(cmd),
			Examples:    examples[cmd.Name],
			Date:        date,
			Version:     version,
		}

		path := filepath.Join(out, "textdiff-"+cmd.Name+".md")
		fmt.Println("Generating", path)
		file, err := os.Create(path)
		if err != nil {
			panic(err)
		}
		if err := tmpl.Execute(file, data); err != nil {
			panic(err)
		}
		file.Close()
	}
}

// flags describes the visible flags of cmd.
func flags(cmd *cli.Command) []Flag {
	var result []Flag
	for _, f := range cmd.VisibleFlags() {
		var names []string
		for _, n := range f.Names() {
			if len(n) == 1 {
				names = append(names, "-"+n)
			} else {
				names = append(names, "--"+n)
			}
		}

		flag := Flag{Syntax: strings.Join(names, ", ")}
		if u, ok := f.(usager); ok {
			flag.Description = u.GetUsage()
		}
		if d, ok := f.(defaulter); ok {
			flag.Default = d.GetDefaultText()
		}
		result = append(result, flag)
	}
	return result
}

// getVersion returns the version string from git tags, stripping the leading
// "v" prefix. Falls back to "dev" if git describe fails.
func getVersion() string {
	out, err := exec.Command("git", "describe", "--tags", "--abbrev=0").Output()
	if err != nil {
		return "dev"
	}

	version := strings.TrimSpace(string(out))
	return strings.TrimPrefix(version, "v")
}
