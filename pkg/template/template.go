// Package template renders new solution files.
package template

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/kpscli/kps/pkg/problem"
)

// DateLayout is how the creation date appears in the file header.
const DateLayout = "2006/1/2"

const swiftSource = `//
// {{.FileName}}
// {{.ProjectName}}
//
// Created by {{.Author}} on {{.Date}}.
// {{.URL}}
//

import Foundation

func {{.FunctionName}}() {
    // Your solution here
}
`

var swift = template.Must(template.New("swift").Parse(swiftSource))

// Data holds the values substituted into the template.
type Data struct {
	FileName     string
	ProjectName  string
	Author       string
	Date         string
	URL          string
	FunctionName string
}

// NewData fills Data for p.
func NewData(p problem.Problem, projectName, author string, now time.Time) Data {
	return Data{
		FileName:     p.FileName(),
		ProjectName:  projectName,
		Author:       author,
		Date:         now.Format(DateLayout),
		URL:          p.URL(),
		FunctionName: p.FunctionName(),
	}
}

// Render executes the Swift template.
func Render(d Data) (string, error) {
	var b strings.Builder
	if err := swift.Execute(&b, d); err != nil {
		return "", fmt.Errorf("rendering template: %w", err)
	}
	return b.String(), nil
}
