package service

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/AnanduApillAi/kendo-forms/internal/schema"
)

// ExportService renders a form schema as portable JSON or as a ready-to-use
// Kendo React component.
type ExportService struct {
	jsxTemplate *template.Template
}

func NewExportService() *ExportService {
	return &ExportService{
		jsxTemplate: template.Must(template.New("jsx").Parse(jsxTemplateText)),
	}
}

// ToJSON renders the schema as indented JSON. Decoding the output yields a
// schema structurally equal to the input.
func (s *ExportService) ToJSON(form schema.Schema) (string, error) {
	data, err := json.MarshalIndent(form, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to export form as JSON: %w", err)
	}
	return string(data), nil
}

// Import decodes and normalizes externally-sourced schema JSON.
func (s *ExportService) Import(data []byte) (schema.Schema, error) {
	parsed, err := schema.ParseJSON(data)
	if err != nil {
		return nil, err
	}
	return schema.Normalize(parsed)
}

type jsxField struct {
	ID       string
	Label    string
	Required bool
	Attrs    []string
}

type jsxRow struct {
	Index  int
	Fields []jsxField
}

// ToCode renders the schema as a Kendo React form component. Types without a
// Kendo mapping are skipped rather than emitted broken.
func (s *ExportService) ToCode(form schema.Schema) (string, error) {
	rows := make([]jsxRow, 0, len(form))
	for i, row := range form {
		view := jsxRow{Index: i}
		for _, c := range row {
			attrs, ok := fieldAttrs(c)
			if !ok {
				continue
			}
			view.Fields = append(view.Fields, jsxField{
				ID:       c.ID,
				Label:    c.Label,
				Required: c.Required,
				Attrs:    attrs,
			})
		}
		if len(view.Fields) > 0 {
			rows = append(rows, view)
		}
	}

	var b strings.Builder
	if err := s.jsxTemplate.Execute(&b, rows); err != nil {
		return "", fmt.Errorf("failed to export form as code: %w", err)
	}
	return b.String(), nil
}

func fieldAttrs(c schema.Component) ([]string, bool) {
	switch c.Type {
	case schema.TypeTextField:
		return []string{"component={Input}", placeholderAttr(c)}, true
	case schema.TypeEmail:
		return []string{"component={Input}", `type="email"`, placeholderAttr(c)}, true
	case schema.TypeNumber:
		return []string{"component={Input}", `type="number"`, placeholderAttr(c)}, true
	case schema.TypeCheckbox:
		return []string{"component={Checkbox}"}, true
	case schema.TypeRadio:
		return []string{
			"component={RadioGroup}",
			fmt.Sprintf("data={%s}", mustJSON(optionsOrEmpty(c))),
			`layout="vertical"`,
		}, true
	case schema.TypeDropdown:
		values := make([]string, 0, len(c.Options))
		for _, o := range c.Options {
			values = append(values, o.Value)
		}
		return []string{
			"component={DropDownList}",
			fmt.Sprintf("data={%s}", mustJSON(values)),
		}, true
	case schema.TypeTextarea:
		return []string{"component={Input}", `type="textarea"`, placeholderAttr(c)}, true
	default:
		return nil, false
	}
}

func placeholderAttr(c schema.Component) string {
	return fmt.Sprintf("placeholder=%q", c.Placeholder)
}

func optionsOrEmpty(c schema.Component) []schema.Option {
	if c.Options == nil {
		return []schema.Option{}
	}
	return c.Options
}

func mustJSON(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(data)
}

const jsxTemplateText = `import React from 'react';
import { Form, Field, FormElement } from '@progress/kendo-react-form';
import { Input } from '@progress/kendo-react-inputs';
import { Checkbox, RadioGroup, RadioButton } from '@progress/kendo-react-inputs';
import { DropDownList } from '@progress/kendo-react-dropdowns';
import { Button } from '@progress/kendo-react-buttons';

const GeneratedForm = () => {
  const handleSubmit = (dataItem) => console.log('Form submitted:', dataItem);

  return (
    <Form
      onSubmit={handleSubmit}
      render={(formRenderProps) => (
        <FormElement style={{"{{"}} maxWidth: '650px' {{"}}"}}>
{{- range .}}
          <div key="{{.Index}}" className="flex gap-4">
{{- range .Fields}}
            <Field
              key="{{.ID}}"
              id="{{.ID}}"
              name="{{.ID}}"
              label="{{.Label}}"
              {{if .Required}}required={true}{{end}}
{{- range .Attrs}}
              {{.}}
{{- end}}
            />
{{- end}}
          </div>
{{- end}}
          <div className="k-form-buttons">
            <Button type="submit" themeColor="primary">Submit</Button>
          </div>
        </FormElement>
      )}
    />
  );
};

export default GeneratedForm;
`
