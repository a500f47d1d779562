package constants

import "github.com/AnanduApillAi/kendo-forms/internal/schema"

// SampleSchema returns the canned starter form handed out to new builder
// sessions that ask for one.
func SampleSchema() schema.Schema {
	return schema.Schema{
		{
			{
				ID:            "b450eb41-c72e-4003-b4f8-3e36559868a8",
				Type:          schema.TypeTextField,
				ComponentName: "Text Field",
				Label:         "Text Field",
				Name:          "textField",
				ClassName:     DefaultTextClassName,
				Placeholder:   "Enter text...",
				Width:         "50%",
			},
			{
				ID:            "d25969f4-f143-43f0-8d1a-b9759c5b9567",
				Type:          schema.TypeNumber,
				ComponentName: "Number Field",
				Label:         "Number",
				Name:          "number",
				ClassName:     DefaultTextClassName,
				Placeholder:   "Enter number...",
				Width:         "50%",
			},
		},
		{
			{
				ID:            "8cd5211c-a6d3-4622-a16f-a03a931ffe59",
				Type:          schema.TypeEmail,
				ComponentName: "Email Field",
				Label:         "Email",
				Name:          "email",
				ClassName:     DefaultTextClassName,
				Placeholder:   "Enter email...",
				Width:         "100%",
			},
		},
	}
}
