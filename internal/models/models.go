package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/AnanduApillAi/kendo-forms/internal/schema"
)

// FormCollection is a named, persisted form saved from the builder.
type FormCollection struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	FormState   FormState `gorm:"type:jsonb" json:"formState"`
}

// FormState stores a form schema as a jsonb column.
type FormState schema.Schema

func (fs *FormState) Scan(value interface{}) error {
	if value == nil {
		*fs = FormState{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan FormState")
	}

	return json.Unmarshal(bytes, fs)
}

func (fs FormState) Value() (driver.Value, error) {
	if len(fs) == 0 {
		return nil, nil
	}
	return json.Marshal(fs)
}

// Schema returns the stored state as a builder schema.
func (fs FormState) Schema() schema.Schema {
	return schema.Schema(fs)
}

type SaveCollectionRequest struct {
	Name        string   `json:"name" binding:"required,no_html"`
	Description string   `json:"description" binding:"omitempty,no_html"`
	FormState   []rawRow `json:"formState" binding:"required"`
}

type UpdateCollectionRequest struct {
	Name        *string   `json:"name" binding:"omitempty,no_html"`
	Description *string   `json:"description" binding:"omitempty,no_html"`
	FormState   *[]rawRow `json:"formState"`
}

// rawRow defers schema decoding so the ingestion boundary in the schema
// package can validate and normalize it.
type rawRow = []schema.Component

type AddComponentRequest struct {
	Type string `json:"type" binding:"required"`
}

type InsertRowRequest struct {
	Type     string `json:"type" binding:"required"`
	RowIndex int    `json:"rowIndex"`
}

type InsertInlineRequest struct {
	Type     string `json:"type" binding:"required"`
	RowIndex int    `json:"rowIndex"`
}

type MoveRowRequest struct {
	SourceIndex int `json:"sourceIndex"`
	DestIndex   int `json:"destIndex"`
}

type ReorderRowRequest struct {
	RowIndex    int `json:"rowIndex"`
	SourceIndex int `json:"sourceIndex"`
	DestIndex   int `json:"destIndex"`
}

type UpdateComponentRequest struct {
	Label       *string          `json:"label"`
	Name        *string          `json:"name" binding:"omitempty,field_name"`
	ClassName   *string          `json:"className"`
	Placeholder *string          `json:"placeholder"`
	Required    *bool            `json:"required"`
	Options     *[]schema.Option `json:"options"`
	Height      *string          `json:"height"`
	ShowLabel   *bool            `json:"showLabel"`
}

// Patch converts the request into a schema patch.
func (r UpdateComponentRequest) Patch() schema.Patch {
	return schema.Patch{
		Label:       r.Label,
		Name:        r.Name,
		ClassName:   r.ClassName,
		Placeholder: r.Placeholder,
		Required:    r.Required,
		Options:     r.Options,
		Height:      r.Height,
		ShowLabel:   r.ShowLabel,
	}
}

type SelectComponentRequest struct {
	ComponentID string `json:"componentId"`
}

type ReplaceSchemaRequest struct {
	FormState []rawRow `json:"formState" binding:"required"`
}

type DraftOptionRequest struct {
	Label string `json:"label" binding:"required"`
	Value string `json:"value" binding:"required"`
}

type UpdateDraftOptionRequest struct {
	Index int    `json:"index"`
	Label string `json:"label" binding:"required"`
	Value string `json:"value" binding:"required"`
}

type RemoveDraftOptionRequest struct {
	Index int `json:"index"`
}

type AssistantRequest struct {
	Prompt string `json:"prompt" binding:"required"`
	Mode   string `json:"mode" binding:"required,oneof=create update"`
}

type RestoreRequest struct {
	EntryID string `json:"entryId" binding:"required"`
}
