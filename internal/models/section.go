package models

import (
	"time"

	"github.com/google/uuid"
)

// AiBuilderSection places a section on a page of a builder site with a
// concrete style design. Deleted whenever the owning builder is deleted.
type AiBuilderSection struct {
	ID          int64      `json:"id"`
	StyleDesign string     `json:"style_design"`
	SectionID   int64      `json:"section_id"`
	PageID      int64      `json:"page_id"`
	AiBuilderID int64      `json:"ai_builder_id"`
	SupportID   *int64     `json:"ai_builder_support_id"`
	UserID      *uuid.UUID `json:"user_id,omitempty"`
	CreatedAt   string     `json:"created_at"`
	UpdatedAt   string     `json:"updated_at"`
}

// AiBuilderSectionDetail expands the section/page/user/support relations.
type AiBuilderSectionDetail struct {
	AiBuilderSection
	Section *Section          `json:"sections,omitempty"`
	Page    *Page             `json:"pages,omitempty"`
	User    *User             `json:"users,omitempty"`
	Support *AiBuilderSupport `json:"ai_builder_supports,omitempty"`
}

// AiBuilderStyle is an appearance record attached to a builder.
type AiBuilderStyle struct {
	ID          int64  `json:"id"`
	AiBuilderID int64  `json:"ai_builder_id"`
	StyleDesign string `json:"style_design"`
	SectionID   int64  `json:"section_id"`
	PageID      int64  `json:"page_id"`
	SupportID   *int64 `json:"support_id"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// AiBuilderStyleDetail expands the section/page relations.
type AiBuilderStyleDetail struct {
	AiBuilderStyle
	Section *Section `json:"sections,omitempty"`
	Page    *Page    `json:"pages,omitempty"`
}

// SectionTemplate is an admin-managed reusable section definition,
// independent of any builder.
type SectionTemplate struct {
	SectionID  int64     `json:"section_id"`
	Name       string    `json:"name"`
	IsDevelope bool      `json:"is_develope"`
	CreatedAt  time.Time `json:"created_at"`
}
