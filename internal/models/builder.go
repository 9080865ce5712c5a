package models

import "github.com/google/uuid"

// AiBuilder is a user-owned website configuration record. Timestamps are
// civil Asia/Jakarta strings ("YYYY-MM-DD HH:mm:ss") set by the store.
type AiBuilder struct {
	ID        int64     `json:"ai_builder_id"`
	SiteTitle string    `json:"site_title"`
	BrandID   int64     `json:"brand_id"`
	FontID    int64     `json:"font_id"`
	ColorID   int64     `json:"color_id"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

// AiBuilderDetail is a builder row with its brand/font/color (and, for
// the public listing, owning user) expanded by foreign key.
type AiBuilderDetail struct {
	AiBuilder
	Brand *Brand `json:"brand,omitempty"`
	Font  *Font  `json:"font,omitempty"`
	Color *Color `json:"color,omitempty"`
	User  *User  `json:"user,omitempty"`
}

// AiBuilderSupport is an auxiliary relation attached to a builder,
// removed together with it on delete.
type AiBuilderSupport struct {
	ID          int64  `json:"ai_builder_support_id"`
	AiBuilderID int64  `json:"ai_builder_id"`
	SupportType string `json:"support_type"`
	CreatedAt   string `json:"created_at"`
}
