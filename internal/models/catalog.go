package models

import "time"

// Brand is a reusable brand kit (name plus optional logo) a builder
// site is styled with.
type Brand struct {
	ID        int64     `json:"brand_id"`
	Name      string    `json:"name"`
	LogoURL   *string   `json:"logo_url"`
	CreatedAt time.Time `json:"created_at"`
}

// Font is a typeface choice offered by the builder.
type Font struct {
	ID        int64     `json:"font_id"`
	Name      string    `json:"name"`
	Family    string    `json:"family"`
	CreatedAt time.Time `json:"created_at"`
}

// Color is a palette entry offered by the builder.
type Color struct {
	ID        int64     `json:"color_id"`
	Name      string    `json:"name"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
}

// Page is a page slot a section can be placed on.
type Page struct {
	ID        int64     `json:"page_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Section is a structural section kind (hero, footer, gallery, ...).
type Section struct {
	ID        int64     `json:"section_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
