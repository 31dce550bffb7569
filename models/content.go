package models

import "time"

// Default values of the singleton settings rows, created on first read.
const (
	DefaultBrandName     = "تک پوش خاص"
	DefaultBrandSlogan   = "یک از یک"
	DefaultCopyrightText = "© ۱۴۰۳ تک پوش خاص. تمامی حقوق محفوظ است."
	DefaultImageAlt      = "تی‌شرت منحصر به فرد"
)

// BrandSettings is the singleton brand identity shown in the site header.
type BrandSettings struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Slogan    string    `json:"slogan"`
	LogoURL   string    `json:"logoUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BrandSettingsUpdate is the admin payload for brand settings. Nil fields
// keep their stored value.
type BrandSettingsUpdate struct {
	Name    *string `json:"name,omitempty"`
	Slogan  *string `json:"slogan,omitempty"`
	LogoURL *string `json:"logoUrl,omitempty"`
}

// TshirtImage is one entry of the storefront gallery.
type TshirtImage struct {
	ID          int64     `json:"id"`
	ImageURL    string    `json:"imageUrl"`
	Alt         string    `json:"alt"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Size        string    `json:"size"`
	Price       string    `json:"price"`
	Order       int       `json:"order"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TshirtImageUpdate is the admin payload for gallery entry details. Only
// non-nil fields are written.
type TshirtImageUpdate struct {
	Alt         *string `json:"alt,omitempty"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Size        *string `json:"size,omitempty"`
	Price       *string `json:"price,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// IsEmpty reports whether the update carries no field at all.
func (u TshirtImageUpdate) IsEmpty() bool {
	return u.Alt == nil && u.Title == nil && u.Description == nil &&
		u.Size == nil && u.Price == nil && u.IsActive == nil
}

// ReorderRequest lists gallery ids in their new display order.
type ReorderRequest struct {
	ImageIDs []int64 `json:"imageIds"`
}

// Social platforms accepted for social links.
const (
	PlatformInstagram = "instagram"
	PlatformTelegram  = "telegram"
	PlatformTikTok    = "tiktok"
	PlatformYouTube   = "youtube"
	PlatformWhatsApp  = "whatsapp"
)

// SocialLink is a link to one of the brand's social accounts.
type SocialLink struct {
	ID        int64     `json:"id"`
	Platform  string    `json:"platform"`
	URL       string    `json:"url"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CopyrightSettings is the singleton footer copyright line.
type CopyrightSettings struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AboutContent is the singleton copy of the about page.
type AboutContent struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Subtitle        string    `json:"subtitle"`
	PhilosophyTitle string    `json:"philosophyTitle"`
	PhilosophyText1 string    `json:"philosophyText1"`
	PhilosophyText2 string    `json:"philosophyText2"`
	ContactTitle    string    `json:"contactTitle"`
	ContactEmail    string    `json:"contactEmail"`
	ContactPhone    string    `json:"contactPhone"`
	ContactAddress  string    `json:"contactAddress"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// UploadedFile is one image part of a multipart upload, read into memory.
type UploadedFile struct {
	Filename    string
	ContentType string
	Data        []byte
}
