package domain

import "time"

// ImageSource indicates where a gallery image came from
type ImageSource string

const (
	SourceUpload    ImageSource = "upload"
	SourceInstagram ImageSource = "instagram"
)

// GalleryImage is a single image on the public gallery
type GalleryImage struct {
	ID        int64
	Title     string
	ImageURL  string
	Source    ImageSource
	CreatedAt time.Time
}

// BlogPost is an administrator-authored post
type BlogPost struct {
	ID        int64
	Title     string
	Body      string
	ImageURL  *string
	CreatedAt time.Time
}

// Comment is a visitor comment on a blog post
type Comment struct {
	ID            int64
	PostID        int64
	AuthorName    string
	AuthorComment string
	CreatedAt     time.Time
}

// AdminUser is an administrator account. Passwords are stored as bcrypt hashes.
type AdminUser struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
