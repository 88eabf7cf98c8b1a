package api

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gorm.io/datatypes"

	"github.com/sanjulagihan/portfolio-backend/models"
)

// emailShape is the same shape check the contact form has always used;
// deliverability is not verified.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func statusRule() validation.Rule {
	return validation.In(models.StatusDraft, models.StatusPublished, models.StatusArchived).
		Error("must be draft, published or archived")
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Status  string `json:"status"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
}

// CreateProjectRequest is the admin payload for a new project.
type CreateProjectRequest struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	ImageURL    *string       `json:"image_url"`
	DemoURL     *string       `json:"demo_url"`
	GithubURL   *string       `json:"github_url"`
	Tags        []string      `json:"tags"`
	Category    string        `json:"category"`
	Featured    bool          `json:"featured"`
	Status      models.Status `json:"status"`
}

func (r CreateProjectRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Description, validation.Required),
		validation.Field(&r.Category, validation.Required),
		validation.Field(&r.Status, validation.Required, statusRule()),
	)
}

func (r CreateProjectRequest) Model() *models.Project {
	return &models.Project{
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		DemoURL:     r.DemoURL,
		GithubURL:   r.GithubURL,
		Tags:        datatypes.JSONSlice[string](r.Tags),
		Category:    r.Category,
		Featured:    r.Featured,
		Status:      r.Status,
	}
}

// UpdateProjectRequest patches named fields only; absent fields are left
// untouched.
type UpdateProjectRequest struct {
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	ImageURL    *string        `json:"image_url"`
	DemoURL     *string        `json:"demo_url"`
	GithubURL   *string        `json:"github_url"`
	Tags        *[]string      `json:"tags"`
	Category    *string        `json:"category"`
	Featured    *bool          `json:"featured"`
	Status      *models.Status `json:"status"`
}

func (r UpdateProjectRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status, statusRule()),
	)
}

func (r UpdateProjectRequest) Patch() map[string]any {
	patch := map[string]any{}
	if r.Title != nil {
		patch["title"] = *r.Title
	}
	if r.Description != nil {
		patch["description"] = *r.Description
	}
	if r.ImageURL != nil {
		patch["image_url"] = *r.ImageURL
	}
	if r.DemoURL != nil {
		patch["demo_url"] = *r.DemoURL
	}
	if r.GithubURL != nil {
		patch["github_url"] = *r.GithubURL
	}
	if r.Tags != nil {
		patch["tags"] = datatypes.JSONSlice[string](*r.Tags)
	}
	if r.Category != nil {
		patch["category"] = *r.Category
	}
	if r.Featured != nil {
		patch["featured"] = *r.Featured
	}
	if r.Status != nil {
		patch["status"] = *r.Status
	}
	return patch
}

// CreateBlogRequest is the admin payload for a new post. Slug and read
// time are derived server-side and cannot be supplied.
type CreateBlogRequest struct {
	Title    string        `json:"title"`
	Excerpt  string        `json:"excerpt"`
	Content  string        `json:"content"`
	ImageURL *string       `json:"image_url"`
	Category string        `json:"category"`
	Status   models.Status `json:"status"`
}

func (r CreateBlogRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Excerpt, validation.Required),
		validation.Field(&r.Content, validation.Required),
		validation.Field(&r.Category, validation.Required),
		validation.Field(&r.Status, validation.Required, statusRule()),
	)
}

func (r CreateBlogRequest) Model() *models.Blog {
	return &models.Blog{
		Title:    r.Title,
		Excerpt:  r.Excerpt,
		Content:  r.Content,
		ImageURL: r.ImageURL,
		Category: r.Category,
		Status:   r.Status,
		Slug:     models.Slugify(r.Title),
		ReadTime: models.ReadTime(r.Content),
	}
}

type UpdateBlogRequest struct {
	Title    *string        `json:"title"`
	Excerpt  *string        `json:"excerpt"`
	Content  *string        `json:"content"`
	ImageURL *string        `json:"image_url"`
	Category *string        `json:"category"`
	Status   *models.Status `json:"status"`
}

func (r UpdateBlogRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status, statusRule()),
	)
}

// Patch recomputes the slug when the title changes and the read time when
// the content changes, so the derived fields never drift.
func (r UpdateBlogRequest) Patch() map[string]any {
	patch := map[string]any{}
	if r.Title != nil {
		patch["title"] = *r.Title
		patch["slug"] = models.Slugify(*r.Title)
	}
	if r.Excerpt != nil {
		patch["excerpt"] = *r.Excerpt
	}
	if r.Content != nil {
		patch["content"] = *r.Content
		patch["read_time"] = models.ReadTime(*r.Content)
	}
	if r.ImageURL != nil {
		patch["image_url"] = *r.ImageURL
	}
	if r.Category != nil {
		patch["category"] = *r.Category
	}
	if r.Status != nil {
		patch["status"] = *r.Status
	}
	return patch
}

// CreateCVRequest registers a CV record for an already uploaded file.
// The multipart upload endpoint builds this itself.
type CreateCVRequest struct {
	FileName    string  `json:"file_name"`
	FileURL     string  `json:"file_url"`
	FileSize    *int64  `json:"file_size"`
	FileType    *string `json:"file_type"`
	Version     string  `json:"version"`
	IsActive    bool    `json:"is_active"`
	Description *string `json:"description"`
}

func (r CreateCVRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FileName, validation.Required),
		validation.Field(&r.FileURL, validation.Required),
	)
}

func (r CreateCVRequest) Model() *models.CVFile {
	return &models.CVFile{
		FileName:    r.FileName,
		FileURL:     r.FileURL,
		FileSize:    r.FileSize,
		FileType:    r.FileType,
		Version:     r.Version,
		IsActive:    r.IsActive,
		Description: r.Description,
	}
}

// UpdateCVRequest patches CV metadata. The active flag is only toggled
// through the activate endpoint to keep the single-active invariant.
type UpdateCVRequest struct {
	FileName    *string `json:"file_name"`
	Version     *string `json:"version"`
	Description *string `json:"description"`
}

func (r UpdateCVRequest) Patch() map[string]any {
	patch := map[string]any{}
	if r.FileName != nil {
		patch["file_name"] = *r.FileName
	}
	if r.Version != nil {
		patch["version"] = *r.Version
	}
	if r.Description != nil {
		patch["description"] = *r.Description
	}
	return patch
}

// ContactRequest is the public contact-form payload.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (r ContactRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("name is required")),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			validation.Match(emailShape).Error("invalid email format"),
		),
		validation.Field(&r.Message, validation.Required.Error("message is required")),
	)
}

// LoginRequest carries the shared admin password.
type LoginRequest struct {
	Password string `json:"password"`
}
