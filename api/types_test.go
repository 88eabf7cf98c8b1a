package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanjulagihan/portfolio-backend/models"
)

func TestCreateBlogRequestModel(t *testing.T) {
	req := CreateBlogRequest{
		Title:    "Building a Portfolio Backend in Go!",
		Excerpt:  "Notes from the rewrite.",
		Content:  "word word word",
		Category: "engineering",
		Status:   models.StatusPublished,
	}
	require.NoError(t, req.Validate())

	blog := req.Model()
	assert.Equal(t, "building-a-portfolio-backend-in-go", blog.Slug)
	assert.Equal(t, 1, blog.ReadTime)
	assert.Equal(t, models.StatusPublished, blog.Status)
}

func TestUpdateBlogRequestPatch(t *testing.T) {
	title := "New Title Here"
	content := "short"
	req := UpdateBlogRequest{Title: &title, Content: &content}

	patch := req.Patch()
	assert.Equal(t, "new-title-here", patch["slug"], "slug follows the title")
	assert.Equal(t, 1, patch["read_time"], "read time follows the content")
	assert.NotContains(t, patch, "excerpt")
	assert.NotContains(t, patch, "status")
}

func TestUpdateBlogRequestPatchLeavesDerivedFields(t *testing.T) {
	category := "golang"
	req := UpdateBlogRequest{Category: &category}

	patch := req.Patch()
	assert.NotContains(t, patch, "slug")
	assert.NotContains(t, patch, "read_time")
}

func TestCreateProjectRequestValidate(t *testing.T) {
	valid := CreateProjectRequest{
		Title:       "Thing",
		Description: "Does things",
		Category:    "web",
		Status:      models.StatusDraft,
	}
	assert.NoError(t, valid.Validate())

	missingTitle := valid
	missingTitle.Title = ""
	assert.Error(t, missingTitle.Validate())

	badStatus := valid
	badStatus.Status = models.Status("live")
	assert.Error(t, badStatus.Validate())
}

func TestUpdateProjectRequestPatch(t *testing.T) {
	featured := true
	status := models.StatusArchived
	tags := []string{"go", "chi"}
	req := UpdateProjectRequest{Featured: &featured, Status: &status, Tags: &tags}

	patch := req.Patch()
	assert.Equal(t, true, patch["featured"])
	assert.Equal(t, models.StatusArchived, patch["status"])
	assert.Contains(t, patch, "tags")
	assert.NotContains(t, patch, "title")
}

func TestUpdateCVRequestPatchExcludesActiveFlag(t *testing.T) {
	name := "resume.pdf"
	req := UpdateCVRequest{FileName: &name}

	patch := req.Patch()
	assert.Equal(t, "resume.pdf", patch["file_name"])
	assert.NotContains(t, patch, "is_active")
}
