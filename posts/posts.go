package posts

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"inkwell/models"
)

type PostModule struct {
	db              *gorm.DB
	cascadeComments bool
}

func NewPostModule(db *gorm.DB, cascadeComments bool) *PostModule {
	return &PostModule{
		db:              db,
		cascadeComments: cascadeComments,
	}
}

func (p *PostModule) RegisterRoutes(router *gin.Engine, requireAuth gin.HandlerFunc) {
	router.POST("/posts", requireAuth, p.createPost)
	router.GET("/posts", p.listPosts)
	router.GET("/posts/:id", p.getPost)
	router.PUT("/posts/:id", requireAuth, p.updatePost)
	router.DELETE("/posts/:id", requireAuth, p.deletePost)
}

func (p *PostModule) createPost(c *gin.Context) {
	var request struct {
		Title   *string `json:"title" binding:"required"`
		Content *string `json:"content" binding:"required"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "title and content are required"})
		return
	}

	post := models.BlogPost{
		Title:    *request.Title,
		Content:  *request.Content,
		AuthorID: c.GetInt("user_id"),
	}

	if err := p.db.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating blog post"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Blog post created successfully!"})
}

func (p *PostModule) listPosts(c *gin.Context) {
	posts := []models.BlogPost{}
	if err := p.db.Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error loading blog posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (p *PostModule) getPost(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid post id"})
		return
	}

	var post models.BlogPost
	if err := p.db.First(&post, postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Blog post not found"})
		return
	}

	if c.Query("render") == "html" {
		c.JSON(http.StatusOK, gin.H{
			"id":           post.ID,
			"title":        post.Title,
			"content":      post.Content,
			"content_html": renderMarkdown(post.Content),
			"author_id":    post.AuthorID,
			"created_at":   post.CreatedAt,
		})
		return
	}

	c.JSON(http.StatusOK, post)
}

func (p *PostModule) updatePost(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid post id"})
		return
	}

	var post models.BlogPost
	if err := p.db.First(&post, postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Blog post not found"})
		return
	}

	var request struct {
		Title   *string `json:"title" binding:"required"`
		Content *string `json:"content" binding:"required"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "title and content are required"})
		return
	}

	post.Title = *request.Title
	post.Content = *request.Content

	if err := p.db.Save(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating blog post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Blog post updated successfully!"})
}

func (p *PostModule) deletePost(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid post id"})
		return
	}

	err = p.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.BlogPost{}, postID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		// Comments referencing the post are kept unless cascade is enabled.
		if p.cascadeComments {
			if err := tx.Where("post_id = ?", postID).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
		}
		return nil
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Blog post not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting blog post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Blog post deleted successfully!"})
}
