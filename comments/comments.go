package comments

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"inkwell/models"
)

type CommentModule struct {
	db *gorm.DB
}

func NewCommentModule(db *gorm.DB) *CommentModule {
	return &CommentModule{db: db}
}

func (m *CommentModule) RegisterRoutes(router *gin.Engine, requireAuth gin.HandlerFunc) {
	router.POST("/posts/:id/comments", requireAuth, m.addComment)
	router.GET("/posts/:id/comments", m.listComments)
	router.PUT("/posts/:id/comments/:cid", requireAuth, m.updateComment)
	router.DELETE("/posts/:id/comments/:cid", requireAuth, m.deleteComment)
}

func (m *CommentModule) addComment(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid post id"})
		return
	}

	var request struct {
		Content *string `json:"content" binding:"required"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "content is required"})
		return
	}

	// The referenced post is not looked up; a comment may point at an id
	// that was never created or was deleted since.
	comment := models.Comment{
		Content:  *request.Content,
		AuthorID: c.GetInt("user_id"),
		PostID:   postID,
	}

	if err := m.db.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error adding comment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Comment added successfully!"})
}

func (m *CommentModule) listComments(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid post id"})
		return
	}

	var comments []models.Comment
	if err := m.db.Where("post_id = ?", postID).Find(&comments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error loading comments"})
		return
	}

	items := make([]gin.H, 0, len(comments))
	for _, comment := range comments {
		items = append(items, gin.H{
			"id":         comment.ID,
			"content":    comment.Content,
			"author_id":  comment.AuthorID,
			"created_at": comment.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"comments": items})
}

func (m *CommentModule) updateComment(c *gin.Context) {
	postID, commentID, ok := m.pathIDs(c)
	if !ok {
		return
	}

	var comment models.Comment
	if err := m.db.First(&comment, commentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Comment not found"})
		return
	}

	if comment.PostID != postID {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Comment does not belong to the specified post"})
		return
	}

	var request struct {
		Content *string `json:"content" binding:"required"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "content is required"})
		return
	}

	comment.Content = *request.Content

	if err := m.db.Save(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating comment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment updated successfully!"})
}

func (m *CommentModule) deleteComment(c *gin.Context) {
	postID, commentID, ok := m.pathIDs(c)
	if !ok {
		return
	}

	var comment models.Comment
	if err := m.db.First(&comment, commentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Comment not found"})
		return
	}

	if comment.PostID != postID {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Comment does not belong to the specified post"})
		return
	}

	if err := m.db.Delete(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting comment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully!"})
}

func (m *CommentModule) pathIDs(c *gin.Context) (postID, commentID int, ok bool) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid post id"})
		return 0, 0, false
	}

	commentID, err = strconv.Atoi(c.Param("cid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid comment id"})
		return 0, 0, false
	}

	return postID, commentID, true
}
