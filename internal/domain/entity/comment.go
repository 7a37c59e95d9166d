package entity

// CommentTimeLayout is the layout of Comment.CreatedAt.
const CommentTimeLayout = "2006-01-02 15:04:05"

// Comment is a visitor comment attached to an article. Comments are immutable once written.
type Comment struct {
	ID        string `json:"id"`         // Generated UUID.
	ArticleID string `json:"blog_id"`    // The Article.ID the comment belongs to.
	Author    string `json:"author"`     // Display name, defaulted when left empty.
	Content   string `json:"content"`    // Comment body.
	CreatedAt string `json:"created_at"` // Creation time formatted with CommentTimeLayout.
}
