package storage

import "time"

// RepositoryModel is the GORM model for repositories table
type RepositoryModel struct {
	CreatedAt time.Time
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null;index:idx_repository_name"`
	Path      string `gorm:"not null;uniqueIndex:idx_repository_path"`
}

// TableName specifies the table name for GORM
func (RepositoryModel) TableName() string { return "repositories" }

// UserModel is the GORM model for users table
type UserModel struct {
	CreatedAt time.Time
	ID        uint   `gorm:"primaryKey"`
	IsAdmin   bool   `gorm:"not null;default:false"`
	Username  string `gorm:"not null;uniqueIndex:idx_user_username"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string { return "users" }

// PullRequestModel is the GORM model for pull_requests table
type PullRequestModel struct {
	Author       UserModel       `gorm:"foreignKey:AuthorID;constraint:OnDelete:RESTRICT"`
	AuthorID     uint            `gorm:"not null;index:idx_pr_author"`
	ClosedAt     *time.Time      `gorm:"default:null"`
	CreatedAt    time.Time       `gorm:"index:idx_pr_created"`
	Description  string          `gorm:"not null;default:''"`
	ID           uint            `gorm:"primaryKey"`
	MergedAt     *time.Time      `gorm:"default:null"`
	Repository   RepositoryModel `gorm:"foreignKey:RepositoryID;constraint:OnDelete:RESTRICT"`
	RepositoryID uint            `gorm:"not null;index:idx_pr_repository"`
	SourceBranch string          `gorm:"not null"`
	Status       string          `gorm:"not null;default:'open';index:idx_pr_status;check:status IN ('open','merged','closed')"`
	TargetBranch string          `gorm:"not null;default:'main'"`
	Title        string          `gorm:"not null"`
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (PullRequestModel) TableName() string { return "pull_requests" }

// CommentModel is the GORM model for comments table
type CommentModel struct {
	Content       string           `gorm:"not null"`
	CreatedAt     time.Time        `gorm:"index:idx_comment_created"`
	ID            uint             `gorm:"primaryKey"`
	PullRequest   PullRequestModel `gorm:"foreignKey:PullRequestID;constraint:OnDelete:CASCADE"`
	PullRequestID uint             `gorm:"not null;index:idx_comment_pr"`
	User          UserModel        `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	UserID        uint             `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (CommentModel) TableName() string { return "comments" }
