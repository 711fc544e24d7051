package storage

import (
	"github.com/renato0307/gitwatch/internal/domain"
)

func repositoryModelToDomain(m RepositoryModel) domain.Repository {
	return domain.Repository{
		ID:   m.ID,
		Name: m.Name,
		Path: m.Path,
	}
}

func userModelToDomain(m UserModel) domain.User {
	return domain.User{
		CreatedAt: m.CreatedAt,
		ID:        m.ID,
		IsAdmin:   m.IsAdmin,
		Username:  m.Username,
	}
}

// pullRequestModelToDomain expects Author and Repository to be preloaded
func pullRequestModelToDomain(m PullRequestModel) domain.PullRequest {
	return domain.PullRequest{
		Author:       m.Author.Username,
		ClosedAt:     m.ClosedAt,
		CreatedAt:    m.CreatedAt,
		Description:  m.Description,
		ID:           m.ID,
		MergedAt:     m.MergedAt,
		Repository:   repositoryModelToDomain(m.Repository),
		SourceBranch: m.SourceBranch,
		Status:       domain.PullRequestStatus(m.Status),
		TargetBranch: m.TargetBranch,
		Title:        m.Title,
		UpdatedAt:    m.UpdatedAt,
	}
}

// commentModelToDomain expects User to be preloaded
func commentModelToDomain(m CommentModel) domain.Comment {
	return domain.Comment{
		Author:        m.User.Username,
		Content:       m.Content,
		CreatedAt:     m.CreatedAt,
		ID:            m.ID,
		PullRequestID: m.PullRequestID,
	}
}
