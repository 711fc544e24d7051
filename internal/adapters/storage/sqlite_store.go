package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/renato0307/gitwatch/internal/domain"
	"github.com/renato0307/gitwatch/internal/logging"
	"github.com/renato0307/gitwatch/internal/ports"
)

// SQLiteStore implements ports.ReviewStore using GORM
type SQLiteStore struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.ReviewStore = (*SQLiteStore)(nil)

// gormLogger routes GORM output to the gitwatch logger
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		logging.Logger.Error("gorm query error", "error", err, "duration", elapsed, "sql", sql, "rows", rows)
	case elapsed > 200*time.Millisecond:
		logging.Logger.Warn("slow query", "duration", elapsed, "sql", sql, "rows", rows)
	default:
		logging.Logger.Debug("gorm query", "duration", elapsed, "sql", sql, "rows", rows)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("GITWATCH_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteStore opens (and migrates) the database at dbPath
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
		PrepareStmt: false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL lets concurrent CLI invocations read while one writes
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")
	db.Exec("PRAGMA foreign_keys=ON")

	if err := db.AutoMigrate(&RepositoryModel{}, &UserModel{}, &PullRequestModel{}, &CommentModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	logging.Logger.Debug("Database opened", "path", dbPath)
	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// FindOrCreateRepository implements RepositoryRegistry.FindOrCreateRepository
func (s *SQLiteStore) FindOrCreateRepository(ctx context.Context, name, path string) (*domain.Repository, error) {
	var model RepositoryModel
	err := withRetry(func() error {
		return s.db.WithContext(ctx).
			Where(RepositoryModel{Path: path}).
			Attrs(RepositoryModel{Name: name}).
			FirstOrCreate(&model).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to register repository %s: %w", path, err)
	}

	repo := repositoryModelToDomain(model)
	return &repo, nil
}

// ListRegisteredRepositories implements RepositoryRegistry.ListRegisteredRepositories
func (s *SQLiteStore) ListRegisteredRepositories(ctx context.Context) ([]domain.Repository, error) {
	var models []RepositoryModel
	if err := s.db.WithContext(ctx).Order("name, id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list repositories: %w", err)
	}

	repos := make([]domain.Repository, len(models))
	for i, m := range models {
		repos[i] = repositoryModelToDomain(m)
	}
	return repos, nil
}

// CreatePullRequest implements PullRequestWriter.CreatePullRequest.
// The author must exist; the repository is registered if needed.
func (s *SQLiteStore) CreatePullRequest(ctx context.Context, pr *domain.PullRequest) error {
	return withRetry(func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var author UserModel
			if err := tx.Where("username = ?", pr.Author).First(&author).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("author %s: %w", pr.Author, domain.ErrUserNotFound)
				}
				return err
			}

			repo := RepositoryModel{ID: pr.Repository.ID}
			if repo.ID == 0 {
				err := tx.Where(RepositoryModel{Path: pr.Repository.Path}).
					Attrs(RepositoryModel{Name: pr.Repository.Name}).
					FirstOrCreate(&repo).Error
				if err != nil {
					return fmt.Errorf("failed to register repository: %w", err)
				}
			} else if err := tx.First(&repo).Error; err != nil {
				return fmt.Errorf("failed to load repository %d: %w", pr.Repository.ID, err)
			}

			status := pr.Status
			if status == "" {
				status = domain.StatusOpen
			}

			model := PullRequestModel{
				AuthorID:     author.ID,
				Description:  pr.Description,
				RepositoryID: repo.ID,
				SourceBranch: pr.SourceBranch,
				Status:       string(status),
				TargetBranch: pr.TargetBranch,
				Title:        pr.Title,
			}
			if err := tx.Omit(clause.Associations).Create(&model).Error; err != nil {
				return fmt.Errorf("failed to create pull request: %w", err)
			}

			pr.ID = model.ID
			pr.CreatedAt = model.CreatedAt
			pr.UpdatedAt = model.UpdatedAt
			pr.Status = status
			pr.Repository = repositoryModelToDomain(repo)
			return nil
		})
	}, 3)
}

// GetPullRequest implements PullRequestReader.GetPullRequest. Comments are
// loaded oldest first.
func (s *SQLiteStore) GetPullRequest(ctx context.Context, id uint) (*domain.PullRequest, error) {
	var model PullRequestModel
	var comments []CommentModel

	err := withRetry(func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Preload("Author").Preload("Repository").First(&model, id).Error; err != nil {
				return err
			}
			return tx.Preload("User").
				Where("pull_request_id = ?", id).
				Order("created_at, id").
				Find(&comments).Error
		})
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("pull request #%d: %w", id, domain.ErrPullRequestNotFound)
		}
		return nil, err
	}

	pr := pullRequestModelToDomain(model)
	pr.Comments = make([]domain.Comment, len(comments))
	for i, c := range comments {
		pr.Comments[i] = commentModelToDomain(c)
	}
	return &pr, nil
}

// ListPullRequests implements PullRequestReader.ListPullRequests.
// An empty status lists everything, newest first.
func (s *SQLiteStore) ListPullRequests(ctx context.Context, status domain.PullRequestStatus) ([]domain.PullRequest, error) {
	var models []PullRequestModel

	query := s.db.WithContext(ctx).Preload("Author").Preload("Repository")
	if status != "" {
		query = query.Where("status = ?", string(status))
	}
	if err := query.Order("created_at DESC, id DESC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list pull requests: %w", err)
	}

	prs := make([]domain.PullRequest, len(models))
	for i, m := range models {
		prs[i] = pullRequestModelToDomain(m)
	}
	return prs, nil
}

// UpdatePullRequestStatus implements PullRequestWriter.UpdatePullRequestStatus.
// The row only changes while it is still open in the database, so two
// processes cannot both move the same pull request out of open.
func (s *SQLiteStore) UpdatePullRequestStatus(ctx context.Context, pr *domain.PullRequest) error {
	return withRetry(func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			result := tx.Model(&PullRequestModel{}).
				Where("id = ? AND status = ?", pr.ID, string(domain.StatusOpen)).
				Updates(map[string]any{
					"closed_at":  pr.ClosedAt,
					"merged_at":  pr.MergedAt,
					"status":     string(pr.Status),
					"updated_at": pr.UpdatedAt,
				})
			if result.Error != nil {
				return fmt.Errorf("failed to update pull request #%d: %w", pr.ID, result.Error)
			}
			if result.RowsAffected == 1 {
				return nil
			}

			var count int64
			if err := tx.Model(&PullRequestModel{}).Where("id = ?", pr.ID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return fmt.Errorf("pull request #%d: %w", pr.ID, domain.ErrPullRequestNotFound)
			}
			return fmt.Errorf("pull request #%d: %w", pr.ID, domain.ErrPullRequestNotOpen)
		})
	}, 3)
}

// AddComment implements CommentStore.AddComment
func (s *SQLiteStore) AddComment(ctx context.Context, comment *domain.Comment) error {
	return withRetry(func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var user UserModel
			if err := tx.Where("username = ?", comment.Author).First(&user).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("author %s: %w", comment.Author, domain.ErrUserNotFound)
				}
				return err
			}

			var count int64
			if err := tx.Model(&PullRequestModel{}).Where("id = ?", comment.PullRequestID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return fmt.Errorf("pull request #%d: %w", comment.PullRequestID, domain.ErrPullRequestNotFound)
			}

			model := CommentModel{
				Content:       comment.Content,
				PullRequestID: comment.PullRequestID,
				UserID:        user.ID,
			}
			if err := tx.Omit(clause.Associations).Create(&model).Error; err != nil {
				return fmt.Errorf("failed to add comment: %w", err)
			}

			comment.ID = model.ID
			comment.CreatedAt = model.CreatedAt
			return nil
		})
	}, 3)
}

// ListComments implements CommentStore.ListComments
func (s *SQLiteStore) ListComments(ctx context.Context, pullRequestID uint) ([]domain.Comment, error) {
	var models []CommentModel
	err := s.db.WithContext(ctx).Preload("User").
		Where("pull_request_id = ?", pullRequestID).
		Order("created_at, id").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	comments := make([]domain.Comment, len(models))
	for i, m := range models {
		comments[i] = commentModelToDomain(m)
	}
	return comments, nil
}

// AddUser implements UserStore.AddUser
func (s *SQLiteStore) AddUser(ctx context.Context, user *domain.User) error {
	model := UserModel{IsAdmin: user.IsAdmin, Username: user.Username}

	err := withRetry(func() error {
		return s.db.WithContext(ctx).Create(&model).Error
	}, 3)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("user %s: %w", user.Username, domain.ErrUserExists)
		}
		return fmt.Errorf("failed to add user: %w", err)
	}

	user.ID = model.ID
	user.CreatedAt = model.CreatedAt
	return nil
}

// GetUser implements UserStore.GetUser
func (s *SQLiteStore) GetUser(ctx context.Context, username string) (*domain.User, error) {
	var model UserModel
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", username, domain.ErrUserNotFound)
		}
		return nil, err
	}

	user := userModelToDomain(model)
	return &user, nil
}

// ListUsers implements UserStore.ListUsers
func (s *SQLiteStore) ListUsers(ctx context.Context) ([]domain.User, error) {
	var models []UserModel
	if err := s.db.WithContext(ctx).Order("username").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]domain.User, len(models))
	for i, m := range models {
		users[i] = userModelToDomain(m)
	}
	return users, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}

// withRetry retries operations on SQLITE_BUSY with linear backoff
func withRetry(fn func() error, maxRetries int) error {
	var err error
	for i := 0; i < maxRetries; i++ {
		err = fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries: %w", maxRetries, err)
}
