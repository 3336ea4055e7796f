package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/copaamateur/copa-backend/models"
	"github.com/copaamateur/copa-backend/repositories"
	"github.com/copaamateur/copa-backend/storage"
)

type CreatePostInput struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Content     *string `json:"content"`
}

type PostService interface {
	CreatePost(ctx context.Context, authorID int, input CreatePostInput) (*models.Post, error)
	GetPostByID(ctx context.Context, id int) (*models.Post, error)
	ListPosts(ctx context.Context, limit, offset int) ([]*models.Post, error)
	UpdatePost(ctx context.Context, id int, input CreatePostInput) (*models.Post, error)
	UploadImage(ctx context.Context, id int, contentType string, file io.Reader) (*models.Post, error)
	DeletePost(ctx context.Context, id int) error
}

type postService struct {
	postRepo repositories.PostRepository
	uploader storage.FileUploader
}

func NewPostService(postRepo repositories.PostRepository, uploader storage.FileUploader) PostService {
	return &postService{postRepo: postRepo, uploader: uploader}
}

func (s *postService) fillImageURL(post *models.Post) {
	if post.ImageKey != nil && s.uploader != nil {
		url := s.uploader.GetPublicURL(*post.ImageKey)
		post.ImageURL = &url
	}
}

func (s *postService) CreatePost(ctx context.Context, authorID int, input CreatePostInput) (*models.Post, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrPostTitleRequired
	}

	post := &models.Post{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Content:     input.Content,
		AuthorID:    &authorID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

func (s *postService) GetPostByID(ctx context.Context, id int) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to load post %d: %w", id, err)
	}
	s.fillImageURL(post)
	return post, nil
}

func (s *postService) ListPosts(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	posts, err := s.postRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	for _, p := range posts {
		s.fillImageURL(p)
	}
	return posts, nil
}

func (s *postService) UpdatePost(ctx context.Context, id int, input CreatePostInput) (*models.Post, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrPostTitleRequired
	}

	post, err := s.GetPostByID(ctx, id)
	if err != nil {
		return nil, err
	}
	post.Title = strings.TrimSpace(input.Title)
	post.Description = input.Description
	post.Content = input.Content

	if err := s.postRepo.Update(ctx, post); err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to update post %d: %w", id, err)
	}
	return post, nil
}

func (s *postService) UploadImage(ctx context.Context, id int, contentType string, file io.Reader) (*models.Post, error) {
	post, err := s.GetPostByID(ctx, id)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("posts/%d/image", id)
	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("failed to upload image for post %d: %w", id, err)
	}

	if err := s.postRepo.UpdateImageKey(ctx, id, &result.Key); err != nil {
		return nil, fmt.Errorf("failed to save image key for post %d: %w", id, err)
	}
	post.ImageKey = &result.Key
	post.ImageURL = &result.Location
	return post, nil
}

func (s *postService) DeletePost(ctx context.Context, id int) error {
	post, err := s.GetPostByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.postRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return ErrPostNotFound
		}
		return fmt.Errorf("failed to delete post %d: %w", id, err)
	}

	if post.ImageKey != nil && s.uploader != nil {
		_ = s.uploader.Delete(ctx, *post.ImageKey)
	}
	return nil
}
