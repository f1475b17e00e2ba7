package content

import (
	"context"
	"errors"
	"fmt"

	"github.com/dvbeauty/DVB-BookingService/internal/domain"
	postRepo "github.com/dvbeauty/DVB-BookingService/internal/infra/storage/post"
	"github.com/dvbeauty/DVB-BookingService/pkg/ptr"
)

// Service сервис контента: галерея, блог, комментарии, админ-обзор записей
type Service struct {
	galleryRepo GalleryRepository
	postRepo    PostRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса контента
func NewService(galleryRepo GalleryRepository, postRepo PostRepository, bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		galleryRepo: galleryRepo,
		postRepo:    postRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// PostWithComments пост вместе с комментариями
type PostWithComments struct {
	Post     *domain.BlogPost
	Comments []*domain.Comment
}

// HomeGallery получает изображения для публичной страницы
func (s *Service) HomeGallery(ctx context.Context) ([]*domain.GalleryImage, error) {
	images, err := s.galleryRepo.ListRecent(ctx, domain.HomeGalleryLimit)
	if err != nil {
		s.logger.Error("HomeGallery: repository error: %v", err)
		return nil, fmt.Errorf("%w: HomeGallery - repository error: %v", ErrInternal, err)
	}
	return images, nil
}

// HomePosts получает последние посты для публичной страницы
func (s *Service) HomePosts(ctx context.Context) ([]*domain.BlogPost, error) {
	posts, err := s.postRepo.ListRecent(ctx, domain.HomePostsLimit)
	if err != nil {
		s.logger.Error("HomePosts: repository error: %v", err)
		return nil, fmt.Errorf("%w: HomePosts - repository error: %v", ErrInternal, err)
	}
	return posts, nil
}

// AllPosts получает все посты для админ-панели
func (s *Service) AllPosts(ctx context.Context) ([]*domain.BlogPost, error) {
	posts, err := s.postRepo.ListRecent(ctx, 0)
	if err != nil {
		s.logger.Error("AllPosts: repository error: %v", err)
		return nil, fmt.Errorf("%w: AllPosts - repository error: %v", ErrInternal, err)
	}
	return posts, nil
}

// GetPost получает пост с комментариями
func (s *Service) GetPost(ctx context.Context, id int64) (*PostWithComments, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if errors.Is(err, postRepo.ErrPostNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		s.logger.Error("GetPost: repository error for post id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetPost - repository error: %v", ErrInternal, err)
	}

	comments, err := s.postRepo.ListComments(ctx, id)
	if err != nil {
		s.logger.Error("GetPost: failed to list comments for post id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetPost - list comments: %v", ErrInternal, err)
	}

	return &PostWithComments{Post: post, Comments: comments}, nil
}

// CreatePost создает новый пост (админ-операция)
func (s *Service) CreatePost(ctx context.Context, title, body, imageURL string) (*domain.BlogPost, error) {
	if title == "" || body == "" {
		return nil, fmt.Errorf("%w: title and body are required", ErrInvalidInput)
	}

	var img *string
	if imageURL != "" {
		img = ptr.Ptr(imageURL)
	}

	post, err := s.postRepo.Create(ctx, &domain.BlogPost{Title: title, Body: body, ImageURL: img})
	if err != nil {
		s.logger.Error("CreatePost: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreatePost - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreatePost: created post id=%d", post.ID)
	return post, nil
}

// AddComment добавляет комментарий к посту
// Комментарий без имени автора или текста молча игнорируется - поведение
// публичной формы, а не API
func (s *Service) AddComment(ctx context.Context, postID int64, authorName, authorComment string) error {
	if authorName == "" || authorComment == "" {
		return nil
	}

	_, err := s.postRepo.AddComment(ctx, &domain.Comment{
		PostID:        postID,
		AuthorName:    authorName,
		AuthorComment: authorComment,
	})
	if err != nil {
		s.logger.Error("AddComment: repository error for post id=%d: %v", postID, err)
		return fmt.Errorf("%w: AddComment - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddComment: added comment to post id=%d", postID)
	return nil
}

// AddInstagramImage добавляет в галерею изображение по внешней ссылке
// (загрузка файлов обрабатывается отдельно и сюда не входит)
func (s *Service) AddInstagramImage(ctx context.Context, title, imageURL string) (*domain.GalleryImage, error) {
	if imageURL == "" {
		return nil, fmt.Errorf("%w: image URL is required", ErrInvalidInput)
	}

	img, err := s.galleryRepo.Create(ctx, &domain.GalleryImage{
		Title:    title,
		ImageURL: imageURL,
		Source:   domain.SourceInstagram,
	})
	if err != nil {
		s.logger.Error("AddInstagramImage: repository error: %v", err)
		return nil, fmt.Errorf("%w: AddInstagramImage - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddInstagramImage: added gallery image id=%d", img.ID)
	return img, nil
}

// RecentBookings получает последние бронирования для админ-панели
func (s *Service) RecentBookings(ctx context.Context) ([]*domain.AdminBookingRow, error) {
	bookings, err := s.bookingRepo.ListRecentWithDetails(ctx, domain.AdminBookingsLimit)
	if err != nil {
		s.logger.Error("RecentBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: RecentBookings - repository error: %v", ErrInternal, err)
	}
	return bookings, nil
}
