package stay

import (
	"context"
	"errors"
	"mime/multipart"

	stayRepo "github.com/pyetrosoares0910-source/pms-backend-sub000/database/repository/stay"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/models"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/services/storage"
)

// Sentinel errors surfaced to handlers as 4xx responses.
var (
	ErrStayNotFound = errors.New("stay not found")
	ErrRoomNotFound = errors.New("room not found")
)

// StayService manages the property and room inventory.
type StayService interface {
	CreateStay(ctx context.Context, s *models.Stay) error
	GetStay(ctx context.Context, id string) (*models.Stay, error)
	UpdateStay(ctx context.Context, s *models.Stay) error
	DeleteStay(ctx context.Context, id string) error
	ListStays(ctx context.Context) ([]models.Stay, error)

	CreateRoom(ctx context.Context, room *models.Room) error
	GetRoom(ctx context.Context, id string) (*models.Room, error)
	UpdateRoom(ctx context.Context, room *models.Room) error
	DeleteRoom(ctx context.Context, id string) error
	ListRooms(ctx context.Context, stayID string, activeOnly bool) ([]models.Room, error)

	AttachRoomPhoto(ctx context.Context, roomID string, file *multipart.FileHeader) (string, error)
}

// DefaultStayService implements StayService.
type DefaultStayService struct {
	Repo    stayRepo.StayRepository
	Storage storage.StorageService
}

func (s *DefaultStayService) CreateStay(ctx context.Context, st *models.Stay) error {
	return s.Repo.CreateStay(ctx, st)
}

func (s *DefaultStayService) GetStay(ctx context.Context, id string) (*models.Stay, error) {
	st, err := s.Repo.GetStay(ctx, id)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, ErrStayNotFound
	}
	return st, nil
}

func (s *DefaultStayService) UpdateStay(ctx context.Context, st *models.Stay) error {
	existing, err := s.Repo.GetStay(ctx, st.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrStayNotFound
	}
	return s.Repo.UpdateStay(ctx, st)
}

func (s *DefaultStayService) DeleteStay(ctx context.Context, id string) error {
	return s.Repo.DeleteStay(ctx, id)
}

func (s *DefaultStayService) ListStays(ctx context.Context) ([]models.Stay, error) {
	return s.Repo.ListStays(ctx)
}

func (s *DefaultStayService) CreateRoom(ctx context.Context, room *models.Room) error {
	st, err := s.Repo.GetStay(ctx, room.StayID)
	if err != nil {
		return err
	}
	if st == nil {
		return ErrStayNotFound
	}
	return s.Repo.CreateRoom(ctx, room)
}

func (s *DefaultStayService) GetRoom(ctx context.Context, id string) (*models.Room, error) {
	room, err := s.Repo.GetRoom(ctx, id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

func (s *DefaultStayService) UpdateRoom(ctx context.Context, room *models.Room) error {
	existing, err := s.Repo.GetRoom(ctx, room.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrRoomNotFound
	}
	return s.Repo.UpdateRoom(ctx, room)
}

func (s *DefaultStayService) DeleteRoom(ctx context.Context, id string) error {
	return s.Repo.DeleteRoom(ctx, id)
}

func (s *DefaultStayService) ListRooms(ctx context.Context, stayID string, activeOnly bool) ([]models.Room, error) {
	return s.Repo.ListRooms(ctx, stayID, activeOnly)
}

// AttachRoomPhoto uploads the photo and stores its URL on the room.
func (s *DefaultStayService) AttachRoomPhoto(ctx context.Context, roomID string, file *multipart.FileHeader) (string, error) {
	room, err := s.GetRoom(ctx, roomID)
	if err != nil {
		return "", err
	}
	if s.Storage == nil {
		return "", errors.New("photo storage not configured")
	}

	url, err := s.Storage.UploadPhoto(ctx, file, "rooms")
	if err != nil {
		return "", err
	}
	room.PhotoURL = url
	if err := s.Repo.UpdateRoom(ctx, room); err != nil {
		return "", err
	}
	return url, nil
}
