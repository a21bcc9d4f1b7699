package service

import (
	"careerbridge/internal/api/dto"
	"careerbridge/internal/model"
	"careerbridge/internal/pkg/consts"
	"careerbridge/internal/pkg/redis"
	"careerbridge/internal/pkg/security"
	"careerbridge/internal/repository"
	"context"
	log "log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserService interface {
	Register(ctx context.Context, req *dto.RegisterDTO) (*dto.AuthResultDTO, error)
	Login(ctx context.Context, req *dto.LoginDTO) (*dto.AuthResultDTO, error)
	Logout(ctx context.Context, token string) error
	GetProfile(ctx context.Context, userID primitive.ObjectID) (*model.User, error)
	UpdateProfile(ctx context.Context, userID primitive.ObjectID, req *dto.UpdateProfileDTO) error
	UpdateSettings(ctx context.Context, userID primitive.ObjectID, req *dto.UpdateSettingsDTO) error
}

type userServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
	}
}

func (s *userServiceImpl) Register(ctx context.Context, req *dto.RegisterDTO) (*dto.AuthResultDTO, error) {
	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, UnExpectedError
	}
	if existing != nil {
		return nil, ErrUserExist
	}

	hashed, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, UnExpectedError
	}

	now := time.Now()
	user := &model.User{
		Email:    req.Email,
		Password: hashed,
		Role:     req.Role,
		Name:     req.Name,
		Settings: model.UserSettings{
			AlertsEnabled: true,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, UnExpectedError
	}

	token, err := security.GenerateToken(user.ID.Hex(), []string{user.Role})
	if err != nil {
		return nil, UnExpectedError
	}

	return &dto.AuthResultDTO{Token: token, User: user}, nil
}

func (s *userServiceImpl) Login(ctx context.Context, req *dto.LoginDTO) (*dto.AuthResultDTO, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, UnExpectedError
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := security.CheckPasswordHash(req.Password, user.Password); err != nil {
		return nil, ErrPasswordIncorrect
	}

	token, err := security.GenerateToken(user.ID.Hex(), []string{user.Role})
	if err != nil {
		return nil, UnExpectedError
	}

	return &dto.AuthResultDTO{Token: token, User: user}, nil
}

// Logout revokes the token by caching its signature until the token would
// expire on its own.
func (s *userServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return UnauthorizedError
	}

	if err := redis.SetWithExpiration(ctx, consts.TokenRevokedKey+signature, 1, security.JWTExpirationTime); err != nil {
		log.ErrorContext(ctx, "token revocation failed", "err", err)
		return UnExpectedError
	}
	return nil
}

func (s *userServiceImpl) GetProfile(ctx context.Context, userID primitive.ObjectID) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, UnExpectedError
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *userServiceImpl) UpdateProfile(ctx context.Context, userID primitive.ObjectID, req *dto.UpdateProfileDTO) error {
	fields := bson.M{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Headline != nil {
		fields["headline"] = *req.Headline
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.Skills != nil {
		fields["skills"] = req.Skills
	}
	if req.Experience != nil {
		fields["experience"] = req.Experience
	}
	if req.Education != nil {
		fields["education"] = req.Education
	}
	if req.CompanyName != nil {
		fields["company_name"] = *req.CompanyName
	}
	if req.CompanyWebsite != nil {
		fields["company_website"] = *req.CompanyWebsite
	}
	if req.CompanyDescription != nil {
		fields["company_description"] = *req.CompanyDescription
	}
	if len(fields) == 0 {
		return ErrParamInvalid
	}

	if err := s.userRepo.Update(ctx, userID, fields); err != nil {
		return UnExpectedError
	}
	return nil
}

func (s *userServiceImpl) UpdateSettings(ctx context.Context, userID primitive.ObjectID, req *dto.UpdateSettingsDTO) error {
	if err := s.userRepo.Update(ctx, userID, bson.M{"settings.alerts_enabled": *req.AlertsEnabled}); err != nil {
		return UnExpectedError
	}
	return nil
}
