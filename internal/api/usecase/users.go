package usecase

import (
	"context"
	"errors"

	"mf-api/internal/api/constant"
	"mf-api/internal/api/dto"
	"mf-api/internal/api/repo"
	"mf-api/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateUser returns the existing user when the email is already
// registered; created is false in that case.
func (uc *Usecase) CreateUser(ctx context.Context, req dto.CreateUserReq) (*models.User, bool, error) {
	existing, err := uc.rp.FindUserByEmail(ctx, req.Email)
	if err == nil {
		uc.logFor(ctx).WithField("email", req.Email).Info("user already exists")
		return existing, false, nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return nil, false, err
	}

	now := uc.timestamp()
	user := &models.User{
		Name:        req.Name,
		Email:       req.Email,
		Picture:     req.Picture,
		PhoneNumber: req.PhoneNumber,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.rp.InsertUser(ctx, user); err != nil {
		return nil, false, err
	}

	uc.logFor(ctx).WithField("email", user.Email).Info("user created")
	return user, true, nil
}

func (uc *Usecase) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if email == "" {
		return nil, constant.ErrEmailRequired
	}
	user, err := uc.rp.FindUserByEmail(ctx, email)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, constant.ErrUserNotFound
	}
	return user, err
}

func (uc *Usecase) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, constant.ErrInvalidUserID
	}
	user, err := uc.rp.FindUserByID(ctx, oid)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, constant.ErrUserNotFound
	}
	return user, err
}

func (uc *Usecase) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := uc.rp.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

func (uc *Usecase) UpdateUser(ctx context.Context, id string, req dto.UpdateUserReq) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, constant.ErrInvalidUserID
	}
	user, err := uc.rp.UpdateUser(ctx, oid, req.ToModel(), uc.timestamp())
	if errors.Is(err, repo.ErrNotFound) {
		return nil, constant.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	uc.logFor(ctx).WithField("userId", id).Info("user updated")
	return user, nil
}

func (uc *Usecase) DeleteUser(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return constant.ErrInvalidUserID
	}
	err = uc.rp.DeleteUser(ctx, oid)
	if errors.Is(err, repo.ErrNotFound) {
		return constant.ErrUserNotFound
	}
	if err != nil {
		return err
	}

	uc.logFor(ctx).WithField("userId", id).Info("user deleted")
	return nil
}
