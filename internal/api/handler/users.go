package handler

import (
	"net/http"

	"mf-api/internal/api/dto"

	"github.com/gin-gonic/gin"
)

func (hd *Handler) CreateUser(ctx *gin.Context) {
	var req dto.CreateUserReq
	if !bindJSON(ctx, &req) {
		return
	}

	user, created, err := hd.uc.CreateUser(ctx, req)
	if err != nil {
		ctx.Error(err)
		return
	}

	if !created {
		ctx.JSON(http.StatusOK, dto.Success("User already exists").WithData(user))
		return
	}
	ctx.JSON(http.StatusCreated, dto.Success("User created").WithData(user))
}

func (hd *Handler) GetUserByEmail(ctx *gin.Context) {
	user, err := hd.uc.GetUserByEmail(ctx, ctx.Query("email"))
	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Success("User fetched").WithData(user))
}

func (hd *Handler) ListUsers(ctx *gin.Context) {
	users, err := hd.uc.ListUsers(ctx)
	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Success("Users fetched").
		WithRecords(users).
		WithCount(int64(len(users))))
}

func (hd *Handler) GetUser(ctx *gin.Context) {
	user, err := hd.uc.GetUserByID(ctx, ctx.Param("id"))
	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Success("User fetched").WithRecords(user))
}

func (hd *Handler) UpdateUser(ctx *gin.Context) {
	var req dto.UpdateUserReq
	if !bindJSON(ctx, &req) {
		return
	}

	user, err := hd.uc.UpdateUser(ctx, ctx.Param("id"), req)
	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Success("User updated").WithData(user))
}

func (hd *Handler) DeleteUser(ctx *gin.Context) {
	if err := hd.uc.DeleteUser(ctx, ctx.Param("id")); err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Success("User deleted"))
}
