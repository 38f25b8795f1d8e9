package dto

import (
	"github.com/jayeshnarola-afk/pet-meeting-admin/internal/listing"
	"github.com/jayeshnarola-afk/pet-meeting-admin/internal/normalize"
)

type UserListResponse struct {
	Users      []normalize.User   `json:"users"`
	Pagination listing.Pagination `json:"pagination"`
}

type BanRequest struct {
	IsBan bool `json:"isBan"`
}

type BlockPhotoRequest struct {
	Block bool `json:"block"`
}

type DeleteResponse struct {
	OK         bool               `json:"ok"`
	Pagination listing.Pagination `json:"pagination"`
}

type ActionResponse struct {
	OK bool `json:"ok"`
}
