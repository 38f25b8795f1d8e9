package dto

import (
	"github.com/jayeshnarola-afk/pet-meeting-admin/internal/listing"
	"github.com/jayeshnarola-afk/pet-meeting-admin/internal/normalize"
)

type PetListResponse struct {
	Pets       []normalize.Pet    `json:"pets"`
	Pagination listing.Pagination `json:"pagination"`
}

type BlockImageRequest struct {
	PetID    string `json:"petId"`
	PhotoURL string `json:"photoUrl"`
	Block    bool   `json:"block"`
}

type OptionListResponse struct {
	Options []normalize.Option `json:"options"`
}
