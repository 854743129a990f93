package http

import (
	"github.com/birqadam/volunteer-backend/internal/auth/domain"
)

type Handler struct{}

func New() *Handler {
	return &Handler{}
}

type profileResp struct {
	UID               string  `json:"uid"`
	Email             string  `json:"email,omitempty"`
	DisplayName       *string `json:"display_name,omitempty"`
	IsOrganizer       bool    `json:"is_organizer"`
	IsApproved        bool    `json:"is_approved"`
	CanCreateProjects bool    `json:"can_create_projects"`
}

func toProfileResponse(o domain.Organizer) profileResp {
	return profileResp{
		UID:               o.UID,
		Email:             o.Email,
		DisplayName:       o.DisplayName,
		IsOrganizer:       o.IsOrganizer,
		IsApproved:        o.IsApproved,
		CanCreateProjects: o.CanCreateProjects(),
	}
}
