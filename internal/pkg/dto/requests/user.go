package requests

import "mime/multipart"

type UpdateProfile struct {
	Name   *string `json:"name" validate:"omitempty,min=1"`
	Email  *string `json:"email" validate:"omitempty,email"`
	Avatar *string `json:"avatar" validate:"omitempty,url"`
	Bio    *string `json:"bio" validate:"omitempty,max=1000"`
}

type UploadProfileImage struct {
	File       multipart.File
	FileHeader *multipart.FileHeader
}
