package dto

type LoginInput struct {
	UsernameOrEmail string `json:"usernameOrEmail" validate:"required"`
	Password        string `json:"password" validate:"required"`
	IPAddress       string `json:"-"`
	DeviceInfo      string `json:"-"`
}
