package types

type RegisterInput struct {
	Email           string `json:"email" binding:"required"`
	Nickname        string `json:"nickname" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RateInput struct {
	Value int `json:"value" binding:"required"`
}
