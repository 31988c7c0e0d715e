package types

import "github.com/mango-abandoned/api-go/models"

const (
	MIN_PLACE_IMAGES     = 3
	MAX_PLACE_IMAGES     = 6
	MAX_PLACE_TAGS       = 10
	MAX_DESCRIPTION_SIZE = 1000
	MIN_RATING_VALUE     = 1
	MAX_RATING_VALUE     = 5
)

var SECURITY_LEVELS = map[models.SecurityLevel]string{
	models.SecurityNone:    "Не охраняется",
	models.SecurityPartial: "Частично охраняется",
	models.SecurityFull:    "Полностью охраняется",
}

var COMMON_TAGS = []string{
	"фабрика",
	"завод",
	"отель",
	"больница",
	"школа",
	"театр",
	"дом",
	"магазин",
	"ресторан",
	"офис",
	"склад",
	"церковь",
}

type SubmitPlaceInput struct {
	Title         string               `json:"title" binding:"required"`
	Description   string               `json:"description" binding:"required"`
	Images        []string             `json:"images"`
	Location      models.Location      `json:"location"`
	SecurityLevel models.SecurityLevel `json:"securityLevel"`
	Tags          []string             `json:"tags"`
}

type FeedQuery struct {
	Query string `form:"q"`
	Tag   string `form:"tag"`
}
