package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/shop-booking/internal/httperr"
	"github.com/BruksfildServices01/shop-booking/internal/httpresp"
	shopuc "github.com/BruksfildServices01/shop-booking/internal/usecase/shop"
)

type ShopHandler struct {
	createShop *shopuc.CreateShop
	addStaff   *shopuc.AddStaff
	listStaff  *shopuc.ListStaff
}

func NewShopHandler(
	createShop *shopuc.CreateShop,
	addStaff *shopuc.AddStaff,
	listStaff *shopuc.ListStaff,
) *ShopHandler {
	return &ShopHandler{
		createShop: createShop,
		addStaff:   addStaff,
		listStaff:  listStaff,
	}
}

type CreateShopRequest struct {
	Name     string `json:"name" binding:"required"`
	Slug     string `json:"slug"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Timezone string `json:"timezone"`
}

type AddStaffRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required"`
}

func (h *ShopHandler) Create(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req CreateShopRequest
	if !bindJSON(c, &req) {
		return
	}

	shop, err := h.createShop.Execute(c.Request.Context(), actor, shopuc.CreateShopInput{
		Name:     req.Name,
		Slug:     req.Slug,
		Phone:    req.Phone,
		Address:  req.Address,
		Timezone: req.Timezone,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, shop)
}

func (h *ShopHandler) AddStaff(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	shopID, ok := uuidParam(c, "shopId")
	if !ok {
		return
	}

	var req AddStaffRequest
	if !bindJSON(c, &req) {
		return
	}

	staff, err := h.addStaff.Execute(c.Request.Context(), actor, shopID, req.Email, req.Role)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, staff)
}

func (h *ShopHandler) ListStaff(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	shopID, ok := uuidParam(c, "shopId")
	if !ok {
		return
	}

	list, err := h.listStaff.Execute(c.Request.Context(), actor, shopID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, list)
}
