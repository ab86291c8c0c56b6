package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/ken-eddy/bakeryApp/models"
)

const (
	msgIncompleteBakedGood = "Incomplete data. Please provide name, price, and bakery_id."
	msgInvalidPrice        = "Invalid price: must be a number."
	msgInvalidBakeryID     = "Invalid bakery_id: must be an integer."
	msgNoBakedGoods        = "No baked goods found."
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("decimal", isDecimal)
	}
}

func isDecimal(fl validator.FieldLevel) bool {
	_, err := decimal.NewFromString(fl.Field().String())
	return err == nil
}

type bakedGoodInput struct {
	Name     string `form:"name" binding:"required"`
	Price    string `form:"price" binding:"required,decimal"`
	BakeryID string `form:"bakery_id" binding:"required"`
}

// bindingMessage turns a binding failure into the client-facing message.
// A missing field outranks a malformed one.
func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msg := err.Error()
	for _, fe := range verrs {
		switch {
		case fe.Tag() == "required":
			return msgIncompleteBakedGood
		case fe.Field() == "Price":
			msg = msgInvalidPrice
		}
	}
	return msg
}

func bakedGoodNotFound(id interface{}) string {
	return fmt.Sprintf("Baked Good with ID %v not found.", id)
}

func (ctrl *Controller) GetBakedGoodsByPrice(c *gin.Context) {
	goods := []models.BakedGood{}
	if err := ctrl.DB.Order("price desc").Order("id").Find(&goods).Error; err != nil {
		ctrl.handleError(c, err, "")
		return
	}
	ctrl.respond(c, http.StatusOK, goods)
}

func (ctrl *Controller) GetMostExpensiveBakedGood(c *gin.Context) {
	var good models.BakedGood
	if err := ctrl.DB.Order("price desc").Order("id").First(&good).Error; err != nil {
		ctrl.handleError(c, err, msgNoBakedGoods)
		return
	}
	ctrl.respond(c, http.StatusOK, good)
}

// CreateBakedGood inserts a baked good from form fields. The bakery_id is
// stored as given; it is not checked against existing bakeries.
func (ctrl *Controller) CreateBakedGood(c *gin.Context) {
	var input bakedGoodInput
	if err := bindBody(c, &input); err != nil {
		ctrl.fail(c, http.StatusBadRequest, bindingMessage(err))
		return
	}

	bakeryID, err := strconv.ParseUint(input.BakeryID, 10, 0)
	if err != nil {
		ctrl.fail(c, http.StatusBadRequest, msgInvalidBakeryID)
		return
	}

	good := models.BakedGood{
		Name:     input.Name,
		Price:    decimal.RequireFromString(input.Price),
		BakeryID: uint(bakeryID),
	}
	if err := ctrl.DB.Create(&good).Error; err != nil {
		ctrl.handleError(c, err, "")
		return
	}

	ctrl.respond(c, http.StatusCreated, good)
}

func (ctrl *Controller) DeleteBakedGood(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		ctrl.fail(c, http.StatusNotFound, bakedGoodNotFound(c.Param("id")))
		return
	}

	var good models.BakedGood
	if err := ctrl.DB.First(&good, id).Error; err != nil {
		ctrl.handleError(c, err, bakedGoodNotFound(id))
		return
	}

	if err := ctrl.DB.Delete(&good).Error; err != nil {
		ctrl.handleError(c, err, bakedGoodNotFound(id))
		return
	}

	ctrl.respond(c, http.StatusOK, gin.H{
		"message": fmt.Sprintf("Baked Good with ID %d deleted successfully.", id),
	})
}
