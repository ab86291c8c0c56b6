package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"

	"github.com/ken-eddy/bakeryApp/models"
)

// bakeryNotFound formats the parsed id, or the raw path value when it is
// not an integer.
func bakeryNotFound(id interface{}) string {
	return fmt.Sprintf("Bakery with ID %v not found.", id)
}

func orderedGoods(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

func (ctrl *Controller) findBakery(id uint) (models.Bakery, error) {
	var bakery models.Bakery
	err := ctrl.DB.Preload("BakedGoods", orderedGoods).First(&bakery, id).Error
	return bakery, err
}

func (ctrl *Controller) GetBakeries(c *gin.Context) {
	bakeries := []models.Bakery{}
	if err := ctrl.DB.Preload("BakedGoods", orderedGoods).Order("id").Find(&bakeries).Error; err != nil {
		ctrl.handleError(c, err, "")
		return
	}
	ctrl.respond(c, http.StatusOK, bakeries)
}

func (ctrl *Controller) GetBakery(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		ctrl.fail(c, http.StatusNotFound, bakeryNotFound(c.Param("id")))
		return
	}

	bakery, err := ctrl.findBakery(id)
	if err != nil {
		ctrl.handleError(c, err, bakeryNotFound(id))
		return
	}
	ctrl.respond(c, http.StatusOK, bakery)
}

// UpdateBakery renames a bakery when a non-empty name is posted. The bakery
// is returned either way.
func (ctrl *Controller) UpdateBakery(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		ctrl.fail(c, http.StatusNotFound, bakeryNotFound(c.Param("id")))
		return
	}

	bakery, err := ctrl.findBakery(id)
	if err != nil {
		ctrl.handleError(c, err, bakeryNotFound(id))
		return
	}

	var input struct {
		Name string `form:"name"`
	}
	if err := bindBody(c, &input); err != nil {
		ctrl.fail(c, http.StatusBadRequest, err.Error())
		return
	}

	if input.Name != "" {
		// bare key so the preloaded goods are not saved back
		if err := ctrl.DB.Model(&models.Bakery{ID: bakery.ID}).Update("name", input.Name).Error; err != nil {
			ctrl.handleError(c, err, bakeryNotFound(id))
			return
		}
		if bakery, err = ctrl.findBakery(id); err != nil {
			ctrl.handleError(c, err, bakeryNotFound(id))
			return
		}
	}

	ctrl.respond(c, http.StatusOK, bakery)
}
