package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/jinzhu/gorm"
	"go.uber.org/zap"

	"github.com/ken-eddy/bakeryApp/config"
)

// Controller holds what every handler needs: the storage handle, a logger
// and the response settings.
type Controller struct {
	DB         *gorm.DB
	Log        *zap.Logger
	PrettyJSON bool
	Auth       config.AuthConfig
}

func New(db *gorm.DB, log *zap.Logger, cfg *config.Config) *Controller {
	return &Controller{
		DB:         db,
		Log:        log,
		PrettyJSON: cfg.Server.PrettyJSON,
		Auth:       cfg.Auth,
	}
}

func (ctrl *Controller) respond(c *gin.Context, status int, obj interface{}) {
	if ctrl.PrettyJSON {
		c.IndentedJSON(status, obj)
		return
	}
	c.JSON(status, obj)
}

func (ctrl *Controller) fail(c *gin.Context, status int, message string) {
	ctrl.respond(c, status, gin.H{"error": message})
}

// handleError answers 404 with notFound for missing rows and 500 for
// anything else.
func (ctrl *Controller) handleError(c *gin.Context, err error, notFound string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		ctrl.fail(c, http.StatusNotFound, notFound)
		return
	}
	ctrl.Log.Error("Request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Error(err))
	_ = c.Error(err)
	ctrl.fail(c, http.StatusInternalServerError, err.Error())
}

// bindBody binds form fields from the request body. Query parameters are
// not consulted.
func bindBody(c *gin.Context, obj interface{}) error {
	if c.ContentType() == binding.MIMEMultipartPOSTForm {
		return c.ShouldBindWith(obj, binding.FormMultipart)
	}
	return c.ShouldBindWith(obj, binding.FormPost)
}

// parseID reads the :id path parameter. Non-integer ids never match a row.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func (ctrl *Controller) Home(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte("<h1>Bakery GET-POST-PATCH-DELETE API</h1>"))
}

func (ctrl *Controller) Health(c *gin.Context) {
	if err := ctrl.DB.DB().PingContext(c.Request.Context()); err != nil {
		ctrl.Log.Warn("Health check failed", zap.Error(err))
		ctrl.respond(c, http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	ctrl.respond(c, http.StatusOK, gin.H{"status": "ok"})
}
