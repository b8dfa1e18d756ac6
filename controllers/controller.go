package controllers

import (
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/Aakash2700/sih-project/logger"
	"github.com/Aakash2700/sih-project/ml"
	"github.com/Aakash2700/sih-project/models"
	"github.com/Aakash2700/sih-project/utils"
	"github.com/Aakash2700/sih-project/ws"
)

// Controller bundles the dependencies shared by every request handler.
type Controller struct {
	DB        *gorm.DB
	Hub       *ws.Hub
	Predictor *ml.Predictor
	Secret    []byte
	Debounce  utils.DebouncePolicy

	log zerolog.Logger
}

// New creates a Controller with its dependencies injected.
func New(db *gorm.DB, hub *ws.Hub, predictor *ml.Predictor, secret []byte, debounce utils.DebouncePolicy) *Controller {
	return &Controller{
		DB:        db,
		Hub:       hub,
		Predictor: predictor,
		Secret:    secret,
		Debounce:  debounce,
		log:       logger.WithComponent("api"),
	}
}

// villageScope returns the village a caller's list queries are restricted
// to. Admins and users without a village are unrestricted; the literal
// string "null" counts as no village, since some clients send it that way.
func villageScope(user models.User) (string, bool) {
	if user.Role == "admin" || user.Village == nil {
		return "", false
	}
	v := *user.Village
	if v == "" || v == "null" {
		return "", false
	}
	return v, true
}
