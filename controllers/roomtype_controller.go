package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-management/models"
	"hotel-management/services"
	"hotel-management/utils"
)

type RoomTypeController struct {
	RoomTypeSvc *services.RoomTypeService
}

func NewRoomTypeController(svc *services.RoomTypeService) *RoomTypeController {
	return &RoomTypeController{RoomTypeSvc: svc}
}

func (ctrl *RoomTypeController) GetRoomTypes(c *gin.Context) {
	types, err := ctrl.RoomTypeSvc.GetAll()
	if err != nil {
		log.Printf("GetRoomTypes error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch room types")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, types)
}

func (ctrl *RoomTypeController) GetRoomType(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	rt, err := ctrl.RoomTypeSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rt)
}

func (ctrl *RoomTypeController) CreateRoomType(c *gin.Context) {
	var rt models.RoomType
	if err := c.ShouldBindJSON(&rt); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if rt.Name == "" || rt.MaxOccupancy < 1 || rt.Price <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "name, maxOccupancy >= 1 and price > 0 are required")
		return
	}

	if err := ctrl.RoomTypeSvc.Create(&rt); err != nil {
		if isDuplicateEntryError(err) {
			utils.JSONError(c, http.StatusBadRequest, "room type name already exists")
			return
		}
		log.Printf("CreateRoomType error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to create room type")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, rt)
}

func (ctrl *RoomTypeController) UpdateRoomType(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var rt models.RoomType
	if err := c.ShouldBindJSON(&rt); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	rt.ID = id
	if err := ctrl.RoomTypeSvc.Update(rt); err != nil {
		if isDuplicateEntryError(err) {
			utils.JSONError(c, http.StatusBadRequest, "room type name already exists")
			return
		}
		log.Printf("UpdateRoomType error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to update room type")
		return
	}
	updated, err := ctrl.RoomTypeSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, updated)
}

func (ctrl *RoomTypeController) DeleteRoomType(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.RoomTypeSvc.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "room type deleted"})
}
