package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-management/models"
	"hotel-management/services"
	"hotel-management/utils"
)

type CustomerTypeController struct {
	CustomerTypeSvc *services.CustomerTypeService
}

func NewCustomerTypeController(svc *services.CustomerTypeService) *CustomerTypeController {
	return &CustomerTypeController{CustomerTypeSvc: svc}
}

func (ctrl *CustomerTypeController) GetCustomerTypes(c *gin.Context) {
	types, err := ctrl.CustomerTypeSvc.GetAll()
	if err != nil {
		log.Printf("GetCustomerTypes error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch customer types")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, types)
}

func (ctrl *CustomerTypeController) CreateCustomerType(c *gin.Context) {
	var ct models.CustomerType
	if err := c.ShouldBindJSON(&ct); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if ct.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "name is required")
		return
	}

	if err := ctrl.CustomerTypeSvc.Create(&ct); err != nil {
		if isDuplicateEntryError(err) {
			utils.JSONError(c, http.StatusBadRequest, "customer type name already exists")
			return
		}
		log.Printf("CreateCustomerType error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to create customer type")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, ct)
}

func (ctrl *CustomerTypeController) UpdateCustomerType(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var ct models.CustomerType
	if err := c.ShouldBindJSON(&ct); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	ct.ID = id
	if err := ctrl.CustomerTypeSvc.Update(ct); err != nil {
		if isDuplicateEntryError(err) {
			utils.JSONError(c, http.StatusBadRequest, "customer type name already exists")
			return
		}
		log.Printf("UpdateCustomerType error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to update customer type")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, ct)
}

func (ctrl *CustomerTypeController) DeleteCustomerType(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.CustomerTypeSvc.Delete(id); err != nil {
		log.Printf("DeleteCustomerType error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete customer type")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "customer type deleted"})
}
