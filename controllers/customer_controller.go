package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-management/models"
	"hotel-management/services"
	"hotel-management/utils"
)

type CustomerController struct {
	CustomerSvc *services.CustomerService
}

func NewCustomerController(svc *services.CustomerService) *CustomerController {
	return &CustomerController{CustomerSvc: svc}
}

func (ctrl *CustomerController) GetCustomers(c *gin.Context) {
	customers, err := ctrl.CustomerSvc.GetAll()
	if err != nil {
		log.Printf("GetCustomers error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch customers")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, customers)
}

func (ctrl *CustomerController) GetCustomer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	customer, err := ctrl.CustomerSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, customer)
}

func (ctrl *CustomerController) CreateCustomer(c *gin.Context) {
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if customer.FullName == "" || customer.IDNumber == "" || customer.Phone == "" || customer.CustomerTypeID == 0 {
		utils.JSONError(c, http.StatusBadRequest, "fullName, idNumber, phone and customerTypeId are required")
		return
	}

	if err := ctrl.CustomerSvc.Create(&customer); err != nil {
		if isDuplicateEntryError(err) {
			utils.JSONError(c, http.StatusBadRequest, "idNumber or phone already exists")
			return
		}
		if isForeignKeyError(err) {
			utils.JSONError(c, http.StatusBadRequest, "customer type does not exist")
			return
		}
		log.Printf("CreateCustomer error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to create customer")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, customer)
}

func (ctrl *CustomerController) UpdateCustomer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	customer.ID = id
	if err := ctrl.CustomerSvc.Update(customer); err != nil {
		if isDuplicateEntryError(err) {
			utils.JSONError(c, http.StatusBadRequest, "idNumber or phone already exists")
			return
		}
		log.Printf("UpdateCustomer error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to update customer")
		return
	}
	updated, err := ctrl.CustomerSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, updated)
}

func (ctrl *CustomerController) DeleteCustomer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.CustomerSvc.Delete(id); err != nil {
		log.Printf("DeleteCustomer error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete customer")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "customer deleted"})
}
