package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-management/services"
	"hotel-management/utils"
)

type InvoiceController struct {
	InvoiceSvc *services.InvoiceService
}

func NewInvoiceController(svc *services.InvoiceService) *InvoiceController {
	return &InvoiceController{InvoiceSvc: svc}
}

// CheckoutBooking converts a confirmed (or pending) booking into an invoice.
func (ctrl *InvoiceController) CheckoutBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	invoice, err := ctrl.InvoiceSvc.Checkout(id)
	if err != nil {
		log.Printf("CheckoutBooking error for booking %d: %v", id, err)
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, invoice)
}

func (ctrl *InvoiceController) GetInvoices(c *gin.Context) {
	invoices, err := ctrl.InvoiceSvc.GetAllWithRelations()
	if err != nil {
		log.Printf("GetInvoices error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch invoices")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, invoices)
}

func (ctrl *InvoiceController) GetInvoice(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	invoice, err := ctrl.InvoiceSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, invoice)
}
