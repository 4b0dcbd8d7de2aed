// controllers/invoice.go
package controllers

import (
	"net/http"

	"showroom-backend/services"
	"showroom-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GenerateInvoice derives the invoice for a service and streams it as a PDF
// download. Nothing is persisted.
func GenerateInvoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	service, err := serviceManager().GetService(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	doc, err := services.GenerateInvoice(service)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	pdf, err := services.RenderInvoicePDF(doc)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to render invoice")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+doc.Filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
