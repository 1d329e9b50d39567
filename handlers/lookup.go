package handlers

import (
	"errors"
	"net/http"

	propertyRepo "fieldserve/database/repository/property"
	technicianRepo "fieldserve/database/repository/technician"
	"fieldserve/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// LookupHandler exposes the read-only record lookups the dispatch UI needs.
// The records themselves are owned and edited elsewhere in the product.
type LookupHandler struct {
	Properties  propertyRepo.PropertyRepository
	Technicians technicianRepo.TechnicianRepository
}

func NewLookupHandler(properties propertyRepo.PropertyRepository, technicians technicianRepo.TechnicianRepository) *LookupHandler {
	return &LookupHandler{Properties: properties, Technicians: technicians}
}

// GetPropertyByIDHandler returns one property record.
func (h *LookupHandler) GetPropertyByIDHandler(c *gin.Context) {
	id := c.Param("id")
	property, err := h.Properties.GetByID(id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "property not found", id)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch property", err.Error())
		return
	}
	c.JSON(http.StatusOK, property)
}

// ListTechniciansHandler returns all active technicians.
func (h *LookupHandler) ListTechniciansHandler(c *gin.Context) {
	technicians, err := h.Technicians.GetAllActive()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list technicians", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"technicians": technicians})
}
