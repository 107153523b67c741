package handler

import (
	"net/http"

	"campus/internal/repository"

	"github.com/gin-gonic/gin"
)

type SectionHandler struct {
	sections *repository.SectionRepository
}

func NewSectionHandler(sections *repository.SectionRepository) *SectionHandler {
	return &SectionHandler{sections: sections}
}

func (h *SectionHandler) List(c *gin.Context) {
	rows, err := h.sections.ListDetails()
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *SectionHandler) ListByStudent(c *gin.Context) {
	rows, err := h.sections.ListDetailsByStudent(c.Param("id"))
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, rows)
}
