package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/plateapp/reservations/models"
	"github.com/plateapp/reservations/services"
	"github.com/plateapp/reservations/utils"
)

type TableController struct {
	DB       *gorm.DB
	registry *services.TableRegistry
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{DB: db, registry: services.NewTableRegistry(db)}
}

// CreateTable -> provision a new table in a section
func (tc *TableController) CreateTable(c *gin.Context) {
	var req struct {
		Section  string `json:"section" binding:"required"`
		Capacity uint   `json:"capacity" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.registry.CreateTable(req.Section, req.Capacity)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCapacity) {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New table created: id=%d section=%s capacity=%d",
		table.ID, table.Section, table.Capacity)
	utils.RespondJSON(c, http.StatusCreated, "Table created successfully", table)
}

// GetAllTables -> every table regardless of availability
func (tc *TableController) GetAllTables(c *gin.Context) {
	var tables []models.Table
	if err := tc.DB.Find(&tables).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of tables", tables)
}

// GetAvailableTables -> available tables, smallest capacity first,
// optionally filtered by ?section=
func (tc *TableController) GetAvailableTables(c *gin.Context) {
	section := c.Query("section")
	tables, err := tc.registry.ListAvailable(section)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Available tables", tables)
}

// GetTableByID -> detail of one table
func (tc *TableController) GetTableByID(c *gin.Context) {
	tableID := c.Param("table_id")
	var table models.Table
	if err := tc.DB.First(&table, tableID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table detail", table)
}

// DeleteTable -> remove a table from the registry
func (tc *TableController) DeleteTable(c *gin.Context) {
	tableID := parseUintParam(c, "table_id")
	if tableID == 0 {
		return
	}

	if err := tc.registry.DeleteTable(tableID); err != nil {
		if errors.Is(err, services.ErrTableNotFound) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Table %d deleted", tableID)
	utils.RespondJSON(c, http.StatusOK, "Table deleted", gin.H{"id": tableID})
}
