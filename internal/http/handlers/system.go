package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	intconfig "turisflow/internal/config"
	intdb "turisflow/internal/db"
)

var coreTables = []string{"users", "trips", "passengers", "partners", "company_profile"}

// Coordinate columns arrived after the first schema; installs migrated by
// hand may still lack them, which silently breaks route planning.
var coordColumns = [][2]string{
	{"passengers", "boarding_lat"},
	{"passengers", "boarding_lng"},
	{"company_profile", "address_lat"},
	{"company_profile", "address_lng"},
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "turisflow"})
}

// DBCheck reports connectivity and which backing tables are missing, so the
// frontend can distinguish "empty database" from "database not set up".
func DBCheck(c *gin.Context) {
	db := intconfig.DB
	if db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "down",
			"error":  "banco de dados não conectado",
		})
		return
	}
	if err := db.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "down",
			"error":  "falha ao conectar: " + err.Error(),
		})
		return
	}

	missing := intdb.MissingTables(db, coreTables...)
	if len(missing) > 0 {
		c.JSON(http.StatusOK, gin.H{
			"status":         "setup_required",
			"missing_tables": missing,
		})
		return
	}

	missingCols := []string{}
	for _, tc := range coordColumns {
		if !intdb.HasColumn(db, tc[0], tc[1]) {
			missingCols = append(missingCols, tc[0]+"."+tc[1])
		}
	}
	if len(missingCols) > 0 {
		c.JSON(http.StatusOK, gin.H{
			"status":          "setup_required",
			"missing_columns": missingCols,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
